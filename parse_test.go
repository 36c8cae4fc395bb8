package qcontacts

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAtomFile(t *testing.T) {
	contacts, err := parseAtomFile("testdata/by-atom.vor")
	if err != nil {
		t.Fatalf("cannot parse file: %s", err)
	}

	if len(contacts) != 4 {
		t.Fatalf("expected 4 contacts, got %d", len(contacts))
	}

	expected := AtomContact{
		Type: "V",
		Atom1: ContactAtom{
			ResidueNumber: 10,
			Residue:       "ALA",
			AtomNumber:    75,
			AtomName:      "CB",
		},
		Atom2: ContactAtom{
			ResidueNumber: 59,
			Residue:       "SER",
			AtomNumber:    451,
			AtomName:      "OG",
		},
		Area: 5.742,
	}
	if diff := cmp.Diff(expected, contacts[0]); diff != "" {
		t.Errorf("van der Waals contact mismatch:\n%s", diff)
	}

	// A V contact carries the area and nothing else.
	v := contacts[0]
	if v.Angle != 0 || v.Rno != 0 || v.DGhb != 0 || v.DGip != 0 {
		t.Errorf("expected no extra fields on a V contact, got %+v", v)
	}

	h := contacts[1]
	if h.Type != "H" {
		t.Errorf("expected type H, got %s", h.Type)
	}
	if h.Area != 0.250 {
		t.Errorf("expected area 0.250, got %f", h.Area)
	}
	if h.Angle != 32.1 {
		t.Errorf("expected angle 32.1, got %f", h.Angle)
	}
	if h.Rno != 2.80 {
		t.Errorf("expected Rno 2.80 with trailing paren stripped, got %f", h.Rno)
	}

	i := contacts[2]
	if i.Area != 1.120 || i.Rno != 3.45 {
		t.Errorf("expected area 1.120 and Rno 3.45, got %f and %f", i.Area, i.Rno)
	}
	if i.Angle != 0 || i.DGhb != 0 || i.DGip != 0 {
		t.Errorf("expected no angle or free energies on an I contact, got %+v", i)
	}

	s := contacts[3]
	if s.Area != 2.310 || s.DGhb != -1.25 || s.DGip != -2.10 || s.Angle != 28.7 || s.Rno != 3.10 {
		t.Errorf("salt bridge fields mismatch: %+v", s)
	}
}

func TestParseResidueFile(t *testing.T) {
	contacts, err := parseResidueFile("testdata/by-res.vor")
	if err != nil {
		t.Fatalf("cannot parse file: %s", err)
	}

	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}

	expected := ResidueContact{
		Residue1: ContactResidue{ResidueNumber: 10, Residue: "ALA"},
		Residue2: ContactResidue{ResidueNumber: 59, Residue: "SER"},
		Area:     20.033,
	}
	if diff := cmp.Diff(expected, contacts[0]); diff != "" {
		t.Errorf("residue contact mismatch:\n%s", diff)
	}

	if contacts[1].Area != 15.500 {
		t.Errorf("expected area 15.500, got %f", contacts[1].Area)
	}
}

func TestParseMissingFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "-by-atom.vor")

	_, err := parseAtomFile(path)
	var missing *OutputFileMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected OutputFileMissingError, got %v", err)
	}
	if missing.Path != path {
		t.Errorf("expected path %s, got %s", path, missing.Path)
	}

	_, err = parseResidueFile(filepath.Join(t.TempDir(), "-by-res.vor"))
	if !errors.As(err, &missing) {
		t.Fatalf("expected OutputFileMissingError, got %v", err)
	}
}

func TestParseMalformedLines(t *testing.T) {
	dir := t.TempDir()

	atomPath := filepath.Join(dir, "-by-atom.vor")
	short := "2 H 10 ALA - 73 N - 59 SER - 451 OG 0.250\n"
	if err := ioutil.WriteFile(atomPath, []byte(short), 0644); err != nil {
		t.Fatal(err)
	}

	// The H column table reaches index 15; this line stops at 13.
	_, err := parseAtomFile(atomPath)
	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedLineError, got %v", err)
	}
	if malformed.N != 1 {
		t.Errorf("expected line 1, got %d", malformed.N)
	}

	resPath := filepath.Join(dir, "-by-res.vor")
	if err := ioutil.WriteFile(resPath, []byte("A 10 ALA - B 59 SER\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = parseResidueFile(resPath)
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedLineError, got %v", err)
	}
}

func TestParseUnknownContactType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "-by-atom.vor")
	line := "1 X 10 ALA - 75 CB - 59 SER - 451 OG 5.742\n"
	if err := ioutil.WriteFile(path, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := parseAtomFile(path)
	var unknown *UnknownContactTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownContactTypeError, got %v", err)
	}
	if unknown.Type != "X" {
		t.Errorf("expected type X, got %s", unknown.Type)
	}
}

func TestParseSkipsEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "-by-res.vor")
	content := "\nA 10 ALA - B 59 SER - 0 20.033 -\n\n"
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	contacts, err := parseResidueFile(path)
	if err != nil {
		t.Fatalf("cannot parse file: %s", err)
	}
	if len(contacts) != 1 {
		t.Errorf("expected 1 contact, got %d", len(contacts))
	}
}
