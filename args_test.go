package qcontacts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgs(t *testing.T) {
	config := &Config{
		Executable:  "qcontacts",
		PDBPath:     "structures/1mso.pdb",
		Chain1:      "A",
		Chain2:      "B",
		ProbeRadius: 1.4,
	}

	expected := []string{
		"-c1", "A",
		"-c2", "B",
		"-i", "structures/1mso.pdb",
		"-probe", "1.4",
		"-prefOut", "/tmp/qcontacts123/",
	}
	if diff := cmp.Diff(expected, config.Args("/tmp/qcontacts123")); diff != "" {
		t.Errorf("args mismatch:\n%s", diff)
	}
}

func TestArgsEmptyChains(t *testing.T) {
	// Default chains are empty strings, passed through without validation.
	config := &Config{
		Executable:  "qcontacts",
		PDBPath:     "in.pdb",
		ProbeRadius: 2,
	}

	expected := []string{
		"-c1", "",
		"-c2", "",
		"-i", "in.pdb",
		"-probe", "2",
		"-prefOut", "out/",
	}
	if diff := cmp.Diff(expected, config.Args("out")); diff != "" {
		t.Errorf("args mismatch:\n%s", diff)
	}
}
