// Package pdb fetches and parses PDB structure files, keeping the
// atoms, chains and residues needed to work with interface contacts.
package pdb

import (
	"fmt"
	"io/ioutil"

	"github.com/tikz/qcontacts/http"
)

// PDB represents a single PDB entry.
type PDB struct {
	ID     string `json:"id"`     // PDB ID
	URL    string `json:"url"`    // RCSB web page URL
	PDBURL string `json:"pdbUrl"` // RCSB download URL for the PDB file

	TotalLength int64 `json:"totalLength"` // sum of residues of all chains in the structure

	Atoms     []*Atom  `json:"-"`         // ATOM records in the structure
	HetAtoms  []*Atom  `json:"-"`         // HETATM records in the structure
	HetGroups []string `json:"hetGroups"` // HET groups in the structure

	Chains map[string]map[int64]*Residue `json:"chains"` // PDB ATOM chain ID and position to residue in structure

	RawPDB []byte `json:"-"` // PDB file raw data

	LocalPath string `json:"-"` // local path for the PDB file
}

// NewPDBFromID constructs a new instance from a PDB ID, fetching and
// parsing the data.
func NewPDBFromID(pdbID string) (*PDB, error) {
	pdb := PDB{ID: pdbID}

	err := pdb.Fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch data: %v", err)
	}

	err = pdb.ExtractResidues()
	if err != nil {
		return nil, fmt.Errorf("parse: %v", err)
	}

	return &pdb, nil
}

// NewPDBFromRaw constructs a new instance from raw bytes, and only
// extracts ATOM and HETATM records. This is useful for local structure
// files and PDB output files generated by external tools.
func NewPDBFromRaw(raw []byte) (*PDB, error) {
	pdb := PDB{RawPDB: raw}

	err := pdb.ExtractResidues()
	if err != nil {
		return nil, fmt.Errorf("parse: %v", err)
	}

	return &pdb, nil
}

// Fetch downloads the raw PDB file for the entry from RCSB.
func (pdb *PDB) Fetch() error {
	urlPDB := "https://files.rcsb.org/download/" + pdb.ID + ".pdb"
	rawPDB, err := http.Get(urlPDB)
	if err != nil {
		return fmt.Errorf("download PDB file: %v", err)
	}

	pdb.URL = "https://www.rcsb.org/structure/" + pdb.ID
	pdb.PDBURL = urlPDB
	pdb.RawPDB = rawPDB

	return nil
}

// WriteFile writes the raw PDB contents to a file.
func (pdb *PDB) WriteFile(path string) error {
	err := ioutil.WriteFile(path, pdb.RawPDB, 0644)
	if err != nil {
		return fmt.Errorf("write PDB file: %v", err)
	}

	pdb.LocalPath = path
	return nil
}
