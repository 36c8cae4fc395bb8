// Package qcontacts wraps the QContacts executable, which computes
// protein-protein interface contacts from a PDB structure file.
//
// The binary itself does all the geometric work; this package builds
// its command line, runs it against a private temporary directory and
// parses the two .vor output files it leaves behind.
package qcontacts

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultProbeRadius is the probe radius passed to QContacts when the
// caller doesn't set one.
const DefaultProbeRadius = 1.4

// Names of the two output files QContacts writes under the -prefOut prefix.
const (
	atomFile    = "-by-atom.vor"
	residueFile = "-by-res.vor"
)

// Config holds everything needed for one QContacts invocation.
// Fields may be adjusted freely between NewConfig and Run.
type Config struct {
	// Executable points to the QContacts binary. If QContacts is in
	// your PATH, the bare name is sufficient.
	Executable string

	// PDBPath is the input structure file, passed as -i.
	PDBPath string

	// Chain1 and Chain2 select the two chains whose interface is
	// analyzed. Empty values are passed through as-is, meaning no
	// chain filter.
	Chain1 string
	Chain2 string

	// ProbeRadius is the solvent probe radius in angstroms.
	ProbeRadius float64
}

// Results holds the parsed contacts from one QContacts run.
type Results struct {
	AtomContacts    []AtomContact    `json:"atomContacts"`
	ResidueContacts []ResidueContact `json:"residueContacts"`

	// Output is the combined stdout and stderr of the tool, kept
	// only for diagnosis.
	Output []byte `json:"-"`
}

// NewConfig instantiates a configuration for the given QContacts
// binary and input structure, with default probe radius and no chain
// filter. Fails if the executable cannot be found or run.
func NewConfig(executable string, pdbPath string) (*Config, error) {
	if !IsExecutable(executable) {
		return nil, &InvalidExecutableError{Candidate: executable}
	}

	return &Config{
		Executable:  executable,
		PDBPath:     pdbPath,
		ProbeRadius: DefaultProbeRadius,
	}, nil
}

// Run executes QContacts synchronously and parses its two output
// files. Each call uses its own temporary output directory, removed on
// return whether or not parsing succeeds.
//
// The exit status of the tool is not checked: a failed run simply
// leaves no output files, which surfaces as an OutputFileMissingError.
func (c *Config) Run() (*Results, error) {
	tmpDir, err := ioutil.TempDir("", "qcontacts")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	cmd := exec.Command(c.Executable, c.Args(tmpDir)...)
	out, _ := cmd.CombinedOutput()

	results := &Results{Output: out}

	results.AtomContacts, err = parseAtomFile(filepath.Join(tmpDir, atomFile))
	if err != nil {
		return nil, err
	}

	results.ResidueContacts, err = parseResidueFile(filepath.Join(tmpDir, residueFile))
	if err != nil {
		return nil, err
	}

	return results, nil
}
