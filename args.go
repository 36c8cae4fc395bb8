package qcontacts

import "strconv"

// Args returns the QContacts command line arguments for this
// configuration as ordered flag/value pairs, with outDir as the output
// prefix target. The order is fixed so command lines are reproducible.
func (c *Config) Args(outDir string) []string {
	return []string{
		"-c1", c.Chain1,
		"-c2", c.Chain2,
		"-i", c.PDBPath,
		"-probe", strconv.FormatFloat(c.ProbeRadius, 'g', -1, 64),
		"-prefOut", outDir + "/",
	}
}
