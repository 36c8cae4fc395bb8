package qcontacts

import (
	"os"
	"os/exec"
)

// IsExecutable returns true if the given candidate is a path to an
// executable file, or a name that resolves to one through PATH.
func IsExecutable(candidate string) bool {
	info, err := os.Stat(candidate)
	if err == nil && !info.IsDir() && info.Mode().Perm()&0111 != 0 {
		return true
	}

	_, err = exec.LookPath(candidate)
	return err == nil
}
