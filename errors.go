package qcontacts

import "fmt"

// InvalidExecutableError is returned by NewConfig when the given
// QContacts executable cannot be found or run.
type InvalidExecutableError struct {
	Candidate string
}

func (e *InvalidExecutableError) Error() string {
	return fmt.Sprintf("cannot find `%s` in PATH or it is not executable", e.Candidate)
}

// OutputFileMissingError is returned when an expected QContacts output
// file does not exist, usually because the tool failed or produced no
// output for the given chains.
type OutputFileMissingError struct {
	Path string
}

func (e *OutputFileMissingError) Error() string {
	return fmt.Sprintf("output file %s does not exist", e.Path)
}

// MalformedLineError is returned when a line in an output file has
// fewer columns than the parser needs.
type MalformedLineError struct {
	Path string
	N    int    // 1-based line number
	Line string // raw line content
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s: malformed line %d: %q", e.Path, e.N, e.Line)
}

// UnknownContactTypeError is returned when an atom contact line carries
// a contact type code other than V, H, S or I.
type UnknownContactTypeError struct {
	Path string
	N    int
	Type string
}

func (e *UnknownContactTypeError) Error() string {
	return fmt.Sprintf("%s: unknown contact type %q on line %d", e.Path, e.Type, e.N)
}
