package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeStructural      Code = "STRUCTURAL"
	CodeFormulaParse    Code = "FORMULA_PARSE"
	CodeIO              Code = "IO"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status used by the CLI for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 2
	case CodeStructural:
		return 3
	case CodeFormulaParse:
		return 4
	case CodeIO:
		return 5
	default:
		return 1
	}
}
