package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                      Code = "OK"
	CodeInvalidArgument         Code = "INVALID_ARGUMENT"
	CodeNotFound                Code = "NOT_FOUND"
	CodeConfigNotFound          Code = "CONFIG_NOT_FOUND"
	CodeConfigParse             Code = "CONFIG_PARSE"
	CodeUnknownRarity           Code = "UNKNOWN_RARITY"
	CodeUnresolvedOfferingTable Code = "UNRESOLVED_OFFERING_TABLE"
	CodeEmptyCardPool           Code = "EMPTY_CARD_POOL"
	CodeUnavailable             Code = "UNAVAILABLE"
	CodeInternal                Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// Bad input data exits with 2, usage errors with 64, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeConfigNotFound, CodeConfigParse, CodeUnknownRarity, CodeUnresolvedOfferingTable:
		return 2
	case CodeInvalidArgument:
		return 64
	default:
		return 1
	}
}
