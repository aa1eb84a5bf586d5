package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsConfigNotFound checks if an error is a missing data source error
func IsConfigNotFound(err error) bool {
	return GetCode(err) == CodeConfigNotFound
}

// IsConfigParse checks if an error is a malformed data source error
func IsConfigParse(err error) bool {
	return GetCode(err) == CodeConfigParse
}

// IsUnknownRarity checks if an error is an unknown rarity error
func IsUnknownRarity(err error) bool {
	return GetCode(err) == CodeUnknownRarity
}

// IsUnresolvedOfferingTable checks if an error is an unresolved offering table error
func IsUnresolvedOfferingTable(err error) bool {
	return GetCode(err) == CodeUnresolvedOfferingTable
}

// IsEmptyCardPool checks if an error is an empty card pool error
func IsEmptyCardPool(err error) bool {
	return GetCode(err) == CodeEmptyCardPool
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}
