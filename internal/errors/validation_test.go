package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pack-odds/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("data_dir", "is required")
	ve.AddFieldError("log_level", "is invalid")
	ve.AddFieldErrorf("workers", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: data_dir: is required; log_level: is invalid; workers: must be at least 1",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("data_dir", "is required").
		Fieldf("workers", "must be between %d and %d", 1, 64).
		RequiredField("collection").
		InvalidField("policy", "not a known policy")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "data", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  data  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("workers", 0, 1, 64, vb)
	errors.ValidateRange("limit", 10, 1, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["workers"][0], "must be between 1 and 64")
	s.Assert().NotContains(validationErrors, "limit")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	levels := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "verbose", levels, vb)
	errors.ValidateEnum("other_level", "info", levels, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["log_level"][0], "must be one of: debug, info, warn, error")
	s.Assert().NotContains(validationErrors, "other_level")
}
