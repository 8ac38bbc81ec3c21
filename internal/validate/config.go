// Package validate provides configuration validation utilities for Launchpad
// components.
//
// This file implements common validation patterns used across config handling
// to ensure consistency and reduce duplication. All functions leverage the
// go-playground/validator library for standardized validation behavior.
//
// VALIDATION UTILITIES:
//   - Field validation: Tag-based validation of individual values
//   - String validation: Required field and non-empty string checking
//
// These utilities replace manual validation code scattered across config
// packages with centralized, consistent validation using the validator
// library's built-in tags and error handling.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for all field validation.
// validator instances cache struct metadata, so a single package-level
// instance is the recommended usage pattern.
var validate = validator.New()

// ValidateField validates individual values against specified validation rules
// using the go-playground/validator library. Provides flexible validation for
// single fields without requiring struct definitions, useful for dynamic
// validation scenarios.
//
// Supports all built-in validation tags including numeric ranges, string
// patterns, and required field validation. Essential for validating individual
// configuration parameters and user inputs throughout the launcher.
//
// Example: ValidateField(path, "required,filepath")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config validation.
//
// Critical for ensuring required configuration fields like the runtime
// directory, interpreter path, and entry script are properly specified before
// the launch flow starts. Prevents runtime failures from missing essential
// configuration parameters.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
