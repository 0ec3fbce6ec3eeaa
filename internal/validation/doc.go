// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages. It is used to
// reject a bad pipeline configuration before any download or database work starts.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages naming the failing field
//   - Built-in validator support (url, hexadecimal, oneof, numeric ranges)
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
//	type DatasetConfig struct {
//	    URL         string `validate:"required,url"`
//	    MD5         string `validate:"required,len=32,hexadecimal"`
//	    ArchiveName string `validate:"required"`
//	}
//
//	func (c *Config) Validate() error {
//	    if err := validation.ValidateStruct(c); err != nil {
//	        return fmt.Errorf("invalid configuration: %w", err)
//	    }
//	    return nil
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - url: Valid URL format
//   - len=n: Exactly n characters
//   - hexadecimal: Hex digits only
//
// Numeric validations:
//   - gte=n: Greater than or equal to n
//   - gt=n: Greater than n
//   - lt=n: Less than n
//   - min=n: Minimum value n
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// # Error Types
//
// ValidationError represents a single field validation failure:
//
//	type ValidationError struct {
//	    Field()   string      // Struct field name
//	    Tag()     string      // Validation tag that failed
//	    Param()   string      // Tag parameter (e.g., "32" for len=32)
//	    Value()   interface{} // Actual value that failed
//	    Error()   string      // Human-readable message
//	}
//
// ConfigValidationError aggregates multiple field errors:
//
//	type ConfigValidationError struct {
//	    Errors() []ValidationError
//	    Fields() []string // Names of all failing fields
//	    Error()  string   // Combined message
//	}
//
// # Error Message Translation
//
// Human-readable messages are generated for common validation tags:
//
//	required    -> "DataDir is required"
//	url         -> "URL must be a valid URL"
//	len=32      -> "MD5 must be exactly 32 characters"
//	hexadecimal -> "MD5 must be a valid hexadecimal string"
//	gt=0        -> "TestFraction must be greater than 0"
//	lt=1        -> "TestFraction must be less than 1"
//	oneof=a b   -> "Format must be one of: a b"
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&cfg) // Thread-safe
//
// # See Also
//
//   - internal/config: Configuration structs carrying the validate tags
//   - github.com/go-playground/validator/v10: Underlying library
package validation
