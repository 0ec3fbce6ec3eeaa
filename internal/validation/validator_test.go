// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	// Test that GetValidator returns the same instance
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

// datasetSpec mirrors the shape of the dataset download configuration.
type datasetSpec struct {
	URL         string `validate:"required,url"`
	MD5         string `validate:"required,len=32,hexadecimal"`
	ArchiveName string `validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input datasetSpec
	}{
		{
			name: "grouplens dataset",
			input: datasetSpec{
				URL:         "http://files.grouplens.org/datasets/movielens/ml-1m.zip",
				MD5:         "c4d9eecfca2ab87c1945afe126590906",
				ArchiveName: "ml-1m.zip",
			},
		},
		{
			name: "https mirror",
			input: datasetSpec{
				URL:         "https://example.com/mirrors/ml-1m.zip",
				MD5:         "0123456789abcdef0123456789abcdef",
				ArchiveName: "dataset.zip",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     datasetSpec
		wantField string
		wantTag   string
	}{
		{
			name: "missing url",
			input: datasetSpec{
				MD5:         "c4d9eecfca2ab87c1945afe126590906",
				ArchiveName: "ml-1m.zip",
			},
			wantField: "URL",
			wantTag:   "required",
		},
		{
			name: "malformed url",
			input: datasetSpec{
				URL:         "not a url at all",
				MD5:         "c4d9eecfca2ab87c1945afe126590906",
				ArchiveName: "ml-1m.zip",
			},
			wantField: "URL",
			wantTag:   "url",
		},
		{
			name: "md5 too short",
			input: datasetSpec{
				URL:         "http://files.grouplens.org/datasets/movielens/ml-1m.zip",
				MD5:         "abc123",
				ArchiveName: "ml-1m.zip",
			},
			wantField: "MD5",
			wantTag:   "len",
		},
		{
			name: "md5 not hexadecimal",
			input: datasetSpec{
				URL:         "http://files.grouplens.org/datasets/movielens/ml-1m.zip",
				MD5:         "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
				ArchiveName: "ml-1m.zip",
			},
			wantField: "MD5",
			wantTag:   "hexadecimal",
		},
		{
			name: "missing archive name",
			input: datasetSpec{
				URL: "http://files.grouplens.org/datasets/movielens/ml-1m.zip",
				MD5: "c4d9eecfca2ab87c1945afe126590906",
			},
			wantField: "ArchiveName",
			wantTag:   "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) == 0 {
				t.Fatal("ValidationErrors should contain at least one error")
			}

			found := false
			for _, e := range errs {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, errs)
			}
		})
	}
}

// ===================================================================================================
// Fields Tests
// ===================================================================================================

func TestFields_MultipleErrors(t *testing.T) {
	input := datasetSpec{
		URL: "not a url",
		MD5: "too-short",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	fields := err.Fields()
	if len(fields) < 3 {
		t.Fatalf("Expected at least 3 failing fields, got %d: %v", len(fields), fields)
	}

	want := map[string]bool{"URL": false, "MD5": false, "ArchiveName": false}
	for _, f := range fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("Fields() missing %s: %v", f, fields)
		}
	}
}

// ===================================================================================================
// Fraction Range Validation Tests
// ===================================================================================================

type splitSpec struct {
	TestFraction float64 `validate:"required,gt=0,lt=1"`
	Seed         int64
}

func TestFractionValidation_Valid(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		seed     int64
	}{
		{"default split", 0.2, 0},
		{"half split", 0.5, 42},
		{"tiny holdout", 0.01, -7},
		{"almost everything", 0.99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := splitSpec{TestFraction: tt.fraction, Seed: tt.seed}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for fraction=%f: %v", tt.fraction, err)
			}
		})
	}
}

func TestFractionValidation_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
	}{
		{"zero fraction", 0},
		{"exactly one", 1},
		{"above one", 1.5},
		{"negative", -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := splitSpec{TestFraction: tt.fraction}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for fraction=%f", tt.fraction)
			}
		})
	}
}

// ===================================================================================================
// Oneof Validation Tests
// ===================================================================================================

type logSpec struct {
	Level  string `validate:"omitempty,oneof=trace debug info warn error fatal"`
	Format string `validate:"omitempty,oneof=json console"`
}

func TestOneofValidation_Valid(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"empty", "", ""},
		{"debug json", "debug", "json"},
		{"info console", "info", "console"},
		{"error only", "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := logSpec{Level: tt.level, Format: tt.format}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for %q/%q: %v", tt.level, tt.format, err)
			}
		})
	}
}

func TestOneofValidation_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"unknown level", "loud"},
		{"partial match", "infox"},
		{"case sensitive", "Info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := logSpec{Level: tt.level}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for level %q", tt.level)
			}
		})
	}
}

// ===================================================================================================
// WithRequiredStructEnabled Tests
// ===================================================================================================

type nestedSpec struct {
	Dataset datasetSpec `validate:"required"`
}

func TestNestedStructValidation(t *testing.T) {
	// Valid nested struct
	valid := nestedSpec{
		Dataset: datasetSpec{
			URL:         "http://files.grouplens.org/datasets/movielens/ml-1m.zip",
			MD5:         "c4d9eecfca2ab87c1945afe126590906",
			ArchiveName: "ml-1m.zip",
		},
	}

	err := ValidateStruct(&valid)
	if err != nil {
		t.Errorf("ValidateStruct() returned unexpected error for valid nested struct: %v", err)
	}

	// Invalid - missing inner values
	invalid := nestedSpec{}

	err = ValidateStruct(&invalid)
	if err == nil {
		t.Error("ValidateStruct() should have returned error for invalid nested struct")
	}
}

// ===================================================================================================
// Integer Range Validation Tests
// ===================================================================================================

type engineSpec struct {
	Threads      int `validate:"gte=0"`
	VectorLength int `validate:"required,min=1"`
}

func TestRangeValidation_Valid(t *testing.T) {
	tests := []struct {
		name    string
		threads int
		length  int
	}{
		{"auto threads", 0, 15},
		{"explicit threads", 4, 15},
		{"single word title", 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := engineSpec{Threads: tt.threads, VectorLength: tt.length}
			err := ValidateStruct(&input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestRangeValidation_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		threads int
		length  int
	}{
		{"negative threads", -1, 15},
		{"zero vector length", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := engineSpec{Threads: tt.threads, VectorLength: tt.length}
			err := ValidateStruct(&input)
			if err == nil {
				t.Errorf("ValidateStruct() should have returned error for threads=%d, length=%d", tt.threads, tt.length)
			}
		})
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	input := datasetSpec{
		URL: "not a url",
		MD5: "bad",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	// Error message should be human-readable
	msg := err.Error()
	if msg == "" {
		t.Error("Error message should not be empty")
	}

	// Should contain field names
	if !strings.Contains(msg, "URL") || !strings.Contains(msg, "MD5") {
		t.Errorf("Error message should reference failed fields: %s", msg)
	}
}

func TestErrorMessages_Templates(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantMsg string
	}{
		{
			name:    "required",
			input:   &datasetSpec{URL: "http://example.com/a.zip", MD5: "c4d9eecfca2ab87c1945afe126590906"},
			wantMsg: "ArchiveName is required",
		},
		{
			name:    "url",
			input:   &datasetSpec{URL: "::::", MD5: "c4d9eecfca2ab87c1945afe126590906", ArchiveName: "a.zip"},
			wantMsg: "URL must be a valid URL",
		},
		{
			name:    "len",
			input:   &datasetSpec{URL: "http://example.com/a.zip", MD5: "abcd", ArchiveName: "a.zip"},
			wantMsg: "MD5 must be exactly 32 characters",
		},
		{
			name:    "lt",
			input:   &splitSpec{TestFraction: 2},
			wantMsg: "TestFraction must be less than 1",
		},
		{
			name:    "gte",
			input:   &engineSpec{Threads: -2, VectorLength: 15},
			wantMsg: "Threads must be greater than or equal to 0",
		},
		{
			name:    "oneof",
			input:   &logSpec{Format: "xml"},
			wantMsg: "Format must be one of: json console",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
