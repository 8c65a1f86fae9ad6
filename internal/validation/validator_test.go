// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/mynextmovie/internal/recommend"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type searchParams struct {
	Query string `json:"q" validate:"required,notblank,max=20,nocontrol"`
	Limit int    `json:"limit" validate:"min=0,max=50"`
	Skip  string `json:"-" validate:"omitempty,oneof=a b"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     searchParams
		wantField string
		wantTag   string
	}{
		{name: "valid", input: searchParams{Query: "Toy Story", Limit: 5}},
		{name: "missing query", input: searchParams{Limit: 5}, wantField: "q", wantTag: "required"},
		{name: "blank query", input: searchParams{Query: "   \t"}, wantField: "q", wantTag: "notblank"},
		{name: "query too long", input: searchParams{Query: strings.Repeat("x", 21)}, wantField: "q", wantTag: "max"},
		{name: "control character", input: searchParams{Query: "bad\x00title"}, wantField: "q", wantTag: "nocontrol"},
		{name: "negative limit", input: searchParams{Query: "ok", Limit: -1}, wantField: "limit", wantTag: "min"},
		{name: "limit too large", input: searchParams{Query: "ok", Limit: 51}, wantField: "limit", wantTag: "max"},
		{name: "dash json tag uses field name", input: searchParams{Query: "ok", Skip: "c"}, wantField: "Skip", wantTag: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1", len(errs))
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_RecommendRequests(t *testing.T) {
	negative := -1

	t.Run("similar request needs a title", func(t *testing.T) {
		verr := ValidateStruct(&recommend.SimilarRequest{Title: " "})
		if verr == nil {
			t.Fatal("ValidateStruct() = nil, want error")
		}
		if got := verr.Errors()[0].Field(); got != "title" {
			t.Errorf("Field() = %q, want title", got)
		}
	})

	t.Run("popular request rejects negative min count", func(t *testing.T) {
		verr := ValidateStruct(&recommend.PopularRequest{Genre: "Comedy", MinCount: &negative})
		if verr == nil {
			t.Fatal("ValidateStruct() = nil, want error")
		}
		if got := verr.Errors()[0].Field(); got != "min_count" {
			t.Errorf("Field() = %q, want min_count", got)
		}
	})

	t.Run("popular request with nil min count is valid", func(t *testing.T) {
		if verr := ValidateStruct(&recommend.PopularRequest{Genre: "Drama"}); verr != nil {
			t.Errorf("ValidateStruct() = %v, want nil", verr)
		}
	})
}

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&searchParams{Query: "ok", Limit: 99})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != CodeValidationError {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationError)
	}
	if apiErr.Message != "limit must be at most 50" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "limit must be at most 50")
	}
	if apiErr.Details["field"] != "limit" {
		t.Errorf("Details[field] = %v, want limit", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&searchParams{Limit: -5})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "q: q is required") {
		t.Errorf("Message = %q, want it to mention q", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "limit: limit must be at least 0") {
		t.Errorf("Message = %q, want it to mention limit", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != CodeValidationError || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v, want generic validation error", apiErr)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input searchParams
		want  string
	}{
		{"required", searchParams{}, "q is required"},
		{"notblank", searchParams{Query: "  "}, "q must not be blank"},
		{"nocontrol", searchParams{Query: "a\nb"}, "q must not contain control characters"},
		{"string max", searchParams{Query: strings.Repeat("y", 30)}, "q must be at most 20 characters"},
		{"oneof", searchParams{Query: "ok", Skip: "z"}, "Skip must be one of: a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := verr.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
