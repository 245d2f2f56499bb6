package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule describes the client-side constraints applied to a single form field
// before any network call is attempted.
type Rule struct {
	Required bool
	Numeric  bool
	Minimum  *float64
	Maximum  *float64
	Enum     []string
}

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateDraft checks a flat form draft (field name -> raw string value)
// against rules. Field errors surface inline; the draft is never sent while
// the result is invalid.
func ValidateDraft(draft map[string]string, rules map[string]Rule) *Result {
	errs := []FieldError{}

	for field, rule := range rules {
		raw, present := draft[field]
		value := strings.TrimSpace(raw)

		if rule.Required && (!present || value == "") {
			errs = append(errs, FieldError{
				Field:   field,
				Message: "required field missing",
				Code:    "REQUIRED_FIELD_MISSING",
			})
			continue
		}
		if value == "" {
			continue
		}

		if rule.Numeric || rule.Minimum != nil || rule.Maximum != nil {
			num, err := strconv.ParseFloat(value, 64)
			if err != nil {
				errs = append(errs, FieldError{
					Field:   field,
					Message: "value must be numeric",
					Code:    "INVALID_TYPE",
				})
				continue
			}
			if rule.Minimum != nil && num < *rule.Minimum {
				errs = append(errs, FieldError{
					Field:   field,
					Message: fmt.Sprintf("value must be >= %g", *rule.Minimum),
					Code:    "MINIMUM_VIOLATION",
				})
			}
			if rule.Maximum != nil && num > *rule.Maximum {
				errs = append(errs, FieldError{
					Field:   field,
					Message: fmt.Sprintf("value must be <= %g", *rule.Maximum),
					Code:    "MAXIMUM_VIOLATION",
				})
			}
		}

		if len(rule.Enum) > 0 {
			found := false
			for _, enumVal := range rule.Enum {
				if value == enumVal {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, FieldError{
					Field:   field,
					Message: fmt.Sprintf("value must be one of %v", rule.Enum),
					Code:    "INVALID_ENUM_VALUE",
				})
			}
		}
	}

	return &Result{Valid: len(errs) == 0, Errors: errs}
}

// Range is a convenience for building Minimum/Maximum rules.
func Range(min, max float64) (lo *float64, hi *float64) {
	return &min, &max
}

// SplitSet translates a multi-select or comma-separated free-text field into
// a set of trimmed, de-duplicated values, preserving first-seen order.
func SplitSet(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// GetErrorMessages returns a simple list of error messages.
func (r *Result) GetErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// ErrorsForField returns the errors recorded against one field.
func (r *Result) ErrorsForField(field string) []FieldError {
	var out []FieldError
	for _, err := range r.Errors {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}
