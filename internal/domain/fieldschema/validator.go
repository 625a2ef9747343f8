// Package fieldschema interprets the self-describing field definitions of
// benefit templates: value validation, render hints and schema checks.
package fieldschema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"insurance_portal/internal/domain/entities"
)

// ValidateConfiguredValues checks values against fields and returns a map of
// field id to message. An empty map means the values are valid.
//
// Cross-field constraints (lessThanField / greaterThanField) are declared in
// the schema but not enforced here.
func ValidateConfiguredValues(fields []entities.FieldDefinition, values map[string]any) map[string]string {
	errs := make(map[string]string)
	for _, f := range fields {
		v, present := values[f.ID]
		if isEmpty(v, present) {
			if f.Required {
				errs[f.ID] = f.Name + " is required"
			}
			continue
		}

		var msg string
		switch {
		case f.Type.IsNumeric():
			msg = checkNumeric(v, f.Validation)
		case f.Type.IsText():
			msg = checkText(v, f.Validation)
		}
		if msg != "" {
			errs[f.ID] = msg
		}
	}
	return errs
}

func isEmpty(v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func checkNumeric(v any, rules *entities.FieldValidation) string {
	n, ok := ToNumber(v)
	if !ok {
		return withOverride(rules, "Must be a valid number")
	}
	if rules == nil {
		return ""
	}
	if rules.Min != nil && n < *rules.Min {
		return withOverride(rules, "Minimum value is "+formatFloat(*rules.Min))
	}
	if rules.Max != nil && n > *rules.Max {
		return withOverride(rules, "Maximum value is "+formatFloat(*rules.Max))
	}
	return ""
}

func checkText(v any, rules *entities.FieldValidation) string {
	if rules == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	length := utf8.RuneCountInString(s)
	if rules.MinLength != nil && length < *rules.MinLength {
		return withOverride(rules, fmt.Sprintf("Minimum length is %d characters", *rules.MinLength))
	}
	if rules.MaxLength != nil && length > *rules.MaxLength {
		return withOverride(rules, fmt.Sprintf("Maximum length is %d characters", *rules.MaxLength))
	}
	if rules.Pattern != "" {
		re, err := regexp.Compile(rules.Pattern)
		// invalid patterns are rejected by CheckSchema when the template is saved
		if err == nil && !re.MatchString(s) {
			return withOverride(rules, "Invalid format")
		}
	}
	return ""
}

func withOverride(rules *entities.FieldValidation, generated string) string {
	if rules != nil && rules.Message != "" {
		return rules.Message
	}
	return generated
}

// ToNumber coerces JSON-decoded values and numeric strings to float64.
func ToNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
