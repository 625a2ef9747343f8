package fieldschema

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"

	"github.com/xeipuuv/gojsonschema"
)

var fieldTypeEnum = func() []any {
	out := make([]any, 0, len(entities.AllFieldTypes))
	for _, t := range entities.AllFieldTypes {
		out = append(out, string(t))
	}
	return out
}()

// documentSchema is the structural contract of a fieldSchema array.
var documentSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "name", "type"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1, "pattern": "^[A-Za-z0-9_.-]+$"},
			"name":        map[string]any{"type": "string", "minLength": 1},
			"type":        map[string]any{"enum": fieldTypeEnum},
			"required":    map[string]any{"type": "boolean"},
			"description": map[string]any{"type": "string"},
			"placeholder": map[string]any{"type": "string"},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"value", "label"},
					"properties": map[string]any{
						"value": map[string]any{"type": "string", "minLength": 1},
						"label": map[string]any{"type": "string"},
					},
				},
			},
			"validation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min":       map[string]any{"type": "number"},
					"max":       map[string]any{"type": "number"},
					"decimals":  map[string]any{"type": "integer", "minimum": 0},
					"minLength": map[string]any{"type": "integer", "minimum": 0},
					"maxLength": map[string]any{"type": "integer", "minimum": 0},
					"pattern":   map[string]any{"type": "string"},
					"minDate":   map[string]any{"type": "string"},
					"maxDate":   map[string]any{"type": "string"},
					"message":   map[string]any{"type": "string"},
				},
			},
		},
	},
}

// CheckSchema reports structural and semantic problems of a field schema.
// A nil result means the schema can be stored.
func CheckSchema(fields []entities.FieldDefinition) []string {
	if fields == nil {
		fields = []entities.FieldDefinition{}
	}
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(documentSchema), gojsonschema.NewGoLoader(fields))
	if err != nil {
		return []string{fmt.Sprintf("schema could not be checked: %v", err)}
	}
	var problems []string
	if !result.Valid() {
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return problems
	}

	byID := make(map[string]entities.FieldDefinition, len(fields))
	for _, f := range fields {
		if _, dup := byID[f.ID]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate field id", f.ID))
		}
		byID[f.ID] = f
	}
	for _, f := range fields {
		problems = append(problems, checkField(f, byID)...)
	}
	return problems
}

func checkField(f entities.FieldDefinition, byID map[string]entities.FieldDefinition) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, f.ID+": "+fmt.Sprintf(format, args...))
	}

	if f.Type == entities.FieldTypeDropdown && len(f.Options) == 0 {
		add("dropdown requires at least one option")
	}
	v := f.Validation
	if v == nil {
		return problems
	}
	if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
		add("min is greater than max")
	}
	if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
		add("minLength is greater than maxLength")
	}
	if v.Pattern != "" {
		if _, err := regexp.Compile(v.Pattern); err != nil {
			add("pattern does not compile")
		}
	}
	for _, d := range []string{v.MinDate, v.MaxDate} {
		if d == "" || strings.EqualFold(d, DateToday) {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			add("date bound %q is not YYYY-MM-DD or today", d)
		}
	}
	for _, ref := range []string{v.LessThanField, v.GreaterThanField} {
		if ref == "" {
			continue
		}
		other, ok := byID[ref]
		switch {
		case ref == f.ID:
			add("field cannot reference itself")
		case !ok:
			add("references unknown field %q", ref)
		case !other.Type.IsNumeric() || !f.Type.IsNumeric():
			add("cross-field reference %q requires numeric fields", ref)
		}
	}
	return problems
}

// UnknownValueKeys returns keys of values that no field declares.
func UnknownValueKeys(fields []entities.FieldDefinition, values map[string]any) []string {
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.ID] = struct{}{}
	}
	var out []string
	for k := range values {
		if _, ok := known[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
