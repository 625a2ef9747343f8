package fieldschema

import (
	"strconv"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
)

const (
	// DateToday in minDate/maxDate is resolved to the current date at render time.
	DateToday  = "today"
	dateLayout = "2006-01-02"
)

// Hints tells a form renderer how to present one field.
type Hints struct {
	Input            string                 `json:"input"`
	Prefix           string                 `json:"prefix,omitempty"`
	Suffix           string                 `json:"suffix,omitempty"`
	Min              *float64               `json:"min,omitempty"`
	Max              *float64               `json:"max,omitempty"`
	Step             string                 `json:"step,omitempty"`
	MinLength        *int                   `json:"min_length,omitempty"`
	MaxLength        *int                   `json:"max_length,omitempty"`
	Pattern          string                 `json:"pattern,omitempty"`
	MinDate          string                 `json:"min_date,omitempty"`
	MaxDate          string                 `json:"max_date,omitempty"`
	Options          []entities.FieldOption `json:"options,omitempty"`
	LessThanField    string                 `json:"less_than_field,omitempty"`
	GreaterThanField string                 `json:"greater_than_field,omitempty"`
}

// RenderedField pairs a definition with its hints and the value to prefill.
type RenderedField struct {
	entities.FieldDefinition
	Hints Hints `json:"hints"`
	Value any   `json:"value,omitempty"`
}

// RenderHints derives presentation hints for field. now resolves the
// "today" date sentinel.
func RenderHints(field entities.FieldDefinition, now time.Time) Hints {
	rules := field.Validation
	if rules == nil {
		rules = &entities.FieldValidation{}
	}
	h := Hints{
		Min:              rules.Min,
		Max:              rules.Max,
		LessThanField:    rules.LessThanField,
		GreaterThanField: rules.GreaterThanField,
	}

	switch field.Type {
	case entities.FieldTypeText:
		h.Input = "text"
	case entities.FieldTypeTextarea:
		h.Input = "textarea"
	case entities.FieldTypeNumber:
		h.Input = "number"
		h.Step = stepFor(rules.Decimals, "any")
	case entities.FieldTypeMoney:
		h.Input = "number"
		h.Prefix = "$"
		h.Step = stepFor(rules.Decimals, "0.01")
	case entities.FieldTypePercentage:
		h.Input = "number"
		h.Suffix = "%"
		h.Step = stepFor(rules.Decimals, "any")
		if h.Min == nil {
			h.Min = float64Ptr(0)
		}
		if h.Max == nil {
			h.Max = float64Ptr(100)
		}
	case entities.FieldTypeDate:
		h.Input = "date"
		h.MinDate = ResolveDate(rules.MinDate, now)
		h.MaxDate = ResolveDate(rules.MaxDate, now)
	case entities.FieldTypeDropdown:
		h.Input = "select"
		h.Options = field.Options
	case entities.FieldTypeCheckbox:
		h.Input = "checkbox"
	default:
		h.Input = "text"
	}

	if field.Type.IsText() {
		h.MinLength = rules.MinLength
		h.MaxLength = rules.MaxLength
		h.Pattern = rules.Pattern
	}
	return h
}

// RenderForm renders every field of a schema, prefilled from values.
func RenderForm(fields []entities.FieldDefinition, values map[string]any, now time.Time) []RenderedField {
	out := make([]RenderedField, 0, len(fields))
	for _, f := range fields {
		out = append(out, RenderedField{FieldDefinition: f, Hints: RenderHints(f, now), Value: values[f.ID]})
	}
	return out
}

// ResolveDate maps the "today" sentinel to now and passes other values through.
func ResolveDate(v string, now time.Time) string {
	if strings.EqualFold(strings.TrimSpace(v), DateToday) {
		return now.Format(dateLayout)
	}
	return v
}

// FormatMoney renders a money value with the currency prefix and two decimals.
func FormatMoney(v any) string {
	n, ok := ToNumber(v)
	if !ok {
		return ""
	}
	return "$" + strconv.FormatFloat(n, 'f', 2, 64)
}

// FormatPercentage renders a percentage value with its suffix.
func FormatPercentage(v any) string {
	n, ok := ToNumber(v)
	if !ok {
		return ""
	}
	return formatFloat(n) + "%"
}

func stepFor(decimals *int, def string) string {
	if decimals == nil {
		return def
	}
	if *decimals <= 0 {
		return "1"
	}
	return "0." + strings.Repeat("0", *decimals-1) + "1"
}

func float64Ptr(v float64) *float64 {
	return &v
}
