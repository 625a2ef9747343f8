package entities

// FieldType is the type tag of a template field. The field engine
// dispatches on it for validation and rendering.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeTextarea   FieldType = "textarea"
	FieldTypeNumber     FieldType = "number"
	FieldTypeMoney      FieldType = "money"
	FieldTypePercentage FieldType = "percentage"
	FieldTypeDate       FieldType = "date"
	FieldTypeDropdown   FieldType = "dropdown"
	FieldTypeCheckbox   FieldType = "checkbox"
)

var AllFieldTypes = []FieldType{
	FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeMoney,
	FieldTypePercentage, FieldTypeDate, FieldTypeDropdown, FieldTypeCheckbox,
}

func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber || t == FieldTypeMoney || t == FieldTypePercentage
}

func (t FieldType) IsText() bool {
	return t == FieldTypeText || t == FieldTypeTextarea
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldValidation holds the optional constraints of a field. Which keys
// apply depends on the field type.
type FieldValidation struct {
	Min              *float64 `json:"min,omitempty"`
	Max              *float64 `json:"max,omitempty"`
	Decimals         *int     `json:"decimals,omitempty"`
	MinLength        *int     `json:"minLength,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	MinDate          string   `json:"minDate,omitempty"`
	MaxDate          string   `json:"maxDate,omitempty"`
	LessThanField    string   `json:"lessThanField,omitempty"`
	GreaterThanField string   `json:"greaterThanField,omitempty"`
	Message          string   `json:"message,omitempty"`
}

type FieldDefinition struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        FieldType        `json:"type"`
	Required    bool             `json:"required"`
	Description string           `json:"description,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Options     []FieldOption    `json:"options,omitempty"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}
