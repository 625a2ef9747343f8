package fieldschema

import (
	"strings"
	"testing"

	"insurance_portal/internal/domain/entities"
)

func TestCheckSchema(t *testing.T) {
	valid := []entities.FieldDefinition{
		{ID: "deductible", Name: "Deductible", Type: entities.FieldTypeMoney, Required: true, Validation: &entities.FieldValidation{Min: f64(0), Max: f64(5000), LessThanField: "max_oop"}},
		{ID: "max_oop", Name: "Max Out of Pocket", Type: entities.FieldTypeMoney},
		{ID: "tier", Name: "Tier", Type: entities.FieldTypeDropdown, Options: []entities.FieldOption{{Value: "gold", Label: "Gold"}}},
		{ID: "start", Name: "Start", Type: entities.FieldTypeDate, Validation: &entities.FieldValidation{MinDate: "today"}},
	}

	t.Run("valid schema", func(t *testing.T) {
		if problems := CheckSchema(valid); len(problems) != 0 {
			t.Fatalf("expected no problems, got %v", problems)
		}
	})

	t.Run("empty schema is allowed", func(t *testing.T) {
		if problems := CheckSchema(nil); len(problems) != 0 {
			t.Fatalf("expected no problems, got %v", problems)
		}
	})

	cases := []struct {
		name   string
		fields []entities.FieldDefinition
		expect string
	}{
		{name: "unknown type", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: "slider"}}, expect: "type"},
		{name: "missing name", fields: []entities.FieldDefinition{{ID: "a", Type: entities.FieldTypeText}}, expect: "name"},
		{name: "duplicate id", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeText}, {ID: "a", Name: "B", Type: entities.FieldTypeText}}, expect: "duplicate field id"},
		{name: "dropdown without options", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeDropdown}}, expect: "at least one option"},
		{name: "min above max", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeNumber, Validation: &entities.FieldValidation{Min: f64(5), Max: f64(1)}}}, expect: "min is greater than max"},
		{name: "bad pattern", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeText, Validation: &entities.FieldValidation{Pattern: "(["}}}, expect: "pattern does not compile"},
		{name: "bad date bound", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeDate, Validation: &entities.FieldValidation{MaxDate: "tomorrow"}}}, expect: "YYYY-MM-DD"},
		{name: "unknown reference", fields: []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeNumber, Validation: &entities.FieldValidation{GreaterThanField: "zzz"}}}, expect: "unknown field"},
		{name: "non numeric reference", fields: []entities.FieldDefinition{
			{ID: "a", Name: "A", Type: entities.FieldTypeNumber, Validation: &entities.FieldValidation{LessThanField: "b"}},
			{ID: "b", Name: "B", Type: entities.FieldTypeText},
		}, expect: "requires numeric fields"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			problems := CheckSchema(tc.fields)
			if len(problems) == 0 {
				t.Fatalf("expected a problem mentioning %q", tc.expect)
			}
			if !strings.Contains(strings.Join(problems, "|"), tc.expect) {
				t.Fatalf("expected %q in %v", tc.expect, problems)
			}
		})
	}
}

func TestUnknownValueKeys(t *testing.T) {
	fields := []entities.FieldDefinition{{ID: "a"}, {ID: "b"}}
	got := UnknownValueKeys(fields, map[string]any{"a": 1, "z": 2, "c": 3})
	if len(got) != 2 || got[0] != "c" || got[1] != "z" {
		t.Fatalf("unexpected keys %v", got)
	}
}
