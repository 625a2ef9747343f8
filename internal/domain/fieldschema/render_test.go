package fieldschema

import (
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"
)

func TestRenderHints(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("percentage defaults to 0-100", func(t *testing.T) {
		h := RenderHints(entities.FieldDefinition{ID: "p", Type: entities.FieldTypePercentage}, now)
		if h.Min == nil || *h.Min != 0 || h.Max == nil || *h.Max != 100 || h.Suffix != "%" {
			t.Fatalf("unexpected hints %+v", h)
		}
	})

	t.Run("percentage keeps explicit bounds", func(t *testing.T) {
		h := RenderHints(entities.FieldDefinition{ID: "p", Type: entities.FieldTypePercentage, Validation: &entities.FieldValidation{Max: f64(80)}}, now)
		if *h.Min != 0 || *h.Max != 80 {
			t.Fatalf("expected 0-80, got %v-%v", *h.Min, *h.Max)
		}
	})

	t.Run("money prefix and step", func(t *testing.T) {
		h := RenderHints(entities.FieldDefinition{ID: "m", Type: entities.FieldTypeMoney}, now)
		if h.Prefix != "$" || h.Step != "0.01" || h.Input != "number" {
			t.Fatalf("unexpected hints %+v", h)
		}
	})

	t.Run("decimals drive the step", func(t *testing.T) {
		h := RenderHints(entities.FieldDefinition{ID: "n", Type: entities.FieldTypeNumber, Validation: &entities.FieldValidation{Decimals: intp(3)}}, now)
		if h.Step != "0.001" {
			t.Fatalf("expected 0.001 got %s", h.Step)
		}
	})

	t.Run("today resolves at render time", func(t *testing.T) {
		h := RenderHints(entities.FieldDefinition{ID: "d", Type: entities.FieldTypeDate, Validation: &entities.FieldValidation{MinDate: "today", MaxDate: "2030-01-01"}}, now)
		if h.MinDate != "2025-03-14" || h.MaxDate != "2030-01-01" {
			t.Fatalf("unexpected dates %s %s", h.MinDate, h.MaxDate)
		}
	})

	t.Run("dropdown carries options", func(t *testing.T) {
		opts := []entities.FieldOption{{Value: "a", Label: "A"}}
		h := RenderHints(entities.FieldDefinition{ID: "s", Type: entities.FieldTypeDropdown, Options: opts}, now)
		if h.Input != "select" || len(h.Options) != 1 {
			t.Fatalf("unexpected hints %+v", h)
		}
	})
}

func TestRenderFormPrefillsValues(t *testing.T) {
	fields := []entities.FieldDefinition{{ID: "a", Name: "A", Type: entities.FieldTypeText}, {ID: "b", Name: "B", Type: entities.FieldTypeCheckbox}}
	out := RenderForm(fields, map[string]any{"a": "x"}, time.Now())
	if len(out) != 2 || out[0].Value != "x" || out[1].Value != nil {
		t.Fatalf("unexpected render %+v", out)
	}
}

func TestFormatters(t *testing.T) {
	if FormatMoney("12") != "$12.00" {
		t.Fatalf("unexpected money format %s", FormatMoney("12"))
	}
	if FormatMoney("x") != "" {
		t.Fatalf("expected empty for non-number")
	}
	if FormatPercentage(12.5) != "12.5%" {
		t.Fatalf("unexpected percentage format %s", FormatPercentage(12.5))
	}
}
