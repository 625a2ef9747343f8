package entities

import (
	"fmt"
	"time"
)

// TemplateType tells which kind of quote a benefit applies to.
type TemplateType string

const (
	TemplateTypeGroup      TemplateType = "group"
	TemplateTypeIndividual TemplateType = "individual"
)

func (t TemplateType) Valid() bool {
	return t == TemplateTypeGroup || t == TemplateTypeIndividual
}

// TemplateStatus represents the lifecycle of one template version.
//
// Domain notes:
//   - draft rows are edited in place and keep their version.
//   - at most one row per TemplateID may be active at any time.
type TemplateStatus string

const (
	TemplateStatusDraft    TemplateStatus = "draft"
	TemplateStatusActive   TemplateStatus = "active"
	TemplateStatusArchived TemplateStatus = "archived"
)

func (s TemplateStatus) Valid() bool {
	switch s {
	case TemplateStatusDraft, TemplateStatusActive, TemplateStatusArchived:
		return true
	}
	return false
}

// VersionBump selects which component a revision increments.
type VersionBump string

const (
	VersionBumpMajor VersionBump = "major"
	VersionBumpMinor VersionBump = "minor"
)

// BenefitCategory groups templates in the designer catalog.
type BenefitCategory struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Icon         string         `json:"icon"`
	AppliesTo    []TemplateType `json:"applies_to"`
	DisplayOrder int            `json:"display_order"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (c BenefitCategory) Supports(t TemplateType) bool {
	for _, a := range c.AppliesTo {
		if a == t {
			return true
		}
	}
	return false
}

// BenefitTemplate is one version of a logical benefit definition.
//
// Storage model:
//   - ID is the per-version row identity (templateDbId).
//   - TemplateID is the UUID shared by every version of the same template.
type BenefitTemplate struct {
	ID            int64             `json:"id"`
	TemplateID    string            `json:"template_id"`
	CategoryID    int64             `json:"category_id"`
	Type          TemplateType      `json:"type"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Version       string            `json:"version"`
	MajorVersion  int               `json:"major_version"`
	MinorVersion  int               `json:"minor_version"`
	FieldSchema   []FieldDefinition `json:"field_schema"`
	DefaultValues map[string]any    `json:"default_values"`
	Status        TemplateStatus    `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// SetVersion keeps the display string in line with the numeric pair.
func (t *BenefitTemplate) SetVersion(major, minor int) {
	t.MajorVersion = major
	t.MinorVersion = minor
	t.Version = FormatVersion(major, minor)
}

func FormatVersion(major, minor int) string {
	return fmt.Sprintf("%d.%d", major, minor)
}

// TemplatePatch carries the mutable fields of a revision. Nil means unchanged.
type TemplatePatch struct {
	CategoryID    *int64
	Name          *string
	Description   *string
	FieldSchema   []FieldDefinition
	DefaultValues map[string]any
	Status        *TemplateStatus
}

// TemplateFilter narrows ListTemplates. Zero values mean "any".
type TemplateFilter struct {
	Type       TemplateType
	CategoryID int64
	Status     TemplateStatus
	LatestOnly bool
}
