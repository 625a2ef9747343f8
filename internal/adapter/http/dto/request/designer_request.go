package request

import (
	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase"
)

type CategoryRequest struct {
	Name         string                  `json:"name" binding:"required"`
	Icon         string                  `json:"icon"`
	AppliesTo    []entities.TemplateType `json:"applies_to" binding:"required"`
	DisplayOrder int                     `json:"display_order"`
	IsActive     *bool                   `json:"is_active"`
}

func (r CategoryRequest) ToInput() usecase.CategoryInput {
	return usecase.CategoryInput{
		Name:         cleanText(r.Name),
		Icon:         cleanText(r.Icon),
		AppliesTo:    r.AppliesTo,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

type CreateTemplateRequest struct {
	CategoryID    int64                      `json:"category_id" binding:"required"`
	Type          entities.TemplateType      `json:"type" binding:"required"`
	Name          string                     `json:"name" binding:"required"`
	Description   string                     `json:"description"`
	FieldSchema   []entities.FieldDefinition `json:"field_schema"`
	DefaultValues map[string]any             `json:"default_values"`
	Status        entities.TemplateStatus    `json:"status"`
}

func (r CreateTemplateRequest) ToInput() usecase.CreateTemplateInput {
	return usecase.CreateTemplateInput{
		CategoryID:    r.CategoryID,
		Type:          r.Type,
		Name:          cleanText(r.Name),
		Description:   cleanText(r.Description),
		FieldSchema:   r.FieldSchema,
		DefaultValues: r.DefaultValues,
		Status:        r.Status,
	}
}

// ReviseTemplateRequest is a partial update; omitted fields stay unchanged.
type ReviseTemplateRequest struct {
	CategoryID    *int64                     `json:"category_id"`
	Name          *string                    `json:"name"`
	Description   *string                    `json:"description"`
	FieldSchema   []entities.FieldDefinition `json:"field_schema"`
	DefaultValues map[string]any             `json:"default_values"`
	Status        *entities.TemplateStatus   `json:"status"`
}

func (r ReviseTemplateRequest) ToPatch() entities.TemplatePatch {
	p := entities.TemplatePatch{
		CategoryID:    r.CategoryID,
		FieldSchema:   r.FieldSchema,
		DefaultValues: r.DefaultValues,
		Status:        r.Status,
	}
	if r.Name != nil {
		name := cleanText(*r.Name)
		p.Name = &name
	}
	if r.Description != nil {
		desc := cleanText(*r.Description)
		p.Description = &desc
	}
	return p
}

type TemplateStatusRequest struct {
	Status entities.TemplateStatus `json:"status" binding:"required"`
}

type ValuesRequest struct {
	Values map[string]any `json:"values"`
}
