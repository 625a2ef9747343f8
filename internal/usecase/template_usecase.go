package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/domain/fieldschema"
	"insurance_portal/internal/domain/versioning"
	"insurance_portal/internal/infrastructure/metrics"
	"insurance_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTemplateNotFound = errors.New("benefit template not found")
	ErrTemplateNotDraft = errors.New("only draft templates can be deleted")
)

// CreateTemplateInput is the payload of a brand new logical template.
type CreateTemplateInput struct {
	CategoryID    int64
	Type          entities.TemplateType
	Name          string
	Description   string
	FieldSchema   []entities.FieldDefinition
	DefaultValues map[string]any
	Status        entities.TemplateStatus
}

// TemplateForm is a template with its fields ready for rendering.
type TemplateForm struct {
	Template entities.BenefitTemplate   `json:"template"`
	Fields   []fieldschema.RenderedField `json:"fields"`
}

type ITemplateUseCase interface {
	CreateTemplate(ctx context.Context, in CreateTemplateInput) (entities.BenefitTemplate, error)
	ReviseTemplate(ctx context.Context, id int64, patch entities.TemplatePatch, bump entities.VersionBump) (entities.BenefitTemplate, error)
	SetTemplateStatus(ctx context.Context, id int64, status entities.TemplateStatus) (entities.BenefitTemplate, error)
	GetTemplate(ctx context.Context, id int64) (entities.BenefitTemplate, error)
	ListTemplates(ctx context.Context, filter entities.TemplateFilter) ([]entities.BenefitTemplate, error)
	ListVersions(ctx context.Context, id int64) ([]entities.BenefitTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
	ValidateValues(ctx context.Context, id int64, values map[string]any) (map[string]string, error)
	RenderForm(ctx context.Context, id int64) (TemplateForm, error)
}

type TemplateUseCase struct {
	repo       interfaces.ITemplateRepository
	categories interfaces.ICategoryRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(repo interfaces.ITemplateRepository, categories interfaces.ICategoryRepository, logger *zap.Logger) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, categories: categories, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

func (u *TemplateUseCase) CreateTemplate(ctx context.Context, in CreateTemplateInput) (entities.BenefitTemplate, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.BenefitTemplate{}, newValidationError("Template name is required")
	}
	if !in.Type.Valid() {
		return entities.BenefitTemplate{}, newValidationError("Template type must be group or individual")
	}
	if in.Status == "" {
		in.Status = entities.TemplateStatusDraft
	}
	if !in.Status.Valid() {
		return entities.BenefitTemplate{}, newValidationError("Unknown template status: " + string(in.Status))
	}
	if err := u.checkCategory(ctx, in.CategoryID, in.Type); err != nil {
		return entities.BenefitTemplate{}, err
	}
	if err := checkFields(in.FieldSchema, in.DefaultValues); err != nil {
		return entities.BenefitTemplate{}, err
	}

	now := u.now()
	t := entities.BenefitTemplate{
		TemplateID:    uuid.NewString(),
		CategoryID:    in.CategoryID,
		Type:          in.Type,
		Name:          in.Name,
		Description:   in.Description,
		FieldSchema:   nonNilFields(in.FieldSchema),
		DefaultValues: nonNilValues(in.DefaultValues),
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	t.SetVersion(1, 0)

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	metrics.TemplateVersionsCreated.WithLabelValues("initial").Inc()
	u.logger.Info("[template][usecase] created",
		zap.Int64("template_db_id", created.ID), zap.String("template_id", created.TemplateID), zap.String("status", string(created.Status)))
	return created, nil
}

// ReviseTemplate edits drafts in place. Active and archived rows are never
// mutated; a new version row is inserted instead and an active predecessor
// is archived. The bump starts from the highest version of the template, so
// revising an older row never repeats a version number.
func (u *TemplateUseCase) ReviseTemplate(ctx context.Context, id int64, patch entities.TemplatePatch, bump entities.VersionBump) (entities.BenefitTemplate, error) {
	if bump == "" {
		bump = entities.VersionBumpMinor
	}
	if bump != entities.VersionBumpMajor && bump != entities.VersionBumpMinor {
		return entities.BenefitTemplate{}, newValidationError("Version bump must be major or minor")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.BenefitTemplate{}, newValidationError("Unknown template status: " + string(*patch.Status))
	}

	current, err := u.GetTemplate(ctx, id)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	merged, err := u.applyPatch(ctx, current, patch)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	merged.UpdatedAt = u.now()

	if current.Status == entities.TemplateStatusDraft {
		merged.Status = current.Status
		updated, err := u.repo.Update(ctx, merged)
		if err != nil {
			return entities.BenefitTemplate{}, err
		}
		if updated.ID == 0 {
			return entities.BenefitTemplate{}, ErrTemplateNotFound
		}
		u.logger.Info("[template][usecase] draft edited in place", zap.Int64("template_db_id", id), zap.String("version", updated.Version))
		if patch.Status != nil && *patch.Status != updated.Status {
			return u.SetTemplateStatus(ctx, id, *patch.Status)
		}
		return updated, nil
	}

	siblings, err := u.repo.ListByTemplateID(ctx, current.TemplateID)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	base := versioning.Highest(current, siblings)

	next := merged
	next.ID = 0
	next.SetVersion(versioning.Next(base.MajorVersion, base.MinorVersion, bump))
	next.Status = entities.TemplateStatusDraft
	if patch.Status != nil {
		next.Status = *patch.Status
	}
	next.CreatedAt = merged.UpdatedAt

	created, err := u.repo.CreateVersion(ctx, current.ID, next)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	metrics.TemplateVersionsCreated.WithLabelValues(string(bump)).Inc()
	u.logger.Info("[template][usecase] new version",
		zap.String("template_id", created.TemplateID),
		zap.String("from_version", current.Version),
		zap.String("to_version", created.Version),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (u *TemplateUseCase) SetTemplateStatus(ctx context.Context, id int64, status entities.TemplateStatus) (entities.BenefitTemplate, error) {
	if !status.Valid() {
		return entities.BenefitTemplate{}, newValidationError("Unknown template status: " + string(status))
	}
	if _, err := u.GetTemplate(ctx, id); err != nil {
		return entities.BenefitTemplate{}, err
	}

	var (
		updated entities.BenefitTemplate
		err     error
	)
	if status == entities.TemplateStatusActive {
		updated, err = u.repo.Activate(ctx, id)
	} else {
		updated, err = u.repo.UpdateStatus(ctx, id, status)
	}
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if updated.ID == 0 {
		return entities.BenefitTemplate{}, ErrTemplateNotFound
	}
	u.logger.Info("[template][usecase] status set", zap.Int64("template_db_id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *TemplateUseCase) GetTemplate(ctx context.Context, id int64) (entities.BenefitTemplate, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if t.ID == 0 {
		return entities.BenefitTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

// ListTemplates applies the repository filters first, then reduces to the
// newest version per TemplateID when LatestOnly is set.
func (u *TemplateUseCase) ListTemplates(ctx context.Context, filter entities.TemplateFilter) ([]entities.BenefitTemplate, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, newValidationError("Template type must be group or individual")
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, newValidationError("Unknown template status: " + string(filter.Status))
	}
	rows, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.LatestOnly {
		rows = versioning.LatestPerTemplate(rows)
	}
	return rows, nil
}

// ListVersions returns every version of the logical template that row id
// belongs to, newest first.
func (u *TemplateUseCase) ListVersions(ctx context.Context, id int64) ([]entities.BenefitTemplate, error) {
	t, err := u.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := u.repo.ListByTemplateID(ctx, t.TemplateID)
	if err != nil {
		return nil, err
	}
	versioning.NewestFirst(rows)
	return rows, nil
}

func (u *TemplateUseCase) DeleteTemplate(ctx context.Context, id int64) error {
	t, err := u.GetTemplate(ctx, id)
	if err != nil {
		return err
	}
	if t.Status != entities.TemplateStatusDraft {
		return ErrTemplateNotDraft
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTemplateNotFound
	}
	u.logger.Info("[template][usecase] draft deleted", zap.Int64("template_db_id", id))
	return nil
}

func (u *TemplateUseCase) ValidateValues(ctx context.Context, id int64, values map[string]any) (map[string]string, error) {
	t, err := u.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	return fieldschema.ValidateConfiguredValues(t.FieldSchema, values), nil
}

func (u *TemplateUseCase) RenderForm(ctx context.Context, id int64) (TemplateForm, error) {
	t, err := u.GetTemplate(ctx, id)
	if err != nil {
		return TemplateForm{}, err
	}
	return TemplateForm{Template: t, Fields: fieldschema.RenderForm(t.FieldSchema, t.DefaultValues, u.now())}, nil
}

func (u *TemplateUseCase) applyPatch(ctx context.Context, t entities.BenefitTemplate, patch entities.TemplatePatch) (entities.BenefitTemplate, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return t, newValidationError("Template name is required")
		}
		t.Name = name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.CategoryID != nil && *patch.CategoryID != t.CategoryID {
		if err := u.checkCategory(ctx, *patch.CategoryID, t.Type); err != nil {
			return t, err
		}
		t.CategoryID = *patch.CategoryID
	}
	if patch.FieldSchema != nil {
		t.FieldSchema = patch.FieldSchema
	}
	if patch.DefaultValues != nil {
		t.DefaultValues = patch.DefaultValues
	}
	if patch.FieldSchema != nil || patch.DefaultValues != nil {
		if err := checkFields(t.FieldSchema, t.DefaultValues); err != nil {
			return t, err
		}
	}
	return t, nil
}

func (u *TemplateUseCase) checkCategory(ctx context.Context, categoryID int64, templateType entities.TemplateType) error {
	c, err := u.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c.ID == 0 || !c.IsActive {
		return newValidationError("Category does not exist")
	}
	if !c.Supports(templateType) {
		return newValidationError("Category " + c.Name + " does not apply to " + string(templateType) + " templates")
	}
	return nil
}

func checkFields(fields []entities.FieldDefinition, defaults map[string]any) error {
	if problems := fieldschema.CheckSchema(fields); len(problems) > 0 {
		return newValidationError("Invalid field schema: " + strings.Join(problems, "; "))
	}
	if unknown := fieldschema.UnknownValueKeys(fields, defaults); len(unknown) > 0 {
		return newValidationError("Default values reference unknown fields: " + strings.Join(unknown, ", "))
	}
	return nil
}

func nonNilFields(in []entities.FieldDefinition) []entities.FieldDefinition {
	if in == nil {
		return []entities.FieldDefinition{}
	}
	return in
}

func nonNilValues(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	return in
}
