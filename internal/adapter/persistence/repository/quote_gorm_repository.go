package repository

import (
	"context"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type quoteRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Status      string `gorm:"size:20;not null;index"`
	Type        string `gorm:"size:20;not null;index"`
	ApplicantID *int64 `gorm:"index"`
	GroupID     *int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (quoteRow) TableName() string { return "quotes" }

type groupRow struct {
	ID          int64       `gorm:"primaryKey;autoIncrement"`
	Name        string      `gorm:"size:200;not null"`
	ContactName string      `gorm:"size:200"`
	Email       string      `gorm:"size:200"`
	Phone       string      `gorm:"size:40"`
	Address     addressCols `gorm:"embedded"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (groupRow) TableName() string { return "quote_groups" }

type applicantRow struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	FirstName  string `gorm:"size:120"`
	MiddleName string `gorm:"size:120"`
	LastName   string `gorm:"size:120"`
	Birthdate  *time.Time
	Email      string      `gorm:"size:200"`
	Phone      string      `gorm:"size:40"`
	Address    addressCols `gorm:"embedded"`
	GroupID    *int64      `gorm:"index"`
	ClassID    *int64      `gorm:"index"`
	QuoteType  string      `gorm:"size:20;not null"`
	Status     string      `gorm:"size:20;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (applicantRow) TableName() string { return "applicants" }

type employeeClassRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	GroupID     int64  `gorm:"not null;index"`
	ClassName   string `gorm:"size:120;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (employeeClassRow) TableName() string { return "employee_classes" }

type coverageRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	QuoteID     int64  `gorm:"not null;index"`
	ProductType string `gorm:"size:120;not null"`
	Details     string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (coverageRow) TableName() string { return "coverages" }

type quoteBenefitRow struct {
	ID                  int64                      `gorm:"primaryKey;autoIncrement"`
	QuoteID             int64                      `gorm:"not null;index"`
	TemplateDbID        int64                      `gorm:"not null"`
	TemplateUUID        string                     `gorm:"size:36;not null;index"`
	TemplateName        string                     `gorm:"size:200"`
	TemplateVersion     string                     `gorm:"size:20"`
	FieldSchemaSnapshot []entities.FieldDefinition `gorm:"serializer:json"`
	ConfiguredValues    map[string]any             `gorm:"serializer:json"`
	InstanceNumber      int                        `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (quoteBenefitRow) TableName() string { return "quote_benefits" }

// QuoteGormRepository persists quotes and everything a quote owns.
type QuoteGormRepository struct {
	db *gorm.DB
}

var (
	_ interfaces.IQuoteRepository        = (*QuoteGormRepository)(nil)
	_ interfaces.IQuoteBenefitRepository = (*QuoteGormRepository)(nil)
)

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{db: db}
}

// QuotingModels lists the tables of the quoting store.
func QuotingModels() []any {
	return []any{&quoteRow{}, &groupRow{}, &applicantRow{}, &employeeClassRow{}, &coverageRow{}, &quoteBenefitRow{}}
}

func (r *QuoteGormRepository) CreateIndividualQuote(ctx context.Context, q entities.Quote, applicant entities.Applicant) (entities.QuoteDetail, error) {
	var detail entities.QuoteDetail
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a := toApplicantRow(applicant)
		a.ID = 0
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		row := toQuoteRow(q)
		row.ID = 0
		row.ApplicantID = &a.ID
		row.GroupID = nil
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		created := fromApplicantRow(a)
		detail = entities.QuoteDetail{Quote: fromQuoteRow(row), Applicant: &created}
		return nil
	})
	if err != nil {
		return entities.QuoteDetail{}, err
	}
	return withEmptySlices(detail), nil
}

func (r *QuoteGormRepository) CreateGroupQuote(ctx context.Context, q entities.Quote, group entities.Group) (entities.QuoteDetail, error) {
	var detail entities.QuoteDetail
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := toGroupRow(group)
		g.ID = 0
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		row := toQuoteRow(q)
		row.ID = 0
		row.GroupID = &g.ID
		row.ApplicantID = nil
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		created := fromGroupRow(g)
		detail = entities.QuoteDetail{Quote: fromQuoteRow(row), Group: &created}
		return nil
	})
	if err != nil {
		return entities.QuoteDetail{}, err
	}
	return withEmptySlices(detail), nil
}

func (r *QuoteGormRepository) GetQuote(ctx context.Context, id int64) (entities.Quote, error) {
	var row quoteRow
	ok, err := first(r.db.WithContext(ctx), &row, id)
	if !ok {
		return entities.Quote{}, err
	}
	return fromQuoteRow(row), nil
}

func (r *QuoteGormRepository) GetQuoteByGroupID(ctx context.Context, groupID int64) (entities.Quote, error) {
	var row quoteRow
	ok, err := first(r.db.WithContext(ctx).Where("group_id = ?", groupID), &row)
	if !ok {
		return entities.Quote{}, err
	}
	return fromQuoteRow(row), nil
}

func (r *QuoteGormRepository) GetQuoteByApplicantID(ctx context.Context, applicantID int64) (entities.Quote, error) {
	var row quoteRow
	ok, err := first(r.db.WithContext(ctx).Where("applicant_id = ?", applicantID), &row)
	if !ok {
		return entities.Quote{}, err
	}
	return fromQuoteRow(row), nil
}

func (r *QuoteGormRepository) GetQuoteDetail(ctx context.Context, id int64) (entities.QuoteDetail, error) {
	db := r.db.WithContext(ctx)
	var q quoteRow
	ok, err := first(db, &q, id)
	if !ok {
		return entities.QuoteDetail{}, err
	}
	detail := entities.QuoteDetail{Quote: fromQuoteRow(q)}

	if q.ApplicantID != nil {
		var a applicantRow
		found, err := first(db, &a, *q.ApplicantID)
		if err != nil {
			return entities.QuoteDetail{}, err
		}
		if found {
			applicant := fromApplicantRow(a)
			detail.Applicant = &applicant
		}
	}
	if q.GroupID != nil {
		var g groupRow
		found, err := first(db, &g, *q.GroupID)
		if err != nil {
			return entities.QuoteDetail{}, err
		}
		if found {
			group := fromGroupRow(g)
			detail.Group = &group
		}
		var classes []employeeClassRow
		if err := db.Where("group_id = ?", *q.GroupID).Order("id ASC").Find(&classes).Error; err != nil {
			return entities.QuoteDetail{}, err
		}
		for _, c := range classes {
			detail.EmployeeClasses = append(detail.EmployeeClasses, fromEmployeeClassRow(c))
		}
		var members []applicantRow
		if err := db.Where("group_id = ?", *q.GroupID).Order("id ASC").Find(&members).Error; err != nil {
			return entities.QuoteDetail{}, err
		}
		for _, m := range members {
			detail.GroupApplicants = append(detail.GroupApplicants, fromApplicantRow(m))
		}
	}

	var coverages []coverageRow
	if err := db.Where("quote_id = ?", id).Order("id ASC").Find(&coverages).Error; err != nil {
		return entities.QuoteDetail{}, err
	}
	for _, c := range coverages {
		detail.Coverages = append(detail.Coverages, fromCoverageRow(c))
	}
	benefits, err := r.ListBenefits(ctx, id)
	if err != nil {
		return entities.QuoteDetail{}, err
	}
	detail.Benefits = benefits
	return withEmptySlices(detail), nil
}

func (r *QuoteGormRepository) ListQuotes(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	q := r.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		q = q.Where("type = ?", string(filter.Type))
	}
	var rows []quoteRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuoteRow(row))
	}
	return out, nil
}

func (r *QuoteGormRepository) UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error) {
	res := r.db.WithContext(ctx).Model(&quoteRow{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Quote{}, res.Error
	}
	return r.GetQuote(ctx, id)
}

func (r *QuoteGormRepository) TransitionQuoteStatus(ctx context.Context, id int64, from, to entities.QuoteStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&quoteRow{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *QuoteGormRepository) DeleteQuoteCascade(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q quoteRow
		ok, err := first(tx, &q, id)
		if !ok {
			return err
		}
		if err := tx.Where("quote_id = ?", id).Delete(&quoteBenefitRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quote_id = ?", id).Delete(&coverageRow{}).Error; err != nil {
			return err
		}
		if q.ApplicantID != nil {
			if err := tx.Delete(&applicantRow{}, *q.ApplicantID).Error; err != nil {
				return err
			}
		}
		if q.GroupID != nil {
			if err := tx.Where("group_id = ?", *q.GroupID).Delete(&applicantRow{}).Error; err != nil {
				return err
			}
			if err := tx.Where("group_id = ?", *q.GroupID).Delete(&employeeClassRow{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&groupRow{}, *q.GroupID).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&quoteRow{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *QuoteGormRepository) GetApplicant(ctx context.Context, id int64) (entities.Applicant, error) {
	var row applicantRow
	ok, err := first(r.db.WithContext(ctx), &row, id)
	if !ok {
		return entities.Applicant{}, err
	}
	return fromApplicantRow(row), nil
}

func (r *QuoteGormRepository) CreateApplicant(ctx context.Context, a entities.Applicant) (entities.Applicant, error) {
	row := toApplicantRow(a)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Applicant{}, err
	}
	return fromApplicantRow(row), nil
}

func (r *QuoteGormRepository) UpdateApplicant(ctx context.Context, a entities.Applicant) (entities.Applicant, error) {
	var existing applicantRow
	ok, err := first(r.db.WithContext(ctx), &existing, a.ID)
	if !ok {
		return entities.Applicant{}, err
	}
	row := toApplicantRow(a)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.Applicant{}, err
	}
	return fromApplicantRow(row), nil
}

func (r *QuoteGormRepository) DeleteApplicant(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&applicantRow{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *QuoteGormRepository) GetEmployeeClass(ctx context.Context, id int64) (entities.EmployeeClass, error) {
	var row employeeClassRow
	ok, err := first(r.db.WithContext(ctx), &row, id)
	if !ok {
		return entities.EmployeeClass{}, err
	}
	return fromEmployeeClassRow(row), nil
}

func (r *QuoteGormRepository) CreateEmployeeClass(ctx context.Context, c entities.EmployeeClass) (entities.EmployeeClass, error) {
	row := toEmployeeClassRow(c)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.EmployeeClass{}, err
	}
	return fromEmployeeClassRow(row), nil
}

func (r *QuoteGormRepository) UpdateEmployeeClass(ctx context.Context, c entities.EmployeeClass) (entities.EmployeeClass, error) {
	res := r.db.WithContext(ctx).Model(&employeeClassRow{}).Where("id = ?", c.ID).
		Updates(map[string]any{"class_name": c.ClassName, "description": c.Description})
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.EmployeeClass{}, res.Error
	}
	return r.GetEmployeeClass(ctx, c.ID)
}

func (r *QuoteGormRepository) DeleteEmployeeClass(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&applicantRow{}).Where("class_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return interfaces.ErrStillReferenced
		}
		res := tx.Delete(&employeeClassRow{}, id)
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}

func (r *QuoteGormRepository) GetCoverage(ctx context.Context, id int64) (entities.Coverage, error) {
	var row coverageRow
	ok, err := first(r.db.WithContext(ctx), &row, id)
	if !ok {
		return entities.Coverage{}, err
	}
	return fromCoverageRow(row), nil
}

func (r *QuoteGormRepository) CreateCoverage(ctx context.Context, c entities.Coverage) (entities.Coverage, error) {
	row := coverageRow{QuoteID: c.QuoteID, ProductType: c.ProductType, Details: c.Details, CreatedAt: c.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Coverage{}, err
	}
	return fromCoverageRow(row), nil
}

func (r *QuoteGormRepository) DeleteCoverage(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&coverageRow{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *QuoteGormRepository) CreateBenefit(ctx context.Context, b entities.QuoteBenefit) (entities.QuoteBenefit, error) {
	row := toQuoteBenefitRow(b)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.QuoteBenefit{}, err
	}
	return fromQuoteBenefitRow(row), nil
}

func (r *QuoteGormRepository) GetBenefit(ctx context.Context, id int64) (entities.QuoteBenefit, error) {
	var row quoteBenefitRow
	ok, err := first(r.db.WithContext(ctx), &row, id)
	if !ok {
		return entities.QuoteBenefit{}, err
	}
	return fromQuoteBenefitRow(row), nil
}

func (r *QuoteGormRepository) ListBenefits(ctx context.Context, quoteID int64) ([]entities.QuoteBenefit, error) {
	var rows []quoteBenefitRow
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.QuoteBenefit, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuoteBenefitRow(row))
	}
	return out, nil
}

func (r *QuoteGormRepository) UpdateBenefitValues(ctx context.Context, id int64, values map[string]any) (entities.QuoteBenefit, error) {
	var row quoteBenefitRow
	ok, err := first(r.db.WithContext(ctx), &row, id)
	if !ok {
		return entities.QuoteBenefit{}, err
	}
	row.ConfiguredValues = values
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.QuoteBenefit{}, err
	}
	return fromQuoteBenefitRow(row), nil
}

func (r *QuoteGormRepository) DeleteBenefit(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&quoteBenefitRow{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *QuoteGormRepository) MaxInstanceNumber(ctx context.Context, quoteID int64, templateUUID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&quoteBenefitRow{}).
		Where("quote_id = ? AND template_uuid = ?", quoteID, templateUUID).
		Select("COALESCE(MAX(instance_number), 0)").Scan(&max).Error
	return max, err
}

func withEmptySlices(d entities.QuoteDetail) entities.QuoteDetail {
	if d.EmployeeClasses == nil {
		d.EmployeeClasses = []entities.EmployeeClass{}
	}
	if d.GroupApplicants == nil {
		d.GroupApplicants = []entities.Applicant{}
	}
	if d.Coverages == nil {
		d.Coverages = []entities.Coverage{}
	}
	if d.Benefits == nil {
		d.Benefits = []entities.QuoteBenefit{}
	}
	return d
}

func toQuoteRow(q entities.Quote) quoteRow {
	return quoteRow{
		ID:          q.ID,
		Status:      string(q.Status),
		Type:        string(q.Type),
		ApplicantID: q.ApplicantID,
		GroupID:     q.GroupID,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func fromQuoteRow(row quoteRow) entities.Quote {
	return entities.Quote{
		ID:          row.ID,
		Status:      entities.QuoteStatus(row.Status),
		Type:        entities.QuoteType(row.Type),
		ApplicantID: row.ApplicantID,
		GroupID:     row.GroupID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toGroupRow(g entities.Group) groupRow {
	return groupRow{
		ID:          g.ID,
		Name:        g.Name,
		ContactName: g.ContactName,
		Email:       g.Email,
		Phone:       g.Phone,
		Address:     toAddressCols(g.Address),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func fromGroupRow(row groupRow) entities.Group {
	return entities.Group{
		ID:          row.ID,
		Name:        row.Name,
		ContactName: row.ContactName,
		Email:       row.Email,
		Phone:       row.Phone,
		Address:     fromAddressCols(row.Address),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toApplicantRow(a entities.Applicant) applicantRow {
	return applicantRow{
		ID:         a.ID,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
		LastName:   a.LastName,
		Birthdate:  a.Birthdate,
		Email:      a.Email,
		Phone:      a.Phone,
		Address:    toAddressCols(a.Address),
		GroupID:    a.GroupID,
		ClassID:    a.ClassID,
		QuoteType:  string(a.QuoteType),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func fromApplicantRow(row applicantRow) entities.Applicant {
	return entities.Applicant{
		ID:         row.ID,
		FirstName:  row.FirstName,
		MiddleName: row.MiddleName,
		LastName:   row.LastName,
		Birthdate:  row.Birthdate,
		Email:      row.Email,
		Phone:      row.Phone,
		Address:    fromAddressCols(row.Address),
		GroupID:    row.GroupID,
		ClassID:    row.ClassID,
		QuoteType:  entities.QuoteType(row.QuoteType),
		Status:     entities.ApplicantStatus(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toEmployeeClassRow(c entities.EmployeeClass) employeeClassRow {
	return employeeClassRow{ID: c.ID, GroupID: c.GroupID, ClassName: c.ClassName, Description: c.Description, CreatedAt: c.CreatedAt}
}

func fromEmployeeClassRow(row employeeClassRow) entities.EmployeeClass {
	return entities.EmployeeClass{ID: row.ID, GroupID: row.GroupID, ClassName: row.ClassName, Description: row.Description, CreatedAt: row.CreatedAt}
}

func fromCoverageRow(row coverageRow) entities.Coverage {
	return entities.Coverage{ID: row.ID, QuoteID: row.QuoteID, ProductType: row.ProductType, Details: row.Details, CreatedAt: row.CreatedAt}
}

func toQuoteBenefitRow(b entities.QuoteBenefit) quoteBenefitRow {
	return quoteBenefitRow{
		ID:                  b.ID,
		QuoteID:             b.QuoteID,
		TemplateDbID:        b.TemplateDbID,
		TemplateUUID:        b.TemplateUUID,
		TemplateName:        b.TemplateName,
		TemplateVersion:     b.TemplateVersion,
		FieldSchemaSnapshot: b.FieldSchemaSnapshot,
		ConfiguredValues:    b.ConfiguredValues,
		InstanceNumber:      b.InstanceNumber,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func fromQuoteBenefitRow(row quoteBenefitRow) entities.QuoteBenefit {
	return entities.QuoteBenefit{
		ID:                  row.ID,
		QuoteID:             row.QuoteID,
		TemplateDbID:        row.TemplateDbID,
		TemplateUUID:        row.TemplateUUID,
		TemplateName:        row.TemplateName,
		TemplateVersion:     row.TemplateVersion,
		FieldSchemaSnapshot: row.FieldSchemaSnapshot,
		ConfiguredValues:    row.ConfiguredValues,
		InstanceNumber:      row.InstanceNumber,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
