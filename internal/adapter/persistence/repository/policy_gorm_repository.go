package repository

import (
	"context"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type individualPolicyRow struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	PolicyNumber   string `gorm:"size:40;not null;uniqueIndex"`
	SourceQuoteID  int64  `gorm:"not null;index"`
	EffectiveDate  time.Time
	ExpirationDate *time.Time
	Status         string `gorm:"size:20;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (individualPolicyRow) TableName() string { return "individual_policies" }

type policyHolderRow struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	PolicyID          int64  `gorm:"not null;uniqueIndex"`
	SourceApplicantID *int64 `gorm:"index"`
	FirstName         string `gorm:"size:120"`
	MiddleName        string `gorm:"size:120"`
	LastName          string `gorm:"size:120"`
	Birthdate         *time.Time
	Email             string      `gorm:"size:200;not null"`
	Phone             string      `gorm:"size:40"`
	Address           addressCols `gorm:"embedded"`
}

func (policyHolderRow) TableName() string { return "policy_holders" }

type dependentRow struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	PolicyHolderID int64  `gorm:"not null;index"`
	FirstName      string `gorm:"size:120;not null"`
	LastName       string `gorm:"size:120;not null"`
	Birthdate      *time.Time
	Relationship   string `gorm:"size:60"`
}

func (dependentRow) TableName() string { return "dependents" }

type beneficiaryRow struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	PolicyHolderID int64   `gorm:"not null;index"`
	FullName       string  `gorm:"size:200;not null"`
	Relationship   string  `gorm:"size:60"`
	Percentage     float64 `gorm:"not null"`
}

func (beneficiaryRow) TableName() string { return "beneficiaries" }

type individualCoverageRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	PolicyID    int64  `gorm:"not null;index"`
	ProductType string `gorm:"size:120;not null"`
	Details     string `gorm:"type:text"`
	Premium     *float64
}

func (individualCoverageRow) TableName() string { return "individual_policy_coverages" }

type dependentCoverageRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	DependentID int64  `gorm:"not null;index"`
	ProductType string `gorm:"size:120;not null"`
	Details     string `gorm:"type:text"`
	Premium     *float64
}

func (dependentCoverageRow) TableName() string { return "dependent_coverages" }

type groupPolicyRow struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	PolicyNumber   string `gorm:"size:40;not null;uniqueIndex"`
	SourceQuoteID  int64  `gorm:"not null;index"`
	SourceGroupID  *int64
	GroupName      string `gorm:"size:200"`
	EffectiveDate  time.Time
	ExpirationDate *time.Time
	Status         string `gorm:"size:20;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (groupPolicyRow) TableName() string { return "group_policies" }

type policyClassRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	GroupPolicyID int64  `gorm:"not null;index"`
	ClassName     string `gorm:"size:120;not null"`
	Description   string `gorm:"type:text"`
}

func (policyClassRow) TableName() string { return "policy_classes" }

type groupMemberRow struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	PolicyClassID     int64  `gorm:"not null;index"`
	SourceApplicantID int64  `gorm:"not null"`
	FirstName         string `gorm:"size:120"`
	MiddleName        string `gorm:"size:120"`
	LastName          string `gorm:"size:120"`
	Birthdate         *time.Time
	Email             string `gorm:"size:200"`
	Phone             string `gorm:"size:40"`
}

func (groupMemberRow) TableName() string { return "group_members" }

type classCoverageRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	PolicyClassID int64  `gorm:"not null;index"`
	ProductType   string `gorm:"size:120;not null"`
	Details       string `gorm:"type:text"`
	Premium       *float64
}

func (classCoverageRow) TableName() string { return "class_coverages" }

// PolicyGormRepository persists individual and group policy aggregates.
//
// No database-level cascade is relied on: deletes walk the tree
// children-first inside one transaction.
type PolicyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPolicyRepository = (*PolicyGormRepository)(nil)

func NewPolicyGormRepository(db *gorm.DB) *PolicyGormRepository {
	return &PolicyGormRepository{db: db}
}

// PolicyModels lists the tables of the policy store.
func PolicyModels() []any {
	return []any{
		&individualPolicyRow{}, &policyHolderRow{}, &dependentRow{}, &beneficiaryRow{},
		&individualCoverageRow{}, &dependentCoverageRow{},
		&groupPolicyRow{}, &policyClassRow{}, &groupMemberRow{}, &classCoverageRow{},
	}
}

func (r *PolicyGormRepository) PolicyNumberExists(ctx context.Context, number string) (bool, error) {
	db := r.db.WithContext(ctx)
	var n int64
	if err := db.Model(&individualPolicyRow{}).Where("policy_number = ?", number).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := db.Model(&groupPolicyRow{}).Where("policy_number = ?", number).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateIndividualPolicy inserts policy, holder and coverages in that order.
func (r *PolicyGormRepository) CreateIndividualPolicy(ctx context.Context, p entities.IndividualPolicy) (entities.IndividualPolicy, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := individualPolicyRow{
			PolicyNumber:   p.PolicyNumber,
			SourceQuoteID:  p.SourceQuoteID,
			EffectiveDate:  p.EffectiveDate,
			ExpirationDate: p.ExpirationDate,
			Status:         string(p.Status),
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		id = row.ID

		if p.Holder != nil {
			h := toPolicyHolderRow(*p.Holder)
			h.ID = 0
			h.PolicyID = row.ID
			if err := tx.Create(&h).Error; err != nil {
				return err
			}
		}
		for _, c := range p.Coverages {
			cov := individualCoverageRow{PolicyID: row.ID, ProductType: c.ProductType, Details: c.Details, Premium: c.Premium}
			if err := tx.Create(&cov).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.IndividualPolicy{}, err
	}
	return r.GetIndividualPolicy(ctx, id)
}

func (r *PolicyGormRepository) GetIndividualPolicy(ctx context.Context, id int64) (entities.IndividualPolicy, error) {
	db := r.db.WithContext(ctx)
	var row individualPolicyRow
	ok, err := first(db, &row, id)
	if !ok {
		return entities.IndividualPolicy{}, err
	}
	p := fromIndividualPolicyRow(row)

	var h policyHolderRow
	found, err := first(db.Where("policy_id = ?", id), &h)
	if err != nil {
		return entities.IndividualPolicy{}, err
	}
	if found {
		holder, err := loadHolder(db, h)
		if err != nil {
			return entities.IndividualPolicy{}, err
		}
		p.Holder = &holder
	}

	var covs []individualCoverageRow
	if err := db.Where("policy_id = ?", id).Order("id ASC").Find(&covs).Error; err != nil {
		return entities.IndividualPolicy{}, err
	}
	for _, c := range covs {
		p.Coverages = append(p.Coverages, entities.IndividualPolicyCoverage{
			ID: c.ID, PolicyID: c.PolicyID, ProductType: c.ProductType, Details: c.Details, Premium: c.Premium,
		})
	}
	return p, nil
}

func (r *PolicyGormRepository) ListIndividualPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.IndividualPolicy, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var rows []individualPolicyRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.IndividualPolicy, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromIndividualPolicyRow(row))
	}
	return out, nil
}

func (r *PolicyGormRepository) UpdateIndividualPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.IndividualPolicy, error) {
	res := r.db.WithContext(ctx).Model(&individualPolicyRow{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.IndividualPolicy{}, res.Error
	}
	return r.GetIndividualPolicy(ctx, id)
}

// DeleteIndividualPolicy removes dependent coverages, dependents,
// beneficiaries, the holder, policy coverages and finally the policy.
func (r *PolicyGormRepository) DeleteIndividualPolicy(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row individualPolicyRow
		ok, err := first(tx, &row, id)
		if !ok {
			return err
		}
		var holders []policyHolderRow
		if err := tx.Where("policy_id = ?", id).Find(&holders).Error; err != nil {
			return err
		}
		for _, h := range holders {
			if err := deleteHolderChildren(tx, h.ID); err != nil {
				return err
			}
			if err := tx.Delete(&policyHolderRow{}, h.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("policy_id = ?", id).Delete(&individualCoverageRow{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&individualPolicyRow{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// CreateGroupPolicy inserts the policy then, per class in input order, the
// class, its members and its coverages.
func (r *PolicyGormRepository) CreateGroupPolicy(ctx context.Context, p entities.GroupPolicy) (entities.GroupPolicy, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := groupPolicyRow{
			PolicyNumber:   p.PolicyNumber,
			SourceQuoteID:  p.SourceQuoteID,
			SourceGroupID:  p.SourceGroupID,
			GroupName:      p.GroupName,
			EffectiveDate:  p.EffectiveDate,
			ExpirationDate: p.ExpirationDate,
			Status:         string(p.Status),
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		id = row.ID

		for _, class := range p.Classes {
			c := policyClassRow{GroupPolicyID: row.ID, ClassName: class.ClassName, Description: class.Description}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			for _, m := range class.Members {
				member := groupMemberRow{
					PolicyClassID:     c.ID,
					SourceApplicantID: m.SourceApplicantID,
					FirstName:         m.FirstName,
					MiddleName:        m.MiddleName,
					LastName:          m.LastName,
					Birthdate:         m.Birthdate,
					Email:             m.Email,
					Phone:             m.Phone,
				}
				if err := tx.Create(&member).Error; err != nil {
					return err
				}
			}
			for _, cov := range class.Coverages {
				cc := classCoverageRow{PolicyClassID: c.ID, ProductType: cov.ProductType, Details: cov.Details, Premium: cov.Premium}
				if err := tx.Create(&cc).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return entities.GroupPolicy{}, err
	}
	return r.GetGroupPolicy(ctx, id)
}

func (r *PolicyGormRepository) GetGroupPolicy(ctx context.Context, id int64) (entities.GroupPolicy, error) {
	db := r.db.WithContext(ctx)
	var row groupPolicyRow
	ok, err := first(db, &row, id)
	if !ok {
		return entities.GroupPolicy{}, err
	}
	p := fromGroupPolicyRow(row)

	var classes []policyClassRow
	if err := db.Where("group_policy_id = ?", id).Order("id ASC").Find(&classes).Error; err != nil {
		return entities.GroupPolicy{}, err
	}
	for _, c := range classes {
		class := entities.PolicyClass{
			ID:            c.ID,
			GroupPolicyID: c.GroupPolicyID,
			ClassName:     c.ClassName,
			Description:   c.Description,
			Members:       []entities.GroupMember{},
			Coverages:     []entities.ClassCoverage{},
		}
		var members []groupMemberRow
		if err := db.Where("policy_class_id = ?", c.ID).Order("id ASC").Find(&members).Error; err != nil {
			return entities.GroupPolicy{}, err
		}
		for _, m := range members {
			class.Members = append(class.Members, entities.GroupMember{
				ID:                m.ID,
				PolicyClassID:     m.PolicyClassID,
				SourceApplicantID: m.SourceApplicantID,
				FirstName:         m.FirstName,
				MiddleName:        m.MiddleName,
				LastName:          m.LastName,
				Birthdate:         m.Birthdate,
				Email:             m.Email,
				Phone:             m.Phone,
			})
		}
		var covs []classCoverageRow
		if err := db.Where("policy_class_id = ?", c.ID).Order("id ASC").Find(&covs).Error; err != nil {
			return entities.GroupPolicy{}, err
		}
		for _, cv := range covs {
			class.Coverages = append(class.Coverages, entities.ClassCoverage{
				ID: cv.ID, PolicyClassID: cv.PolicyClassID, ProductType: cv.ProductType, Details: cv.Details, Premium: cv.Premium,
			})
		}
		p.Classes = append(p.Classes, class)
	}
	return p, nil
}

func (r *PolicyGormRepository) ListGroupPolicies(ctx context.Context, status entities.PolicyStatus) ([]entities.GroupPolicy, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var rows []groupPolicyRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.GroupPolicy, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromGroupPolicyRow(row))
	}
	return out, nil
}

func (r *PolicyGormRepository) UpdateGroupPolicyStatus(ctx context.Context, id int64, status entities.PolicyStatus) (entities.GroupPolicy, error) {
	res := r.db.WithContext(ctx).Model(&groupPolicyRow{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.GroupPolicy{}, res.Error
	}
	return r.GetGroupPolicy(ctx, id)
}

func (r *PolicyGormRepository) DeleteGroupPolicy(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row groupPolicyRow
		ok, err := first(tx, &row, id)
		if !ok {
			return err
		}
		var classIDs []int64
		if err := tx.Model(&policyClassRow{}).Where("group_policy_id = ?", id).Pluck("id", &classIDs).Error; err != nil {
			return err
		}
		for _, classID := range classIDs {
			if err := tx.Where("policy_class_id = ?", classID).Delete(&classCoverageRow{}).Error; err != nil {
				return err
			}
			if err := tx.Where("policy_class_id = ?", classID).Delete(&groupMemberRow{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&policyClassRow{}, classID).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&groupPolicyRow{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *PolicyGormRepository) GetPolicyHolder(ctx context.Context, id int64) (entities.PolicyHolder, error) {
	db := r.db.WithContext(ctx)
	var row policyHolderRow
	ok, err := first(db, &row, id)
	if !ok {
		return entities.PolicyHolder{}, err
	}
	return loadHolder(db, row)
}

func (r *PolicyGormRepository) AddDependent(ctx context.Context, d entities.Dependent) (entities.Dependent, error) {
	row := dependentRow{
		PolicyHolderID: d.PolicyHolderID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Birthdate:      d.Birthdate,
		Relationship:   d.Relationship,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Dependent{}, err
	}
	return fromDependentRow(row), nil
}

func (r *PolicyGormRepository) GetDependent(ctx context.Context, id int64) (entities.Dependent, error) {
	db := r.db.WithContext(ctx)
	var row dependentRow
	ok, err := first(db, &row, id)
	if !ok {
		return entities.Dependent{}, err
	}
	d := fromDependentRow(row)
	var covs []dependentCoverageRow
	if err := db.Where("dependent_id = ?", id).Order("id ASC").Find(&covs).Error; err != nil {
		return entities.Dependent{}, err
	}
	for _, c := range covs {
		d.Coverages = append(d.Coverages, fromDependentCoverageRow(c))
	}
	return d, nil
}

// DeleteDependent removes the dependent's coverages first.
func (r *PolicyGormRepository) DeleteDependent(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dependent_id = ?", id).Delete(&dependentCoverageRow{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&dependentRow{}, id)
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}

func (r *PolicyGormRepository) AddDependentCoverage(ctx context.Context, c entities.DependentCoverage) (entities.DependentCoverage, error) {
	row := dependentCoverageRow{DependentID: c.DependentID, ProductType: c.ProductType, Details: c.Details, Premium: c.Premium}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.DependentCoverage{}, err
	}
	return fromDependentCoverageRow(row), nil
}

func (r *PolicyGormRepository) AddBeneficiary(ctx context.Context, b entities.Beneficiary) (entities.Beneficiary, error) {
	row := beneficiaryRow{PolicyHolderID: b.PolicyHolderID, FullName: b.FullName, Relationship: b.Relationship, Percentage: b.Percentage}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Beneficiary{}, err
	}
	return fromBeneficiaryRow(row), nil
}

func (r *PolicyGormRepository) DeleteBeneficiary(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&beneficiaryRow{}, id)
	return res.RowsAffected > 0, res.Error
}

func deleteHolderChildren(tx *gorm.DB, holderID int64) error {
	var dependentIDs []int64
	if err := tx.Model(&dependentRow{}).Where("policy_holder_id = ?", holderID).Pluck("id", &dependentIDs).Error; err != nil {
		return err
	}
	if len(dependentIDs) > 0 {
		if err := tx.Where("dependent_id IN ?", dependentIDs).Delete(&dependentCoverageRow{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("policy_holder_id = ?", holderID).Delete(&dependentRow{}).Error; err != nil {
		return err
	}
	return tx.Where("policy_holder_id = ?", holderID).Delete(&beneficiaryRow{}).Error
}

func loadHolder(db *gorm.DB, row policyHolderRow) (entities.PolicyHolder, error) {
	h := fromPolicyHolderRow(row)

	var deps []dependentRow
	if err := db.Where("policy_holder_id = ?", row.ID).Order("id ASC").Find(&deps).Error; err != nil {
		return entities.PolicyHolder{}, err
	}
	for _, d := range deps {
		dep := fromDependentRow(d)
		var covs []dependentCoverageRow
		if err := db.Where("dependent_id = ?", d.ID).Order("id ASC").Find(&covs).Error; err != nil {
			return entities.PolicyHolder{}, err
		}
		for _, c := range covs {
			dep.Coverages = append(dep.Coverages, fromDependentCoverageRow(c))
		}
		h.Dependents = append(h.Dependents, dep)
	}

	var bens []beneficiaryRow
	if err := db.Where("policy_holder_id = ?", row.ID).Order("id ASC").Find(&bens).Error; err != nil {
		return entities.PolicyHolder{}, err
	}
	for _, b := range bens {
		h.Beneficiaries = append(h.Beneficiaries, fromBeneficiaryRow(b))
	}
	return h, nil
}

func fromIndividualPolicyRow(row individualPolicyRow) entities.IndividualPolicy {
	return entities.IndividualPolicy{
		ID:             row.ID,
		PolicyNumber:   row.PolicyNumber,
		SourceQuoteID:  row.SourceQuoteID,
		EffectiveDate:  row.EffectiveDate,
		ExpirationDate: row.ExpirationDate,
		Status:         entities.PolicyStatus(row.Status),
		Coverages:      []entities.IndividualPolicyCoverage{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func fromGroupPolicyRow(row groupPolicyRow) entities.GroupPolicy {
	return entities.GroupPolicy{
		ID:             row.ID,
		PolicyNumber:   row.PolicyNumber,
		SourceQuoteID:  row.SourceQuoteID,
		SourceGroupID:  row.SourceGroupID,
		GroupName:      row.GroupName,
		EffectiveDate:  row.EffectiveDate,
		ExpirationDate: row.ExpirationDate,
		Status:         entities.PolicyStatus(row.Status),
		Classes:        []entities.PolicyClass{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toPolicyHolderRow(h entities.PolicyHolder) policyHolderRow {
	return policyHolderRow{
		ID:                h.ID,
		PolicyID:          h.PolicyID,
		SourceApplicantID: h.SourceApplicantID,
		FirstName:         h.FirstName,
		MiddleName:        h.MiddleName,
		LastName:          h.LastName,
		Birthdate:         h.Birthdate,
		Email:             h.Email,
		Phone:             h.Phone,
		Address:           toAddressCols(h.Address),
	}
}

func fromPolicyHolderRow(row policyHolderRow) entities.PolicyHolder {
	return entities.PolicyHolder{
		ID:                row.ID,
		PolicyID:          row.PolicyID,
		SourceApplicantID: row.SourceApplicantID,
		FirstName:         row.FirstName,
		MiddleName:        row.MiddleName,
		LastName:          row.LastName,
		Birthdate:         row.Birthdate,
		Email:             row.Email,
		Phone:             row.Phone,
		Address:           fromAddressCols(row.Address),
		Dependents:        []entities.Dependent{},
		Beneficiaries:     []entities.Beneficiary{},
	}
}

func fromDependentRow(row dependentRow) entities.Dependent {
	return entities.Dependent{
		ID:             row.ID,
		PolicyHolderID: row.PolicyHolderID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Birthdate:      row.Birthdate,
		Relationship:   row.Relationship,
		Coverages:      []entities.DependentCoverage{},
	}
}

func fromDependentCoverageRow(row dependentCoverageRow) entities.DependentCoverage {
	return entities.DependentCoverage{
		ID: row.ID, DependentID: row.DependentID, ProductType: row.ProductType, Details: row.Details, Premium: row.Premium,
	}
}

func fromBeneficiaryRow(row beneficiaryRow) entities.Beneficiary {
	return entities.Beneficiary{
		ID: row.ID, PolicyHolderID: row.PolicyHolderID, FullName: row.FullName, Relationship: row.Relationship, Percentage: row.Percentage,
	}
}
