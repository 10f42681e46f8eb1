package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	depositsTable = "deposits"
	// alias gorm gives the joined banks table for the Bank relation
	bankJoinAlias = "Bank"
)

type DefaultDepositRepository struct {
	DB *gorm.DB
}

func NewDefaultDepositRepository(db *gorm.DB) *DefaultDepositRepository {
	return &DefaultDepositRepository{
		DB: db,
	}
}

func (r *DefaultDepositRepository) CreateDeposit(ctx context.Context, deposit *domain.Deposit) error {
	depositModel := mappers.ToGORMDeposit(deposit)
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(depositModel).Error; err != nil {
		return err
	}
	deposit.ID = depositModel.ID
	return nil
}

// UpdateDeposit overwrites every column except the identity and creation time.
func (r *DefaultDepositRepository) UpdateDeposit(ctx context.Context, deposit *domain.Deposit) error {
	result := r.DB.WithContext(ctx).
		Model(&models.DepositModel{ID: deposit.ID}).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(mappers.ToGORMDeposit(deposit))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepositNotFound
	}
	return nil
}

func (r *DefaultDepositRepository) DeleteDeposit(ctx context.Context, depositID int64) error {
	return r.DB.WithContext(ctx).Delete(&models.DepositModel{}, depositID).Error
}

func (r *DefaultDepositRepository) GetDepositByID(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	var depositModel models.DepositModel
	err := r.DB.WithContext(ctx).
		Joins(bankJoinAlias).
		Where(clause.Eq{Column: depositColumn("id"), Value: depositID}).
		First(&depositModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepositNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDeposit(&depositModel), nil
}

func (r *DefaultDepositRepository) ListDeposits(ctx context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error) {
	query := r.DB.WithContext(ctx).
		Joins(bankJoinAlias).
		Where(clause.Eq{Column: depositColumn("is_active"), Value: true})
	query = applyDepositFilter(query, filter)
	query = query.Order(depositOrder(filter))

	var depositModels []*models.DepositModel
	if err := query.Find(&depositModels).Error; err != nil {
		return nil, err
	}
	return toDomainDeposits(depositModels), nil
}

func (r *DefaultDepositRepository) GetBankDeposits(ctx context.Context, bankID int64) ([]*domain.Deposit, error) {
	var depositModels []*models.DepositModel
	err := r.DB.WithContext(ctx).
		Joins(bankJoinAlias).
		Where(clause.Eq{Column: depositColumn("bank_id"), Value: bankID}).
		Order(clause.OrderByColumn{Column: depositColumn("id")}).
		Find(&depositModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainDeposits(depositModels), nil
}

func (r *DefaultDepositRepository) CountActiveByCurrency(ctx context.Context) (map[domain.Currency]int64, error) {
	var rows []struct {
		Currency string
		Total    int64
	}
	err := r.DB.WithContext(ctx).
		Model(&models.DepositModel{}).
		Select("currency, COUNT(*) AS total").
		Where("is_active = ?", true).
		Group("currency").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Currency]int64, len(rows))
	for _, row := range rows {
		counts[domain.Currency(row.Currency)] = row.Total
	}
	return counts, nil
}

func applyDepositFilter(query *gorm.DB, filter domain.DepositFilter) *gorm.DB {
	if filter.BankID != nil {
		query = query.Where(clause.Eq{Column: depositColumn("bank_id"), Value: *filter.BankID})
	}
	if filter.Currency != nil {
		query = query.Where(clause.Eq{Column: depositColumn("currency"), Value: filter.Currency.String()})
	}
	if filter.MinTermMonths != nil {
		query = query.Where(clause.Gte{Column: depositColumn("term_months"), Value: *filter.MinTermMonths})
	}
	if filter.MaxTermMonths != nil {
		query = query.Where(clause.Lte{Column: depositColumn("term_months"), Value: *filter.MaxTermMonths})
	}
	if filter.MinAmount != nil {
		query = query.Where(clause.Lte{Column: depositColumn("min_amount"), Value: *filter.MinAmount})
	}
	return query
}

// depositOrder has no secondary key: ties come back in the store's
// natural row order, which differs between engines.
func depositOrder(filter domain.DepositFilter) clause.OrderByColumn {
	sortBy, desc := filter.Ordering()

	var column clause.Column
	switch sortBy {
	case domain.SortByTerm:
		column = depositColumn("term_months")
	case domain.SortByMinAmount:
		column = depositColumn("min_amount")
	case domain.SortByBank:
		column = clause.Column{Table: bankJoinAlias, Name: "name"}
	default:
		column = depositColumn("interest_rate")
	}
	return clause.OrderByColumn{Column: column, Desc: desc}
}

func depositColumn(name string) clause.Column {
	return clause.Column{Table: depositsTable, Name: name}
}

func toDomainDeposits(depositModels []*models.DepositModel) []*domain.Deposit {
	deposits := make([]*domain.Deposit, len(depositModels))
	for i, depositModel := range depositModels {
		deposits[i] = mappers.ToDomainDeposit(depositModel)
	}
	return deposits
}
