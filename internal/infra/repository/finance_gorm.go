package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/kampusadmin/dashboard-api/internal/domain/finance"
	"github.com/kampusadmin/dashboard-api/internal/models"
)

type FinanceGormRepository struct {
	db *gorm.DB
}

func NewFinanceGormRepository(db *gorm.DB) *FinanceGormRepository {
	return &FinanceGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

// ListTransactionDetailsSince joins payments against their customer and
// applies the referential exclusion: a transaction of a soft-deleted
// customer is invisible even when the transaction row itself is live.
func (r *FinanceGormRepository) ListTransactionDetailsSince(
	ctx context.Context,
	since time.Time,
) ([]domain.TransactionDetail, error) {

	var details []domain.TransactionDetail
	err := r.db.WithContext(ctx).
		Model(&models.FinancialTransaction{}).
		Select(
			"financial_transactions.customer_id AS customer_id, " +
				"customers.full_name AS customer_name, " +
				"financial_transactions.amount AS amount, " +
				"financial_transactions.transaction_date AS transaction_date",
		).
		Joins("JOIN customers ON customers.id = financial_transactions.customer_id").
		Where(
			"financial_transactions.is_deleted = ? AND customers.is_deleted = ? AND financial_transactions.transaction_date >= ?",
			false, false, since,
		).
		Order("financial_transactions.transaction_date DESC").
		Scan(&details).Error

	if err != nil {
		return nil, err
	}

	return details, nil
}

// --------------------------------------------------
// Partnership codes
// --------------------------------------------------

func (r *FinanceGormRepository) ListActivePartnershipCodes(
	ctx context.Context,
) ([]models.PartnershipCode, error) {

	var codes []models.PartnershipCode
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&codes).Error; err != nil {
		return nil, err
	}

	return codes, nil
}

func (r *FinanceGormRepository) CustomerCountsByCode(
	ctx context.Context,
) ([]domain.CodeAggregate, error) {

	var aggs []domain.CodeAggregate
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("partnership_code AS code, COUNT(*) AS count").
		Where("is_deleted = ? AND partnership_code IS NOT NULL", false).
		Group("partnership_code").
		Scan(&aggs).Error

	if err != nil {
		return nil, err
	}

	return aggs, nil
}

func (r *FinanceGormRepository) TransactionTotalsByCode(
	ctx context.Context,
) ([]domain.CodeAggregate, error) {

	var aggs []domain.CodeAggregate
	err := r.db.WithContext(ctx).
		Model(&models.FinancialTransaction{}).
		Select("customers.partnership_code AS code, SUM(financial_transactions.amount) AS total").
		Joins("JOIN customers ON customers.id = financial_transactions.customer_id").
		Where(
			"financial_transactions.is_deleted = ? AND customers.is_deleted = ? AND customers.partnership_code IS NOT NULL",
			false, false,
		).
		Group("customers.partnership_code").
		Scan(&aggs).Error

	if err != nil {
		return nil, err
	}

	return aggs, nil
}

// Compile-time check
var _ domain.Repository = (*FinanceGormRepository)(nil)
