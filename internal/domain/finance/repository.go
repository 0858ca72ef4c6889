package finance

import (
	"context"
	"time"

	"github.com/kampusadmin/dashboard-api/internal/models"
)

type Repository interface {
	// -------- Transactions --------
	ListTransactionDetailsSince(
		ctx context.Context,
		since time.Time,
	) ([]TransactionDetail, error)

	// -------- Partnership codes --------
	ListActivePartnershipCodes(
		ctx context.Context,
	) ([]models.PartnershipCode, error)

	CustomerCountsByCode(
		ctx context.Context,
	) ([]CodeAggregate, error)

	TransactionTotalsByCode(
		ctx context.Context,
	) ([]CodeAggregate, error)
}
