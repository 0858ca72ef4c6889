package finance

import (
	"context"
	"time"

	domain "github.com/kampusadmin/dashboard-api/internal/domain/finance"
	"github.com/kampusadmin/dashboard-api/internal/dto"
)

// ======================================================
// USE CASE
// ======================================================

type GetFinancials struct {
	repo domain.Repository
}

func NewGetFinancials(repo domain.Repository) *GetFinancials {
	return &GetFinancials{repo: repo}
}

// Execute builds the revenue rollup anchored at now: totals for all four
// windows plus the itemized details of the selected window. The repository
// already excludes deleted transactions and transactions of deleted
// customers.
func (uc *GetFinancials) Execute(
	ctx context.Context,
	now time.Time,
	window domain.Window,
) (*dto.FinancialReportDTO, error) {

	details, err := uc.repo.ListTransactionDetailsSince(
		ctx,
		domain.EarliestBound(now),
	)
	if err != nil {
		return nil, err
	}

	totals := domain.Totals(now, details)
	selected := domain.Filter(window, now, details)

	return &dto.FinancialReportDTO{
		Period: dto.FinancialPeriodDTO{
			Daily:   totals.Daily,
			Weekly:  totals.Weekly,
			Monthly: totals.Monthly,
			Yearly:  totals.Yearly,
		},
		Window:  string(window),
		Details: selected,
		Total:   domain.Sum(selected),
	}, nil
}
