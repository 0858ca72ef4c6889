package finance

import (
	"context"

	domain "github.com/kampusadmin/dashboard-api/internal/domain/finance"
	"github.com/kampusadmin/dashboard-api/internal/dto"
)

type GetPartnershipStats struct {
	repo domain.Repository
}

func NewGetPartnershipStats(repo domain.Repository) *GetPartnershipStats {
	return &GetPartnershipStats{repo: repo}
}

// Execute reports, for every ACTIVE partnership code, how many live
// customers reference it and how much they have paid. Codes nobody uses
// still appear with zeros.
func (uc *GetPartnershipStats) Execute(
	ctx context.Context,
) ([]dto.PartnershipStatsDTO, error) {

	codes, err := uc.repo.ListActivePartnershipCodes(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := uc.repo.CustomerCountsByCode(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := uc.repo.TransactionTotalsByCode(ctx)
	if err != nil {
		return nil, err
	}

	countByCode := make(map[string]int64, len(counts))
	for _, agg := range counts {
		countByCode[agg.Code] = agg.Count
	}

	totalByCode := make(map[string]float64, len(totals))
	for _, agg := range totals {
		totalByCode[agg.Code] = agg.Total
	}

	out := make([]dto.PartnershipStatsDTO, 0, len(codes))
	for _, code := range codes {
		out = append(out, dto.PartnershipStatsDTO{
			Code:          code.Code,
			CustomerCount: countByCode[code.Code],
			TotalAmount:   totalByCode[code.Code],
		})
	}

	return out, nil
}
