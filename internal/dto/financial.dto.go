package dto

import "github.com/kampusadmin/dashboard-api/internal/domain/finance"

type FinancialPeriodDTO struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

type FinancialReportDTO struct {
	Period  FinancialPeriodDTO          `json:"period"`
	Window  string                      `json:"window"`
	Details []finance.TransactionDetail `json:"details"`
	Total   float64                     `json:"total"`
}

type PartnershipStatsDTO struct {
	Code          string  `json:"code"`
	CustomerCount int64   `json:"customer_count"`
	TotalAmount   float64 `json:"total_amount"`
}
