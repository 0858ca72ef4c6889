package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kampusadmin/dashboard-api/internal/domain/finance"
	"github.com/kampusadmin/dashboard-api/internal/models"
)

// fakeRepo serves canned rows the way the gorm repository would: deleted
// transactions and deleted customers are already excluded.
type fakeRepo struct {
	details []domain.TransactionDetail
	codes   []models.PartnershipCode
	counts  []domain.CodeAggregate
	totals  []domain.CodeAggregate

	sinceSeen time.Time
}

func (f *fakeRepo) ListTransactionDetailsSince(
	_ context.Context,
	since time.Time,
) ([]domain.TransactionDetail, error) {
	f.sinceSeen = since

	out := make([]domain.TransactionDetail, 0, len(f.details))
	for _, d := range f.details {
		if !d.TransactionDate.Before(since) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActivePartnershipCodes(_ context.Context) ([]models.PartnershipCode, error) {
	return f.codes, nil
}

func (f *fakeRepo) CustomerCountsByCode(_ context.Context) ([]domain.CodeAggregate, error) {
	return f.counts, nil
}

func (f *fakeRepo) TransactionTotalsByCode(_ context.Context) ([]domain.CodeAggregate, error) {
	return f.totals, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func TestGetFinancials(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, loc)

	repo := &fakeRepo{
		details: []domain.TransactionDetail{
			{CustomerID: 1, CustomerName: "Ayşe Yılmaz", Amount: 100, TransactionDate: now.Add(-time.Hour)},
			{CustomerID: 2, CustomerName: "Mehmet Demir", Amount: 200, TransactionDate: now.AddDate(0, 0, -1)},
			{CustomerID: 3, CustomerName: "Zeynep Kaya", Amount: 300, TransactionDate: now.AddDate(0, 0, -40)},
		},
	}

	uc := NewGetFinancials(repo)

	report, err := uc.Execute(context.Background(), now, domain.WindowYearly)
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.Period.Daily)
	assert.Equal(t, 300.0, report.Period.Weekly)
	assert.Equal(t, 300.0, report.Period.Monthly)
	assert.Equal(t, 600.0, report.Period.Yearly)

	assert.Equal(t, "yearly", report.Window)
	assert.Len(t, report.Details, 3)
	assert.Equal(t, 600.0, report.Total)

	// The fetch bound must cover every window at once.
	assert.Equal(t, domain.EarliestBound(now), repo.sinceSeen)
}

func TestGetFinancialsSelectedWindow(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, loc)

	repo := &fakeRepo{
		details: []domain.TransactionDetail{
			{CustomerID: 1, CustomerName: "Ayşe Yılmaz", Amount: 100, TransactionDate: now.Add(-time.Hour)},
			{CustomerID: 2, CustomerName: "Mehmet Demir", Amount: 200, TransactionDate: now.AddDate(0, 0, -1)},
		},
	}

	uc := NewGetFinancials(repo)

	report, err := uc.Execute(context.Background(), now, domain.WindowDaily)
	require.NoError(t, err)

	require.Len(t, report.Details, 1)
	assert.Equal(t, "Ayşe Yılmaz", report.Details[0].CustomerName)
	assert.Equal(t, 100.0, report.Total)

	// Period totals stay full regardless of the detail window.
	assert.Equal(t, 300.0, report.Period.Monthly)
}

func TestGetPartnershipStatsZeroFill(t *testing.T) {
	repo := &fakeRepo{
		codes: []models.PartnershipCode{
			{ID: 1, Code: "ANKARA10", IsActive: true},
			{ID: 2, Code: "IZMIR20", IsActive: true},
			{ID: 3, Code: "UNUSED", IsActive: true},
		},
		counts: []domain.CodeAggregate{
			{Code: "ANKARA10", Count: 3},
			{Code: "IZMIR20", Count: 1},
		},
		totals: []domain.CodeAggregate{
			{Code: "ANKARA10", Total: 4500.50},
		},
	}

	uc := NewGetPartnershipStats(repo)

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, "ANKARA10", stats[0].Code)
	assert.Equal(t, int64(3), stats[0].CustomerCount)
	assert.Equal(t, 4500.50, stats[0].TotalAmount)

	assert.Equal(t, "IZMIR20", stats[1].Code)
	assert.Equal(t, int64(1), stats[1].CustomerCount)
	assert.Equal(t, 0.0, stats[1].TotalAmount)

	// A code nobody used still shows up with zeros.
	assert.Equal(t, "UNUSED", stats[2].Code)
	assert.Equal(t, int64(0), stats[2].CustomerCount)
	assert.Equal(t, 0.0, stats[2].TotalAmount)
}
