package finance

import "time"

// TransactionDetail is one payment row joined against its customer. Rows for
// deleted transactions or deleted customers never reach the domain layer.
type TransactionDetail struct {
	CustomerID      uint      `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Amount          float64   `json:"amount"`
	TransactionDate time.Time `json:"transaction_date"`
}

// CodeAggregate is a per-partnership-code grouped figure coming out of the
// store (either a customer count or an amount sum).
type CodeAggregate struct {
	Code  string
	Count int64
	Total float64
}
