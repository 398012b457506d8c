package repository

import "go-inventory-sales/internal/model"

// SalesLedger is the append-only list of completed sales for the current
// reporting period. It is cleared wholesale when an end-of-day report is
// produced.
type SalesLedger struct {
	records []model.SaleRecord
}

func NewSalesLedger() *SalesLedger {
	return &SalesLedger{}
}

func (l *SalesLedger) Append(record model.SaleRecord) {
	l.records = append(l.records, record)
}

// All returns the records in append order as a copy.
func (l *SalesLedger) All() []model.SaleRecord {
	records := make([]model.SaleRecord, len(l.records))
	copy(records, l.records)
	return records
}

func (l *SalesLedger) Len() int {
	return len(l.records)
}

func (l *SalesLedger) IsEmpty() bool {
	return len(l.records) == 0
}

func (l *SalesLedger) Clear() {
	l.records = nil
}
