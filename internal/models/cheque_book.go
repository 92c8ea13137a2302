package models

import "time"

// ChequeBook represents a row of cheque_books.
type ChequeBook struct {
	ChequeBookID     string    `db:"cheque_book_id"`
	AccountID        string    `db:"account_id"`
	SeriesIdentifier string    `db:"series_identifier"`
	StartNumber      int64     `db:"start_number"`
	EndNumber        int64     `db:"end_number"`
	CurrentNumber    int64     `db:"current_number"`
	IssuedDate       time.Time `db:"issued_date"`
	Active           bool      `db:"active"`
	AuditFields
}
