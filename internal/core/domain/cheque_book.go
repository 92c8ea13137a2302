package domain

import "time"

// ChequeBook reserves the contiguous range [StartNumber, EndNumber] of one bank account.
// The range is immutable once created; books are deactivated, never resized.
type ChequeBook struct {
	ChequeBookID     string    `json:"chequeBookID"`
	AccountID        string    `json:"accountID"`
	SeriesIdentifier string    `json:"seriesIdentifier"`
	StartNumber      int64     `json:"startNumber"`
	EndNumber        int64     `json:"endNumber"`
	CurrentNumber    int64     `json:"currentNumber"` // next number to hand out
	IssuedDate       time.Time `json:"issuedDate"`
	Active           bool      `json:"active"`
	AuditFields
}

// TotalLeaves is the number of cheques in the book.
func (b ChequeBook) TotalLeaves() int64 {
	return b.EndNumber - b.StartNumber + 1
}

// Overlaps reports whether [start, end] intersects the book's range: either candidate
// bound falls inside the book, or a book bound falls inside the candidate.
func (b ChequeBook) Overlaps(start, end int64) bool {
	inBook := func(n int64) bool { return n >= b.StartNumber && n <= b.EndNumber }
	inCandidate := func(n int64) bool { return n >= start && n <= end }
	return inBook(start) || inBook(end) || inCandidate(b.StartNumber) || inCandidate(b.EndNumber)
}

// AdvanceCursor moves CurrentNumber past number if it is not already beyond it.
func (b *ChequeBook) AdvanceCursor(number int64) bool {
	if number+1 <= b.CurrentNumber {
		return false
	}
	b.CurrentNumber = number + 1
	return true
}
