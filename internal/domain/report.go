package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the outcome shown to the user after a check.
type Verdict string

const (
	VerdictSafe          Verdict = "SAFE"
	VerdictLikelySpam    Verdict = "LIKELY_SPAM"
	VerdictConfirmedSpam Verdict = "CONFIRMED_SPAM" // Already in the spam registry
)

// Report is a single "this number scammed me" event.
// It is appended to the report log; counting happens in memory.
type Report struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Assessment is the result of running the scoring signals against a number.
type Assessment struct {
	PhoneNumber string  `json:"phone_number"`
	Verdict     Verdict `json:"verdict"`
	Score       float64 `json:"score"`

	// Confidence is min(score*20, 100). Purely presentational.
	Confidence int `json:"confidence"`

	// Reasons lists the activated signals in evaluation order.
	Reasons []string `json:"reasons"`
}

// IsSpam reports whether the verdict should be presented as a warning.
func (a *Assessment) IsSpam() bool {
	return a.Verdict == VerdictLikelySpam || a.Verdict == VerdictConfirmedSpam
}

// ReportReceipt is what the reporter gets back.
type ReportReceipt struct {
	PhoneNumber string `json:"phone_number"`
	Reports     int    `json:"reports"`

	// Promoted is true only on the report that moved the number into the registry.
	Promoted bool `json:"promoted"`
}

// RankedNumber is one row of the top offenders list.
type RankedNumber struct {
	PhoneNumber string `json:"phone_number"`
	Reports     int    `json:"reports"`
}

// NewReport stamps a report with a fresh ID and the current UTC time.
func NewReport(phone string) *Report {
	return &Report{
		ID:          uuid.New(),
		PhoneNumber: phone,
		CreatedAt:   time.Now().UTC(),
	}
}
