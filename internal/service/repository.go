package service

import (
	"context"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
)

// Repository is the persisted side of the detector. Missing collections read
// as empty, never as errors.
type Repository interface {
	// LoadSpamNumbers returns the registry in insertion order.
	LoadSpamNumbers(ctx context.Context) ([]string, error)

	AppendSpamNumber(ctx context.Context, phoneNumber string) error

	// LoadBlocked returns the owner's block list in insertion order.
	LoadBlocked(ctx context.Context, ownerNumber string) ([]string, error)

	AppendBlocked(ctx context.Context, ownerNumber, phoneNumber string) error

	// RemoveBlocked drops every occurrence of phoneNumber from the owner's list.
	RemoveBlocked(ctx context.Context, ownerNumber, phoneNumber string) error

	SaveRawReport(ctx context.Context, r *domain.Report) error
}
