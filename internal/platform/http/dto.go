package http

import (
	"errors"
	"strings"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
)

type CreateReportRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (r *CreateReportRequest) Validate() error {
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return domain.ErrMissingNumber
	}
	return nil
}

type BlockRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (r *BlockRequest) Validate() error {
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return domain.ErrMissingNumber
	}
	return nil
}

type BlockResponse struct {
	PhoneNumber    string `json:"phone_number"`
	AlreadyBlocked bool   `json:"already_blocked"`
}

type BlockedListResponse struct {
	Owner   string   `json:"owner"`
	Blocked []string `json:"blocked"`
}

type TopSpamResponse struct {
	Numbers []domain.RankedNumber `json:"numbers"`
}

// isInputError reports whether err is something the caller can fix.
func isInputError(err error) bool {
	return errors.Is(err, domain.ErrMissingNumber) ||
		errors.Is(err, domain.ErrMissingUser) ||
		errors.Is(err, domain.ErrInvalidNumber)
}
