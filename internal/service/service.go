package service

import (
	"context"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
)

type Service interface {
	Check(ctx context.Context, rawPhone, word string) (*domain.Assessment, error)

	Report(ctx context.Context, rawPhone string) (*domain.ReportReceipt, error)

	// Block returns false when the number was already on the user's list.
	Block(ctx context.Context, rawUser, rawPhone string) (bool, error)

	Unblock(ctx context.Context, rawUser, rawPhone string) error

	ListBlocked(ctx context.Context, rawUser string) ([]string, error)

	// TopSpam ranks reported numbers; limit <= 0 means DefaultTopLimit.
	TopSpam(ctx context.Context, limit int) ([]domain.RankedNumber, error)

	BlockGraph(ctx context.Context, rawUser string) (*domain.Graph, error)

	// NormalizeNumber returns the key the other operations store raw input under.
	NormalizeNumber(raw string) string
}
