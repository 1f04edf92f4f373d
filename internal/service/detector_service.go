package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/freqtree"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/ledger"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/metrics"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/scoring"
)

const (
	DefaultPromotionThreshold = 3
	DefaultTopLimit           = 5
)

// Options tunes the detector. Zero values pick the defaults.
type Options struct {
	PromotionThreshold int
	DefaultRegion      string
	Fixtures           *scoring.Fixtures
	SuspiciousWords    []string
}

// detectorService is the concrete implementation of the Service interface.
// One mutex serializes every operation: the in-memory structures below are
// single-threaded.
type detectorService struct {
	mu sync.Mutex

	repo       Repository
	engine     *scoring.Engine
	normalizer *domain.PhoneNormalizer
	threshold  int

	tree     *freqtree.Tree
	ledger   *ledger.Ledger
	registry map[string]struct{}

	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewDetectorService loads the spam registry from repo and returns a ready service.
func NewDetectorService(ctx context.Context, repo Repository, opts Options, m *metrics.Metrics, logger *zap.Logger) (Service, error) {
	if opts.PromotionThreshold <= 0 {
		opts.PromotionThreshold = DefaultPromotionThreshold
	}
	fx := scoring.DefaultFixtures()
	if opts.Fixtures != nil {
		fx = *opts.Fixtures
	}

	spam, err := repo.LoadSpamNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load spam registry: %w", err)
	}

	s := &detectorService{
		repo:       repo,
		engine:     scoring.NewEngine(fx, opts.SuspiciousWords),
		normalizer: domain.NewPhoneNormalizer(opts.DefaultRegion),
		threshold:  opts.PromotionThreshold,
		tree:       freqtree.New(),
		ledger:     ledger.New(),
		registry:   make(map[string]struct{}, len(spam)),
		metrics:    m,
		logger:     logger,
	}
	for _, n := range spam {
		s.registry[n] = struct{}{}
	}
	s.metrics.RegistrySize.Set(float64(len(s.registry)))

	logger.Info("Spam registry loaded", zap.Int("entries", len(s.registry)))
	return s, nil
}

// ReportCount and InRegistry satisfy scoring.Lookups. Callers hold s.mu.
func (s *detectorService) ReportCount(number string) int {
	return s.tree.Count(number)
}

func (s *detectorService) InRegistry(number string) bool {
	_, ok := s.registry[number]
	return ok
}

func (s *detectorService) Check(ctx context.Context, rawPhone, word string) (*domain.Assessment, error) {
	phone := s.normalizer.Normalize(rawPhone)
	if phone == "" {
		return nil, domain.ErrMissingNumber
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.engine.Evaluate(phone, word, s)
	s.metrics.ObserveCheck(a.Verdict)

	s.logger.Debug("Number checked",
		zap.String("phone", phone),
		zap.String("verdict", string(a.Verdict)),
		zap.Float64("score", a.Score))

	return &a, nil
}

// Report counts the report in both the ledger and the frequency tree, and
// promotes the number into the registry once the tree count reaches the threshold.
func (s *detectorService) Report(ctx context.Context, rawPhone string) (*domain.ReportReceipt, error) {
	phone := s.normalizer.Normalize(rawPhone)
	if phone == "" {
		return nil, domain.ErrMissingNumber
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Persist first so a storage failure leaves the counters untouched.
	if err := s.repo.SaveRawReport(ctx, domain.NewReport(phone)); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	s.ledger.Increment(phone)
	node := s.tree.InsertOrIncrement(phone)
	s.metrics.ReportsTotal.Inc()

	receipt := &domain.ReportReceipt{PhoneNumber: phone, Reports: node.Count}

	if node.Count >= s.threshold && !s.InRegistry(phone) {
		// The report already counted; promotion is retried on the next one.
		if err := s.repo.AppendSpamNumber(ctx, phone); err != nil {
			s.logger.Error("Failed to promote number to spam registry",
				zap.String("phone", phone),
				zap.Int("reports", node.Count),
				zap.Error(err))
			return receipt, nil
		}
		s.registry[phone] = struct{}{}
		receipt.Promoted = true

		s.metrics.PromotionsTotal.Inc()
		s.metrics.RegistrySize.Set(float64(len(s.registry)))
		s.logger.Info("Number promoted to spam registry",
			zap.String("phone", phone),
			zap.Int("reports", node.Count))
	}

	return receipt, nil
}

func (s *detectorService) Block(ctx context.Context, rawUser, rawPhone string) (bool, error) {
	user, phone, err := s.pair(rawUser, rawPhone)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blocked, err := s.repo.LoadBlocked(ctx, user)
	if err != nil {
		return false, fmt.Errorf("load block list: %w", err)
	}
	if slices.Contains(blocked, phone) {
		return false, nil
	}

	if err := s.repo.AppendBlocked(ctx, user, phone); err != nil {
		return false, fmt.Errorf("block number: %w", err)
	}
	s.metrics.ObserveBlockOp("block")

	s.logger.Info("Number blocked", zap.String("user", user), zap.String("phone", phone))
	return true, nil
}

func (s *detectorService) Unblock(ctx context.Context, rawUser, rawPhone string) error {
	user, phone, err := s.pair(rawUser, rawPhone)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.RemoveBlocked(ctx, user, phone); err != nil {
		return fmt.Errorf("unblock number: %w", err)
	}
	s.metrics.ObserveBlockOp("unblock")

	s.logger.Info("Number unblocked", zap.String("user", user), zap.String("phone", phone))
	return nil
}

func (s *detectorService) ListBlocked(ctx context.Context, rawUser string) ([]string, error) {
	user := s.normalizer.Normalize(rawUser)
	if user == "" {
		return nil, domain.ErrMissingUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blocked, err := s.repo.LoadBlocked(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("load block list: %w", err)
	}
	if blocked == nil {
		blocked = []string{}
	}
	return blocked, nil
}

func (s *detectorService) TopSpam(ctx context.Context, limit int) ([]domain.RankedNumber, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	top := s.ledger.Top(limit)
	out := make([]domain.RankedNumber, 0, len(top))
	for _, e := range top {
		out = append(out, domain.RankedNumber{PhoneNumber: e.Number, Reports: e.Count})
	}
	return out, nil
}

func (s *detectorService) BlockGraph(ctx context.Context, rawUser string) (*domain.Graph, error) {
	blocked, err := s.ListBlocked(ctx, rawUser)
	if err != nil {
		return nil, err
	}
	return domain.NewBlockGraph(s.normalizer.Normalize(rawUser), blocked), nil
}

func (s *detectorService) NormalizeNumber(raw string) string {
	return s.normalizer.Normalize(raw)
}

// pair normalizes a (user, number) input pair; the number is checked first.
func (s *detectorService) pair(rawUser, rawPhone string) (string, string, error) {
	phone := s.normalizer.Normalize(rawPhone)
	if phone == "" {
		return "", "", domain.ErrMissingNumber
	}
	user := s.normalizer.Normalize(rawUser)
	if user == "" {
		return "", "", domain.ErrMissingUser
	}
	return user, phone, nil
}
