package scylla

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

// reports are kept for 18 months.
const reportTTLSeconds = 47304000

type scyllaRepository struct {
	session *gocql.Session
	logger  *zap.Logger
}

func NewScyllaRepository(session *gocql.Session, logger *zap.Logger) service.Repository {
	return &scyllaRepository{
		session: session,
		logger:  logger,
	}
}

func Connect(logger *zap.Logger, keyspace string, hosts ...string) (*gocql.Session, error) {
	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.ProtoVersion = 4
	cluster.Timeout = 5 * time.Second
	cluster.ConnectTimeout = 5 * time.Second

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scylla: %w", err)
	}

	logger.Info("Connected to ScyllaDB", zap.Strings("hosts", hosts), zap.String("keyspace", keyspace))
	return session, nil
}

func (r *scyllaRepository) LoadSpamNumbers(ctx context.Context) ([]string, error) {
	iter := r.session.Query(`SELECT phone_number FROM spam_registry`).WithContext(ctx).Iter()

	var numbers []string
	var phone string
	for iter.Scan(&phone) {
		numbers = append(numbers, phone)
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("scylla: failed to iterate spam registry: %w", err)
	}

	return numbers, nil
}

// AppendSpamNumber is an upsert, so repeating it is harmless.
func (r *scyllaRepository) AppendSpamNumber(ctx context.Context, phoneNumber string) error {
	err := r.session.Query(`INSERT INTO spam_registry (phone_number, added_at) VALUES (?, ?)`,
		phoneNumber,
		time.Now().UTC(),
	).WithContext(ctx).Exec()

	if err != nil {
		return fmt.Errorf("scylla: failed to add spam number: %w", err)
	}
	return nil
}

// LoadBlocked relies on the timeuuid clustering key for insertion order.
func (r *scyllaRepository) LoadBlocked(ctx context.Context, ownerNumber string) ([]string, error) {
	query := `SELECT phone_number FROM blocked_numbers WHERE owner_number = ?`

	iter := r.session.Query(query, ownerNumber).WithContext(ctx).Iter()

	var numbers []string
	var phone string
	for iter.Scan(&phone) {
		numbers = append(numbers, phone)
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("scylla: failed to iterate blocked numbers: %w", err)
	}

	return numbers, nil
}

func (r *scyllaRepository) AppendBlocked(ctx context.Context, ownerNumber, phoneNumber string) error {
	query := `
        INSERT INTO blocked_numbers (owner_number, position, phone_number)
        VALUES (?, ?, ?)`

	err := r.session.Query(query,
		ownerNumber,
		gocql.TimeUUID(),
		phoneNumber,
	).WithContext(ctx).Exec()

	if err != nil {
		return fmt.Errorf("scylla: failed to block number: %w", err)
	}
	return nil
}

// RemoveBlocked deletes every row of the owner's partition holding phoneNumber
// in a single logged batch.
func (r *scyllaRepository) RemoveBlocked(ctx context.Context, ownerNumber, phoneNumber string) error {
	iter := r.session.Query(`SELECT position, phone_number FROM blocked_numbers WHERE owner_number = ?`,
		ownerNumber,
	).WithContext(ctx).Iter()

	var positions []gocql.UUID
	var pos gocql.UUID
	var phone string
	for iter.Scan(&pos, &phone) {
		if phone == phoneNumber {
			positions = append(positions, pos)
		}
	}
	if err := iter.Close(); err != nil {
		return fmt.Errorf("scylla: failed to iterate blocked numbers: %w", err)
	}

	if len(positions) == 0 {
		return nil
	}

	batch := r.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	for _, p := range positions {
		batch.Query(`DELETE FROM blocked_numbers WHERE owner_number = ? AND position = ?`, ownerNumber, p)
	}

	if err := r.session.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("scylla: failed to unblock number: %w", err)
	}

	r.logger.Debug("Blocked rows deleted", zap.String("owner", ownerNumber), zap.Int("rows", len(positions)))
	return nil
}

func (r *scyllaRepository) SaveRawReport(ctx context.Context, report *domain.Report) error {
	query := `
        INSERT INTO reports (id, phone_number, created_at)
        VALUES (?, ?, ?) USING TTL ?`

	err := r.session.Query(query,
		report.ID.String(),
		report.PhoneNumber,
		report.CreatedAt,
		reportTTLSeconds,
	).WithContext(ctx).Exec()

	if err != nil {
		return fmt.Errorf("scylla: failed to save raw report: %w", err)
	}

	return nil
}
