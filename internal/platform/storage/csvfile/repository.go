package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

const (
	spamFile    = "spam_numbers.csv"
	reportsFile = "reports.csv"
)

// csvRepository keeps every collection in its own flat file under dir.
// Files are read in full on each query.
type csvRepository struct {
	dir    string
	logger *zap.Logger
}

// NewCSVRepository creates dir if needed.
func NewCSVRepository(dir string, logger *zap.Logger) (service.Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csvfile: failed to create data dir: %w", err)
	}

	logger.Info("Using flat file storage", zap.String("dir", dir))
	return &csvRepository{dir: dir, logger: logger}, nil
}

func (r *csvRepository) LoadSpamNumbers(ctx context.Context) ([]string, error) {
	return r.readColumn(filepath.Join(r.dir, spamFile))
}

func (r *csvRepository) AppendSpamNumber(ctx context.Context, phoneNumber string) error {
	return r.appendRow(filepath.Join(r.dir, spamFile), phoneNumber)
}

func (r *csvRepository) LoadBlocked(ctx context.Context, ownerNumber string) ([]string, error) {
	path, err := r.blockedPath(ownerNumber)
	if err != nil {
		return nil, err
	}
	return r.readColumn(path)
}

func (r *csvRepository) AppendBlocked(ctx context.Context, ownerNumber, phoneNumber string) error {
	path, err := r.blockedPath(ownerNumber)
	if err != nil {
		return err
	}
	return r.appendRow(path, phoneNumber)
}

// RemoveBlocked rewrites the owner's file through a temp file and rename, so
// readers see either the old list or the new one.
func (r *csvRepository) RemoveBlocked(ctx context.Context, ownerNumber, phoneNumber string) error {
	path, err := r.blockedPath(ownerNumber)
	if err != nil {
		return err
	}

	current, err := r.readColumn(path)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(current))
	for _, n := range current {
		if n != phoneNumber {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(current) {
		return nil
	}

	return r.rewrite(path, kept)
}

func (r *csvRepository) SaveRawReport(ctx context.Context, report *domain.Report) error {
	return r.appendRow(filepath.Join(r.dir, reportsFile),
		report.ID.String(),
		report.PhoneNumber,
		report.CreatedAt.Format(time.RFC3339Nano),
	)
}

// blockedPath keys the file by the owner's number. Owners that would escape
// the data dir are rejected.
func (r *csvRepository) blockedPath(owner string) (string, error) {
	if owner == "" || strings.ContainsAny(owner, `/\`) || strings.Contains(owner, "..") {
		return "", fmt.Errorf("csvfile: owner %q: %w", owner, domain.ErrInvalidNumber)
	}
	return filepath.Join(r.dir, "blocked_"+owner+".csv"), nil
}

// readColumn returns the first field of every row. A missing file is an empty list.
func (r *csvRepository) readColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvfile: failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: failed to read %s: %w", filepath.Base(path), err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		out = append(out, row[0])
	}
	return out, nil
}

func (r *csvRepository) appendRow(path string, fields ...string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csvfile: failed to open %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		f.Close()
		return fmt.Errorf("csvfile: failed to append to %s: %w", filepath.Base(path), err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("csvfile: failed to append to %s: %w", filepath.Base(path), err)
	}

	return f.Close()
}

func (r *csvRepository) rewrite(path string, values []string) error {
	tmp, err := os.CreateTemp(r.dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("csvfile: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("csvfile: failed to rewrite %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(tmp)
	for _, v := range values {
		if err := w.Write([]string{v}); err != nil {
			return fail(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("csvfile: failed to rewrite %s: %w", filepath.Base(path), err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("csvfile: failed to replace %s: %w", filepath.Base(path), err)
	}

	r.logger.Debug("Block list rewritten", zap.String("file", filepath.Base(path)), zap.Int("entries", len(values)))
	return nil
}
