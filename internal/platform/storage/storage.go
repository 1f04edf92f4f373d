package storage

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/config"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/storage/csvfile"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/storage/scylla"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

// Open returns the repository selected by cfg.StorageBackend and a function
// releasing its resources.
func Open(cfg *config.Config, logger *zap.Logger) (service.Repository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendScylla:
		session, err := scylla.Connect(logger, cfg.ScyllaKeyspace, cfg.ScyllaHost)
		if err != nil {
			return nil, nil, err
		}
		return scylla.NewScyllaRepository(session, logger), session.Close, nil

	case config.BackendCSV:
		repo, err := csvfile.NewCSVRepository(cfg.DataDir, logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
