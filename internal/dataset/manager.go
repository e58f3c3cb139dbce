package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
	"github.com/roadsafety-dashboard/roadsafety/recorddb"
)

// Manager holds the indicator table for the life of the process. The
// records are never mutated after InitManager returns.
type Manager struct {
	source   string
	records  []indicator.Record
	entities []string
	counts   map[string]int
	loadedAt time.Time
	store    *recorddb.Client
	logger   *slog.Logger
}

// Statistics summarises the loaded table.
type Statistics struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Entities int       `json:"entities"`
	LoadedAt time.Time `json:"loadedAt"`
}

// InitManager loads the table described by config.
func InitManager(ctx context.Context, config Config, logger *slog.Logger) (*Manager, error) {
	config = config.withDefaults()
	start := time.Now()

	var (
		records []indicator.Record
		store   *recorddb.Client
		err     error
	)

	if isSnapshot(config.DataPath) {
		store, err = recorddb.NewClient(recorddb.NewConfig(config.DataPath, config.Verbose), logger)
		if err != nil {
			return nil, err
		}
		records, err = store.Records(ctx)
		if err != nil {
			logging.SafeCloseWithLogging(store, logger, "close_snapshot")
			return nil, fmt.Errorf("error loading snapshot: %w", err)
		}
	} else {
		raw, err := rawData(ctx, config.DataPath, logger)
		if err != nil {
			return nil, err
		}
		records, err = ParseCSV(bytes.NewReader(raw), config)
		if err != nil {
			return nil, fmt.Errorf("error parsing dataset: %w", err)
		}

		if config.DBPath != "" {
			store, err = buildSnapshot(ctx, config, records, logger)
			if err != nil {
				return nil, err
			}
		}
	}

	manager := NewManager(config.DataPath, records)
	manager.store = store
	manager.logger = logger

	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", config.DataPath),
		slog.Int("records_count", len(records)),
		slog.Int("entities_count", len(manager.entities)),
		slog.Duration("duration", time.Since(start)))

	return manager, nil
}

// NewManager wraps records that are already in memory.
func NewManager(source string, records []indicator.Record) *Manager {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.EntityKey]++
	}

	return &Manager{
		source:   source,
		records:  records,
		entities: indicator.Entities(records),
		counts:   counts,
		loadedAt: time.Now(),
	}
}

// Shutdown releases the snapshot store, if any.
func (manager *Manager) Shutdown() {
	if manager.store != nil {
		logging.SafeCloseWithLogging(manager.store, manager.logger, "close_record_store")
		manager.store = nil
	}
}

// Records returns the full table. Callers must not modify it.
func (manager *Manager) Records() []indicator.Record {
	return manager.records
}

// Entities returns the distinct entity keys in first-seen order.
func (manager *Manager) Entities() []string {
	out := make([]string, len(manager.entities))
	copy(out, manager.entities)
	return out
}

func (manager *Manager) HasEntity(key string) bool {
	_, ok := manager.counts[key]
	return ok
}

// RecordCount returns how many records the entity has.
func (manager *Manager) RecordCount(key string) int {
	return manager.counts[key]
}

// DefaultEntity is the entity shown before the user picks one.
func (manager *Manager) DefaultEntity() string {
	if len(manager.entities) == 0 {
		return ""
	}
	return manager.entities[0]
}

func (manager *Manager) Source() string {
	return manager.source
}

func (manager *Manager) LoadedAt() time.Time {
	return manager.loadedAt
}

func (manager *Manager) Store() *recorddb.Client {
	return manager.store
}

func (manager *Manager) Statistics() Statistics {
	return Statistics{
		Source:   manager.source,
		Records:  len(manager.records),
		Entities: len(manager.entities),
		LoadedAt: manager.loadedAt,
	}
}

func isSnapshot(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return !isRemote(path)
	default:
		return false
	}
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func rawData(ctx context.Context, source string, logger *slog.Logger) ([]byte, error) {
	if !isRemote(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local dataset: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building dataset request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading dataset: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "download_dataset")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading dataset: unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}
	return b, nil
}

func buildSnapshot(ctx context.Context, config Config, records []indicator.Record, logger *slog.Logger) (*recorddb.Client, error) {
	store, err := recorddb.NewClient(recorddb.NewConfig(config.DBPath, config.Verbose), logger)
	if err != nil {
		return nil, err
	}
	if err := store.ImportRecords(ctx, records); err != nil {
		logging.SafeCloseWithLogging(store, logger, "close_snapshot")
		return nil, fmt.Errorf("error writing snapshot: %w", err)
	}
	logging.LogOperation(logger, "snapshot_written",
		slog.String("db_path", config.DBPath),
		slog.Int("records_count", len(records)),
		slog.Duration("duration", store.ImportRuntime()))
	return store, nil
}
