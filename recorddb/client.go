package recorddb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/roadsafety-dashboard/roadsafety/internal/indicator"
	"github.com/roadsafety-dashboard/roadsafety/internal/logging"
)

// Client stores indicator records in SQLite so a dataset can be snapshotted
// and reloaded without the original CSV.
type Client struct {
	config        Config
	DB            *sql.DB
	logger        *slog.Logger
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create record store: %w", err)
	}

	if config.Verbose {
		logging.LogOperation(logger, "record_store_opened",
			slog.String("path", config.DBPath))
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last ImportRecords call took
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

// ImportRecords replaces the stored records with records, preserving order
func (c *Client) ImportRecords(ctx context.Context, records []indicator.Record) error {
	start := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "import_records")

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("error clearing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (entity_key, indicator_type, description, value)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer logging.SafeCloseWithLogging(stmt, c.logger, "import_records_statement")

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.EntityKey, r.IndicatorType, r.Description, r.Value); err != nil {
			return fmt.Errorf("error inserting record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	c.importRuntime = time.Since(start)
	if c.config.Verbose {
		logging.LogOperation(c.logger, "records_imported",
			slog.Int("records_count", len(records)),
			slog.Duration("duration", c.importRuntime))
	}

	return nil
}

// Records returns every stored record in insertion order
func (c *Client) Records(ctx context.Context) ([]indicator.Record, error) {
	return c.queryRecords(ctx, `
		SELECT entity_key, indicator_type, description, value
		FROM records ORDER BY id`)
}

// RecordsForEntity returns the records for one entity key in insertion order
func (c *Client) RecordsForEntity(ctx context.Context, key string) ([]indicator.Record, error) {
	return c.queryRecords(ctx, `
		SELECT entity_key, indicator_type, description, value
		FROM records WHERE entity_key = ? ORDER BY id`, key)
}

// Entities returns the distinct entity keys in first-seen order
func (c *Client) Entities(ctx context.Context) (entities []string, err error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT entity_key FROM records
		GROUP BY entity_key ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("error querying entities: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_entity_rows")

	entities = make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("error scanning entity: %w", err)
		}
		entities = append(entities, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entities: %w", err)
	}

	return entities, nil
}

// Count returns the number of stored records
func (c *Client) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting records: %w", err)
	}
	return n, nil
}

func (c *Client) queryRecords(ctx context.Context, query string, args ...any) (records []indicator.Record, err error) {
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying records: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_record_rows")

	records = make([]indicator.Record, 0)
	for rows.Next() {
		var r indicator.Record
		if err := rows.Scan(&r.EntityKey, &r.IndicatorType, &r.Description, &r.Value); err != nil {
			return nil, fmt.Errorf("error scanning record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}
