package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type step struct {
	name string
	sql  string
}

var steps = []step{
	{
		name: "create_table_samples",
		sql: `CREATE TABLE IF NOT EXISTS samples (
  id         BIGSERIAL   PRIMARY KEY,
  title      TEXT        NOT NULL,
  content    TEXT        NOT NULL DEFAULT '',
  author     TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		name: "create_index_samples_created_at",
		sql:  `CREATE INDEX IF NOT EXISTS idx_samples_created_at ON samples (created_at);`,
	},
	{
		name: "create_index_samples_author",
		sql:  `CREATE INDEX IF NOT EXISTS idx_samples_author ON samples (author);`,
	},
}

// EnsureMigrated applies the schema steps unless the samples table already
// exists. The sentinel check keeps restarts cheap; individual steps are
// idempotent anyway (IF NOT EXISTS), so a crash mid-run heals on the next
// boot.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()
	report := func(event, level string, extra map[string]any) {
		entry := map[string]any{
			"ts":          time.Now().In(loc).Format(time.RFC3339Nano),
			"level":       level,
			"component":   "database",
			"event":       event,
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		for k, v := range extra {
			entry[k] = v
		}
		if b, err := json.Marshal(entry); err == nil {
			log.SetFlags(0)
			log.Println(string(b))
		}
	}

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.samples') IS NOT NULL").Scan(&exists); err != nil {
		report("db_migration_failed", "error", map[string]any{"error": err.Error()})
		return fmt.Errorf("check sentinel table: %w", err)
	}
	if exists {
		report("db_migration_skip", "info", nil)
		return nil
	}

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			report("db_migration_failed", "error", map[string]any{
				"migration_step": s.name,
				"error":          err.Error(),
			})
			return fmt.Errorf("migration step %s: %w", s.name, err)
		}
		report("db_migration_step", "info", map[string]any{
			"migration_step":   s.name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	report("db_migration_success", "info", nil)
	return nil
}
