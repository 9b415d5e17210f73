package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nameapi/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelQuery reports whether the schema was already created.
const sentinelQuery = "SELECT to_regclass('public.names') IS NOT NULL"

var steps = []migrationStep{
	{
		Name: "create_table_names",
		SQL: `CREATE TABLE IF NOT EXISTS names (
  id        BIGSERIAL PRIMARY KEY,
  name      TEXT      NOT NULL CHECK (btrim(name) <> ''),
  last_name TEXT      NOT NULL CHECK (btrim(last_name) <> '')
);`,
	},
}

// EnsureMigrated creates the names table unless it already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()
	base := logging.Fields{"component": "database", "db_host": dbHost}

	log.Log(base.With(logging.Fields{"event": "db_migration_check", "status": "starting"}))

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Log(base.With(logging.Fields{
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms":   time.Since(start).Milliseconds(),
		}))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Log(base.With(logging.Fields{
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"duration_ms": time.Since(start).Milliseconds(),
		}))
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Log(base.With(logging.Fields{
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Log(base.With(logging.Fields{
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}))
	}

	log.Log(base.With(logging.Fields{
		"event":       "db_migration_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}))
	return nil
}
