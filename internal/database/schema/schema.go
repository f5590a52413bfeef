// Package schema creates the points and comments tables at startup.
// Every statement is idempotent; there is no versioned migration history.
package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"pointboard/internal/config"
)

type step struct {
	Name string
	SQL  string
}

// idType is substituted for {{id}} in the DDL.
var idType = map[string]string{
	config.DriverSQLite:   "TEXT",
	config.DriverPostgres: "UUID",
}

// No foreign key from comments to points: deleting a point leaves its
// comments in place and comments may reference unknown points.
var steps = []step{
	{
		Name: "create_table_points",
		SQL: `CREATE TABLE IF NOT EXISTS points (
  id     {{id}}           PRIMARY KEY,
  x      DOUBLE PRECISION NOT NULL DEFAULT 0,
  y      DOUBLE PRECISION NOT NULL DEFAULT 0,
  radius DOUBLE PRECISION NOT NULL CHECK (radius > 0),
  color  VARCHAR(7)       NOT NULL DEFAULT '#000000'
);`,
	},
	{
		Name: "create_table_comments",
		SQL: `CREATE TABLE IF NOT EXISTS comments (
  id               {{id}}     PRIMARY KEY,
  text             TEXT       NOT NULL,
  background_color VARCHAR(7) NOT NULL DEFAULT '#FFFFFF',
  point_id         {{id}}     NOT NULL
);`,
	},
	{
		Name: "create_index_comments_point_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_comments_point_id ON comments (point_id);`,
	},
}

// Ensure runs every schema step for the given driver.
func Ensure(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) error {
	typ, ok := idType[driver]
	if !ok {
		return fmt.Errorf("schema: unsupported driver %q", driver)
	}

	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("driver", driver))
	log.Info("schema_ensure_start")

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, strings.ReplaceAll(s.SQL, "{{id}}", typ)); err != nil {
			log.Error("schema_ensure_failed",
				zap.String("step", s.Name),
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
			)
			return fmt.Errorf("schema step %s failed: %w", s.Name, err)
		}
		log.Debug("schema_step",
			zap.String("step", s.Name),
			zap.Duration("step_duration", time.Since(stepStart)),
		)
	}

	log.Info("schema_ensure_success", zap.Duration("duration", time.Since(start)))
	return nil
}
