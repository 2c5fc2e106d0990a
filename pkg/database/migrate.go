package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Direction selects which way migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// MigrationResult describes the schema state after a run.
type MigrationResult struct {
	Version  uint
	Dirty    bool
	NoChange bool
}

// RunMigrations applies the migrations in dir against databaseURL. Down with
// steps > 0 rolls back that many migrations; steps == 0 rolls back everything.
func RunMigrations(databaseURL, dir string, direction Direction, steps int) (MigrationResult, error) {
	var result MigrationResult

	// Open a temporary standard sql.DB connection through the pgx stdlib driver.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return result, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer migrationDB.Close()
	if err := migrationDB.Ping(); err != nil {
		return result, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return result, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL(dir), "postgres", driver)
	if err != nil {
		return result, fmt.Errorf("could not create migrate instance: %w", err)
	}

	switch {
	case direction == Up:
		err = m.Up()
	case direction == Down && steps > 0:
		err = m.Steps(-steps)
	case direction == Down:
		err = m.Down()
	default:
		return result, fmt.Errorf("unknown migration direction %q", direction)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		result.NoChange = true
		err = nil
	}
	if err != nil {
		return result, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return result, fmt.Errorf("failed to read migration version: %w", verr)
	}
	result.Version, result.Dirty = version, dirty

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return result, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return result, fmt.Errorf("migration database error: %w", dbErr)
	}
	return result, nil
}

func sourceURL(dir string) string {
	if strings.Contains(dir, "://") {
		return dir
	}
	return "file://" + dir
}
