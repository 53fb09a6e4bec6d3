package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"
)

//go:embed migrations/schema.sql
var schemaSQL string

// Migrate ensures the required tables exist. The embedded schema only uses
// CREATE TABLE IF NOT EXISTS, so running it on every startup is safe.
func (db *Database) Migrate(ctx context.Context) error {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	applied := 0
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement %d: %w", applied+1, err)
		}
		applied++
	}

	log.Printf("database schema up to date, %d statements applied", applied)
	return nil
}
