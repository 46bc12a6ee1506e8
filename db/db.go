package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// InitPostgres opens the accounts database and makes sure the users table
// exists. Events, guests and budgets live in Mongo; Postgres only holds
// organizer accounts, where the UNIQUE email constraint matters.
func InitPostgres(dsn string) (*sql.DB, error) {
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	sqldb.SetMaxOpenConns(20)
	sqldb.SetMaxIdleConns(10)

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		uid UUID NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`
	if _, err := sqldb.Exec(createUsersTable); err != nil {
		return nil, fmt.Errorf("create users table: %w", err)
	}
	return sqldb, nil
}
