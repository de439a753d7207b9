package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"healthtrack/internal/auth"
	"healthtrack/internal/db/migrations"
	"healthtrack/internal/records"
)

func openPostgres(ctx context.Context, dsn string) (*Stores, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &Stores{
		Users:   auth.NewPostgresStore(sqlDB),
		Records: records.NewPostgresStore(sqlDB),
		Backend: "postgres",
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
