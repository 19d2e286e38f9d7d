package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

//go:embed 0001_init.sql
var initSQL string

var Migrations = migrate.NewMigrations()

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(initSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`
				DROP TABLE IF EXISTS user_achievements;
				DROP TABLE IF EXISTS badges;
				DROP TABLE IF EXISTS incident_reports;
				DROP TABLE IF EXISTS quiz_attempts;
				DROP TABLE IF EXISTS quizzes;
				DROP TABLE IF EXISTS articles;
				DROP TABLE IF EXISTS users;`)
			return err
		},
	)
}
