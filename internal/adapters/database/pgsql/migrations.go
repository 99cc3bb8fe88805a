package pgsql

import "embed"

// MigrationsFS holds the schema migrations, applied at startup with golang-migrate.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS that holds the .sql files.
const MigrationsDir = "migrations"
