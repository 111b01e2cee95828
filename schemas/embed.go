// Package schemas embeds the MySQL schema of the resource library.
package schemas

import "embed"

// MigrationPattern matches the migration files inside Migrations
const MigrationPattern = "migrations/*.sql"

// Migrations holds the CREATE TABLE statements of learning_resources and chatbots.
//
//go:embed migrations/*.sql
var Migrations embed.FS
