package store

import (
	"database/sql"

	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/migrations"
)

// DB is an SQL connection pool together with the logger of the store layer.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
