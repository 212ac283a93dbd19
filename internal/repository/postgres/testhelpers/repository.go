package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"github.com/zhytomyr-tourism/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAttractionRepositoryForTest creates an attraction repository with test database
func NewAttractionRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AttractionRepository {
	return postgres.NewAttractionRepository(NewDBForTest(db, logger))
}

// NewVisitsRepositoryForTest creates a visits repository with test database and logger
func NewVisitsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.VisitsRepository {
	return postgres.NewVisitsRepository(NewDBForTest(db, logger), logger)
}
