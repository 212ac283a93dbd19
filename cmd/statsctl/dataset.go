package main

import (
	"context"
	"fmt"

	"github.com/zhytomyr-tourism/internal/config"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/geo"
	"github.com/zhytomyr-tourism/internal/repository/file"
	"github.com/zhytomyr-tourism/internal/repository/postgres"
)

// dataset - данные, из которых API строит снимок
type dataset struct {
	resolver    *geo.Resolver
	attractions []domain.Attraction
	visits      *domain.VisitData
}

func loadResolver(ctx context.Context) (*geo.Resolver, error) {
	districts, err := file.NewDistrictRepository(cfg.Data.DistrictsPath, log).List(ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := geo.NewResolver(districts)
	if err != nil {
		return nil, fmt.Errorf("districts %s: %w", cfg.Data.DistrictsPath, err)
	}
	return resolver, nil
}

func loadDataset(ctx context.Context) (*dataset, error) {
	resolver, err := loadResolver(ctx)
	if err != nil {
		return nil, err
	}

	ds := &dataset{resolver: resolver}

	var db *postgres.DB
	if cfg.NeedsDatabase() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		defer db.Close()
	}

	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		ds.attractions, err = postgres.NewAttractionRepository(db).List(ctx)
	default:
		ds.attractions, err = file.NewAttractionRepository(cfg.Data.AttractionsPath, log).List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Data.VisitsEnabled {
		ds.visits, err = postgres.NewVisitsRepository(db, log).Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("load visits: %w", err)
		}
	}

	return ds, nil
}
