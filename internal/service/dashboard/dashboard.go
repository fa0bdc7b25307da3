// Package dashboard assembles the cross-product figures for the landing page:
// one classifier summary per product type, fetched and computed in parallel.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"damper-takip/internal/service/stats"
	"damper-takip/internal/steps"
	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type OverviewStorage interface {
	GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error)
	GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error)
	GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error)
}

type Service struct {
	storage OverviewStorage
}

func New(storage OverviewStorage) *Service {
	return &Service{storage: storage}
}

type Overview struct {
	Damper stats.Summary `json:"damper"`
	Dorse  stats.Summary `json:"dorse"`
	Sasi   stats.Summary `json:"sasi"`
}

// Overview fetches all three fleets concurrently and reduces each to its
// bucket counts.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	const op = "service.dashboard.Overview"

	var (
		dampers []*storage.Damper
		dorses  []*storage.Dorse
		sasis   []*storage.Sasi
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dampers, err = s.storage.GetDampers(gCtx, mysql.DamperFilter{})
		if err != nil {
			return fmt.Errorf("dampers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		dorses, err = s.storage.GetDorses(gCtx, "")
		if err != nil {
			return fmt.Errorf("dorses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sasis, err = s.storage.GetSasis(gCtx, "")
		if err != nil {
			return fmt.Errorf("sasis: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("%s: %w", op, err)
	}

	return Overview{
		Damper: stats.Buckets(dampers, steps.Damper),
		Dorse:  stats.Buckets(dorses, steps.Dorse),
		Sasi:   stats.Buckets(sasis, steps.Sasi),
	}, nil
}
