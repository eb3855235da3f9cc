package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"hospital-directory/internal/domain/repository"
	"hospital-directory/internal/infrastructure/upstream"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

// warmTimeout bounds one warm-up round.
const warmTimeout = 20 * time.Second

// CatalogWarmer keeps the static catalogs in the response cache so the first
// kiosk request after a restart or expiry does not pay for five upstream calls.
//
// Call Stop() during graceful shutdown.
type CatalogWarmer struct {
	repo     repository.CatalogRepository
	log      *logrus.Logger
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
}

func NewCatalogWarmer(repo repository.CatalogRepository, interval time.Duration, log *logrus.Logger) *CatalogWarmer {
	return &CatalogWarmer{
		repo:     repo,
		log:      log,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Warm refetches every static catalog once, concurrently, overwriting the
// cached copies even when they are still live. It returns an error naming the
// catalogs that could not be loaded; their previous entries are kept.
func (w *CatalogWarmer) Warm(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(upstream.WithRefresh(ctx), warmTimeout)
	defer cancel()

	start := time.Now()
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		return failure("medicos", w.repo.FindDoctors(ctx).Success)
	})
	p.Go(func(ctx context.Context) error {
		return failure("consultorios", w.repo.FindRooms(ctx).Success)
	})
	p.Go(func(ctx context.Context) error {
		return failure("edificios", w.repo.FindBuildings(ctx).Success)
	})
	p.Go(func(ctx context.Context) error {
		return failure("dias", w.repo.FindDays(ctx).Success)
	})
	p.Go(func(ctx context.Context) error {
		return failure("especialidades", w.repo.FindSpecialties(ctx).Success)
	})

	if err := p.Wait(); err != nil {
		w.log.Warnf("Failed to warm catalog cache: %+v", err)
		return err
	}

	w.log.Debugf("Catalog cache warmed in %v", time.Since(start))
	return nil
}

func failure(catalog string, success bool) error {
	if success {
		return nil
	}
	return fmt.Errorf("catalog %s unavailable", catalog)
}

// Start warms the cache now and then every interval until Stop is called.
// A non-positive interval only performs the initial warm-up.
func (w *CatalogWarmer) Start(ctx context.Context) {
	if !w.started.CompareAndSwap(false, true) {
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.Warm(ctx)
		if w.interval <= 0 {
			return
		}

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.Warm(ctx)
			case <-w.stopChan:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the refresh loop. Safe to call multiple times.
func (w *CatalogWarmer) Stop() {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("CatalogWarmer stopped")
	}
}
