package srv

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sandevgo/tuskmenu/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StopGrace bounds how long Run waits for running services to return after
// cancellation before shutting the rest down.
var StopGrace = 3 * time.Second

// Run starts every service and blocks until ctx is done, a service fails to
// start, or a task finishes. Once running services have returned (or
// StopGrace has passed) they are shut down in reverse order.
func Run(ctx context.Context, services []Service) error {
	logger := log.FromCtx(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, len(services))
	var wg sync.WaitGroup
	for _, service := range services {
		wg.Add(1)
		go func(service Service) {
			defer wg.Done()
			err := service.Start(runCtx)
			if err != nil {
				errc <- fmt.Errorf("%T failed to start: %w", service, err)
				return
			}
			if _, ok := service.(*task); ok {
				errc <- nil
			}
		}(service)
	}

	var err error
	select {
	case <-runCtx.Done():
		logger.Debug().Msg("context done, shutting down services")
	case err = <-errc:
	}
	cancel()

	stopped := make(chan struct{})
	go func() {
		wg.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(StopGrace):
		logger.Warn().Dur("grace", StopGrace).Msg("services still running, shutting down anyway")
	}

	ShutdownServices(ctx, services)
	return err
}

// ShutdownServices shuts services down in reverse order, logging failures.
func ShutdownServices(ctx context.Context, services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
