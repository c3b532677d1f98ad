package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/formsync/internal/client/watch"
)

// metricsShutdownTimeout время на остановку HTTP сервера метрик
const metricsShutdownTimeout = 5 * time.Second

// watchOptions флаги команды watch
type watchOptions struct {
	gatherer    prometheus.Gatherer
	metricsAddr string
	debounce    time.Duration
}

// runWatch печатает превью при каждом сохранении файла формы, пока ctx не отменен
func (c *Cli) runWatch(ctx context.Context, path string, opts watchOptions) error {
	w, err := watch.New(path, opts.debounce, c.logger)
	if err != nil {
		return err
	}

	preview := func(ctx context.Context) error {
		if err := c.runPreview(ctx, path); err != nil {
			c.io.Printf("✗ %v\n", err)
			return err
		}
		return nil
	}

	// первое превью сразу, ошибка не останавливает наблюдение
	_ = preview(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(ctx, preview)
	})
	if opts.metricsAddr != "" && opts.gatherer != nil {
		g.Go(func() error {
			return serveMetrics(ctx, opts.metricsAddr, opts.gatherer)
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// serveMetrics отдает /metrics до отмены ctx
func serveMetrics(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
