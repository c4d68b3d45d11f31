// Package server wires the catalog together: it builds the logger and the
// in-memory store, seeds the catalog, and runs the HTTP API next to the gRPC
// health endpoint until a signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/mealcatalog/internal/logging"
	"github.com/dmitrijs2005/mealcatalog/internal/server/config"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mealcatalog/internal/server/rest"
	"github.com/dmitrijs2005/mealcatalog/internal/server/seed"
	"github.com/dmitrijs2005/mealcatalog/internal/server/services"

	gs "github.com/dmitrijs2005/mealcatalog/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	catalogService *services.CatalogService
	userService    *services.UserService
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, w io.Writer) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, w)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm := repomanager.NewInMemoryRepositoryManager()

	return &App{
		config:         c,
		logger:         logger,
		catalogService: services.NewCatalogService(rm),
		userService:    services.NewUserService(rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) seed(ctx context.Context) error {
	data, err := seed.Load(app.config.SeedFile)
	if err != nil {
		return err
	}

	if err := seed.Apply(ctx, app.catalogService, app.userService, data); err != nil {
		return err
	}

	app.logger.Info(ctx, "Catalog seeded",
		"categories", len(data.Categories), "meals", len(data.Meals), "users", len(data.Users))
	return nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc, s *gs.GRPCServer) error {
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := rest.NewServer(app.config.EndpointAddrHTTP, app.logger, app.catalogService, rest.Options{
		ShutdownTimeout: app.config.ShutdownTimeout,
		RateLimit:       app.config.RateLimit,
		RateBurst:       app.config.RateBurst,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
// The health endpoint comes up first and reports NOT_SERVING; the HTTP API
// starts only once the catalog is seeded. Server failures are joined into
// the returned error.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	health := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger)

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- app.startGRPCServer(ctx, cancelFunc, health)
	}()

	if err := app.seed(ctx); err != nil {
		app.logger.Error(ctx, "seeding failed", "error", err)
		cancelFunc()
		wg.Wait()
		close(errs)
		return errors.Join(fmt.Errorf("seed error: %w", err), collect(errs))
	}

	health.SetServing(true)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	close(errs)

	app.logger.Info(context.Background(), "App stopped")
	return collect(errs)
}

// collect joins the non-nil errors received from errs.
func collect(errs <-chan error) error {
	var all []error
	for err := range errs {
		if err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}
