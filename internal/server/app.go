// Package server initializes and runs the personql server. It wires the
// person repository, the snapshot source and the GraphQL HTTP endpoint, and
// shuts them down on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/personql/internal/logging"
	"github.com/dmitrijs2005/personql/internal/server/config"
	gqlserver "github.com/dmitrijs2005/personql/internal/server/graphql"
	"github.com/dmitrijs2005/personql/internal/server/remote"
	"github.com/dmitrijs2005/personql/internal/server/repositories/persons"
	"github.com/dmitrijs2005/personql/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	personService *services.PersonService
	httpServer    *gqlserver.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return newApp(c, logger)
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	repo := persons.NewInMemoryRepository()

	var snapshots services.SnapshotSource
	switch c.PersonsSource {
	case config.PersonsSourceRemote:
		snapshots = remote.NewFetcher(c.RemotePersonsURL, c.RemoteFetchTimeout, logger)
	default:
		snapshots = services.LocalSnapshot(repo)
	}

	ps := services.NewPersonService(repo, snapshots, logger)

	schema, err := gqlserver.NewSchema(ps, logger)
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	hs := gqlserver.NewHTTPServer(c.EndpointAddrHTTP, c.EndpointPath, schema, logger, c.ShutdownTimeout)

	return &App{config: c, logger: logger, personService: ps, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, ctx is cancelled or the
// HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "persons_source", app.config.PersonsSource)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
