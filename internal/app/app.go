// Package app wires the record store, the console controller and the
// renderer into the xx program, and implements the one-shot command line
// operations.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/xxcmd/internal/config"
	"github.com/dshills/xxcmd/internal/record"
	"github.com/dshills/xxcmd/internal/store"
)

// Options configures the application.
type Options struct {
	// Config holds the merged settings.
	Config config.Config

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger

	// Stdout receives listings and echoed commands. Defaults to os.Stdout.
	Stdout io.Writer

	// Importer fetches record lists. Nil uses store.NewImporter(nil).
	Importer *store.Importer

	// Exec replaces the process. Nil uses syscall.Exec.
	Exec ExecFunc

	// Environ is passed to executed commands. Nil uses os.Environ.
	Environ func() []string
}

// Application is the xx program.
type Application struct {
	cfg      config.Config
	log      *Logger
	stdout   io.Writer
	store    *store.Store
	importer *store.Importer
	exec     ExecFunc
	environ  func() []string
}

// New creates the application and loads the databases.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:      opts.Config,
		log:      opts.Logger,
		stdout:   opts.Stdout,
		importer: opts.Importer,
		exec:     opts.Exec,
		environ:  opts.Environ,
	}
	if app.log == nil {
		app.log = NullLogger
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.importer == nil {
		app.importer = store.NewImporter(nil)
	}
	if app.exec == nil {
		app.exec = defaultExec
	}
	if app.environ == nil {
		app.environ = os.Environ
	}

	if err := app.loadDatabases(); err != nil {
		return nil, err
	}
	return app, nil
}

// loadDatabases reads the user database, then merges the global one.
func (app *Application) loadDatabases() error {
	log := app.log.WithComponent("store")
	db := app.cfg.Database

	app.store = store.New(db.File)
	n, err := app.store.Load()
	if err != nil {
		return &InitError{Component: "database", Err: err}
	}
	log.Debug("loaded %d records from %s", n, db.File)

	if !db.LoadGlobal || db.GlobalFile == "" {
		return nil
	}
	n, err = app.store.LoadFile(db.GlobalFile, record.TagGlobal)
	if err != nil {
		// The shared database is optional.
		log.Warn("global database: %v", err)
		return nil
	}
	log.Debug("loaded %d global records from %s", n, db.GlobalFile)
	return nil
}

// Store returns the loaded record store.
func (app *Application) Store() *store.Store {
	return app.store
}

// Config returns the settings the application runs with.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Add parses line as "[label] command" or "command [label]", adds it and
// saves the database.
func (app *Application) Add(line string) (*record.Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, &OperationError{Op: "add", Err: ErrNoCommand}
	}
	r, err := app.store.AddLine(line)
	if err != nil {
		return nil, &OperationError{Op: "add", Err: err}
	}
	if err := app.store.Save(); err != nil {
		return nil, &OperationError{Op: "add", Target: app.store.Path(), Err: err}
	}
	app.log.WithComponent("store").Info("added %s", r)
	return r, nil
}

// List writes every record whose search key contains query as
// "[label] command" lines.
func (app *Application) List(w io.Writer, query string) error {
	query = cases.Fold().String(strings.TrimSpace(query))
	for _, r := range app.store.Records() {
		if query != "" && !strings.Contains(r.SearchKey(), query) {
			continue
		}
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}

// Import merges the records published at src into the user database.
func (app *Application) Import(ctx context.Context, src string) (int, error) {
	n, err := app.store.Import(ctx, app.importer, src)
	if err != nil {
		return n, &OperationError{Op: "import", Target: src, Err: err}
	}
	app.log.WithComponent("store").Info("imported %d records from %s", n, src)
	return n, nil
}
