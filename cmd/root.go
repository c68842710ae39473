// Package cmd provides the root command and CLI setup for parcel.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/parcel/internal/adapter"
	"github.com/mouse-blink/parcel/internal/config"
	"github.com/mouse-blink/parcel/internal/controller"
	"github.com/mouse-blink/parcel/internal/domain"
	"github.com/mouse-blink/parcel/internal/logger"
	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/spf13/cobra"
)

// application is the client session shared by the commands of one process.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	ws     *domain.Workspace
	ui     controller.UI
	binder *controller.ViewBinder
	state  adapter.StateStore
}

type appKey struct{}

func withApp(ctx context.Context, app *application) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func appFrom(cmd *cobra.Command) *application {
	ctx := cmd.Context()
	if ctx == nil {
		return nil
	}

	app, _ := ctx.Value(appKey{}).(*application)

	return app
}

// newTerrainAPI builds the backend client.
var newTerrainAPI = func(cfg *config.Config, log *slog.Logger) (adapter.TerrainAPI, error) {
	return adapter.NewHTTPTerrainAPI(adapter.HTTPOptions{
		BaseURL:        cfg.BaseURL,
		Cookie:         cfg.Cookie,
		CSRFCookieName: cfg.CSRFCookieName,
		Timeout:        cfg.Timeout,
		Logger:         log,
	})
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parcel",
		Short: "Draw, save and subdivide terrains",
		Long: `Parcel is a client for a land-subdivision backend. It keeps one active
terrain polygon, saves it to a project, loads saved terrains by id and asks
the backend to split them into lots.

State is kept between runs, so a typical session is:
  parcel draw terreno.geojson
  parcel save --name "Lote A"
  parcel subdivide --lots 5 --method line
  parcel export`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return persist(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./parcel.yaml)")
	flags.String("base-url", "", "backend API root, e.g. http://localhost:8000/core/api")
	flags.Int64("project", 0, "project id terrains are saved to")
	flags.String("cookie", "", "raw Cookie header sent to the backend (csrftoken=...; sessionid=...)")
	flags.Duration("timeout", config.DefaultTimeout, "timeout for each backend request")
	flags.String("state", config.DefaultStateFile, "file the session state is kept in")
	flags.String("output", config.OutputAuto, "output mode: auto, simple or tui")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newDrawCmd(),
		newEditCmd(),
		newSaveCmd(),
		newLoadCmd(),
		newSubdivideCmd(),
		newStatusCmd(),
		newLotsCmd(),
		newExportCmd(),
		newSaveLotsCmd(),
		newClearCmd(),
		newShellCmd(),
	)

	return cmd
}

// setup loads configuration and restores the session. Commands run from
// the shell reuse the session that is already in their context.
func setup(cmd *cobra.Command) error {
	if appFrom(cmd) != nil {
		return nil
	}

	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if cfg.File != "" {
		log.Debug("config loaded", "file", cfg.File)
	}

	api, err := newTerrainAPI(cfg, log)
	if err != nil {
		return fmt.Errorf("backend client: %w", err)
	}

	state := adapter.NewLocalStateStore(m.Path(cfg.StatePath))

	snapshot, err := state.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	ws := domain.NewWorkspace(api, log)
	ws.Restore(snapshot)

	ui := controller.NewUI(cmd, cfg.Output)
	binder := controller.NewViewBinder(
		ws,
		ui,
		adapter.NewLocalGeometryReader(cmd.InOrStdin()),
		adapter.NewLocalExportStore(m.Path(cfg.ExportDir)),
		log,
	)

	app := &application{
		cfg:    cfg,
		logger: log,
		ws:     ws,
		ui:     ui,
		binder: binder,
		state:  state,
	}
	cmd.SetContext(withApp(cmd.Context(), app))

	// A missing project is reported by Start and only blocks saving.
	_ = binder.Start(cfg.ProjectID)

	return nil
}

// persist writes the session state for the next run.
func persist(cmd *cobra.Command) error {
	app := appFrom(cmd)
	if app == nil {
		return nil
	}

	if err := app.state.SaveSnapshot(app.ws.Snapshot()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Execute runs the root command and exits non-zero on failure. Failures the
// user has already been notified about are not printed again.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		if !errors.Is(err, controller.ErrReported) {
			_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
