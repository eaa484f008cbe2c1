package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/geo"
	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/hook"
	"github.com/ayoisaiah/mapty/internal/logging"
	"github.com/ayoisaiah/mapty/internal/osutil"
	"github.com/ayoisaiah/mapty/internal/pathutil"
	"github.com/ayoisaiah/mapty/internal/ui"
	"github.com/ayoisaiah/mapty/store"
	"github.com/ayoisaiah/mapty/tui"
)

const (
	envNoColor      = "NO_COLOR"
	envMaptyNoColor = "MAPTY_NO_COLOR"

	metaLogCloser = "log_closer"
)

var errMissingID = errors.New("a workout id is required")

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// env is what every command needs once the configuration is loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// setup loads the configuration and starts logging.
func setup(ctx *cli.Context) (*env, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithSystemPaths(
			configPath,
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logger, closer := logging.Setup(cfg.System.LogPath, level)

	ctx.App.Metadata[metaLogCloser] = closer

	logger.InfoContext(
		ctx.Context,
		"starting mapty",
		slog.String("provider", string(cfg.Geolocation.Provider)),
	)

	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) openStore() (*store.Client, error) {
	return store.NewClient(e.cfg.System.DBPath)
}

func (e *env) locator() geo.Locator {
	return geo.New(e.cfg.Geolocation, e.logger)
}

// defaultAction opens the interactive map.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	db, err := e.openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	m := tui.New(ctx.Context, tui.Deps{
		Locator: e.locator(),
		Store:   db,
		Hook:    hook.New(e.cfg, e.logger),
		Logger:  e.logger,
	}, tui.Options{
		Zoom:    e.cfg.Map.Zoom,
		Animate: e.cfg.Map.Animate,
	})

	return tui.Run(ctx.Context, m)
}

// editConfigAction handles the edit-config command which opens the mapty
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/mapty/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if MAPTY_NO_COLOR is set
	if _, exists := os.LookupEnv(envMaptyNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting mapty")

	if closer, ok := ctx.App.Metadata[metaLogCloser].(io.Closer); ok {
		delete(ctx.App.Metadata, metaLogCloser)
		return closer.Close()
	}

	return nil
}
