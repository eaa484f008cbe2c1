// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envSuffix = "MAPTY_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var paths *Paths

// Initialize computes the application paths. It must be called at program
// startup before any of the path accessors. Calling it again recomputes the
// paths, which picks up changes to the XDG environment.
func Initialize() error {
	p := &Paths{
		configDir:      "mapty",
		configFileName: "config.yml",
		dbFileName:     "mapty.db",
		logFileName:    "mapty.log",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return err
	}

	paths = p

	return nil
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envSuffix))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("mapty_%s.db", env)
		p.logFileName = fmt.Sprintf("mapty_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	xdg.Reload()

	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.configDir, "log", p.logFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving log path: %w", err)
	}

	return nil
}
