package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/alexiusacademia/gowing/internal/loads"
	"github.com/alexiusacademia/gowing/internal/spar"
)

// Environment variables read by the tool
const (
	EnvConfig   = "GOWING_CONFIG"
	EnvLogLevel = "GOWING_LOG_LEVEL"
	EnvOutput   = "GOWING_OUTPUT_DIR"
)

// DefaultSettingsFile is read from the working directory when no path is given
const DefaultSettingsFile = "gowing.ini"

// Settings are the tool-wide defaults. Command line flags override them.
type Settings struct {
	Stations     int
	SafetyFactor float64
	LiftModel    string

	SparSteps spar.Steps

	OutputDir string
	LogLevel  string
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		Stations:     100,
		SafetyFactor: loads.DefaultSafetyFactor,
		LiftModel:    string(loads.Elliptical),
		SparSteps:    spar.DefaultSteps(),
		OutputDir:    ".",
		LogLevel:     "warn",
	}
}

// LoadEnv reads a .env file from the working directory if there is one
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}
}

// LoadSettings reads the INI settings file at path. An empty path falls
// back to $GOWING_CONFIG and then to gowing.ini; a missing file yields the
// defaults. Environment variables override file values.
func LoadSettings(path string) (Settings, error) {
	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultSettingsFile
	}

	file := ini.Empty()
	if _, err := os.Stat(path); !explicit && errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Debug("settings file not found, using defaults")
	} else {
		file, err = ini.Load(path)
		if err != nil {
			return DefaultSettings(), err
		}
	}

	s := loadSettings(file)
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		s.OutputDir = v
	}
	return s, nil
}

func loadSettings(file *ini.File) Settings {
	d := DefaultSettings()
	pipeline := file.Section("pipeline")
	sp := file.Section("spar")
	return Settings{
		Stations:     pipeline.Key("stations").MustInt(d.Stations),
		SafetyFactor: pipeline.Key("safety_factor").MustFloat64(d.SafetyFactor),
		LiftModel:    pipeline.Key("lift_model").MustString(d.LiftModel),
		SparSteps: spar.Steps{
			Height:        sp.Key("height_step").MustFloat64(d.SparSteps.Height),
			Width:         sp.Key("width_step").MustFloat64(d.SparSteps.Width),
			MaxIterations: sp.Key("max_iterations").MustInt(d.SparSteps.MaxIterations),
		},
		OutputDir: file.Section("output").Key("dir").MustString(d.OutputDir),
		LogLevel:  file.Section("log").Key("level").MustString(d.LogLevel),
	}
}

// SetupLogging applies a logrus level name to the standard logger
func SetupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(lvl)
	return nil
}
