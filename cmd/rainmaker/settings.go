package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vovakirdan/rainmaker/internal/games/rainmaker"
)

// settings are the runtime options shared by every command.
type settings struct {
	FPS        int
	Seed       int64
	DBPath     string
	ConfigPath string
	Difficulty string
	LogLevel   string
}

// bindFlags lets viper resolve each persistent flag from the flag itself,
// a RAINMAKER_* environment variable, or the settings file.
func bindFlags(flags *pflag.FlagSet) {
	viper.SetEnvPrefix("RAINMAKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot bind flags: %v\n", err)
	}
}

// initSettings reads the optional settings file.
func initSettings() {
	if path := viper.GetString("settings"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("settings")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".rainmaker"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && viper.GetString("settings") != "" {
			fmt.Fprintf(os.Stderr, "Warning: cannot read settings: %v\n", err)
		}
	}
}

// loadSettings snapshots the resolved runtime options and hands the game
// options to the rainmaker package.
func loadSettings() settings {
	s := settings{
		FPS:        viper.GetInt("fps"),
		Seed:       viper.GetInt64("seed"),
		DBPath:     viper.GetString("db"),
		ConfigPath: viper.GetString("config"),
		Difficulty: viper.GetString("difficulty"),
		LogLevel:   viper.GetString("log-level"),
	}
	if s.FPS <= 0 {
		s.FPS = 30
	}

	rainmaker.SetConfigPath(s.ConfigPath)
	rainmaker.SetDifficultyPreset(s.Difficulty)
	return s
}

// newLogger builds the command logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rainmaker",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens ~/.rainmaker/rainmaker.log for appending. Interactive
// play cannot log to stderr without corrupting the alternate screen.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".rainmaker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "rainmaker.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
