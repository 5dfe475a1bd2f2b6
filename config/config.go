// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads descstat settings from defaults, a
// configuration file, the environment, and command-line flags, in
// increasing order of precedence.
//
// Environment variables are named after keys with a DESCSTAT_ prefix
// and dots replaced by underscores, so chart.width is read from
// DESCSTAT_CHART_WIDTH.
package config // import "github.com/aclements/go-descstat/config"

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-descstat/chart"
	"github.com/aclements/go-descstat/report"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys.
const (
	KeyLocale     = "locale"
	KeyDecimals   = "decimals"
	KeyVerbose    = "verbose"
	KeyLogLevel   = "log.level"
	KeyLogFile    = "log.file"
	KeyLogMaxSize = "log.max-size"
	KeyLogBackups = "log.max-backups"
	KeyLogMaxAge  = "log.max-age"
	KeyWidth      = "chart.width"
	KeyHeight     = "chart.height"
	KeyExportDir  = "export.dir"
	KeyListen     = "server.listen"
)

var defaults = map[string]interface{}{
	KeyLocale:     string(report.English),
	KeyDecimals:   2,
	KeyVerbose:    false,
	KeyLogLevel:   "info",
	KeyLogFile:    "",
	KeyLogMaxSize: 5,
	KeyLogBackups: 7,
	KeyLogMaxAge:  7,
	KeyWidth:      800,
	KeyHeight:     480,
	KeyExportDir:  ".",
	KeyListen:     "127.0.0.1:8080",
}

// flagKeys maps command-line flag names to the keys they override.
var flagKeys = map[string]string{
	"locale":   KeyLocale,
	"decimals": KeyDecimals,
	"verbose":  KeyVerbose,
	"log-file": KeyLogFile,
	"out":      KeyExportDir,
	"listen":   KeyListen,
}

// ErrInvalid is returned by Load for a setting with an unusable value.
var ErrInvalid = errors.New("invalid setting")

// Config is the resolved configuration.
type Config struct {
	Locale   report.Locale
	Decimals int
	Log      Log

	// Width and Height are the size of rendered charts in pixels.
	Width, Height int

	// ExportDir is where exported charts are written.
	ExportDir string

	// Listen is the address the HTTP server listens on.
	Listen string
}

// Log configures logging.
type Log struct {
	Level logrus.Level

	// File is the log file. If empty, logs go to standard error.
	File string

	// MaxSize is the size in megabytes at which File is rotated.
	// MaxBackups and MaxAge (in days) bound the rotated files
	// that are kept.
	MaxSize, MaxBackups, MaxAge int
}

// New returns a viper instance with descstat's defaults and
// environment binding.
func New() *viper.Viper {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix("descstat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags makes every flag in fs that names a setting override that
// setting when it is set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// Read reads a configuration file into v. If file is empty, Read
// looks for descstat.toml, descstat.yaml or descstat.json in the
// current directory and then in $HOME/.config/descstat, and it is not
// an error for none to exist.
func Read(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("descstat")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "descstat"))
		}
	}
	err := v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reading configuration")
	}
	return nil
}

// Load resolves the settings in v.
func Load(v *viper.Viper) (*Config, error) {
	loc, err := report.ParseLocale(v.GetString(KeyLocale))
	if err != nil {
		return nil, errors.Wrap(err, KeyLocale)
	}
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%s: %v", KeyLogLevel, err)
	}
	if v.GetBool(KeyVerbose) && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	c := &Config{
		Locale:   loc,
		Decimals: v.GetInt(KeyDecimals),
		Log: Log{
			Level:      level,
			File:       v.GetString(KeyLogFile),
			MaxSize:    v.GetInt(KeyLogMaxSize),
			MaxBackups: v.GetInt(KeyLogBackups),
			MaxAge:     v.GetInt(KeyLogMaxAge),
		},
		Width:     v.GetInt(KeyWidth),
		Height:    v.GetInt(KeyHeight),
		ExportDir: v.GetString(KeyExportDir),
		Listen:    v.GetString(KeyListen),
	}
	switch {
	case c.Decimals < 0 || c.Decimals > report.MaxDecimals:
		return nil, errors.Wrapf(ErrInvalid, "%s: %d not in [0, %d]", KeyDecimals, c.Decimals, report.MaxDecimals)
	case c.Width <= 0 || c.Height <= 0:
		return nil, errors.Wrapf(ErrInvalid, "chart size %dx%d", c.Width, c.Height)
	case c.ExportDir == "":
		return nil, errors.Wrapf(ErrInvalid, "%s is empty", KeyExportDir)
	}
	return c, nil
}

// Formatter returns the number formatter for c.
func (c *Config) Formatter() report.Formatter {
	return report.Formatter{Locale: c.Locale, Decimals: c.Decimals}
}

// Raster returns the PNG chart renderer for c.
func (c *Config) Raster() chart.Raster {
	return chart.Raster{Width: c.Width, Height: c.Height, Format: chart.PNG}
}
