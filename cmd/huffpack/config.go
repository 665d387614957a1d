package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhinav/huffpack/internal/archive"
	"gopkg.in/yaml.v3"
)

const (
	_configEnv      = "HUFFPACK_CONFIG"
	_configHomePath = ".config/huffpack/config.yaml"
)

var _defaultConfig = config{
	Codec:    archive.CodecZstd,
	MaxInput: 16 << 20, // 16 MiB
}

type config struct {
	Codec    archive.CodecType `yaml:"codec"`
	MaxInput int64             `yaml:"max-input"`
	Pretty   bool              `yaml:"pretty"`
	Stats    bool              `yaml:"stats"`
	Verbose  bool              `yaml:"verbose"`
	LogFile  string            `yaml:"log"`

	// Flag-only.
	Input      string `yaml:"-"`
	Output     string `yaml:"-"`
	JSONInput  bool   `yaml:"-"`
	ConfigFile string `yaml:"-"`
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.Input, "i", "", "")
	flag.StringVar(&c.Output, "o", "", "")
	flag.BoolVar(&c.JSONInput, "json-input", false, "")
	flag.Var(&c.Codec, "codec", "")
	flag.Int64Var(&c.MaxInput, "max-input", 0, "")
	flag.BoolVar(&c.Pretty, "pretty", false, "")
	flag.BoolVar(&c.Stats, "stats", false, "")
	flag.StringVar(&c.ConfigFile, "config", "", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if c.Codec == 0 {
		c.Codec = o.Codec
	}
	if c.MaxInput <= 0 {
		c.MaxInput = o.MaxInput
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Pretty = c.Pretty || o.Pretty
	c.Stats = c.Stats || o.Stats
	c.Verbose = c.Verbose || o.Verbose
}

// loadConfig reads the configuration file, if any.
//
// An explicitly requested file must exist.
// The default file in the home directory is optional:
// this returns nil if it is absent.
func (cmd *mainCmd) loadConfig(path string) (*config, error) {
	required := true
	if len(path) == 0 {
		path = cmd.Getenv(_configEnv)
	}
	if len(path) == 0 {
		home, err := cmd.HomeDir()
		if err != nil {
			// No home directory means no default config.
			return nil, nil
		}
		path = filepath.Join(home, filepath.FromSlash(_configHomePath))
		required = false
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := parseConfig(bs)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(bs []byte) (*config, error) {
	var cfg config
	dec := yaml.NewDecoder(bytes.NewReader(bs))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if cfg.MaxInput < 0 {
		return nil, fmt.Errorf("max-input must not be negative, got %d", cfg.MaxInput)
	}
	return &cfg, nil
}
