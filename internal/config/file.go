package config

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"cascade/internal/search"
)

// FileValues is the subset of Config settable from a JSON config file.
// Pointer fields distinguish absent keys from zero values, so defaults,
// file, and flags overlay cleanly in that order.
type FileValues struct {
	Strategy     *string `koanf:"strategy"`
	Driver       *string `koanf:"driver"`
	Output       *string `koanf:"output"`
	Timeout      *string `koanf:"timeout"`
	SkipExisting *bool   `koanf:"skip_existing"`
	Verbose      *bool   `koanf:"verbose"`
	Color        *string `koanf:"color"`
	LogFile      *string `koanf:"log"`
}

// LoadFile reads a JSON config file and applies its values onto cfg.
// Validation runs later, after flags, so a bad value here surfaces with
// the same message as a bad flag.
func LoadFile(path string, cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	var fv FileValues
	if err := k.UnmarshalWithConf("", &fv, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return fv.apply(cfg)
}

func (fv *FileValues) apply(cfg *Config) error {
	if fv.Strategy != nil {
		cfg.Strategy = search.Strategy(*fv.Strategy)
	}
	if fv.Driver != nil {
		cfg.DriverCmd = *fv.Driver
	}
	if fv.Output != nil {
		cfg.OutputDir = *fv.Output
	}
	if fv.Timeout != nil {
		d, err := time.ParseDuration(*fv.Timeout)
		if err != nil {
			return fmt.Errorf("config file timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fv.SkipExisting != nil {
		cfg.SkipExisting = *fv.SkipExisting
	}
	if fv.Verbose != nil {
		cfg.Verbose = *fv.Verbose
	}
	if fv.Color != nil {
		cfg.ColorMode = ColorMode(*fv.Color)
	}
	if fv.LogFile != nil {
		cfg.LogFile = *fv.LogFile
	}
	return nil
}
