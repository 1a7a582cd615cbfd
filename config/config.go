//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Kexogg
//
// This file is part of clean-code.
//
// clean-code is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Kexogg
//-----------------------------------------------------------------------------

// Package config provides the configuration of a render run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kexogg/clean-code/logger"
)

// DefaultFile is the name of the configuration file, if none is given.
const DefaultFile = ".markup.yaml"

// Keys of the configuration file.
const (
	KeySyntax    = "syntax"
	KeyEncoding  = "encoding"
	KeyLogLevel  = "log-level"
	KeyNormalize = "normalize"
	KeyDocument  = "document"
	KeyLang      = "lang"
	KeyTitle     = "title"
)

// Config contains all data relevant for rendering.
type Config struct {
	Syntax    string `yaml:"syntax"`
	Encoding  string `yaml:"encoding"`
	LogLevel  string `yaml:"log-level"`
	Normalize bool   `yaml:"normalize"`
	Document  bool   `yaml:"document"`
	Lang      string `yaml:"lang"`
	Title     string `yaml:"title"`
}

// Default returns the configuration that applies without a file.
func Default() *Config {
	return &Config{
		Syntax:    "markup",
		Encoding:  "html",
		LogLevel:  logger.InfoLevel.String(),
		Normalize: true,
		Lang:      "en",
	}
}

// Load reads the configuration file at path. Values missing in the file keep
// their default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err = cfg.Parse(content); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse overwrites the configuration with the YAML content.
func (cfg *Config) Parse(content []byte) error {
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return err
	}
	if cfg.LogLevel != "" && !logger.ParseLevel(cfg.LogLevel).IsValid() {
		return fmt.Errorf("unknown %s %q", KeyLogLevel, cfg.LogLevel)
	}
	return nil
}

// Set changes the value of the given key. It is used to apply command line
// flags.
func (cfg *Config) Set(key, value string) error {
	switch key {
	case KeySyntax:
		cfg.Syntax = value
	case KeyEncoding:
		cfg.Encoding = value
	case KeyLogLevel:
		if !logger.ParseLevel(value).IsValid() {
			return fmt.Errorf("unknown %s %q", KeyLogLevel, value)
		}
		cfg.LogLevel = value
	case KeyNormalize:
		return setBool(&cfg.Normalize, key, value)
	case KeyDocument:
		return setBool(&cfg.Document, key, value)
	case KeyLang:
		cfg.Lang = value
	case KeyTitle:
		cfg.Title = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}

func setBool(b *bool, key, value string) error {
	var v bool
	if err := yaml.Unmarshal([]byte(value), &v); err != nil {
		return fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	*b = v
	return nil
}

// Level returns the log level. An empty or unknown level means info.
func (cfg *Config) Level() logger.Level {
	if lv := logger.ParseLevel(cfg.LogLevel); lv.IsValid() {
		return lv
	}
	return logger.InfoLevel
}

// String returns the configuration in YAML form.
func (cfg *Config) String() string {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return string(out)
}
