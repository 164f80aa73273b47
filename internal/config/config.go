// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

// Package config loads pagestrip's TOML configuration.
//
// File location: $XDG_CONFIG_HOME/pagestrip/config.toml
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/iancoleman/strcase"

	"github.com/cpcloud/pagestrip/internal/pages"
)

const (
	AppName  = "pagestrip"
	fileName = "config.toml"

	defaultLogEntries = 200
)

type Config struct {
	Mouse       bool         `toml:"mouse"`
	NewPageName string       `toml:"new_page_name"`
	LogEntries  int          `toml:"log_entries"`
	Pages       []PageConfig `toml:"pages"`
}

type PageConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

func Default() Config {
	return Config{
		Mouse:       true,
		NewPageName: pages.DefaultNewPageName,
		LogEntries:  defaultLogEntries,
	}
}

// Path is where the config file is looked up when no explicit path is given.
func Path() string {
	return filepath.Join(xdg.ConfigHome, AppName, fileName)
}

// Load reads the config at path. An empty path searches the XDG config dirs
// and falls back to Default() when no file exists there. An explicit path
// must exist.
func Load(path string) (Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(AppName, fileName))
		if err != nil {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile decodes path over Default() and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config and fills page ids that were left blank.
func (c *Config) Validate() error {
	c.NewPageName = strings.TrimSpace(c.NewPageName)
	if c.NewPageName == "" {
		return errors.New("new_page_name must not be blank")
	}
	if c.LogEntries <= 0 {
		return fmt.Errorf("log_entries must be positive, got %d", c.LogEntries)
	}
	seen := make(map[string]int, len(c.Pages))
	for i := range c.Pages {
		p := &c.Pages[i]
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return fmt.Errorf("pages[%d]: name must not be blank", i)
		}
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			p.ID = strcase.ToKebab(p.Name)
		}
		if prev, dup := seen[p.ID]; dup {
			return fmt.Errorf("pages[%d]: id %q already used by pages[%d]", i, p.ID, prev)
		}
		seen[p.ID] = i
	}
	return nil
}

// InitialPages converts the configured pages. It returns nil when none are
// configured so the collection starts from its defaults.
func (c Config) InitialPages() []pages.Page {
	if len(c.Pages) == 0 {
		return nil
	}
	out := make([]pages.Page, len(c.Pages))
	for i, p := range c.Pages {
		out[i] = pages.Page{ID: p.ID, Name: p.Name}
	}
	return out
}

// Encode writes ps as a [[pages]] list readable by Load.
func Encode(w io.Writer, ps []pages.Page) error {
	doc := struct {
		Pages []PageConfig `toml:"pages"`
	}{Pages: make([]PageConfig, len(ps))}
	for i, p := range ps {
		doc.Pages[i] = PageConfig{ID: p.ID, Name: p.Name}
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode pages: %w", err)
	}
	return nil
}
