package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	API struct {
		URL     string   `yaml:"url"`
		Timeout string   `yaml:"timeout"`
		Rate    *float64 `yaml:"rate"`
		Burst   int      `yaml:"burst"`
	} `yaml:"api"`
	Listen   string `yaml:"listen"`
	LazyList *bool  `yaml:"lazy_list"`
	Log      struct {
		Level  string `yaml:"level"`
		Pretty *bool  `yaml:"pretty"`
	} `yaml:"log"`
	CodeStyle string `yaml:"code_style"`
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if v := strings.TrimSpace(fc.API.URL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(fc.API.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config file %s: api.timeout: %w", path, err)
		}
		cfg.APITimeout = d
	}
	if fc.API.Rate != nil {
		if *fc.API.Rate < 0 {
			return fmt.Errorf("config file %s: api.rate must not be negative", path)
		}
		cfg.APIRate = *fc.API.Rate
	}
	if fc.API.Burst > 0 {
		cfg.APIBurst = fc.API.Burst
	}
	if v := strings.TrimSpace(fc.Listen); v != "" {
		cfg.ListenAddr = v
	}
	if fc.LazyList != nil {
		cfg.LazyList = *fc.LazyList
	}
	if v := strings.TrimSpace(fc.Log.Level); v != "" {
		cfg.LogLevel = v
	}
	if fc.Log.Pretty != nil {
		cfg.LogPretty = *fc.Log.Pretty
	}
	if v := strings.TrimSpace(fc.CodeStyle); v != "" {
		cfg.CodeStyle = v
	}
	return nil
}
