// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"
	"time"

	"github.com/diffeo/go-wprest/backend"
	"github.com/diffeo/go-wprest/restserver"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

var validate = validator.New()

// Config holds every daemon setting.  Values come from defaults, then
// the YAML configuration file, then command-line flags.
type Config struct {
	HTTP        string        `mapstructure:"http" validate:"required"`
	Backend     string        `mapstructure:"backend" validate:"required"`
	BlogID      int           `mapstructure:"blog_id" validate:"gte=0"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gte=0"`
	PageSize    int           `mapstructure:"page_size" validate:"gte=1,lte=1000"`
	APIRoot     string        `mapstructure:"api_root" validate:"required,excludesall=/{}"`
	APIVersion  string        `mapstructure:"api_version" validate:"required,excludesall=/{}"`
	LogRequests bool          `mapstructure:"log_requests"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	Gzip        bool          `mapstructure:"gzip"`

	// UTCOffset is in seconds.  If nil it is read from the blog's
	// time_zone option at startup.
	UTCOffset *int `mapstructure:"utc_offset" validate:"omitempty,gte=-86400,lte=86400"`
}

// defaultConfig returns the settings used when nothing else is given.
func defaultConfig() Config {
	rest := restserver.DefaultConfig()
	return Config{
		HTTP:       ":5980",
		Backend:    "memory",
		Timeout:    30 * time.Second,
		PageSize:   rest.PageSize,
		APIRoot:    rest.APIRoot,
		APIVersion: rest.Version,
		LogLevel:   "info",
	}
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// loadConfigFile overlays the settings in a YAML file onto cfg.
// Unknown keys are an error.
func loadConfigFile(filename string, cfg *Config) error {
	raw, err := loadConfigYaml(filename)
	if err != nil {
		return err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err == nil {
		err = decoder.Decode(raw)
	}
	return err
}

// Validate checks every setting, including that the backend
// description parses.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	var b backend.Backend
	return b.Set(cfg.Backend)
}

// BlogBackend returns the parsed backend description and credentials.
func (cfg Config) BlogBackend() (backend.Backend, backend.Credentials, error) {
	var b backend.Backend
	err := b.Set(cfg.Backend)
	return b, backend.Credentials{
		BlogID:   cfg.BlogID,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout,
	}, err
}

// RESTConfig returns the REST server settings given a resolved UTC
// offset.
func (cfg Config) RESTConfig(offset time.Duration) restserver.Config {
	return restserver.Config{
		APIRoot:   cfg.APIRoot,
		Version:   cfg.APIVersion,
		PageSize:  cfg.PageSize,
		UTCOffset: offset,
	}
}
