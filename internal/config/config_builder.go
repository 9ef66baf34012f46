package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source is one configuration layer as read from env, flags or a file.
type source struct {
	// Target selects the deployment target.
	// Env: COFFEE_ENV
	Target string `env:"COFFEE_ENV"`

	// JSONFilePath is the optional path to a JSON config file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`

	// Production is only set by a config file that declares it.
	Production *bool

	Environment EnvironmentConfig
}

type configBuilder struct {
	args    []string
	sources []*source
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		sources: make([]*source, 0, 3),
	}
}

func (b *configBuilder) build() (EnvironmentConfig, error) {
	if b.err != nil {
		return EnvironmentConfig{}, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	target := Development
	for _, src := range b.sources {
		if src.Target == "" {
			continue
		}
		t, err := ParseTarget(src.Target)
		if err != nil {
			return EnvironmentConfig{}, err
		}
		target = t
	}

	cfg := ForTarget(target)
	for _, src := range b.sources {
		if err := mergo.Merge(&cfg, src.Environment, mergo.WithOverride); err != nil {
			return EnvironmentConfig{}, fmt.Errorf("error merging configs: %w", err)
		}
		if src.Production != nil && *src.Production != cfg.Production {
			return EnvironmentConfig{}, fmt.Errorf("%w: production=%t, target %s", ErrTargetMismatch, *src.Production, target)
		}
	}

	if err := cfg.Validate(); err != nil {
		return EnvironmentConfig{}, fmt.Errorf("invalid %s config: %w", target, err)
	}

	return cfg, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envSrc := &source{}
	if err := parseEnv(envSrc); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envSrc)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagSrc, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, flagSrc)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			jsonPath = src.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonSrc, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, jsonSrc)
	return b
}

// Get loads, merges, and validates the configuration of the selected
// deployment target. args are the command-line arguments without the
// program name.
//
// The target is taken from COFFEE_ENV or --env (flag wins) and defaults to
// development. Sources are applied in this order, last non-empty value
// wins:
//  1. Target base value
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path from CONFIG or -c / --config)
//
// Returns an error if a source fails to load or the merged configuration
// fails [EnvironmentConfig.Validate]. A --help request surfaces as
// pflag.ErrHelp.
func Get(args []string) (EnvironmentConfig, error) {
	return newConfigBuilder(args).
		withEnv().
		withFlags().
		withJSON().
		build()
}
