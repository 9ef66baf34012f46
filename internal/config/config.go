// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"sort"
)

// EnvironmentConfig is the read-only configuration of a single deployment
// target. Its JSON form mirrors the web client's environment file, so the
// same document can be consumed by both.
//
// Struct tags:
//   - json:      key in the environment file.
//   - env:       environment variable name (caarlos0/env).
//   - envPrefix: prefix applied to nested env lookups.
//
// Production has no env tag: it is decided by the selected [Target].
type EnvironmentConfig struct {
	// Production distinguishes the production tier from development.
	Production bool `json:"production"`

	// APIServerURL is the base URL of the backend API the client talks to
	// (e.g. "http://127.0.0.1:5000").
	// Env: API_SERVER_URL
	APIServerURL string `json:"apiServerUrl" env:"API_SERVER_URL"`

	// Auth0 holds the identity provider client settings.
	Auth0 Auth0 `json:"auth0" envPrefix:"AUTH0_"`
}

// Auth0 holds the settings of the Auth0 application the client logs in
// through.
type Auth0 struct {
	// URL is the Auth0 tenant domain prefix (e.g. "dev-2bzp453o.eu"); the
	// full domain is URL + ".auth0.com".
	// Env: AUTH0_URL
	URL string `json:"url" env:"URL"`

	// Audience identifies the API the issued access tokens target.
	// Env: AUTH0_AUDIENCE
	Audience string `json:"audience" env:"AUDIENCE"`

	// ClientID is the public identifier Auth0 issued for the client
	// application. It is opaque and must come from the provider.
	// Env: AUTH0_CLIENT_ID
	ClientID string `json:"clientId" env:"CLIENT_ID"`

	// CallbackURL is where Auth0 redirects after authentication: the base
	// URL of the running web client.
	// Env: AUTH0_CALLBACK_URL
	CallbackURL string `json:"callbackURL" env:"CALLBACK_URL"`
}

// Load returns the development configuration. It takes no inputs and never
// fails; every call returns an equal, independent value.
func Load() EnvironmentConfig {
	return development()
}

func development() EnvironmentConfig {
	return EnvironmentConfig{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: Auth0{
			URL:         "dev-2bzp453o.eu",
			Audience:    "barista",
			ClientID:    "UrkzA1M0g6eaRncDiGkmmidre6ynV0Ec",
			CallbackURL: "http://localhost:4200",
		},
	}
}

// production carries no provider values: they are issued per tenant and
// have to be supplied through env, flags or a config file.
func production() EnvironmentConfig {
	return EnvironmentConfig{Production: true}
}

// ForTarget returns the base configuration of the given target. Unknown
// targets fall back to development.
func ForTarget(t Target) EnvironmentConfig {
	if t == Production {
		return production()
	}
	return development()
}

// Keys returns the sorted, dot-separated key set of the configuration's
// JSON form (e.g. "auth0.clientId"). Configurations of different targets
// always share the same key set.
func (c EnvironmentConfig) Keys() []string {
	data, err := json.Marshal(c)
	if err != nil {
		return nil
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	keys := make([]string, 0, 8)
	collectKeys("", doc, &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(prefix string, doc map[string]any, keys *[]string) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			collectKeys(key, nested, keys)
			continue
		}
		*keys = append(*keys, key)
	}
}
