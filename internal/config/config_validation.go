// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks that every field is set and that the API server and
// callback URLs are absolute http(s) URLs.
//
// All violations are reported at once, joined with [errors.Join]; each one
// wraps [ErrMissingField] or [ErrInvalidURL]. Returns nil for a usable
// configuration.
func (c EnvironmentConfig) Validate() error {
	var errs []error

	required := []struct {
		key   string
		value string
	}{
		{"apiServerUrl", c.APIServerURL},
		{"auth0.url", c.Auth0.URL},
		{"auth0.audience", c.Auth0.Audience},
		{"auth0.clientId", c.Auth0.ClientID},
		{"auth0.callbackURL", c.Auth0.CallbackURL},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, f.key))
		}
	}

	urls := []struct {
		key   string
		value string
	}{
		{"apiServerUrl", c.APIServerURL},
		{"auth0.callbackURL", c.Auth0.CallbackURL},
	}
	for _, f := range urls {
		if f.value == "" {
			continue
		}
		if err := validateURL(f.value); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidURL, f.key, err))
		}
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("empty host")
	}
	return nil
}
