// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. For the loader's source layer that means:
//   - COFFEE_ENV selects the target and CONFIG names the JSON file;
//   - API_SERVER_URL sets [EnvironmentConfig.APIServerURL];
//   - AUTH0_URL, AUTH0_AUDIENCE, AUTH0_CLIENT_ID and AUTH0_CALLBACK_URL set
//     the [Auth0] fields through the "AUTH0_" envPrefix.
//
// Unset variables leave their fields at the zero value, so they do not
// override later layers.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
