// Package config provides the deployment environment configuration of the
// coffee shop web client: the API server base URL and the Auth0 client
// settings used by the login redirect flow.
//
// [Load] returns the development configuration literal and never fails.
// [Get] assembles the configuration for a deployment target from the
// following sources (later sources override earlier non-empty fields):
//  1. Target base value ([ForTarget])
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file in the environment.ts shape
//
// The result is validated before it is returned. Values are handed out by
// value, so callers cannot mutate a configuration another component holds.
package config
