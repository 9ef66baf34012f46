// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the Auth0 side of the coffee shop client
// configuration: building the login redirect from [config.Auth0] and
// verifying the bearer tokens Auth0 issues for the configured audience.
package auth

import (
	"net/url"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
)

const auth0DomainSuffix = ".auth0.com"

// Domain returns the full Auth0 tenant domain, e.g. "dev-2bzp453o.eu.auth0.com".
func Domain(a config.Auth0) string {
	return a.URL + auth0DomainSuffix
}

// Issuer returns the "iss" claim value of tokens issued by the tenant.
func Issuer(a config.Auth0) string {
	return "https://" + Domain(a) + "/"
}

// JWKSURL returns the tenant's JSON Web Key Set endpoint.
func JWKSURL(a config.Auth0) string {
	return "https://" + Domain(a) + "/.well-known/jwks.json"
}

// LoginLink builds the /authorize URL that starts the implicit login flow.
// Auth0 redirects back to CallbackURL + callbackPath with the access token
// in the fragment. state is sent only when non-empty.
func LoginLink(a config.Auth0, callbackPath, state string) string {
	q := url.Values{}
	q.Set("audience", a.Audience)
	q.Set("response_type", "token")
	q.Set("client_id", a.ClientID)
	q.Set("redirect_uri", a.CallbackURL+callbackPath)
	if state != "" {
		q.Set("state", state)
	}

	u := url.URL{
		Scheme:   "https",
		Host:     Domain(a),
		Path:     "/authorize",
		RawQuery: q.Encode(),
	}
	return u.String()
}
