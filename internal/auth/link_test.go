package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainIssuerJWKS(t *testing.T) {
	a := testAuth0()

	assert.Equal(t, "dev-2bzp453o.eu.auth0.com", Domain(a))
	assert.Equal(t, "https://dev-2bzp453o.eu.auth0.com/", Issuer(a))
	assert.Equal(t, "https://dev-2bzp453o.eu.auth0.com/.well-known/jwks.json", JWKSURL(a))
}

func TestLoginLink(t *testing.T) {
	a := testAuth0()

	link := LoginLink(a, "/tabs/user-page", "")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "dev-2bzp453o.eu.auth0.com", u.Host)
	assert.Equal(t, "/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "barista", q.Get("audience"))
	assert.Equal(t, "token", q.Get("response_type"))
	assert.Equal(t, "UrkzA1M0g6eaRncDiGkmmidre6ynV0Ec", q.Get("client_id"))
	assert.Equal(t, "http://localhost:4200/tabs/user-page", q.Get("redirect_uri"))
	assert.False(t, q.Has("state"))
}

func TestLoginLink_WithState(t *testing.T) {
	link := LoginLink(testAuth0(), "", "abc 123&x")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "abc 123&x", u.Query().Get("state"))
	assert.Equal(t, "http://localhost:4200", u.Query().Get("redirect_uri"))
}
