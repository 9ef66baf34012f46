package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	kid  string
	priv *rsa.PrivateKey
}

func newTestKey(t *testing.T, kid string) *testKey {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &testKey{kid: kid, priv: priv}
}

func (k *testKey) public() *rsa.PublicKey {
	return &k.priv.PublicKey
}

func (k *testKey) jwk() jwkKey {
	return jwkKey{
		Kty: "RSA",
		Kid: k.kid,
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(k.priv.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(k.priv.E)).Bytes()),
	}
}

func (k *testKey) sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if k.kid != "" {
		token.Header["kid"] = k.kid
	}
	signed, err := token.SignedString(k.priv)
	require.NoError(t, err)
	return signed
}

func testAuth0() config.Auth0 {
	return config.Load().Auth0
}

func validClaims(permissions ...string) *Claims {
	a := testAuth0()
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer(a),
			Subject:   "auth0|barista-1",
			Audience:  jwt.ClaimStrings{a.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Permissions: permissions,
	}
}

// newJWKSServer serves the given keys and counts requests.
func newJWKSServer(t *testing.T, keys ...*testKey) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32

	jwks := jwksResponse{}
	for _, k := range keys {
		jwks.Keys = append(jwks.Keys, k.jwk())
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}
