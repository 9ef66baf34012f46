package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=keys.go -destination=../mock/mock_keys.go -package=mock

// KeySource resolves the RSA public key a token was signed with.
type KeySource interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

// minRefreshInterval bounds how often a kid missing from the cached set
// may trigger a refetch.
const minRefreshInterval = 30 * time.Second

// JWKSCache is a [KeySource] backed by a JWKS endpoint. Keys are cached for
// ttl. A kid missing from the cache triggers a refetch at most once per
// minRefreshInterval, and concurrent refetches are merged into one request.
// When a refetch fails, a key that is still cached is served stale.
type JWKSCache struct {
	client     *resty.Client
	url        string
	ttl        time.Duration
	minRefresh time.Duration
	log        *logger.Logger

	// refreshMu serializes refetches; mu guards the fields below it.
	refreshMu   sync.Mutex
	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetchedAt   time.Time
	attemptedAt time.Time
	lastErr     error
}

// NewJWKSCache returns a cache reading keys from jwksURL.
func NewJWKSCache(jwksURL string, ttl time.Duration, log *logger.Logger) *JWKSCache {
	if log == nil {
		log = logger.Nop()
	}
	return &JWKSCache{
		client:     resty.New().SetTimeout(10 * time.Second),
		url:        jwksURL,
		ttl:        ttl,
		minRefresh: minRefreshInterval,
		log:        log,
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// Key returns the public key for kid.
func (c *JWKSCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok, expired := c.lookup(kid); ok && !expired {
		return key, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// another caller may have refetched while this one waited
	key, ok, expired := c.lookup(kid)
	if ok && !expired {
		return key, nil
	}

	c.mu.RLock()
	throttled := !c.attemptedAt.IsZero() && time.Since(c.attemptedAt) < c.minRefresh
	lastErr := c.lastErr
	c.mu.RUnlock()

	if !ok && throttled {
		if lastErr != nil {
			return nil, fmt.Errorf("refresh JWKS: %w", lastErr)
		}
		return nil, fmt.Errorf("%w: %q", errUnknownKid, kid)
	}

	if err := c.refresh(ctx); err != nil {
		if ok {
			c.log.Warn().Err(err).Str("kid", kid).Msg("JWKS refresh failed, serving cached key")
			return key, nil
		}
		return nil, fmt.Errorf("refresh JWKS: %w", err)
	}

	key, ok, _ = c.lookup(kid)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownKid, kid)
	}
	return key, nil
}

func (c *JWKSCache) lookup(kid string) (key *rsa.PublicKey, ok, expired bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, ok = c.keys[kid]
	return key, ok, time.Since(c.fetchedAt) > c.ttl
}

func (c *JWKSCache) refresh(ctx context.Context) error {
	keys, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.attemptedAt = time.Now()
	c.lastErr = err
	if err != nil {
		return err
	}
	c.keys = keys
	c.fetchedAt = c.attemptedAt
	return nil
}

func (c *JWKSCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("JWKS endpoint returned %d", resp.StatusCode())
	}

	var jwks jwksResponse
	if err := json.Unmarshal(resp.Body(), &jwks); err != nil {
		return nil, fmt.Errorf("decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, k := range jwks.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			c.log.Warn().Err(err).Str("kid", k.Kid).Msg("skipping malformed JWKS key")
			continue
		}
		keys[k.Kid] = pub
	}
	return keys, nil
}

func parseRSAKey(k jwkKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() || e.Int64() <= 1 || e.Int64() > 1<<31-1 {
		return nil, fmt.Errorf("invalid exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(e.Int64()),
	}, nil
}
