// Package ratelimit provides per-client rate limiting using the token
// bucket algorithm.
package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// tokenBucket is a single client+endpoint bucket. Tokens refill at a
// steady rate up to the burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() (allowed bool, remaining int) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.lastRefill).Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true, int(tb.tokens)
	}
	return false, 0
}

// EndpointConfig is the limit for one endpoint, matched by method and
// path prefix.
type EndpointConfig struct {
	PathPrefix string
	Method     string
	Limit      int // requests per window
	Window     time.Duration
	Burst      int // defaults to Limit when 0
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// LoadConfig builds the limiter configuration from environment variables
// with the built-in endpoint table.
func LoadConfig() *Config {
	if os.Getenv("RATE_LIMIT_ENABLED") == "false" {
		return &Config{Enabled: false}
	}

	defaultLimit := 300
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_DEFAULT_LIMIT")); err == nil && v > 0 {
		defaultLimit = v
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointConfig{
			// Ranking fans out across up to 100 postings per call.
			{PathPrefix: "/match/rank", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{PathPrefix: "/match", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
			{PathPrefix: "/analyze", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		},
	}
}

// Info reports the outcome of a rate limit check.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
}

// Limiter tracks token buckets per (client, endpoint) pair.
type Limiter struct {
	cfg     *Config
	buckets map[string]*tokenBucket
	mu      sync.Mutex
	done    chan struct{}
}

// NewLimiter creates a Limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg *Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*tokenBucket),
		done:    make(chan struct{}),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Check consumes one request from the client's bucket for the endpoint.
// Health checks are never limited.
func (l *Limiter) Check(client, method, path string) Info {
	if !l.cfg.Enabled || path == "/health" {
		return Info{Allowed: true, Limit: 0, Remaining: 0}
	}

	limit, window, burst := l.cfg.DefaultLimit, l.cfg.DefaultWindow, l.cfg.DefaultLimit
	for _, ep := range l.cfg.Endpoints {
		if ep.Method == method && strings.HasPrefix(path, ep.PathPrefix) {
			limit, window = ep.Limit, ep.Window
			burst = ep.Burst
			if burst == 0 {
				burst = ep.Limit
			}
			break
		}
	}

	key := client + " " + method + " " + path
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = newTokenBucket(burst, float64(limit)/window.Seconds())
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	allowed, remaining := bucket.allow()
	return Info{Allowed: allowed, Limit: limit, Remaining: remaining}
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	if l.cfg.Enabled && l.cfg.CleanupInterval > 0 {
		close(l.done)
	}
}

// cleanupLoop periodically drops buckets that have refilled completely;
// they are indistinguishable from fresh ones.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			for key, bucket := range l.buckets {
				bucket.mu.Lock()
				full := bucket.tokens+time.Since(bucket.lastRefill).Seconds()*bucket.refillRate >= float64(bucket.capacity)
				bucket.mu.Unlock()
				if full {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
