package config

// Rate limit configuration for the public API
type RateLimitConfig struct {
	Rate  int // Tokens refilled per interval
	Burst int // Burst capacity per client IP
}

var DefaultRateLimitConfig = RateLimitConfig{
	Rate:  600,
	Burst: 120,
}
