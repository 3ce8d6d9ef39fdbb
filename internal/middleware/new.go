package middleware

import (
	"sales-task-tracker/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RequestsPerMin int // per client IP; <= 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
