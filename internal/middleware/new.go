package middleware

import (
	"insurance-orchestrator/config"
	"insurance-orchestrator/pkg/log"
)

type Middleware struct {
	l       log.Logger
	admin   config.AdminConfig
	limiter *rateLimiter
}

func New(l log.Logger, admin config.AdminConfig) Middleware {
	return Middleware{
		l:       l,
		admin:   admin,
		limiter: newRateLimiter(admin.RateLimitPerMin),
	}
}
