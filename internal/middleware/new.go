package middleware

import (
	"multimodal-chat/pkg/log"
)

// Middleware bundles the HTTP middlewares shared across domains.
type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
