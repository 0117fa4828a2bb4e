package ratelimit

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"

	"collectionhub/internal/infrastructure/ratelimit"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Allower interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
	Limit() int
}

// RateLimit ограничивает попытки входа и регистрации с одного адреса.
type RateLimit struct {
	api     huma.API
	limiter Allower
	log     *slog.Logger
}

func New(api huma.API, limiter Allower, log *slog.Logger) *RateLimit {
	return &RateLimit{
		api:     api,
		limiter: limiter,
		log:     log.With("component", "ratelimit_middleware"),
	}
}

func (rl *RateLimit) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		key := clientIP(ctx.RemoteAddr())

		res, err := rl.limiter.Allow(ctx.Context(), key)
		if err != nil {
			// Redis недоступен - пропускаем запрос
			rl.log.Warn("rate limiter unavailable", "error", err)
			next(ctx)
			return
		}

		ctx.SetHeader("X-RateLimit-Limit", strconv.Itoa(rl.limiter.Limit()))

		if !res.Allowed {
			rl.log.Info("login attempts throttled", "client", key)
			ctx.SetHeader("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			_ = huma.WriteErr(rl.api, ctx, http.StatusTooManyRequests, "Too many attempts, try again later")
			return
		}

		ctx.SetHeader("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		next(ctx)
	}
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
