package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/transport/http/response"

	"github.com/google/uuid"
)

const (
	otelHTTPScopeName = "http"
	cacheKeyRateLimit = "limiter"
)

type AppMiddleware interface {
	RequestID() func(http.Handler) http.Handler
	Tracing() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// RequestID tags every request with an id, honoring one supplied by the
// caller.
func (a *appMiddleware) RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constant.RequestHeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(constant.RequestHeaderRequestID, requestID)

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"app.name":        a.config.App.Name,
				"http.path":       r.URL.Path,
				"http.method":     r.Method,
				"http.user_agent": a.getUA(r),
				"http.host":       r.Host,
				"http.source":     a.getClientIP(r),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r)+":"+a.getUA(r))

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			if err != nil {
				if errors.Is(err, cache.Nil) {
					count = 1
				} else {
					// If cache fails, allow the request to continue
					next.ServeHTTP(w, r)

					return
				}
			} else {
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
