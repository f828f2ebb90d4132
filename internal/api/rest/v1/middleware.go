package v1

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const claimsKey = "claims"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "realshot",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "realshot",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	rateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "realshot",
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter by route group.",
		},
		[]string{"group"},
	)
)

// Metrics records request counts and latencies labelled with the route template
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestDuration.
			WithLabelValues(ctx.Request.Method, route).
			Observe(time.Since(start).Seconds())

		httpRequestsTotal.
			WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).
			Inc()
	}
}

// RecordErrors logs 5xx responses and stores them in the error log
func RecordErrors(recorder errorlogs.Recorder, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Writer.Status() < http.StatusInternalServerError || len(ctx.Errors) == 0 {
			return
		}

		err := ctx.Errors.Last().Err
		source := ctx.Request.Method + " " + ctx.FullPath()
		userID := ""
		if claims := claimsFrom(ctx); claims != nil {
			userID = claims.UserID
		}

		log.Error("request failed", "source", source, "status", ctx.Writer.Status(), "user_id", userID, "error", err)
		recorder.Record(ctx.Request.Context(), source, err, userID)
	}
}

// RequireAuth resolves the Bearer token or session cookie to claims, answering 401 otherwise
func RequireAuth(authService users.AuthService, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := ctx.Cookie(cookieName); err == nil {
				token = cookie
			}
		}
		if token == "" {
			respondError(ctx, fmt.Errorf("%w: authentication required", apperrors.ErrUnauthorized))
			return
		}

		claims, err := authService.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireAdmin answers 403 unless RequireAuth resolved an ADMIN
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := claimsFrom(ctx)
		if claims == nil {
			respondError(ctx, fmt.Errorf("%w: authentication required", apperrors.ErrUnauthorized))
			return
		}
		if claims.Role != users.RoleAdmin {
			respondError(ctx, fmt.Errorf("%w: admin role required", apperrors.ErrForbidden))
			return
		}
		ctx.Next()
	}
}

// RateLimit allows the limiter's quota per client IP within group, answering 429 otherwise
func RateLimit(limiter *ratelimit.Limiter, group string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allowed, retryAfter := limiter.Allow(ctx.ClientIP() + "|" + group)
		if !allowed {
			rateLimitedTotal.WithLabelValues(group).Inc()
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			ctx.Header("Retry-After", strconv.Itoa(seconds))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "too many requests"})
			return
		}
		ctx.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func claimsFrom(ctx *gin.Context) *users.Claims {
	value, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*users.Claims)
	return claims
}

// userID returns the id of the authenticated caller; only valid behind RequireAuth
func userID(ctx *gin.Context) string {
	if claims := claimsFrom(ctx); claims != nil {
		return claims.UserID
	}
	return ""
}
