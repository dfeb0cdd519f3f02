package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const requestIDKey = "request_id"

// loggerMiddleware tags every request with an id, taken from the X-Request-Id header
// or generated, and logs the request once it is handled.
func (service *Service) loggerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()

		status := ctx.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if len(ctx.Errors) > 0 {
			event = event.Str("errors", ctx.Errors.String())
		}

		event.
			Str("request_id", requestID).
			Str("protocol", "http").
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status_code", status).
			Str("status_text", http.StatusText(status)).
			Dur("duration", time.Since(start)).
			Msg("received an HTTP request")
	}
}

// requestLogger returns the global logger enriched with the id of the current request.
func requestLogger(ctx *gin.Context) zerolog.Logger {
	return log.With().Str("request_id", ctx.GetString(requestIDKey)).Logger()
}
