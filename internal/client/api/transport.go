package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// loggingTransport логирует исходящие запросы.
// НЕ логирует sensitive данные (токены, тела запросов)
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Log(req.Context(), slog.LevelWarn, "HTTP request failed",
			"method", req.Method,
			"path", sanitizePath(req.URL.Path),
			"request_id", req.Header.Get("X-Request-ID"),
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	// Уровень логирования зависит от статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "HTTP request",
		"method", req.Method,
		"path", sanitizePath(req.URL.Path),
		"request_id", req.Header.Get("X-Request-ID"),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}

// sensitiveSegments are path segments followed by a secret
var sensitiveSegments = map[string]bool{
	"token":          true,
	"reset":          true,
	"reset-password": true,
	"join":           true,
}

// sanitizePath заменяет сегмент после sensitive сегмента на ***
// Например: /auth/reset-password/TOKEN -> /auth/reset-password/***
// /admin/users/ID/reset-password остается как есть
func sanitizePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if sensitiveSegments[part] && i+1 < len(parts) && parts[i+1] != "" {
			parts[i+1] = "***"
		}
	}
	return strings.Join(parts, "/")
}
