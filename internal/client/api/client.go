// Package api is the single HTTP entry point of the console: every call to
// the DevHub REST API goes through Client.Request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/pkg/api"
)

// DefaultTimeout ограничивает время одного запроса
const DefaultTimeout = 30 * time.Second

// authPathMarker marks endpoints whose 401 means "wrong credentials",
// not "session expired"
const authPathMarker = "/auth/"

// Client представляет HTTP клиент для взаимодействия с DevHub API
type Client struct {
	httpClient *http.Client
	guard      *session.Guard
	logger     *slog.Logger
	baseURL    string
}

// NewClient создает новый API клиент.
// timeout <= 0 uses DefaultTimeout, a nil logger uses slog.Default().
func NewClient(baseURL string, guard *session.Guard, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		guard:   guard,
		logger:  logger,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(http.DefaultTransport, logger),
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// RequestOptions describes one call. Method defaults to GET.
// Body is sent as is; Headers override the defaults.
type RequestOptions struct {
	Headers map[string]string
	Method  string
	Body    []byte
}

// Response is a successful (2xx) answer
type Response struct {
	Body       []byte
	StatusCode int
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Request sends one call to endpoint (a path relative to the base URL).
//
// A nil *Response with a nil error means the session was terminated while
// handling the call: the token is already cleared and the logout event has
// been emitted. Server rejections are returned as *Error.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		bodyReader = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Токен читается заново на каждый вызов
	token := c.guard.Token(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportFailure(ctx, token, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized && token != "" && !strings.Contains(endpoint, authPathMarker) {
		c.logger.Warn("token rejected by server, closing session", "endpoint", endpoint)
		c.guard.Logout(ctx, session.ReasonExpiredRelogin)
		return nil, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, respBody)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// transportFailure решает, считать ли сетевую ошибку истекшей сессией
func (c *Client) transportFailure(ctx context.Context, token string, err error) error {
	// Отмена вызывающим: не повод закрывать сессию
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return fmt.Errorf("request failed: %w", err)
	}

	if token != "" && !c.guard.IsTokenValid(token) {
		c.logger.Warn("network error with expired token, closing session", "error", err)
		c.guard.Logout(ctx, session.ReasonExpiredRelogin)
		return nil
	}

	return fmt.Errorf("request failed: %w", err)
}

// checkAuth is the pre-flight check of protected calls.
// False means the guard already logged out and the call must be dropped.
func (c *Client) checkAuth(ctx context.Context) bool {
	return c.guard.CheckBeforeRequest(ctx)
}

// IsCurrentUserAdmin reports whether the stored session belongs to an admin
func (c *Client) IsCurrentUserAdmin(ctx context.Context) bool {
	return c.guard.IsAdmin(ctx)
}

// CurrentUser returns the claims of the stored token, nil without a session
func (c *Client) CurrentUser(ctx context.Context) *session.Claims {
	return c.guard.CurrentUser(ctx)
}

// Ping reports whether the server answers /admin/ping with status "online".
// Any failure reads as offline.
func (c *Client) Ping(ctx context.Context) bool {
	resp, err := c.Request(ctx, "/admin/ping", RequestOptions{})
	if err != nil || resp == nil {
		return false
	}
	var ping api.PingResponse
	if err := resp.Decode(&ping); err != nil {
		return false
	}
	return ping.Status == api.PingStatusOnline
}

// call выполняет запрос с JSON телом и декодирует ответ в T.
// The zero T with a nil error means the session was terminated; any 2xx
// answer yields a non-nil pointer or slice.
func call[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	var out T

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	resp, err := c.Request(ctx, endpoint, RequestOptions{Method: method, Body: payload})
	if err != nil || resp == nil {
		return out, err
	}

	if err := resp.Decode(&out); err != nil {
		return out, err
	}
	return present(out), nil
}

// present заменяет nil указатель или срез пустым значением:
// nil остается только признаком закрытой сессии
func present[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
	case reflect.Slice:
		if rv.IsNil() {
			rv.Set(reflect.MakeSlice(rv.Type(), 0, 0))
		}
	}
	return v
}

// protected is call preceded by the pre-flight session check
func protected[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	if !c.checkAuth(ctx) {
		var zero T
		return zero, nil
	}
	return call[T](ctx, c, method, endpoint, body)
}
