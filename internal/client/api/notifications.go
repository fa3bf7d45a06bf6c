package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// Notifications returns notifications of the current user
func (c *Client) Notifications(ctx context.Context, params url.Values) ([]api.Notification, error) {
	return protected[[]api.Notification](ctx, c, http.MethodGet, withQuery("/notifications", params), nil)
}

// NotificationStats returns total and unread counters
func (c *Client) NotificationStats(ctx context.Context) (*api.NotificationStats, error) {
	return protected[*api.NotificationStats](ctx, c, http.MethodGet, "/notifications/stats", nil)
}

// MarkNotificationRead marks one notification as read
func (c *Client) MarkNotificationRead(ctx context.Context, id string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPatch,
		"/notifications/"+url.PathEscape(id)+"/read", nil)
}

// MarkAllNotificationsRead marks every notification as read
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodPatch, "/notifications/mark-all-read", nil)
}

// DeleteNotification deletes a notification
func (c *Client) DeleteNotification(ctx context.Context, id string) (*api.MessageResponse, error) {
	return protected[*api.MessageResponse](ctx, c, http.MethodDelete, "/notifications/"+url.PathEscape(id), nil)
}
