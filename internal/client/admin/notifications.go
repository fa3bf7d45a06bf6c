package admin

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	pkgapi "github.com/iudanet/devhub-admin/pkg/api"
)

// Notifications backs the notifications dropdown
type Notifications struct {
	base
}

// NewNotifications creates the notifications service
func NewNotifications(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Notifications {
	return &Notifications{base: newBase(client, notifier, logger)}
}

// List loads notifications; unreadOnly asks the server for unread ones
func (s *Notifications) List(ctx context.Context, unreadOnly bool, limit int) ([]pkgapi.Notification, error) {
	params := url.Values{}
	if unreadOnly {
		params.Set("unread", "true")
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	items, err := s.client.Notifications(ctx, params)
	if err != nil {
		return nil, s.fail("Failed to load notifications", err)
	}
	return items, nil
}

// Stats loads the counters
func (s *Notifications) Stats(ctx context.Context) (*pkgapi.NotificationStats, error) {
	stats, err := s.client.NotificationStats(ctx)
	if err != nil {
		return nil, s.fail("Failed to load notifications", err)
	}
	return stats, nil
}

// MarkRead marks one notification as read
func (s *Notifications) MarkRead(ctx context.Context, id string) error {
	if _, err := s.client.MarkNotificationRead(ctx, id); err != nil {
		return s.fail("Error", err)
	}
	return nil
}

// MarkAllRead marks every notification as read
func (s *Notifications) MarkAllRead(ctx context.Context) error {
	resp, err := s.client.MarkAllNotificationsRead(ctx)
	if err != nil {
		return s.fail("Error", err)
	}
	if resp != nil {
		s.success("All notifications marked as read")
	}
	return nil
}

// Delete deletes a notification
func (s *Notifications) Delete(ctx context.Context, id string) error {
	resp, err := s.client.DeleteNotification(ctx, id)
	if err != nil {
		return s.fail("Error", err)
	}
	if resp != nil {
		s.success("Notification deleted")
	}
	return nil
}
