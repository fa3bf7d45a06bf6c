// Package admin holds the page services of the console. Each service loads
// data through the API client, reports the outcome through the notifier and
// returns errors unchanged. A nil result with a nil error means the session
// ended during the call.
package admin

import (
	"log/slog"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/notify"
)

// base is shared by every page service
type base struct {
	client   *api.Client
	notifier notify.Notifier
	logger   *slog.Logger
}

func newBase(client *api.Client, notifier notify.Notifier, logger *slog.Logger) base {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return base{client: client, notifier: notifier, logger: logger}
}

// fail сообщает об ошибке пользователю и возвращает ее без изменений
func (b base) fail(prefix string, err error) error {
	b.notifier.Notify(notify.LevelError, prefix+": "+err.Error())
	return err
}

func (b base) success(msg string) {
	b.notifier.Notify(notify.LevelSuccess, msg)
}
