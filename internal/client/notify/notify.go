// Package notify delivers short user-visible messages, the console
// counterpart of toast notifications.
package notify

import (
	"fmt"

	"github.com/iudanet/devhub-admin/internal/client/iocli"
	"github.com/iudanet/devhub-admin/internal/client/storage"
)

//go:generate moq -out notifier_mock.go . Notifier

// Level is the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows a message to the user
type Notifier interface {
	Notify(level Level, message string)
}

// Nop discards every notification
type Nop struct{}

func (Nop) Notify(Level, string) {}

// Console prints notifications through the terminal IO
type Console struct {
	io    iocli.IO
	theme storage.Theme
	color bool
}

// NewConsole creates a console notifier.
// color disables ANSI escapes when false (e.g. output is not a terminal).
func NewConsole(io iocli.IO, theme storage.Theme, color bool) *Console {
	return &Console{io: io, theme: theme, color: color}
}

func (c *Console) Notify(level Level, message string) {
	if !c.color {
		c.io.Printf("[%s] %s\n", level, message)
		return
	}
	c.io.Printf("%s[%s]\033[0m %s\n", c.paint(level), level, message)
}

// paint returns the ANSI prefix; the light theme uses the non-bright palette
func (c *Console) paint(level Level) string {
	code := 36 // cyan
	switch level {
	case LevelSuccess:
		code = 32
	case LevelError:
		code = 31
	}
	if c.theme == storage.ThemeDark {
		code += 60 // bright variant
	}
	return fmt.Sprintf("\033[%dm", code)
}
