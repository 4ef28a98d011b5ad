package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"
)

const commandTimeout = 10 * time.Second

// WrapWithLogging wraps a command handler with start/completion logging and
// a watchdog timeout.
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return runLogged("cmd", name, e.User().Username, func() error { return h(e) })
	}
}

// WrapComponentWithLogging is WrapWithLogging for component interactions.
func WrapComponentWithLogging(name string, h handler.ComponentHandler) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		return runLogged("component", name, e.User().Username, func() error { return h(e) })
	}
}

func runLogged(kind, name, userName string, fn func() error) error {
	start := time.Now()
	attrs := []any{
		slog.String("type", kind),
		slog.String("name", name),
		slog.String("user_name", userName),
	}

	slog.Info("Command started", attrs...)

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		took := time.Since(start)
		attrs = append(attrs, slog.Duration("took", took))
		switch {
		case err != nil:
			slog.Error("Command failed", append(attrs,
				slog.Any("error", err),
				slog.String("status", "failed"),
			)...)
		case took > 2*time.Second:
			slog.Warn("Command executed slowly", append(attrs,
				slog.String("status", "slow"),
			)...)
		default:
			slog.Info("Command completed", append(attrs,
				slog.String("status", "success"),
			)...)
		}
		return err

	case <-time.After(commandTimeout):
		slog.Error("Command timed out", append(attrs,
			slog.String("status", "timeout"),
			slog.Duration("timeout", commandTimeout),
		)...)
		return fmt.Errorf("command timed out after %s", commandTimeout)
	}
}
