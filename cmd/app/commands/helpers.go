// Package commands contains the CLI command implementations.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/tickets/internal/app"
)

// Stdout is the writer commands print to. Tests pass their own buffer instead.
var Stdout io.Writer = os.Stdout

// closeContainer releases the container's servers and metrics provider.
// Errors are only logged because the process is already exiting.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("container shutdown failed", slog.Any("error", err))
	}
}
