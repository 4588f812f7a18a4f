package memstore

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/freshbulk/freshbulk/internal/config"
	"github.com/freshbulk/freshbulk/internal/domain/repository"
)

// Module wires the in-memory store and its repository adapters. The OnStop
// hook is the graceful-shutdown checkpoint: fx runs it after the HTTP server
// hook has stopped, so the final snapshot sees every accepted write.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Config.SnapshotPath, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := storage.Checkpoint(ctx); err != nil {
				logger.Error("final checkpoint failed, unpersisted writes will be lost",
					slog.String("path", storage.Path()),
					slog.String("error", err.Error()),
				)
				return err
			}
			logger.Info("final checkpoint written", slog.String("path", storage.Path()))
			return nil
		},
	})
}
