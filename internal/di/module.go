package di

import (
	"go.uber.org/fx"

	"github.com/freshbulk/freshbulk/internal/app"
	"github.com/freshbulk/freshbulk/internal/config"
	"github.com/freshbulk/freshbulk/internal/logger"
	"github.com/freshbulk/freshbulk/internal/server/http/handlers"
	"github.com/freshbulk/freshbulk/internal/server/http/router"
	"github.com/freshbulk/freshbulk/internal/storage/memstore"
	"github.com/freshbulk/freshbulk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		memstore.Module,
		usecase.Module,
		fx.Provide(func(s *memstore.Storage) app.Snapshotter { return s }),
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
