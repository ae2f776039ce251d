//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
	"github.com/lintang-b-s/nearest-pointset/pkg/di/config"
	shortcontext "github.com/lintang-b-s/nearest-pointset/pkg/di/context"
	logger_di "github.com/lintang-b-s/nearest-pointset/pkg/di/logger"
	pointset_di "github.com/lintang-b-s/nearest-pointset/pkg/di/pointset"
	pointSetHttp "github.com/lintang-b-s/nearest-pointset/pkg/http"
	"github.com/lintang-b-s/nearest-pointset/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/nearest-pointset/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	pointset_di.New,
)

var pointSetSet = wire.NewSet(
	defaultSet,
	NewPointSetService,
	NewPointSetAPIServer,
)

func NewPointSetService(log *zap.Logger, cfg *config.Config, pointSet datastructure.PointSet) controllers.PointSetService {
	return usecases.New(log, pointSet, cfg.PointSet.Impl, cfg.PointSet.BatchWorkers)
}

func NewPointSetAPIServer(ctx context.Context, log *zap.Logger, cfg *config.Config,
	pointSetService controllers.PointSetService) (*pointSetHttp.Server, error) {
	api := pointSetHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, cfg, pointSetService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializePointSetService() (*pointSetHttp.Server, func(), error) {

	panic(wire.Build(pointSetSet))
}
