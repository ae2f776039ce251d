package http_router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/nearest-pointset/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/nearest-pointset/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/nearest-pointset/pkg/http/server"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router with the full middleware chain.
func (api *API) Handler(pointSetService controllers.PointSetService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	group := router_helper.NewRouteGroup(router, "/api")

	pointSetRoutes := controllers.New(pointSetService, api.log)

	pointSetRoutes.Routes(group)

	return alice.New(corsHandler.Handler, gzip, middleware.AllowContentType("application/json"), api.recoverPanic(),
		middleware.RealIP, middleware.Heartbeat("/healthz"), Logger(api.log)).Then(router)
}

func gzip(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	pointSetService controllers.PointSetService,
) error {
	log.Info("Run httprouter API")

	srv := http_server.New(api.Handler(pointSetService), config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	if err := http_server.ListenAndServe(ctx, srv); err != nil {
		return err
	}

	log.Info("API stopped")
	return nil
}
