package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/savings-server/internal/handlers/v1/saving"
	"github.com/carson-networks/savings-server/internal/handlers/v1/status"
	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/service"
	"github.com/carson-networks/savings-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/healthz", logging.LoggingWrapper("Healthz", r.Logger, statusHandler.Healthz))
	mux.HandleFunc("/checkz", logging.LoggingWrapper("Checkz", r.Logger, statusHandler.Checkz))

	humaAPI := humago.New(mux, huma.DefaultConfig("savings-server", "1.0.0"))
	humaAPI.UseMiddleware(
		logging.Middleware(r.Logger),
		recovery(humaAPI, r.Logger),
	)

	saving.NewCreateSavingHandler(r.Service.Savings).Register(humaAPI)
	saving.NewGetSavingHandler(r.Service.Savings).Register(humaAPI)
	saving.NewListSavingsHandler(r.Service.Savings).Register(humaAPI)
	saving.NewUpdateSavingHandler(r.Service.Savings).Register(humaAPI)
	saving.NewDeleteSavingHandler(r.Service.Savings).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// recovery turns a handler panic into the generic internal error response
// instead of a dropped connection. Full detail stays in the log.
func recovery(humaAPI huma.API, logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			if p := recover(); p != nil {
				logger.WithField("panic", p).Error("HttpServer.PanicRecovered")
				huma.WriteErr(humaAPI, ctx, http.StatusInternalServerError, "panic")
			}
		}()
		next(ctx)
	}
}
