package api

import (
	_ "goldprice/docs"
	"goldprice/internal/gold/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(goldHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", goldHandler.GetCurrencies)
		r.Get("/prices/{code}", goldHandler.GetPrice)
		r.Get("/prices/{code}/history", goldHandler.GetHistory)
		r.Get("/prices/{code}/history.csv", goldHandler.ExportHistoryCSV)
		r.Get("/ticker", goldHandler.GetTicker)
		r.Get("/calculator", goldHandler.Calculate)
		r.Get("/convert", goldHandler.Convert)
		r.Get("/rates/{from}/{to}", goldHandler.GetRate)
		r.Get("/preferences/language", goldHandler.GetLanguage)
		r.Put("/preferences/language", goldHandler.SetLanguage)
		r.Get("/messages", goldHandler.GetMessages)
	})
	return router
}
