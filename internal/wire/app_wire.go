package wire

import (
	"cinevault/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireApp(r chi.Router, appHandler *adaptor.AppHandler) {
	r.Get("/health", appHandler.Health)
	r.Get("/api/app-info", appHandler.GetAppInfo)
}
