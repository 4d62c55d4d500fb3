package adaptor

import (
	"net/http"
	"time"

	"cinevault/internal/dto/response"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

const AppVersion = "v2"

type AppHandler struct {
	config *utils.Config
	log    *zap.Logger
}

func NewAppHandler(config *utils.Config, log *zap.Logger) *AppHandler {
	return &AppHandler{
		config: config,
		log:    log.With(zap.String("handler", "app")),
	}
}

// GetAppInfo handles GET /api/app-info
func (h *AppHandler) GetAppInfo(w http.ResponseWriter, r *http.Request) {
	info := response.AppInfoResponse{
		Name:        h.config.App.Name,
		Environment: h.config.App.Env,
		Version:     AppVersion,
		Date:        time.Now().UTC().Format(time.RFC3339),
		Status:      "OK",
	}

	utils.ResponseSuccess(w, r, "Application info", info)
}

// Health handles GET /health
func (h *AppHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, r, "OK", nil)
}
