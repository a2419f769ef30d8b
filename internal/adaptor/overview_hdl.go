package adaptor

import (
	"net/http"

	"coffee-booking/internal/usecase"
	"coffee-booking/pkg/utils"

	"go.uber.org/zap"
)

type OverviewHandler struct {
	service usecase.OverviewService
	log     *zap.Logger
}

func NewOverviewHandler(service usecase.OverviewService, log *zap.Logger) *OverviewHandler {
	return &OverviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "overview")),
	}
}

// GetOverview handles GET /api/admin/overview (admin only)
func (h *OverviewHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.GetOverview(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get admin overview")
		return
	}

	utils.ResponseSuccess(w, "success", overview)
}
