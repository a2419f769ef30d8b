package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/usecase"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Checkout handles POST /api/checkout (protected)
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cartKey, ok := utils.GetCartKeyFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Cart unavailable")
		return
	}

	receipt, err := h.service.Checkout(r.Context(), userID.String(), cartKey)
	if err != nil {
		// A non-nil receipt means the order row exists even though its
		// items could not be recorded. The caller keeps the order id.
		if receipt != nil {
			h.log.Error("Checkout partially failed", zap.Error(err),
				zap.String("order_id", receipt.OrderID))
			utils.ResponseCreated(w, "order created, items could not be recorded", receipt)
			return
		}
		handleServiceError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "success", receipt)
}

// GetUserOrders handles GET /api/user/orders (protected)
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)

	orders, err := h.service.GetUserOrders(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// GetOrderByID handles GET /api/user/orders/{id} (protected)
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), userID.String(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// ==================== ADMIN METHODS ====================

// GetAllOrders handles GET /api/admin/orders (admin only)
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	orders, err := h.service.GetAllOrders(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// GetOrderDetail handles GET /api/admin/orders/{id} (admin only)
func (h *OrderHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	// Empty user id skips the ownership check
	order, err := h.service.GetOrderByID(r.Context(), "", orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order detail")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status (admin only)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}
