package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/dto/response"
	"coffee-booking/internal/usecase"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := utils.GetCartKeyFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Cart unavailable")
		return
	}

	cart, err := h.service.GetCart(r.Context(), cartKey)
	if err != nil {
		handleServiceError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := utils.GetCartKeyFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Cart unavailable")
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cart, err := h.service.AddItem(r.Context(), cartKey, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add cart item")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.service.RemoveItem, "remove cart item")
}

// IncreaseQuantity handles PUT /api/cart/items/{id}/increase
func (h *CartHandler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.service.IncreaseQuantity, "increase cart item quantity")
}

// DecreaseQuantity handles PUT /api/cart/items/{id}/decrease
func (h *CartHandler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.service.DecreaseQuantity, "decrease cart item quantity")
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := utils.GetCartKeyFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Cart unavailable")
		return
	}

	cart, err := h.service.ClearCart(r.Context(), cartKey)
	if err != nil {
		handleServiceError(w, h.log, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

// ToggleCart handles PUT /api/cart/toggle
func (h *CartHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	cartKey, ok := utils.GetCartKeyFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Cart unavailable")
		return
	}

	cart, err := h.service.ToggleCart(r.Context(), cartKey)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle cart")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

type cartItemOp func(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error)

func (h *CartHandler) mutateItem(w http.ResponseWriter, r *http.Request, op cartItemOp, operation string) {
	cartKey, ok := utils.GetCartKeyFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Cart unavailable")
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || itemID < 1 {
		utils.ResponseBadRequest(w, "Invalid item ID", nil)
		return
	}

	cart, err := op(r.Context(), cartKey, itemID)
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}
