package http

import (
	"net/http"
	"slices"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/pkg/httpx"
)

type createOrderRequest struct {
	Items []domain.OrderItem `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListByUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *handlers) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	if !callerMayAccess(r, order) {
		httpx.WriteError(w, r, http.StatusForbidden, "forbidden")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *handlers) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		httpx.WriteError(w, r, http.StatusBadRequest, "order needs at least one item")
		return
	}

	order, err := h.orders.Create(r.Context(), httpx.UserIDFromContext(r.Context()), req.Items)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, order)
}

func (h *handlers) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Status == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "status is required")
		return
	}

	id := r.PathValue("id")
	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	if !callerMayAccess(r, order) {
		httpx.WriteError(w, r, http.StatusForbidden, "forbidden")
		return
	}

	updated, err := h.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *handlers) removeOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	if !callerMayAccess(r, order) {
		httpx.WriteError(w, r, http.StatusForbidden, "forbidden")
		return
	}

	if err := h.orders.Remove(r.Context(), id); err != nil {
		writeBackendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// callerMayAccess allows the order's owner and admins through.
func callerMayAccess(r *http.Request, order domain.Order) bool {
	if order.UserID == httpx.UserIDFromContext(r.Context()) {
		return true
	}
	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok {
		return slices.Contains(claims.Roles, "admin")
	}
	return false
}
