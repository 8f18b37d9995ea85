package http

import (
	"net/http"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/pkg/httpx"
)

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, product)
}

func (h *handlers) createProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.Product
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	product, err := h.products.Create(r.Context(), req)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, product)
}

func (h *handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.Product
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = r.PathValue("id")

	product, err := h.products.Update(r.Context(), req)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, product)
}

func (h *handlers) removeProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeBackendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
