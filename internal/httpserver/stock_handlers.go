package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	productdomain "kairo/backend/internal/domain/product"
	stockdomain "kairo/backend/internal/domain/stock"
)

func (s *Server) handleListStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.stockService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
	record, err := s.stockService.Get(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, stockdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleSetStock(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	record, err := s.stockService.Set(r.Context(), chi.URLParam(r, "productID"), payload.Quantity)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleDeleteStock(w http.ResponseWriter, r *http.Request) {
	if err := s.stockService.Delete(r.Context(), chi.URLParam(r, "productID")); err != nil {
		if errors.Is(err, stockdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	record, err := s.stockService.Adjust(r.Context(), chi.URLParam(r, "productID"), payload.Delta)
	if err != nil {
		switch {
		case errors.Is(err, stockdomain.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, stockdomain.ErrInsufficientStock):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, record)
}
