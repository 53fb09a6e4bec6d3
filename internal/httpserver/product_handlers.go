package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	productdomain "kairo/backend/internal/domain/product"
	productusecase "kairo/backend/internal/usecase/product"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.productService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload productusecase.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.productService.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, productdomain.ErrNameExists) {
			writeError(w, http.StatusConflict, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	item, err := s.productService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var payload productusecase.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.productService.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, productdomain.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, productdomain.ErrNameExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.productService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
