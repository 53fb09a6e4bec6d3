package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	customerdomain "kairo/backend/internal/domain/customer"
	customerusecase "kairo/backend/internal/usecase/customer"
)

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	items, err := s.customerService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var payload customerusecase.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.customerService.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, customerdomain.ErrEmailExists) {
			writeError(w, http.StatusConflict, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	item, err := s.customerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var payload customerusecase.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.customerService.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, customerdomain.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, customerdomain.ErrEmailExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := s.customerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCustomerInvoices(w http.ResponseWriter, r *http.Request) {
	items, err := s.invoiceService.ListIssuedByCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
