package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	customerdomain "kairo/backend/internal/domain/customer"
	invoicedomain "kairo/backend/internal/domain/invoice"
	invoiceusecase "kairo/backend/internal/usecase/invoice"
)

func (s *Server) handleListIssuedInvoices(w http.ResponseWriter, r *http.Request) {
	items, err := s.invoiceService.ListIssued(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateIssuedInvoice(w http.ResponseWriter, r *http.Request) {
	var payload invoiceusecase.CreateIssuedInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.invoiceService.CreateIssued(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, invoicedomain.ErrDuplicateNumber):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, customerdomain.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleNextInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	number, err := s.invoiceService.NextNumber(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"invoiceNumber": number})
}

func (s *Server) handleGetIssuedInvoice(w http.ResponseWriter, r *http.Request) {
	item, err := s.invoiceService.GetIssued(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateIssuedInvoice(w http.ResponseWriter, r *http.Request) {
	var payload invoiceusecase.UpdateIssuedInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.invoiceService.UpdateIssued(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, invoicedomain.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, invoicedomain.ErrCancelled):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handlePayInvoice(w http.ResponseWriter, r *http.Request) {
	item, err := s.invoiceService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, invoicedomain.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, invoicedomain.ErrCancelled):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleCancelInvoice(w http.ResponseWriter, r *http.Request) {
	item, err := s.invoiceService.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteIssuedInvoice(w http.ResponseWriter, r *http.Request) {
	if err := s.invoiceService.DeleteIssued(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListReceivedInvoices(w http.ResponseWriter, r *http.Request) {
	items, err := s.invoiceService.ListReceived(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateReceivedInvoice(w http.ResponseWriter, r *http.Request) {
	var payload invoiceusecase.CreateReceivedInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.invoiceService.CreateReceived(r.Context(), payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateReceivedInvoice(w http.ResponseWriter, r *http.Request) {
	var payload invoiceusecase.UpdateReceivedInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	item, err := s.invoiceService.UpdateReceived(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleGetReceivedInvoice(w http.ResponseWriter, r *http.Request) {
	item, err := s.invoiceService.GetReceived(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteReceivedInvoice(w http.ResponseWriter, r *http.Request) {
	if err := s.invoiceService.DeleteReceived(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
