package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/registre/internal/common"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) homeHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, pageData{Records: s.registry.List(r.Context())})
}

// submitHandler handles the registration form. The "ai" action enriches the
// record; its failures are logged and the page is simply reloaded.
func (s *HTTPServer) submitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := requestLogger(r, s.logger)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	first := r.PostFormValue("firstName")
	last := r.PostFormValue("lastName")
	enrich := r.PostFormValue("action") == "ai"

	var err error
	if enrich {
		_, err = s.registry.RegisterWithProfile(ctx, first, last)
	} else {
		_, err = s.registry.Register(ctx, first, last)
	}

	switch {
	case err == nil:
	case errors.Is(err, common.ErrorValidation):
		s.renderPage(w, r, http.StatusBadRequest, pageData{
			Records:   s.registry.List(ctx),
			FirstName: first,
			LastName:  last,
			Error:     msgNamesMissing,
		})
		return
	case enrich:
		log.Error(ctx, "error registering with profile", "error", err)
	default:
		log.Error(ctx, "error registering", "error", err)
		s.renderPage(w, r, http.StatusInternalServerError, pageData{
			Records:   s.registry.List(ctx),
			FirstName: first,
			LastName:  last,
			Alert:     alertSaveFailed,
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *HTTPServer) deleteHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.registry.Delete(r.Context(), id); err != nil {
		requestLogger(r, s.logger).Error(r.Context(), "error deleting record", "id", id, "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *HTTPServer) clearHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.ClearAll(r.Context()); err != nil {
		requestLogger(r, s.logger).Error(r.Context(), "error clearing records", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type addRecordRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Enrich    bool   `json:"enrich"`
}

type profileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPServer) apiListHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List(r.Context()))
}

func (s *HTTPServer) apiAddHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	register := s.registry.Register
	if req.Enrich {
		register = s.registry.RegisterWithProfile
	}

	rec, err := register(ctx, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		requestLogger(r, s.logger).Error(ctx, "error registering", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: alertSaveFailed})
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (s *HTTPServer) apiDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.registry.Delete(r.Context(), id); err != nil {
		requestLogger(r, s.logger).Error(r.Context(), "error deleting record", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "delete failed"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) apiClearHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.ClearAll(r.Context()); err != nil {
		requestLogger(r, s.logger).Error(r.Context(), "error clearing records", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "clear failed"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) apiProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, s.registry.GenerateProfile(r.Context(), req.FirstName, req.LastName))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
