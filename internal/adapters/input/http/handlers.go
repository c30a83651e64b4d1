package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/domain/service"
)

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.Nodes(r.Context()))
}

// handleInput runs one message through the node. A body that is not a JSON
// message is rejected on the node, which reports it like any other failure.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	node := chi.URLParam(r, "name")

	var msg model.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		if rejErr := s.manager.Reject(r.Context(), node, err); rejErr != nil {
			s.writeServiceError(w, rejErr)
			return
		}
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid message: "+err.Error())
		return
	}

	res, err := s.manager.Process(r.Context(), node, &msg)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if res.Failed() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.manager.Status(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleGetPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.manager.GetPresets(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handlePutPresets(w http.ResponseWriter, r *http.Request) {
	var presets model.Presets
	if err := json.NewDecoder(r.Body).Decode(&presets); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if err := s.manager.UpdatePresets(r.Context(), &presets); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &presets)
}

func (s *Server) handleHAEntities(w http.ResponseWriter, r *http.Request) {
	if s.entities == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "Home Assistant is not configured")
		return
	}
	entities, err := s.entities.GetAllEntities(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, ErrCodeUpstreamFail, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entities)
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNodeNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidPresets):
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
