package http

import (
	"net/http"

	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/internal/utils"
	"github.com/MKhiriev/go-qa-board/models"
)

// createAnswer handles POST /questions/{id}/answers. A missing question
// yields 404 even when the body is unusable, so a body that fails to decode
// is only reported after the question is known to exist.
func (h *Handler) createAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathID(r, store.ErrQuestionNotFound)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.AnswerRequest
	if err = decodeJSON(w, r, &req); err != nil {
		if _, lookupErr := h.services.QuestionService.GetQuestion(r.Context(), questionID); lookupErr != nil {
			err = lookupErr
		}
		h.writeError(w, r, err)
		return
	}

	answer, err := h.services.AnswerService.CreateAnswer(r.Context(), questionID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, answer, http.StatusCreated)
}

func (h *Handler) getAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, store.ErrAnswerNotFound)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	answer, err := h.services.AnswerService.GetAnswer(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, answer, http.StatusOK)
}

func (h *Handler) deleteAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, store.ErrAnswerNotFound)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.AnswerService.DeleteAnswer(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
