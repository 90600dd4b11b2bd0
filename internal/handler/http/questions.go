package http

import (
	"net/http"

	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/internal/utils"
	"github.com/MKhiriev/go-qa-board/models"
)

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.services.QuestionService.ListQuestions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	question, err := h.services.QuestionService.CreateQuestion(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusCreated)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, store.ErrQuestionNotFound)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	details, err := h.services.QuestionService.GetQuestion(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, store.ErrQuestionNotFound)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.QuestionService.DeleteQuestion(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
