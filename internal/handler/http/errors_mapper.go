package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qa-board/internal/app"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/internal/utils"
	"github.com/MKhiriev/go-qa-board/internal/validators"
)

var errorStatusMap = map[error]int{
	store.ErrQuestionNotFound: http.StatusNotFound,
	store.ErrAnswerNotFound:   http.StatusNotFound,
	ErrInvalidID:              http.StatusNotFound,

	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidJSON:           http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts err into the response body matching its status.
// Not-found messages name the {id} path parameter as the client sent it.
// Unknown errors are logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, validationErr.Fields, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	switch status {
	case http.StatusNotFound:
		utils.WriteError(w, notFoundMessage(err, chi.URLParam(r, "id")), status)
	case http.StatusInternalServerError:
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeError").Msg("unexpected error")
		utils.WriteError(w, app.MsgInternalServerError, status)
	default:
		utils.WriteError(w, err.Error(), status)
	}
}

func notFoundMessage(err error, id string) string {
	switch {
	case errors.Is(err, store.ErrQuestionNotFound):
		return fmt.Sprintf(app.MsgQuestionNotFound, id)
	case errors.Is(err, store.ErrAnswerNotFound):
		return fmt.Sprintf(app.MsgAnswerNotFound, id)
	default:
		return app.MsgNotFound
	}
}
