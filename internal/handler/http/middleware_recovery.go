package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-qa-board/internal/app"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/utils"
)

// withRecovery turns a panic in any downstream handler into a logged
// 500 with the generic error body.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecovery").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
