// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/utils"
)

// withAPIKey rejects every request whose X-API-KEY header does not equal
// the configured secret byte for byte. Rejected requests get 403 with
// {"error": "invalid API key"} and never reach the wrapped handler.
//
// The header name is matched case-insensitively by [http.Header.Get]; the
// value is compared in constant time. An empty header never matches, and an
// empty configured secret is refused at startup by config validation.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	secret := []byte(h.apiKey)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get(utils.APIKeyHeader)

		if provided == "" || len(secret) == 0 || subtle.ConstantTimeCompare([]byte(provided), secret) != 1 {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.withAPIKey").
				Bool("header_present", provided != "").
				Msg(ErrInvalidAPIKey.Error())
			utils.WriteError(w, ErrInvalidAPIKey.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
