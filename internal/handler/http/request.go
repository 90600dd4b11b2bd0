package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qa-board/internal/validators"
)

// maxBodyBytes caps request bodies; question and answer texts are small.
const maxBodyBytes = 1 << 20

// pathID parses the {id} route parameter. The route pattern already
// guarantees digits, so the only failure left is int64 overflow, which is
// reported as notFound since no row can carry such an id.
func pathID(r *http.Request, notFound error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", notFound, ErrInvalidID)
	}
	return id, nil
}

// decodeJSON reads the request body into dst. An empty body decodes as an
// empty object so that validation reports the missing fields. A value of
// the wrong JSON type for a field becomes a field-level validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	err := json.NewDecoder(body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validators.NewFieldError(typeErr.Field, validators.MsgNotString)
	}

	return ErrInvalidJSON
}
