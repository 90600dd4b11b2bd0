package models

// ErrorResponse is the body written for authorization, not-found and
// internal failures: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrors is the body written for validation failures. Keys are
// JSON field names, values are human-readable messages for that field,
// e.g. {"text": ["This field is required."]}.
type ValidationErrors map[string][]string

// AppInfo is returned by GET /version.
type AppInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
