package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timestamp scans a created_at column into a time.Time. PostgreSQL hands
// back time.Time values, while SQLite may return the stored text when the
// column type is unknown (RETURNING clauses, expressions).
type timestamp struct {
	t *time.Time
}

func scanTime(t *time.Time) *timestamp {
	return &timestamp{t: t}
}

// Scan implements sql.Scanner.
func (ts *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts *timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as timestamp", s)
}
