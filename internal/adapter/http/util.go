package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nutrilog/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func localDayString(t time.Time) string {
	return t.In(time.Local).Format(domain.DayFormat)
}

// dayOrToday validates an explicit day or falls back to the local date.
func dayOrToday(day string) (string, error) {
	if day == "" {
		return localDayString(time.Now()), nil
	}
	if _, err := time.Parse(domain.DayFormat, day); err != nil {
		return "", fmt.Errorf("invalid day %q, want YYYY-MM-DD", day)
	}
	return day, nil
}
