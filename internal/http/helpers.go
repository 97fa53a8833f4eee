package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dailyeat/internal/core"
	"dailyeat/internal/log"
	"dailyeat/internal/tracker"
)

const maxBodyBytes = 1 << 16

var errBadRequest = errors.New("bad request")

// parseYearMonth extracts year and month from query parameters, defaulting to
// the month of now. Values that are not numbers are rejected.
func parseYearMonth(r *http.Request, now time.Time) (core.Month, error) {
	m := core.MonthOf(now)
	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return core.Month{}, fmt.Errorf("%w: year %q", core.ErrInvalidMonth, v)
		}
		m.Year = y
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		mo, err := strconv.Atoi(v)
		if err != nil {
			return core.Month{}, fmt.Errorf("%w: month %q", core.ErrInvalidMonth, v)
		}
		m.Month = mo
	}
	return m, m.Validate()
}

// parseTarget reads an optional target query parameter, falling back to def.
func parseTarget(r *http.Request, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("target"))
	if v == "" {
		return def, nil
	}
	t, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidTarget, v)
	}
	return t, core.ValidateTarget(t)
}

// decodeJSON reads a single JSON object from the body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// respondError maps err to a status code and writes it as {"error": "..."}.
// Server errors are logged; their message is not sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code >= 500 {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed", log.FieldError, err)
		msg = http.StatusText(code)
	}
	respondJSON(w, code, map[string]string{"error": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, core.ErrInvalidSlot),
		errors.Is(err, core.ErrInvalidFoodType),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrInvalidMonth),
		errors.Is(err, core.ErrInvalidTarget),
		errors.Is(err, core.ErrNegativeCalories),
		errors.Is(err, core.ErrInvalidUTF8):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrUnknownFood), errors.Is(err, tracker.ErrNoSuggestion):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
