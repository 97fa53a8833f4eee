// Package dailylog persists one summary record per day inside a single
// delimiter-joined text blob.
package dailylog

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"dailyeat/internal/core"
)

const (
	// Delimiter separates encoded records in the blob.
	Delimiter = "|"
	// StorageKey is the backend key holding the blob.
	StorageKey = "dailyLogs"
)

// escapedDelimiter is the JSON escape for "|". Decoding turns it back into the
// raw character, so names containing the delimiter survive a round trip.
const escapedDelimiter = `\u007c`

// wireRecord mirrors core.LogRecord with pointer fields so that missing keys
// can be told apart from zero values.
type wireRecord struct {
	ID            *string   `json:"id"`
	Date          *string   `json:"date"`
	Foods         *[]string `json:"foods"`
	TotalCalories *int      `json:"totalCalories"`
}

// Encode returns the JSON form of r with every "|" escaped.
func Encode(r core.LogRecord) (string, error) {
	if r.Foods == nil {
		r.Foods = []string{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(b), Delimiter, escapedDelimiter), nil
}

// DecodeSegment decodes a single segment. ok is false when the segment is not
// a complete record.
func DecodeSegment(segment string) (core.LogRecord, bool) {
	var w wireRecord
	if err := json.Unmarshal([]byte(segment), &w); err != nil {
		return core.LogRecord{}, false
	}
	if w.ID == nil || w.Date == nil || w.Foods == nil || *w.Foods == nil || w.TotalCalories == nil {
		return core.LogRecord{}, false
	}
	if *w.TotalCalories < 0 {
		return core.LogRecord{}, false
	}
	id, err := uuid.Parse(*w.ID)
	if err != nil {
		return core.LogRecord{}, false
	}
	return core.LogRecord{
		ID:            id,
		Date:          *w.Date,
		Foods:         *w.Foods,
		TotalCalories: *w.TotalCalories,
	}, true
}

// Decode splits blob on the delimiter and decodes every non-empty segment in
// order. Segments that do not decode are skipped and counted in dropped.
// Records sharing a date are all returned.
func Decode(blob string) (records []core.LogRecord, dropped int) {
	for _, seg := range segments(blob) {
		rec, ok := DecodeSegment(seg)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	return records, dropped
}

// LoadAll is Decode without the drop count.
func LoadAll(blob string) []core.LogRecord {
	records, _ := Decode(blob)
	return records
}

// Save returns a new blob holding every decodable segment of blob whose date
// differs from r.Date, in their original order and text, followed by r.
// Undecodable segments are discarded.
func Save(blob string, r core.LogRecord) (string, error) {
	out, _, err := save(blob, r)
	return out, err
}

// save also reports how many stored records r replaced.
func save(blob string, r core.LogRecord) (string, int, error) {
	encoded, err := Encode(r)
	if err != nil {
		return "", 0, err
	}

	kept := make([]string, 0, strings.Count(blob, Delimiter)+2)
	replaced := 0
	for _, seg := range segments(blob) {
		rec, ok := DecodeSegment(seg)
		if !ok {
			continue
		}
		if rec.Date == r.Date {
			replaced++
			continue
		}
		kept = append(kept, seg)
	}
	kept = append(kept, encoded)
	return strings.Join(kept, Delimiter), replaced, nil
}

func segments(blob string) []string {
	parts := strings.Split(blob, Delimiter)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
