// Package calendar turns stored day records into month views: per-day
// lookup, monthly statistics and a Monday-first grid layout.
package calendar

import (
	"dailyeat/internal/core"
)

// RecordFor returns the record stored for dateKey. When several records share
// the date the last one appended wins.
func RecordFor(records []core.LogRecord, dateKey string) (core.LogRecord, bool) {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Date == dateKey {
			return records[i], true
		}
	}
	return core.LogRecord{}, false
}

// RecordsInMonth keeps the records whose date parses and falls in m. Records
// with a malformed date are left out.
func RecordsInMonth(records []core.LogRecord, m core.Month) []core.LogRecord {
	var out []core.LogRecord
	for _, r := range records {
		t, err := core.ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		if m.Contains(t) {
			out = append(out, r)
		}
	}
	return out
}
