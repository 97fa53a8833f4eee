package calendar

import "dailyeat/internal/core"

// Average is the truncated mean of the records' calories, or 0 for none.
func Average(records []core.LogRecord) int {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.TotalCalories
	}
	return sum / len(records)
}

// SuccessDays counts the records at or above target.
func SuccessDays(records []core.LogRecord, target int) int {
	n := 0
	for _, r := range records {
		if r.HitTarget(target) {
			n++
		}
	}
	return n
}

// SuccessRate is the floored percentage of days in the month that met the
// target. Days without a record count as misses.
func SuccessRate(successDays, daysInMonth int) int {
	if daysInMonth <= 0 {
		return 0
	}
	return successDays * 100 / daysInMonth
}

// Summarize computes the statistics block for m. records may span several
// months; only those in m are counted.
func Summarize(records []core.LogRecord, m core.Month, target int) core.MonthSummary {
	inMonth := RecordsInMonth(records, m)
	days := DaysInMonth(m.Year, m.Month)
	success := SuccessDays(inMonth, target)
	return core.MonthSummary{
		Month:       m,
		Target:      target,
		DaysInMonth: days,
		LoggedDays:  len(inMonth),
		Average:     Average(inMonth),
		SuccessDays: success,
		SuccessRate: SuccessRate(success, days),
	}
}
