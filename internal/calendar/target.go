package calendar

// Target stepper bounds used by the interactive front ends. Any positive
// target is accepted elsewhere.
const (
	MinTarget     = 1200
	MaxTarget     = 3500
	TargetStep    = 100
	DefaultTarget = 2000
)

// ComfortableMargin is the remaining-calorie margin above which the day is
// shown as comfortable.
const ComfortableMargin = 300

// StepTarget moves target by steps increments of TargetStep and clamps the
// result to [MinTarget, MaxTarget].
func StepTarget(target, steps int) int {
	return ClampTarget(target + steps*TargetStep)
}

// ClampTarget limits target to the stepper range.
func ClampTarget(target int) int {
	if target < MinTarget {
		return MinTarget
	}
	if target > MaxTarget {
		return MaxTarget
	}
	return target
}

// Remaining returns target minus total, floored at zero.
func Remaining(total, target int) int {
	return max(target-total, 0)
}

// Level is the remaining-calories indicator.
type Level string

const (
	LevelComfortable Level = "comfortable"
	LevelLow         Level = "low"
)

// RemainingLevel classifies a remaining-calorie count.
func RemainingLevel(remaining int) Level {
	if remaining > ComfortableMargin {
		return LevelComfortable
	}
	return LevelLow
}
