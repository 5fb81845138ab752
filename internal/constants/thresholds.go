package constants

const (
	// Feature extraction thresholds:
	// - LowActivitySteps marks a day as low-activity when steps fall below it.
	// - HighScreenTimeMinutes marks a day as high-screen-time when the category
	//   total exceeds it (4 hours).
	// - LateWakeHour marks a late wake when the wake hour is at or past it.
	// - HighLateNightMinutes marks heavy late-night usage when minutes after
	//   11pm exceed it.
	LowActivitySteps      = 3000
	HighScreenTimeMinutes = 240
	LateWakeHour          = 9
	HighLateNightMinutes  = 60

	// TrendDelta is the minimum week-over-week score change that registers as
	// an up/down trend.
	TrendDelta = 1.0

	// TrendMinConfidence gates trend computation: the comparison week must
	// exceed this confidence or the trend is forced to stable.
	TrendMinConfidence = 0.3

	// MaxHighlights and MaxPrompts cap weekly report narrative output.
	MaxHighlights = 3
	MaxPrompts    = 3

	// DaysPerWeek is the reporting window length (Monday through Sunday).
	DaysPerWeek = 7
)
