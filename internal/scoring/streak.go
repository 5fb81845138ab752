package scoring

import (
	"sort"
	"time"

	"github.com/julianstephens/charlit/internal/models"
)

// ComputeStreak walks the check-in dates most-recent-first counting runs of
// exactly adjacent days. The current streak only counts when the most recent
// check-in is today or yesterday relative to now; an older run still feeds
// the longest streak but the current streak is 0.
func ComputeStreak(checkInDates []string, now time.Time) models.CheckInStreak {
	if len(checkInDates) == 0 {
		return models.CheckInStreak{}
	}

	dates := make([]string, len(checkInDates))
	copy(dates, checkInDates)
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	// firstRun is the adjacency run anchored at the most recent check-in.
	firstRun := 0
	currentAnchored := dates[0] == today || dates[0] == yesterday

	longest := 0
	run := 0
	var prev time.Time

	for i, date := range dates {
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}

		if i == 0 || !prev.AddDate(0, 0, -1).Equal(d) {
			run = 1
		} else {
			run++
		}
		prev = d

		if run > longest {
			longest = run
		}
		// The run containing index 0 is still unbroken as long as run has
		// grown with every element so far.
		if run == i+1 {
			firstRun = run
		}
	}

	current := 0
	if currentAnchored {
		current = firstRun
	}

	return models.CheckInStreak{
		CurrentStreak:   current,
		LongestStreak:   longest,
		LastCheckInDate: dates[0],
	}
}
