package scoring

import (
	"math"
	"sort"

	"github.com/julianstephens/charlit/internal/models"
)

// signalSpec describes one input signal a theme scorer reads: where the value
// comes from, how to normalize it, and how much it counts.
type signalSpec struct {
	source string
	label  string
	weight float64
	// refMax is the reference maximum the raw value is normalized against.
	// Normalized values clamp at 1.0.
	refMax float64
	value  func(f ExtractedFeatures) float64
}

// themeConfig is the full signal table for one theme. Only the table differs
// between themes; the scoring mechanics are shared.
type themeConfig struct {
	theme   models.Theme
	signals []signalSpec
}

// calculate scores a single day's features against this theme's signal table.
func (c themeConfig) calculate(f ExtractedFeatures) models.ThemeScore {
	breakdown := make([]models.SignalContribution, 0, len(c.signals))

	var weightedSum, weightTotal float64
	for _, sig := range c.signals {
		raw := sig.value(f)
		normalized := 0.0
		if sig.refMax > 0 {
			normalized = math.Min(raw/sig.refMax, 1.0)
		}
		if normalized < 0 {
			normalized = 0
		}

		breakdown = append(breakdown, models.SignalContribution{
			Source:          sig.source,
			Label:           sig.label,
			Weight:          sig.weight,
			RawValue:        raw,
			NormalizedValue: normalized,
		})

		weightedSum += sig.weight * normalized
		weightTotal += sig.weight
	}

	score := 0.0
	if weightTotal > 0 {
		score = roundScore(weightedSum / weightTotal * 10)
	}

	confidence := 0.0
	if f.HasData {
		confidence = 1.0
	}

	return models.ThemeScore{
		Theme:           c.theme,
		Score:           score,
		Confidence:      confidence,
		Trend:           models.TrendStable,
		TopContributors: topContributors(breakdown),
		SignalBreakdown: breakdown,
	}
}

// topContributors returns the labels of the three strongest normalized
// signals, strongest first.
func topContributors(breakdown []models.SignalContribution) []string {
	ranked := make([]models.SignalContribution, len(breakdown))
	copy(ranked, breakdown)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NormalizedValue > ranked[j].NormalizedValue
	})

	labels := make([]string, 0, 3)
	for _, sig := range ranked {
		if len(labels) == 3 {
			break
		}
		labels = append(labels, sig.Label)
	}
	return labels
}

// roundScore rounds to one decimal place, the report display precision.
func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
