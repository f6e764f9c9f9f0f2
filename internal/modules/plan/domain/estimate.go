package domain

import (
	"math"
	"strings"
)

// Time estimates in minutes, keyed by a lowercase title fragment.
// The first matching fragment wins.
var baseEstimates = []struct {
	fragment string
	minutes  int
}{
	{"practice", 60},
	{"weekly review", 120},
	{"final assessment", 120},
	{"sync session", 90},
}

const (
	defaultEstimate = 45
	minEstimate     = 30

	// Scaled durations snap to 5-minute steps and never drop below 15.
	scaleStep   = 5
	scaledFloor = 15
)

// EstimateMinutes guesses how long an item takes from its title.
func EstimateMinutes(title string) int {
	lower := strings.ToLower(title)
	for _, e := range baseEstimates {
		if strings.Contains(lower, e.fragment) {
			return e.minutes
		}
	}
	return defaultEstimate
}

// ApplyEstimates fills in Minutes for every item that has none.
func ApplyEstimates(s *Syllabus) {
	for wi := range s.Weeks {
		for ci := range s.Weeks[wi].Chapters {
			items := s.Weeks[wi].Chapters[ci].Items
			for ii := range items {
				if items[ii].Minutes == 0 {
					items[ii].Minutes = EstimateMinutes(items[ii].Title)
				}
				if items[ii].Minutes < minEstimate {
					items[ii].Minutes = minEstimate
				}
			}
		}
	}
}

// ScaleWeekToTarget rescales every item in the week so the week's total
// lands near targetMinutes. Durations are rounded to 5-minute steps
// with a 15-minute floor, so the result can land slightly off target.
func ScaleWeekToTarget(week *Week, targetMinutes int) {
	current := week.Minutes()
	if current == 0 || targetMinutes <= 0 {
		return
	}
	factor := float64(targetMinutes) / float64(current)
	for ci := range week.Chapters {
		items := week.Chapters[ci].Items
		for ii := range items {
			scaled := float64(items[ii].Minutes) * factor
			snapped := int(math.Round(scaled/scaleStep)) * scaleStep
			if snapped < scaledFloor {
				snapped = scaledFloor
			}
			items[ii].Minutes = snapped
		}
	}
}
