package service

import (
	"fmt"
	"math"
	"time"

	"github.com/ovaska/fishframe/internal/domain"
)

const (
	// Golden hour spans the 2 hours after sunrise and before sunset.
	goldenHourSpan = 2 * time.Hour

	// Pressure trend compares the current sample against the one exactly
	// this many hourly samples earlier, with a ±1 hPa deadband.
	pressureTrendLookback = 3
	pressureTrendDeadband = 1.0
)

// NextPeriod resolves the next relevant period in a chronologically ordered
// list: the first period containing now (ongoing), else the first period
// starting strictly after now (upcoming). Returns false when every period is
// already in the past.
func NextPeriod(periods []domain.Period, now time.Time) (domain.NextPeriod, bool) {
	for _, p := range periods {
		if p.Contains(now) {
			return domain.NextPeriod{Period: p, Status: domain.PeriodOngoing}, true
		}
		if p.Start.After(now) {
			return domain.NextPeriod{Period: p, Status: domain.PeriodUpcoming}, true
		}
	}
	return domain.NextPeriod{}, false
}

// MinutesUntilPeriod returns the whole-minute distance to the first period in
// the ordered list that is ongoing at now (distance 0) or still ahead of it.
// Periods entirely in the past are skipped; false means none remain.
func MinutesUntilPeriod(periods []domain.Period, now time.Time) (int, bool) {
	for _, p := range periods {
		if p.Contains(now) {
			return 0, true
		}
		if p.Start.After(now) {
			return int(p.Start.Sub(now) / time.Minute), true
		}
	}
	return 0, false
}

// FormatCountdown renders the time remaining until target as "in 5min",
// "in 2h" or "in 2h05". A target before now yields "past"; a target equal to
// now yields "in 0min".
func FormatCountdown(now, target time.Time) string {
	if target.Before(now) {
		return "past"
	}

	minutes := int(target.Sub(now) / time.Minute)
	hours := minutes / 60
	minutes %= 60

	switch {
	case hours == 0:
		return fmt.Sprintf("in %dmin", minutes)
	case minutes == 0:
		return fmt.Sprintf("in %dh", hours)
	default:
		return fmt.Sprintf("in %dh%02d", hours, minutes)
	}
}

type goldenHourKind int

const (
	goldenNone goldenHourKind = iota
	goldenMorning
	goldenEvening
)

// classifyGoldenHour reports which golden hour window contains now. The
// morning window [sunrise, sunrise+2h] is checked before the evening window
// [sunset-2h, sunset]; both ends are inclusive. Zero sun instants (polar
// latitudes) disable the corresponding window.
func classifyGoldenHour(sun domain.SunSnapshot, now time.Time) goldenHourKind {
	if !sun.Sunrise.IsZero() && !now.Before(sun.Sunrise) && !now.After(sun.Sunrise.Add(goldenHourSpan)) {
		return goldenMorning
	}
	if !sun.Sunset.IsZero() && !now.Before(sun.Sunset.Add(-goldenHourSpan)) && !now.After(sun.Sunset) {
		return goldenEvening
	}
	return goldenNone
}

// ClassifyPressureTrend classifies hourly pressure samples (chronological,
// last element = current) into rising/falling/stable. Fewer than four
// samples is insufficient history and defaults to stable.
func ClassifyPressureTrend(samples []float64) domain.PressureTrend {
	if len(samples) < pressureTrendLookback+1 {
		return domain.PressureStable
	}

	current := samples[len(samples)-1]
	previous := samples[len(samples)-1-pressureTrendLookback]

	switch diff := current - previous; {
	case diff > pressureTrendDeadband:
		return domain.PressureRising
	case diff < -pressureTrendDeadband:
		return domain.PressureFalling
	default:
		return domain.PressureStable
	}
}

var (
	compassLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	// Arrows point downwind: a north wind (blowing from N) renders "↓".
	compassArrows = [8]string{"↓", "↙", "←", "↖", "↑", "↗", "→", "↘"}
)

// WindDirectionLabel maps meteorological degrees to an 8-way compass label.
func WindDirectionLabel(deg float64) string {
	return compassLabels[compassIndex(deg)]
}

// WindDirectionArrow maps meteorological degrees to a downwind arrow rune.
func WindDirectionArrow(deg float64) string {
	return compassArrows[compassIndex(deg)]
}

func compassIndex(deg float64) int {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return int((d+22.5)/45) % 8
}

// PressureTrendArrow maps a pressure trend to its display arrow.
func PressureTrendArrow(trend domain.PressureTrend) string {
	switch trend {
	case domain.PressureRising:
		return "↗"
	case domain.PressureFalling:
		return "↘"
	default:
		return "→"
	}
}
