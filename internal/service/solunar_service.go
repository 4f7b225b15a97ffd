package service

import (
	"math"
	"sort"
	"time"

	"github.com/ovaska/fishframe/internal/astro"
	"github.com/ovaska/fishframe/internal/domain"
)

const (
	// Major periods are 120 minutes centered on transit/nadir.
	majorPeriodHalf = 60 * time.Minute
	// Minor periods are 60 minutes centered on moonrise/moonset.
	minorPeriodHalf = 30 * time.Minute
	// Nadir approximation: antipodal culmination taken as transit + 12h.
	nadirOffset = 12 * time.Hour

	coarseScanStep   = 10 * time.Minute
	refineScanStep   = time.Minute
	refineScanWindow = 10 * time.Minute
)

// moonPhaseBoundaries are the upper limits of the eight phase categories:
// multiples of 1/16 offset by 1/32. A wrapped fraction at or above the last
// boundary folds back to New.
var moonPhaseBoundaries = []struct {
	limit float64
	phase domain.MoonPhase
}{
	{0.0625, domain.MoonPhaseNew},
	{0.1875, domain.MoonPhaseWaxingCrescent},
	{0.3125, domain.MoonPhaseFirstQuarter},
	{0.4375, domain.MoonPhaseWaxingGibbous},
	{0.5625, domain.MoonPhaseFull},
	{0.6875, domain.MoonPhaseWaningGibbous},
	{0.8125, domain.MoonPhaseLastQuarter},
	{0.9375, domain.MoonPhaseWaningCrescent},
}

// SolunarService derives the solunar picture for a location and day.
type SolunarService interface {
	// Compute builds the SolunarSnapshot for the calendar day of date,
	// interpreted in date's time.Location.
	Compute(lat, lon float64, date time.Time) *domain.SolunarSnapshot
}

type solunarService struct {
	astro astro.Provider
}

// NewSolunarService creates a SolunarService backed by the given provider.
func NewSolunarService(provider astro.Provider) SolunarService {
	return &solunarService{astro: provider}
}

func (s *solunarService) Compute(lat, lon float64, date time.Time) *domain.SolunarSnapshot {
	day := s.astro.Day(lat, lon, date)

	moon := domain.MoonSnapshot{
		PhaseFraction: wrapPhaseFraction(day.MoonPhaseFraction),
		Illumination:  int(math.Round(day.MoonIlluminationFraction * 100)),
		Phase:         ClassifyMoonPhase(day.MoonPhaseFraction),
		Moonrise:      day.Moonrise,
		Moonset:       day.Moonset,
	}

	sampler := func(at time.Time) float64 {
		return s.astro.MoonAltitude(lat, lon, at)
	}

	var majors []domain.Period
	if transit, ok := FindLunarTransit(date, sampler); ok {
		majors = buildMajorPeriods(transit)
	}

	return &domain.SolunarSnapshot{
		Moon:         moon,
		Sun:          domain.SunSnapshot{Sunrise: day.Sunrise, Sunset: day.Sunset},
		MajorPeriods: majors,
		MinorPeriods: buildMinorPeriods(day.Moonrise, day.Moonset),
	}
}

// ClassifyMoonPhase maps a phase fraction to one of the eight categories,
// wrapping the fraction into [0,1) first. Boundaries are exclusive, so a
// fraction of exactly 0.9375 wraps back to New.
func ClassifyMoonPhase(fraction float64) domain.MoonPhase {
	f := wrapPhaseFraction(fraction)
	for _, b := range moonPhaseBoundaries {
		if f < b.limit {
			return b.phase
		}
	}
	return domain.MoonPhaseNew
}

func wrapPhaseFraction(f float64) float64 {
	f = math.Mod(f, 1)
	if f < 0 {
		f++
	}
	return f
}

// FindLunarTransit locates the instant of maximum lunar altitude within the
// calendar day of date: a coarse 10-minute scan over the day followed by a
// 1-minute refinement around the coarse peak. Ties resolve to the first
// sample reaching the maximum. Returns false when no usable altitude sample
// exists (nil sampler or all samples NaN); callers then skip major periods.
func FindLunarTransit(date time.Time, altitude func(time.Time) float64) (time.Time, bool) {
	if altitude == nil {
		return time.Time{}, false
	}

	y, m, d := date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - coarseScanStep)

	coarse, ok := peakInstant(dayStart, dayEnd, coarseScanStep, altitude)
	if !ok {
		return time.Time{}, false
	}
	return peakInstant(coarse.Add(-refineScanWindow), coarse.Add(refineScanWindow), refineScanStep, altitude)
}

// peakInstant scans [from, to] inclusive at the given step and returns the
// first instant achieving the maximum sampled value. NaN samples are skipped.
func peakInstant(from, to time.Time, step time.Duration, altitude func(time.Time) float64) (time.Time, bool) {
	best := math.Inf(-1)
	var bestAt time.Time
	found := false

	for at := from; !at.After(to); at = at.Add(step) {
		alt := altitude(at)
		if math.IsNaN(alt) {
			continue
		}
		if alt > best {
			best = alt
			bestAt = at
			found = true
		}
	}
	return bestAt, found
}

func buildMajorPeriods(transit time.Time) []domain.Period {
	nadir := transit.Add(nadirOffset)
	return sortPeriods([]domain.Period{
		{Kind: domain.PeriodTransit, Start: transit.Add(-majorPeriodHalf), End: transit.Add(majorPeriodHalf)},
		{Kind: domain.PeriodNadir, Start: nadir.Add(-majorPeriodHalf), End: nadir.Add(majorPeriodHalf)},
	})
}

func buildMinorPeriods(moonrise, moonset *time.Time) []domain.Period {
	var periods []domain.Period
	if moonrise != nil {
		periods = append(periods, domain.Period{
			Kind:  domain.PeriodMoonrise,
			Start: moonrise.Add(-minorPeriodHalf),
			End:   moonrise.Add(minorPeriodHalf),
		})
	}
	if moonset != nil {
		periods = append(periods, domain.Period{
			Kind:  domain.PeriodMoonset,
			Start: moonset.Add(-minorPeriodHalf),
			End:   moonset.Add(minorPeriodHalf),
		})
	}
	return sortPeriods(periods)
}

// sortPeriods enforces chronological order by start time. The construction
// order already favors it, but downstream early-exit scans depend on it.
func sortPeriods(periods []domain.Period) []domain.Period {
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})
	return periods
}
