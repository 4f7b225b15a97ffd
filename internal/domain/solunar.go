package domain

import "time"

// MoonPhase is one of the eight named lunar phase categories.
// @Description Moon phase classification derived from the phase fraction.
type MoonPhase string

const (
	MoonPhaseNew            MoonPhase = "new"
	MoonPhaseWaxingCrescent MoonPhase = "waxing_crescent"
	MoonPhaseFirstQuarter   MoonPhase = "first_quarter"
	MoonPhaseWaxingGibbous  MoonPhase = "waxing_gibbous"
	MoonPhaseFull           MoonPhase = "full"
	MoonPhaseWaningGibbous  MoonPhase = "waning_gibbous"
	MoonPhaseLastQuarter    MoonPhase = "last_quarter"
	MoonPhaseWaningCrescent MoonPhase = "waning_crescent"
)

// Label returns the display text used on the wallpaper.
func (p MoonPhase) Label() string {
	switch p {
	case MoonPhaseNew:
		return "New"
	case MoonPhaseWaxingCrescent:
		return "Waxing Crescent"
	case MoonPhaseFirstQuarter:
		return "First Quarter"
	case MoonPhaseWaxingGibbous:
		return "Waxing Gibbous"
	case MoonPhaseFull:
		return "Full"
	case MoonPhaseWaningGibbous:
		return "Waning Gibbous"
	case MoonPhaseLastQuarter:
		return "Last Quarter"
	case MoonPhaseWaningCrescent:
		return "Waning Crescent"
	}
	return string(p)
}

// PeriodKind identifies the lunar event a solunar period is centered on.
// @Description Solunar period kind: transit/nadir are major, moonrise/moonset are minor.
type PeriodKind string

const (
	PeriodTransit  PeriodKind = "transit"
	PeriodNadir    PeriodKind = "nadir"
	PeriodMoonrise PeriodKind = "moonrise"
	PeriodMoonset  PeriodKind = "moonset"
)

// IsMajor reports whether the kind belongs to a major solunar period.
func (k PeriodKind) IsMajor() bool {
	return k == PeriodTransit || k == PeriodNadir
}

// Period is a closed time interval centered on a lunar event.
// Invariant: Start <= End.
// @Description A solunar activity period [start, end].
type Period struct {
	// Period kind (transit, nadir, moonrise, moonset)
	Kind PeriodKind `json:"kind" example:"transit"`
	// Period start
	Start time.Time `json:"start" example:"2024-06-01T11:20:00Z"`
	// Period end
	End time.Time `json:"end" example:"2024-06-01T13:20:00Z"`
}

// Contains reports whether t falls within the closed interval [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// MoonSnapshot describes the moon for a reference day.
// Moonrise/Moonset are nil when the moon is circumpolar for the day.
// @Description Moon state for the reference day.
type MoonSnapshot struct {
	// Phase fraction in [0,1): 0 = new moon, 0.5 = full moon
	PhaseFraction float64 `json:"phase_fraction" example:"0.48"`
	// Illuminated fraction of the disc, rounded percentage 0-100
	Illumination int `json:"illumination" example:"96"`
	// Classified phase name
	Phase MoonPhase `json:"phase" example:"full"`
	// Moonrise instant, absent when circumpolar
	Moonrise *time.Time `json:"moonrise,omitempty"`
	// Moonset instant, absent when circumpolar
	Moonset *time.Time `json:"moonset,omitempty"`
}

// SunSnapshot holds the sun events for a reference day. Both instants are
// zero only at polar latitudes where the sun does not rise or set.
// @Description Sunrise and sunset for the reference day.
type SunSnapshot struct {
	Sunrise time.Time `json:"sunrise" example:"2024-06-01T03:58:00Z"`
	Sunset  time.Time `json:"sunset" example:"2024-06-01T20:12:00Z"`
}

// SolunarSnapshot aggregates the astronomical state and derived activity
// periods for one reference day at one location. Period slices are ordered
// chronologically by start time; consumers rely on early-exit scans.
// @Description Complete solunar picture for a location and reference day.
type SolunarSnapshot struct {
	Moon MoonSnapshot `json:"moon"`
	Sun  SunSnapshot  `json:"sun"`
	// Major periods (transit, nadir), at most 2, chronological
	MajorPeriods []Period `json:"major_periods"`
	// Minor periods (moonrise, moonset), at most 2, chronological
	MinorPeriods []Period `json:"minor_periods"`
}

// PeriodStatus classifies a period relative to a point in time.
// @Description Whether the resolved period is ongoing or upcoming.
type PeriodStatus string

const (
	PeriodOngoing  PeriodStatus = "ongoing"
	PeriodUpcoming PeriodStatus = "upcoming"
)

// NextPeriod is the result of resolving the next relevant period in a list.
// @Description The next ongoing or upcoming solunar period.
type NextPeriod struct {
	Period Period       `json:"period"`
	Status PeriodStatus `json:"status" example:"upcoming"`
}
