package astro

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"
)

// Day bundles the astronomical inputs for one calendar day at one location.
// Moonrise/Moonset are nil when the moon stays above or below the horizon
// for the whole day. Sunrise/Sunset are zero at polar latitudes where the
// sun does not rise or set; callers must treat that as missing data, not an
// error.
type Day struct {
	Sunrise time.Time
	Sunset  time.Time
	// Illuminated fraction of the moon disc in [0,1]
	MoonIlluminationFraction float64
	// Moon phase fraction in [0,1): 0 = new, 0.5 = full
	MoonPhaseFraction float64
	Moonrise          *time.Time
	Moonset           *time.Time
}

// Provider computes sun and moon data locally, without an upstream API.
// All methods are pure over their inputs.
type Provider interface {
	// Day returns the sun and moon events for the calendar day of date,
	// interpreted in date's time.Location.
	Day(lat, lon float64, date time.Time) Day
	// MoonAltitude returns the lunar altitude in degrees at an arbitrary
	// instant. Used as the sampler for the transit search.
	MoonAltitude(lat, lon float64, at time.Time) float64
}

type suncalcProvider struct{}

// NewProvider returns the default suncalc-backed provider.
func NewProvider() Provider {
	return suncalcProvider{}
}

func (suncalcProvider) Day(lat, lon float64, date time.Time) Day {
	y, m, d := date.Date()
	loc := date.Location()

	rise, set := sunrise.SunriseSunset(lat, lon, y, m, d)
	if !rise.IsZero() {
		rise = rise.In(loc)
	}
	if !set.IsZero() {
		set = set.In(loc)
	}

	// Sample illumination at local noon so the phase represents the middle
	// of the reference day rather than its first instant.
	noon := time.Date(y, m, d, 12, 0, 0, 0, loc)
	ill := suncalc.GetMoonIllumination(noon)

	day := Day{
		Sunrise:                  rise,
		Sunset:                   set,
		MoonIlluminationFraction: ill.Fraction,
		MoonPhaseFraction:        ill.Phase,
	}

	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
	times := suncalc.GetMoonTimes(midnight, lat, lon, false)
	if !times.AlwaysUp && !times.AlwaysDown {
		if !times.Rise.IsZero() {
			r := times.Rise.In(loc)
			day.Moonrise = &r
		}
		if !times.Set.IsZero() {
			s := times.Set.In(loc)
			day.Moonset = &s
		}
	}

	return day
}

func (suncalcProvider) MoonAltitude(lat, lon float64, at time.Time) float64 {
	pos := suncalc.GetMoonPosition(at, lat, lon)
	return pos.Altitude * 180 / math.Pi
}
