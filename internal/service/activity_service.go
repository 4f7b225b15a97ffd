package service

import (
	"time"

	"github.com/ovaska/fishframe/internal/domain"
)

const (
	// Scoring starts from a neutral base and is clamped to [minScore, maxScore].
	baseScore = 2
	minScore  = 0
	maxScore  = 5

	// Solunar proximity thresholds in whole minutes until the period.
	majorNearbyMinutes   = 30
	majorApproachMinutes = 120
	minorNearbyMinutes   = 30

	// Wind thresholds in km/h.
	favorableWindMin = 8.0
	favorableWindMax = 20.0
	strongWindLimit  = 30.0

	// Cloud cover percentage above which conditions count as overcast.
	overcastCloudCover = 70
)

// neutralFactor is reported when no scoring rule fired at all.
const neutralFactor = "Neutral conditions"

// scoreLevels maps a clamped score to its display label and color token.
var scoreLevels = [maxScore + 1]struct {
	Label string
	Color string
}{
	{"Poor", "#dc2626"},
	{"Low", "#ef4444"},
	{"Medium", "#f97316"},
	{"Good", "#fbbf24"},
	{"Very good", "#84cc16"},
	{"Excellent", "#22c55e"},
}

// scoreRule is one fired scoring rule: its score delta and the factor string
// reported when it is the first to fire.
type scoreRule struct {
	delta  int
	factor string
}

// ActivityService scores the pike activity index from weather and solunar
// inputs at an explicit instant.
type ActivityService interface {
	Score(weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, now time.Time) *domain.ActivityResult
}

type activityService struct{}

// NewActivityService creates an ActivityService.
func NewActivityService() ActivityService {
	return &activityService{}
}

// Score applies the scoring rules in fixed order, accumulating deltas on top
// of the neutral base. The reported main factor is the first rule that fired,
// not the largest contributor, so rule order is load-bearing.
func (s *activityService) Score(weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, now time.Time) *domain.ActivityResult {
	var fired []scoreRule

	// 1. Pressure trend: exactly one of the three fires for a known trend.
	switch weather.PressureTrend {
	case domain.PressureStable:
		fired = append(fired, scoreRule{+2, "Stable pressure"})
	case domain.PressureRising:
		fired = append(fired, scoreRule{+1, "Rising pressure"})
	case domain.PressureFalling:
		fired = append(fired, scoreRule{-1, "Falling pressure"})
	}

	// 2. Solunar proximity: major periods first; minor periods are only
	// consulted when no major rule matched.
	majorMinutes, majorFound := MinutesUntilPeriod(solunar.MajorPeriods, now)
	switch {
	case majorFound && majorMinutes <= majorNearbyMinutes:
		fired = append(fired, scoreRule{+2, "Major period"})
	case majorFound && majorMinutes <= majorApproachMinutes:
		fired = append(fired, scoreRule{+1, "Major period approaching"})
	default:
		if minorMinutes, ok := MinutesUntilPeriod(solunar.MinorPeriods, now); ok && minorMinutes <= minorNearbyMinutes {
			fired = append(fired, scoreRule{+1, "Minor period"})
		}
	}

	// 3. Golden hour: morning wins when both windows would match.
	golden := classifyGoldenHour(solunar.Sun, now)
	switch golden {
	case goldenMorning:
		fired = append(fired, scoreRule{+1, "Morning golden hour"})
	case goldenEvening:
		fired = append(fired, scoreRule{+1, "Evening golden hour"})
	}

	// 4. Wind speed: the two ranges are mutually exclusive.
	switch {
	case weather.WindSpeedKmh >= favorableWindMin && weather.WindSpeedKmh <= favorableWindMax:
		fired = append(fired, scoreRule{+1, "Favorable wind"})
	case weather.WindSpeedKmh > strongWindLimit:
		fired = append(fired, scoreRule{-1, "Wind too strong"})
	}

	// 5. Cloud cover.
	if weather.CloudCoverPct > overcastCloudCover {
		fired = append(fired, scoreRule{+1, "Overcast"})
	}

	score := baseScore
	mainFactor := neutralFactor
	for i, rule := range fired {
		score += rule.delta
		if i == 0 {
			mainFactor = rule.factor
		}
	}
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	level := scoreLevels[score]
	return &domain.ActivityResult{
		Score:        score,
		Label:        level.Label,
		Color:        level.Color,
		MainFactor:   mainFactor,
		InGoldenHour: golden != goldenNone,
	}
}
