package domain

import "time"

// ActivityResult is the scored pike activity index for one instant.
// @Description Pike activity score with label, color and main factor.
type ActivityResult struct {
	// Score clamped to [0,5]
	Score int `json:"score" example:"4"`
	// Display label for the score (Poor ... Excellent)
	Label string `json:"label" example:"Very good"`
	// Color token for the score
	Color string `json:"color" example:"#84cc16"`
	// First contributing factor that fired (not the largest)
	MainFactor string `json:"main_factor" example:"Stable pressure"`
	// Whether now falls inside a golden hour window
	InGoldenHour bool `json:"in_golden_hour" example:"false"`
}

// ActivityResponse is the JSON surface of the activity endpoint: current
// weather, the computed score, and the next major period with a countdown.
// @Description Activity endpoint response.
type ActivityResponse struct {
	Weather  *WeatherSnapshot `json:"weather"`
	Activity *ActivityResult  `json:"activity"`
	// Next ongoing or upcoming major period, absent when all are past
	NextMajor *NextPeriod `json:"next_major,omitempty"`
	// Countdown to the next major period start, e.g. "in 1h05"
	NextMajorCountdown string `json:"next_major_countdown,omitempty" example:"in 1h05"`
}

// WallpaperData is everything the wallpaper composition needs. Outlook may
// be nil; the layout simply omits that block.
type WallpaperData struct {
	Place    string
	Now      time.Time
	Weather  *WeatherSnapshot
	Solunar  *SolunarSnapshot
	Activity *ActivityResult
	Outlook  *OutlookText
	Width    int
	Height   int
}

// OutlookText is a short LLM-generated fishing outlook for the wallpaper.
// @Description LLM-generated fishing outlook.
type OutlookText struct {
	// One-line headline (max ~60 chars)
	Headline string `json:"headline" example:"Solid evening ahead"`
	// One concrete tip tied to the conditions
	Tip string `json:"tip" example:"Fish the west shore drop-off during the moonset window."`
}

// OutlookContext is the context object sent to the LLM.
// @Description Context data for outlook generation.
type OutlookContext struct {
	Place    string           `json:"place"`
	Weather  *WeatherSnapshot `json:"weather"`
	Solunar  *SolunarSnapshot `json:"solunar"`
	Activity *ActivityResult  `json:"activity"`
}
