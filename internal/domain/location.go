package domain

// Location is a geocoded place returned by the location search.
// @Description A geocoding match for the location picker.
type Location struct {
	// Place name
	Name string `json:"name" example:"Tampere"`
	// Country name
	Country string `json:"country" example:"Finland"`
	// First-level administrative area, may be empty
	Admin1 string `json:"admin1,omitempty" example:"Pirkanmaa"`
	// Latitude in decimal degrees
	Latitude float64 `json:"latitude" example:"61.4981"`
	// Longitude in decimal degrees
	Longitude float64 `json:"longitude" example:"23.761"`
	// IANA timezone of the place
	Timezone string `json:"timezone" example:"Europe/Helsinki"`
}

// LocationMatch pairs a geocoding result with a ready-to-use wallpaper URL.
// @Description Location search result with wallpaper URL.
type LocationMatch struct {
	Location
	// URL that renders the wallpaper for this place
	WallpaperURL string `json:"wallpaper_url" example:"http://localhost:8080/v1/wallpaper?lat=61.4981&lon=23.7610&tz=Europe%2FHelsinki&place=Tampere"`
}
