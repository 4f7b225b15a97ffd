package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/internal/service"
)

const (
	// DefaultWidth and DefaultHeight match a modern phone lock screen.
	DefaultWidth  = 1170
	DefaultHeight = 2532
)

// PNG satisfies service.Renderer with the gg-based composition.
type PNG struct{}

func (PNG) Render(data *domain.WallpaperData) ([]byte, error) {
	return Wallpaper(data)
}

// Wallpaper composes the lock-screen PNG and returns the encoded bytes.
func Wallpaper(in *domain.WallpaperData) ([]byte, error) {
	width := in.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := in.Height
	if height <= 0 {
		height = DefaultHeight
	}

	faces, err := loadFaces(float64(width))
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	dc := gg.NewContext(width, height)
	drawBackground(dc, width, height)

	w := float64(width)
	cx := w / 2
	// The lock-screen clock occupies the upper third; content starts below.
	y := float64(height) * 0.36

	// Place and date.
	dc.SetColor(color.White)
	dc.SetFontFace(faces.title)
	dc.DrawStringAnchored(in.Place, cx, y, 0.5, 0.5)
	y += w * 0.055

	dc.SetFontFace(faces.small)
	dc.SetRGBA(1, 1, 1, 0.7)
	dc.DrawStringAnchored(in.Now.Format("Mon, Jan 2"), cx, y, 0.5, 0.5)
	y += w * 0.1

	// Activity badge.
	badgeR := w * 0.085
	dc.SetHexColor(in.Activity.Color)
	dc.DrawCircle(cx, y, badgeR)
	dc.Fill()
	dc.SetColor(color.White)
	dc.SetFontFace(faces.score)
	dc.DrawStringAnchored(fmt.Sprintf("%d", in.Activity.Score), cx, y, 0.5, 0.5)
	y += badgeR + w*0.05

	dc.SetFontFace(faces.heading)
	dc.DrawStringAnchored(in.Activity.Label, cx, y, 0.5, 0.5)
	y += w * 0.045

	dc.SetFontFace(faces.small)
	dc.SetRGBA(1, 1, 1, 0.7)
	dc.DrawStringAnchored(in.Activity.MainFactor, cx, y, 0.5, 0.5)
	y += w * 0.08

	// Moon line.
	dc.SetColor(color.White)
	dc.SetFontFace(faces.body)
	moon := fmt.Sprintf("%s moon · %d%%", in.Solunar.Moon.Phase.Label(), in.Solunar.Moon.Illumination)
	dc.DrawStringAnchored(moon, cx, y, 0.5, 0.5)
	y += w * 0.07

	// Solunar periods with countdowns.
	y = drawPeriods(dc, faces, in, "Major", in.Solunar.MajorPeriods, cx, y)
	y = drawPeriods(dc, faces, in, "Minor", in.Solunar.MinorPeriods, cx, y)

	// Sun row.
	sun := in.Solunar.Sun
	if !sun.Sunrise.IsZero() && !sun.Sunset.IsZero() {
		dc.SetFontFace(faces.body)
		dc.SetRGBA(1, 1, 1, 0.85)
		row := fmt.Sprintf("☀ %s — %s", clock(sun.Sunrise, in.Now.Location()), clock(sun.Sunset, in.Now.Location()))
		if in.Activity.InGoldenHour {
			row += " · golden hour"
		}
		dc.DrawStringAnchored(row, cx, y, 0.5, 0.5)
		y += w * 0.07
	}

	// Weather row.
	wx := in.Weather
	dc.SetColor(color.White)
	dc.SetFontFace(faces.body)
	weatherRow := fmt.Sprintf("%.0f°C · %s %.0f km/h %s · %.0f hPa %s · %d%% cloud",
		wx.TemperatureC,
		service.WindDirectionArrow(wx.WindDirectionDeg),
		wx.WindSpeedKmh,
		service.WindDirectionLabel(wx.WindDirectionDeg),
		wx.PressureHpa,
		service.PressureTrendArrow(wx.PressureTrend),
		wx.CloudCoverPct,
	)
	dc.DrawStringAnchored(weatherRow, cx, y, 0.5, 0.5)
	y += w * 0.09

	// Optional outlook block.
	if in.Outlook != nil {
		dc.SetFontFace(faces.heading)
		dc.DrawStringAnchored(in.Outlook.Headline, cx, y, 0.5, 0.5)
		y += w * 0.05
		dc.SetFontFace(faces.small)
		dc.SetRGBA(1, 1, 1, 0.7)
		dc.DrawStringWrapped(in.Outlook.Tip, cx, y, 0.5, 0, w*0.8, 1.3, gg.AlignCenter)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPeriods(dc *gg.Context, faces faceSet, in *domain.WallpaperData, label string, periods []domain.Period, cx, y float64) float64 {
	if len(periods) == 0 {
		return y
	}
	w := float64(dc.Width())
	loc := in.Now.Location()

	dc.SetFontFace(faces.small)
	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawStringAnchored(label+" periods", cx, y, 0.5, 0.5)
	y += w * 0.045

	dc.SetFontFace(faces.body)
	for _, p := range periods {
		status := service.FormatCountdown(in.Now, p.Start)
		if p.Contains(in.Now) {
			status = "now"
		}
		dc.SetColor(color.White)
		row := fmt.Sprintf("%s  %s–%s  ·  %s", periodGlyph(p.Kind), clock(p.Start, loc), clock(p.End, loc), status)
		dc.DrawStringAnchored(row, cx, y, 0.5, 0.5)
		y += w * 0.05
	}
	return y + w*0.02
}

func periodGlyph(kind domain.PeriodKind) string {
	switch kind {
	case domain.PeriodTransit:
		return "●"
	case domain.PeriodNadir:
		return "○"
	case domain.PeriodMoonrise:
		return "☽↑"
	case domain.PeriodMoonset:
		return "☽↓"
	}
	return "·"
}

func clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

func drawBackground(dc *gg.Context, width, height int) {
	grad := gg.NewLinearGradient(0, 0, 0, float64(height))
	grad.AddColorStop(0, color.RGBA{R: 13, G: 27, B: 42, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 27, G: 38, B: 59, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()
}

type faceSet struct {
	title   font.Face
	heading font.Face
	body    font.Face
	small   font.Face
	score   font.Face
}

// loadFaces builds font faces scaled to the render width so custom sizes
// keep the same proportions. The Go fonts ship embedded, so rendering never
// depends on font files on disk.
func loadFaces(width float64) (faceSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faceSet{}, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faceSet{}, err
	}

	newFace := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}

	var faces faceSet
	if faces.title, err = newFace(bold, width*0.045); err != nil {
		return faceSet{}, err
	}
	if faces.heading, err = newFace(bold, width*0.036); err != nil {
		return faceSet{}, err
	}
	if faces.body, err = newFace(regular, width*0.03); err != nil {
		return faceSet{}, err
	}
	if faces.small, err = newFace(regular, width*0.024); err != nil {
		return faceSet{}, err
	}
	if faces.score, err = newFace(bold, width*0.08); err != nil {
		return faceSet{}, err
	}
	return faces, nil
}
