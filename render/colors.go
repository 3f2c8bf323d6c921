package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(18, 22, 40)   // Night sky
	RgbSnowGround = tcell.NewRGBColor(235, 240, 255) // Snow white
	RgbIceBlue    = tcell.NewRGBColor(150, 200, 255)
	RgbFrostBlue  = tcell.NewRGBColor(110, 170, 230)
	RgbGlacier    = tcell.NewRGBColor(80, 140, 210)
	RgbIcicle     = tcell.NewRGBColor(190, 225, 255)
	RgbMover      = tcell.NewRGBColor(255, 165, 0) // Moving platforms are orange

	RgbPlayer     = tcell.NewRGBColor(230, 40, 40) // Red coat
	RgbPickup     = tcell.NewRGBColor(255, 215, 0) // Gold gift
	RgbHazard     = tcell.NewRGBColor(200, 200, 210)
	RgbGateClosed = tcell.NewRGBColor(120, 70, 30)
	RgbGateOpen   = tcell.NewRGBColor(60, 200, 80)

	RgbTitle      = tcell.NewRGBColor(255, 230, 90)
	RgbText       = tcell.NewRGBColor(220, 220, 230)
	RgbDimText    = tcell.NewRGBColor(140, 140, 160)
	RgbHint       = tcell.NewRGBColor(255, 165, 0)
	RgbHUDBg      = tcell.NewRGBColor(10, 10, 20)
	RgbButton     = tcell.NewRGBColor(40, 110, 60)
	RgbButtonSel  = tcell.NewRGBColor(90, 190, 110)
	RgbButtonText = tcell.NewRGBColor(255, 255, 255)
	RgbError      = tcell.NewRGBColor(255, 80, 80)
)

// platformColors maps manifest color tags; unknown tags fall back to ice blue
var platformColors = map[string]tcell.Color{
	"snow_white":   RgbSnowGround,
	"ice_blue":     RgbIceBlue,
	"frost_blue":   RgbFrostBlue,
	"glacier_blue": RgbGlacier,
	"icicle_blue":  RgbIcicle,
}

// PlatformColor returns the draw color for a platform
func PlatformColor(tag string, movable bool) tcell.Color {
	if movable {
		return RgbMover
	}
	if c, ok := platformColors[tag]; ok {
		return c
	}
	return RgbIceBlue
}

// ColorMode selects how RGB palette entries reach the terminal
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// ParseColorMode resolves the -color flag; anything unrecognized detects from the environment
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// cubeValues are the channel levels of the xterm 6x6x6 color cube
var cubeValues = [6]int32{0, 95, 135, 175, 215, 255}

func cubeIndex(v int32) int32 {
	best, bestDist := int32(0), int32(1<<30)
	for i, cv := range cubeValues {
		d := abs32(v - cv)
		if d < bestDist {
			best, bestDist = int32(i), d
		}
	}
	return best
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// To256 maps an RGB color to the nearest xterm-256 palette entry
// Near-gray colors use the grayscale ramp when it is closer than the cube
func To256(c tcell.Color) tcell.Color {
	if !c.Valid() {
		return c
	}
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}

	ri, gi, bi := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cubeDist := abs32(r-cubeValues[ri]) + abs32(g-cubeValues[gi]) + abs32(b-cubeValues[bi])
	cube := tcell.PaletteColor(int(16 + 36*ri + 6*gi + bi))

	gray := (r + g + b) / 3
	if max(abs32(r-gray), abs32(g-gray), abs32(b-gray)) >= 10 || gray < 4 || gray > 243 {
		return cube
	}
	step := min((gray-8)/10, 23)
	level := 8 + step*10
	grayDist := abs32(r-level) + abs32(g-level) + abs32(b-level)
	if grayDist < cubeDist {
		return tcell.PaletteColor(int(232 + step))
	}
	return cube
}
