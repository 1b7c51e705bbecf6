package main

import "os"

const (
	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	DefaultWindowTitle  = "Portfolio"
	TicksPerSecond      = 60

	// --- Grid & Background ---
	GridOpacity        = 0.1
	GridPulseOpacity   = 0.25
	GridPulsePeriod    = 7.0
	GridPulseDelay     = 2.0
	GridStrokeWidth    = 0.2
	GridMaskRadius     = 1000.0
	HoverFadeDuration  = 0.3
	HoverPruneInterval = 60 // ticks

	// --- Text ---
	TitleSizeRatio    = 0.10 // of window width
	SubtitleSizeRatio = 0.05
	SubtitleGap       = 8.0
	StatusSizeSmall   = 16.0
	StatusSizeLarge   = 20.0
	StatusBottom      = 32.0
	StatusPaddingX    = 48.0
	StatusPaddingXSm  = 24.0

	// --- Entrance animation ---
	TitleDuration    = 1.0
	SubtitleDelay    = 0.5
	StatusDuration   = 1.0
	StatusDelay      = 2.0
	StatusRiseOffset = 20.0
	NoticeDuration   = 4.0

	// --- UI ---
	ToggleMargin = 20
	UIFontSize   = 14.0

	// --- Files ---
	DefaultSiteFile  = "site.star"
	DefaultFontsDir  = "fonts"
	ScreenshotFile   = "screenshot.png"
	TitleFontFile    = "CaslonBlackItalic.ttf"
	BodyFontFile     = "FuturaBook.ttf"
	FallbackFontFile = "Roboto-Regular.ttf"

	FallbackMessage = "Something went wrong while drawing this page."
)

// Environment overrides.
const (
	EnvSiteFile  = "PORTFOLIO_SITE"
	EnvPrefsFile = "PORTFOLIO_PREFS"
	EnvFontsDir  = "PORTFOLIO_FONTS"
	EnvLogLevel  = "PORTFOLIO_LOG_LEVEL"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
