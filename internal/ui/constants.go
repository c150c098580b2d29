package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "‹"
	IconLogout   = "⎋"
	IconStar     = "★"
	IconMovie    = "🎬"
	IconSerie    = "📺"
	IconActor    = "🎭"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	RatingFormat       = "%.1f"
	PopularityFormat   = "%.0f"
)

// Layout sizing
const (
	CardWidth  float32 = 150
	CardHeight float32 = 110

	BannerCardWidth  float32 = 260
	BannerCardHeight float32 = 140

	LoginFormWidth float32 = 320

	WindowWidth  float32 = 420
	WindowHeight float32 = 760

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Gesture thresholds
const (
	SwipeThreshold    float32 = 50
	LongPressDuration         = 500 * time.Millisecond
	RefreshCooldown           = 2 * time.Second
)
