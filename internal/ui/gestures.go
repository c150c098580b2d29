package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureLongPress
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// classifyGesture turns a touch from start to end, held for held, into a
// gesture. Movements shorter than SwipeThreshold are taps or long presses.
func classifyGesture(start, end fyne.Position, held time.Duration) GestureType {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if abs32(dx) < SwipeThreshold && abs32(dy) < SwipeThreshold {
		if held >= LongPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// gestureArea wraps content and reports swipes made on a touch screen
type gestureArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onGesture func(GestureType)

	startPos  fyne.Position
	startTime time.Time
}

var _ mobile.Touchable = (*gestureArea)(nil)

func newGestureArea(content fyne.CanvasObject, onGesture func(GestureType)) *gestureArea {
	g := &gestureArea{content: content, onGesture: onGesture}
	g.ExtendBaseWidget(g)
	return g
}

func (g *gestureArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.content)
}

// TouchDown handles touch down events
func (g *gestureArea) TouchDown(event *mobile.TouchEvent) {
	g.startPos = event.Position
	g.startTime = time.Now()
}

// TouchUp handles touch up events
func (g *gestureArea) TouchUp(event *mobile.TouchEvent) {
	if g.startTime.IsZero() {
		return
	}
	gesture := classifyGesture(g.startPos, event.Position, time.Since(g.startTime))
	g.startTime = time.Time{}
	if g.onGesture != nil && gesture != GestureNone {
		g.onGesture(gesture)
	}
}

// TouchCancel handles touch cancel events
func (g *gestureArea) TouchCancel(*mobile.TouchEvent) {
	g.startTime = time.Time{}
}

// refreshGuard drops refresh requests made within RefreshCooldown of the
// previous one.
type refreshGuard struct {
	last time.Time
	now  func() time.Time
}

func (r *refreshGuard) allow() bool {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	t := now()
	if !r.last.IsZero() && t.Sub(r.last) < RefreshCooldown {
		return false
	}
	r.last = t
	return true
}
