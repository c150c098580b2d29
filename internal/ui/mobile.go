package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific layout helpers
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// CreateMobileButton creates a button with a touch-sized height
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) fyne.CanvasObject {
	btn := widget.NewButton(text, onTapped)
	if !m.IsMobileDevice() {
		return btn
	}
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(LoginFormWidth, MobileButtonHeight)), btn)
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20
	}
	return 10
}

// CenteredForm constrains a form to LoginFormWidth on desktop and lets it
// fill the screen on phones.
func (m *MobileUI) CenteredForm(form fyne.CanvasObject) fyne.CanvasObject {
	if m.IsMobileDevice() {
		return container.NewPadded(form)
	}
	sized := container.New(layout.NewGridWrapLayout(fyne.NewSize(LoginFormWidth, form.MinSize().Height)), form)
	return container.NewCenter(sized)
}
