package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/amorporfilmes/filmes-series/internal/config"
)

// SettingsDialog edits the language and the catalog source
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	languageSelect *widget.Select
	sourceSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.sourceSelect = widget.NewSelect(sd.settings.GetCatalogSourceOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyCatalogSource)),
		sd.sourceSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(360, 260))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.sourceSelect.SetSelected(sd.settings.GetCatalogSource())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	sourceChanged := false
	if sd.sourceSelect.Selected != "" && sd.sourceSelect.Selected != sd.settings.GetCatalogSource() {
		sd.settings.SetCatalogSource(sd.sourceSelect.Selected)
		sourceChanged = true
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if sourceChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
