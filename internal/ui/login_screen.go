package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

type loginView struct {
	screen   *Screen
	email    *widget.Entry
	password *widget.Entry
	signIn   *widget.Button
	spinner  *widget.ProgressBarInfinite
	status   *widget.Label
}

func (f *Screens) newLoginView(vm *viewmodel.Login) *loginView {
	v := &loginView{screen: newScreen("login")}

	v.email = widget.NewEntry()
	v.email.SetPlaceHolder(f.text(KeyEmail))
	v.password = widget.NewPasswordEntry()
	v.password.SetPlaceHolder(f.text(KeyPassword))

	submit := func() {
		vm.SignIn(v.email.Text, v.password.Text)
	}
	v.password.OnSubmitted = func(string) { submit() }

	v.signIn = widget.NewButton(f.text(KeySignIn), submit)
	v.signIn.Importance = widget.HighImportance

	v.spinner = widget.NewProgressBarInfinite()
	v.spinner.Hide()

	v.status = widget.NewLabel("")
	v.status.Wrapping = fyne.TextWrapWord
	v.status.Importance = widget.DangerImportance
	v.status.Hide()

	v.screen.track(vm.IsLoading.Bind(v.setLoading))
	v.screen.track(vm.ErrorMessage.Bind(v.setError))

	title := widget.NewLabelWithStyle(f.text(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle(f.text(KeySignInTitle), fyne.TextAlignCenter, fyne.TextStyle{})

	form := container.NewVBox(title, subtitle, v.email, v.password, v.signIn, v.spinner, v.status)
	settingsBtn := widget.NewButton(IconSettings, f.showSettings)
	settingsBtn.Importance = widget.LowImportance

	v.screen.Content = container.NewBorder(
		container.NewHBox(layout.NewSpacer(), settingsBtn),
		nil, nil, nil,
		f.mobile.CenteredForm(form),
	)
	return v
}

func (v *loginView) setLoading(loading bool) {
	if loading {
		v.spinner.Show()
		v.signIn.Disable()
		return
	}
	v.spinner.Hide()
	v.signIn.Enable()
}

func (v *loginView) setError(message string) {
	v.status.SetText(message)
	if message == "" {
		v.status.Hide()
		return
	}
	v.status.Show()
}
