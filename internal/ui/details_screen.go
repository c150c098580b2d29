package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

type detailField struct {
	key   string
	value string
}

type detailsView struct {
	screen *Screen
	back   *widget.Button
	fields []detailField
	link   *widget.Hyperlink
}

// detailFields lists what the details screen shows for target
func detailFields(target model.DetailTarget) []detailField {
	orDash := func(s string) string {
		if s == "" {
			return DashPlaceholder
		}
		return s
	}

	switch target.Kind {
	case model.DetailMovie:
		m := target.Movie
		return []detailField{
			{KeyReleased, orDash(m.GetReleaseYear())},
			{KeyRating, fmt.Sprintf(RatingFormat, m.VoteAverage)},
			{KeyOverview, orDash(m.Overview)},
		}
	case model.DetailSerie:
		s := target.Serie
		return []detailField{
			{KeyFirstAired, orDash(s.GetFirstAirYear())},
			{KeyRating, fmt.Sprintf(RatingFormat, s.VoteAverage)},
			{KeyOverview, orDash(s.Overview)},
		}
	case model.DetailActor:
		a := target.Actor
		return []detailField{
			{KeyKnownFor, orDash(a.KnownForDepartment)},
			{KeyPopularity, fmt.Sprintf(PopularityFormat, a.Popularity)},
		}
	default:
		return nil
	}
}

// imageLink returns the poster or profile picture URL of target
func imageLink(target model.DetailTarget, baseURL string) string {
	switch target.Kind {
	case model.DetailMovie:
		return target.Movie.GetPosterURL(baseURL, model.PosterSizeLarge)
	case model.DetailSerie:
		return target.Serie.GetPosterURL(baseURL, model.PosterSizeLarge)
	case model.DetailActor:
		return target.Actor.GetProfileURL(baseURL)
	default:
		return ""
	}
}

func (f *Screens) newDetailsView(target model.DetailTarget, onClose func()) *detailsView {
	v := &detailsView{
		screen: newScreen("details:" + target.String()),
		fields: detailFields(target),
	}

	v.back = widget.NewButton(IconBack+" "+f.text(KeyBack), onClose)
	v.back.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(target.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord

	form := widget.NewForm()
	for _, field := range v.fields {
		value := widget.NewLabel(field.value)
		value.Wrapping = fyne.TextWrapWord
		form.Append(f.text(field.key), value)
	}

	body := container.NewVBox(title, form)
	if link := imageLink(target, f.imageBaseURL); link != "" {
		if u, err := url.Parse(link); err == nil {
			v.link = widget.NewHyperlink(f.text(KeyOpenPoster), u)
			body.Add(v.link)
		}
	}

	content := newGestureArea(container.NewVScroll(body), func(g GestureType) {
		if g == GestureSwipeRight {
			onClose()
		}
	})
	v.screen.Content = container.NewBorder(container.NewHBox(v.back), nil, nil, nil, content)
	return v
}
