package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

// itemCard is a tappable catalog card
type itemCard struct {
	widget.BaseWidget

	title    string
	subtitle string
	onTap    func()
}

func newItemCard(title, subtitle string, onTap func()) *itemCard {
	c := &itemCard{title: title, subtitle: subtitle, onTap: onTap}
	c.ExtendBaseWidget(c)
	return c
}

func (c *itemCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(widget.NewCard(c.title, c.subtitle, nil))
}

func (c *itemCard) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap()
	}
}

func movieSubtitle(m model.Movie) string {
	year := m.GetReleaseYear()
	if year == "" {
		year = DashPlaceholder
	}
	return year + MiddleDotSeparator + IconStar + " " + fmt.Sprintf(RatingFormat, m.VoteAverage)
}

func serieSubtitle(s model.Serie) string {
	year := s.GetFirstAirYear()
	if year == "" {
		year = DashPlaceholder
	}
	return year + MiddleDotSeparator + IconStar + " " + fmt.Sprintf(RatingFormat, s.VoteAverage)
}

func actorSubtitle(a model.Actor) string {
	if a.KnownForDepartment == "" {
		return DashPlaceholder
	}
	return a.KnownForDepartment
}

func movieCards(movies []model.Movie, onSelect func(model.Movie)) []fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(movies))
	for _, m := range movies {
		cards = append(cards, newItemCard(IconMovie+" "+m.GetDisplayTitle(), movieSubtitle(m), func() { onSelect(m) }))
	}
	return cards
}

func serieCards(series []model.Serie, onSelect func(model.Serie)) []fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(series))
	for _, s := range series {
		cards = append(cards, newItemCard(IconSerie+" "+s.GetDisplayTitle(), serieSubtitle(s), func() { onSelect(s) }))
	}
	return cards
}

func actorCards(actors []model.Actor, onSelect func(model.Actor)) []fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(actors))
	for _, a := range actors {
		cards = append(cards, newItemCard(IconActor+" "+a.GetDisplayTitle(), actorSubtitle(a), func() { onSelect(a) }))
	}
	return cards
}

// cardRow is a horizontally scrolling row of fixed-size cards
type cardRow struct {
	grid   *fyne.Container
	scroll *container.Scroll
	empty  *widget.Label
	box    *fyne.Container
}

func newCardRow(size fyne.Size, emptyText string) *cardRow {
	r := &cardRow{
		grid:  container.NewGridWrap(size),
		empty: widget.NewLabel(emptyText),
	}
	r.scroll = container.NewHScroll(r.grid)
	r.scroll.SetMinSize(fyne.NewSize(size.Width, size.Height))
	r.scroll.Hide()
	r.box = container.NewStack(r.empty, r.scroll)
	return r
}

// set replaces the cards; nil keeps the placeholder visible
func (r *cardRow) set(cards []fyne.CanvasObject) {
	r.grid.Objects = cards
	r.grid.Refresh()
	if len(cards) == 0 {
		r.scroll.Hide()
		r.empty.Show()
		return
	}
	r.empty.Hide()
	r.scroll.Show()
}

func (r *cardRow) len() int {
	return len(r.grid.Objects)
}
