// Package view turns pages of tracks into the interactive keyboards the
// transport renders as inline buttons. Every control carries an opaque
// action identifier (verb plus target id) that the router parses back when
// the control is pressed.
package view

import (
	"fmt"
	"strconv"

	"github.com/matteomarino16/telegram-audio-bot/core/page"
)

// Kind selects which list is being rendered.
type Kind int

const (
	KindLibrary Kind = iota
	KindFavorites
)

// Mode says whether the presentation is a new message or an in-place edit
// of the message whose button triggered the render.
type Mode int

const (
	ModeSend Mode = iota
	ModeEdit
)

// Fixed action identifiers.
const (
	ActionHelp      = "help"
	ActionFavorites = "favs"
)

// Button is one labeled control. Either Action or URL is set.
type Button struct {
	Label  string
	Action string
	URL    string
}

// ListItem is one (id, title) pair drawn from a backing store.
type ListItem struct {
	ID    int64
	Title string
}

// ViewModel is the abstract presentation handed to the transport.
type ViewModel struct {
	Text string
	Rows [][]Button
	Mode Mode
}

// PlayAction builds the action id for playing a track.
func PlayAction(trackID int64) string {
	return "play:" + strconv.FormatInt(trackID, 10)
}

// FavAction builds the action id for adding a track to favorites.
func FavAction(trackID int64) string {
	return "fav:" + strconv.FormatInt(trackID, 10)
}

// UnfavAction builds the action id for removing a track from favorites.
func UnfavAction(trackID int64) string {
	return "unfav:" + strconv.FormatInt(trackID, 10)
}

// PageAction builds the navigation action id for the given list kind and
// zero-based page index.
func PageAction(kind Kind, pageIndex int) string {
	if kind == KindFavorites {
		return "favpage:" + strconv.Itoa(pageIndex)
	}
	return "page:" + strconv.Itoa(pageIndex)
}

// Renderer builds view models. ShareURL is attached to the share control.
type Renderer struct {
	ShareURL string
}

// NewRenderer creates a Renderer.
func NewRenderer(shareURL string) *Renderer {
	return &Renderer{ShareURL: shareURL}
}

// BaseRows returns the fixed controls appended to every list-type view:
// help, show-favorites and share.
func (r *Renderer) BaseRows() [][]Button {
	return [][]Button{
		{
			{Label: "📜 Commands", Action: ActionHelp},
			{Label: "❤️ Favorites", Action: ActionFavorites},
		},
		{
			{Label: "Share 🚀", URL: r.ShareURL},
		},
	}
}

// TrackKeyboard returns the keyboard attached to a single audio message:
// an add-to-favorites control plus the base controls.
func (r *Renderer) TrackKeyboard(trackID int64) [][]Button {
	rows := [][]Button{
		{{Label: "❤️ Favorites", Action: FavAction(trackID)}},
	}
	return append(rows, r.BaseRows()...)
}

// RenderList renders one page of a track listing. An empty first page
// produces the fixed empty-state text with no rows at all; a short or
// empty page past the start still gets its navigation row so the user can
// get back to a valid page.
func (r *Renderer) RenderList(p page.Page, items []ListItem, pageIndex int, kind Kind, mode Mode) ViewModel {
	if len(items) == 0 && pageIndex == 0 {
		return ViewModel{Text: emptyText(kind), Mode: mode}
	}

	rows := make([][]Button, 0, len(items)+3)
	for _, item := range items {
		rows = append(rows, itemRow(item, kind))
	}

	var nav []Button
	if p.HasPrev {
		nav = append(nav, Button{Label: "⬅️ Back", Action: PageAction(kind, pageIndex-1)})
	}
	if p.HasNext {
		nav = append(nav, Button{Label: "Next ➡️", Action: PageAction(kind, pageIndex+1)})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, r.BaseRows()...)

	return ViewModel{
		Text: headerText(kind, pageIndex, p.TotalPages),
		Rows: rows,
		Mode: mode,
	}
}

func itemRow(item ListItem, kind Kind) []Button {
	if kind == KindFavorites {
		return []Button{
			{Label: "💿 " + item.Title, Action: PlayAction(item.ID)},
			{Label: "💔", Action: UnfavAction(item.ID)},
		}
	}
	return []Button{
		{Label: "▶️ " + item.Title, Action: PlayAction(item.ID)},
		{Label: "❤️", Action: FavAction(item.ID)},
	}
}

func headerText(kind Kind, pageIndex, totalPages int) string {
	if kind == KindFavorites {
		return fmt.Sprintf("❤️ Your Favorites (Page %d/%d)\n\n🎧 Pick a track to listen to:", pageIndex+1, totalPages)
	}
	return fmt.Sprintf("🎹 Music Library (Page %d/%d)\n\n🎧 Pick a track to listen to:", pageIndex+1, totalPages)
}

func emptyText(kind Kind) string {
	if kind == KindFavorites {
		return "📭 You have no favorite tracks yet.\nUse the ❤️ button while listening to a track to add it here!"
	}
	return "📭 The library is empty."
}
