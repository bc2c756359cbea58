package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteomarino16/telegram-audio-bot/core/page"
)

func TestRenderListEmptyFirstPage(t *testing.T) {
	r := NewRenderer("https://t.me/share/url?url=test")

	vm := r.RenderList(page.Page{}, nil, 0, KindLibrary, ModeSend)
	assert.Equal(t, "📭 The library is empty.", vm.Text)
	assert.Empty(t, vm.Rows)
	assert.Equal(t, ModeSend, vm.Mode)

	vm = r.RenderList(page.Page{}, nil, 0, KindFavorites, ModeEdit)
	assert.Contains(t, vm.Text, "no favorite tracks yet")
	assert.Empty(t, vm.Rows)
	assert.Equal(t, ModeEdit, vm.Mode)
}

func TestRenderListLibraryPage(t *testing.T) {
	r := NewRenderer("https://t.me/share")
	items := []ListItem{
		{ID: 7, Title: "Alpha"},
		{ID: 9, Title: "Beta"},
	}
	p := page.Compute(12, 1, 5)

	vm := r.RenderList(p, items, 1, KindLibrary, ModeEdit)

	assert.Equal(t, "🎹 Music Library (Page 2/3)\n\n🎧 Pick a track to listen to:", vm.Text)
	assert.Equal(t, ModeEdit, vm.Mode)

	// Two item rows, a navigation row, and the two base rows.
	require.Len(t, vm.Rows, 5)

	first := vm.Rows[0]
	require.Len(t, first, 2)
	assert.Equal(t, "▶️ Alpha", first[0].Label)
	assert.Equal(t, "play:7", first[0].Action)
	assert.Equal(t, "❤️", first[1].Label)
	assert.Equal(t, "fav:7", first[1].Action)

	nav := vm.Rows[2]
	require.Len(t, nav, 2)
	assert.Equal(t, "page:0", nav[0].Action)
	assert.Equal(t, "page:2", nav[1].Action)

	share := vm.Rows[4]
	require.Len(t, share, 1)
	assert.Equal(t, "https://t.me/share", share[0].URL)
	assert.Empty(t, share[0].Action)
}

func TestRenderListFavoritesPage(t *testing.T) {
	r := NewRenderer("https://t.me/share")
	items := []ListItem{{ID: 3, Title: "Gamma"}}
	p := page.Compute(6, 1, 5)

	vm := r.RenderList(p, items, 1, KindFavorites, ModeEdit)

	assert.Equal(t, "❤️ Your Favorites (Page 2/2)\n\n🎧 Pick a track to listen to:", vm.Text)

	first := vm.Rows[0]
	require.Len(t, first, 2)
	assert.Equal(t, "💿 Gamma", first[0].Label)
	assert.Equal(t, "play:3", first[0].Action)
	assert.Equal(t, "unfav:3", first[1].Action)

	// Last page: navigation carries only the back control.
	nav := vm.Rows[1]
	require.Len(t, nav, 1)
	assert.Equal(t, "favpage:0", nav[0].Action)
}

func TestRenderListSinglePageHasNoNavRow(t *testing.T) {
	r := NewRenderer("share")
	items := []ListItem{{ID: 1, Title: "Only"}}
	p := page.Compute(1, 0, 5)

	vm := r.RenderList(p, items, 0, KindLibrary, ModeSend)

	// One item row plus the two base rows, no navigation in between.
	require.Len(t, vm.Rows, 3)
	assert.Equal(t, "play:1", vm.Rows[0][0].Action)
	assert.Equal(t, ActionHelp, vm.Rows[1][0].Action)
	assert.Equal(t, ActionFavorites, vm.Rows[1][1].Action)
}

func TestTrackKeyboard(t *testing.T) {
	r := NewRenderer("share")

	rows := r.TrackKeyboard(42)

	require.Len(t, rows, 3)
	assert.Equal(t, "fav:42", rows[0][0].Action)
	assert.Equal(t, ActionHelp, rows[1][0].Action)
	assert.Equal(t, "share", rows[2][0].URL)
}

func TestActionBuilders(t *testing.T) {
	assert.Equal(t, "play:5", PlayAction(5))
	assert.Equal(t, "fav:5", FavAction(5))
	assert.Equal(t, "unfav:5", UnfavAction(5))
	assert.Equal(t, "page:2", PageAction(KindLibrary, 2))
	assert.Equal(t, "favpage:2", PageAction(KindFavorites, 2))
}
