package bot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/matteomarino16/telegram-audio-bot/core/page"
	"github.com/matteomarino16/telegram-audio-bot/core/title"
	"github.com/matteomarino16/telegram-audio-bot/core/view"
	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"
	"github.com/matteomarino16/telegram-audio-bot/repository"
)

const welcomeText = "🎧 WELCOME TO MUSIC BOT 👽🧚\n" +
	"Listen to and download your favorite music right from Telegram.\n\n" +
	"🔍 How it works\n" +
	"Type the name of a song\n" +
	"Hit Enter\n" +
	"Enjoy your music 🎶\n\n" +
	helpText + "\n\n" +
	"If a track is missing you can request it with /request or upload it yourself with /add!"

const helpText = "📜 Available commands:\n\n" +
	"🎵 /search – Search for a song\n" +
	"➕ /add – Add a new song to the library\n" +
	"📊 /list – Browse the library\n" +
	"❤️ /favorites – Your favorite songs\n\n" +
	"Or just type the name of a song in the chat."

const addInstructionsText = "➕ Add a new song\n\n" +
	"1. Drop the audio file here in the chat.\n" +
	"2. The bot will try to read Artist and Title from the file metadata.\n" +
	"3. If the file has no metadata, add a caption yourself: Artist - Title."

const resolutionFailedText = "⚠️ Could not detect the track name!\n\n" +
	"The file has no metadata (Artist/Title) and you did not write a caption.\n" +
	"Please resend the file with a caption: Artist - Title"

const genericFailureText = "❌ Something went wrong, please try again later."

// Router maps inbound intents to store operations and rendered views.
// Each intent is handled to completion before the next one is dispatched.
type Router struct {
	tracks    repository.TrackRepository
	favorites repository.FavoriteRepository
	requests  repository.RequestRepository
	renderer  *view.Renderer
	transport Transport
	feed      RequestPublisher // may be nil
	pageSize  int
}

// NewRouter creates a Router. feed may be nil.
func NewRouter(
	tracks repository.TrackRepository,
	favorites repository.FavoriteRepository,
	requests repository.RequestRepository,
	renderer *view.Renderer,
	transport Transport,
	feed RequestPublisher,
	pageSize int,
) *Router {
	return &Router{
		tracks:    tracks,
		favorites: favorites,
		requests:  requests,
		renderer:  renderer,
		transport: transport,
		feed:      feed,
		pageSize:  pageSize,
	}
}

// HandleIntent dispatches one intent. All errors are handled here; nothing
// propagates beyond the single user interaction.
func (r *Router) HandleIntent(intent Intent) {
	switch it := intent.(type) {
	case CommandIntent:
		r.handleCommand(it)
	case TextIntent:
		text := strings.TrimSpace(it.Text)
		if text == "" {
			return
		}
		r.performSearch(it.ChatID, text)
	case AudioIntent:
		r.handleAudio(it)
	case CallbackIntent:
		r.handleCallback(it)
	}
}

func (r *Router) handleCommand(it CommandIntent) {
	switch it.Command {
	case "start":
		messageID, err := r.transport.SendMessage(it.ChatID, welcomeText, r.renderer.BaseRows())
		if err != nil {
			logger.Error("Failed to send welcome message", logger.ErrorField(err))
			return
		}
		// Pin the welcome message as a persistent dashboard. This can fail
		// when the bot lacks pin rights; not fatal.
		if err := r.transport.PinMessage(it.ChatID, messageID); err != nil {
			logger.Debug("Could not pin welcome message", logger.ErrorField(err))
		}
	case "help":
		r.sendMessage(it.ChatID, helpText, r.renderer.BaseRows())
	case "add":
		r.sendMessage(it.ChatID, addInstructionsText, r.renderer.BaseRows())
	case "list":
		r.showLibraryPage(it.ChatID, 0, 0, view.ModeSend)
	case "favorites":
		r.showFavoritesPage(it.ChatID, 0, it.UserID, 0, view.ModeSend)
	case "search":
		query := strings.TrimSpace(it.Args)
		if query == "" {
			r.sendMessage(it.ChatID, "✏️ Type the name of the song you are looking for and hit Enter", r.renderer.BaseRows())
			return
		}
		r.performSearch(it.ChatID, query)
	case "request":
		r.handleRequest(it)
	}
}

// handleAudio resolves a title for the uploaded file and stores it, unless
// the media reference is already known.
func (r *Router) handleAudio(it AudioIntent) {
	trackName, ok := title.Resolve(it.Performer, it.Title, it.Caption, it.FileName)
	if !ok {
		r.sendMessage(it.ChatID, resolutionFailedText, nil)
		return
	}

	// Duplicate check first: an already-stored reference is reported with
	// the title it was stored under, not the newly resolved one.
	existing, err := r.tracks.GetTrackByFileID(it.FileID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Error("Failed to check for duplicate track", logger.ErrorField(err))
		r.sendMessage(it.ChatID, genericFailureText, r.renderer.BaseRows())
		return
	}
	if existing != nil {
		r.sendMessage(it.ChatID, "⚠️ This track is already in the library: "+existing.Title, nil)
		return
	}

	track := &model.Track{Title: trackName, FileID: it.FileID}
	if _, err := r.tracks.CreateTrack(track); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with another upload of the same file; report the
			// stored title.
			if stored, lookupErr := r.tracks.GetTrackByFileID(it.FileID); lookupErr == nil {
				r.sendMessage(it.ChatID, "⚠️ This track is already in the library: "+stored.Title, nil)
				return
			}
			r.sendMessage(it.ChatID, "⚠️ This track is already in the library.", nil)
			return
		}
		logger.Error("Failed to save uploaded track", logger.ErrorField(err))
		r.sendMessage(it.ChatID, "❌ Error while saving the track.", r.renderer.BaseRows())
		return
	}

	r.sendMessage(it.ChatID, "✅ Track added automatically:\n"+trackName, r.renderer.BaseRows())
}

func (r *Router) handleRequest(it CommandIntent) {
	text := strings.TrimSpace(it.Args)
	if text == "" {
		r.sendMessage(it.ChatID, "⚠️ Write the track title after the command.\nExample: /request Track Name", nil)
		return
	}

	username := it.Username
	if username == "" {
		username = it.FirstName
	}

	req := &model.TrackRequest{
		UserID:      it.UserID,
		Username:    username,
		RequestText: text,
	}
	if err := r.requests.CreateRequest(req); err != nil {
		logger.Error("Failed to store track request", logger.ErrorField(err))
		r.sendMessage(it.ChatID, genericFailureText, r.renderer.BaseRows())
		return
	}

	if r.feed != nil {
		r.feed.PublishRequest(req)
	}

	r.sendMessage(it.ChatID, "✅ Request sent: "+text+"\nThe admin will review it soon!", r.renderer.BaseRows())
}

func (r *Router) handleCallback(it CallbackIntent) {
	verb, arg, _ := strings.Cut(it.Data, ":")

	switch verb {
	case "play":
		r.playTrack(it, arg)
	case "fav":
		r.addFavorite(it, arg)
	case "unfav":
		r.removeFavorite(it, arg)
	case "page":
		pageIndex, err := strconv.Atoi(arg)
		if err != nil {
			logger.Warn("Malformed page action", logger.String("data", it.Data))
			return
		}
		r.answerCallback(it.CallbackID, "", false)
		r.showLibraryPage(it.ChatID, it.MessageID, pageIndex, view.ModeEdit)
	case "favpage":
		pageIndex, err := strconv.Atoi(arg)
		if err != nil {
			logger.Warn("Malformed favorites page action", logger.String("data", it.Data))
			return
		}
		r.answerCallback(it.CallbackID, "", false)
		r.showFavoritesPage(it.ChatID, it.MessageID, it.UserID, pageIndex, view.ModeEdit)
	case view.ActionHelp:
		r.answerCallback(it.CallbackID, "", false)
		r.sendMessage(it.ChatID, helpText, r.renderer.BaseRows())
	case view.ActionFavorites:
		r.answerCallback(it.CallbackID, "", false)
		r.showFavoritesPage(it.ChatID, it.MessageID, it.UserID, 0, view.ModeEdit)
	default:
		logger.Warn("Unknown callback action", logger.String("data", it.Data))
	}
}

func (r *Router) playTrack(it CallbackIntent, arg string) {
	trackID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger.Warn("Malformed play action", logger.String("data", it.Data))
		return
	}

	track, err := r.tracks.GetTrackByID(trackID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			r.answerCallback(it.CallbackID, "❌ Track not found (it may have been removed).", true)
			return
		}
		logger.Error("Failed to load track", logger.Int64("trackId", trackID), logger.ErrorField(err))
		r.answerCallback(it.CallbackID, genericFailureText, true)
		return
	}

	r.answerCallback(it.CallbackID, "", false)
	if err := r.transport.SendAudio(it.ChatID, track.FileID, track.Title, r.renderer.TrackKeyboard(track.ID)); err != nil {
		logger.Error("Failed to send audio", logger.Int64("trackId", trackID), logger.ErrorField(err))
	}
}

func (r *Router) addFavorite(it CallbackIntent, arg string) {
	trackID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger.Warn("Malformed favorite action", logger.String("data", it.Data))
		return
	}

	switch err := r.favorites.AddFavorite(it.UserID, trackID); {
	case err == nil:
		r.answerCallback(it.CallbackID, "❤️ Track added to favorites!", true)
	case errors.Is(err, repository.ErrDuplicate):
		r.answerCallback(it.CallbackID, "⚠️ Already in favorites", true)
	default:
		logger.Error("Failed to add favorite", logger.Int64("trackId", trackID), logger.ErrorField(err))
		r.answerCallback(it.CallbackID, genericFailureText, true)
	}
}

func (r *Router) removeFavorite(it CallbackIntent, arg string) {
	trackID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger.Warn("Malformed unfavorite action", logger.String("data", it.Data))
		return
	}

	switch err := r.favorites.RemoveFavorite(it.UserID, trackID); {
	case err == nil:
		r.answerCallback(it.CallbackID, "💔 Removed from favorites.", true)
	case errors.Is(err, repository.ErrNotFound):
		// Nothing was removed, so the view the button lives on is still
		// accurate; leave it alone.
		r.answerCallback(it.CallbackID, "⚠️ Not in your favorites anymore.", true)
		return
	default:
		logger.Error("Failed to remove favorite", logger.Int64("trackId", trackID), logger.ErrorField(err))
		r.answerCallback(it.CallbackID, genericFailureText, true)
		return
	}

	// The favorites view the button lived on is stale now; re-render it in
	// place from the first page.
	r.showFavoritesPage(it.ChatID, it.MessageID, it.UserID, 0, view.ModeEdit)
}

// showLibraryPage renders one page of the library, either as a new message
// or editing the message the navigation button lives on.
func (r *Router) showLibraryPage(chatID int64, messageID, pageIndex int, mode view.Mode) {
	total, err := r.tracks.CountTracks()
	if err != nil {
		logger.Error("Failed to count tracks", logger.ErrorField(err))
		r.sendMessage(chatID, genericFailureText, nil)
		return
	}

	if total == 0 && pageIndex == 0 {
		r.deliver(chatID, messageID, r.renderer.RenderList(page.Page{}, nil, 0, view.KindLibrary, mode))
		return
	}

	p := page.Compute(total, pageIndex, r.pageSize)
	tracks, err := r.tracks.ListTracksPage(p.Limit, p.Offset)
	if err != nil {
		logger.Error("Failed to list tracks page", logger.Int("page", pageIndex), logger.ErrorField(err))
		r.sendMessage(chatID, genericFailureText, nil)
		return
	}

	r.deliver(chatID, messageID, r.renderer.RenderList(p, toListItems(tracks), pageIndex, view.KindLibrary, mode))
}

// showFavoritesPage renders one page of the user's favorites.
func (r *Router) showFavoritesPage(chatID int64, messageID int, userID int64, pageIndex int, mode view.Mode) {
	total, err := r.favorites.CountFavorites(userID)
	if err != nil {
		logger.Error("Failed to count favorites", logger.Int64("userId", userID), logger.ErrorField(err))
		r.sendMessage(chatID, genericFailureText, nil)
		return
	}

	if total == 0 && pageIndex == 0 {
		r.deliver(chatID, messageID, r.renderer.RenderList(page.Page{}, nil, 0, view.KindFavorites, mode))
		return
	}

	p := page.Compute(total, pageIndex, r.pageSize)
	tracks, err := r.favorites.ListFavoritesPage(userID, p.Limit, p.Offset)
	if err != nil {
		logger.Error("Failed to list favorites page", logger.Int64("userId", userID), logger.ErrorField(err))
		r.sendMessage(chatID, genericFailureText, nil)
		return
	}

	r.deliver(chatID, messageID, r.renderer.RenderList(p, toListItems(tracks), pageIndex, view.KindFavorites, mode))
}

// performSearch sends every matching track as an individual playable audio
// message. Search results are not paginated.
func (r *Router) performSearch(chatID int64, query string) {
	results, err := r.tracks.SearchTracksByTitle(query)
	if err != nil {
		logger.Error("Search failed", logger.String("query", query), logger.ErrorField(err))
		r.sendMessage(chatID, genericFailureText, nil)
		return
	}

	if len(results) == 0 {
		r.sendMessage(chatID, "❌ No track found\nYou can request it with /request or add it with /add", nil)
		return
	}

	for _, track := range results {
		if err := r.transport.SendAudio(chatID, track.FileID, track.Title, r.renderer.TrackKeyboard(track.ID)); err != nil {
			logger.Error("Failed to send search result", logger.Int64("trackId", track.ID), logger.ErrorField(err))
		}
	}
}

func (r *Router) deliver(chatID int64, messageID int, vm view.ViewModel) {
	if vm.Mode == view.ModeEdit {
		if err := r.transport.EditMessage(chatID, messageID, vm.Text, vm.Rows); err != nil {
			logger.Error("Failed to edit message", logger.Int("messageId", messageID), logger.ErrorField(err))
		}
		return
	}
	r.sendMessage(chatID, vm.Text, vm.Rows)
}

func (r *Router) sendMessage(chatID int64, text string, keyboard [][]view.Button) {
	if _, err := r.transport.SendMessage(chatID, text, keyboard); err != nil {
		logger.Error("Failed to send message", logger.Int64("chatId", chatID), logger.ErrorField(err))
	}
}

func (r *Router) answerCallback(callbackID, text string, alert bool) {
	if err := r.transport.AnswerCallback(callbackID, text, alert); err != nil {
		logger.Error("Failed to answer callback", logger.ErrorField(err))
	}
}

func toListItems(tracks []*model.Track) []view.ListItem {
	items := make([]view.ListItem, 0, len(tracks))
	for _, t := range tracks {
		items = append(items, view.ListItem{ID: t.ID, Title: t.Title})
	}
	return items
}
