package bot

// Intent is a single user-triggered action. The transport converts every
// inbound update into one of the variants below; each carries only the
// fields its handling needs. Callbacks carry the editable message they
// originate from, commands and messages only a chat to reply into.
type Intent interface {
	isIntent()
}

// CommandIntent is a typed slash command, e.g. "/request some title".
type CommandIntent struct {
	ChatID    int64
	UserID    int64
	Username  string
	FirstName string
	Command   string // without the leading slash
	Args      string // raw text after the command, may be empty
}

// TextIntent is a free-text message, treated as a library search.
type TextIntent struct {
	ChatID int64
	UserID int64
	Text   string
}

// AudioIntent is an uploaded audio file plus its optional metadata.
type AudioIntent struct {
	ChatID    int64
	UserID    int64
	FileID    string
	Performer string
	Title     string
	FileName  string
	Caption   string
}

// CallbackIntent is a button press. Data is the opaque action identifier
// the view attached to the control. ChatID and MessageID name the message
// the button lives on, so list views can be re-rendered in place.
type CallbackIntent struct {
	CallbackID string
	ChatID     int64
	MessageID  int
	UserID     int64
	Data       string
}

func (CommandIntent) isIntent()  {}
func (TextIntent) isIntent()     {}
func (AudioIntent) isIntent()    {}
func (CallbackIntent) isIntent() {}
