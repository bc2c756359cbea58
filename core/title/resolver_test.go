package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		performer string
		title     string
		caption   string
		fileName  string
		want      string
		wantOK    bool
	}{
		{
			name:      "performer and title win over everything",
			performer: "Artist",
			title:     "Song",
			caption:   "ignored",
			fileName:  "ignored.mp3",
			want:      "Artist - Song",
			wantOK:    true,
		},
		{
			name:   "title alone",
			title:  "Song",
			want:   "Song",
			wantOK: true,
		},
		{
			name:      "performer alone is not enough, caption wins",
			performer: "Artist",
			caption:   "My Caption",
			want:      "My Caption",
			wantOK:    true,
		},
		{
			name:    "caption is trimmed",
			caption: "  My Track  ",
			want:    "My Track",
			wantOK:  true,
		},
		{
			name:     "whitespace-only caption falls through to filename",
			caption:  "   ",
			fileName: "song.mp3",
			want:     "song",
			wantOK:   true,
		},
		{
			name:     "only last extension segment is stripped",
			fileName: "track.final.mp3",
			want:     "track.final",
			wantOK:   true,
		},
		{
			name:     "filename without extension is kept unchanged",
			fileName: "track",
			want:     "track",
			wantOK:   true,
		},
		{
			name:   "nothing to resolve",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.performer, tt.title, tt.caption, tt.fileName)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
