// Package title derives a display title for an uploaded audio file.
package title

import "strings"

// Resolve picks a display title from the fields attached to an upload.
// Precedence, first match wins:
//  1. embedded performer and title: "performer - title"
//  2. embedded title alone
//  3. user-supplied caption, trimmed
//  4. file name with its final extension segment removed
//
// ok is false when none of the four yields a title; the caller must then
// ask the user to resend the file with an explicit caption and must not
// store anything.
func Resolve(performer, embeddedTitle, caption, fileName string) (name string, ok bool) {
	if performer != "" && embeddedTitle != "" {
		return performer + " - " + embeddedTitle, true
	}
	if embeddedTitle != "" {
		return embeddedTitle, true
	}

	if trimmed := strings.TrimSpace(caption); trimmed != "" {
		return trimmed, true
	}

	if fileName != "" {
		return stripExtension(fileName), true
	}

	return "", false
}

// stripExtension removes the substring after the last dot. Only the final
// extension segment is dropped: "track.final.mp3" becomes "track.final".
func stripExtension(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx >= 0 {
		return fileName[:idx]
	}
	return fileName
}
