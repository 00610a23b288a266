package speech

import "strings"

var markdownMarkers = strings.NewReplacer("**", "", "*", "", "##", "", "#", "")

// CleanForSpeech drops the emphasis and heading markers a model puts into
// Markdown answers so the TTS backend does not read them aloud. All other
// characters are left untouched.
func CleanForSpeech(text string) string {
	return markdownMarkers.Replace(text)
}
