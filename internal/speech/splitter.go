package speech

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// DefaultChunkSize is the largest chunk, in characters, sent to the TTS
// backend in a single call.
const DefaultChunkSize = 180

// SplitChunks breaks text into ordered chunks of at most maxChunkSize
// characters. Sentences are kept whole when they fit; longer sentences are
// packed from their comma separated fragments. A single fragment longer than
// maxChunkSize is kept whole. Chunks are trimmed and empty ones dropped.
func SplitChunks(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultChunkSize
	}

	var chunks []string
	for _, s := range splitSentences(text) {
		if utf8.RuneCountInString(s) <= maxChunkSize {
			chunks = append(chunks, s)
			continue
		}
		chunks = append(chunks, packFragments(s, maxChunkSize)...)
	}

	return lo.FilterMap(chunks, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return c, c != ""
	})
}

func isSentenceTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '।', '॥':
		return true
	}
	return false
}

// splitSentences splits on whitespace runs that follow a terminator. The
// whitespace is consumed, the terminator stays with its sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	sentences := make([]string, 0, 8)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isSentenceTerminator(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		start = j
		i = j - 1
	}

	return append(sentences, string(runes[start:]))
}

// packFragments greedily packs the comma fragments of an oversize sentence.
// Every fragment but the last gets its comma back.
func packFragments(sentence string, maxChunkSize int) []string {
	parts := strings.Split(sentence, ",")
	chunks := make([]string, 0, len(parts))

	acc, accLen := "", 0
	for i, p := range parts {
		if i < len(parts)-1 {
			p += ","
		}
		pLen := utf8.RuneCountInString(p)
		if accLen+pLen <= maxChunkSize {
			acc += p
			accLen += pLen
			continue
		}
		chunks = append(chunks, acc)
		acc, accLen = p, pLen
	}

	return append(chunks, acc)
}
