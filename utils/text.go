package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

var (
	whitespaceRe = regexp.MustCompile(`[ \t]+`)
	newlineRe    = regexp.MustCompile(`\n{2,}`)
	sentenceRe   = regexp.MustCompile(`[.!?]+(\s|$)`)
)

// Control characters and glyphs that PDF extraction tends to leave behind.
var artifactReplacements = map[string]string{
	"\u0000": "",   // null character
	"\ufffd": "",   // unicode replacement character
	"\u001b": "",   // escape character
	"\r":     "",   // carriage return
	"\f":     "\n", // form feed to newline
	"\uf8ff": "",   // Apple logo
	"‡": "",   // double dagger
	"†": "",   // dagger
}

// CleanText normalizes extracted PDF text: strips extraction artifacts,
// collapses runs of whitespace and trims the result.
func CleanText(text string) string {
	cleaned := text
	for old, repl := range artifactReplacements {
		cleaned = strings.ReplaceAll(cleaned, old, repl)
	}
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = newlineRe.ReplaceAllString(cleaned, "\n")
	return strings.TrimSpace(cleaned)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount counts sentence-terminating punctuation runs.
func SentenceCount(text string) int {
	return len(sentenceRe.FindAllString(text, -1))
}

// GetTextStatistics computes the basic statistics reported alongside
// extracted text. Reading time assumes 200 words per minute.
func GetTextStatistics(text string) types.TextStatistics {
	words := WordCount(text)
	sentences := SentenceCount(text)

	avg := 0.0
	if sentences > 0 {
		avg = float64(words) / float64(sentences)
	}
	return types.TextStatistics{
		TotalCharacters:             utf8.RuneCountInString(text),
		TotalWords:                  words,
		TotalSentences:              sentences,
		AverageWordsPerSentence:     avg,
		EstimatedReadingTimeMinutes: float64(words) / 200,
	}
}
