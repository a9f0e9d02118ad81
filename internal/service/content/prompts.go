package content

import (
	"fmt"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

const systemJSON = `You write short copy for a language-learning dictation game. ` +
	`Reply with a single JSON object matching the requested fields and nothing else: no markdown, no explanations.`

const systemText = `You write short copy for a language-learning dictation game. Reply with plain text only.`

func titlePrompt(in TitleInput) string {
	return fmt.Sprintf(
		"Generate a short, catchy title for a dictation game with the following word pairs (%s - %s): %s. "+
			"Plain string without quotation marks. Maximum 4 words.",
		in.FirstLanguage, in.SecondLanguage, in.WordPairsText)
}

func introPrompt(d domain.Dictation) string {
	return fmt.Sprintf(
		"Generate content for the intro slide of a dictation game titled %q with word pairs (%s - %s): %s. "+
			"Provide a motivating introduction explaining the game briefly, written in %s.\n\n"+
			`Output JSON: {"title": "<title>", "wordPairsList": "<the word pairs, one per line>", "introContent": "<introduction>"}`,
		d.Title, d.FirstLanguage, d.SecondLanguage, domain.JoinPairs(d.WordPairs), d.FirstLanguage)
}

func outroPrompt(d domain.Dictation) string {
	return fmt.Sprintf(
		"Generate a congratulatory message for completing the dictation game titled %q, written in %s. "+
			"The message should be encouraging and positive.\n\n"+
			`Output JSON: {"congratsMessage": "<message>"}`,
		d.Title, d.FirstLanguage)
}

func sentencePrompt(d domain.Dictation, pair domain.WordPair) string {
	return fmt.Sprintf(
		"Write one short, simple example sentence in %s that uses the word %q (%s: %q). "+
			"Use vocabulary a beginner understands.\n\n"+
			`Output JSON: {"sentence": "<sentence>"}`,
		d.SecondLanguage, pair.Second, d.FirstLanguage, pair.First)
}
