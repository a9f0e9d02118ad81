package extraction

import "fmt"

const systemPrompt = `You extract vocabulary from learning material. ` +
	`Reply with a single JSON object and nothing else: no markdown, no explanations.`

func imagePrompt(firstLanguage, secondLanguage string) string {
	return fmt.Sprintf(
		"Extract word pairs from the image. For each pair: 'first' in %[1]s, 'second' in %[2]s, "+
			"a %[2]s 'sentence' using the word, and an 'imagePrompt' (always in English) for visualization. "+
			"Use the words exactly as they appear in the image. Only translate if no translation is visible. "+
			"Include multiple %[1]s words if given for one %[2]s word.\n\n"+
			`Output JSON: {"wordPairs": [{"first": "", "second": "", "sentence": "", "imagePrompt": ""}]}`,
		firstLanguage, secondLanguage)
}
