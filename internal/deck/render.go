package deck

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

const (
	titleFormat    = `<p style="text-align:center;direction:%s;"><span style="color: rgb(79,79,79);font-size: 48px;font-family: Varela Round;"><strong>%s</strong></span></p>` + "\n"
	promptFormat   = `<p style="text-align:center;direction:%s;"><span style="color: rgb(79,79,79);font-size: 48px;font-family: Varela Round;">%s</span></p>` + "\n"
	textFormat     = `<p style="direction:%s;"><span style="color: rgb(79,79,79);font-size: 28px;font-family: Varela Round;">%s</span></p>` + "\n"
	congratsFormat = `<p style="direction:%s;"><span style="color: rgb(79,79,79);font-size: 48px;font-family: Varela Round;"><strong>%s</strong></span></p>` + "\n"
)

var rtlLanguages = map[string]bool{
	"hebrew":  true,
	"arabic":  true,
	"persian": true,
	"farsi":   true,
	"urdu":    true,
}

// Direction returns "rtl" for right-to-left languages and "ltr" otherwise.
func Direction(language string) string {
	if rtlLanguages[strings.ToLower(strings.TrimSpace(language))] {
		return "rtl"
	}
	return "ltr"
}

// textEscaper escapes for element content only; quotes stay literal.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func renderTitle(dir, text string) string {
	return fmt.Sprintf(titleFormat, dir, escapeText(text))
}

func renderPrompt(dir, text string) string {
	return fmt.Sprintf(promptFormat, dir, escapeText(text))
}

func renderText(dir, text string) string {
	return fmt.Sprintf(textFormat, dir, escapeText(text))
}

func renderCongrats(dir, text string) string {
	return fmt.Sprintf(congratsFormat, dir, escapeText(text))
}

// renderPairs renders one paragraph per pair as "first - second".
func renderPairs(dir string, pairs []domain.WordPair) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(renderText(dir, p.Label()))
	}
	return b.String()
}
