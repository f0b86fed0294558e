package uninews

import (
	"fmt"
	"strings"
)

// SystemPrompt returns the system instruction for language model converters.
// It mirrors the converter contract: text in, Markdown text out, translated
// into the target language.
func SystemPrompt(language string) string {
	lang := NormalizeLanguage(language)
	return fmt.Sprintf(
		"You are an expert markdown formatter and translator. Given the content of a news article, "+
			"output only the article text in Markdown format in %s. Remove all HTML tags and extra markup. "+
			"Do not include any commentary or metadata, only the formatted content. "+
			"If %s is not supported, default to english.",
		lang, lang,
	)
}

// UserPrompt builds the user prompt containing the extracted article.
func UserPrompt(extract *ExtractResult, language string) string {
	lang := NormalizeLanguage(language)

	var sb strings.Builder
	sb.WriteString("<article>\n")
	if extract.Title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", extract.Title)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", extract.ContentHTML)
	sb.WriteString("</article>\n\n")
	fmt.Fprintf(&sb, "Convert the article above into Markdown formatted text in %s, nothing else.", lang)
	return sb.String()
}
