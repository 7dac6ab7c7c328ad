package searcher

import (
	"net/http"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"go.uber.org/zap"
)

// errorDetail builds a short single-line excerpt of a non-2xx body.
// HTML error pages are converted to markdown first.
func errorDetail(body []byte, maxLength int) string {
	if maxLength <= 0 || len(body) == 0 {
		return ""
	}

	content := string(body)
	if strings.Contains(http.DetectContentType(body), "text/html") {
		content = convertHTMLToMarkdown(content)
	}
	content = strings.Join(strings.Fields(content), " ")

	return trimContent(content, maxLength)
}

// convertHTMLToMarkdown falls back to the input when conversion fails.
func convertHTMLToMarkdown(htmlContent string) string {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(htmlContent)
	if err != nil {
		zap.S().Warnw("failed to convert error body to markdown", "error", err)
		return htmlContent
	}
	return markdown
}

// trimContent cuts content to at most maxLength runes, marking the cut with "...".
func trimContent(content string, maxLength int) string {
	runes := []rune(content)
	if maxLength <= 0 || len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength]) + "..."
}
