package respond

import (
	"regexp"
)

var (
	// Anthropic keys must be masked before the generic OpenAI pattern,
	// which would otherwise match their "sk-" prefix first.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Currents sends its key as a URL query parameter, so transport errors
	// can carry it inside the echoed request URL.
	queryKeyPattern = regexp.MustCompile(`(apiKey=)[^&"\s]+`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = queryKeyPattern.ReplaceAllString(msg, "${1}****")

	return msg
}
