package logsync

import "regexp"

// RedactionMarker replaces any text matching a known secret-token shape
// before publication.
const RedactionMarker = "[REDACTED_TOKEN]"

// secretPatterns are the token shapes that must never reach the public site.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github_pat_[A-Za-z0-9_]+`),
	regexp.MustCompile(`sk-[A-Za-z0-9]{10,}`),
}

// Redact replaces every secret-shaped match with the redaction marker and
// reports how many replacements were made.
func Redact(text string) (string, int) {
	total := 0
	for _, re := range secretPatterns {
		matches := re.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		total += len(matches)
		text = re.ReplaceAllString(text, RedactionMarker)
	}
	return text, total
}
