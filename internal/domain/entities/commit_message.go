package entities

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const (
	CommitMessageHeader = "Update dependencies.\n\n"
	WordWrapPrefix      = "* "
	WordWrapWidth       = 78
)

// WordWrap reflows text into lines of at most WordWrapWidth characters,
// breaking only at whitespace. The first line carries prefix and the
// continuation lines are indented by its length.
func WordWrap(prefix, text string) string {
	wrapped := strings.TrimSpace(wordwrap.WrapString(text, WordWrapWidth))
	indent := strings.Repeat(" ", len(prefix))
	return prefix + strings.ReplaceAll(wrapped, "\n", "\n"+indent)
}

// FormatCommitMessage renders the commit message for the given manager
// messages. Empty messages are dropped; with nothing left it returns "".
func FormatCommitMessage(messages []string) string {
	var sb strings.Builder
	for _, message := range messages {
		if message == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(CommitMessageHeader)
		}
		sb.WriteString(WordWrap(WordWrapPrefix, message))
		sb.WriteString("\n")
	}
	return sb.String()
}
