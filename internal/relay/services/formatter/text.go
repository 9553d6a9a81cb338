package formatter

import (
	"fmt"

	"github.com/slack-go/slack"
)

const (
	shortCommitMessage = 100
	longCommitMessage  = 200
	shaLength          = 7
	maxDumpLength      = 3000
)

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}

func shortSha(sha string) string {
	return fmt.Sprintf("`%s`", truncate(sha, shaLength))
}

func field(title, value string, short bool) slack.AttachmentField {
	return slack.AttachmentField{
		Title: title,
		Value: value,
		Short: short,
	}
}

func button(text, url, style string) slack.AttachmentAction {
	return slack.AttachmentAction{
		Type:  "button",
		Text:  text,
		URL:   url,
		Style: style,
	}
}

func projectOrUnknown(name string) string {
	if len(name) == 0 {
		return "Unknown project"
	}
	return name
}
