package formatter

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

type canceled struct{}

func (f *canceled) Format(p *event.Payload) slack.Attachment {
	deployment := p.DeploymentOrEmpty()
	meta := deployment.MetaOrEmpty()

	att := slack.Attachment{
		Fallback:  fmt.Sprintf("Deployment canceled for %s", projectOrUnknown(p.ProjectName())),
		Color:     colorCanceled,
		Title:     "🚫 Deployment Canceled",
		TitleLink: p.DeploymentLink(),
		Fields:    []slack.AttachmentField{},
	}

	if name := p.ProjectName(); len(name) > 0 {
		att.Fields = append(att.Fields, field("📁 Project", name, true))
	}

	att.Fields = append(att.Fields, field("📦 Environment", deployment.Environment(), true))

	if len(meta.GithubCommitRef) > 0 {
		att.Fields = append(att.Fields, field("🌿 Branch", meta.GithubCommitRef, true))
	}

	if len(meta.GithubCommitAuthorLogin) > 0 {
		att.Fields = append(att.Fields, field("👤 Author", meta.GithubCommitAuthorLogin, true))
	}

	if len(meta.GithubCommitMessage) > 0 {
		att.Fields = append(att.Fields, field("💬 Commit Message", truncate(meta.GithubCommitMessage, shortCommitMessage), false))
	}

	att.Actions = []slack.AttachmentAction{}

	if link := p.ProjectLink(); len(link) > 0 {
		att.Actions = append(att.Actions, button("📊 View Project", link, ""))
	}

	return att
}

func (f *canceled) Fallback() slack.Attachment {
	return slack.Attachment{
		Fallback: "Deployment canceled",
		Color:    colorCanceled,
		Title:    "🚫 Deployment Canceled",
		Text:     "The deployment was canceled.",
	}
}
