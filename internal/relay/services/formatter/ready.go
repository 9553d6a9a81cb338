package formatter

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

type ready struct{}

func (f *ready) Format(p *event.Payload) slack.Attachment {
	deployment := p.DeploymentOrEmpty()
	meta := deployment.MetaOrEmpty()
	domain := deployment.Domain()
	live := fmt.Sprintf("https://%s", domain)

	att := slack.Attachment{
		Fallback:  fmt.Sprintf("Deployment ready for %s", projectOrUnknown(p.ProjectName())),
		Color:     colorReady,
		Title:     "✅ Deployment Ready",
		TitleLink: p.DeploymentLink(),
		Fields:    []slack.AttachmentField{},
	}

	if name := p.ProjectName(); len(name) > 0 {
		att.Fields = append(att.Fields, field("🎉 Project", fmt.Sprintf("**%s** is now live!", name), false))
	}

	att.Fields = append(att.Fields, field("🌐 Live URL", fmt.Sprintf("<%s|%s>", live, live), false))

	att.Fields = append(att.Fields, field("📦 Environment", deployment.Environment(), true))

	if len(meta.GithubCommitMessage) > 0 {
		att.Fields = append(att.Fields, field("💬 Commit Message", truncate(meta.GithubCommitMessage, longCommitMessage), false))
	}

	if len(meta.GithubCommitSha) > 0 {
		att.Fields = append(att.Fields, field("🔖 Commit SHA", shortSha(meta.GithubCommitSha), true))
	}

	att.Actions = []slack.AttachmentAction{
		button("🚀 Visit Site", live, "primary"),
	}

	if len(deployment.InspectorURL) > 0 {
		att.Actions = append(att.Actions, button("📊 View Details", deployment.InspectorURL, ""))
	}

	return att
}

func (f *ready) Fallback() slack.Attachment {
	return slack.Attachment{
		Fallback: "Deployment ready",
		Color:    colorReady,
		Title:    "✅ Deployment Ready",
		Text:     "Your deployment is now live!",
	}
}
