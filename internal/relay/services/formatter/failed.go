package formatter

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

type failed struct{}

func (f *failed) Format(p *event.Payload) slack.Attachment {
	deployment := p.DeploymentOrEmpty()
	meta := deployment.MetaOrEmpty()

	att := slack.Attachment{
		Fallback:  fmt.Sprintf("Deployment failed for %s", projectOrUnknown(p.ProjectName())),
		Color:     colorFailed,
		Title:     "❌ Deployment Failed",
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

	if len(deployment.ErrorMessage) > 0 {
		att.Fields = append(att.Fields, field("⚠️ Error Message", deployment.ErrorMessage, false))
	}

	if len(meta.GithubCommitMessage) > 0 {
		att.Fields = append(att.Fields, field("💬 Commit Message", truncate(meta.GithubCommitMessage, shortCommitMessage), false))
	}

	att.Actions = []slack.AttachmentAction{}

	if len(deployment.InspectorURL) > 0 {
		att.Actions = append(att.Actions, button("🔍 View Error Details", deployment.InspectorURL, "danger"))
	}

	if link := p.ProjectLink(); len(link) > 0 {
		att.Actions = append(att.Actions, button("📊 Project Dashboard", link, ""))
	}

	return att
}

func (f *failed) Fallback() slack.Attachment {
	return slack.Attachment{
		Fallback: "Deployment failed",
		Color:    colorFailed,
		Title:    "❌ Deployment Failed",
		Text:     "The deployment failed. Check Vercel for error details.",
	}
}
