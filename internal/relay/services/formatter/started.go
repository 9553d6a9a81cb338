package formatter

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

type started struct{}

func (f *started) Format(p *event.Payload) slack.Attachment {
	deployment := p.DeploymentOrEmpty()
	meta := deployment.MetaOrEmpty()
	domain := deployment.Domain()

	att := slack.Attachment{
		Fallback:  fmt.Sprintf("Deployment started for %s", projectOrUnknown(p.ProjectName())),
		Color:     colorStarted,
		Title:     "🚀 Deployment Started",
		TitleLink: p.DeploymentLink(),
		Fields:    []slack.AttachmentField{},
	}

	if name := p.ProjectName(); len(name) > 0 {
		att.Fields = append(att.Fields, field("📁 Project", name, true))
	}

	att.Fields = append(att.Fields, field("🌍 Environment", deployment.Environment(), true))

	att.Fields = append(att.Fields, field("🔗 URL", fmt.Sprintf("<https://%s|%s>", domain, domain), false))

	if len(meta.GithubCommitRef) > 0 {
		att.Fields = append(att.Fields, field("🌿 Branch", meta.GithubCommitRef, true))
	}

	if len(meta.GithubCommitAuthorLogin) > 0 {
		att.Fields = append(att.Fields, field("👤 Author", meta.GithubCommitAuthorLogin, true))
	}

	if len(meta.GithubCommitSha) > 0 {
		att.Fields = append(att.Fields, field("🔖 Commit", shortSha(meta.GithubCommitSha), true))
	}

	if len(meta.GithubCommitMessage) > 0 {
		att.Fields = append(att.Fields, field("💬 Message", truncate(meta.GithubCommitMessage, shortCommitMessage), true))
	}

	if name := p.TeamName(); len(name) > 0 {
		att.Fields = append(att.Fields, field("👥 Team", name, true))
	}

	att.Actions = []slack.AttachmentAction{}

	if len(deployment.InspectorURL) > 0 {
		att.Actions = append(att.Actions, button("🔍 View Deployment", deployment.InspectorURL, ""))
	}

	if link := p.ProjectLink(); len(link) > 0 {
		att.Actions = append(att.Actions, button("📊 Project Dashboard", link, ""))
	}

	return att
}

func (f *started) Fallback() slack.Attachment {
	return slack.Attachment{
		Fallback: "Deployment started",
		Color:    colorStarted,
		Title:    "🚀 Deployment Started",
		Text:     "A deployment has started. Check Vercel for details.",
	}
}
