package formatter

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/deploy-relay/internal/event"
)

var footerPattern = regexp.MustCompile(`^Vercel \| \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

const iconURL = "https://example.com/icon.png"

func newTestService() *Service {
	s := New("Vercel", iconURL)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func findField(att slack.Attachment, title string) (slack.AttachmentField, bool) {
	for _, f := range att.Fields {
		if f.Title == title {
			return f, true
		}
	}
	return slack.AttachmentField{}, false
}

func fieldTitles(att slack.Attachment) []string {
	titles := []string{}
	for _, f := range att.Fields {
		titles = append(titles, f.Title)
	}
	return titles
}

func TestService_Format_EmptyPayload(t *testing.T) {
	types := []string{"deployment", "deployment-ready", "deployment-error", "deployment-canceled", "project-created"}

	for _, typ := range types {
		t.Run(typ, func(t *testing.T) {
			// Arrange
			s := newTestService()
			bs := []byte(`{"type":"` + typ + `","payload":{}}`)

			// Act
			msg := s.Format(context.Background(), bs)

			// Assert
			require.NotNil(t, msg)
			assert.Equal(t, "Vercel", msg.Username)
			assert.Equal(t, iconURL, msg.IconURL)
			require.Len(t, msg.Attachments, 1)

			att := msg.Attachments[0]
			assert.NotEmpty(t, att.Title)
			assert.NotEmpty(t, att.Fallback)
			assert.Regexp(t, `^#[0-9a-f]{3,6}$`, att.Color)
			assert.Regexp(t, footerPattern, att.Footer)
			assert.Equal(t, "Vercel | 2025-06-01T12:00:00.000Z", att.Footer)
			assert.Equal(t, iconURL, att.FooterIcon)
		})
	}
}

func TestService_Format_OnlyPopulatedFields(t *testing.T) {
	s := newTestService()

	tests := []struct {
		typ    string
		titles []string
	}{
		{typ: "deployment", titles: []string{"🌍 Environment", "🔗 URL"}},
		{typ: "deployment-ready", titles: []string{"🌐 Live URL", "📦 Environment"}},
		{typ: "deployment-error", titles: []string{"📦 Environment"}},
		{typ: "deployment-canceled", titles: []string{"📦 Environment"}},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			msg := s.Format(context.Background(), []byte(`{"type":"`+tt.typ+`","payload":{}}`))

			att := msg.Attachments[0]
			assert.Equal(t, tt.titles, fieldTitles(att))

			env, ok := findField(att, "🌍 Environment")
			if !ok {
				env, ok = findField(att, "📦 Environment")
			}
			require.True(t, ok)
			assert.Equal(t, "production", env.Value)
		})
	}
}

func TestService_Format_Deployment(t *testing.T) {
	// Arrange
	s := newTestService()
	bs := []byte(`{
		"type": "deployment",
		"payload": {
			"deployment": {
				"url": "darkhedgeio-hn09d97ho-a11yplan.vercel.app",
				"target": "preview",
				"inspectorUrl": "https://vercel.com/a11yplan/darkhedgeio/3bvd",
				"meta": {
					"githubCommitRef": "main",
					"githubCommitMessage": "bump",
					"githubCommitAuthorLogin": "mrvnklm",
					"githubCommitSha": "5c54a91795358ed8e4e9f70d0656b64117e960b8"
				}
			},
			"project": {"name": "darkhedgeio"},
			"team": {"name": "a11yplan"},
			"links": {
				"deployment": "https://vercel.com/a11yplan/darkhedgeio/dpl",
				"project": "https://vercel.com/a11yplan/darkhedgeio"
			}
		},
		"createdAt": "2024-01-01T00:00:00Z"
	}`)

	// Act
	msg := s.Format(context.Background(), bs)

	// Assert
	att := msg.Attachments[0]
	assert.Equal(t, "🚀 Deployment Started", att.Title)
	assert.Equal(t, "Deployment started for darkhedgeio", att.Fallback)
	assert.Equal(t, colorStarted, att.Color)
	assert.Equal(t, "https://vercel.com/a11yplan/darkhedgeio/dpl", att.TitleLink)
	assert.Equal(t, "Vercel | 2024-01-01T00:00:00.000Z", att.Footer)

	assert.Equal(t, []string{
		"📁 Project", "🌍 Environment", "🔗 URL", "🌿 Branch", "👤 Author", "🔖 Commit", "💬 Message", "👥 Team",
	}, fieldTitles(att))

	env, _ := findField(att, "🌍 Environment")
	assert.Equal(t, "preview", env.Value)

	url, _ := findField(att, "🔗 URL")
	assert.Equal(t, "<https://darkhedgeio-hn09d97ho-a11yplan.vercel.app|darkhedgeio-hn09d97ho-a11yplan.vercel.app>", url.Value)
	assert.False(t, url.Short)

	sha, _ := findField(att, "🔖 Commit")
	assert.Equal(t, "`5c54a91`", sha.Value)

	require.Len(t, att.Actions, 2)
	assert.Equal(t, slack.ActionType("button"), att.Actions[0].Type)
	assert.Equal(t, "🔍 View Deployment", att.Actions[0].Text)
	assert.Equal(t, "https://vercel.com/a11yplan/darkhedgeio/3bvd", att.Actions[0].URL)
	assert.Equal(t, "📊 Project Dashboard", att.Actions[1].Text)
	assert.Equal(t, "https://vercel.com/a11yplan/darkhedgeio", att.Actions[1].URL)
}

func TestService_Format_DeploymentAliasFallback(t *testing.T) {
	s := newTestService()

	msg := s.Format(context.Background(), []byte(`{"type":"deployment","payload":{"deployment":{"alias":["alias.example.com"]}}}`))

	url, ok := findField(msg.Attachments[0], "🔗 URL")
	require.True(t, ok)
	assert.Equal(t, "<https://alias.example.com|alias.example.com>", url.Value)
}

func TestService_Format_DeploymentReady(t *testing.T) {
	// Arrange
	s := newTestService()
	bs := []byte(`{"type":"deployment-ready","payload":{"deployment":{"url":"app.example.com","meta":{}},"project":{"name":"demo"}},"createdAt":"2024-01-01T00:00:00Z"}`)

	// Act
	msg := s.Format(context.Background(), bs)

	// Assert
	att := msg.Attachments[0]
	assert.Equal(t, "✅ Deployment Ready", att.Title)
	assert.Equal(t, "Deployment ready for demo", att.Fallback)
	assert.Equal(t, colorReady, att.Color)

	project, _ := findField(att, "🎉 Project")
	assert.Equal(t, "**demo** is now live!", project.Value)

	live, ok := findField(att, "🌐 Live URL")
	require.True(t, ok)
	assert.Contains(t, live.Value, "https://app.example.com")

	require.Len(t, att.Actions, 1)
	assert.Equal(t, "🚀 Visit Site", att.Actions[0].Text)
	assert.Equal(t, "https://app.example.com", att.Actions[0].URL)
	assert.Equal(t, "primary", att.Actions[0].Style)
}

func TestService_Format_DeploymentError(t *testing.T) {
	s := newTestService()
	bs := []byte(`{"type":"deployment-error","payload":{
		"deployment":{"errorMessage":"Build failed: Module not found","inspectorUrl":"https://vercel.com/inspect","meta":{"githubCommitRef":"feature/new-ui"}},
		"project":{"name":"my-awesome-app"},
		"links":{"project":"https://vercel.com/project"}
	}}`)

	msg := s.Format(context.Background(), bs)

	att := msg.Attachments[0]
	assert.Equal(t, "❌ Deployment Failed", att.Title)
	assert.Equal(t, colorFailed, att.Color)
	assert.Equal(t, "https://vercel.com/inspect", att.TitleLink)
	assert.Equal(t, []string{"📁 Project", "📦 Environment", "🌿 Branch", "⚠️ Error Message"}, fieldTitles(att))

	require.Len(t, att.Actions, 2)
	assert.Equal(t, "danger", att.Actions[0].Style)
	assert.Equal(t, "📊 Project Dashboard", att.Actions[1].Text)
}

func TestService_Format_DeploymentCanceled(t *testing.T) {
	s := newTestService()
	bs := []byte(`{"type":"deployment-canceled","payload":{"project":{"name":"demo"},"links":{"project":"https://vercel.com/project"}}}`)

	msg := s.Format(context.Background(), bs)

	att := msg.Attachments[0]
	assert.Equal(t, "🚫 Deployment Canceled", att.Title)
	assert.Equal(t, "Deployment canceled for demo", att.Fallback)
	assert.Equal(t, colorCanceled, att.Color)

	require.Len(t, att.Actions, 1)
	assert.Equal(t, "📊 View Project", att.Actions[0].Text)
}

func TestService_Format_CommitMessageTruncation(t *testing.T) {
	s := newTestService()
	long := strings.Repeat("a", 500)

	tests := []struct {
		typ   string
		title string
		limit int
	}{
		{typ: "deployment", title: "💬 Message", limit: 100},
		{typ: "deployment-ready", title: "💬 Commit Message", limit: 200},
		{typ: "deployment-error", title: "💬 Commit Message", limit: 100},
		{typ: "deployment-canceled", title: "💬 Commit Message", limit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			bs := []byte(`{"type":"` + tt.typ + `","payload":{"deployment":{"meta":{"githubCommitMessage":"` + long + `"}}}}`)

			msg := s.Format(context.Background(), bs)

			f, ok := findField(msg.Attachments[0], tt.title)
			require.True(t, ok)
			assert.Equal(t, strings.Repeat("a", tt.limit), f.Value)
		})
	}
}

func TestService_Format_UnknownType(t *testing.T) {
	s := newTestService()

	msg := s.Format(context.Background(), []byte(`{"type":"project-created","payload":{"project":{"name":"demo"}}}`))

	att := msg.Attachments[0]
	assert.Equal(t, "📢 project-created", att.Title)
	assert.Equal(t, "Vercel project-created", att.Fallback)
	assert.Equal(t, colorDefault, att.Color)
	assert.Equal(t, "```json\n{\n  \"project\": {\n    \"name\": \"demo\"\n  }\n}\n```", att.Text)
}

func TestService_Format_UnknownTypeDumpIsBounded(t *testing.T) {
	s := newTestService()

	payload, _ := json.Marshal(map[string]string{"blob": strings.Repeat("x", 10000)})
	bs := []byte(`{"type":"something-else","payload":` + string(payload) + `}`)

	msg := s.Format(context.Background(), bs)

	text := msg.Attachments[0].Text
	require.True(t, strings.HasPrefix(text, "```json\n"))
	require.True(t, strings.HasSuffix(text, "\n```"))
	dump := strings.TrimSuffix(strings.TrimPrefix(text, "```json\n"), "\n```")
	assert.Len(t, []rune(dump), maxDumpLength)
}

func TestService_Format_MissingType(t *testing.T) {
	s := newTestService()

	msg := s.Format(context.Background(), []byte(`{"payload":{}}`))

	assert.Equal(t, "📢 unknown", msg.Attachments[0].Title)
}

func TestService_Format_VariantFallbackOnWrongShape(t *testing.T) {
	s := newTestService()

	msg := s.Format(context.Background(), []byte(`{"type":"deployment-error","payload":{"deployment":{"meta":"not an object"}},"createdAt":"2024-01-01T00:00:00Z"}`))

	att := msg.Attachments[0]
	assert.Equal(t, "❌ Deployment Failed", att.Title)
	assert.Equal(t, "Deployment failed", att.Fallback)
	assert.Equal(t, "The deployment failed. Check Vercel for error details.", att.Text)
	assert.Empty(t, att.Fields)
	assert.Equal(t, "Vercel | 2024-01-01T00:00:00.000Z", att.Footer)
}

func TestService_Format_EnvelopeFallback(t *testing.T) {
	s := newTestService()

	for _, body := range []string{`null`, `[1,2]`, `{"type":42}`, `"deployment"`} {
		msg := s.Format(context.Background(), []byte(body))

		require.Len(t, msg.Attachments, 1, body)
		att := msg.Attachments[0]
		assert.Equal(t, "Vercel Notification", att.Title)
		assert.Equal(t, genericMsg, att.Text)
		assert.Equal(t, "Vercel | 2025-06-01T12:00:00.000Z", att.Footer)
	}
}

type panicking struct{}

func (f *panicking) Format(p *event.Payload) slack.Attachment {
	var m map[string]string
	m["boom"] = "boom"
	return slack.Attachment{}
}

func (f *panicking) Fallback() slack.Attachment {
	return slack.Attachment{Title: "static fallback"}
}

func TestFormatVariant_RecoversToVariantFallback(t *testing.T) {
	// Arrange
	e := &event.Envelope{Type: "deployment", Payload: json.RawMessage(`{}`)}

	// Act
	att := formatVariant(context.Background(), e.Type, &panicking{}, e)

	// Assert
	assert.Equal(t, "static fallback", att.Title)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "héé", truncate("hééllo", 3))
	assert.Equal(t, "🚀🚀", truncate("🚀🚀🚀", 2))
}

func TestLookup(t *testing.T) {
	for _, typ := range []event.Type{event.Deployment, event.DeploymentReady, event.DeploymentError, event.DeploymentCanceled} {
		f, ok := Lookup(typ)
		require.True(t, ok, typ)
		assert.NotEmpty(t, f.Fallback().Title)
	}

	_, ok := Lookup("project-created")
	assert.False(t, ok)
}
