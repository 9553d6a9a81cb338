package sample

import (
	"time"

	"github.com/w-h-a/deploy-relay/internal/event"
)

type Sample struct {
	Type    event.Type
	Payload map[string]any
}

// Samples mirrors what Vercel sends for the three events teams most often
// wire up.
func Samples() []Sample {
	return []Sample{
		{
			Type: event.Deployment,
			Payload: map[string]any{
				"deployment": map[string]any{
					"id":           "dpl_3bvdNVGny8Ery4B6aFouPHNPrzmk",
					"url":          "darkhedgeio-hn09d97ho-a11yplan.vercel.app",
					"name":         "darkhedgeio",
					"target":       "production",
					"inspectorUrl": "https://vercel.com/a11yplan/darkhedgeio/3bvdNVGny8Ery4B6aFouPHNPrzmk",
					"meta": map[string]any{
						"githubCommitRef":         "main",
						"githubCommitMessage":     "bump",
						"githubCommitAuthorLogin": "mrvnklm",
						"githubCommitSha":         "5c54a91795358ed8e4e9f70d0656b64117e960b8",
						"githubCommitOrg":         "a11yplan",
						"githubCommitRepo":        "darkhedgeio",
						"branchAlias":             "darkhedgeio-git-main-a11yplan.vercel.app",
					},
				},
				"project": map[string]any{
					"id":   "prj_WGKECis2jp4TLKMpZTXyEcNBux4T",
					"name": "darkhedgeio",
				},
				"team": map[string]any{
					"id":   "team_EXnb8RdCXjFBUFNDXqdMh5yh",
					"name": "a11yplan",
				},
				"links": map[string]any{
					"deployment": "https://vercel.com/a11yplan/darkhedgeio/3bvdNVGny8Ery4B6aFouPHNPrzmk",
					"project":    "https://vercel.com/a11yplan/darkhedgeio",
				},
			},
		},
		{
			Type: event.DeploymentReady,
			Payload: map[string]any{
				"deployment": map[string]any{
					"id":     "dpl_test456",
					"url":    "my-app-xyz789.vercel.app",
					"name":   "my-app",
					"target": "production",
					"meta": map[string]any{
						"githubCommitMessage": "Fix bug in user authentication",
					},
				},
				"project": map[string]any{
					"id":   "prj_test456",
					"name": "my-awesome-app",
				},
			},
		},
		{
			Type: event.DeploymentError,
			Payload: map[string]any{
				"deployment": map[string]any{
					"id":           "dpl_test789",
					"name":         "my-app",
					"target":       "production",
					"errorMessage": "Build failed: Module not found",
					"meta": map[string]any{
						"githubCommitRef": "feature/new-ui",
					},
				},
				"project": map[string]any{
					"id":   "prj_test789",
					"name": "my-awesome-app",
				},
			},
		},
	}
}

func envelope(s Sample, now time.Time) map[string]any {
	return map[string]any{
		"type":      s.Type,
		"payload":   s.Payload,
		"createdAt": now.UTC().Format(time.RFC3339Nano),
	}
}
