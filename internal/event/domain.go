package event

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

type Type string

const (
	Deployment         Type = "deployment"
	DeploymentReady    Type = "deployment-ready"
	DeploymentError    Type = "deployment-error"
	DeploymentCanceled Type = "deployment-canceled"
)

// Envelope is the top-level webhook body. Payload stays raw so each
// variant can decode it on its own terms.
type Envelope struct {
	Type      Type            `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt Timestamp       `json:"createdAt"`
}

type Payload struct {
	Deployment *DeploymentInfo `json:"deployment,omitempty"`
	Project    *Project        `json:"project,omitempty"`
	Team       *Team           `json:"team,omitempty"`
	Links      *Links          `json:"links,omitempty"`
}

type DeploymentInfo struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	URL          string   `json:"url,omitempty"`
	Alias        []string `json:"alias,omitempty"`
	Target       string   `json:"target,omitempty"`
	Meta         *Meta    `json:"meta,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	InspectorURL string   `json:"inspectorUrl,omitempty"`
}

type Meta struct {
	GithubCommitRef         string `json:"githubCommitRef,omitempty"`
	GithubCommitSha         string `json:"githubCommitSha,omitempty"`
	GithubCommitMessage     string `json:"githubCommitMessage,omitempty"`
	GithubCommitAuthorLogin string `json:"githubCommitAuthorLogin,omitempty"`
	GithubCommitAuthorEmail string `json:"githubCommitAuthorEmail,omitempty"`
	GithubCommitOrg         string `json:"githubCommitOrg,omitempty"`
	GithubCommitRepo        string `json:"githubCommitRepo,omitempty"`
	GithubOrg               string `json:"githubOrg,omitempty"`
	GithubRepo              string `json:"githubRepo,omitempty"`
	BranchAlias             string `json:"branchAlias,omitempty"`
}

type Project struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Team struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Links struct {
	Deployment string `json:"deployment,omitempty"`
	Project    string `json:"project,omitempty"`
}

// Timestamp accepts an RFC 3339 string or epoch milliseconds. Anything
// else leaves it zero rather than failing the envelope.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(bs []byte) error {
	t.Time = time.Time{}

	bs = bytes.TrimSpace(bs)
	if len(bs) == 0 || bytes.Equal(bs, []byte("null")) {
		return nil
	}

	if bs[0] == '"' {
		var s string
		if err := json.Unmarshal(bs, &s); err != nil {
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			t.Time = parsed
		}
		return nil
	}

	if ms, err := strconv.ParseInt(string(bs), 10, 64); err == nil {
		t.Time = time.UnixMilli(ms)
	}

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// DeploymentOrEmpty returns the nested deployment, never nil.
func (p *Payload) DeploymentOrEmpty() *DeploymentInfo {
	if p.Deployment == nil {
		return &DeploymentInfo{}
	}
	return p.Deployment
}

func (p *Payload) ProjectName() string {
	if p.Project == nil {
		return ""
	}
	return p.Project.Name
}

func (p *Payload) TeamName() string {
	if p.Team == nil {
		return ""
	}
	return p.Team.Name
}

func (p *Payload) ProjectLink() string {
	if p.Links == nil {
		return ""
	}
	return p.Links.Project
}

// DeploymentLink prefers the dashboard link and falls back to the inspector.
func (p *Payload) DeploymentLink() string {
	if p.Links != nil && len(p.Links.Deployment) > 0 {
		return p.Links.Deployment
	}
	return p.DeploymentOrEmpty().InspectorURL
}

// Domain is the deployment url, else the first alias, else "Unknown".
func (d *DeploymentInfo) Domain() string {
	if len(d.URL) > 0 {
		return d.URL
	}
	if len(d.Alias) > 0 && len(d.Alias[0]) > 0 {
		return d.Alias[0]
	}
	return "Unknown"
}

func (d *DeploymentInfo) Environment() string {
	if len(d.Target) > 0 {
		return d.Target
	}
	return "production"
}

func (d *DeploymentInfo) MetaOrEmpty() *Meta {
	if d.Meta == nil {
		return &Meta{}
	}
	return d.Meta
}
