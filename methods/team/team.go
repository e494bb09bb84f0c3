// Package team implements the team.* method grouping of the Slack Web API.
package team

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Team groups the team.* methods.
type Team struct {
	client *core.Client

	// Profile groups the team.profile.* methods.
	Profile *Profile
}

// New returns the team grouping backed by the given client.
func New(c *core.Client) *Team {
	return &Team{
		client:  c,
		Profile: &Profile{client: c},
	}
}

// AccessLogsOptions are the optional arguments for AccessLogs.
type AccessLogsOptions struct {
	Before int
	Count  int
	Page   int
}

// AccessLogs gets the access logs for the current team.
// https://api.slack.com/methods/team.accessLogs
func (t *Team) AccessLogs(ctx context.Context, opts *AccessLogsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Before != 0 {
			p.SetInt("before", opts.Before)
		}
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
	}
	return t.client.Get(ctx, "team.accessLogs", p)
}

// BillableInfoOptions are the optional arguments for BillableInfo.
type BillableInfoOptions struct {
	User string
}

// BillableInfo gets billable users information for the current team.
// https://api.slack.com/methods/team.billableInfo
func (t *Team) BillableInfo(ctx context.Context, opts *BillableInfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return t.client.Get(ctx, "team.billableInfo", p)
}

// InfoOptions are the optional arguments for Info.
type InfoOptions struct {
	Team string
}

// Info gets information about the current team.
// https://api.slack.com/methods/team.info
func (t *Team) Info(ctx context.Context, opts *InfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Team != "" {
			p.Set("team", opts.Team)
		}
	}
	return t.client.Get(ctx, "team.info", p)
}

// IntegrationLogsOptions are the optional arguments for IntegrationLogs.
type IntegrationLogsOptions struct {
	AppID      string
	ChangeType string
	Count      int
	Page       int
	ServiceID  string
	User       string
}

// IntegrationLogs gets the integration logs for the current team.
// https://api.slack.com/methods/team.integrationLogs
func (t *Team) IntegrationLogs(ctx context.Context, opts *IntegrationLogsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.AppID != "" {
			p.Set("app_id", opts.AppID)
		}
		if opts.ChangeType != "" {
			p.Set("change_type", opts.ChangeType)
		}
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
		if opts.ServiceID != "" {
			p.Set("service_id", opts.ServiceID)
		}
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return t.client.Get(ctx, "team.integrationLogs", p)
}

// Profile groups the team.profile.* methods.
type Profile struct {
	client *core.Client
}

// ProfileGetOptions are the optional arguments for Profile.Get.
type ProfileGetOptions struct {
	Visibility string
}

// Get retrieves a team's profile.
// https://api.slack.com/methods/team.profile.get
func (p *Profile) Get(ctx context.Context, opts *ProfileGetOptions) (*core.Envelope, error) {
	payload := core.Payload{}
	if opts != nil {
		if opts.Visibility != "" {
			payload.Set("visibility", opts.Visibility)
		}
	}
	return p.client.Get(ctx, "team.profile.get", payload)
}
