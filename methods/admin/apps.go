package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Apps groups the admin.apps.* methods.
type Apps struct {
	client *core.Client

	// Approved groups the admin.apps.approved.* methods.
	Approved *AppsApproved

	// Requests groups the admin.apps.requests.* methods.
	Requests *AppsRequests

	// Restricted groups the admin.apps.restricted.* methods.
	Restricted *AppsRestricted
}

// AppsApproveOptions are the optional arguments for Apps.Approve. One of
// AppID or RequestID identifies the app.
type AppsApproveOptions struct {
	AppID     string
	RequestID string
	TeamID    string
}

// Approve approves an app for installation on a workspace.
// https://api.slack.com/methods/admin.apps.approve
func (a *Apps) Approve(ctx context.Context, opts *AppsApproveOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.AppID != "" {
			p.Set("app_id", opts.AppID)
		}
		if opts.RequestID != "" {
			p.Set("request_id", opts.RequestID)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return a.client.Post(ctx, "admin.apps.approve", p)
}

// AppsRestrictOptions are the optional arguments for Apps.Restrict. One of
// AppID or RequestID identifies the app.
type AppsRestrictOptions struct {
	AppID     string
	RequestID string
	TeamID    string
}

// Restrict restricts an app for installation on a workspace.
// https://api.slack.com/methods/admin.apps.restrict
func (a *Apps) Restrict(ctx context.Context, opts *AppsRestrictOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.AppID != "" {
			p.Set("app_id", opts.AppID)
		}
		if opts.RequestID != "" {
			p.Set("request_id", opts.RequestID)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return a.client.Post(ctx, "admin.apps.restrict", p)
}

// AppsApproved groups the admin.apps.approved.* methods.
type AppsApproved struct {
	client *core.Client
}

// AppsApprovedListOptions are the optional arguments for Approved.List.
type AppsApprovedListOptions struct {
	Cursor       string
	EnterpriseID string
	Limit        int
	TeamID       string
}

// List lists approved apps for an org or workspace.
// https://api.slack.com/methods/admin.apps.approved.list
func (a *AppsApproved) List(ctx context.Context, opts *AppsApprovedListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.EnterpriseID != "" {
			p.Set("enterprise_id", opts.EnterpriseID)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return a.client.Get(ctx, "admin.apps.approved.list", p)
}

// AppsRequests groups the admin.apps.requests.* methods.
type AppsRequests struct {
	client *core.Client
}

// AppsRequestsListOptions are the optional arguments for Requests.List.
type AppsRequestsListOptions struct {
	Cursor string
	Limit  int
	TeamID string
}

// List lists app requests for a team/workspace.
// https://api.slack.com/methods/admin.apps.requests.list
func (a *AppsRequests) List(ctx context.Context, opts *AppsRequestsListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return a.client.Get(ctx, "admin.apps.requests.list", p)
}

// AppsRestricted groups the admin.apps.restricted.* methods.
type AppsRestricted struct {
	client *core.Client
}

// AppsRestrictedListOptions are the optional arguments for Restricted.List.
type AppsRestrictedListOptions struct {
	Cursor       string
	EnterpriseID string
	Limit        int
	TeamID       string
}

// List lists restricted apps for an org or workspace.
// https://api.slack.com/methods/admin.apps.restricted.list
func (a *AppsRestricted) List(ctx context.Context, opts *AppsRestrictedListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.EnterpriseID != "" {
			p.Set("enterprise_id", opts.EnterpriseID)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return a.client.Get(ctx, "admin.apps.restricted.list", p)
}
