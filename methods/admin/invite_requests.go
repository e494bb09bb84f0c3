package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// InviteRequests groups the admin.inviteRequests.* methods.
type InviteRequests struct {
	client *core.Client

	// Approved groups the admin.inviteRequests.approved.* methods.
	Approved *InviteRequestsApproved

	// Denied groups the admin.inviteRequests.denied.* methods.
	Denied *InviteRequestsDenied
}

// InviteRequestOptions are the optional arguments for
// InviteRequests.Approve and InviteRequests.Deny.
type InviteRequestOptions struct {
	TeamID string
}

// Approve approves a workspace invite request.
// https://api.slack.com/methods/admin.inviteRequests.approve
func (i *InviteRequests) Approve(ctx context.Context, inviteRequestID string, opts *InviteRequestOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("invite_request_id", inviteRequestID)
	if opts != nil && opts.TeamID != "" {
		p.Set("team_id", opts.TeamID)
	}
	return i.client.Post(ctx, "admin.inviteRequests.approve", p)
}

// Deny denies a workspace invite request.
// https://api.slack.com/methods/admin.inviteRequests.deny
func (i *InviteRequests) Deny(ctx context.Context, inviteRequestID string, opts *InviteRequestOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("invite_request_id", inviteRequestID)
	if opts != nil && opts.TeamID != "" {
		p.Set("team_id", opts.TeamID)
	}
	return i.client.Post(ctx, "admin.inviteRequests.deny", p)
}

// InviteRequestsListOptions are the optional arguments for the invite
// request list methods.
type InviteRequestsListOptions struct {
	Cursor string
	Limit  int
	TeamID string
}

func (o *InviteRequestsListOptions) payload() core.Payload {
	p := core.Payload{}
	if o != nil {
		if o.Cursor != "" {
			p.Set("cursor", o.Cursor)
		}
		if o.Limit != 0 {
			p.SetInt("limit", o.Limit)
		}
		if o.TeamID != "" {
			p.Set("team_id", o.TeamID)
		}
	}
	return p
}

// List lists all pending workspace invite requests.
// https://api.slack.com/methods/admin.inviteRequests.list
func (i *InviteRequests) List(ctx context.Context, opts *InviteRequestsListOptions) (*core.Envelope, error) {
	return i.client.Post(ctx, "admin.inviteRequests.list", opts.payload())
}

// InviteRequestsApproved groups the admin.inviteRequests.approved.*
// methods.
type InviteRequestsApproved struct {
	client *core.Client
}

// List lists all approved workspace invite requests.
// https://api.slack.com/methods/admin.inviteRequests.approved.list
func (i *InviteRequestsApproved) List(ctx context.Context, opts *InviteRequestsListOptions) (*core.Envelope, error) {
	return i.client.Post(ctx, "admin.inviteRequests.approved.list", opts.payload())
}

// InviteRequestsDenied groups the admin.inviteRequests.denied.* methods.
type InviteRequestsDenied struct {
	client *core.Client
}

// List lists all denied workspace invite requests.
// https://api.slack.com/methods/admin.inviteRequests.denied.list
func (i *InviteRequestsDenied) List(ctx context.Context, opts *InviteRequestsListOptions) (*core.Envelope, error) {
	return i.client.Post(ctx, "admin.inviteRequests.denied.list", opts.payload())
}
