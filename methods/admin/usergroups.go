package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Usergroups groups the admin.usergroups.* methods.
type Usergroups struct {
	client *core.Client
}

// AddChannelsOptions are the optional arguments for AddChannels.
type AddChannelsOptions struct {
	TeamID string
}

// AddChannels adds one or more default channels to an IDP group.
// https://api.slack.com/methods/admin.usergroups.addChannels
func (u *Usergroups) AddChannels(ctx context.Context, channelIDs []string, usergroupID string, opts *AddChannelsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetCSV("channel_ids", channelIDs)
	p.Set("usergroup_id", usergroupID)
	if opts != nil && opts.TeamID != "" {
		p.Set("team_id", opts.TeamID)
	}
	return u.client.Post(ctx, "admin.usergroups.addChannels", p)
}

// AddTeamsOptions are the optional arguments for AddTeams.
type AddTeamsOptions struct {
	AutoProvision *bool
}

// AddTeams associates one or more default workspaces with an
// organization-wide IDP group.
// https://api.slack.com/methods/admin.usergroups.addTeams
func (u *Usergroups) AddTeams(ctx context.Context, teamIDs []string, usergroupID string, opts *AddTeamsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetCSV("team_ids", teamIDs)
	p.Set("usergroup_id", usergroupID)
	if opts != nil && opts.AutoProvision != nil {
		p.SetBool("auto_provision", *opts.AutoProvision)
	}
	return u.client.Post(ctx, "admin.usergroups.addTeams", p)
}

// ListChannelsOptions are the optional arguments for ListChannels.
type ListChannelsOptions struct {
	IncludeNumMembers *bool
	TeamID            string
}

// ListChannels lists the channels linked to an org-level IDP group.
// https://api.slack.com/methods/admin.usergroups.listChannels
func (u *Usergroups) ListChannels(ctx context.Context, usergroupID string, opts *ListChannelsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("usergroup_id", usergroupID)
	if opts != nil {
		if opts.IncludeNumMembers != nil {
			p.SetBool("include_num_members", *opts.IncludeNumMembers)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return u.client.Post(ctx, "admin.usergroups.listChannels", p)
}

// RemoveChannels removes one or more default channels from an org-level
// IDP group.
// https://api.slack.com/methods/admin.usergroups.removeChannels
func (u *Usergroups) RemoveChannels(ctx context.Context, channelIDs []string, usergroupID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetCSV("channel_ids", channelIDs)
	p.Set("usergroup_id", usergroupID)
	return u.client.Post(ctx, "admin.usergroups.removeChannels", p)
}
