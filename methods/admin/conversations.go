package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Conversations groups the admin.conversations.* methods.
type Conversations struct {
	client *core.Client

	// Ekm groups the admin.conversations.ekm.* methods.
	Ekm *ConversationsEkm

	// RestrictAccess groups the admin.conversations.restrictAccess.*
	// methods.
	RestrictAccess *ConversationsRestrictAccess
}

// Archive archives a public or private channel.
// https://api.slack.com/methods/admin.conversations.archive
func (c *Conversations) Archive(ctx context.Context, channelID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	return c.client.Post(ctx, "admin.conversations.archive", p)
}

// ConvertToPrivate converts a public channel to a private channel.
// https://api.slack.com/methods/admin.conversations.convertToPrivate
func (c *Conversations) ConvertToPrivate(ctx context.Context, channelID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	return c.client.Post(ctx, "admin.conversations.convertToPrivate", p)
}

// CreateOptions are the optional arguments for Create.
type CreateOptions struct {
	Description string
	OrgWide     *bool
	TeamID      string
}

// Create creates a public or private channel-based conversation.
// https://api.slack.com/methods/admin.conversations.create
func (c *Conversations) Create(ctx context.Context, isPrivate bool, name string, opts *CreateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetBool("is_private", isPrivate)
	p.Set("name", name)
	if opts != nil {
		if opts.Description != "" {
			p.Set("description", opts.Description)
		}
		if opts.OrgWide != nil {
			p.SetBool("org_wide", *opts.OrgWide)
		}
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return c.client.Post(ctx, "admin.conversations.create", p)
}

// Delete deletes a public or private channel.
// https://api.slack.com/methods/admin.conversations.delete
func (c *Conversations) Delete(ctx context.Context, channelID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	return c.client.Post(ctx, "admin.conversations.delete", p)
}

// DisconnectSharedOptions are the optional arguments for DisconnectShared.
type DisconnectSharedOptions struct {
	LeavingTeamIDs []string
}

// DisconnectShared disconnects a connected channel from one or more
// workspaces.
// https://api.slack.com/methods/admin.conversations.disconnectShared
func (c *Conversations) DisconnectShared(ctx context.Context, channelID string, opts *DisconnectSharedOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	if opts != nil {
		p.SetCSV("leaving_team_ids", opts.LeavingTeamIDs)
	}
	return c.client.Post(ctx, "admin.conversations.disconnectShared", p)
}

// GetConversationPrefs gets conversation preferences for a public or
// private channel.
// https://api.slack.com/methods/admin.conversations.getConversationPrefs
func (c *Conversations) GetConversationPrefs(ctx context.Context, channelID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	return c.client.Post(ctx, "admin.conversations.getConversationPrefs", p)
}

// GetTeamsOptions are the optional arguments for GetTeams.
type GetTeamsOptions struct {
	Cursor string
	Limit  int
}

// GetTeams gets all the workspaces a given public or private channel is
// connected to within this Enterprise org.
// https://api.slack.com/methods/admin.conversations.getTeams
func (c *Conversations) GetTeams(ctx context.Context, channelID string, opts *GetTeamsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return c.client.Post(ctx, "admin.conversations.getTeams", p)
}

// Invite invites a user to a public or private channel.
// https://api.slack.com/methods/admin.conversations.invite
func (c *Conversations) Invite(ctx context.Context, channelID string, userIDs []string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	p.SetCSV("user_ids", userIDs)
	return c.client.Post(ctx, "admin.conversations.invite", p)
}

// Rename renames a public or private channel.
// https://api.slack.com/methods/admin.conversations.rename
func (c *Conversations) Rename(ctx context.Context, channelID, name string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	p.Set("name", name)
	return c.client.Post(ctx, "admin.conversations.rename", p)
}

// SearchOptions are the optional arguments for Search.
type SearchOptions struct {
	Cursor             string
	Limit              int
	Query              string
	SearchChannelTypes []string
	Sort               string
	SortDir            string
	TeamIDs            []string
}

// Search searches for public or private channels in an Enterprise
// organization.
// https://api.slack.com/methods/admin.conversations.search
func (c *Conversations) Search(ctx context.Context, opts *SearchOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Query != "" {
			p.Set("query", opts.Query)
		}
		p.SetCSV("search_channel_types", opts.SearchChannelTypes)
		if opts.Sort != "" {
			p.Set("sort", opts.Sort)
		}
		if opts.SortDir != "" {
			p.Set("sort_dir", opts.SortDir)
		}
		p.SetCSV("team_ids", opts.TeamIDs)
	}
	return c.client.Post(ctx, "admin.conversations.search", p)
}

// SetConversationPrefs sets the posting permissions for a public or
// private channel.
// https://api.slack.com/methods/admin.conversations.setConversationPrefs
func (c *Conversations) SetConversationPrefs(ctx context.Context, channelID, prefs string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	p.Set("prefs", prefs)
	return c.client.Post(ctx, "admin.conversations.setConversationPrefs", p)
}

// SetTeamsOptions are the optional arguments for SetTeams.
type SetTeamsOptions struct {
	OrgChannel    *bool
	TargetTeamIDs []string
	TeamID        string
}

// SetTeams sets the workspaces in an Enterprise grid org that connect to a
// public or private channel.
// https://api.slack.com/methods/admin.conversations.setTeams
func (c *Conversations) SetTeams(ctx context.Context, channelID string, opts *SetTeamsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	if opts != nil {
		if opts.OrgChannel != nil {
			p.SetBool("org_channel", *opts.OrgChannel)
		}
		p.SetCSV("target_team_ids", opts.TargetTeamIDs)
		if opts.TeamID != "" {
			p.Set("team_id", opts.TeamID)
		}
	}
	return c.client.Post(ctx, "admin.conversations.setTeams", p)
}

// Unarchive unarchives a public or private channel.
// https://api.slack.com/methods/admin.conversations.unarchive
func (c *Conversations) Unarchive(ctx context.Context, channelID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	return c.client.Post(ctx, "admin.conversations.unarchive", p)
}

// ConversationsEkm groups the admin.conversations.ekm.* methods.
type ConversationsEkm struct {
	client *core.Client
}

// EkmListOptions are the optional arguments for
// Ekm.ListOriginalConnectedChannelInfo.
type EkmListOptions struct {
	ChannelIDs []string
	Cursor     string
	Limit      int
	TeamIDs    []string
}

// ListOriginalConnectedChannelInfo lists channels that were once connected
// to other workspaces and then disconnected, with the corresponding
// original channel IDs for key revocation with EKM.
// https://api.slack.com/methods/admin.conversations.ekm.listOriginalConnectedChannelInfo
func (e *ConversationsEkm) ListOriginalConnectedChannelInfo(ctx context.Context, opts *EkmListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		p.SetCSV("channel_ids", opts.ChannelIDs)
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		p.SetCSV("team_ids", opts.TeamIDs)
	}
	return e.client.Get(ctx, "admin.conversations.ekm.listOriginalConnectedChannelInfo", p)
}

// ConversationsRestrictAccess groups the
// admin.conversations.restrictAccess.* methods.
type ConversationsRestrictAccess struct {
	client *core.Client
}

// RestrictAccessGroupOptions are the optional arguments for
// RestrictAccess.AddGroup and RestrictAccess.ListGroups.
type RestrictAccessGroupOptions struct {
	TeamID string
}

// AddGroup adds an allowlist of IDP groups for accessing a channel.
// https://api.slack.com/methods/admin.conversations.restrictAccess.addGroup
func (r *ConversationsRestrictAccess) AddGroup(ctx context.Context, channelID, groupID string, opts *RestrictAccessGroupOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	p.Set("group_id", groupID)
	if opts != nil && opts.TeamID != "" {
		p.Set("team_id", opts.TeamID)
	}
	return r.client.Get(ctx, "admin.conversations.restrictAccess.addGroup", p)
}

// ListGroups lists all IDP groups linked to a channel.
// https://api.slack.com/methods/admin.conversations.restrictAccess.listGroups
func (r *ConversationsRestrictAccess) ListGroups(ctx context.Context, channelID string, opts *RestrictAccessGroupOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	if opts != nil && opts.TeamID != "" {
		p.Set("team_id", opts.TeamID)
	}
	return r.client.Get(ctx, "admin.conversations.restrictAccess.listGroups", p)
}

// RemoveGroup removes a linked IDP group from a private channel.
// https://api.slack.com/methods/admin.conversations.restrictAccess.removeGroup
func (r *ConversationsRestrictAccess) RemoveGroup(ctx context.Context, channelID, groupID, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel_id", channelID)
	p.Set("group_id", groupID)
	p.Set("team_id", teamID)
	return r.client.Get(ctx, "admin.conversations.restrictAccess.removeGroup", p)
}
