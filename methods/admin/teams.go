package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Teams groups the admin.teams.* methods.
type Teams struct {
	client *core.Client

	// Admins groups the admin.teams.admins.* methods.
	Admins *TeamsAdmins

	// Owners groups the admin.teams.owners.* methods.
	Owners *TeamsOwners

	// Settings groups the admin.teams.settings.* methods.
	Settings *TeamsSettings
}

// TeamsCreateOptions are the optional arguments for Teams.Create.
type TeamsCreateOptions struct {
	TeamDescription     string
	TeamDiscoverability string
}

// Create creates an Enterprise team.
// https://api.slack.com/methods/admin.teams.create
func (t *Teams) Create(ctx context.Context, teamDomain, teamName string, opts *TeamsCreateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_domain", teamDomain)
	p.Set("team_name", teamName)
	if opts != nil {
		if opts.TeamDescription != "" {
			p.Set("team_description", opts.TeamDescription)
		}
		if opts.TeamDiscoverability != "" {
			p.Set("team_discoverability", opts.TeamDiscoverability)
		}
	}
	return t.client.Post(ctx, "admin.teams.create", p)
}

// TeamsListOptions are the optional arguments for Teams.List.
type TeamsListOptions struct {
	Cursor string
	Limit  int
}

// List lists all teams on an Enterprise organization.
// https://api.slack.com/methods/admin.teams.list
func (t *Teams) List(ctx context.Context, opts *TeamsListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return t.client.Post(ctx, "admin.teams.list", p)
}

// TeamsAdmins groups the admin.teams.admins.* methods.
type TeamsAdmins struct {
	client *core.Client
}

// TeamMembersListOptions are the optional arguments for Admins.List and
// Owners.List.
type TeamMembersListOptions struct {
	Cursor string
	Limit  int
}

// List lists all of the admins on a given workspace.
// https://api.slack.com/methods/admin.teams.admins.list
func (t *TeamsAdmins) List(ctx context.Context, teamID string, opts *TeamMembersListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return t.client.Get(ctx, "admin.teams.admins.list", p)
}

// TeamsOwners groups the admin.teams.owners.* methods.
type TeamsOwners struct {
	client *core.Client
}

// List lists all of the owners on a given workspace.
// https://api.slack.com/methods/admin.teams.owners.list
func (t *TeamsOwners) List(ctx context.Context, teamID string, opts *TeamMembersListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return t.client.Get(ctx, "admin.teams.owners.list", p)
}

// TeamsSettings groups the admin.teams.settings.* methods.
type TeamsSettings struct {
	client *core.Client
}

// Info fetches information about settings in a workspace.
// https://api.slack.com/methods/admin.teams.settings.info
func (t *TeamsSettings) Info(ctx context.Context, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	return t.client.Post(ctx, "admin.teams.settings.info", p)
}

// SetDefaultChannels sets the default channels of a workspace.
// https://api.slack.com/methods/admin.teams.settings.setDefaultChannels
func (t *TeamsSettings) SetDefaultChannels(ctx context.Context, channelIDs []string, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetCSV("channel_ids", channelIDs)
	p.Set("team_id", teamID)
	return t.client.Get(ctx, "admin.teams.settings.setDefaultChannels", p)
}

// SetDescription sets the description of a given workspace.
// https://api.slack.com/methods/admin.teams.settings.setDescription
func (t *TeamsSettings) SetDescription(ctx context.Context, description, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("description", description)
	p.Set("team_id", teamID)
	return t.client.Post(ctx, "admin.teams.settings.setDescription", p)
}

// SetDiscoverability sets the discoverability of a given workspace.
// https://api.slack.com/methods/admin.teams.settings.setDiscoverability
func (t *TeamsSettings) SetDiscoverability(ctx context.Context, discoverability, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("discoverability", discoverability)
	p.Set("team_id", teamID)
	return t.client.Post(ctx, "admin.teams.settings.setDiscoverability", p)
}

// SetIcon sets the icon of a workspace.
// https://api.slack.com/methods/admin.teams.settings.setIcon
func (t *TeamsSettings) SetIcon(ctx context.Context, imageURL, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("image_url", imageURL)
	p.Set("team_id", teamID)
	return t.client.Get(ctx, "admin.teams.settings.setIcon", p)
}

// SetName sets the name of a given workspace.
// https://api.slack.com/methods/admin.teams.settings.setName
func (t *TeamsSettings) SetName(ctx context.Context, name, teamID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	p.Set("team_id", teamID)
	return t.client.Post(ctx, "admin.teams.settings.setName", p)
}
