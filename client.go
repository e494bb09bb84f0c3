package slacktime

import (
	"fmt"
	"os"

	"github.com/slacktime/slacktime-go/core"
	"github.com/slacktime/slacktime-go/methods/admin"
	"github.com/slacktime/slacktime-go/methods/api"
	"github.com/slacktime/slacktime-go/methods/apps"
	"github.com/slacktime/slacktime-go/methods/auth"
	"github.com/slacktime/slacktime-go/methods/bots"
	"github.com/slacktime/slacktime-go/methods/calls"
	"github.com/slacktime/slacktime-go/methods/chat"
	"github.com/slacktime/slacktime-go/methods/conversations"
	"github.com/slacktime/slacktime-go/methods/dialog"
	"github.com/slacktime/slacktime-go/methods/dnd"
	"github.com/slacktime/slacktime-go/methods/emoji"
	"github.com/slacktime/slacktime-go/methods/files"
	"github.com/slacktime/slacktime-go/methods/migration"
	"github.com/slacktime/slacktime-go/methods/oauth"
	"github.com/slacktime/slacktime-go/methods/pins"
	"github.com/slacktime/slacktime-go/methods/reactions"
	"github.com/slacktime/slacktime-go/methods/reminders"
	"github.com/slacktime/slacktime-go/methods/rtm"
	"github.com/slacktime/slacktime-go/methods/search"
	"github.com/slacktime/slacktime-go/methods/stars"
	"github.com/slacktime/slacktime-go/methods/team"
	"github.com/slacktime/slacktime-go/methods/usergroups"
	"github.com/slacktime/slacktime-go/methods/users"
	"github.com/slacktime/slacktime-go/methods/views"
	"github.com/slacktime/slacktime-go/methods/workflows"
)

// DefaultTokenEnvVar is the environment variable FromEnv reads the API
// token from.
const DefaultTokenEnvVar = "SLACK_API_TOKEN"

// Client is the aggregate Slack Web API client. Each field is a method
// grouping sharing the same underlying transport and token.
type Client struct {
	core *core.Client

	Admin         *admin.Admin
	API           *api.API
	Apps          *apps.Apps
	Auth          *auth.Auth
	Bots          *bots.Bots
	Calls         *calls.Calls
	Chat          *chat.Chat
	Conversations *conversations.Conversations
	Dialog        *dialog.Dialog
	DND           *dnd.DND
	Emoji         *emoji.Emoji
	Files         *files.Files
	Migration     *migration.Migration
	OAuth         *oauth.OAuth
	Pins          *pins.Pins
	Reactions     *reactions.Reactions
	Reminders     *reminders.Reminders
	RTM           *rtm.RTM
	Search        *search.Search
	Stars         *stars.Stars
	Team          *team.Team
	Usergroups    *usergroups.Usergroups
	Users         *users.Users
	Views         *views.Views
	Workflows     *workflows.Workflows
}

// New returns a Client authenticated with the given token.
func New(token string, opts ...core.Option) *Client {
	return wrap(core.New(token, opts...))
}

// FromEnv returns a Client authenticated with the token held in the
// SLACK_API_TOKEN environment variable.
func FromEnv(opts ...core.Option) (*Client, error) {
	token, ok := os.LookupEnv(DefaultTokenEnvVar)
	if !ok || token == "" {
		return nil, fmt.Errorf("slacktime: environment variable %s is not set", DefaultTokenEnvVar)
	}
	return New(token, opts...), nil
}

func wrap(c *core.Client) *Client {
	return &Client{
		core:          c,
		Admin:         admin.New(c),
		API:           api.New(c),
		Apps:          apps.New(c),
		Auth:          auth.New(c),
		Bots:          bots.New(c),
		Calls:         calls.New(c),
		Chat:          chat.New(c),
		Conversations: conversations.New(c),
		Dialog:        dialog.New(c),
		DND:           dnd.New(c),
		Emoji:         emoji.New(c),
		Files:         files.New(c),
		Migration:     migration.New(c),
		OAuth:         oauth.New(c),
		Pins:          pins.New(c),
		Reactions:     reactions.New(c),
		Reminders:     reminders.New(c),
		RTM:           rtm.New(c),
		Search:        search.New(c),
		Stars:         stars.New(c),
		Team:          team.New(c),
		Usergroups:    usergroups.New(c),
		Users:         users.New(c),
		Views:         views.New(c),
		Workflows:     workflows.New(c),
	}
}

// Core exposes the underlying envelope client for callers that need to
// issue methods not covered by a grouping.
func (c *Client) Core() *core.Client {
	return c.core
}

// Bool returns a pointer to b, for use in options structs.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for use in options structs.
func Int(i int) *int { return &i }

// String returns a pointer to s, for use in options structs.
func String(s string) *string { return &s }
