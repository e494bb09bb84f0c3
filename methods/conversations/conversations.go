// Package conversations implements the conversations.* method grouping of
// the Slack Web API.
package conversations

import (
	"context"
	"strings"

	"github.com/slacktime/slacktime-go/core"
)

// Conversations groups the conversations.* methods.
type Conversations struct {
	client *core.Client
}

// New returns the conversations grouping backed by the given client.
func New(c *core.Client) *Conversations {
	return &Conversations{client: c}
}

// Archive archives a conversation.
// https://api.slack.com/methods/conversations.archive
func (c *Conversations) Archive(ctx context.Context, channel string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	return c.client.Post(ctx, "conversations.archive", p)
}

// Close closes a direct message or multi-person direct message.
// https://api.slack.com/methods/conversations.close
func (c *Conversations) Close(ctx context.Context, channel string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	return c.client.Post(ctx, "conversations.close", p)
}

// CreateOptions are the optional arguments for Create.
type CreateOptions struct {
	IsPrivate *bool
}

// Create initiates a public or private channel-based conversation.
// https://api.slack.com/methods/conversations.create
func (c *Conversations) Create(ctx context.Context, name string, opts *CreateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	if opts != nil {
		if opts.IsPrivate != nil {
			p.SetBool("is_private", *opts.IsPrivate)
		}
	}
	return c.client.Post(ctx, "conversations.create", p)
}

// HistoryOptions are the optional arguments for History.
type HistoryOptions struct {
	Cursor    string
	Inclusive *bool
	Latest    float64
	Limit     int
	Oldest    float64
}

// History fetches a conversation's history of messages and events.
// https://api.slack.com/methods/conversations.history
func (c *Conversations) History(ctx context.Context, channel string, opts *HistoryOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Inclusive != nil {
			p.SetBool("inclusive", *opts.Inclusive)
		}
		if opts.Latest != 0 {
			p.SetFloat("latest", opts.Latest)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Oldest != 0 {
			p.SetFloat("oldest", opts.Oldest)
		}
	}
	return c.client.Get(ctx, "conversations.history", p)
}

// InfoOptions are the optional arguments for Info.
type InfoOptions struct {
	IncludeLocale     *bool
	IncludeNumMembers *bool
}

// Info retrieves information about a conversation.
// https://api.slack.com/methods/conversations.info
func (c *Conversations) Info(ctx context.Context, channel string, opts *InfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	if opts != nil {
		if opts.IncludeLocale != nil {
			p.SetBool("include_locale", *opts.IncludeLocale)
		}
		if opts.IncludeNumMembers != nil {
			p.SetBool("include_num_members", *opts.IncludeNumMembers)
		}
	}
	return c.client.Get(ctx, "conversations.info", p)
}

// Invite invites users to a channel.
// https://api.slack.com/methods/conversations.invite
func (c *Conversations) Invite(ctx context.Context, channel string, users []string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("users", strings.Join(users, ","))
	return c.client.Post(ctx, "conversations.invite", p)
}

// Join joins an existing conversation.
// https://api.slack.com/methods/conversations.join
func (c *Conversations) Join(ctx context.Context, channel string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	return c.client.Post(ctx, "conversations.join", p)
}

// Kick removes a user from a conversation.
// https://api.slack.com/methods/conversations.kick
func (c *Conversations) Kick(ctx context.Context, channel, user string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("user", user)
	return c.client.Post(ctx, "conversations.kick", p)
}

// Leave leaves a conversation.
// https://api.slack.com/methods/conversations.leave
func (c *Conversations) Leave(ctx context.Context, channel string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	return c.client.Post(ctx, "conversations.leave", p)
}

// ListOptions are the optional arguments for List.
type ListOptions struct {
	Cursor          string
	ExcludeArchived *bool
	Limit           int
	Types           []string
}

// List lists all channels in a Slack team.
// https://api.slack.com/methods/conversations.list
func (c *Conversations) List(ctx context.Context, opts *ListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.ExcludeArchived != nil {
			p.SetBool("exclude_archived", *opts.ExcludeArchived)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		p.SetCSV("types", opts.Types)
	}
	return c.client.Get(ctx, "conversations.list", p)
}

// Mark sets the read cursor in a channel.
// https://api.slack.com/methods/conversations.mark
func (c *Conversations) Mark(ctx context.Context, channel string, ts float64) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetFloat("ts", ts)
	return c.client.Post(ctx, "conversations.mark", p)
}

// MembersOptions are the optional arguments for Members.
type MembersOptions struct {
	Cursor string
	Limit  int
}

// Members retrieves members of a conversation.
// https://api.slack.com/methods/conversations.members
func (c *Conversations) Members(ctx context.Context, channel string, opts *MembersOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return c.client.Get(ctx, "conversations.members", p)
}

// OpenOptions are the optional arguments for Open.
type OpenOptions struct {
	Channel  string
	ReturnIM *bool
	Users    []string
}

// Open opens or resumes a direct message or multi-person direct message.
// https://api.slack.com/methods/conversations.open
func (c *Conversations) Open(ctx context.Context, opts *OpenOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Channel != "" {
			p.Set("channel", opts.Channel)
		}
		if opts.ReturnIM != nil {
			p.SetBool("return_im", *opts.ReturnIM)
		}
		p.SetCSV("users", opts.Users)
	}
	return c.client.Post(ctx, "conversations.open", p)
}

// Rename renames a conversation.
// https://api.slack.com/methods/conversations.rename
func (c *Conversations) Rename(ctx context.Context, channel, name string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("name", name)
	return c.client.Post(ctx, "conversations.rename", p)
}

// RepliesOptions are the optional arguments for Replies.
type RepliesOptions struct {
	Cursor    string
	Inclusive *bool
	Latest    float64
	Limit     int
	Oldest    float64
}

// Replies retrieves a thread of messages posted to a conversation.
// https://api.slack.com/methods/conversations.replies
func (c *Conversations) Replies(ctx context.Context, channel string, ts float64, opts *RepliesOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetFloat("ts", ts)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Inclusive != nil {
			p.SetBool("inclusive", *opts.Inclusive)
		}
		if opts.Latest != 0 {
			p.SetFloat("latest", opts.Latest)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Oldest != 0 {
			p.SetFloat("oldest", opts.Oldest)
		}
	}
	return c.client.Get(ctx, "conversations.replies", p)
}

// SetPurpose sets the purpose for a conversation.
// https://api.slack.com/methods/conversations.setPurpose
func (c *Conversations) SetPurpose(ctx context.Context, channel, purpose string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("purpose", purpose)
	return c.client.Post(ctx, "conversations.setPurpose", p)
}

// SetTopic sets the topic for a conversation.
// https://api.slack.com/methods/conversations.setTopic
func (c *Conversations) SetTopic(ctx context.Context, channel, topic string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("topic", topic)
	return c.client.Post(ctx, "conversations.setTopic", p)
}

// Unarchive reverses conversation archival.
// https://api.slack.com/methods/conversations.unarchive
func (c *Conversations) Unarchive(ctx context.Context, channel string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	return c.client.Post(ctx, "conversations.unarchive", p)
}
