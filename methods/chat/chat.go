// Package chat implements the chat.* method grouping of the Slack Web API.
package chat

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Chat groups the chat.* methods.
type Chat struct {
	client *core.Client

	// ScheduledMessages groups the chat.scheduledMessages.* methods.
	ScheduledMessages *ScheduledMessages
}

// New returns the chat grouping backed by the given client.
func New(c *core.Client) *Chat {
	return &Chat{
		client:            c,
		ScheduledMessages: &ScheduledMessages{client: c},
	}
}

// DeleteOptions are the optional arguments for Delete.
type DeleteOptions struct {
	AsUser *bool
}

// Delete deletes a message.
// https://api.slack.com/methods/chat.delete
func (c *Chat) Delete(ctx context.Context, channel string, ts float64, opts *DeleteOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetFloat("ts", ts)
	if opts != nil {
		if opts.AsUser != nil {
			p.SetBool("as_user", *opts.AsUser)
		}
	}
	return c.client.Post(ctx, "chat.delete", p)
}

// DeleteScheduledMessageOptions are the optional arguments for
// DeleteScheduledMessage.
type DeleteScheduledMessageOptions struct {
	AsUser *bool
}

// DeleteScheduledMessage deletes a pending scheduled message from the queue.
// https://api.slack.com/methods/chat.deleteScheduledMessage
func (c *Chat) DeleteScheduledMessage(ctx context.Context, channel, scheduledMessageID string, opts *DeleteScheduledMessageOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("scheduled_message_id", scheduledMessageID)
	if opts != nil {
		if opts.AsUser != nil {
			p.SetBool("as_user", *opts.AsUser)
		}
	}
	return c.client.Post(ctx, "chat.deleteScheduledMessage", p)
}

// GetPermalink retrieves a permalink URL for a specific extant message.
// https://api.slack.com/methods/chat.getPermalink
func (c *Chat) GetPermalink(ctx context.Context, channel string, messageTS float64) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetFloat("message_ts", messageTS)
	return c.client.Get(ctx, "chat.getPermalink", p)
}

// MeMessage shares a me message into a channel.
// https://api.slack.com/methods/chat.meMessage
func (c *Chat) MeMessage(ctx context.Context, channel, text string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("text", text)
	return c.client.Post(ctx, "chat.meMessage", p)
}

// PostEphemeralOptions are the optional arguments for PostEphemeral.
type PostEphemeralOptions struct {
	AsUser    *bool
	Blocks    any
	IconEmoji string
	IconURL   string
	LinkNames *bool
	Parse     string
	ThreadTS  float64
	Username  string
}

// PostEphemeral sends an ephemeral message to a user in a channel.
// The attachments argument is a structured value (slice, map, or
// pre-encoded JSON string).
// https://api.slack.com/methods/chat.postEphemeral
func (c *Chat) PostEphemeral(ctx context.Context, attachments any, channel, text, user string, opts *PostEphemeralOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if err := p.SetJSON("attachments", attachments); err != nil {
		return nil, err
	}
	p.Set("channel", channel)
	p.Set("text", text)
	p.Set("user", user)
	if opts != nil {
		if opts.AsUser != nil {
			p.SetBool("as_user", *opts.AsUser)
		}
		if opts.Blocks != nil {
			if err := p.SetJSON("blocks", opts.Blocks); err != nil {
				return nil, err
			}
		}
		if opts.IconEmoji != "" {
			p.Set("icon_emoji", opts.IconEmoji)
		}
		if opts.IconURL != "" {
			p.Set("icon_url", opts.IconURL)
		}
		if opts.LinkNames != nil {
			p.SetBool("link_names", *opts.LinkNames)
		}
		if opts.Parse != "" {
			p.Set("parse", opts.Parse)
		}
		if opts.ThreadTS != 0 {
			p.SetFloat("thread_ts", opts.ThreadTS)
		}
		if opts.Username != "" {
			p.Set("username", opts.Username)
		}
	}
	return c.client.Post(ctx, "chat.postEphemeral", p)
}

// PostMessageOptions are the optional arguments for PostMessage.
type PostMessageOptions struct {
	AsUser         *bool
	Attachments    any
	Blocks         any
	IconEmoji      string
	IconURL        string
	LinkNames      *bool
	Mrkdwn         *bool
	Parse          string
	ReplyBroadcast *bool
	ThreadTS       float64
	UnfurlLinks    *bool
	UnfurlMedia    *bool
	Username       string
}

// PostMessage sends a message to a channel.
// https://api.slack.com/methods/chat.postMessage
func (c *Chat) PostMessage(ctx context.Context, channel, text string, opts *PostMessageOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("text", text)
	if opts != nil {
		if opts.AsUser != nil {
			p.SetBool("as_user", *opts.AsUser)
		}
		if opts.Attachments != nil {
			if err := p.SetJSON("attachments", opts.Attachments); err != nil {
				return nil, err
			}
		}
		if opts.Blocks != nil {
			if err := p.SetJSON("blocks", opts.Blocks); err != nil {
				return nil, err
			}
		}
		if opts.IconEmoji != "" {
			p.Set("icon_emoji", opts.IconEmoji)
		}
		if opts.IconURL != "" {
			p.Set("icon_url", opts.IconURL)
		}
		if opts.LinkNames != nil {
			p.SetBool("link_names", *opts.LinkNames)
		}
		if opts.Mrkdwn != nil {
			p.SetBool("mrkdwn", *opts.Mrkdwn)
		}
		if opts.Parse != "" {
			p.Set("parse", opts.Parse)
		}
		if opts.ReplyBroadcast != nil {
			p.SetBool("reply_broadcast", *opts.ReplyBroadcast)
		}
		if opts.ThreadTS != 0 {
			p.SetFloat("thread_ts", opts.ThreadTS)
		}
		if opts.UnfurlLinks != nil {
			p.SetBool("unfurl_links", *opts.UnfurlLinks)
		}
		if opts.UnfurlMedia != nil {
			p.SetBool("unfurl_media", *opts.UnfurlMedia)
		}
		if opts.Username != "" {
			p.Set("username", opts.Username)
		}
	}
	return c.client.Post(ctx, "chat.postMessage", p)
}

// ScheduleMessageOptions are the optional arguments for ScheduleMessage.
type ScheduleMessageOptions struct {
	AsUser         *bool
	Attachments    any
	Blocks         any
	LinkNames      *bool
	Parse          string
	ReplyBroadcast *bool
	ThreadTS       float64
	UnfurlLinks    *bool
	UnfurlMedia    *bool
}

// ScheduleMessage schedules a message to be sent to a channel.
// https://api.slack.com/methods/chat.scheduleMessage
func (c *Chat) ScheduleMessage(ctx context.Context, channel string, postAt int, text string, opts *ScheduleMessageOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetInt("post_at", postAt)
	p.Set("text", text)
	if opts != nil {
		if opts.AsUser != nil {
			p.SetBool("as_user", *opts.AsUser)
		}
		if opts.Attachments != nil {
			if err := p.SetJSON("attachments", opts.Attachments); err != nil {
				return nil, err
			}
		}
		if opts.Blocks != nil {
			if err := p.SetJSON("blocks", opts.Blocks); err != nil {
				return nil, err
			}
		}
		if opts.LinkNames != nil {
			p.SetBool("link_names", *opts.LinkNames)
		}
		if opts.Parse != "" {
			p.Set("parse", opts.Parse)
		}
		if opts.ReplyBroadcast != nil {
			p.SetBool("reply_broadcast", *opts.ReplyBroadcast)
		}
		if opts.ThreadTS != 0 {
			p.SetFloat("thread_ts", opts.ThreadTS)
		}
		if opts.UnfurlLinks != nil {
			p.SetBool("unfurl_links", *opts.UnfurlLinks)
		}
		if opts.UnfurlMedia != nil {
			p.SetBool("unfurl_media", *opts.UnfurlMedia)
		}
	}
	return c.client.Post(ctx, "chat.scheduleMessage", p)
}

// UnfurlOptions are the optional arguments for Unfurl.
type UnfurlOptions struct {
	UserAuthMessage  string
	UserAuthRequired *bool
	UserAuthURL      string
}

// Unfurl provides custom unfurl behavior for user-posted URLs. The unfurls
// argument maps URLs to their unfurl blocks.
// https://api.slack.com/methods/chat.unfurl
func (c *Chat) Unfurl(ctx context.Context, channel string, ts float64, unfurls any, opts *UnfurlOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetFloat("ts", ts)
	if err := p.SetJSON("unfurls", unfurls); err != nil {
		return nil, err
	}
	if opts != nil {
		if opts.UserAuthMessage != "" {
			p.Set("user_auth_message", opts.UserAuthMessage)
		}
		if opts.UserAuthRequired != nil {
			p.SetBool("user_auth_required", *opts.UserAuthRequired)
		}
		if opts.UserAuthURL != "" {
			p.Set("user_auth_url", opts.UserAuthURL)
		}
	}
	return c.client.Post(ctx, "chat.unfurl", p)
}

// UpdateOptions are the optional arguments for Update.
type UpdateOptions struct {
	AsUser      *bool
	Attachments any
	Blocks      any
	LinkNames   *bool
	Parse       string
	Text        string
}

// Update updates a message.
// https://api.slack.com/methods/chat.update
func (c *Chat) Update(ctx context.Context, channel string, ts float64, opts *UpdateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.SetFloat("ts", ts)
	if opts != nil {
		if opts.AsUser != nil {
			p.SetBool("as_user", *opts.AsUser)
		}
		if opts.Attachments != nil {
			if err := p.SetJSON("attachments", opts.Attachments); err != nil {
				return nil, err
			}
		}
		if opts.Blocks != nil {
			if err := p.SetJSON("blocks", opts.Blocks); err != nil {
				return nil, err
			}
		}
		if opts.LinkNames != nil {
			p.SetBool("link_names", *opts.LinkNames)
		}
		if opts.Parse != "" {
			p.Set("parse", opts.Parse)
		}
		if opts.Text != "" {
			p.Set("text", opts.Text)
		}
	}
	return c.client.Post(ctx, "chat.update", p)
}

// ScheduledMessages groups the chat.scheduledMessages.* methods.
type ScheduledMessages struct {
	client *core.Client
}

// ScheduledMessagesListOptions are the optional arguments for
// ScheduledMessages.List.
type ScheduledMessagesListOptions struct {
	Channel string
	Cursor  string
	Latest  int
	Limit   int
	Oldest  int
}

// List returns a list of scheduled messages.
// https://api.slack.com/methods/chat.scheduledMessages.list
func (s *ScheduledMessages) List(ctx context.Context, opts *ScheduledMessagesListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Channel != "" {
			p.Set("channel", opts.Channel)
		}
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Latest != 0 {
			p.SetInt("latest", opts.Latest)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Oldest != 0 {
			p.SetInt("oldest", opts.Oldest)
		}
	}
	return s.client.Post(ctx, "chat.scheduledMessages.list", p)
}
