// Package reactions implements the reactions.* method grouping of the
// Slack Web API.
package reactions

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Reactions groups the reactions.* methods.
type Reactions struct {
	client *core.Client
}

// New returns the reactions grouping backed by the given client.
func New(c *core.Client) *Reactions {
	return &Reactions{client: c}
}

// Add adds a reaction to an item.
// https://api.slack.com/methods/reactions.add
func (r *Reactions) Add(ctx context.Context, channel, name string, timestamp float64) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("channel", channel)
	p.Set("name", name)
	p.SetFloat("timestamp", timestamp)
	return r.client.Post(ctx, "reactions.add", p)
}

// GetOptions are the optional arguments for Get.
type GetOptions struct {
	Channel     string
	File        string
	FileComment string
	Full        *bool
	Timestamp   float64
}

// Get gets reactions for an item.
// https://api.slack.com/methods/reactions.get
func (r *Reactions) Get(ctx context.Context, opts *GetOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Channel != "" {
			p.Set("channel", opts.Channel)
		}
		if opts.File != "" {
			p.Set("file", opts.File)
		}
		if opts.FileComment != "" {
			p.Set("file_comment", opts.FileComment)
		}
		if opts.Full != nil {
			p.SetBool("full", *opts.Full)
		}
		if opts.Timestamp != 0 {
			p.SetFloat("timestamp", opts.Timestamp)
		}
	}
	return r.client.Get(ctx, "reactions.get", p)
}

// ListOptions are the optional arguments for List.
type ListOptions struct {
	Count  int
	Cursor string
	Full   *bool
	Limit  int
	Page   int
	User   string
}

// List lists reactions made by a user.
// https://api.slack.com/methods/reactions.list
func (r *Reactions) List(ctx context.Context, opts *ListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Full != nil {
			p.SetBool("full", *opts.Full)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return r.client.Get(ctx, "reactions.list", p)
}

// RemoveOptions are the optional arguments for Remove. Exactly one of
// Channel+Timestamp, File, or FileComment identifies the reacted item.
type RemoveOptions struct {
	Channel     string
	File        string
	FileComment string
	Timestamp   float64
}

// Remove removes a reaction from an item.
// https://api.slack.com/methods/reactions.remove
func (r *Reactions) Remove(ctx context.Context, name string, opts *RemoveOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	if opts != nil {
		if opts.Channel != "" {
			p.Set("channel", opts.Channel)
		}
		if opts.File != "" {
			p.Set("file", opts.File)
		}
		if opts.FileComment != "" {
			p.Set("file_comment", opts.FileComment)
		}
		if opts.Timestamp != 0 {
			p.SetFloat("timestamp", opts.Timestamp)
		}
	}
	return r.client.Post(ctx, "reactions.remove", p)
}
