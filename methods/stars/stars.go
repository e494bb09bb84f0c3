// Package stars implements the stars.* method grouping of the Slack Web
// API.
package stars

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Stars groups the stars.* methods.
type Stars struct {
	client *core.Client
}

// New returns the stars grouping backed by the given client.
func New(c *core.Client) *Stars {
	return &Stars{client: c}
}

// ItemOptions identify a starrable item for Add and Remove. Exactly one of
// Channel+Timestamp, File, or FileComment should be set.
type ItemOptions struct {
	Channel     string
	File        string
	FileComment string
	Timestamp   float64
}

func itemPayload(opts *ItemOptions) core.Payload {
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
		if opts.Timestamp != 0 {
			p.SetFloat("timestamp", opts.Timestamp)
		}
	}
	return p
}

// Add adds a star to an item.
// https://api.slack.com/methods/stars.add
func (s *Stars) Add(ctx context.Context, opts *ItemOptions) (*core.Envelope, error) {
	return s.client.Post(ctx, "stars.add", itemPayload(opts))
}

// ListOptions are the optional arguments for List.
type ListOptions struct {
	Count  int
	Cursor string
	Limit  int
	Page   int
}

// List lists stars for a user.
// https://api.slack.com/methods/stars.list
func (s *Stars) List(ctx context.Context, opts *ListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
	}
	return s.client.Get(ctx, "stars.list", p)
}

// Remove removes a star from an item.
// https://api.slack.com/methods/stars.remove
func (s *Stars) Remove(ctx context.Context, opts *ItemOptions) (*core.Envelope, error) {
	return s.client.Post(ctx, "stars.remove", itemPayload(opts))
}
