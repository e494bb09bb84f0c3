// Package pins implements the pins.* method grouping of the Slack Web API.
package pins

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Pins groups the pins.* methods.
type Pins struct {
	client *core.Client
}

// New returns the pins grouping backed by the given client.
func New(c *core.Client) *Pins {
	return &Pins{client: c}
}

// Add pins an item to a channel.
// https://api.slack.com/methods/pins.add
func (p *Pins) Add(ctx context.Context, channel string, timestamp float64) (*core.Envelope, error) {
	payload := core.Payload{}
	payload.Set("channel", channel)
	payload.SetFloat("timestamp", timestamp)
	return p.client.Post(ctx, "pins.add", payload)
}

// List lists items pinned to a channel.
// https://api.slack.com/methods/pins.list
func (p *Pins) List(ctx context.Context, channel string) (*core.Envelope, error) {
	payload := core.Payload{}
	payload.Set("channel", channel)
	return p.client.Get(ctx, "pins.list", payload)
}

// RemoveOptions are the optional arguments for Remove. Exactly one of
// File, FileComment, or Timestamp identifies the pinned item.
type RemoveOptions struct {
	File        string
	FileComment string
	Timestamp   float64
}

// Remove un-pins an item from a channel.
// https://api.slack.com/methods/pins.remove
func (p *Pins) Remove(ctx context.Context, channel string, opts *RemoveOptions) (*core.Envelope, error) {
	payload := core.Payload{}
	payload.Set("channel", channel)
	if opts != nil {
		if opts.File != "" {
			payload.Set("file", opts.File)
		}
		if opts.FileComment != "" {
			payload.Set("file_comment", opts.FileComment)
		}
		if opts.Timestamp != 0 {
			payload.SetFloat("timestamp", opts.Timestamp)
		}
	}
	return p.client.Post(ctx, "pins.remove", payload)
}
