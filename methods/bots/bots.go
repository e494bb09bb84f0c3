// Package bots implements the bots.* method grouping of the Slack Web API.
package bots

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Bots groups the bots.* methods.
type Bots struct {
	client *core.Client
}

// New returns the bots grouping backed by the given client.
func New(c *core.Client) *Bots {
	return &Bots{client: c}
}

// InfoOptions are the optional arguments for Info.
type InfoOptions struct {
	Bot string
}

// Info gets information about a bot user.
// https://api.slack.com/methods/bots.info
func (b *Bots) Info(ctx context.Context, opts *InfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Bot != "" {
			p.Set("bot", opts.Bot)
		}
	}
	return b.client.Get(ctx, "bots.info", p)
}
