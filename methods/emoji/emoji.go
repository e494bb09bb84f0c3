// Package emoji implements the emoji.* method grouping of the Slack Web
// API.
package emoji

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Emoji groups the emoji.* methods.
type Emoji struct {
	client *core.Client
}

// New returns the emoji grouping backed by the given client.
func New(c *core.Client) *Emoji {
	return &Emoji{client: c}
}

// List lists custom emoji for a team.
// https://api.slack.com/methods/emoji.list
func (e *Emoji) List(ctx context.Context) (*core.Envelope, error) {
	return e.client.Get(ctx, "emoji.list", core.Payload{})
}
