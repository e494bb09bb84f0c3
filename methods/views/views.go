// Package views implements the views.* method grouping of the Slack Web
// API. View arguments are structured values (maps, structs, or pre-encoded
// JSON strings) in the Block Kit view format.
package views

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Views groups the views.* methods.
type Views struct {
	client *core.Client
}

// New returns the views grouping backed by the given client.
func New(c *core.Client) *Views {
	return &Views{client: c}
}

// Open opens a view for a user.
// https://api.slack.com/methods/views.open
func (v *Views) Open(ctx context.Context, triggerID string, view any) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("trigger_id", triggerID)
	if err := p.SetJSON("view", view); err != nil {
		return nil, err
	}
	return v.client.Post(ctx, "views.open", p)
}

// PublishOptions are the optional arguments for Publish.
type PublishOptions struct {
	Hash string
}

// Publish publishes a static view for a user.
// https://api.slack.com/methods/views.publish
func (v *Views) Publish(ctx context.Context, userID string, view any, opts *PublishOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("user_id", userID)
	if err := p.SetJSON("view", view); err != nil {
		return nil, err
	}
	if opts != nil {
		if opts.Hash != "" {
			p.Set("hash", opts.Hash)
		}
	}
	return v.client.Post(ctx, "views.publish", p)
}

// Push pushes a view onto the stack of a root view.
// https://api.slack.com/methods/views.push
func (v *Views) Push(ctx context.Context, triggerID string, view any) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("trigger_id", triggerID)
	if err := p.SetJSON("view", view); err != nil {
		return nil, err
	}
	return v.client.Post(ctx, "views.push", p)
}

// UpdateOptions are the optional arguments for Update. One of ExternalID
// or ViewID identifies the view to update.
type UpdateOptions struct {
	ExternalID string
	Hash       string
	ViewID     string
}

// Update updates an existing view.
// https://api.slack.com/methods/views.update
func (v *Views) Update(ctx context.Context, view any, opts *UpdateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if err := p.SetJSON("view", view); err != nil {
		return nil, err
	}
	if opts != nil {
		if opts.ExternalID != "" {
			p.Set("external_id", opts.ExternalID)
		}
		if opts.Hash != "" {
			p.Set("hash", opts.Hash)
		}
		if opts.ViewID != "" {
			p.Set("view_id", opts.ViewID)
		}
	}
	return v.client.Post(ctx, "views.update", p)
}
