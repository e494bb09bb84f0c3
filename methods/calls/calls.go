// Package calls implements the calls.* method grouping of the Slack Web
// API.
package calls

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Calls groups the calls.* methods.
type Calls struct {
	client *core.Client

	// Participants groups the calls.participants.* methods.
	Participants *Participants
}

// New returns the calls grouping backed by the given client.
func New(c *core.Client) *Calls {
	return &Calls{
		client:       c,
		Participants: &Participants{client: c},
	}
}

// AddOptions are the optional arguments for Add. Users is a structured
// list of call user objects (or a pre-encoded JSON string).
type AddOptions struct {
	CreatedBy         string
	DateStart         int
	DesktopAppJoinURL string
	ExternalDisplayID string
	Title             string
	Users             any
}

// Add registers a new Call.
// https://api.slack.com/methods/calls.add
func (c *Calls) Add(ctx context.Context, externalUniqueID, joinURL string, opts *AddOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("external_unique_id", externalUniqueID)
	p.Set("join_url", joinURL)
	if opts != nil {
		if opts.CreatedBy != "" {
			p.Set("created_by", opts.CreatedBy)
		}
		if opts.DateStart != 0 {
			p.SetInt("date_start", opts.DateStart)
		}
		if opts.DesktopAppJoinURL != "" {
			p.Set("desktop_app_join_url", opts.DesktopAppJoinURL)
		}
		if opts.ExternalDisplayID != "" {
			p.Set("external_display_id", opts.ExternalDisplayID)
		}
		if opts.Title != "" {
			p.Set("title", opts.Title)
		}
		if opts.Users != nil {
			if err := p.SetJSON("users", opts.Users); err != nil {
				return nil, err
			}
		}
	}
	return c.client.Post(ctx, "calls.add", p)
}

// EndOptions are the optional arguments for End.
type EndOptions struct {
	Duration int
}

// End ends a Call.
// https://api.slack.com/methods/calls.end
func (c *Calls) End(ctx context.Context, id string, opts *EndOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("id", id)
	if opts != nil {
		if opts.Duration != 0 {
			p.SetInt("duration", opts.Duration)
		}
	}
	return c.client.Post(ctx, "calls.end", p)
}

// Info returns information about a Call.
// https://api.slack.com/methods/calls.info
func (c *Calls) Info(ctx context.Context, id string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("id", id)
	return c.client.Post(ctx, "calls.info", p)
}

// UpdateOptions are the optional arguments for Update.
type UpdateOptions struct {
	DesktopAppJoinURL string
	JoinURL           string
	Title             string
}

// Update updates information about a Call.
// https://api.slack.com/methods/calls.update
func (c *Calls) Update(ctx context.Context, id string, opts *UpdateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("id", id)
	if opts != nil {
		if opts.DesktopAppJoinURL != "" {
			p.Set("desktop_app_join_url", opts.DesktopAppJoinURL)
		}
		if opts.JoinURL != "" {
			p.Set("join_url", opts.JoinURL)
		}
		if opts.Title != "" {
			p.Set("title", opts.Title)
		}
	}
	return c.client.Post(ctx, "calls.update", p)
}

// Participants groups the calls.participants.* methods.
type Participants struct {
	client *core.Client
}

// Add registers new participants added to a Call. The users argument is a
// structured list of call user objects (or a pre-encoded JSON string).
// https://api.slack.com/methods/calls.participants.add
func (p *Participants) Add(ctx context.Context, id string, users any) (*core.Envelope, error) {
	payload := core.Payload{}
	payload.Set("id", id)
	if err := payload.SetJSON("users", users); err != nil {
		return nil, err
	}
	return p.client.Post(ctx, "calls.participants.add", payload)
}

// Remove registers participants removed from a Call.
// https://api.slack.com/methods/calls.participants.remove
func (p *Participants) Remove(ctx context.Context, id string, users any) (*core.Envelope, error) {
	payload := core.Payload{}
	payload.Set("id", id)
	if err := payload.SetJSON("users", users); err != nil {
		return nil, err
	}
	return p.client.Post(ctx, "calls.participants.remove", payload)
}
