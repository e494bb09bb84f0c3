// Package reminders implements the reminders.* method grouping of the
// Slack Web API.
package reminders

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Reminders groups the reminders.* methods.
type Reminders struct {
	client *core.Client
}

// New returns the reminders grouping backed by the given client.
func New(c *core.Client) *Reminders {
	return &Reminders{client: c}
}

// AddOptions are the optional arguments for Add.
type AddOptions struct {
	User string
}

// Add creates a reminder. The time argument is a Unix timestamp.
// https://api.slack.com/methods/reminders.add
func (r *Reminders) Add(ctx context.Context, text string, time int, opts *AddOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("text", text)
	p.SetInt("time", time)
	if opts != nil {
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return r.client.Post(ctx, "reminders.add", p)
}

// Complete marks a reminder as complete.
// https://api.slack.com/methods/reminders.complete
func (r *Reminders) Complete(ctx context.Context, reminder string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("reminder", reminder)
	return r.client.Post(ctx, "reminders.complete", p)
}

// Delete deletes a reminder.
// https://api.slack.com/methods/reminders.delete
func (r *Reminders) Delete(ctx context.Context, reminder string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("reminder", reminder)
	return r.client.Post(ctx, "reminders.delete", p)
}

// Info gets information about a reminder.
// https://api.slack.com/methods/reminders.info
func (r *Reminders) Info(ctx context.Context, reminder string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("reminder", reminder)
	return r.client.Get(ctx, "reminders.info", p)
}

// List lists all reminders created by or for a given user.
// https://api.slack.com/methods/reminders.list
func (r *Reminders) List(ctx context.Context) (*core.Envelope, error) {
	return r.client.Get(ctx, "reminders.list", core.Payload{})
}
