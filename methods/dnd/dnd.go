// Package dnd implements the dnd.* method grouping of the Slack Web API.
package dnd

import (
	"context"
	"strings"

	"github.com/slacktime/slacktime-go/core"
)

// DND groups the dnd.* (Do Not Disturb) methods.
type DND struct {
	client *core.Client
}

// New returns the dnd grouping backed by the given client.
func New(c *core.Client) *DND {
	return &DND{client: c}
}

// EndDnd ends the current user's Do Not Disturb session immediately.
// https://api.slack.com/methods/dnd.endDnd
func (d *DND) EndDnd(ctx context.Context) (*core.Envelope, error) {
	return d.client.Post(ctx, "dnd.endDnd", core.Payload{})
}

// EndSnooze ends the current user's snooze mode immediately.
// https://api.slack.com/methods/dnd.endSnooze
func (d *DND) EndSnooze(ctx context.Context) (*core.Envelope, error) {
	return d.client.Post(ctx, "dnd.endSnooze", core.Payload{})
}

// InfoOptions are the optional arguments for Info.
type InfoOptions struct {
	User string
}

// Info retrieves a user's current Do Not Disturb status.
// https://api.slack.com/methods/dnd.info
func (d *DND) Info(ctx context.Context, opts *InfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return d.client.Get(ctx, "dnd.info", p)
}

// SetSnooze turns on Do Not Disturb mode for the current user, or changes
// its duration.
// https://api.slack.com/methods/dnd.setSnooze
func (d *DND) SetSnooze(ctx context.Context, numMinutes int) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetInt("num_minutes", numMinutes)
	return d.client.Get(ctx, "dnd.setSnooze", p)
}

// TeamInfo retrieves the Do Not Disturb status for up to 50 users on a
// team.
// https://api.slack.com/methods/dnd.teamInfo
func (d *DND) TeamInfo(ctx context.Context, users []string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("users", strings.Join(users, ","))
	return d.client.Get(ctx, "dnd.teamInfo", p)
}
