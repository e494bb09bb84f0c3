// Package dialog implements the dialog.* method grouping of the Slack Web
// API.
package dialog

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Dialog groups the dialog.* methods.
type Dialog struct {
	client *core.Client
}

// New returns the dialog grouping backed by the given client.
func New(c *core.Client) *Dialog {
	return &Dialog{client: c}
}

// Open opens a dialog with a user. The dialog argument is a structured
// value (map, struct, or pre-encoded JSON string) describing the dialog.
// https://api.slack.com/methods/dialog.open
func (d *Dialog) Open(ctx context.Context, dialog any, triggerID string) (*core.Envelope, error) {
	p := core.Payload{}
	if err := p.SetJSON("dialog", dialog); err != nil {
		return nil, err
	}
	p.Set("trigger_id", triggerID)
	return d.client.Post(ctx, "dialog.open", p)
}
