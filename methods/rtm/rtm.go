// Package rtm implements the rtm.* method grouping of the Slack Web API.
//
// Both methods only negotiate a Real Time Messaging session: the returned
// envelope carries the websocket URL in its "url" field, and connecting to
// it is up to the caller.
package rtm

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// RTM groups the rtm.* methods.
type RTM struct {
	client *core.Client
}

// New returns the rtm grouping backed by the given client.
func New(c *core.Client) *RTM {
	return &RTM{client: c}
}

// ConnectOptions are the optional arguments for Connect.
type ConnectOptions struct {
	BatchPresenceAware int
	PresenceSub        *bool
}

// Connect starts a Real Time Messaging session.
// https://api.slack.com/methods/rtm.connect
func (r *RTM) Connect(ctx context.Context, opts *ConnectOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.BatchPresenceAware != 0 {
			p.SetInt("batch_presence_aware", opts.BatchPresenceAware)
		}
		if opts.PresenceSub != nil {
			p.SetBool("presence_sub", *opts.PresenceSub)
		}
	}
	return r.client.Get(ctx, "rtm.connect", p)
}

// StartOptions are the optional arguments for Start.
type StartOptions struct {
	BatchPresenceAware int
	IncludeLocale      *bool
	MpimAware          *bool
	NoLatest           int
	NoUnreads          *bool
	PresenceSub        *bool
	SimpleLatest       *bool
}

// Start starts a Real Time Messaging session and returns a snapshot of the
// team state alongside the connection URL.
// https://api.slack.com/methods/rtm.start
func (r *RTM) Start(ctx context.Context, opts *StartOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.BatchPresenceAware != 0 {
			p.SetInt("batch_presence_aware", opts.BatchPresenceAware)
		}
		if opts.IncludeLocale != nil {
			p.SetBool("include_locale", *opts.IncludeLocale)
		}
		if opts.MpimAware != nil {
			p.SetBool("mpim_aware", *opts.MpimAware)
		}
		if opts.NoLatest != 0 {
			p.SetInt("no_latest", opts.NoLatest)
		}
		if opts.NoUnreads != nil {
			p.SetBool("no_unreads", *opts.NoUnreads)
		}
		if opts.PresenceSub != nil {
			p.SetBool("presence_sub", *opts.PresenceSub)
		}
		if opts.SimpleLatest != nil {
			p.SetBool("simple_latest", *opts.SimpleLatest)
		}
	}
	return r.client.Get(ctx, "rtm.start", p)
}
