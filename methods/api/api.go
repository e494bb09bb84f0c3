// Package api implements the api.* method grouping of the Slack Web API.
package api

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// API groups the api.* methods.
type API struct {
	client *core.Client
}

// New returns the api grouping backed by the given client.
func New(c *core.Client) *API {
	return &API{client: c}
}

// TestOptions are the optional arguments for Test.
type TestOptions struct {
	// Error, when set, instructs the server to respond with that error.
	Error string

	// Foo is an example property echoed back by the server.
	Foo string
}

// Test checks API calling code.
// https://api.slack.com/methods/api.test
func (a *API) Test(ctx context.Context, opts *TestOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Error != "" {
			p.Set("error", opts.Error)
		}
		if opts.Foo != "" {
			p.Set("foo", opts.Foo)
		}
	}
	return a.client.Post(ctx, "api.test", p)
}
