// Package auth implements the auth.* method grouping of the Slack Web API.
package auth

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Auth groups the auth.* methods.
type Auth struct {
	client *core.Client
}

// New returns the auth grouping backed by the given client.
func New(c *core.Client) *Auth {
	return &Auth{client: c}
}

// RevokeOptions are the optional arguments for Revoke.
type RevokeOptions struct {
	// Test, when set, runs the revocation without actually revoking.
	Test *bool
}

// Revoke revokes a token.
// https://api.slack.com/methods/auth.revoke
func (a *Auth) Revoke(ctx context.Context, opts *RevokeOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Test != nil {
			p.SetBool("test", *opts.Test)
		}
	}
	return a.client.Get(ctx, "auth.revoke", p)
}

// Test checks authentication and identity.
// https://api.slack.com/methods/auth.test
func (a *Auth) Test(ctx context.Context) (*core.Envelope, error) {
	return a.client.Post(ctx, "auth.test", core.Payload{})
}
