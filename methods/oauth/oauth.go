// Package oauth implements the oauth.* method grouping of the Slack Web
// API.
package oauth

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// OAuth groups the oauth.* methods.
type OAuth struct {
	client *core.Client

	// V2 groups the oauth.v2.* methods.
	V2 *V2
}

// New returns the oauth grouping backed by the given client.
func New(c *core.Client) *OAuth {
	return &OAuth{
		client: c,
		V2:     &V2{client: c},
	}
}

// AccessOptions are the optional arguments for Access.
type AccessOptions struct {
	ClientID      string
	ClientSecret  string
	Code          string
	RedirectURI   string
	SingleChannel *bool
}

// Access exchanges a temporary OAuth verifier code for an access token.
// https://api.slack.com/methods/oauth.access
func (o *OAuth) Access(ctx context.Context, opts *AccessOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.ClientID != "" {
			p.Set("client_id", opts.ClientID)
		}
		if opts.ClientSecret != "" {
			p.Set("client_secret", opts.ClientSecret)
		}
		if opts.Code != "" {
			p.Set("code", opts.Code)
		}
		if opts.RedirectURI != "" {
			p.Set("redirect_uri", opts.RedirectURI)
		}
		if opts.SingleChannel != nil {
			p.SetBool("single_channel", *opts.SingleChannel)
		}
	}
	return o.client.Post(ctx, "oauth.access", p)
}

// TokenOptions are the optional arguments for Token.
type TokenOptions struct {
	RedirectURI   string
	SingleChannel *bool
}

// Token exchanges a temporary OAuth verifier code for a workspace token.
// https://api.slack.com/methods/oauth.token
func (o *OAuth) Token(ctx context.Context, clientID, clientSecret, code string, opts *TokenOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("client_id", clientID)
	p.Set("client_secret", clientSecret)
	p.Set("code", code)
	if opts != nil {
		if opts.RedirectURI != "" {
			p.Set("redirect_uri", opts.RedirectURI)
		}
		if opts.SingleChannel != nil {
			p.SetBool("single_channel", *opts.SingleChannel)
		}
	}
	return o.client.Post(ctx, "oauth.token", p)
}

// V2 groups the oauth.v2.* methods.
type V2 struct {
	client *core.Client
}

// V2AccessOptions are the optional arguments for V2.Access.
type V2AccessOptions struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Access exchanges a temporary OAuth verifier code for an access token.
// https://api.slack.com/methods/oauth.v2.access
func (v *V2) Access(ctx context.Context, code string, opts *V2AccessOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("code", code)
	if opts != nil {
		if opts.ClientID != "" {
			p.Set("client_id", opts.ClientID)
		}
		if opts.ClientSecret != "" {
			p.Set("client_secret", opts.ClientSecret)
		}
		if opts.RedirectURI != "" {
			p.Set("redirect_uri", opts.RedirectURI)
		}
	}
	return v.client.Post(ctx, "oauth.v2.access", p)
}
