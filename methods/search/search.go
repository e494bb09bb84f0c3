// Package search implements the search.* method grouping of the Slack Web
// API.
package search

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Search groups the search.* methods.
type Search struct {
	client *core.Client
}

// New returns the search grouping backed by the given client.
func New(c *core.Client) *Search {
	return &Search{client: c}
}

// Options are the optional arguments shared by All, Files, and Messages.
type Options struct {
	Count     int
	Highlight *bool
	Page      int
	Sort      string
	SortDir   string
}

func payload(query string, opts *Options) core.Payload {
	p := core.Payload{}
	p.Set("query", query)
	if opts != nil {
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Highlight != nil {
			p.SetBool("highlight", *opts.Highlight)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
		if opts.Sort != "" {
			p.Set("sort", opts.Sort)
		}
		if opts.SortDir != "" {
			p.Set("sort_dir", opts.SortDir)
		}
	}
	return p
}

// All searches for messages and files matching a query.
// https://api.slack.com/methods/search.all
func (s *Search) All(ctx context.Context, query string, opts *Options) (*core.Envelope, error) {
	return s.client.Get(ctx, "search.all", payload(query, opts))
}

// Files searches for files matching a query.
// https://api.slack.com/methods/search.files
func (s *Search) Files(ctx context.Context, query string, opts *Options) (*core.Envelope, error) {
	return s.client.Get(ctx, "search.files", payload(query, opts))
}

// Messages searches for messages matching a query.
// https://api.slack.com/methods/search.messages
func (s *Search) Messages(ctx context.Context, query string, opts *Options) (*core.Envelope, error) {
	return s.client.Get(ctx, "search.messages", payload(query, opts))
}
