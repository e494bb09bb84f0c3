package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Emoji groups the admin.emoji.* methods.
type Emoji struct {
	client *core.Client
}

// Add adds an emoji.
// https://api.slack.com/methods/admin.emoji.add
func (e *Emoji) Add(ctx context.Context, name, url string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	p.Set("url", url)
	return e.client.Get(ctx, "admin.emoji.add", p)
}

// AddAlias adds an emoji alias.
// https://api.slack.com/methods/admin.emoji.addAlias
func (e *Emoji) AddAlias(ctx context.Context, aliasFor, name string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("alias_for", aliasFor)
	p.Set("name", name)
	return e.client.Get(ctx, "admin.emoji.addAlias", p)
}

// EmojiListOptions are the optional arguments for Emoji.List.
type EmojiListOptions struct {
	Cursor string
	Limit  int
}

// List lists emoji for an Enterprise Grid organization.
// https://api.slack.com/methods/admin.emoji.list
func (e *Emoji) List(ctx context.Context, opts *EmojiListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return e.client.Get(ctx, "admin.emoji.list", p)
}

// Remove removes an emoji across an Enterprise Grid organization.
// https://api.slack.com/methods/admin.emoji.remove
func (e *Emoji) Remove(ctx context.Context, name string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	return e.client.Get(ctx, "admin.emoji.remove", p)
}

// Rename renames an emoji.
// https://api.slack.com/methods/admin.emoji.rename
func (e *Emoji) Rename(ctx context.Context, name, newName string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	p.Set("new_name", newName)
	return e.client.Get(ctx, "admin.emoji.rename", p)
}
