// Package usergroups implements the usergroups.* method grouping of the
// Slack Web API.
package usergroups

import (
	"context"
	"strings"

	"github.com/slacktime/slacktime-go/core"
)

// Usergroups groups the usergroups.* methods.
type Usergroups struct {
	client *core.Client

	// Users groups the usergroups.users.* methods.
	Users *Users
}

// New returns the usergroups grouping backed by the given client.
func New(c *core.Client) *Usergroups {
	return &Usergroups{
		client: c,
		Users:  &Users{client: c},
	}
}

// CreateOptions are the optional arguments for Create.
type CreateOptions struct {
	Channels     []string
	Description  string
	Handle       string
	IncludeCount *bool
}

// Create creates a User Group.
// https://api.slack.com/methods/usergroups.create
func (u *Usergroups) Create(ctx context.Context, name string, opts *CreateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("name", name)
	if opts != nil {
		p.SetCSV("channels", opts.Channels)
		if opts.Description != "" {
			p.Set("description", opts.Description)
		}
		if opts.Handle != "" {
			p.Set("handle", opts.Handle)
		}
		if opts.IncludeCount != nil {
			p.SetBool("include_count", *opts.IncludeCount)
		}
	}
	return u.client.Post(ctx, "usergroups.create", p)
}

// DisableOptions are the optional arguments for Disable.
type DisableOptions struct {
	IncludeCount *bool
}

// Disable disables an existing User Group.
// https://api.slack.com/methods/usergroups.disable
func (u *Usergroups) Disable(ctx context.Context, usergroup string, opts *DisableOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("usergroup", usergroup)
	if opts != nil {
		if opts.IncludeCount != nil {
			p.SetBool("include_count", *opts.IncludeCount)
		}
	}
	return u.client.Post(ctx, "usergroups.disable", p)
}

// EnableOptions are the optional arguments for Enable.
type EnableOptions struct {
	IncludeCount *bool
}

// Enable enables a User Group.
// https://api.slack.com/methods/usergroups.enable
func (u *Usergroups) Enable(ctx context.Context, usergroup string, opts *EnableOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("usergroup", usergroup)
	if opts != nil {
		if opts.IncludeCount != nil {
			p.SetBool("include_count", *opts.IncludeCount)
		}
	}
	return u.client.Post(ctx, "usergroups.enable", p)
}

// ListOptions are the optional arguments for List.
type ListOptions struct {
	IncludeCount    *bool
	IncludeDisabled *bool
	IncludeUsers    *bool
}

// List lists all User Groups for a team.
// https://api.slack.com/methods/usergroups.list
func (u *Usergroups) List(ctx context.Context, opts *ListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.IncludeCount != nil {
			p.SetBool("include_count", *opts.IncludeCount)
		}
		if opts.IncludeDisabled != nil {
			p.SetBool("include_disabled", *opts.IncludeDisabled)
		}
		if opts.IncludeUsers != nil {
			p.SetBool("include_users", *opts.IncludeUsers)
		}
	}
	return u.client.Get(ctx, "usergroups.list", p)
}

// UpdateOptions are the optional arguments for Update.
type UpdateOptions struct {
	Channels     []string
	Description  string
	Handle       string
	IncludeCount *bool
	Name         string
}

// Update updates an existing User Group.
// https://api.slack.com/methods/usergroups.update
func (u *Usergroups) Update(ctx context.Context, usergroup string, opts *UpdateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("usergroup", usergroup)
	if opts != nil {
		p.SetCSV("channels", opts.Channels)
		if opts.Description != "" {
			p.Set("description", opts.Description)
		}
		if opts.Handle != "" {
			p.Set("handle", opts.Handle)
		}
		if opts.IncludeCount != nil {
			p.SetBool("include_count", *opts.IncludeCount)
		}
		if opts.Name != "" {
			p.Set("name", opts.Name)
		}
	}
	return u.client.Post(ctx, "usergroups.update", p)
}

// Users groups the usergroups.users.* methods.
type Users struct {
	client *core.Client
}

// UsersListOptions are the optional arguments for Users.List.
type UsersListOptions struct {
	IncludeDisabled *bool
}

// List lists all users in a User Group.
// https://api.slack.com/methods/usergroups.users.list
func (u *Users) List(ctx context.Context, usergroup string, opts *UsersListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("usergroup", usergroup)
	if opts != nil {
		if opts.IncludeDisabled != nil {
			p.SetBool("include_disabled", *opts.IncludeDisabled)
		}
	}
	return u.client.Get(ctx, "usergroups.users.list", p)
}

// UsersUpdateOptions are the optional arguments for Users.Update.
type UsersUpdateOptions struct {
	IncludeCount *bool
}

// Update updates the list of users for a User Group.
// https://api.slack.com/methods/usergroups.users.update
func (u *Users) Update(ctx context.Context, usergroup string, users []string, opts *UsersUpdateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("usergroup", usergroup)
	p.Set("users", strings.Join(users, ","))
	if opts != nil {
		if opts.IncludeCount != nil {
			p.SetBool("include_count", *opts.IncludeCount)
		}
	}
	return u.client.Post(ctx, "usergroups.users.update", p)
}
