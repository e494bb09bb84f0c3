// Package apps implements the apps.* method grouping of the Slack Web API.
package apps

import (
	"context"
	"strings"

	"github.com/slacktime/slacktime-go/core"
)

// Apps groups the apps.* methods.
type Apps struct {
	client *core.Client

	// Permissions groups the apps.permissions.* methods.
	Permissions *Permissions
}

// New returns the apps grouping backed by the given client.
func New(c *core.Client) *Apps {
	return &Apps{
		client: c,
		Permissions: &Permissions{
			client:    c,
			Resources: &PermissionsResources{client: c},
			Scopes:    &PermissionsScopes{client: c},
			Users:     &PermissionsUsers{client: c},
		},
	}
}

// Uninstall uninstalls your app from a workspace.
// https://api.slack.com/methods/apps.uninstall
func (a *Apps) Uninstall(ctx context.Context, clientID, clientSecret string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("client_id", clientID)
	p.Set("client_secret", clientSecret)
	return a.client.Get(ctx, "apps.uninstall", p)
}

// Permissions groups the apps.permissions.* methods.
type Permissions struct {
	client *core.Client

	Resources *PermissionsResources
	Scopes    *PermissionsScopes
	Users     *PermissionsUsers
}

// Info returns the list of permissions this app has on a team.
// https://api.slack.com/methods/apps.permissions.info
func (p *Permissions) Info(ctx context.Context) (*core.Envelope, error) {
	return p.client.Get(ctx, "apps.permissions.info", core.Payload{})
}

// Request allows an app to request additional scopes.
// https://api.slack.com/methods/apps.permissions.request
func (p *Permissions) Request(ctx context.Context, scopes []string, triggerID string) (*core.Envelope, error) {
	payload := core.Payload{}
	payload.Set("scopes", strings.Join(scopes, ","))
	payload.Set("trigger_id", triggerID)
	return p.client.Get(ctx, "apps.permissions.request", payload)
}

// PermissionsResources groups the apps.permissions.resources.* methods.
type PermissionsResources struct {
	client *core.Client
}

// ResourcesListOptions are the optional arguments for
// PermissionsResources.List.
type ResourcesListOptions struct {
	Cursor string
	Limit  int
}

// List returns the list of resource grants this app has on a team.
// https://api.slack.com/methods/apps.permissions.resources.list
func (r *PermissionsResources) List(ctx context.Context, opts *ResourcesListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return r.client.Get(ctx, "apps.permissions.resources.list", p)
}

// PermissionsScopes groups the apps.permissions.scopes.* methods.
type PermissionsScopes struct {
	client *core.Client
}

// List returns the list of scopes this app has on a team.
// https://api.slack.com/methods/apps.permissions.scopes.list
func (s *PermissionsScopes) List(ctx context.Context) (*core.Envelope, error) {
	return s.client.Get(ctx, "apps.permissions.scopes.list", core.Payload{})
}

// PermissionsUsers groups the apps.permissions.users.* methods.
type PermissionsUsers struct {
	client *core.Client
}

// UsersListOptions are the optional arguments for PermissionsUsers.List.
type UsersListOptions struct {
	Cursor string
	Limit  int
}

// List returns the list of user grants and corresponding scopes this app
// has on a team.
// https://api.slack.com/methods/apps.permissions.users.list
func (u *PermissionsUsers) List(ctx context.Context, opts *UsersListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return u.client.Get(ctx, "apps.permissions.users.list", p)
}

// Request enables an app to trigger a permissions modal granting the app
// access to a user access scope.
// https://api.slack.com/methods/apps.permissions.users.request
func (u *PermissionsUsers) Request(ctx context.Context, scopes []string, triggerID, user string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("scopes", strings.Join(scopes, ","))
	p.Set("trigger_id", triggerID)
	p.Set("user", user)
	return u.client.Get(ctx, "apps.permissions.users.request", p)
}
