package admin

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Users groups the admin.users.* methods.
type Users struct {
	client *core.Client

	// Session groups the admin.users.session.* methods.
	Session *UsersSession
}

// AssignOptions are the optional arguments for Assign.
type AssignOptions struct {
	ChannelIDs        []string
	IsRestricted      *bool
	IsUltraRestricted *bool
}

// Assign adds an Enterprise user to a workspace.
// https://api.slack.com/methods/admin.users.assign
func (u *Users) Assign(ctx context.Context, teamID, userID string, opts *AssignOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	p.Set("user_id", userID)
	if opts != nil {
		p.SetCSV("channel_ids", opts.ChannelIDs)
		if opts.IsRestricted != nil {
			p.SetBool("is_restricted", *opts.IsRestricted)
		}
		if opts.IsUltraRestricted != nil {
			p.SetBool("is_ultra_restricted", *opts.IsUltraRestricted)
		}
	}
	return u.client.Post(ctx, "admin.users.assign", p)
}

// UsersInviteOptions are the optional arguments for Users.Invite.
type UsersInviteOptions struct {
	CustomMessage     string
	GuestExpirationTS float64
	IsRestricted      *bool
	IsUltraRestricted *bool
	RealName          string
	Resend            *bool
}

// Invite invites a user to a workspace.
// https://api.slack.com/methods/admin.users.invite
func (u *Users) Invite(ctx context.Context, channelIDs []string, email, teamID string, opts *UsersInviteOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetCSV("channel_ids", channelIDs)
	p.Set("email", email)
	p.Set("team_id", teamID)
	if opts != nil {
		if opts.CustomMessage != "" {
			p.Set("custom_message", opts.CustomMessage)
		}
		if opts.GuestExpirationTS != 0 {
			p.SetFloat("guest_expiration_ts", opts.GuestExpirationTS)
		}
		if opts.IsRestricted != nil {
			p.SetBool("is_restricted", *opts.IsRestricted)
		}
		if opts.IsUltraRestricted != nil {
			p.SetBool("is_ultra_restricted", *opts.IsUltraRestricted)
		}
		if opts.RealName != "" {
			p.Set("real_name", opts.RealName)
		}
		if opts.Resend != nil {
			p.SetBool("resend", *opts.Resend)
		}
	}
	return u.client.Post(ctx, "admin.users.invite", p)
}

// UsersListOptions are the optional arguments for Users.List.
type UsersListOptions struct {
	Cursor string
	Limit  int
}

// List lists users on a workspace.
// https://api.slack.com/methods/admin.users.list
func (u *Users) List(ctx context.Context, teamID string, opts *UsersListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return u.client.Post(ctx, "admin.users.list", p)
}

// Remove removes a user from a workspace.
// https://api.slack.com/methods/admin.users.remove
func (u *Users) Remove(ctx context.Context, teamID, userID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	p.Set("user_id", userID)
	return u.client.Post(ctx, "admin.users.remove", p)
}

// SetAdmin sets an existing guest, regular user, or owner to be an admin
// user.
// https://api.slack.com/methods/admin.users.setAdmin
func (u *Users) SetAdmin(ctx context.Context, teamID, userID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	p.Set("user_id", userID)
	return u.client.Post(ctx, "admin.users.setAdmin", p)
}

// SetExpiration sets an expiration for a guest user.
// https://api.slack.com/methods/admin.users.setExpiration
func (u *Users) SetExpiration(ctx context.Context, expirationTS int, teamID, userID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetInt("expiration_ts", expirationTS)
	p.Set("team_id", teamID)
	p.Set("user_id", userID)
	return u.client.Post(ctx, "admin.users.setExpiration", p)
}

// SetOwner sets an existing guest, regular user, or admin user to be a
// workspace owner.
// https://api.slack.com/methods/admin.users.setOwner
func (u *Users) SetOwner(ctx context.Context, teamID, userID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	p.Set("user_id", userID)
	return u.client.Post(ctx, "admin.users.setOwner", p)
}

// SetRegular sets an existing guest user, admin user, or owner to be a
// regular user.
// https://api.slack.com/methods/admin.users.setRegular
func (u *Users) SetRegular(ctx context.Context, teamID, userID string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("team_id", teamID)
	p.Set("user_id", userID)
	return u.client.Post(ctx, "admin.users.setRegular", p)
}

// UsersSession groups the admin.users.session.* methods.
type UsersSession struct {
	client *core.Client
}

// SessionResetOptions are the optional arguments for Session.Reset.
type SessionResetOptions struct {
	MobileOnly *bool
	WebOnly    *bool
}

// Reset wipes all valid sessions on all devices for a given user.
// https://api.slack.com/methods/admin.users.session.reset
func (s *UsersSession) Reset(ctx context.Context, userID string, opts *SessionResetOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("user_id", userID)
	if opts != nil {
		if opts.MobileOnly != nil {
			p.SetBool("mobile_only", *opts.MobileOnly)
		}
		if opts.WebOnly != nil {
			p.SetBool("web_only", *opts.WebOnly)
		}
	}
	return s.client.Post(ctx, "admin.users.session.reset", p)
}
