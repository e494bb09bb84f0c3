// Package users implements the users.* method grouping of the Slack Web
// API.
package users

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Users groups the users.* methods.
type Users struct {
	client *core.Client

	// Profile groups the users.profile.* methods.
	Profile *Profile
}

// New returns the users grouping backed by the given client.
func New(c *core.Client) *Users {
	return &Users{
		client:  c,
		Profile: &Profile{client: c},
	}
}

// ConversationsOptions are the optional arguments for Conversations.
type ConversationsOptions struct {
	Cursor          string
	ExcludeArchived *bool
	Limit           int
	Types           []string
	User            string
}

// Conversations lists conversations the calling user may access.
// https://api.slack.com/methods/users.conversations
func (u *Users) Conversations(ctx context.Context, opts *ConversationsOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.ExcludeArchived != nil {
			p.SetBool("exclude_archived", *opts.ExcludeArchived)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		p.SetCSV("types", opts.Types)
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return u.client.Get(ctx, "users.conversations", p)
}

// DeletePhoto deletes the user profile photo.
// https://api.slack.com/methods/users.deletePhoto
func (u *Users) DeletePhoto(ctx context.Context) (*core.Envelope, error) {
	return u.client.Get(ctx, "users.deletePhoto", core.Payload{})
}

// GetPresenceOptions are the optional arguments for GetPresence.
type GetPresenceOptions struct {
	User string
}

// GetPresence gets user presence information.
// https://api.slack.com/methods/users.getPresence
func (u *Users) GetPresence(ctx context.Context, opts *GetPresenceOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return u.client.Get(ctx, "users.getPresence", p)
}

// Identity gets a user's identity.
// https://api.slack.com/methods/users.identity
func (u *Users) Identity(ctx context.Context) (*core.Envelope, error) {
	return u.client.Get(ctx, "users.identity", core.Payload{})
}

// InfoOptions are the optional arguments for Info.
type InfoOptions struct {
	IncludeLocale *bool
}

// Info gets information about a user.
// https://api.slack.com/methods/users.info
func (u *Users) Info(ctx context.Context, user string, opts *InfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("user", user)
	if opts != nil {
		if opts.IncludeLocale != nil {
			p.SetBool("include_locale", *opts.IncludeLocale)
		}
	}
	return u.client.Get(ctx, "users.info", p)
}

// ListOptions are the optional arguments for List.
type ListOptions struct {
	Cursor        string
	IncludeLocale *bool
	Limit         int
}

// List lists all users in a Slack team.
// https://api.slack.com/methods/users.list
func (u *Users) List(ctx context.Context, opts *ListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.IncludeLocale != nil {
			p.SetBool("include_locale", *opts.IncludeLocale)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
	}
	return u.client.Get(ctx, "users.list", p)
}

// LookupByEmail finds a user with an email address.
// https://api.slack.com/methods/users.lookupByEmail
func (u *Users) LookupByEmail(ctx context.Context, email string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("email", email)
	return u.client.Get(ctx, "users.lookupByEmail", p)
}

// SetActive marks a user as active. Deprecated and non-functional.
// https://api.slack.com/methods/users.setActive
func (u *Users) SetActive(ctx context.Context) (*core.Envelope, error) {
	return u.client.Post(ctx, "users.setActive", core.Payload{})
}

// SetPhotoOptions are the optional arguments for SetPhoto. Image is a
// filesystem path or io.Reader for the photo to upload.
type SetPhotoOptions struct {
	CropW int
	CropX int
	CropY int
	Image any
}

// SetPhoto sets the user profile photo.
// https://api.slack.com/methods/users.setPhoto
func (u *Users) SetPhoto(ctx context.Context, opts *SetPhotoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	var uploads []core.FileUpload
	if opts != nil {
		if opts.CropW != 0 {
			p.SetInt("crop_w", opts.CropW)
		}
		if opts.CropX != 0 {
			p.SetInt("crop_x", opts.CropX)
		}
		if opts.CropY != 0 {
			p.SetInt("crop_y", opts.CropY)
		}
		if opts.Image != nil {
			r, err := core.MakeFile(opts.Image)
			if err != nil {
				return nil, err
			}
			uploads = append(uploads, core.FileUpload{Field: "image", Reader: r})
		}
	}
	if len(uploads) > 0 {
		return u.client.PostMultipart(ctx, "users.setPhoto", p, uploads...)
	}
	return u.client.Post(ctx, "users.setPhoto", p)
}

// SetPresence manually sets user presence to "auto" or "away".
// https://api.slack.com/methods/users.setPresence
func (u *Users) SetPresence(ctx context.Context, presence string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("presence", presence)
	return u.client.Post(ctx, "users.setPresence", p)
}

// Profile groups the users.profile.* methods.
type Profile struct {
	client *core.Client
}

// ProfileGetOptions are the optional arguments for Profile.Get.
type ProfileGetOptions struct {
	IncludeLabels *bool
	User          string
}

// Get retrieves a user's profile information.
// https://api.slack.com/methods/users.profile.get
func (p *Profile) Get(ctx context.Context, opts *ProfileGetOptions) (*core.Envelope, error) {
	payload := core.Payload{}
	if opts != nil {
		if opts.IncludeLabels != nil {
			payload.SetBool("include_labels", *opts.IncludeLabels)
		}
		if opts.User != "" {
			payload.Set("user", opts.User)
		}
	}
	return p.client.Get(ctx, "users.profile.get", payload)
}

// ProfileSetOptions are the optional arguments for Profile.Set. Profile is
// a structured map of field names to values (or a pre-encoded JSON
// string); Name and Value set a single field instead.
type ProfileSetOptions struct {
	Name    string
	Profile any
	User    string
	Value   string
}

// Set sets the profile information for a user.
// https://api.slack.com/methods/users.profile.set
func (p *Profile) Set(ctx context.Context, opts *ProfileSetOptions) (*core.Envelope, error) {
	payload := core.Payload{}
	if opts != nil {
		if opts.Name != "" {
			payload.Set("name", opts.Name)
		}
		if opts.Profile != nil {
			if err := payload.SetJSON("profile", opts.Profile); err != nil {
				return nil, err
			}
		}
		if opts.User != "" {
			payload.Set("user", opts.User)
		}
		if opts.Value != "" {
			payload.Set("value", opts.Value)
		}
	}
	return p.client.Post(ctx, "users.profile.set", payload)
}
