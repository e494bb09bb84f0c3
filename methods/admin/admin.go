// Package admin implements the admin.* method grouping of the Slack Web
// API: Enterprise Grid administration of apps, conversations, emoji,
// invite requests, teams, usergroups, and users.
package admin

import "github.com/slacktime/slacktime-go/core"

// Admin groups the admin.* methods.
type Admin struct {
	client *core.Client

	// Apps groups the admin.apps.* methods.
	Apps *Apps

	// Conversations groups the admin.conversations.* methods.
	Conversations *Conversations

	// Emoji groups the admin.emoji.* methods.
	Emoji *Emoji

	// InviteRequests groups the admin.inviteRequests.* methods.
	InviteRequests *InviteRequests

	// Teams groups the admin.teams.* methods.
	Teams *Teams

	// Usergroups groups the admin.usergroups.* methods.
	Usergroups *Usergroups

	// Users groups the admin.users.* methods.
	Users *Users
}

// New returns the admin grouping backed by the given client.
func New(c *core.Client) *Admin {
	return &Admin{
		client: c,
		Apps: &Apps{
			client:     c,
			Approved:   &AppsApproved{client: c},
			Requests:   &AppsRequests{client: c},
			Restricted: &AppsRestricted{client: c},
		},
		Conversations: &Conversations{
			client:         c,
			Ekm:            &ConversationsEkm{client: c},
			RestrictAccess: &ConversationsRestrictAccess{client: c},
		},
		Emoji: &Emoji{client: c},
		InviteRequests: &InviteRequests{
			client:   c,
			Approved: &InviteRequestsApproved{client: c},
			Denied:   &InviteRequestsDenied{client: c},
		},
		Teams: &Teams{
			client:   c,
			Admins:   &TeamsAdmins{client: c},
			Owners:   &TeamsOwners{client: c},
			Settings: &TeamsSettings{client: c},
		},
		Usergroups: &Usergroups{client: c},
		Users: &Users{
			client:  c,
			Session: &UsersSession{client: c},
		},
	}
}
