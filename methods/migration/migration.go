// Package migration implements the migration.* method grouping of the
// Slack Web API.
package migration

import (
	"context"
	"strings"

	"github.com/slacktime/slacktime-go/core"
)

// Migration groups the migration.* methods.
type Migration struct {
	client *core.Client
}

// New returns the migration grouping backed by the given client.
func New(c *core.Client) *Migration {
	return &Migration{client: c}
}

// ExchangeOptions are the optional arguments for Exchange.
type ExchangeOptions struct {
	// ToOld maps global user IDs back to workspace-local ones.
	ToOld *bool
}

// Exchange maps local user IDs to global user IDs for Enterprise Grid
// workspaces.
// https://api.slack.com/methods/migration.exchange
func (m *Migration) Exchange(ctx context.Context, users []string, opts *ExchangeOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("users", strings.Join(users, ","))
	if opts != nil {
		if opts.ToOld != nil {
			p.SetBool("to_old", *opts.ToOld)
		}
	}
	return m.client.Get(ctx, "migration.exchange", p)
}
