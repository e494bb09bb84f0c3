// Package slacktime is a Go client for the Slack Web API.
//
// Every API call returns a *core.Envelope carrying the HTTP status, the
// raw response bytes, and the decoded JSON body, and a failed Slack call
// (a response with "ok": false) surfaces as a *core.APIError that can be
// matched by error code with errors.Is.
//
// Construct a client with a token:
//
//	client := slacktime.New("xoxb-...")
//	env, err := client.Chat.PostMessage(ctx, "#general", "hello", nil)
//
// or from the SLACK_API_TOKEN environment variable:
//
//	client, err := slacktime.FromEnv()
package slacktime
