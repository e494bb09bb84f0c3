// Package core implements the envelope machinery shared by every Slack Web
// API method: payload assembly, HTTP dispatch, response decoration, and
// error synthesis from server-reported error codes.
//
// All endpoint methods in the methods package funnel through Client.Get,
// Client.Post, or Client.PostMultipart. Each call is stateless
// request/response; the only state a Client holds is the immutable
// configuration captured at construction, so a Client is safe for
// concurrent use.
package core
