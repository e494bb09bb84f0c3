// Package files implements the files.* method grouping of the Slack Web
// API, including the multipart upload paths. File-valued arguments accept
// either a filesystem path string or an io.Reader; stream lifetime stays
// with the caller.
package files

import (
	"context"

	"github.com/slacktime/slacktime-go/core"
)

// Files groups the files.* methods.
type Files struct {
	client *core.Client

	// Comments groups the files.comments.* methods.
	Comments *Comments

	// Remote groups the files.remote.* methods.
	Remote *Remote
}

// New returns the files grouping backed by the given client.
func New(c *core.Client) *Files {
	return &Files{
		client:   c,
		Comments: &Comments{client: c},
		Remote:   &Remote{client: c},
	}
}

// Delete deletes a file.
// https://api.slack.com/methods/files.delete
func (f *Files) Delete(ctx context.Context, file string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("file", file)
	return f.client.Post(ctx, "files.delete", p)
}

// InfoOptions are the optional arguments for Info.
type InfoOptions struct {
	Count  int
	Cursor string
	Limit  int
	Page   int
}

// Info gets information about a file.
// https://api.slack.com/methods/files.info
func (f *Files) Info(ctx context.Context, file string, opts *InfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("file", file)
	if opts != nil {
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
	}
	return f.client.Get(ctx, "files.info", p)
}

// ListOptions are the optional arguments for List.
type ListOptions struct {
	Channel                string
	Count                  int
	Page                   int
	ShowFilesHiddenByLimit *bool
	TsFrom                 int
	TsTo                   int
	Types                  []string
	User                   string
}

// List lists files for a team, in a channel, or from a user with applied
// filters.
// https://api.slack.com/methods/files.list
func (f *Files) List(ctx context.Context, opts *ListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Channel != "" {
			p.Set("channel", opts.Channel)
		}
		if opts.Count != 0 {
			p.SetInt("count", opts.Count)
		}
		if opts.Page != 0 {
			p.SetInt("page", opts.Page)
		}
		if opts.ShowFilesHiddenByLimit != nil {
			p.SetBool("show_files_hidden_by_limit", *opts.ShowFilesHiddenByLimit)
		}
		if opts.TsFrom != 0 {
			p.SetInt("ts_from", opts.TsFrom)
		}
		if opts.TsTo != 0 {
			p.SetInt("ts_to", opts.TsTo)
		}
		p.SetCSV("types", opts.Types)
		if opts.User != "" {
			p.Set("user", opts.User)
		}
	}
	return f.client.Get(ctx, "files.list", p)
}

// RevokePublicURL revokes public/external sharing access for a file.
// https://api.slack.com/methods/files.revokePublicURL
func (f *Files) RevokePublicURL(ctx context.Context, file string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("file", file)
	return f.client.Post(ctx, "files.revokePublicURL", p)
}

// SharedPublicURL enables a file for public/external sharing.
// https://api.slack.com/methods/files.sharedPublicURL
func (f *Files) SharedPublicURL(ctx context.Context, file string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("file", file)
	return f.client.Post(ctx, "files.sharedPublicURL", p)
}

// UploadOptions are the arguments for Upload; every field is optional but
// one of Content or File supplies the bytes. File is a filesystem path or
// io.Reader submitted as a multipart part; Content is the literal file
// contents sent as a form field.
type UploadOptions struct {
	Channels       []string
	Content        string
	File           any
	Filename       string
	Filetype       string
	InitialComment string
	ThreadTS       float64
	Title          string
}

// Upload uploads or creates a file.
// https://api.slack.com/methods/files.upload
func (f *Files) Upload(ctx context.Context, opts *UploadOptions) (*core.Envelope, error) {
	p := core.Payload{}
	var uploads []core.FileUpload
	if opts != nil {
		p.SetCSV("channels", opts.Channels)
		if opts.Content != "" {
			p.Set("content", opts.Content)
		}
		if opts.File != nil {
			r, err := core.MakeFile(opts.File)
			if err != nil {
				return nil, err
			}
			uploads = append(uploads, core.FileUpload{Field: "file", Filename: opts.Filename, Reader: r})
		}
		if opts.Filename != "" {
			p.Set("filename", opts.Filename)
		}
		if opts.Filetype != "" {
			p.Set("filetype", opts.Filetype)
		}
		if opts.InitialComment != "" {
			p.Set("initial_comment", opts.InitialComment)
		}
		if opts.ThreadTS != 0 {
			p.SetFloat("thread_ts", opts.ThreadTS)
		}
		if opts.Title != "" {
			p.Set("title", opts.Title)
		}
	}
	if len(uploads) > 0 {
		return f.client.PostMultipart(ctx, "files.upload", p, uploads...)
	}
	return f.client.Post(ctx, "files.upload", p)
}

// Comments groups the files.comments.* methods.
type Comments struct {
	client *core.Client
}

// Delete deletes an existing comment on a file.
// https://api.slack.com/methods/files.comments.delete
func (c *Comments) Delete(ctx context.Context, file, id string) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("file", file)
	p.Set("id", id)
	return c.client.Post(ctx, "files.comments.delete", p)
}

// Remote groups the files.remote.* methods.
type Remote struct {
	client *core.Client
}

// RemoteAddOptions are the optional arguments for Remote.Add.
// IndexableFileContents and PreviewImage are filesystem paths or
// io.Readers; supplying either switches the call to a multipart POST.
type RemoteAddOptions struct {
	Filetype              string
	IndexableFileContents any
	PreviewImage          any
}

// Add adds a file from a remote service.
// https://api.slack.com/methods/files.remote.add
func (r *Remote) Add(ctx context.Context, externalID, externalURL, title string, opts *RemoteAddOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.Set("external_id", externalID)
	p.Set("external_url", externalURL)
	p.Set("title", title)
	var uploads []core.FileUpload
	if opts != nil {
		if opts.Filetype != "" {
			p.Set("filetype", opts.Filetype)
		}
		var err error
		uploads, err = remoteUploads(opts.IndexableFileContents, opts.PreviewImage)
		if err != nil {
			return nil, err
		}
	}
	if len(uploads) > 0 {
		return r.client.PostMultipart(ctx, "files.remote.add", p, uploads...)
	}
	return r.client.Get(ctx, "files.remote.add", p)
}

// RemoteInfoOptions are the optional arguments for Remote.Info. One of
// ExternalID or File identifies the remote file.
type RemoteInfoOptions struct {
	ExternalID string
	File       string
}

// Info retrieves information about a remote file added to Slack.
// https://api.slack.com/methods/files.remote.info
func (r *Remote) Info(ctx context.Context, opts *RemoteInfoOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.ExternalID != "" {
			p.Set("external_id", opts.ExternalID)
		}
		if opts.File != "" {
			p.Set("file", opts.File)
		}
	}
	return r.client.Get(ctx, "files.remote.info", p)
}

// RemoteListOptions are the optional arguments for Remote.List.
type RemoteListOptions struct {
	Channel string
	Cursor  string
	Limit   int
	TsFrom  int
	TsTo    int
}

// List retrieves the remote files added to Slack.
// https://api.slack.com/methods/files.remote.list
func (r *Remote) List(ctx context.Context, opts *RemoteListOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.Channel != "" {
			p.Set("channel", opts.Channel)
		}
		if opts.Cursor != "" {
			p.Set("cursor", opts.Cursor)
		}
		if opts.Limit != 0 {
			p.SetInt("limit", opts.Limit)
		}
		if opts.TsFrom != 0 {
			p.SetInt("ts_from", opts.TsFrom)
		}
		if opts.TsTo != 0 {
			p.SetInt("ts_to", opts.TsTo)
		}
	}
	return r.client.Get(ctx, "files.remote.list", p)
}

// RemoteRemoveOptions are the optional arguments for Remote.Remove. One of
// ExternalID or File identifies the remote file.
type RemoteRemoveOptions struct {
	ExternalID string
	File       string
}

// Remove removes a remote file.
// https://api.slack.com/methods/files.remote.remove
func (r *Remote) Remove(ctx context.Context, opts *RemoteRemoveOptions) (*core.Envelope, error) {
	p := core.Payload{}
	if opts != nil {
		if opts.ExternalID != "" {
			p.Set("external_id", opts.ExternalID)
		}
		if opts.File != "" {
			p.Set("file", opts.File)
		}
	}
	return r.client.Get(ctx, "files.remote.remove", p)
}

// RemoteShareOptions are the optional arguments for Remote.Share. One of
// ExternalID or File identifies the remote file.
type RemoteShareOptions struct {
	ExternalID string
	File       string
}

// Share shares a remote file into a channel.
// https://api.slack.com/methods/files.remote.share
func (r *Remote) Share(ctx context.Context, channels []string, opts *RemoteShareOptions) (*core.Envelope, error) {
	p := core.Payload{}
	p.SetCSV("channels", channels)
	if opts != nil {
		if opts.ExternalID != "" {
			p.Set("external_id", opts.ExternalID)
		}
		if opts.File != "" {
			p.Set("file", opts.File)
		}
	}
	return r.client.Get(ctx, "files.remote.share", p)
}

// RemoteUpdateOptions are the optional arguments for Remote.Update.
type RemoteUpdateOptions struct {
	ExternalID            string
	ExternalURL           string
	File                  string
	Filetype              string
	IndexableFileContents any
	PreviewImage          any
	Title                 string
}

// Update updates an existing remote file.
// https://api.slack.com/methods/files.remote.update
func (r *Remote) Update(ctx context.Context, opts *RemoteUpdateOptions) (*core.Envelope, error) {
	p := core.Payload{}
	var uploads []core.FileUpload
	if opts != nil {
		if opts.ExternalID != "" {
			p.Set("external_id", opts.ExternalID)
		}
		if opts.ExternalURL != "" {
			p.Set("external_url", opts.ExternalURL)
		}
		if opts.File != "" {
			p.Set("file", opts.File)
		}
		if opts.Filetype != "" {
			p.Set("filetype", opts.Filetype)
		}
		var err error
		uploads, err = remoteUploads(opts.IndexableFileContents, opts.PreviewImage)
		if err != nil {
			return nil, err
		}
		if opts.Title != "" {
			p.Set("title", opts.Title)
		}
	}
	if len(uploads) > 0 {
		return r.client.PostMultipart(ctx, "files.remote.update", p, uploads...)
	}
	return r.client.Get(ctx, "files.remote.update", p)
}

// remoteUploads builds the multipart parts for the remote file byte-stream
// parameters.
func remoteUploads(indexable, preview any) ([]core.FileUpload, error) {
	var uploads []core.FileUpload
	if indexable != nil {
		rd, err := core.MakeFile(indexable)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, core.FileUpload{Field: "indexable_file_contents", Reader: rd})
	}
	if preview != nil {
		rd, err := core.MakeFile(preview)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, core.FileUpload{Field: "preview_image", Reader: rd})
	}
	return uploads, nil
}
