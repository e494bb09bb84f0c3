package core

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// DefaultBaseURL is the base URL every method path is appended to.
const DefaultBaseURL = "https://slack.com/api"

// DefaultDocsURL is the base URL of the per-method documentation pages
// referenced from failure messages.
const DefaultDocsURL = "https://api.slack.com/methods"

// DefaultTimeout bounds each HTTP round trip unless the caller's context
// carries its own deadline.
const DefaultTimeout = 10 * time.Second

// Config holds the configuration for a Client.
type Config struct {
	// Token is the bearer credential sent with every request.
	Token Secret

	// BaseURL is the base URL for the API. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is the HTTP client to use for requests. Supplying one is
	// the way to share a transport/session across clients.
	HTTPClient *http.Client

	// Proxies maps URL scheme ("http", "https") to a proxy address. It is
	// installed on a dedicated transport, so it has no effect when
	// HTTPClient is also supplied.
	Proxies map[string]string

	// Timeout is the per-call deadline applied when the caller's context
	// has none. Zero means DefaultTimeout.
	Timeout time.Duration

	// Hook observes every call. Defaults to NoopCallHook.
	Hook CallHook
}

// Option is a functional option for configuring a Client.
type Option func(*Config)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(u string) Option {
	return func(c *Config) {
		c.BaseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets a custom HTTP client, shared by reference.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithProxies sets the scheme-to-proxy mapping.
func WithProxies(proxies map[string]string) Option {
	return func(c *Config) {
		c.Proxies = proxies
	}
}

// WithTimeout sets the default per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHook sets the call hook.
func WithHook(h CallHook) Option {
	return func(c *Config) {
		if h != nil {
			c.Hook = h
		}
	}
}

// FileUpload is one part of a multipart submission.
type FileUpload struct {
	// Field is the multipart field name (usually "file").
	Field string

	// Filename is the name reported to the server.
	Filename string

	// Reader supplies the bytes. The caller owns its lifetime.
	Reader io.Reader
}

// Client is the single chokepoint through which every remote call passes.
// Configuration is immutable after construction; Client is safe for
// concurrent use provided the underlying HTTP client is.
type Client struct {
	config Config
}

// New creates a Client with the given token and options. No network
// activity happens here, and the token is accepted as-is: callers wanting
// fail-fast behavior on a missing token use the FromEnv helper in the root
// package.
func New(token string, opts ...Option) *Client {
	cfg := Config{
		Token:   NewSecret(token),
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Hook:    NoopCallHook{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Transport: proxyTransport(cfg.Proxies)}
	}

	return &Client{config: cfg}
}

// proxyTransport returns a transport routing through the configured
// proxies, or the default transport when none are configured.
func proxyTransport(proxies map[string]string) http.RoundTripper {
	if len(proxies) == 0 {
		return http.DefaultTransport
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = func(req *http.Request) (*url.URL, error) {
		addr, ok := proxies[req.URL.Scheme]
		if !ok {
			return nil, nil
		}
		return url.Parse(addr)
	}
	return t
}

// Token returns the configured credential.
func (c *Client) Token() Secret {
	return c.config.Token
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// MakeURL returns the full URL for a method path. Pure concatenation: no
// network activity, no side effects.
func (c *Client) MakeURL(p string) string {
	return c.config.BaseURL + "/" + p
}

// docsURL returns the documentation page for the method a URL addresses,
// built from the URL's final path segment.
func (c *Client) docsURL(u string) string {
	return DefaultDocsURL + "/" + path.Base(u)
}

// Get calls the method at path with the payload in the query string.
func (c *Client) Get(ctx context.Context, p string, payload Payload) (*Envelope, error) {
	return c.call(ctx, http.MethodGet, p, payload, nil)
}

// Post calls the method at path with the payload form-encoded in the body.
func (c *Client) Post(ctx context.Context, p string, payload Payload) (*Envelope, error) {
	return c.call(ctx, http.MethodPost, p, payload, nil)
}

// PostMultipart calls the method at path with a multipart/form-data body
// carrying the payload fields and the given file parts.
func (c *Client) PostMultipart(ctx context.Context, p string, payload Payload, files ...FileUpload) (*Envelope, error) {
	return c.call(ctx, http.MethodPost, p, payload, files)
}

// call wraps dispatch with the hook events and the uniform failure check:
// a decorated envelope whose success flag is false becomes an *APIError
// named by the server's error code. No retry, no partial success.
func (c *Client) call(ctx context.Context, verb, p string, payload Payload, files []FileUpload) (*Envelope, error) {
	u := c.MakeURL(p)
	start := time.Now()
	id := newCallID()

	c.config.Hook.OnCallStart(CallStartEvent{
		ID:    id,
		Verb:  verb,
		Path:  p,
		URL:   u,
		Start: start,
	})

	env, err := c.dispatch(ctx, verb, u, payload, files)
	if err == nil && !env.Successful {
		code := env.ErrorCode
		if code == "" {
			code = UnknownErrorCode
		}
		err = &APIError{URL: u, Code: code, Docs: c.docsURL(u)}
	}

	status := 0
	if env != nil {
		status = env.StatusCode
	}
	c.config.Hook.OnCallEnd(CallEndEvent{
		ID:     id,
		Verb:   verb,
		Path:   p,
		URL:    u,
		Start:  start,
		End:    time.Now(),
		Status: status,
		Err:    err,
	})

	if err != nil {
		return nil, err
	}
	return env, nil
}

// dispatch issues one HTTP request and decorates the response. Decoration
// is unconditional: it runs whether or not the caller's failure check later
// trips, and a malformed body propagates its decoding error.
func (c *Client) dispatch(ctx context.Context, verb, u string, payload Payload, files []FileUpload) (*Envelope, error) {
	if _, ok := ctx.Deadline(); !ok && c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	params := payload.clone()
	params.Set("token", c.config.Token.Expose())

	var (
		req *http.Request
		err error
	)
	switch {
	case verb == http.MethodGet:
		req, err = http.NewRequestWithContext(ctx, verb, u+"?"+params.Encode(), nil)
	case len(files) > 0:
		body, contentType, merr := multipartBody(params, files)
		if merr != nil {
			return nil, merr
		}
		req, err = http.NewRequestWithContext(ctx, verb, u, body)
		if err == nil {
			req.Header.Set("Content-Type", contentType)
		}
	default:
		req, err = http.NewRequestWithContext(ctx, verb, u, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, err
	}

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return decorate(resp, raw)
}

// multipartBody encodes the payload fields and file parts.
func multipartBody(params Payload, files []FileUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, values := range params {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", err
			}
		}
	}

	for _, f := range files {
		name := f.Filename
		if name == "" {
			name = f.Field
		}
		part, err := w.CreateFormFile(f.Field, name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
