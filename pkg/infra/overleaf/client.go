package overleaf

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olsync/olpull/pkg/domain/interfaces"
	"github.com/olsync/olpull/pkg/domain/model"
	"github.com/olsync/olpull/pkg/domain/types"
)

const (
	defaultTimeout = 60 * time.Second

	// maxArchiveSize bounds how much of the download response is read into
	// memory, so a misbehaving server cannot exhaust it.
	maxArchiveSize = 1 << 30

	// maxPageSize bounds the project page read during CSRF discovery.
	maxPageSize = 4 << 20

	// excerptSize bounds the body excerpt attached to failure diagnostics.
	excerptSize = 200
)

// zipMagic is the local-file-header signature every zip archive starts with.
var zipMagic = []byte("PK")

var csrfMetaPattern = regexp.MustCompile(`<meta name="ol-csrfToken" content="([^"]*)"`)

type client struct {
	baseURL    string
	cookie     string
	userAgent  string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithTimeout sets the overall bound for each HTTP request
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header sent to the platform
func WithUserAgent(ua string) Option {
	return func(c *client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, used by tests to point
// the client at a stub server
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for one Overleaf host. The base URL and session
// cookie are canonicalized here, so callers can pass them exactly as supplied
// by the user.
func NewClient(baseURL, cookie string, opts ...Option) interfaces.OverleafClient {
	c := &client{
		baseURL:   NormalizeBaseURL(baseURL),
		cookie:    NormalizeCookie(cookie),
		userAgent: "olpull/" + types.Version,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DownloadZip downloads the zip export of a project and returns its raw bytes
func (c *client) DownloadZip(ctx context.Context, projectID string) ([]byte, error) {
	csrf := c.fetchCSRFToken(ctx, projectID)

	url := downloadURL(c.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}
	c.setHeaders(req, csrf)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to reach server",
			goerr.T(model.ErrTagNetwork),
			goerr.V("url", url),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.T(model.ErrTagNetwork),
			goerr.V("url", url),
		)
	}

	if err := classifyResponse(resp.StatusCode, resp.Header.Get("Content-Type"), body, projectID); err != nil {
		return nil, err
	}

	return body, nil
}

// classifyResponse maps the download response to a typed failure, or nil when
// the payload is a zip archive. The platform answers some unauthenticated
// requests with a 200 login page, so a success status alone is not trusted;
// the zip magic-bytes sniff is the heuristic for that case and is kept here
// in one place so it can be refined without touching the rest of the client.
func classifyResponse(status int, contentType string, body []byte, projectID string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return goerr.New("session cookie rejected",
			goerr.T(model.ErrTagAuth),
			goerr.V("status", status),
			goerr.V("project_id", projectID),
		)

	case status == http.StatusNotFound:
		return goerr.New("project not found",
			goerr.T(model.ErrTagNotFound),
			goerr.V("status", status),
			goerr.V("project_id", projectID),
		)

	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return goerr.New("unexpected response status",
			goerr.T(model.ErrTagUnexpectedStatus),
			goerr.V("status", status),
			goerr.V("body", excerpt(body)),
			goerr.V("project_id", projectID),
		)

	case !bytes.HasPrefix(body, zipMagic):
		return goerr.New("server returned non-zip content, session cookie likely rejected",
			goerr.T(model.ErrTagAuth),
			goerr.V("status", status),
			goerr.V("content_type", contentType),
			goerr.V("body", excerpt(body)),
			goerr.V("project_id", projectID),
		)
	}

	return nil
}

// fetchCSRFToken scrapes the ol-csrfToken meta tag from the project page. The
// platform requires the token on the download route for some deployments but
// not others, so any failure here is tolerated: the download request is the
// single place where errors get classified.
func (c *client) fetchCSRFToken(ctx context.Context, projectID string) string {
	logger := ctxlog.From(ctx)

	url := projectURL(c.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	c.setHeaders(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Project page fetch failed, continuing without CSRF token",
			"project_id", projectID,
			"error", err,
		)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return ""
	}

	m := csrfMetaPattern.FindSubmatch(page)
	if m == nil {
		logger.Debug("No CSRF token on project page", "project_id", projectID)
		return ""
	}

	return string(m[1])
}

func (c *client) setHeaders(req *http.Request, csrf string) {
	req.Header.Set("Cookie", c.cookie)
	req.Header.Set("User-Agent", c.userAgent)
	if csrf != "" {
		req.Header.Set("X-CSRF-Token", csrf)
	}
}

func excerpt(body []byte) string {
	if len(body) > excerptSize {
		body = body[:excerptSize]
	}
	return string(body)
}
