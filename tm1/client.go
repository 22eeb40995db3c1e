package tm1

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

const (
	service       = "tm1"
	apiPath       = "/api/v1/"
	sessionCookie = "TM1SessionId"
	contentType   = "application/json; odata.streaming=true; charset=utf-8"
	accept        = "application/json;odata.metadata=none,text/plain"
)

// Config holds the connection details of a TM1 server
type Config struct {
	// URL is the root of the REST API, e.g. https://localhost:5000
	URL       string
	User      string
	Password  string `json:"-"`
	Namespace string
	Timeout   time.Duration
}

// Client is a session-scoped client for the TM1 REST API. It is not safe for
// concurrent use.
type Client struct {
	cfg       Config
	cli       dphttp.Clienter
	sessionID string
}

// NewClient creates a new TM1 client using the provided http client. No
// request is sent until Login is called.
func NewClient(cfg Config, clienter dphttp.Clienter) *Client {
	if cfg.Timeout > 0 {
		clienter.SetTimeout(cfg.Timeout)
	}
	// transient failures surface to the caller
	clienter.SetMaxRetries(0)

	return &Client{
		cfg: Config{
			URL:       strings.TrimSuffix(cfg.URL, "/"),
			User:      cfg.User,
			Password:  cfg.Password,
			Namespace: cfg.Namespace,
			Timeout:   cfg.Timeout,
		},
		cli: clienter,
	}
}

// URL returns the root URL used by this client
func (c *Client) URL() string {
	return c.cfg.URL
}

// Login authenticates against the server and keeps the returned session
func (c *Client) Login(ctx context.Context) error {
	version, err := c.ProductVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to log in to tm1: %w", err)
	}
	log.Info(ctx, "tm1 session opened", log.Data{
		"url":             c.cfg.URL,
		"user":            c.cfg.User,
		"namespace":       c.cfg.Namespace,
		"product_version": version,
	})
	return nil
}

// Logout closes the server session. The client forgets the session even if
// the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.sessionID == "" {
		return nil
	}
	defer func() { c.sessionID = "" }()

	resp, err := c.do(ctx, http.MethodPost, "ActiveSession/tm1.Close", nil, strings.NewReader("{}"))
	if err != nil {
		return fmt.Errorf("failed to log out of tm1: %w", err)
	}
	closeResponseBody(ctx, resp)

	log.Info(ctx, "tm1 session closed", log.Data{"url": c.cfg.URL})
	return nil
}

// ServerName returns the name of the TM1 server
func (c *Client) ServerName(ctx context.Context) (string, error) {
	return c.getText(ctx, "Configuration/ServerName/$value")
}

// ProductVersion returns the version of the TM1 server
func (c *Client) ProductVersion(ctx context.Context) (string, error) {
	return c.getText(ctx, "Configuration/ProductVersion/$value")
}

// Checker calls the server name endpoint and updates the provided CheckState accordingly
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	name, err := c.ServerName(ctx)
	if err != nil {
		code := 0
		var tm1Err *Error
		if errors.As(err, &tm1Err) {
			code = tm1Err.Code()
		}
		return state.Update(healthcheck.StatusCritical, err.Error(), code)
	}
	return state.Update(healthcheck.StatusOK, fmt.Sprintf("%s is ok, server name: %s", service, name), http.StatusOK)
}

// authorization returns the Authorization header value for the configured credentials
func (c *Client) authorization() string {
	if c.cfg.Namespace != "" {
		token := fmt.Sprintf("%s:%s:%s", c.cfg.User, c.cfg.Password, c.cfg.Namespace)
		return "CAMNamespace " + base64.StdEncoding.EncodeToString([]byte(token))
	}
	token := fmt.Sprintf("%s:%s", c.cfg.User, c.cfg.Password)
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(token))
}

// do sends a request to the provided path, relative to /api/v1/. Any non-2xx
// response is returned as an *Error and its body is closed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	uri := c.cfg.URL + apiPath + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tm1 request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", accept)
	if c.sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.sessionID})
	} else {
		req.Header.Set("Authorization", c.authorization())
	}

	resp, err := c.cli.Do(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "http client returned error while attempting %s %s", method, path)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookie {
			c.sessionID = cookie.Value
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer closeResponseBody(ctx, resp)
		return nil, newResponseError(method, path, resp)
	}
	return resp, nil
}

// getJSON sends a GET request and decodes the response body into target
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer closeResponseBody(ctx, resp)

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "failed to decode response of GET %s", path)
	}
	return nil
}

// getText sends a GET request and returns the trimmed plain text body
func (c *Client) getText(ctx context.Context, path string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}
	defer closeResponseBody(ctx, resp)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read response of GET %s", path)
	}
	return strings.TrimSpace(strings.TrimPrefix(string(b), "\ufeff")), nil
}

// names lists the Name of every entity in the provided collection
func (c *Client) names(ctx context.Context, path string) ([]string, error) {
	var list struct {
		Value []struct {
			Name string `json:"Name"`
		} `json:"value"`
	}
	if err := c.getJSON(ctx, path, url.Values{"$select": []string{"Name"}}, &list); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list.Value))
	for _, v := range list.Value {
		names = append(names, v.Name)
	}
	return names, nil
}

// exists reports whether the entity at path exists, mapping 404 to false
func (c *Client) exists(ctx context.Context, path string) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, path, url.Values{"$select": []string{"Name"}}, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	closeResponseBody(ctx, resp)
	return true, nil
}

// post sends a JSON body to the provided collection
func (c *Client) post(ctx context.Context, path string, body []byte) error {
	resp, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	closeResponseBody(ctx, resp)
	return nil
}

// delete removes the entity at path
func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	closeResponseBody(ctx, resp)
	return nil
}

// key returns an OData key segment for the provided name: quotes are doubled
// and the name is path-escaped
func key(name string) string {
	return "('" + url.PathEscape(strings.ReplaceAll(name, "'", "''")) + "')"
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}
