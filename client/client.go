// Package client talks to BOJ (https://www.acmicpc.net). The judge has
// no API; every operation scrapes server-rendered HTML, so extraction
// breaks silently if the site's markup changes.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	cookiejar "github.com/juju/persistent-cookiejar"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"
)

// DefaultBaseURL is the judge's address.
const DefaultBaseURL = "https://www.acmicpc.net"

// Client is an authenticated-session HTTP client for the judge. The
// cookie jar is persisted to CookiePath after a successful login and
// loaded from there on construction.
type Client struct {
	BaseURL     string
	CookiePath  string
	Credentials CredentialProvider

	http *http.Client
	jar  *cookiejar.Jar
}

// New builds a client whose jar is backed by the file at cookiePath.
// If the file exists its cookies are loaded into the session.
func New(cookiePath string, creds CredentialProvider) (*Client, error) {
	if err := os.MkdirAll(filepath.Dir(cookiePath), 0700); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
		Filename:         cookiePath,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open cookie store: %w", err)
	}

	return &Client{
		BaseURL:     DefaultBaseURL,
		CookiePath:  cookiePath,
		Credentials: creds,
		http:        &http.Client{Jar: jar},
		jar:         jar,
	}, nil
}

// get fetches a page and parses it for scraping.
func (c *Client) get(ctx context.Context, path string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("GET %s", path)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", path, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("could not parse response for %s: %w", path, err)
	}
	return doc, nil
}

// postForm sends a urlencoded form. The caller owns the response body.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	logrus.Debugf("POST %s", path)

	return c.http.Do(req)
}
