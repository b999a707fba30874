/*
client.go - Account portal client

PURPOSE:
  Logs into the prepaid meal-card portal and scrapes the balance fields
  out of the rendered account page. The portal has no API; the balance
  and last-top-up values only exist as text inside its markup.

FLOW:
  1. POST the login form with the configured credentials. The session
     cookie lands in the client's jar.
  2. GET the account page.
  3. Locate the balance ("Saldo: <amount> <CUR>") and last-top-up
     (DD.MM.YYYY HH:MM) fragments in the page body.
  4. Hand both fragments to balance.Extract for validation.

  Each FetchBalance call performs a full login + fetch; nothing is
  cached between calls. Failures at any step abort the fetch with a
  wrapped error; the caller sees one failure outcome.

SEE ALSO:
  - balance package: text-to-Record extraction contract
  - report.BalanceSource: the interface this client satisfies
*/
package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/warp/lunch-engine/balance"
)

// Client fetches the account balance from the portal.
type Client struct {
	BaseURL  string
	Username string
	Password string

	httpClient *http.Client
}

// New creates a portal client with its own cookie jar and timeout.
func New(baseURL, username, password string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		Password: password,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

var (
	// The balance fragment as rendered on the account page.
	balanceFragment = regexp.MustCompile(`(?i)saldo:\s*\d+(?:[.,]\d+)?\s*[A-Za-z]{1,5}`)
	// The last-top-up timestamp as rendered on the account page.
	topUpFragment = regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{4} \d{2}:\d{2}\b`)
)

// FetchBalance logs in, fetches the account page, and extracts the
// balance record.
func (c *Client) FetchBalance(ctx context.Context) (balance.Record, error) {
	if err := c.login(ctx); err != nil {
		return balance.Record{}, fmt.Errorf("portal login: %w", err)
	}

	page, err := c.accountPage(ctx)
	if err != nil {
		return balance.Record{}, fmt.Errorf("portal account page: %w", err)
	}

	balanceText := balanceFragment.FindString(page)
	if balanceText == "" {
		return balance.Record{}, &balance.ExtractionError{Field: "balance", Input: snippet(page)}
	}
	dateText := topUpFragment.FindString(page)
	if dateText == "" {
		return balance.Record{}, &balance.ExtractionError{Field: "last_topped_up", Input: snippet(page)}
	}

	return balance.Extract(balanceText, dateText)
}

func (c *Client) login(ctx context.Context) error {
	form := url.Values{
		"username": {c.Username},
		"password": {c.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("login rejected with status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) accountPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/account", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// snippet trims page bodies for error messages.
func snippet(page string) string {
	const max = 120
	page = strings.TrimSpace(page)
	if len(page) > max {
		return page[:max] + "..."
	}
	return page
}
