package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// CredentialProvider supplies the username and password for login.
// Commands use the interactive TerminalPrompt; tests inject fixed
// credentials.
type CredentialProvider interface {
	Credentials() (username, password string, err error)
}

// TerminalPrompt reads credentials from the terminal, echoing the
// username and masking the password.
type TerminalPrompt struct{}

func (TerminalPrompt) Credentials() (string, string, error) {
	fmt.Print("Username: ")
	username, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("could not read username: %w", err)
	}
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("could not read password: %w", err)
	}
	return username, string(password), nil
}

// EnsureAuthenticated makes sure the session can act as a logged-in
// user. An existing cookie store is trusted as a previous successful
// login; otherwise an interactive login runs.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	if _, err := os.Stat(c.CookiePath); err == nil {
		logrus.Debugf("cookie store found at %s", c.CookiePath)
		return nil
	}
	logrus.Info("cookie store not found, logging in")
	return c.Login(ctx)
}

// Login signs in with credentials from the provider, verifies the
// session by looking for the username marker on the front page and
// persists the cookie jar on success. A failed attempt removes any
// stored cookies and reports the failure; the user must re-invoke.
func (c *Client) Login(ctx context.Context) error {
	username, password, err := c.Credentials.Credentials()
	if err != nil {
		return err
	}

	logrus.Info("authenticating...")
	logrus.Debugf("username: %s, password: %s", username, strings.Repeat("*", len(password)))

	form := url.Values{
		"login_user_id":  {username},
		"login_password": {password},
		"auto_login":     {"on"},
	}
	res, err := c.postForm(ctx, "/signin", form)
	if err != nil {
		return fmt.Errorf("sign-in request failed: %w", err)
	}
	_ = res.Body.Close()

	ok, err := c.loggedIn(ctx)
	if err != nil {
		return err
	}
	if !ok {
		logrus.Debug("removing cookie store after failed login")
		if err := os.Remove(c.CookiePath); err != nil && !os.IsNotExist(err) {
			logrus.Errorf("could not remove cookie store: %v", err)
		}
		return errors.New("login failed: check your username and password")
	}

	if err := c.jar.Save(); err != nil {
		return fmt.Errorf("could not persist session: %w", err)
	}
	logrus.Infof("saved session to %s", c.CookiePath)
	return nil
}

// loggedIn checks for the username marker on the front page.
func (c *Client) loggedIn(ctx context.Context) (bool, error) {
	doc, err := c.get(ctx, "/")
	if err != nil {
		return false, err
	}
	return doc.Find("a.username").Length() > 0, nil
}

// Username scrapes the logged-in user's name from the front page.
func (c *Client) Username(ctx context.Context) (string, error) {
	doc, err := c.get(ctx, "/")
	if err != nil {
		return "", err
	}
	sel := doc.Find("a.username").First()
	if sel.Length() == 0 {
		return "", errors.New("not logged in: run 'boj login' first")
	}
	return strings.TrimSpace(sel.Text()), nil
}
