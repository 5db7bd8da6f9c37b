package client

import (
	"context"
	"os"
	"testing"
)

func TestLoginPersistsSession(t *testing.T) {
	mux, srv := newFakeJudge(t)
	handleSignin(mux, "alice", "hunter2")
	handleFrontPage(mux, "alice", true)

	c := newTestClient(t, srv.URL, fixedCreds{"alice", "hunter2"})
	if err := c.Login(context.Background()); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := os.Stat(c.CookiePath); err != nil {
		t.Fatalf("cookie store not persisted: %v", err)
	}

	// A fresh client loading the same cookie store must act as the same
	// authenticated identity without logging in again.
	reloaded, err := New(c.CookiePath, mustNotPrompt{t})
	if err != nil {
		t.Fatal(err)
	}
	reloaded.BaseURL = srv.URL

	if err := reloaded.EnsureAuthenticated(context.Background()); err != nil {
		t.Fatalf("EnsureAuthenticated with saved session: %v", err)
	}
	username, err := reloaded.Username(context.Background())
	if err != nil {
		t.Fatalf("username scrape with reloaded session: %v", err)
	}
	if username != "alice" {
		t.Fatalf("username = %q, want alice", username)
	}
}

func TestLoginFailure(t *testing.T) {
	mux, srv := newFakeJudge(t)
	handleSignin(mux, "alice", "hunter2")
	handleFrontPage(mux, "alice", true)

	c := newTestClient(t, srv.URL, fixedCreds{"alice", "wrong"})
	if err := c.Login(context.Background()); err == nil {
		t.Fatal("expected login to fail with wrong password")
	}

	if _, err := os.Stat(c.CookiePath); !os.IsNotExist(err) {
		t.Fatal("cookie store should not survive a failed login")
	}
}

func TestUsernameNotLoggedIn(t *testing.T) {
	mux, srv := newFakeJudge(t)
	handleFrontPage(mux, "alice", true)

	c := newTestClient(t, srv.URL, fixedCreds{})
	if _, err := c.Username(context.Background()); err == nil {
		t.Fatal("expected an error when the username marker is absent")
	}
}
