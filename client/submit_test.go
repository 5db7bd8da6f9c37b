package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// noLangConfig has no language sections; resolution uses defaults.
type noLangConfig struct{}

func (noLangConfig) Language(string) (string, string, bool) {
	return "", "", false
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSubmitPostsForm(t *testing.T) {
	mux, srv := newFakeJudge(t)
	handleSignin(mux, "alice", "hunter2")
	handleFrontPage(mux, "alice", true)

	var posted url.Values
	mux.HandleFunc("/submit/1000", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `<html><body><form method="post">
<input type="hidden" name="csrf_key" value="tok123">
</form></body></html>`)
		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			posted = r.PostForm
		}
	})

	source := "int main() { return 0; }\n"
	path := writeSource(t, "main.cpp", source)

	c := newTestClient(t, srv.URL, fixedCreds{"alice", "hunter2"})
	if err := c.Submit(context.Background(), 1000, path, noLangConfig{}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	want := url.Values{
		"problem_id": {"1000"},
		"source":     {source},
		"language":   {"88"},
		"code_open":  {"open"},
		"csrf_key":   {"tok123"},
	}
	for key, values := range want {
		if got := posted.Get(key); got != values[0] {
			t.Errorf("form field %s = %q, want %q", key, got, values[0])
		}
	}
}

func TestSubmitMissingCSRFKey(t *testing.T) {
	mux, srv := newFakeJudge(t)
	handleSignin(mux, "alice", "hunter2")
	handleFrontPage(mux, "alice", true)
	mux.HandleFunc("/submit/1000", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><form method="post"></form></body></html>`)
	})

	path := writeSource(t, "main.cpp", "int main() {}\n")

	c := newTestClient(t, srv.URL, fixedCreds{"alice", "hunter2"})
	err := c.Submit(context.Background(), 1000, path, noLangConfig{})
	if err == nil || !strings.Contains(err.Error(), "csrf_key") {
		t.Fatalf("expected a csrf_key error, got %v", err)
	}
}

func TestSubmitUnreadableFile(t *testing.T) {
	mux, srv := newFakeJudge(t)
	handleSignin(mux, "alice", "hunter2")
	handleFrontPage(mux, "alice", true)
	mux.HandleFunc("/submit/1000", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><input name="csrf_key" value="tok"></body></html>`)
	})

	c := newTestClient(t, srv.URL, fixedCreds{"alice", "hunter2"})
	err := c.Submit(context.Background(), 1000, filepath.Join(t.TempDir(), "missing.cpp"), noLangConfig{})
	if err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}
