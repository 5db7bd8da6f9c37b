package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

const sessionCookie = "bojautologin"

// fixedCreds is a CredentialProvider with canned values.
type fixedCreds struct {
	user, pass string
}

func (f fixedCreds) Credentials() (string, string, error) {
	return f.user, f.pass, nil
}

// mustNotPrompt fails the test if credentials are ever requested.
type mustNotPrompt struct {
	t *testing.T
}

func (m mustNotPrompt) Credentials() (string, string, error) {
	m.t.Fatal("credentials requested although a saved session exists")
	return "", "", nil
}

func newFakeJudge(t *testing.T) (*http.ServeMux, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return mux, srv
}

// handleSignin sets the session cookie when the posted credentials
// match, mimicking the judge's sign-in form endpoint.
func handleSignin(mux *http.ServeMux, user, pass string) {
	mux.HandleFunc("/signin", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostFormValue("login_user_id") == user && r.PostFormValue("login_password") == pass {
			http.SetCookie(w, &http.Cookie{
				Name:    sessionCookie,
				Value:   "token",
				Path:    "/",
				Expires: time.Now().Add(24 * time.Hour),
			})
		}
	})
}

// handleFrontPage renders the username marker. With requireCookie the
// marker only appears for an authenticated session, as on the real site.
func handleFrontPage(mux *http.ServeMux, username string, requireCookie bool) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if requireCookie {
			if c, err := r.Cookie(sessionCookie); err != nil || c.Value != "token" {
				fmt.Fprint(w, `<html><body><a href="/login">로그인</a></body></html>`)
				return
			}
		}
		fmt.Fprintf(w, `<html><body><a class="username" href="/user/%s">%s</a></body></html>`,
			username, username)
	})
}

func newTestClient(t *testing.T, baseURL string, creds CredentialProvider) *Client {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "cookies.json"), creds)
	if err != nil {
		t.Fatal(err)
	}
	c.BaseURL = baseURL
	return c
}
