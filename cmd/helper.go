package cmd

import (
	"github.com/sohnryang/boj-submit/client"
	"github.com/sohnryang/boj-submit/internal/config"
)

// newClient builds a judge client backed by the persisted cookie jar
// and interactive credential prompts.
func newClient() (*client.Client, error) {
	return client.New(config.CookieFile(), client.TerminalPrompt{})
}
