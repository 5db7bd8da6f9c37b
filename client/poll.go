package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sohnryang/boj-submit/internal/judge"
	"github.com/sohnryang/boj-submit/ui"
)

// Poller watches the status page for a problem until the latest
// submission reaches a terminal verdict, redrawing one output line in
// place. There is no iteration limit; cancellation comes from the
// context (Ctrl-C).
type Poller struct {
	Client   *Client
	Interval time.Duration
	Out      io.Writer

	// Sleep waits between iterations. Injectable so tests can run many
	// iterations without real delay.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewPoller uses a one-second interval between fetches. The original
// tool polled in a tight loop; the delay is a deliberate deviation to
// avoid hammering the judge.
func NewPoller(c *Client) *Poller {
	return &Poller{
		Client:   c,
		Interval: time.Second,
		Out:      os.Stdout,
		Sleep:    sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run blocks until the verdict is terminal or the context is canceled.
func (p *Poller) Run(ctx context.Context, problem int) (judge.Verdict, error) {
	line := ui.NewProgressLine(p.Out)
	defer line.Close()

	for {
		v, err := p.Client.LatestVerdict(ctx, problem)
		if err != nil {
			return judge.Verdict{}, err
		}
		logrus.Debugf("status is %s (%q)", v.Status, v.Raw)

		line.Update(ui.RenderVerdict(v))
		if v.IsTerminal() {
			return v, nil
		}
		if err := p.Sleep(ctx, p.Interval); err != nil {
			return judge.Verdict{}, err
		}
	}
}

// LatestVerdict scrapes the newest submission row for the problem from
// the user's filtered status page. A page without a result row means
// the judge has not registered the submission yet; that is reported as
// a pending verdict, not an error.
func (c *Client) LatestVerdict(ctx context.Context, problem int) (judge.Verdict, error) {
	username, err := c.Username(ctx)
	if err != nil {
		return judge.Verdict{}, err
	}
	logrus.Debugf("username is %s", username)

	path := fmt.Sprintf("/status?from_mine=1&problem_id=%d&user_id=%s",
		problem, url.QueryEscape(username))
	doc, err := c.get(ctx, path)
	if err != nil {
		return judge.Verdict{}, err
	}

	result := doc.Find("span.result-text span").First()
	if result.Length() == 0 {
		return judge.Verdict{Status: judge.StatusPending}, nil
	}
	text := strings.TrimSpace(result.Text())
	memory := strings.TrimSpace(doc.Find("td.memory").First().Text())
	runtime := strings.TrimSpace(doc.Find("td.time").First().Text())
	return judge.Classify(text, memory, runtime), nil
}
