package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/sohnryang/boj-submit/internal/lang"
)

// Submit sends the file at path as a solution for the problem. The
// language code is resolved from the file extension and the user's
// config. The judge's response body is not inspected; the verdict is
// observed by polling the status page afterwards.
func (c *Client) Submit(ctx context.Context, problem int, path string, cfg lang.Config) error {
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return err
	}
	logrus.Debugf("problem number is %d, filename is %s", problem, path)

	// The submit form carries a one-time CSRF token in a hidden field.
	submitPath := fmt.Sprintf("/submit/%d", problem)
	doc, err := c.get(ctx, submitPath)
	if err != nil {
		return fmt.Errorf("could not fetch submit page: %w", err)
	}
	key, ok := doc.Find("input[name=csrf_key]").First().Attr("value")
	if !ok {
		return errors.New("unexpected response from judge: no csrf_key on submit page")
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	code := lang.Resolve(filepath.Ext(path), cfg)
	form := url.Values{
		"problem_id": {strconv.Itoa(problem)},
		"source":     {string(source)},
		"language":   {strconv.Itoa(code)},
		"code_open":  {"open"},
		"csrf_key":   {key},
	}
	res, err := c.postForm(ctx, submitPath, form)
	if err != nil {
		return fmt.Errorf("submission request failed: %w", err)
	}
	_ = res.Body.Close()

	logrus.Infof("submitted problem %d with language code %d", problem, code)
	return nil
}
