package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sohnryang/boj-submit/ui"
)

// StatRow is one recognized row of the profile statistics table.
type StatRow struct {
	Label  string // English label including tab padding
	Values []string
	Tone   ui.Tone
}

// Line is the row's uncolored display form.
func (r StatRow) Line() string {
	return r.Label + strings.Join(r.Values, ", ")
}

type statLabel struct {
	label string
	tone  ui.Tone
}

// statLabels maps the profile table's row headers to display labels.
// Rows with headers outside this table are skipped.
var statLabels = map[string]statLabel{
	"랭킹":     {"Rank:\t\t", ui.ToneBlue},
	"푼 문제":   {"Solved:\t\t", ui.ToneGreen},
	"제출":     {"Submissions:\t", ui.ToneYellow},
	"맞았습니다":  {"AC count:\t", ui.ToneGreen},
	"출력 형식":  {"PE count:\t", ui.ToneRed},
	"틀렸습니다":  {"WA count:\t", ui.ToneRed},
	"시간 초과":  {"TLE count:\t", ui.ToneRed},
	"컴파일 에러": {"Compile errors:\t", ui.ToneRed},
	"메모리 초과": {"MLE count:\t", ui.ToneRed},
	"출력 초과":  {"PLE count:\t", ui.ToneRed},
	"런타임 에러": {"RTE count:\t", ui.ToneRed},
	"학교/회사":  {"Organization:\t", ui.ToneNone},
	"대회 우승":  {"First place:\t", ui.ToneGreen},
	"대회 준우승": {"Second place:\t", ui.ToneCyan},
}

// Stats fetches the profile page and returns the resolved username
// together with the recognized statistics rows, in page order. An empty
// username means the authenticated user's own profile.
func (c *Client) Stats(ctx context.Context, username string) (string, []StatRow, error) {
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return "", nil, err
	}

	if username == "" {
		var err error
		username, err = c.Username(ctx)
		if err != nil {
			return "", nil, err
		}
	}

	doc, err := c.get(ctx, "/user/"+url.PathEscape(username))
	if err != nil {
		return "", nil, err
	}

	var rows []StatRow
	doc.Find("table#statics tbody tr").Each(func(_ int, tr *goquery.Selection) {
		header := strings.TrimSpace(tr.Find("th").First().Text())
		entry, ok := statLabels[header]
		if !ok {
			return
		}
		rows = append(rows, StatRow{
			Label:  entry.label,
			Values: splitStatValues(tr.Find("td").First().Text()),
			Tone:   entry.tone,
		})
	})
	return username, rows, nil
}

// splitStatValues splits a cell on tabs and newlines, dropping empties.
// Cells hold one value or several (e.g. contest placements).
func splitStatValues(raw string) []string {
	return strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == '\t' || r == '\n'
	})
}
