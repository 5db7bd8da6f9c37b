// Package judge classifies the status strings rendered by the BOJ judge
// and turns them into short display labels.
package judge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Status is the judging state of a submission.
type Status int

const (
	// StatusPending means no result row is visible yet for the
	// submission. The judge has not registered it, so keep polling.
	StatusPending Status = iota
	StatusPreparing
	StatusJudging
	StatusWaiting
	StatusPartial
	StatusAccepted
	StatusPresentationError
	StatusWrongAnswer
	StatusTimeLimit
	StatusMemoryLimit
	StatusOutputLimit
	StatusRuntimeError
	StatusCompileError
)

// Raw status strings as BOJ renders them.
const (
	rawPreparing = "채점 준비 중"
	rawJudging   = "채점 중"
	rawWaiting   = "기다리는 중"
	rawAccepted  = "맞았습니다!!"
	rawPE        = "출력 형식이 잘못되었습니다"
	rawWA        = "틀렸습니다"
	rawTLE       = "시간 초과"
	rawMLE       = "메모리 초과"
	rawPLE       = "출력 초과"
	rawRTE       = "런타임 에러"
	rawCE        = "컴파일 에러"
)

var partialPattern = regexp.MustCompile(`^(\d+)점$`)

// Verdict is one polled result: the classified status plus whatever the
// status page reported alongside it.
type Verdict struct {
	Status Status
	Raw    string
	Score  int    // partial-score percentage, set when Status is StatusPartial
	Detail string // trailing progress text after "채점 중", e.g. " (70%)"
	Memory string // in KB
	Time   string // in ms
}

// Classify maps a raw status string from the status page to a Verdict.
// Unrecognized text is treated as StatusPending so the poller keeps going
// instead of failing on a row the judge has not filled in yet.
func Classify(raw, memory, time string) Verdict {
	v := Verdict{Raw: raw, Memory: memory, Time: time}
	switch {
	case strings.Contains(raw, rawPreparing):
		v.Status = StatusPreparing
	case strings.Contains(raw, rawJudging):
		v.Status = StatusJudging
		v.Detail = strings.Replace(raw, rawJudging, "", 1)
	case partialPattern.MatchString(raw):
		v.Status = StatusPartial
		v.Score, _ = strconv.Atoi(partialPattern.FindStringSubmatch(raw)[1])
	default:
		switch raw {
		case rawWaiting:
			v.Status = StatusWaiting
		case rawAccepted:
			v.Status = StatusAccepted
		case rawPE:
			v.Status = StatusPresentationError
		case rawWA:
			v.Status = StatusWrongAnswer
		case rawTLE:
			v.Status = StatusTimeLimit
		case rawMLE:
			v.Status = StatusMemoryLimit
		case rawPLE:
			v.Status = StatusOutputLimit
		case rawRTE:
			v.Status = StatusRuntimeError
		case rawCE:
			v.Status = StatusCompileError
		default:
			v.Status = StatusPending
		}
	}
	return v
}

// IsTerminal reports whether the verdict ends the polling loop.
func (v Verdict) IsTerminal() bool {
	switch v.Status {
	case StatusPartial, StatusAccepted, StatusPresentationError,
		StatusWrongAnswer, StatusTimeLimit, StatusMemoryLimit,
		StatusOutputLimit, StatusRuntimeError, StatusCompileError:
		return true
	case StatusPending, StatusPreparing, StatusJudging, StatusWaiting:
		return false
	}
	return false
}

// Label renders the verdict as its short uncolored display form.
func (v Verdict) Label() string {
	switch v.Status {
	case StatusPending:
		return "Pending..."
	case StatusPreparing:
		return "Preparing..."
	case StatusJudging:
		return "Judging..." + v.Detail
	case StatusWaiting:
		return "Waiting..."
	case StatusPartial:
		return fmt.Sprintf("Partial (%d)", v.Score)
	case StatusAccepted:
		return fmt.Sprintf("AC (%sKB, %sms)", v.Memory, v.Time)
	case StatusPresentationError:
		return "PE"
	case StatusWrongAnswer:
		return "WA"
	case StatusTimeLimit:
		return "TLE"
	case StatusMemoryLimit:
		return "MLE"
	case StatusOutputLimit:
		return "PLE"
	case StatusRuntimeError:
		return "RTE"
	case StatusCompileError:
		return "Compile Error"
	}
	return v.Raw
}

func (s Status) String() string {
	names := map[Status]string{
		StatusPending:           "pending",
		StatusPreparing:         "preparing",
		StatusJudging:           "judging",
		StatusWaiting:           "waiting",
		StatusPartial:           "partial",
		StatusAccepted:          "accepted",
		StatusPresentationError: "presentation-error",
		StatusWrongAnswer:       "wrong-answer",
		StatusTimeLimit:         "time-limit",
		StatusMemoryLimit:       "memory-limit",
		StatusOutputLimit:       "output-limit",
		StatusRuntimeError:      "runtime-error",
		StatusCompileError:      "compile-error",
	}
	if name, ok := names[s]; ok {
		return name
	}
	return "unknown"
}
