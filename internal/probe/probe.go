package probe

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AI2HU/mongoping/internal/db"
	"github.com/AI2HU/mongoping/internal/logger"
)

const (
	successLine = "MongoDB connection successful!"
	failurePfx  = "MongoDB connection failed: "
)

// Result describes the outcome of one connectivity check
type Result struct {
	ID       string          `json:"id"`
	Target   string          `json:"target"`
	OK       bool            `json:"ok"`
	Err      error           `json:"-"`
	Duration time.Duration   `json:"duration"`
	Hello    *db.HelloResult `json:"hello,omitempty"`
}

// Line returns the single line reported to the user
func (r *Result) Line() string {
	if r.OK {
		return successLine
	}
	return failurePfx + r.Err.Error()
}

// Redact strips credentials from a connection string by keeping only what
// follows the last '@'.
func Redact(uri string) string {
	if i := strings.LastIndex(uri, "@"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// Run performs exactly one connect and one health-check command. When w is
// non-nil the banner and result line are written to it.
func Run(ctx context.Context, checker db.Checker, uri string, w io.Writer) *Result {
	res := &Result{
		ID:     uuid.NewString(),
		Target: Redact(uri),
	}

	if w != nil {
		fmt.Fprintf(w, "Testing connection to: %s\n", res.Target)
	}

	start := time.Now()
	res.Hello, res.Err = check(ctx, checker)
	res.Duration = time.Since(start)
	res.OK = res.Err == nil

	if res.OK {
		logger.Debug("check %s: %s reachable as %s in %s", res.ID, res.Target, res.Hello.Role(), res.Duration)
	} else {
		logger.Debug("check %s: %s failed after %s: %v", res.ID, res.Target, res.Duration, res.Err)
	}

	if w != nil {
		fmt.Fprintln(w, res.Line())
	}

	return res
}

func check(ctx context.Context, checker db.Checker) (*db.HelloResult, error) {
	if err := checker.Connect(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := checker.Disconnect(ctx); err != nil {
			logger.Warning("failed to disconnect: %v", err)
		}
	}()

	return checker.Check(ctx)
}
