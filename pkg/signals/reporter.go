package signals

//go:generate mockgen -destination=mock/mock_reporter.go -package=mocksignals -source=reporter.go Reporter

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-signals/internal/errors"
)

// Reporter receives non-fatal conditions found by a Hub: a kind bound twice,
// and, with diagnostics enabled, listeners that break their preconditions.
type Reporter interface {
	Report(err error)
}

// LogReporter writes reports through a *log.Logger
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a LogReporter. A nil logger uses the standard logger.
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs err with its code and metadata
func (r *LogReporter) Report(err error) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf("SignalHub: [%s] %v%s", errors.GetCode(err), err, formatMeta(errors.GetMeta(err)))
	if r.logger == nil {
		log.Print(msg)
		return
	}
	r.logger.Print(msg)
}

func formatMeta(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, meta[k])
	}
	return b.String()
}

// IsConflict reports whether err came from binding a kind that already had an instance
func IsConflict(err error) bool {
	return errors.IsAlreadyExists(err)
}

// IsInvalidListener reports whether err came from a nil or anonymous listener
func IsInvalidListener(err error) bool {
	return errors.IsInvalidArgument(err)
}

// IsArityMismatch reports whether err came from a hash lookup that found a
// signal taking parameters
func IsArityMismatch(err error) bool {
	_, owned := errors.GetMeta(err)["owner"]
	return errors.IsFailedPrecondition(err) && !owned
}

// IsBoundElsewhere reports whether err came from registering an instance
// that another hub already owns
func IsBoundElsewhere(err error) bool {
	_, owned := errors.GetMeta(err)["owner"]
	return errors.IsFailedPrecondition(err) && owned
}
