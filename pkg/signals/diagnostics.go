package signals

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// DiagnosticsMode selects whether listener preconditions are checked
type DiagnosticsMode int

const (
	// DiagnosticsDefault follows the signalsdebug build tag
	DiagnosticsDefault DiagnosticsMode = iota
	// DiagnosticsOn always checks
	DiagnosticsOn
	// DiagnosticsOff never checks
	DiagnosticsOff
)

// Enabled reports whether checks run in this mode
func (m DiagnosticsMode) Enabled() bool {
	switch m {
	case DiagnosticsOn:
		return true
	case DiagnosticsOff:
		return false
	default:
		return buildDiagnostics
	}
}

func (m DiagnosticsMode) String() string {
	switch m {
	case DiagnosticsOn:
		return "on"
	case DiagnosticsOff:
		return "off"
	default:
		return "default"
	}
}

// ParseDiagnosticsMode parses on/off/true/false/default; empty means default
func ParseDiagnosticsMode(s string) (DiagnosticsMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DiagnosticsDefault, nil
	case "on", "true", "1":
		return DiagnosticsOn, nil
	case "off", "false", "0":
		return DiagnosticsOff, nil
	}
	return DiagnosticsDefault, fmt.Errorf("invalid diagnostics mode %q", s)
}

// Func literals compile to names like pkg.Outer.func1 or pkg.glob..func2.
var anonymousFunc = regexp.MustCompile(`\.func\d+(\.\d+)*$`)

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}

func isAnonymous(name string) bool {
	return anonymousFunc.MatchString(name)
}
