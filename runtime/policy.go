package runtime

import (
	"fmt"
	"strings"

	"github.com/vcrobe/nojs-uidl/uidl"
)

// Policy decides what a failed component update does to the rest of an
// update pass.
type Policy int

const (
	// FailFast stops the pass at the first failure and returns it.
	FailFast Policy = iota
	// Isolate logs the failure, leaves that component as it was, and
	// continues with the remaining changes.
	Isolate
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "failfast"
	case Isolate:
		return "isolate"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "failfast" or "isolate", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "failfast", "fail-fast":
		return FailFast, nil
	case "isolate":
		return Isolate, nil
	default:
		return FailFast, fmt.Errorf("unknown update policy %q (want failfast or isolate)", s)
	}
}

// callUpdate invokes the paintable, turning a panic into an error so the
// policy applies to it like any other failure.
func callUpdate(p Paintable, id string, change *uidl.Node) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: component %s: %v", ErrPanic, id, rec)
		}
	}()
	return p.UpdateFromUIDL(change)
}
