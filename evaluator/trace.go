package evaluator

import "github.com/t14raptor/es3/ast"

// TraceEvent identifies the point at which a TraceFunc is invoked.
type TraceEvent int

const (
	TraceCall TraceEvent = iota
	TraceReturn
	TraceStatement
	TraceThrow
)

func (e TraceEvent) String() string {
	switch e {
	case TraceCall:
		return "call"
	case TraceReturn:
		return "return"
	case TraceStatement:
		return "statement"
	case TraceThrow:
		return "throw"
	}
	return "invalid"
}

// TraceFunc observes evaluation. It must not change the context.
type TraceFunc func(loc ast.Location, ctx *Context, ev TraceEvent)

func (ip *Interpreter) fire(loc ast.Location, ev TraceEvent) {
	if ip.trace != nil {
		ip.trace(loc, ip.ctx, ev)
	}
	if ip.cfg.Trace {
		ip.log.Debug("trace", "event", ev.String(), "location", loc.String())
	}
}

// poll runs the periodic hook. A non-nil result aborts evaluation.
func (ip *Interpreter) poll() error {
	if ip.periodic == nil {
		return nil
	}
	return ip.periodic(ip)
}

// statement marks the start of a statement.
func (ip *Interpreter) statement(s ast.Stmt) error {
	if err := ip.poll(); err != nil {
		return err
	}
	ip.location = s.Loc()
	ip.fire(ip.location, TraceStatement)
	return nil
}
