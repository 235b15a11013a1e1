// Package rule compiles snap predicates from expression strings so that the
// follow policy can live in a configuration file.
//
// Two engines are supported: expr (github.com/expr-lang/expr) and CEL
// (github.com/google/cel-go). Expressions see the variables produced by the
// caller's snapshot function, for example:
//
//	follow && count > 0
package rule

import (
	"fmt"
	"strings"

	"github.com/grindlemire/scrollsnap/snap"
)

// Engine selects the expression language.
type Engine int

const (
	// EngineExpr evaluates expressions with expr-lang/expr.
	EngineExpr Engine = iota
	// EngineCEL evaluates expressions with the Common Expression Language.
	EngineCEL
)

// String returns the configuration name of the engine.
func (e Engine) String() string {
	switch e {
	case EngineExpr:
		return "expr"
	case EngineCEL:
		return "cel"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// ParseEngine maps a configuration name to an Engine. The empty string means
// EngineExpr.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "expr":
		return EngineExpr, nil
	case "cel":
		return EngineCEL, nil
	default:
		return 0, fmt.Errorf("unknown rule engine %q (want expr or cel)", s)
	}
}

// Compile turns src into a predicate over T. snapshot exposes the fields of
// T the expression may reference; it is also called once on the zero value
// to learn the variable names and types.
//
// An empty src compiles to snap.Never. A predicate whose evaluation fails at
// runtime reports false.
func Compile[T any](engine Engine, src string, snapshot func(T) map[string]any) (snap.Predicate[T], error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return snap.Never[T], nil
	}
	if snapshot == nil {
		return nil, fmt.Errorf("rule %q: snapshot function is required", src)
	}

	var zero T
	vars := snapshot(zero)

	var (
		eval func(map[string]any) (bool, error)
		err  error
	)
	switch engine {
	case EngineExpr:
		eval, err = compileExpr(src, vars)
	case EngineCEL:
		eval, err = compileCEL(src, vars)
	default:
		return nil, fmt.Errorf("rule %q: unknown engine %v", src, engine)
	}
	if err != nil {
		return nil, fmt.Errorf("%s rule %q: %w", engine, src, err)
	}

	return func(data T) bool {
		ok, err := eval(snapshot(data))
		if err != nil {
			logEvalError(engine, src, err)
			return false
		}
		return ok
	}, nil
}
