package rule

import (
	"fmt"

	"github.com/expr-lang/expr"
)

func compileExpr(src string, vars map[string]any) (func(map[string]any) (bool, error), error) {
	program, err := expr.Compile(src, expr.Env(vars), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(env map[string]any) (bool, error) {
		out, err := expr.Run(program, env)
		if err != nil {
			return false, err
		}
		ok, isBool := out.(bool)
		if !isBool {
			return false, fmt.Errorf("result is %T, not bool", out)
		}
		return ok, nil
	}, nil
}
