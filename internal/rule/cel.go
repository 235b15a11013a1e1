package rule

import (
	"fmt"
	"sort"

	"github.com/google/cel-go/cel"
)

func compileCEL(src string, vars map[string]any) (func(map[string]any) (bool, error), error) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := make([]cel.EnvOption, 0, len(names))
	for _, name := range names {
		opts = append(opts, cel.Variable(name, celType(vars[name])))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression yields %s, want bool", out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, err
	}

	return func(activation map[string]any) (bool, error) {
		out, _, err := prg.Eval(activation)
		if err != nil {
			return false, err
		}
		ok, isBool := out.Value().(bool)
		if !isBool {
			return false, fmt.Errorf("result is %v, not bool", out.Type())
		}
		return ok, nil
	}, nil
}

// celType declares a variable from the Go type of its zero-value sample.
func celType(sample any) *cel.Type {
	switch sample.(type) {
	case bool:
		return cel.BoolType
	case int, int8, int16, int32, int64:
		return cel.IntType
	case uint, uint8, uint16, uint32, uint64:
		return cel.UintType
	case float32, float64:
		return cel.DoubleType
	case string:
		return cel.StringType
	default:
		return cel.DynType
	}
}
