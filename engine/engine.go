package engine

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"
)

// ExecuteStarlark executes a script with provided globals and returns a map of global names to native Go values.
func ExecuteStarlark(threadName string, script string, inputs map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: threadName, Print: func(_ *starlark.Thread, msg string) { log.Info(msg, "script", threadName) }}

	globals := starlark.StringDict{}
	for k, v := range inputs {
		if val, err := toStarlarkValue(v); err == nil {
			globals[k] = val
		}
	}

	resultGlobals, err := starlark.ExecFile(thread, threadName, script, globals)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range resultGlobals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

// ExecuteFile reads and executes the script at path.
func ExecuteFile(path string, inputs map[string]interface{}) (map[string]interface{}, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out, err := ExecuteStarlark(path, string(src), inputs)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	return out, nil
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		items := make([]interface{}, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			items = append(items, FromStarlarkValue(val.Index(i)))
		}
		return items
	}
	return nil
}
