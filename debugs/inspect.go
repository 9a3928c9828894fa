package debugs

import (
	"fmt"

	"github.com/minimav/intcode/images"
	"github.com/minimav/intcode/intcode"
	"go.starlark.net/starlark"
)

// Inspect exposes the registers and memory of m as starlark globals.
func Inspect(m *intcode.Machine) map[string]any {
	ret := map[string]any{
		"ip":            m.IP(),
		"relative_base": m.RelativeBase(),
		"state":         m.State(),
		"steps":         m.Steps(),
		"memory":        m.Memory(),
		"peek": starlark.NewBuiltin("peek", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var addr starlark.Int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr); err != nil {
				return nil, err
			}
			a, ok := addr.Int64()
			if !ok {
				return nil, fmt.Errorf("%s: address out of range: %v", fn.Name(), addr)
			}
			v, err := m.Peek(a)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt64(v), nil
		}),
		"image": func() string {
			return images.Format(m.Memory())
		},
	}
	if err := m.Err(); err != nil {
		ret["error"] = err.Error()
	}
	return ret
}
