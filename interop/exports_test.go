package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/scope"
)

type mathHost struct {
	calls int
}

func (h *mathHost) Add(c *Call) (scope.Value[abi.Value], error) {
	h.calls++
	return c.Arg(0)
}

func (h *mathHost) URLFor(c *Call) (scope.Value[abi.Value], error) {
	return c.Runtime().NewString(c.Scope(), "https://example.test")
}

func (h *mathHost) Count() int { return h.calls }

type explicitHost struct{}

func (explicitHost) Functions() map[string]Func {
	return map[string]Func{
		"[custom]name": func(*Call) (scope.Value[abi.Value], error) {
			return scope.Value[abi.Value]{}, nil
		},
	}
}

func TestExport_Methods(t *testing.T) {
	f, r := newRuntime(t)
	h := &mathHost{}
	obj := abi.Value(0x7000)

	require.NoError(t, r.WithHandleScope(env, func(s *scope.Scope) error {
		o, _ := scope.NewIn(s, obj)
		return r.Export(s, o, h)
	}))

	assert.Len(t, f.props[obj], 2)
	add := f.props[obj]["add"]
	require.NotZero(t, add)
	assert.NotZero(t, f.props[obj]["urlFor"])
	assert.Equal(t, "add", f.strings[add])

	f.cbData = f.funcs[add]
	f.cbArgs = []abi.Value{0x123}
	assert.Equal(t, abi.Value(0x123), invokeFunction(env, abi.CallbackInfo(0xC1)))
	assert.Equal(t, 1, h.calls)
}

func TestExport_Registrar(t *testing.T) {
	f, r := newRuntime(t)
	obj := abi.Value(0x7000)

	require.NoError(t, r.WithHandleScope(env, func(s *scope.Scope) error {
		o, _ := scope.NewIn(s, obj)
		return r.Export(s, o, explicitHost{})
	}))
	assert.Contains(t, f.props[obj], "[custom]name")
}

func TestExport_Rejects(t *testing.T) {
	_, r := newRuntime(t)

	require.NoError(t, r.WithHandleScope(env, func(s *scope.Scope) error {
		o, _ := scope.NewIn(s, abi.Value(0x7000))
		assert.ErrorIs(t, r.Export(s, o, nil), errors.ErrInvalidArgument)
		assert.ErrorIs(t, r.Export(s, o, struct{}{}), errors.ErrInvalidArgument)
		assert.ErrorIs(t, r.ExportFunc(s, o, "", func(*Call) (scope.Value[abi.Value], error) {
			return scope.Value[abi.Value]{}, nil
		}), errors.ErrInvalidArgument)
		return nil
	}))
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Add", "add"},
		{"GetValue", "getValue"},
		{"URLFor", "urlFor"},
		{"HTTPServer", "httpServer"},
		{"ID", "id"},
		{"X", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toCamelCase(tt.in), tt.in)
	}
}
