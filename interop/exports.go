package interop

import (
	"reflect"
	"sort"
	"unicode"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/scope"
)

// Registrar lets a value name its functions exactly when automatic
// PascalCase-to-camelCase conversion does not fit.
type Registrar interface {
	Functions() map[string]Func
}

var funcType = reflect.TypeOf(Func(nil))

// ExportFunc sets obj[name] to a new function running fn.
func (r *Runtime) ExportFunc(s *scope.Scope, obj scope.Value[abi.Value], name string, fn Func) error {
	if name == "" {
		return errors.InvalidArgument(errors.PhaseEntry, "function name cannot be empty")
	}
	v, err := r.NewFunction(s, name, fn)
	if err != nil {
		return err
	}
	return r.SetNamedProperty(s, obj, name, v)
}

// Export sets a function property on obj for every method of v with the
// Func signature. Method names are converted to camelCase:
// GetValue -> getValue, URLFor -> urlFor.
func (r *Runtime) Export(s *scope.Scope, obj scope.Value[abi.Value], v any) error {
	funcs, err := functionsOf(v)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.ExportFunc(s, obj, name, funcs[name]); err != nil {
			return err
		}
	}
	return nil
}

func functionsOf(v any) (map[string]Func, error) {
	if v == nil {
		return nil, errors.InvalidArgument(errors.PhaseEntry, "nil export source")
	}
	if reg, ok := v.(Registrar); ok {
		return reg.Functions(), nil
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()
	funcs := make(map[string]Func)
	for i := 0; i < rt.NumMethod(); i++ {
		bound := rv.Method(i)
		if !bound.Type().ConvertibleTo(funcType) {
			continue
		}
		funcs[toCamelCase(rt.Method(i).Name)] = bound.Convert(funcType).Interface().(Func)
	}
	if len(funcs) == 0 {
		return nil, errors.New(errors.PhaseEntry, errors.KindInvalidArgument).
			Detail("%T has no methods of type interop.Func", v).Build()
	}
	return funcs, nil
}

// toCamelCase lowers the leading word of a PascalCase name.
// Handles acronyms: HTTPServer -> httpServer, ID -> id
func toCamelCase(s string) string {
	runes := []rune(s)
	end := 0
	for end < len(runes) && unicode.IsUpper(runes[end]) {
		end++
	}
	// Last uppercase before lowercase starts the next word
	if end > 1 && end < len(runes) && unicode.IsLower(runes[end]) {
		end--
	}
	for i := 0; i < end; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
