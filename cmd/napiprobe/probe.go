package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
)

type probe struct {
	method napi.Method
	addr   uintptr
	err    error
}

func (p probe) ok() bool {
	return p.err == nil
}

func (p probe) state() string {
	switch {
	case p.err == nil:
		return fmt.Sprintf("0x%x", p.addr)
	case stderrors.Is(p.err, errors.ErrNullAddress):
		return "null"
	default:
		return "missing"
	}
}

func (p probe) matches(filter string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	return strings.Contains(p.method.Export(), filter) ||
		strings.Contains(p.method.Signature().Shape(), filter)
}

func probeMethod(api *napi.API, m napi.Method) probe {
	addr, err := api.Addr(m)
	return probe{method: m, addr: addr, err: err}
}

func probeAll(api *napi.API) []probe {
	ms := napi.Methods()
	out := make([]probe, len(ms))
	for i, m := range ms {
		out[i] = probeMethod(api, m)
	}
	return out
}

func resolvedCount(probes []probe) int {
	n := 0
	for _, p := range probes {
		if p.ok() {
			n++
		}
	}
	return n
}

func writeProbe(w io.Writer, p probe) {
	sig := p.method.Signature()
	fmt.Fprintf(w, "  %-44s %-7s %-52s %s\n", p.method.Export(), sig.Shape(), sig.String(), p.state())
}

func writeTable(w io.Writer, probes []probe) {
	for _, p := range probes {
		writeProbe(w, p)
	}
	fmt.Fprintf(w, "\nResolved %d of %d operations\n", resolvedCount(probes), len(probes))
}

// probeOne reports a single operation and fails when it cannot be called.
func probeOne(w io.Writer, api *napi.API, name string) error {
	m, ok := napi.LookupMethod(name)
	if !ok {
		return errors.New(errors.PhaseResolve, errors.KindSymbolNotFound).
			Detail("no operation named %q", name).Build()
	}
	p := probeMethod(api, m)
	writeProbe(w, p)
	return p.err
}
