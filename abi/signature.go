package abi

import "strings"

// ArgKind classifies one C parameter after the leading napi_env.
type ArgKind uint8

const (
	ArgWord     ArgKind = iota // handle, size_t, pointer-sized integer passed by value
	ArgI32                     // int32_t, uint32_t or a C enum passed by value
	ArgI64                     // int64_t/uint64_t passed by value
	ArgBool                    // bool passed by value
	ArgF64                     // double passed by value
	ArgPtr                     // input pointer: buffer, struct, array
	ArgText                    // const char*, optionally NULL
	OutWord                    // napi_value*, void**, size_t* and friends
	OutI32                     // int32_t* or enum*
	OutU32                     // uint32_t*
	OutI64                     // int64_t*/uint64_t*
	OutF64                     // double*
	OutBool                    // bool*
	InOutWord                  // size_t* read then written by the host
)

var argKindNames = [...]string{
	ArgWord:   "word",
	ArgI32:    "i32",
	ArgI64:    "i64",
	ArgBool:   "bool",
	ArgF64:    "f64",
	ArgPtr:    "ptr",
	ArgText:   "text",
	OutWord:   "*word",
	OutI32:    "*i32",
	OutU32:    "*u32",
	OutI64:    "*i64",
	OutF64:    "*f64",
	OutBool:   "*bool",
	InOutWord: "&word",
}

func (k ArgKind) String() string {
	if int(k) < len(argKindNames) {
		return argKindNames[k]
	}
	return "?"
}

// IsOut reports whether the host writes through this slot.
func (k ArgKind) IsOut() bool {
	return k >= OutWord
}

// Size is the byte width the host writes for an out slot, 0 for inputs.
func (k ArgKind) Size() int {
	switch k {
	case OutBool:
		return 1
	case OutI32, OutU32:
		return 4
	case OutWord, OutI64, OutF64, InOutWord:
		return 8
	}
	return 0
}

// Signature describes a host operation's parameters after napi_env.
// NoEnv marks the few operations that take no environment.
type Signature struct {
	Args  []ArgKind
	NoEnv bool
}

// Sig builds an env-first signature.
func Sig(args ...ArgKind) Signature {
	return Signature{Args: args}
}

// RawSig builds a signature without the leading env.
func RawSig(args ...ArgKind) Signature {
	return Signature{Args: args, NoEnv: true}
}

// Values counts by-value slots.
func (s Signature) Values() int {
	n := 0
	for _, a := range s.Args {
		if !a.IsOut() {
			n++
		}
	}
	return n
}

// Outs counts slots the host writes through.
func (s Signature) Outs() int {
	return len(s.Args) - s.Values()
}

// Shape is a short name like "v2o1" used for grouping and display.
func (s Signature) Shape() string {
	var b strings.Builder
	if s.NoEnv {
		b.WriteString("raw:")
	}
	b.WriteByte('v')
	b.WriteByte(byte('0' + s.Values()))
	b.WriteByte('o')
	b.WriteByte(byte('0' + s.Outs()))
	return b.String()
}

func (s Signature) String() string {
	parts := make([]string, 0, len(s.Args)+1)
	if !s.NoEnv {
		parts = append(parts, "env")
	}
	for _, a := range s.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, ", ") + ") -> status"
}
