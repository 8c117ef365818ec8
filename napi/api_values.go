package napi

import (
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/dispatch"
)

func (a *API) GetUndefined(env abi.Env, result *abi.Value) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetUndefined), env, result)
}

func (a *API) GetNull(env abi.Env, result *abi.Value) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetNull), env, result)
}

func (a *API) GetGlobal(env abi.Env, result *abi.Value) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetGlobal), env, result)
}

func (a *API) GetBoolean(env abi.Env, value bool, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetBoolean), env, abi.BoolByte(value), result)
}

func (a *API) CreateObject(env abi.Env, result *abi.Value) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(CreateObject), env, result)
}

func (a *API) CreateArray(env abi.Env, result *abi.Value) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(CreateArray), env, result)
}

func (a *API) CreateArrayWithLength(env abi.Env, length uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateArrayWithLength), env, length, result)
}

func (a *API) CreateDouble(env abi.Env, value float64, result *abi.Value) (abi.Status, error) {
	return dispatch.F64O1(a.d, int(CreateDouble), env, value, result)
}

func (a *API) CreateInt32(env abi.Env, value int32, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateInt32), env, value, result)
}

func (a *API) CreateUint32(env abi.Env, value uint32, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateUint32), env, value, result)
}

func (a *API) CreateInt64(env abi.Env, value int64, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateInt64), env, value, result)
}

// CreateStringLatin1 creates a string from ISO-8859-1 bytes.
func (a *API) CreateStringLatin1(env abi.Env, s []byte, result *abi.Value) (abi.Status, error) {
	return dispatch.BufIn(a.d, int(CreateStringLatin1), env, s, result)
}

// CreateStringUTF8 creates a string without copying s.
func (a *API) CreateStringUTF8(env abi.Env, s string, result *abi.Value) (abi.Status, error) {
	return dispatch.BufIn(a.d, int(CreateStringUTF8), env, stringBytes(s), result)
}

func (a *API) CreateStringUTF16(env abi.Env, s []uint16, result *abi.Value) (abi.Status, error) {
	return dispatch.BufIn(a.d, int(CreateStringUTF16), env, s, result)
}

// CreateSymbol creates a symbol; description may be the null value.
func (a *API) CreateSymbol(env abi.Env, description abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateSymbol), env, description, result)
}

// SymbolFor returns the registry symbol for description.
func (a *API) SymbolFor(env abi.Env, description string, result *abi.Value) (abi.Status, error) {
	return dispatch.BufIn(a.d, int(SymbolFor), env, stringBytes(description), result)
}

func (a *API) CreateBigintInt64(env abi.Env, value int64, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateBigintInt64), env, value, result)
}

func (a *API) CreateBigintUint64(env abi.Env, value uint64, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CreateBigintUint64), env, value, result)
}

// CreateBigintWords builds a BigInt from little-endian 64-bit words.
func (a *API) CreateBigintWords(env abi.Env, signBit int32, words []uint64, result *abi.Value) (abi.Status, error) {
	return dispatch.V3O1(a.d, int(CreateBigintWords), env, signBit, uintptr(len(words)), unsafe.Pointer(unsafe.SliceData(words)), result)
}

func (a *API) CreateError(env abi.Env, code, msg abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(CreateError), env, code, msg, result)
}

func (a *API) CreateTypeError(env abi.Env, code, msg abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(CreateTypeError), env, code, msg, result)
}

func (a *API) CreateRangeError(env abi.Env, code, msg abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(CreateRangeError), env, code, msg, result)
}

func (a *API) CreateSyntaxError(env abi.Env, code, msg abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(CreateSyntaxError), env, code, msg, result)
}

func (a *API) Throw(env abi.Env, err abi.Value) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(Throw), env, err)
}

// ThrowError throws a new Error. An empty code is omitted; the host
// rejects an empty msg with InvalidArg.
func (a *API) ThrowError(env abi.Env, code, msg string) (abi.Status, error) {
	return dispatch.Text2(a.d, int(ThrowError), env, code, msg)
}

func (a *API) ThrowTypeError(env abi.Env, code, msg string) (abi.Status, error) {
	return dispatch.Text2(a.d, int(ThrowTypeError), env, code, msg)
}

func (a *API) ThrowRangeError(env abi.Env, code, msg string) (abi.Status, error) {
	return dispatch.Text2(a.d, int(ThrowRangeError), env, code, msg)
}

func (a *API) ThrowSyntaxError(env abi.Env, code, msg string) (abi.Status, error) {
	return dispatch.Text2(a.d, int(ThrowSyntaxError), env, code, msg)
}

func (a *API) IsError(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsError, env, value, result)
}

func (a *API) IsExceptionPending(env abi.Env, result *bool) (abi.Status, error) {
	var b abi.Bool
	st, err := dispatch.V0O1(a.d, int(IsExceptionPending), env, boolSlot(result, &b))
	storeBool(result, b)
	return st, err
}

func (a *API) GetAndClearLastException(env abi.Env, result *abi.Value) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetAndClearLastException), env, result)
}

// GetLastErrorInfo points result at host-owned memory that the next call
// on env overwrites.
func (a *API) GetLastErrorInfo(env abi.Env, result **abi.ExtendedErrorInfo) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetLastErrorInfo), env, result)
}

func (a *API) FatalException(env abi.Env, err abi.Value) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(FatalException), env, err)
}

func (a *API) GetValueDouble(env abi.Env, value abi.Value, result *float64) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetValueDouble), env, value, result)
}

func (a *API) GetValueInt32(env abi.Env, value abi.Value, result *int32) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetValueInt32), env, value, result)
}

func (a *API) GetValueUint32(env abi.Env, value abi.Value, result *uint32) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetValueUint32), env, value, result)
}

func (a *API) GetValueInt64(env abi.Env, value abi.Value, result *int64) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetValueInt64), env, value, result)
}

func (a *API) GetValueBool(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, GetValueBool, env, value, result)
}

// GetValueStringLatin1 copies into buf and reports the bytes written, not
// counting the terminator. An empty buf asks only for the length.
func (a *API) GetValueStringLatin1(env abi.Env, value abi.Value, buf []byte, result *uintptr) (abi.Status, error) {
	return dispatch.Buf(a.d, int(GetValueStringLatin1), env, value, buf, result)
}

func (a *API) GetValueStringUTF8(env abi.Env, value abi.Value, buf []byte, result *uintptr) (abi.Status, error) {
	return dispatch.Buf(a.d, int(GetValueStringUTF8), env, value, buf, result)
}

func (a *API) GetValueStringUTF16(env abi.Env, value abi.Value, buf []uint16, result *uintptr) (abi.Status, error) {
	return dispatch.Buf(a.d, int(GetValueStringUTF16), env, value, buf, result)
}

func (a *API) GetValueBigintInt64(env abi.Env, value abi.Value, result *int64, lossless *bool) (abi.Status, error) {
	var b abi.Bool
	st, err := dispatch.V1O2(a.d, int(GetValueBigintInt64), env, value, result, boolSlot(lossless, &b))
	storeBool(lossless, b)
	return st, err
}

func (a *API) GetValueBigintUint64(env abi.Env, value abi.Value, result *uint64, lossless *bool) (abi.Status, error) {
	var b abi.Bool
	st, err := dispatch.V1O2(a.d, int(GetValueBigintUint64), env, value, result, boolSlot(lossless, &b))
	storeBool(lossless, b)
	return st, err
}

// GetValueBigintWords exports up to len(words) words. With words nil the
// host only reports the count needed.
func (a *API) GetValueBigintWords(env abi.Env, value abi.Value, signBit *int32, count *uintptr, words []uint64) (abi.Status, error) {
	if count != nil && words != nil {
		*count = uintptr(len(words))
	}
	return dispatch.BigWords(a.d, int(GetValueBigintWords), env, value, signBit, count, words)
}

func (a *API) Typeof(env abi.Env, value abi.Value, result *abi.ValueType) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(Typeof), env, value, result)
}

func (a *API) CoerceToBool(env abi.Env, value abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CoerceToBool), env, value, result)
}

func (a *API) CoerceToNumber(env abi.Env, value abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CoerceToNumber), env, value, result)
}

func (a *API) CoerceToObject(env abi.Env, value abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CoerceToObject), env, value, result)
}

func (a *API) CoerceToString(env abi.Env, value abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(CoerceToString), env, value, result)
}

func (a *API) Instanceof(env abi.Env, object, constructor abi.Value, result *bool) (abi.Status, error) {
	return pairCheck(a, Instanceof, env, object, constructor, result)
}

func (a *API) StrictEquals(env abi.Env, lhs, rhs abi.Value, result *bool) (abi.Status, error) {
	return pairCheck(a, StrictEquals, env, lhs, rhs, result)
}

// Booleans cross the boundary as one byte. A nil destination stays NULL so
// the host reports InvalidArg itself.

func boolSlot(dst *bool, b *abi.Bool) *abi.Bool {
	if dst == nil {
		return nil
	}
	return b
}

func storeBool(dst *bool, b abi.Bool) {
	if dst != nil {
		*dst = b.True()
	}
}

func isCheck[H abi.Handle](a *API, m Method, env abi.Env, h H, result *bool) (abi.Status, error) {
	var b abi.Bool
	st, err := dispatch.V1O1(a.d, int(m), env, h, boolSlot(result, &b))
	storeBool(result, b)
	return st, err
}

func pairCheck[A, B dispatch.Arg](a *API, m Method, env abi.Env, x A, y B, result *bool) (abi.Status, error) {
	var b abi.Bool
	st, err := dispatch.V2O1(a.d, int(m), env, x, y, boolSlot(result, &b))
	storeBool(result, b)
	return st, err
}

func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
