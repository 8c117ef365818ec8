package interop

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/scope"
)

// BootstrapErrorCode is the code of the error thrown when module
// initialization fails.
const BootstrapErrorCode = "ERR_NAPI_BOOTSTRAP"

// InitFunc initializes the module for one env. Returning the zero Value
// keeps exports as the module's exports.
type InitFunc func(r *Runtime, s *scope.Scope, exports scope.Value[abi.Value]) (scope.Value[abi.Value], error)

type registration struct {
	api  *napi.API
	init InitFunc
	opts []Option
}

var registered atomic.Pointer[registration]

// Register installs init as the module initializer. Each env the module
// is loaded into gets its own Runtime built from api and opts. A later
// call replaces the earlier one.
func Register(api *napi.API, init InitFunc, opts ...Option) error {
	if api == nil {
		return errors.InvalidArgument(errors.PhaseEntry, "nil api")
	}
	if init == nil {
		return errors.InvalidArgument(errors.PhaseEntry, "nil init")
	}
	registered.Store(&registration{api: api, init: init, opts: opts})
	return nil
}

// EntryPoint returns the C address of the module init function,
// napi_value (*)(napi_env, napi_value). It is the same for every call.
func EntryPoint() uintptr {
	return entryTrampoline.Addr()
}

// Bootstrap initializes the module for env. It returns the exports
// handle, or 0 after throwing when initialization fails.
func Bootstrap(env abi.Env, exports abi.Value) abi.Value {
	reg := registered.Load()
	if reg == nil {
		Logger().Error("module loaded before Register", zap.Uintptr("env", uintptr(env)))
		return 0
	}
	if env == 0 {
		Logger().Error("module bootstrap with null env")
		return 0
	}
	r, err := New(reg.api, reg.opts...)
	if err != nil {
		Logger().Error("runtime creation failed", zap.Error(err))
		return 0
	}
	r.Attach(env)
	if hook, err := cleanupTrampoline.entry(); err != nil {
		r.logger.Warn("env cleanup hook not installed", zap.Error(err))
	} else if err := check(napi.AddEnvCleanupHook)(reg.api.AddEnvCleanupHook(env, hook, uintptr(env))); err != nil {
		r.logger.Warn("env cleanup hook not installed", zap.Error(err))
	}

	var result abi.Value
	err = r.boundary(env, func(s *scope.Scope) error {
		ex, err := scope.NewIn(s, exports)
		if err != nil {
			return err
		}
		v, err := reg.init(r, s, ex)
		if err != nil {
			return err
		}
		if v.Scope() == nil {
			result = exports
			return nil
		}
		result, err = v.Handle()
		return err
	})
	if err != nil {
		r.logger.Error("module init failed", zap.Error(err))
		r.throw(env, BootstrapErrorCode, err)
		Detach(env)
		_ = r.Close()
		return 0
	}
	r.logger.Debug("module initialized", zap.Uintptr("env", uintptr(env)))
	return result
}

type moduleRecord struct {
	mod  abi.Module
	name []byte
}

// The host keeps pointers into registered modules for the life of the
// process.
var modules struct {
	sync.Mutex
	kept []*moduleRecord
}

// RegisterModule announces the module to the host under name through
// napi_module_register. Register must have been called first.
func RegisterModule(name string) error {
	reg := registered.Load()
	if reg == nil {
		return errors.NotInitialized(errors.PhaseEntry, "module initializer")
	}
	if name == "" {
		return errors.InvalidArgument(errors.PhaseEntry, "empty module name")
	}
	entry, err := entryTrampoline.entry()
	if err != nil {
		return err
	}
	rec := &moduleRecord{name: append([]byte(name), 0)}
	cname := uintptr(unsafe.Pointer(&rec.name[0]))
	rec.mod = abi.Module{
		Version:      abi.ModuleVersion,
		Filename:     cname,
		RegisterFunc: entry,
		ModName:      cname,
	}

	modules.Lock()
	modules.kept = append(modules.kept, rec)
	modules.Unlock()

	return check(napi.ModuleRegister)(reg.api.ModuleRegister(&rec.mod))
}
