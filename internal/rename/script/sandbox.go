package script

import (
	lua "github.com/yuin/gopher-lua"
)

// sandbox strips a Lua state down to what a validator script needs.
//
// Validators are pure string predicates: they get the string, table, and
// math libraries and nothing that touches the filesystem, environment, or
// module loader.
func sandbox(L *lua.LState) {
	// Remove the code-loading entry points.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	// Clear the module search paths so nothing can be pulled from disk.
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	// Whitelist-based require: only built-in pure libraries.
	safeModules := map[string]bool{
		"string": true,
		"table":  true,
		"math":   true,
	}
	originalRequire := L.GetGlobal("require")

	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)
		if !safeModules[modName] {
			L.RaiseError("module %q is not available to validators", modName)
			return 0 // unreachable, RaiseError longjmps
		}
		L.Push(originalRequire)
		L.Push(lua.LString(modName))
		L.Call(1, 1)
		return 1
	}))

	// io and os are never available, capability or not.
	L.SetGlobal("io", lua.LNil)
	L.SetGlobal("os", lua.LNil)
}
