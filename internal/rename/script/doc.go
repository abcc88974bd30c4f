// Package script runs Lua-defined rename input validators.
//
// A validator script declares two global functions:
//
//	function matches(kind)   -- element kind the validator applies to
//	    return kind == "attribute_declaration_name"
//	end
//
//	function is_valid(name)  -- proposed new name
//	    return #name <= 32
//	end
//
// Scripts run in a sandboxed Lua state: no file, shell, or module loading,
// only the string, table, and math libraries. A script error or timeout is
// treated as rejection, never propagated to the rename flow.
//
// gopher-lua states are not goroutine-safe; all calls into the state are
// serialized through the validator's mutex.
package script
