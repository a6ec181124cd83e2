package bytecode

// JSBuiltins maps a builtin number to the JavaScript expression the
// runtime binds it to. Entries past Object/Math/JSON/String are
// Hermes-internal helpers exposed under their runtime names.
var JSBuiltins = [52]string{
	"Array.isArray",
	"Date.UTC",
	"Date.parse",
	"JSON.parse",
	"JSON.stringify",
	"Math.abs",
	"Math.acos",
	"Math.asin",
	"Math.atan",
	"Math.atan2",
	"Math.ceil",
	"Math.cos",
	"Math.exp",
	"Math.floor",
	"Math.hypot",
	"Math.imul",
	"Math.log",
	"Math.max",
	"Math.min",
	"Math.pow",
	"Math.round",
	"Math.sin",
	"Math.sqrt",
	"Math.tan",
	"Math.trunc",
	"Object.create",
	"Object.defineProperties",
	"Object.defineProperty",
	"Object.freeze",
	"Object.getOwnPropertyDescriptor",
	"Object.getOwnPropertyNames",
	"Object.getPrototypeOf",
	"Object.isExtensible",
	"Object.isFrozen",
	"Object.keys",
	"Object.seal",
	"String.fromCharCode",
	"silentSetPrototypeOf",
	"requireFast",
	"getTemplateObject",
	"ensureObject",
	"getMethod",
	"throwTypeError",
	"generatorSetDelegated",
	"copyDataProperties",
	"copyRestArgs",
	"arraySpread",
	"apply",
	"exportAll",
	"exponentiationOperator",
	"initRegexNamedGroups",
	"spawnAsync",
}

// Builtin returns the JS expression for builtin n, or ("", false) when
// n is outside the table.
func Builtin(n int) (string, bool) {
	if n < 0 || n >= len(JSBuiltins) {
		return "", false
	}
	return JSBuiltins[n], true
}
