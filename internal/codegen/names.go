package codegen

import "fmt"

// reserved holds the names a SimpleLang identifier cannot keep in the
// generated program: Python keywords, the builtins the generated code
// refers to, and the runtime helpers.
var reserved = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true,

	"abs": true, "bool": true, "int": true, "list": true, "print": true,

	divHelper: true, modHelper: true,
}

// namespace hands out distinct Python names within one Python scope:
// the module, or the locals of one function.
type namespace struct {
	used map[string]bool
}

func newNamespace(parent *namespace) *namespace {
	ns := &namespace{used: make(map[string]bool)}
	if parent != nil {
		for name := range parent.used {
			ns.used[name] = true
		}
	}
	return ns
}

// unique returns a name based on name that is not yet used in ns and
// marks it used. Reserved names get a trailing underscore; later
// declarations of a taken name get a numeric suffix.
func (ns *namespace) unique(name string) string {
	base := name
	if reserved[base] {
		base += "_"
	}
	n := base
	for i := 1; ns.used[n]; i++ {
		n = fmt.Sprintf("%s_%d", base, i)
	}
	ns.used[n] = true
	return n
}
