package haikulint

import (
	"go/ast"
	"go/types"
	"maps"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/haikulint/internal/config"
)

type packagedFunc struct {
	pkgPath  string
	typeName string
	name     string
}

// Output funcs are the ones a poetic function would use to say something out loud. Their literal
// arguments are what the call selector looks at.
type knownOutputFuncs struct {
	known map[packagedFunc]struct{}
}

func newKnownOutputFuncs(custom []config.FuncRef) *knownOutputFuncs {
	predefined := map[packagedFunc]struct{}{
		// Builtins.
		{pkgPath: "builtin", name: "print"}:   {},
		{pkgPath: "builtin", name: "println"}: {},

		// Stdlib.
		{pkgPath: "fmt", name: "Print"}:                         {},
		{pkgPath: "fmt", name: "Printf"}:                        {},
		{pkgPath: "fmt", name: "Println"}:                       {},
		{pkgPath: "fmt", name: "Fprint"}:                        {},
		{pkgPath: "fmt", name: "Fprintf"}:                       {},
		{pkgPath: "fmt", name: "Fprintln"}:                      {},
		{pkgPath: "log", name: "Print"}:                         {},
		{pkgPath: "log", name: "Printf"}:                        {},
		{pkgPath: "log", name: "Println"}:                       {},
		{pkgPath: "log", typeName: "Logger", name: "Print"}:     {},
		{pkgPath: "log", typeName: "Logger", name: "Printf"}:    {},
		{pkgPath: "log", typeName: "Logger", name: "Println"}:   {},
		{pkgPath: "log/slog", name: "Info"}:                     {},
		{pkgPath: "log/slog", typeName: "Logger", name: "Info"}: {},

		// Zap.
		{pkgPath: "go.uber.org/zap", typeName: "Logger", name: "Info"}:         {},
		{pkgPath: "go.uber.org/zap", typeName: "SugaredLogger", name: "Info"}:  {},
		{pkgPath: "go.uber.org/zap", typeName: "SugaredLogger", name: "Infof"}: {},
	}

	known := maps.Clone(predefined)
	for _, ref := range custom {
		known[packagedFunc{
			pkgPath:  ref.Package,
			typeName: ref.Type,
			name:     ref.Name,
		}] = struct{}{}
	}

	return &knownOutputFuncs{known: known}
}

// isOutputCall checks if the call goes to one of known output functions.
func (k *knownOutputFuncs) isOutputCall(info *types.Info, call *ast.CallExpr) bool {
	if info == nil {
		return false
	}

	switch fn := typeutil.Callee(info, call).(type) {
	case *types.Builtin:
		_, ok := k.known[packagedFunc{pkgPath: "builtin", name: fn.Name()}]
		return ok

	case *types.Func:
		pkg := fn.Pkg()
		if pkg == nil {
			// Methods of universe types, like error.Error.
			return false
		}

		key := packagedFunc{
			pkgPath: pkg.Path(),
			name:    fn.Name(),
		}
		if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
			key.typeName = receiverTypeName(sig.Recv().Type())
		}

		_, ok := k.known[key]
		return ok

	default:
		// Closures and function values are not known outputs.
		return false
	}
}

func receiverTypeName(t types.Type) string {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return ""
	}

	return named.Obj().Name()
}
