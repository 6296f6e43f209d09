package recursioncheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"reflect"

	"github.com/owenrumney/go-sarif/sarif"
	"golang.org/x/tools/go/analysis"
)

// RuleID is the SARIF rule id used for every finding
const RuleID = "FIBSEQ_RULE_001"

var Analyzer = &analysis.Analyzer{
	Name:       "reccheck",
	Doc:        "reports functions that call themselves more than once per invocation, costing exponentially many calls",
	Run:        run,
	ResultType: reflect.TypeOf(&sarif.Run{}),
}

func run(pass *analysis.Pass) (interface{}, error) {
	sarifRun := sarif.NewRun("reccheck", "uri_placeholder")
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Body == nil {
				continue
			}
			obj := pass.TypesInfo.Defs[fn.Name]
			if obj == nil {
				continue
			}
			calls := countSelfCalls(pass.TypesInfo, fn.Body, obj)
			if calls < 2 {
				continue
			}
			message := fmt.Sprintf("%s calls itself %d times per invocation; without memoization the number of calls grows exponentially", fn.Name.Name, calls)
			pass.Reportf(fn.Name.Pos(), "%s", message)
			pos := pass.Fset.Position(fn.Name.Pos())
			sarifRun.AddResult(RuleID).
				WithLocation(sarif.NewLocationWithPhysicalLocation(sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().
						WithUri(pos.Filename)).
					WithRegion(sarif.NewRegion().
						WithStartLine(pos.Line).
						WithStartColumn(pos.Column)))).
				WithMessage(sarif.NewMessage().WithText(message))
		}
	}
	return sarifRun, nil
}

// countSelfCalls counts the call sites in body that resolve to obj
func countSelfCalls(info *types.Info, body *ast.BlockStmt, obj types.Object) int {
	count := 0
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		var ident *ast.Ident
		switch fun := call.Fun.(type) {
		case *ast.Ident:
			ident = fun
		case *ast.SelectorExpr:
			// method on the same receiver type, or a qualified call
			ident = fun.Sel
		}
		if ident != nil && info.Uses[ident] == obj {
			count++
		}
		return true
	})
	return count
}
