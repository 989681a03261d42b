package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"astgen/internal/ast"
)

// installPythonRules populates the catalog with the Python target rules.
// One entry per node kind; type descriptors and literal instances of the
// same underlying type are separate entries on purpose.
func (g *Generator) installPythonRules() {
	g.Register(ast.BLOCK, rule(renderBlockNode))

	// Type annotations. Complex types follow the two-component constructor
	// view of the value, not a native complex type.
	g.Register(ast.BOOLEAN_TYPE, literal("bool"))
	g.Register(ast.INT32_TYPE, literal("int"))
	g.Register(ast.FLOAT16_TYPE, literal("float"))
	g.Register(ast.FLOAT32_TYPE, literal("float"))
	g.Register(ast.FLOAT64_TYPE, literal("float"))
	g.Register(ast.COMPLEX32_TYPE, literal("(float, float)"))
	g.Register(ast.COMPLEX64_TYPE, literal("(float, float)"))
	g.Register(ast.UTF8_STRING_TYPE, literal("str"))
	g.Register(ast.UTF8_CHAR_TYPE, literal("str"))

	g.Register(ast.LITERAL_BOOLEAN, rule(renderLiteralBoolean))
	g.Register(ast.LITERAL_INT32, rule(renderLiteralInt32))
	g.Register(ast.LITERAL_FLOAT16, rule(renderLiteralFloat16))
	g.Register(ast.LITERAL_FLOAT32, rule(renderLiteralFloat32))
	g.Register(ast.LITERAL_FLOAT64, rule(renderLiteralFloat64))
	g.Register(ast.LITERAL_COMPLEX32, rule(renderLiteralComplex32))
	g.Register(ast.LITERAL_COMPLEX64, rule(renderLiteralComplex64))
	g.Register(ast.LITERAL_UTF8_STRING, rule(renderLiteralUTF8String))
	g.Register(ast.LITERAL_UTF8_CHAR, rule(renderLiteralUTF8Char))

	g.Register(ast.BINARY_OP, rule(renderBinaryOp))
	g.Register(ast.UNARY_OP, rule(renderUnaryOp))

	g.Register(ast.VARIABLE, rule(renderVariable))
	g.Register(ast.VARIABLE_ASSIGNMENT, rule(renderVariableAssignment))

	g.Register(ast.ARGUMENT, rule(renderArgument))
	g.Register(ast.ARGUMENTS, rule(renderArguments))
	g.Register(ast.FUNCTION, rule(renderFunction))
	g.Register(ast.FUNCTION_RETURN, rule(renderFunctionReturn))
	g.Register(ast.LAMBDA_EXPR, rule(renderLambdaExpr))

	g.Register(ast.IF_STMT, rule(renderIfStmt))
	g.Register(ast.IF_EXPR, rule(renderIfExpr))
	g.Register(ast.WHILE_STMT, rule(renderWhileStmt))
	g.Register(ast.WHILE_EXPR, rule(renderWhileExpr))
	g.Register(ast.FOR_RANGE_LOOP_EXPR, rule(renderForRangeLoopExpr))

	g.Register(ast.ALIAS_EXPR, rule(renderAliasExpr))
	g.Register(ast.IMPORT_STMT, rule(renderImportStmt))
	g.Register(ast.IMPORT_FROM_STMT, rule(renderImportFromStmt))
	g.Register(ast.IMPORT_EXPR, rule(renderImportExpr))
	g.Register(ast.IMPORT_FROM_EXPR, rule(renderImportFromExpr))

	g.Register(ast.TYPE_CAST_EXPR, rule(renderTypeCastExpr))
}

func renderBlockNode(r *Renderer, node *ast.Block) (string, error) {
	return r.renderBlock(node)
}

func renderLiteralBoolean(_ *Renderer, node *ast.LiteralBoolean) (string, error) {
	if node.Value {
		return "True", nil
	}
	return "False", nil
}

func renderLiteralInt32(_ *Renderer, node *ast.LiteralInt32) (string, error) {
	return strconv.FormatInt(int64(node.Value), 10), nil
}

func renderLiteralFloat16(_ *Renderer, node *ast.LiteralFloat16) (string, error) {
	return formatFloatLiteral(float64(node.Value), 32), nil
}

func renderLiteralFloat32(_ *Renderer, node *ast.LiteralFloat32) (string, error) {
	return formatFloatLiteral(float64(node.Value), 32), nil
}

func renderLiteralFloat64(_ *Renderer, node *ast.LiteralFloat64) (string, error) {
	return formatFloatLiteral(node.Value, 64), nil
}

func renderLiteralComplex32(_ *Renderer, node *ast.LiteralComplex32) (string, error) {
	return formatComplex(node.Real, node.Imag), nil
}

func renderLiteralComplex64(_ *Renderer, node *ast.LiteralComplex64) (string, error) {
	return formatComplex(node.Real, node.Imag), nil
}

func renderLiteralUTF8String(_ *Renderer, node *ast.LiteralUTF8String) (string, error) {
	return quoteText(node.Value), nil
}

func renderLiteralUTF8Char(_ *Renderer, node *ast.LiteralUTF8Char) (string, error) {
	return quoteText(node.Value), nil
}

func renderBinaryOp(r *Renderer, node *ast.BinaryOp) (string, error) {
	if node.Lhs == nil || node.Rhs == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing operand"}
	}
	lhs, err := r.Visit(node.Lhs)
	if err != nil {
		return "", err
	}
	rhs, err := r.Visit(node.Rhs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", lhs, node.Op, rhs), nil
}

func renderUnaryOp(r *Renderer, node *ast.UnaryOp) (string, error) {
	if node.Operand == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing operand"}
	}
	operand, err := r.Visit(node.Operand)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s%s)", node.Op, operand), nil
}

func renderVariable(_ *Renderer, node *ast.Variable) (string, error) {
	return node.Name, nil
}

func renderVariableAssignment(r *Renderer, node *ast.VariableAssignment) (string, error) {
	if node.Value == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing value"}
	}
	value, err := r.Visit(node.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %s", node.Name, value), nil
}

func renderArgument(r *Renderer, node *ast.Argument) (string, error) {
	if node.Type == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing type reference"}
	}
	typ, err := r.Visit(node.Type)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", node.Name, typ), nil
}

func renderArguments(r *Renderer, node *ast.Arguments) (string, error) {
	parts := make([]string, 0, len(node.Args))
	for _, arg := range node.Args {
		text, err := r.Visit(arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", "), nil
}

func renderFunction(r *Renderer, node *ast.Function) (string, error) {
	if node.Prototype == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing prototype"}
	}
	if node.Body == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing body"}
	}

	args := ""
	if node.Prototype.Args != nil {
		var err error
		args, err = r.Visit(node.Prototype.Args)
		if err != nil {
			return "", err
		}
	}

	returns := ""
	if node.Prototype.ReturnType != nil {
		ret, err := r.Visit(node.Prototype.ReturnType)
		if err != nil {
			return "", err
		}
		returns = " -> " + ret
	}

	body, err := r.renderBlock(node.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("def %s(%s)%s:\n%s", node.Prototype.Name, args, returns, body), nil
}

func renderFunctionReturn(r *Renderer, node *ast.FunctionReturn) (string, error) {
	if node.Value == nil {
		return "return", nil
	}
	value, err := r.Visit(node.Value)
	if err != nil {
		return "", err
	}
	return "return " + value, nil
}

func renderLambdaExpr(r *Renderer, node *ast.LambdaExpr) (string, error) {
	if node.Body == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing body"}
	}
	params := ""
	if node.Params != nil {
		var err error
		params, err = r.Visit(node.Params)
		if err != nil {
			return "", err
		}
	}
	body, err := r.Visit(node.Body)
	if err != nil {
		return "", err
	}
	// The space survives even with no parameters: "lambda : 1".
	return fmt.Sprintf("lambda %s: %s", params, body), nil
}

func renderIfStmt(r *Renderer, node *ast.IfStmt) (string, error) {
	if node.Cond == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing condition"}
	}
	if node.Then == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing then branch"}
	}
	cond, err := r.Visit(node.Cond)
	if err != nil {
		return "", err
	}
	then, err := r.renderBlock(node.Then)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("if %s:\n%s", cond, then))
	if node.Else != nil {
		els, err := r.renderBlock(node.Else)
		if err != nil {
			return "", err
		}
		b.WriteString(fmt.Sprintf("\n%selse:\n%s", r.Indent(), els))
	}
	return b.String(), nil
}

func renderIfExpr(r *Renderer, node *ast.IfExpr) (string, error) {
	if node.Cond == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing condition"}
	}
	if node.Then == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing then expression"}
	}
	cond, err := r.Visit(node.Cond)
	if err != nil {
		return "", err
	}
	then, err := r.Visit(node.Then)
	if err != nil {
		return "", err
	}
	if node.Else == nil {
		return fmt.Sprintf("%s if %s", then, cond), nil
	}
	els, err := r.Visit(node.Else)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s if %s else %s", then, cond, els), nil
}

func renderWhileStmt(r *Renderer, node *ast.WhileStmt) (string, error) {
	if node.Cond == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing condition"}
	}
	if node.Body == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing body"}
	}
	cond, err := r.Visit(node.Cond)
	if err != nil {
		return "", err
	}
	body, err := r.renderBlock(node.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("while %s:\n%s", cond, body), nil
}

func renderWhileExpr(r *Renderer, node *ast.WhileExpr) (string, error) {
	if node.Cond == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing condition"}
	}
	if node.Body == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing body"}
	}
	cond, err := r.Visit(node.Cond)
	if err != nil {
		return "", err
	}
	body, err := r.Visit(node.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s for _ in iter(lambda: %s, False)]", body, cond), nil
}

func renderForRangeLoopExpr(r *Renderer, node *ast.ForRangeLoopExpr) (string, error) {
	if node.Variable == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing loop variable"}
	}
	if node.Start == nil || node.End == nil || node.Step == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing range bound"}
	}
	if node.Body == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing body"}
	}
	variable, err := r.Visit(node.Variable)
	if err != nil {
		return "", err
	}
	start, err := r.Visit(node.Start)
	if err != nil {
		return "", err
	}
	end, err := r.Visit(node.End)
	if err != nil {
		return "", err
	}
	step, err := r.Visit(node.Step)
	if err != nil {
		return "", err
	}
	body, err := r.Visit(node.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s for %s in range(%s, %s, %s)]", body, variable, start, end, step), nil
}

func renderAliasExpr(_ *Renderer, node *ast.AliasExpr) (string, error) {
	return aliasText(node), nil
}

func renderImportStmt(r *Renderer, node *ast.ImportStmt) (string, error) {
	if len(node.Names) == 0 {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "import with no names"}
	}
	return "import " + joinAliases(node.Names), nil
}

func renderImportFromStmt(r *Renderer, node *ast.ImportFromStmt) (string, error) {
	if len(node.Names) == 0 {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "import with no names"}
	}
	if node.Module == "" && node.Level == 0 {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "import with no module"}
	}
	return fmt.Sprintf("from %s import %s", moduleSpec(node.Module, node.Level), joinAliases(node.Names)), nil
}

func renderImportExpr(r *Renderer, node *ast.ImportExpr) (string, error) {
	if len(node.Names) == 0 {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "import with no names"}
	}

	if len(node.Names) == 1 {
		return fmt.Sprintf("module = __import__('%s')", aliasText(node.Names[0])), nil
	}

	targets := make([]string, len(node.Names))
	calls := make([]string, len(node.Names))
	for i, alias := range node.Names {
		targets[i] = fmt.Sprintf("module%d", i+1)
		calls[i] = fmt.Sprintf("__import__('%s')", aliasText(alias))
	}
	return fmt.Sprintf("%s = (%s )", strings.Join(targets, ", "), strings.Join(calls, " , ")), nil
}

func renderImportFromExpr(r *Renderer, node *ast.ImportFromExpr) (string, error) {
	if len(node.Names) == 0 {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "import with no names"}
	}
	if node.Module == "" && node.Level == 0 {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "import with no module"}
	}

	module := moduleSpec(node.Module, node.Level)
	if len(node.Names) == 1 {
		return fmt.Sprintf("name = %s", getattrCall(module, node.Names[0])), nil
	}

	targets := make([]string, len(node.Names))
	calls := make([]string, len(node.Names))
	for i, alias := range node.Names {
		targets[i] = fmt.Sprintf("name%d", i+1)
		calls[i] = getattrCall(module, alias)
	}
	return fmt.Sprintf("%s = (%s)", strings.Join(targets, ", "), strings.Join(calls, ", ")), nil
}

func renderTypeCastExpr(r *Renderer, node *ast.TypeCastExpr) (string, error) {
	if node.Target == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing target type"}
	}
	if node.Expr == nil {
		return "", &MalformedNodeError{Kind: node.NodeKind(), Loc: node.Loc, Detail: "missing expression"}
	}
	target, err := r.Visit(node.Target)
	if err != nil {
		return "", err
	}
	expr, err := r.Visit(node.Expr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("cast(%s, %s)", target, expr), nil
}

var textQuoter = strings.NewReplacer(`\`, `\\`, "'", `\'`)

// quoteText wraps a string or char value in single quotes, escaping the
// quote and backslash characters so the emitted literal stays terminated.
func quoteText(value string) string {
	return "'" + textQuoter.Replace(value) + "'"
}

// aliasText is the "<name>" or "<name> as <asname>" spelling of an alias.
func aliasText(alias *ast.AliasExpr) string {
	if alias.AsName == "" {
		return alias.Name
	}
	return fmt.Sprintf("%s as %s", alias.Name, alias.AsName)
}

func joinAliases(aliases []*ast.AliasExpr) string {
	parts := make([]string, len(aliases))
	for i, alias := range aliases {
		parts[i] = aliasText(alias)
	}
	return strings.Join(parts, ", ")
}

// moduleSpec prefixes the module name with one path-ascent marker per
// relative level. A purely relative import has an empty module name and a
// non-zero level.
func moduleSpec(module string, level int) string {
	return strings.Repeat(".", level) + module
}

// getattrCall materializes one from-import alias as a dynamic lookup.
func getattrCall(module string, alias *ast.AliasExpr) string {
	text := aliasText(alias)
	return fmt.Sprintf("getattr(__import__('%s', fromlist=['%s']), '%s')", module, text, text)
}

// formatFloat renders the shortest decimal form that round-trips at the
// literal's precision.
func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// formatFloatLiteral renders a standalone float literal. Integral values
// keep a trailing ".0" so the emitted text stays a float literal rather
// than an integer one. Complex components do not go through here; their
// pinned form drops the ".0".
func formatFloatLiteral(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}

// formatComplex renders the explicit two-component constructor form.
// Integral components drop the trailing ".0": complex(1, 2.8).
func formatComplex(re, im float64) string {
	return fmt.Sprintf("complex(%s, %s)", formatFloat(re, 64), formatFloat(im, 64))
}
