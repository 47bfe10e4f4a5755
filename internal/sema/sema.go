// Package sema validates a SOL25 program's static semantics: class table
// construction, inheritance well-formedness, identifier scoping, selector
// arity, and keyword misuse (spec.md §4.4).
package sema

import (
	"fmt"

	"github.com/dekarrin/solc25/internal/syntax"
	"github.com/dekarrin/solc25/internal/util"
)

// Error codes, one per spec.md §6 semantic exit code, plus CodeSyntactic (22)
// for the reserved-keyword-as-identifier checks this package also performs.
// Exit codes 10, 11, 21, and 22 for the non-semantic stages live in
// internal/frontend.
const (
	CodeNoMainOrRun  = 31
	CodeNoDefinition = 32
	CodeBadArity     = 33
	CodeCollision    = 34
	CodeOtherSem     = 35
	CodeSyntactic    = 22
)

// Error is a semantic (or reserved-keyword) violation, carrying the exit
// code spec.md §6 assigns to it.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func errAt(code int, format string, a ...interface{}) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, a...)}
}

var reserved = util.NewStringSet(map[string]bool{
	"class": true, "self": true, "super": true,
	"nil": true, "true": true, "false": true,
})

var builtins = util.NewStringSet(map[string]bool{
	"Object": true, "Nil": true, "True": true, "False": true,
	"Integer": true, "String": true, "Block": true,
})

// builtinParent gives the single-level inheritance relationship among
// builtin classes: every builtin other than Object is a direct child of
// Object (spec.md §3, §4.4: "Object is an ancestor of every class").
var builtinParent = map[string]string{
	"Nil": "Object", "True": "Object", "False": "Object",
	"Integer": "Object", "String": "Object", "Block": "Object",
}

var globalLiterals = util.NewStringSet(map[string]bool{"nil": true, "true": true, "false": true})
var pseudoVars = util.NewStringSet(map[string]bool{"self": true, "super": true})

// classSideSelectors lists the class-side selectors every class
// recognises without a declaration (spec.md §3). The selector read, which is
// further gated on a subclass-of-String check, is not in this set; it is
// handled separately in checkClassSideSend.
var classSideSelectors = util.NewStringSet(map[string]bool{"new": true, "from:": true})

type analyzer struct {
	parentOf map[string]string // user class name -> parent name
}

// Analyze validates prog against spec.md §4.4's two-phase design, returning
// the first violation found (short-circuit, per spec.md §7's precedence
// rules) or nil if the program is well-formed.
func Analyze(prog *syntax.Program) error {
	a := &analyzer{parentOf: map[string]string{}}

	// Phase 1a: register class names, rejecting builtin collisions and
	// redeclarations.
	for _, c := range prog.Classes {
		if builtins[c.Name] {
			return errAt(CodeOtherSem, "class %q collides with a builtin class name", c.Name)
		}
		if _, dup := a.parentOf[c.Name]; dup {
			return errAt(CodeOtherSem, "class %q is already defined", c.Name)
		}
		a.parentOf[c.Name] = c.Parent
	}

	// Phase 1b: every class's parent must resolve, and the inheritance
	// chain from every class must reach a builtin without revisiting the
	// starting class.
	for _, c := range prog.Classes {
		if !a.isBuiltinOrUser(c.Parent) {
			return errAt(CodeNoDefinition, "class %q inherits from undefined class %q", c.Name, c.Parent)
		}
		if err := a.checkAcyclic(c.Name); err != nil {
			return err
		}
	}

	// Phase 1c: Main must exist and declare a zero-parameter "run" method.
	main := findClass(prog, "Main")
	if main == nil {
		return errAt(CodeNoMainOrRun, "program does not declare a class named Main")
	}
	runMethod := findMethod(main, "run")
	if runMethod == nil {
		return errAt(CodeNoMainOrRun, "class Main does not declare a run method")
	}
	if len(runMethod.Body.Params) != 0 {
		return errAt(CodeBadArity, "Main.run must take no parameters")
	}

	// Phase 2: per-class, per-method checks.
	for _, c := range prog.Classes {
		if err := a.checkClassMethods(c); err != nil {
			return err
		}
	}

	return nil
}

func findClass(prog *syntax.Program, name string) *syntax.ClassDecl {
	for _, c := range prog.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func findMethod(c *syntax.ClassDecl, selector string) *syntax.MethodDecl {
	for _, m := range c.Methods {
		if m.Selector == selector {
			return m
		}
	}
	return nil
}

func (a *analyzer) isBuiltinOrUser(name string) bool {
	if builtins[name] {
		return true
	}
	_, ok := a.parentOf[name]
	return ok
}

// parentOfAny resolves the parent of any known class, builtin or user.
func (a *analyzer) parentOfAny(name string) (string, bool) {
	if name == "Object" {
		return "", false
	}
	if p, ok := builtinParent[name]; ok {
		return p, true
	}
	p, ok := a.parentOf[name]
	return p, ok
}

func (a *analyzer) checkAcyclic(start string) error {
	visited := map[string]bool{start: true}
	cur := start
	for {
		parent, ok := a.parentOf[cur]
		if !ok {
			// cur is (or has ascended into) a builtin; ascent terminates.
			return nil
		}
		if builtins[parent] {
			return nil
		}
		if visited[parent] {
			return errAt(CodeOtherSem, "cyclic inheritance detected starting at class %q", start)
		}
		visited[parent] = true
		cur = parent
	}
}

// isSubclassOf reports whether name's inheritance chain reaches ancestor,
// per spec.md §4.4 ("Object is an ancestor of every class").
func (a *analyzer) isSubclassOf(name, ancestor string) bool {
	cur := name
	for {
		if cur == ancestor {
			return true
		}
		parent, ok := a.parentOfAny(cur)
		if !ok {
			return false
		}
		cur = parent
	}
}

func (a *analyzer) checkClassMethods(c *syntax.ClassDecl) error {
	seen := util.NewStringSet()
	for _, m := range c.Methods {
		if reserved[m.Selector] {
			return errAt(CodeSyntactic, "method selector %q in class %q is a reserved keyword", m.Selector, c.Name)
		}
		if seen.Has(m.Selector) {
			return errAt(CodeOtherSem, "method %q is declared more than once in class %q", m.Selector, c.Name)
		}
		seen.Add(m.Selector)

		if err := a.checkBlockShape(m.Body); err != nil {
			return err
		}
		if m.Arity != len(m.Body.Params) {
			return errAt(CodeBadArity, "method %q in class %q declares arity %d but its block takes %d parameters", m.Selector, c.Name, m.Arity, len(m.Body.Params))
		}
		if err := a.checkBlockScope(m.Body, nil); err != nil {
			return err
		}
	}
	return nil
}

// checkBlockShape validates a Block's own invariants (spec.md §3): pairwise
// distinct, non-reserved parameter names. It applies to every block,
// whether a method body or a nested block-literal expression atom.
func (a *analyzer) checkBlockShape(b *syntax.Block) error {
	seen := util.NewStringSet()
	for _, p := range b.Params {
		if reserved[p] {
			return errAt(CodeSyntactic, "block parameter %q is a reserved keyword", p)
		}
		if seen.Has(p) {
			return errAt(CodeOtherSem, "block parameter %q is declared more than once", p)
		}
		seen.Add(p)
	}
	return nil
}

// scope is one frame of the lexical scope chain: a block's parameters plus
// the assignment targets introduced so far within it, per spec.md §9's
// resolved lexical-scoping design.
type scope struct {
	parent *scope
	params util.StringSet
	vars   util.StringSet
}

func newScope(parent *scope, params []string) *scope {
	s := &scope{parent: parent, params: util.NewStringSet(), vars: util.NewStringSet()}
	for _, p := range params {
		s.params.Add(p)
	}
	return s
}

func (s *scope) isParamHere(name string) bool {
	return s != nil && s.params.Has(name)
}

func (s *scope) isVisible(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.params.Has(name) || cur.vars.Has(name) {
			return true
		}
	}
	return false
}

func (a *analyzer) checkBlockScope(b *syntax.Block, parent *scope) error {
	sc := newScope(parent, b.Params)
	for _, stmt := range b.Stats {
		if reserved[stmt.Target] {
			return errAt(CodeSyntactic, "assignment target %q is a reserved keyword", stmt.Target)
		}
		if sc.isParamHere(stmt.Target) {
			return errAt(CodeCollision, "assignment to block parameter %q", stmt.Target)
		}
		sc.vars.Add(stmt.Target)
		if err := a.checkExpr(stmt.Expr, sc); err != nil {
			return err
		}
	}
	return nil
}

func (a *analyzer) checkExpr(e *syntax.Expression, sc *scope) error {
	switch msg := e.Msg.(type) {
	case syntax.NoMessage:
		return a.checkAtom(e.Receiver, sc)
	case syntax.UnaryMessage:
		if reserved[msg.Selector] {
			return errAt(CodeSyntactic, "message selector %q is a reserved keyword", msg.Selector)
		}
		if err := a.checkAtom(e.Receiver, sc); err != nil {
			return err
		}
		return a.checkClassSideSend(e.Receiver, msg.Selector, sc)
	case syntax.KeywordMessage:
		if reserved[msg.Selector()] {
			return errAt(CodeSyntactic, "message selector %q is a reserved keyword", msg.Selector())
		}
		if err := a.checkAtom(e.Receiver, sc); err != nil {
			return err
		}
		for _, arg := range msg.Args {
			if err := a.checkExpr(arg, sc); err != nil {
				return err
			}
		}
		return a.checkClassSideSend(e.Receiver, msg.Selector(), sc)
	default:
		return fmt.Errorf("internal error: unknown message variant %T", msg)
	}
}

// checkClassSideSend validates the class-side-message rules of spec.md
// §4.4 when the receiver of a non-empty message is a class reference.
func (a *analyzer) checkClassSideSend(receiver syntax.Atom, selector string, sc *scope) error {
	cr, ok := receiver.(syntax.ClassRef)
	if !ok {
		return nil
	}
	if classSideSelectors[selector] {
		return nil
	}
	if selector == "read" && a.isSubclassOf(cr.Name, "String") {
		return nil
	}
	return errAt(CodeNoDefinition, "class %q does not recognise class-side message %q", cr.Name, selector)
}

func (a *analyzer) checkAtom(atom syntax.Atom, sc *scope) error {
	switch v := atom.(type) {
	case syntax.IntLiteral, syntax.StrLiteral:
		return nil
	case syntax.VarRef:
		if globalLiterals[v.Name] || pseudoVars[v.Name] {
			return nil
		}
		if sc.isVisible(v.Name) {
			return nil
		}
		return errAt(CodeNoDefinition, "undefined variable %q", v.Name)
	case syntax.ClassRef:
		if !a.isBuiltinOrUser(v.Name) {
			return errAt(CodeNoDefinition, "undefined class %q", v.Name)
		}
		return nil
	case syntax.NestedExpr:
		return a.checkExpr(v.Inner, sc)
	case syntax.BlockExpr:
		if err := a.checkBlockShape(v.Block); err != nil {
			return err
		}
		return a.checkBlockScope(v.Block, sc)
	default:
		return fmt.Errorf("internal error: unknown atom variant %T", atom)
	}
}
