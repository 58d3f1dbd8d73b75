package capcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Names of the unexported marker methods declared by the named package; a tag
// has a capability iff its method set contains the marker method.
const (
	canCompare = "canCompare"
	canHash    = "canHash"
)

// strongType is an instantiation of named.Type or named.Ref.
type strongType struct {
	typ *types.Named
	tag types.Type
}

func strongTypeOf(t types.Type) (strongType, bool) {
	if t == nil {
		return strongType{}, false
	}
	n, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return strongType{}, false
	}
	obj := n.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != namedPath {
		return strongType{}, false
	}
	if name := obj.Name(); name != "Type" && name != "Ref" {
		return strongType{}, false
	}
	args := n.TypeArgs()
	if args.Len() != 2 {
		return strongType{}, false
	}
	return strongType{typ: n, tag: args.At(1)}, true
}

func (s strongType) isRef() bool { return s.typ.Obj().Name() == "Ref" }

func (s strongType) has(marker string) bool {
	return hasMarker(s.tag, s.typ.Obj().Pkg(), marker)
}

// hasMarker reports whether the method set of tag contains the named package's
// marker method. Type parameters are resolved through their constraint.
func hasMarker(tag types.Type, namedPkg *types.Package, marker string) bool {
	obj, _, _ := types.LookupFieldOrMethod(tag, false, namedPkg, marker)
	_, ok := obj.(*types.Func)
	return ok
}

type checker struct {
	pkg        *packages.Package
	qualifier  types.Qualifier
	violations []Violation
}

func inspect(pkg *packages.Package) []Violation {
	c := &checker{
		pkg:       pkg,
		qualifier: types.RelativeTo(pkg.Types),
	}
	for _, file := range pkg.Syntax {
		ast.Inspect(file, c.visit)
	}
	c.checkInstances()
	c.checkTags()
	return c.violations
}

func (c *checker) report(pos token.Pos, rule Rule, format string, args ...any) {
	p := c.pkg.Fset.Position(pos)
	c.violations = append(c.violations, Violation{
		Rule:     rule,
		Filename: p.Filename,
		Line:     p.Line,
		Column:   p.Column,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) typeString(t types.Type) string {
	return types.TypeString(types.Unalias(t), c.qualifier)
}

func (c *checker) visit(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.BinaryExpr:
		if n.Op != token.EQL && n.Op != token.NEQ {
			return true
		}
		for _, operand := range []ast.Expr{n.X, n.Y} {
			t := c.operandType(operand)
			s, ok := offending(t, canCompare)
			if !ok {
				continue
			}
			c.report(n.OpPos, RuleComparison, "%s on %s: %s", n.Op, c.typeString(t), c.reason(t, s, "Comparable"))
			break
		}
	case *ast.SwitchStmt:
		if n.Tag == nil {
			return true
		}
		t := c.operandType(n.Tag)
		if s, ok := offending(t, canCompare); ok {
			c.report(n.Tag.Pos(), RuleSwitch, "switch on %s: %s", c.typeString(t), c.reason(t, s, "Comparable"))
		}
	case *ast.MapType:
		t := c.pkg.TypesInfo.TypeOf(n.Key)
		if s, ok := offending(t, canHash); ok {
			c.report(n.Key.Pos(), RuleMapKey, "map keyed by %s: %s", c.typeString(t), c.reason(t, s, "Hashable"))
		}
	}
	return true
}

// operandType returns the type compared by e. Conversions to an interface type
// are looked through, since comparing the interfaces compares the dynamic
// values.
func (c *checker) operandType(e ast.Expr) types.Type {
	e = ast.Unparen(e)
	if call, ok := e.(*ast.CallExpr); ok && len(call.Args) == 1 {
		if tv, ok := c.pkg.TypesInfo.Types[call.Fun]; ok && tv.IsType() && types.IsInterface(tv.Type) {
			return c.operandType(call.Args[0])
		}
	}
	return c.pkg.TypesInfo.TypeOf(e)
}

// offending returns the first strong type reachable from t, through struct
// fields and array elements, whose tag lacks the given marker. A Ref is always
// offending: == on references compares addresses, not the referenced values.
//
// The underlying type of a strong type is not walked; a tag declaring the
// capability delegates to U, as Equal and Hash do.
func offending(t types.Type, marker string) (strongType, bool) {
	if t == nil {
		return strongType{}, false
	}
	if s, ok := strongTypeOf(t); ok {
		return s, s.isRef() || !s.has(marker)
	}
	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			if s, ok := offending(u.Field(i).Type(), marker); ok {
				return s, true
			}
		}
	case *types.Array:
		return offending(u.Elem(), marker)
	}
	return strongType{}, false
}

// reason explains why s, found within t, cannot be compared or hashed.
func (c *checker) reason(t types.Type, s strongType, capability string) string {
	var r string
	if s.isRef() {
		r = fmt.Sprintf("%s compares addresses; use the referenced values", c.typeString(s.typ))
	} else {
		r = fmt.Sprintf("tag %s does not embed named.%s", c.typeString(s.tag), capability)
	}
	if types.Identical(t, s.typ) {
		return r
	}
	return fmt.Sprintf("holds %s: %s", c.typeString(s.typ), r)
}

// checkInstances reports strong types passed as type arguments for type
// parameters constrained by comparable; the generic code may compare them with
// == or key maps with them.
func (c *checker) checkInstances() {
	for id, inst := range c.pkg.TypesInfo.Instances {
		tparams := typeParams(c.pkg.TypesInfo.Uses[id])
		if tparams == nil || tparams.Len() != inst.TypeArgs.Len() {
			continue
		}
		for i := range tparams.Len() {
			iface, ok := tparams.At(i).Constraint().Underlying().(*types.Interface)
			if !ok || !iface.IsComparable() {
				continue
			}
			arg := inst.TypeArgs.At(i)
			s, ok := offending(arg, canCompare)
			if !ok {
				continue
			}
			c.report(id.Pos(), RuleTypeArgument, "%s instantiated with %s for comparable %s: %s",
				id.Name, c.typeString(arg), tparams.At(i).Obj().Name(), c.reason(arg, s, "Comparable"))
		}
	}
}

// typeParams returns the type parameters of a generic function or type.
func typeParams(obj types.Object) *types.TypeParamList {
	switch o := obj.(type) {
	case *types.Func:
		if sig, ok := o.Origin().Type().(*types.Signature); ok {
			return sig.TypeParams()
		}
	case *types.TypeName:
		if n, ok := types.Unalias(o.Type()).(*types.Named); ok {
			return n.Origin().TypeParams()
		}
	}
	return nil
}

// checkTags reports struct types that embed named.Hashable but not
// named.Comparable, including through structs embedded from other packages.
func (c *checker) checkTags() {
	if c.pkg.Types == nil || c.pkg.PkgPath == namedPath {
		return
	}
	for _, obj := range c.pkg.TypesInfo.Defs {
		tn, ok := obj.(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if _, ok := tn.Type().Underlying().(*types.Struct); !ok {
			continue
		}
		mset := types.NewMethodSet(tn.Type())
		if declares(mset, canHash) && !declares(mset, canCompare) {
			c.report(tn.Pos(), RuleHashWithoutCompare, "tag %s embeds named.Hashable without named.Comparable",
				c.typeString(tn.Type()))
		}
	}
}

// declares reports whether mset holds the marker method of the named package.
func declares(mset *types.MethodSet, marker string) bool {
	for i := range mset.Len() {
		f := mset.At(i).Obj()
		if f.Name() == marker && f.Pkg() != nil && f.Pkg().Path() == namedPath {
			return true
		}
	}
	return false
}
