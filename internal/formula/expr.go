package formula

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Expr is a node of an expression tree.
type Expr interface {
	LaTeX() string
	String() string
}

// Num is a numeric literal. Prec is the number of decimals shown; a
// negative Prec prints the shortest exact representation.
type Num struct {
	Value float64
	Prec  int
}

// Number returns a literal printed in its shortest form.
func Number(v float64) Num { return Num{Value: v, Prec: -1} }

// Fixed returns a literal printed with prec decimals.
func Fixed(v float64, prec int) Num { return Num{Value: v, Prec: prec} }

func (n Num) String() string { return strconv.FormatFloat(n.Value, 'f', n.Prec, 64) }
func (n Num) LaTeX() string  { return n.String() }

func (n Num) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "num", "value": n.Value, "text": n.String()})
}

// Sym is a named variable or constant. TeX overrides the LaTeX spelling
// when the plain name is not valid LaTeX (subscripts, greek letters).
type Sym struct {
	Name string
	TeX  string
}

// Symbol returns a symbol spelled the same way in text and LaTeX.
func Symbol(name string) Sym { return Sym{Name: name} }

// SymbolTeX returns a symbol with a distinct LaTeX spelling.
func SymbolTeX(name, tex string) Sym { return Sym{Name: name, TeX: tex} }

func (s Sym) String() string { return s.Name }

func (s Sym) LaTeX() string {
	if s.TeX != "" {
		return s.TeX
	}
	return s.Name
}

func (s Sym) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "sym", "name": s.Name, "tex": s.LaTeX()})
}

// Sum is an n-ary addition. Neg terms render as subtraction.
type Sum struct {
	Terms []Expr
}

// Add returns the sum of terms.
func Add(terms ...Expr) Sum { return Sum{Terms: terms} }

// Sub returns a - b.
func Sub(a, b Expr) Sum { return Sum{Terms: []Expr{a, Neg{X: b}}} }

func (s Sum) String() string { return s.join(Expr.String) }
func (s Sum) LaTeX() string  { return s.join(Expr.LaTeX) }

func (s Sum) join(render func(Expr) string) string {
	var b strings.Builder
	for i, term := range s.Terms {
		if neg, ok := term.(Neg); ok && i > 0 {
			b.WriteString(" - ")
			b.WriteString(render(wrapSum(neg.X)))
			continue
		}
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(render(term))
	}
	return b.String()
}

func (s Sum) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "sum", "terms": s.Terms})
}

// Product is an n-ary multiplication written by juxtaposition.
type Product struct {
	Factors []Expr
}

// Mul returns the product of factors.
func Mul(factors ...Expr) Product { return Product{Factors: factors} }

func (p Product) String() string {
	var b strings.Builder
	for i, f := range p.Factors {
		if i > 0 {
			if _, prevNum := p.Factors[i-1].(Num); prevNum {
				if _, num := f.(Num); num {
					b.WriteString("·")
				}
			}
		}
		b.WriteString(wrapSum(f).String())
	}
	return b.String()
}

func (p Product) LaTeX() string {
	parts := make([]string, len(p.Factors))
	for i, f := range p.Factors {
		parts[i] = wrapSum(f).LaTeX()
	}
	return strings.Join(parts, " ")
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "product", "factors": p.Factors})
}

// Frac is a quotient.
type Frac struct {
	Num Expr
	Den Expr
}

// Div returns num / den.
func Div(num, den Expr) Frac { return Frac{Num: num, Den: den} }

func (f Frac) String() string { return wrapComposite(f.Num) + "/" + wrapComposite(f.Den) }

func (f Frac) LaTeX() string {
	return `\frac{` + f.Num.LaTeX() + `}{` + f.Den.LaTeX() + `}`
}

func (f Frac) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "frac", "num": f.Num, "den": f.Den})
}

// Power is base raised to exponent.
type Power struct {
	Base     Expr
	Exponent Expr
}

// Pow returns base^exponent.
func Pow(base, exponent Expr) Power { return Power{Base: base, Exponent: exponent} }

func (p Power) String() string {
	if n, ok := p.Exponent.(Num); ok {
		if sup, ok := superscript(n); ok {
			return wrapComposite(p.Base) + sup
		}
	}
	return wrapComposite(p.Base) + "^" + wrapComposite(p.Exponent)
}

func (p Power) LaTeX() string {
	return wrapCompositeTeX(p.Base) + `^{` + p.Exponent.LaTeX() + `}`
}

func (p Power) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "pow", "base": p.Base, "exponent": p.Exponent})
}

// Neg is unary minus.
type Neg struct {
	X Expr
}

// Negate returns -x.
func Negate(x Expr) Neg { return Neg{X: x} }

func (n Neg) String() string { return "-" + wrapSum(n.X).String() }
func (n Neg) LaTeX() string  { return "-" + wrapSum(n.X).LaTeX() }

func (n Neg) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "neg", "x": n.X})
}

// Exponential is e raised to X.
type Exponential struct {
	X Expr
}

// E returns e^x.
func E(x Expr) Exponential { return Exponential{X: x} }

func (e Exponential) String() string {
	switch e.X.(type) {
	case Sym, Num:
		return "e^" + e.X.String()
	}
	return "e^(" + e.X.String() + ")"
}

func (e Exponential) LaTeX() string { return `e^{` + e.X.LaTeX() + `}` }

func (e Exponential) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "exp", "x": e.X})
}

// Deriv is the derivative of Of with respect to Wrt.
type Deriv struct {
	Of  Expr
	Wrt Expr
}

// D returns d(of)/d(wrt).
func D(of, wrt Expr) Deriv { return Deriv{Of: of, Wrt: wrt} }

func (d Deriv) String() string { return "d" + d.Of.String() + "/d" + d.Wrt.String() }

func (d Deriv) LaTeX() string {
	return `\frac{d` + d.Of.LaTeX() + `}{d` + d.Wrt.LaTeX() + `}`
}

func (d Deriv) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "deriv", "of": d.Of, "wrt": d.Wrt})
}

// Eq is an equation.
type Eq struct {
	Left  Expr
	Right Expr
}

// Equals returns left = right.
func Equals(left, right Expr) Eq { return Eq{Left: left, Right: right} }

func (e Eq) String() string { return e.Left.String() + " = " + e.Right.String() }
func (e Eq) LaTeX() string  { return e.Left.LaTeX() + " = " + e.Right.LaTeX() }

func (e Eq) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "eq", "left": e.Left, "right": e.Right})
}

// Implication joins two statements with a logical implication arrow.
type Implication struct {
	Premise    Expr
	Conclusion Expr
}

// Implies returns premise ⇒ conclusion.
func Implies(premise, conclusion Expr) Implication {
	return Implication{Premise: premise, Conclusion: conclusion}
}

func (i Implication) String() string { return i.Premise.String() + " ⇒ " + i.Conclusion.String() }

func (i Implication) LaTeX() string {
	return i.Premise.LaTeX() + ` \Rightarrow ` + i.Conclusion.LaTeX()
}

func (i Implication) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "implies", "premise": i.Premise, "conclusion": i.Conclusion})
}

// LaplaceTransform is the Laplace transform of X.
type LaplaceTransform struct {
	X Expr
}

// Laplace returns ℒ{x}.
func Laplace(x Expr) LaplaceTransform { return LaplaceTransform{X: x} }

func (l LaplaceTransform) String() string { return "ℒ{" + l.X.String() + "}" }
func (l LaplaceTransform) LaTeX() string  { return `\mathcal{L}\{` + l.X.LaTeX() + `\}` }

func (l LaplaceTransform) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "laplace", "x": l.X})
}

// Call is a function application such as N(t).
type Call struct {
	Fn   Expr
	Args []Expr
}

// Apply returns fn(args...).
func Apply(fn Expr, args ...Expr) Call { return Call{Fn: fn, Args: args} }

func (c Call) String() string { return c.Fn.String() + "(" + joinArgs(c.Args, Expr.String) + ")" }
func (c Call) LaTeX() string  { return c.Fn.LaTeX() + "(" + joinArgs(c.Args, Expr.LaTeX) + ")" }

func (c Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "call", "fn": c.Fn, "args": c.Args})
}

// Group is an explicitly parenthesised subexpression.
type Group struct {
	X Expr
}

// Paren returns (x).
func Paren(x Expr) Group { return Group{X: x} }

func (g Group) String() string { return "(" + g.X.String() + ")" }
func (g Group) LaTeX() string  { return `\left(` + g.X.LaTeX() + `\right)` }

func (g Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"type": "group", "x": g.X})
}

// Marshal encodes an expression tree as JSON.
func Marshal(e Expr) ([]byte, error) {
	return json.Marshal(e)
}

func joinArgs(args []Expr, render func(Expr) string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}
	return strings.Join(parts, ", ")
}

// wrapSum parenthesises sums so they bind correctly inside products and negations.
func wrapSum(e Expr) Expr {
	if _, ok := e.(Sum); ok {
		return Group{X: e}
	}
	return e
}

func wrapComposite(e Expr) string {
	switch e.(type) {
	case Sum, Product, Frac, Neg:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func wrapCompositeTeX(e Expr) string {
	switch e.(type) {
	case Sum, Product, Frac, Neg:
		return `\left(` + e.LaTeX() + `\right)`
	}
	return e.LaTeX()
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func superscript(n Num) (string, bool) {
	var b strings.Builder
	for _, r := range n.String() {
		sup, ok := superscripts[r]
		if !ok {
			return "", false
		}
		b.WriteRune(sup)
	}
	return b.String(), true
}
