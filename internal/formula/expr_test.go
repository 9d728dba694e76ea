package formula_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/growthlab/internal/formula"
)

var _ = Describe("Expr", func() {
	var (
		n  = formula.Symbol("N")
		t  = formula.Symbol("t")
		n0 = formula.SymbolTeX("N₀", "N_0")
	)

	Describe("literals", func() {
		It("prints fixed precision numbers", func() {
			Expect(formula.Fixed(0.5, 2).String()).To(Equal("0.50"))
			Expect(formula.Fixed(1.25, 2).LaTeX()).To(Equal("1.25"))
		})

		It("prints shortest form numbers", func() {
			Expect(formula.Number(1000).String()).To(Equal("1000"))
			Expect(formula.Number(2.5).String()).To(Equal("2.5"))
		})

		It("uses the TeX spelling of symbols when set", func() {
			Expect(n0.String()).To(Equal("N₀"))
			Expect(n0.LaTeX()).To(Equal("N_0"))
			Expect(n.LaTeX()).To(Equal("N"))
		})
	})

	Describe("differential equations", func() {
		It("renders the exponential growth law", func() {
			ode := formula.Equals(formula.D(n, t), formula.Mul(formula.Fixed(0.5, 2), n))
			Expect(ode.LaTeX()).To(Equal(`\frac{dN}{dt} = 0.50 N`))
			Expect(ode.String()).To(Equal("dN/dt = 0.50N"))
		})

		It("parenthesises sums inside products", func() {
			k := formula.Number(1000)
			rhs := formula.Mul(formula.Fixed(0.5, 2), formula.Sub(formula.Number(1), formula.Div(n, k)), n)
			Expect(rhs.String()).To(Equal("0.50(1 - N/1000)N"))
			Expect(rhs.LaTeX()).To(Equal(`0.50 \left(1 - \frac{N}{1000}\right) N`))
		})

		It("separates adjacent numeric factors in text", func() {
			Expect(formula.Mul(formula.Number(2), formula.Number(3)).String()).To(Equal("2·3"))
		})
	})

	Describe("closed forms", func() {
		It("renders exponentials with composite exponents", func() {
			e := formula.E(formula.Negate(formula.Mul(formula.Fixed(0.5, 2), t)))
			Expect(e.String()).To(Equal("e^(-0.50t)"))
			Expect(e.LaTeX()).To(Equal("e^{-0.50 t}"))
		})

		It("renders function application", func() {
			Expect(formula.Apply(n, t).String()).To(Equal("N(t)"))
		})

		It("renders small integer powers as superscripts", func() {
			p := formula.Pow(n, formula.Number(2))
			Expect(p.String()).To(Equal("N²"))
			Expect(p.LaTeX()).To(Equal("N^{2}"))
		})

		It("renders implications and Laplace transforms", func() {
			s := formula.Symbol("s")
			l := formula.Equals(formula.Laplace(n), formula.Div(formula.Number(10), formula.Sub(s, formula.Fixed(0.5, 2))))
			Expect(l.LaTeX()).To(Equal(`\mathcal{L}\{N\} = \frac{10}{s - 0.50}`))
			Expect(l.String()).To(Equal("ℒ{N} = 10/(s - 0.50)"))

			u := formula.Symbol("u")
			imp := formula.Implies(formula.Equals(u, formula.Div(formula.Number(1), n)), formula.D(u, t))
			Expect(imp.LaTeX()).To(Equal(`u = \frac{1}{N} \Rightarrow \frac{du}{dt}`))
			Expect(imp.String()).To(Equal("u = 1/N ⇒ du/dt"))
		})
	})

	Describe("JSON encoding", func() {
		It("emits a tagged tree", func() {
			data, err := formula.Marshal(formula.Div(n, formula.Number(1000)))
			Expect(err).NotTo(HaveOccurred())

			var tree map[string]any
			Expect(json.Unmarshal(data, &tree)).To(Succeed())
			Expect(tree).To(HaveKeyWithValue("type", "frac"))
			Expect(tree["num"]).To(HaveKeyWithValue("type", "sym"))
			Expect(tree["den"]).To(HaveKeyWithValue("text", "1000"))
		})

		It("is deterministic", func() {
			e := formula.Equals(formula.D(n, t), formula.Mul(formula.Fixed(0.5, 2), n))
			a, err := formula.Marshal(e)
			Expect(err).NotTo(HaveOccurred())
			b, err := formula.Marshal(e)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})
	})
})
