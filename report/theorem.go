package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/erdos888/admissible"
	"github.com/katalvlaran/erdos888/numtheory"
	pkgerrors "github.com/pkg/errors"
)

// Theorem3Set is the counterexample A; its square-free parts give
// κ(A) = {3, 5, 14, 210} (126 = 14·3²).
var Theorem3Set = []int64{3, 5, 126, 210}

// Theorem3Bound is the scaling bound used to repair κ(A).
const Theorem3Bound int64 = 210

// SetCheck is the verdict on one quadruple.
type SetCheck struct {
	Set        []int64
	Product    int64
	Root       int64 // ⌊√Product⌋
	Square     bool
	AD, BC     int64 // outer and inner products of the sorted set
	Admissible bool
}

// Transcript records a Theorem-3 style verification.
type Transcript struct {
	A, K    SetCheck
	Bound   int64
	Fixable bool
	Fixed   []int64 // sorted; nil when not fixable
}

// Verify checks a, its kernel set κ(a) (square-free parts, deduplicated)
// and whether κ(a) can be repaired within bound. Both a and κ(a) must hold
// four distinct values.
func Verify(a []int64, bound int64) (Transcript, error) {
	ka := make([]int64, 0, len(a))
	for _, v := range a {
		k, err := numtheory.SquareFreePart(v)
		if err != nil {
			return Transcript{}, err
		}
		ka = append(ka, k)
	}
	slices.Sort(ka)
	ka = slices.Compact(ka)

	var (
		t   = Transcript{Bound: bound}
		err error
	)
	if t.A, err = checkSet(a); err != nil {
		return Transcript{}, err
	}
	if t.K, err = checkSet(ka); err != nil {
		return Transcript{}, err
	}
	if t.Fixable, t.Fixed, err = admissible.CheckFixingOpportunity(bound, ka); err != nil {
		return Transcript{}, err
	}
	if t.Fixed != nil {
		slices.Sort(t.Fixed)
	}

	return t, nil
}

func checkSet(set []int64) (SetCheck, error) {
	s := slices.Clone(set)
	slices.Sort(s)
	if len(s) != admissible.Arity {
		return SetCheck{}, pkgerrors.Wrapf(admissible.ErrArity, "report: set %v", set)
	}
	p, err := numtheory.MulChecked(s...)
	if err != nil {
		return SetCheck{}, err
	}
	adm, err := admissible.CheckAdmissible(s)
	if err != nil {
		return SetCheck{}, err
	}

	return SetCheck{
		Set:        s,
		Product:    p,
		Root:       numtheory.ISqrt(p),
		Square:     numtheory.IsPerfectSquare(p),
		AD:         s[0] * s[3],
		BC:         s[1] * s[2],
		Admissible: adm,
	}, nil
}

// Render writes the transcript. Verdicts are coloured when w is a terminal
// (fatih/color honours NO_COLOR and non-TTY output).
func (t Transcript) Render(w io.Writer) error {
	rule := strings.Repeat("=", 60)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nVERIFICATION OF THEOREM 3\n%s\n", rule, rule)
	fmt.Fprintf(&b, "A = %v\n", t.A.Set)
	fmt.Fprintf(&b, "kappa(A) = K = %v\n\n", t.K.Set)
	renderCheck(&b, "A", t.A)
	renderCheck(&b, "K", t.K)
	fmt.Fprintf(&b, "Can fix K via scaling: %s\n", verdict(t.Fixable))
	if t.Fixable {
		fmt.Fprintf(&b, "Fixed set: %v\n", t.Fixed)
	}
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())

	return err
}

func renderCheck(b *strings.Builder, name string, c SetCheck) {
	fmt.Fprintf(b, "Checking %s = {%s}:\n", name, joinInts(c.Set))
	if c.Square {
		fmt.Fprintf(b, "  Product: %d = %d^2\n", c.Product, c.Root)
	} else {
		fmt.Fprintf(b, "  Product: %d (not a square)\n", c.Product)
	}
	fmt.Fprintf(b, "  ad = %d, bc = %d\n", c.AD, c.BC)
	fmt.Fprintf(b, "  Admissible: %s\n\n", verdict(c.Admissible))
}

func verdict(ok bool) string {
	if ok {
		return color.GreenString("%t", ok)
	}

	return color.RedString("%t", ok)
}

func joinInts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ", ")
}

// Theorem3 verifies and renders the reference counterexample.
func Theorem3(w io.Writer) (Transcript, error) {
	t, err := Verify(Theorem3Set, Theorem3Bound)
	if err != nil {
		return Transcript{}, err
	}

	return t, t.Render(w)
}
