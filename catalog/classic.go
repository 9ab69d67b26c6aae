// SPDX-License-Identifier: MIT

package catalog

import (
	"math"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// full2x2 is the row-major pattern of a dense 2×2 Jacobian.
var full2x2 = [4]sparse.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}

// twoByTwo supplies the pattern half of every dense 2×2 system.
type twoByTwo struct{ problem.Base }

func (p twoByTwo) JacobianNnz() int { return 4 }

func (p twoByTwo) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), 4); err != nil {
		return err
	}
	copy(out, full2x2[:])

	return nil
}

// jacobianArgs validates the Jacobian call shape shared by every entry.
func jacobianArgs(b problem.Base, x, values []float64, nnz int) error {
	if err := b.CheckLen(x); err != nil {
		return err
	}

	return b.CheckNnz(len(values), nnz)
}

// ---------- Dennis & Schnabel 2×2 ----------

// DennisSchnabel is the introductory example of Dennis & Schnabel:
//
//	f0 = x0 + x1 - 3
//	f1 = x0² + x1² - 9
//
// Exact solution (0, 3); initial point (1, 5).
type DennisSchnabel struct{ twoByTwo }

// NewDennisSchnabel returns the 2×2 example.
func NewDennisSchnabel() *DennisSchnabel {
	return &DennisSchnabel{twoByTwo{problem.NewBase("Dennis and Schnabel 2x2 example", citeDennisSchnabel, 2)}}
}

func (p *DennisSchnabel) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	f[0] = x[0] + x[1] - 3
	f[1] = x[0]*x[0] + x[1]*x[1] - 9

	return nil
}

func (p *DennisSchnabel) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, 4); err != nil {
		return err
	}
	values[0], values[1] = 1, 1
	values[2], values[3] = 2*x[0], 2*x[1]

	return nil
}

func (p *DennisSchnabel) ExactSolutionCount() int { return 1 }

func (p *DennisSchnabel) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = 0, 3

	return nil
}

func (p *DennisSchnabel) InitialPointCount() int { return 1 }

func (p *DennisSchnabel) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = 1, 5

	return nil
}

// ---------- Powell badly scaled ----------

// Root of the Powell badly scaled function; the second equation is shifted
// so that it vanishes exactly there.
const (
	powellX0    = 1.098159329699759e-5
	powellX1    = 9.106146739867318
	powellScale = 1e4
)

// PowellBadlyScaled is
//
//	f0 = 1e4·(x0·x1 - x0*·x1*)
//	f1 = (exp(-x0) - exp(-x0*)) + (exp(-x1) - exp(-x1*))
//
// with root x* ≈ (1.098e-5, 9.106). Initial point (0, 1).
type PowellBadlyScaled struct{ twoByTwo }

// NewPowellBadlyScaled returns the 2×2 problem.
func NewPowellBadlyScaled() *PowellBadlyScaled {
	return &PowellBadlyScaled{twoByTwo{problem.NewBase("Powell badly scaled function", citeMGH, 2)}}
}

func (p *PowellBadlyScaled) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	f[0] = powellScale * (x[0]*x[1] - powellX0*powellX1)
	f[1] = (math.Exp(-x[0]) - math.Exp(-powellX0)) + (math.Exp(-x[1]) - math.Exp(-powellX1))

	return nil
}

func (p *PowellBadlyScaled) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, 4); err != nil {
		return err
	}
	values[0] = powellScale * x[1]
	values[1] = powellScale * x[0]
	values[2] = -math.Exp(-x[0])
	values[3] = -math.Exp(-x[1])

	return nil
}

func (p *PowellBadlyScaled) ExactSolutionCount() int { return 1 }

func (p *PowellBadlyScaled) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = powellX0, powellX1

	return nil
}

func (p *PowellBadlyScaled) InitialPointCount() int { return 1 }

func (p *PowellBadlyScaled) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = 0, 1

	return nil
}

// ---------- Freudenstein & Roth ----------

// FreudensteinRoth is
//
//	f0 = x0 - 13 + ((5 - x1)·x1 - 2)·x1
//	f1 = x0 - 29 + ((x1 + 1)·x1 - 14)·x1
//
// Exact solution (5, 4); initial point (0.5, -2).
type FreudensteinRoth struct{ twoByTwo }

// NewFreudensteinRoth returns the 2×2 problem.
func NewFreudensteinRoth() *FreudensteinRoth {
	return &FreudensteinRoth{twoByTwo{problem.NewBase("Freudenstein-Roth function", citeMGH, 2)}}
}

func (p *FreudensteinRoth) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	f[0] = x[0] - 13 + ((5-x[1])*x[1]-2)*x[1]
	f[1] = x[0] - 29 + ((x[1]+1)*x[1]-14)*x[1]

	return nil
}

func (p *FreudensteinRoth) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, 4); err != nil {
		return err
	}
	y := x[1]
	values[0], values[1] = 1, (10-3*y)*y-2
	values[2], values[3] = 1, (3*y+2)*y-14

	return nil
}

func (p *FreudensteinRoth) ExactSolutionCount() int { return 1 }

func (p *FreudensteinRoth) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = 5, 4

	return nil
}

func (p *FreudensteinRoth) InitialPointCount() int { return 1 }

func (p *FreudensteinRoth) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = 0.5, -2

	return nil
}

// ---------- Himmelblau ----------

// Himmelblau is the gradient of (x0² + x1 - 11)² + (x0 + x1² - 7)².
// Exact solution (3, 2); initial point (-1.3, 2.7).
type Himmelblau struct{ twoByTwo }

// NewHimmelblau returns the 2×2 problem.
func NewHimmelblau() *Himmelblau {
	return &Himmelblau{twoByTwo{problem.NewBase("Himmelblau function", citeHimmelblau, 2)}}
}

func (p *Himmelblau) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	t1 := x[0]*x[0] + x[1] - 11
	t2 := x[0] + x[1]*x[1] - 7
	f[0] = 4*t1*x[0] + 2*t2
	f[1] = 2*t1 + 4*t2*x[1]

	return nil
}

func (p *Himmelblau) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, 4); err != nil {
		return err
	}
	t1 := x[0]*x[0] + x[1] - 11
	t2 := x[0] + x[1]*x[1] - 7
	values[0] = 8*x[0]*x[0] + 4*t1 + 2
	values[1] = 4*x[0] + 4*x[1]
	values[2] = values[1]
	values[3] = 2 + 8*x[1]*x[1] + 4*t2

	return nil
}

func (p *Himmelblau) ExactSolutionCount() int { return 1 }

func (p *Himmelblau) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = 3, 2

	return nil
}

func (p *Himmelblau) InitialPointCount() int { return 1 }

func (p *Himmelblau) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1] = -1.3, 2.7

	return nil
}

// ---------- Helical valley ----------

// helicalPattern lists the six structurally nonzero cells.
var helicalPattern = [6]sparse.Coord{
	{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	{Row: 1, Col: 0}, {Row: 1, Col: 1},
	{Row: 2, Col: 2},
}

// HelicalValley is the Fletcher-Powell helical valley:
//
//	f0 = 10·(x2 - 10·θ(x0, x1))
//	f1 = 10·(sqrt(x0² + x1²) - 1)
//	f2 = x2
//
// θ = atan(x1/x0)/(2π), plus 1/2 when x0 < 0. θ is undefined on x0 = 0,
// which is the inadmissible set. Exact solution (1, 0, 0); initial point
// (-1, 0, 0).
type HelicalValley struct{ problem.Base }

// NewHelicalValley returns the 3×3 problem.
func NewHelicalValley() *HelicalValley {
	return &HelicalValley{problem.NewBase("Helical valley function", citeMGH, 3)}
}

func helicalTheta(x0, x1 float64) float64 {
	t := math.Atan(x1/x0) / (2 * math.Pi)
	if x0 < 0 {
		t += 0.5
	}

	return t
}

func (p *HelicalValley) CheckAdmissible(x []float64) error {
	if err := p.CheckLen(x); err != nil {
		return err
	}
	if x[0] == 0 {
		return p.Inadmissible("x0 must be nonzero")
	}

	return nil
}

func (p *HelicalValley) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	if x[0] == 0 {
		return p.Undefined("theta at x0 = 0")
	}
	f[0] = 10 * (x[2] - 10*helicalTheta(x[0], x[1]))
	f[1] = 10 * (math.Hypot(x[0], x[1]) - 1)
	f[2] = x[2]

	return nil
}

func (p *HelicalValley) JacobianNnz() int { return len(helicalPattern) }

func (p *HelicalValley) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), len(helicalPattern)); err != nil {
		return err
	}
	copy(out, helicalPattern[:])

	return nil
}

func (p *HelicalValley) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, len(helicalPattern)); err != nil {
		return err
	}
	if x[0] == 0 {
		return p.Undefined("theta at x0 = 0")
	}
	q2 := x[0]*x[0] + x[1]*x[1]
	q := math.Sqrt(q2)
	c := 50 / math.Pi
	values[0] = c * x[1] / q2
	values[1] = -c * x[0] / q2
	values[2] = 10
	values[3] = 10 * x[0] / q
	values[4] = 10 * x[1] / q
	values[5] = 1

	return nil
}

func (p *HelicalValley) ExactSolutionCount() int { return 1 }

func (p *HelicalValley) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1], x[2] = 1, 0, 0

	return nil
}

func (p *HelicalValley) InitialPointCount() int { return 1 }

func (p *HelicalValley) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1], x[2] = -1, 0, 0

	return nil
}
