package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/longdiv/internal/division"
)

// ErrNoCleanDividend is returned when remainders are disallowed and no
// multiple of the drawn divisor lies inside the dividend range.
var ErrNoCleanDividend = errors.New("no dividend in range divides evenly")

// Generator produces division problems.
type Generator interface {
	// Generate draws one problem satisfying c. The returned problem is solved.
	Generate(c Constraints) (division.Problem, error)
}

// RandomGenerator draws divisor and dividend uniformly from the configured ranges.
type RandomGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator with a randomly seeded source.
func New() *RandomGenerator {
	return NewWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource creates a RandomGenerator backed by src. Use a fixed seed
// for reproducible problem sequences.
func NewWithSource(src rand.Source) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(src)}
}

// Generate implements Generator.
func (g *RandomGenerator) Generate(c Constraints) (division.Problem, error) {
	if err := ValidateConstraints(c); err != nil {
		return division.Problem{}, err
	}

	divisor := g.between(c.MinDivisor, c.MaxDivisor)
	dividend := g.between(c.MinDividend, c.MaxDividend)

	if !c.AllowRemainders {
		dividend -= dividend % divisor
		if dividend < c.MinDividend {
			dividend += divisor
		}
		if dividend > c.MaxDividend {
			return division.Problem{}, fmt.Errorf("divisor %d, dividends %d-%d: %w",
				divisor, c.MinDividend, c.MaxDividend, ErrNoCleanDividend)
		}
	}

	return division.NewProblem(divisor, dividend)
}

// between returns a uniform integer in [lo, hi].
func (g *RandomGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
