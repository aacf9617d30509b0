package planets

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// keplerTolerance is the convergence threshold for the eccentric
	// anomaly, in radians.
	keplerTolerance = 1e-10

	// keplerMaxIterations caps the Newton-Raphson loop. The solver
	// converges in a handful of iterations for every planetary
	// eccentricity; hitting the cap indicates a defect, not a degenerate
	// input.
	keplerMaxIterations = 30
)

// ErrNoConvergence is returned when the Kepler solver exhausts its iteration
// budget.
var ErrNoConvergence = errors.New("planets: Kepler solver did not converge")

// solveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E by Newton-Raphson, starting from E = M.
func solveKepler(m, e float64) (float64, error) {
	// Reduce M to [-π, π] for a well-behaved start.
	m = math.Mod(m, 2*math.Pi)
	if m > math.Pi {
		m -= 2 * math.Pi
	} else if m < -math.Pi {
		m += 2 * math.Pi
	}

	ecc := m
	for i := 0; i < keplerMaxIterations; i++ {
		sinE, cosE := math.Sincos(ecc)
		delta := (ecc - e*sinE - m) / (1 - e*cosE)
		ecc -= delta
		if math.Abs(delta) < keplerTolerance {
			return ecc, nil
		}
	}
	return 0, errors.Wrapf(ErrNoConvergence, "M=%.6f e=%.6f after %d iterations",
		m, e, keplerMaxIterations)
}
