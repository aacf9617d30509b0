package planets

import "math"

// magnitude computes the apparent visual magnitude from the Mallama & Hilton
// (2018) phase curves. r is the heliocentric distance and delta the
// geocentric distance, both in AU; phi is the phase angle in degrees; year
// is the decimal year (Neptune's brightness drifts secularly).
//
// Saturn uses the globe-only branch: the ring contribution is deliberately
// omitted, so Saturn runs a few tenths of a magnitude faint when the rings
// are open.
func magnitude(p Planet, phi, r, delta, year float64) float64 {
	dm := 5 * math.Log10(r*delta)
	switch p {
	case Mercury:
		// Equation #2.
		pf := phi * (6.3280e-02 + phi*(-1.6336e-03+phi*(3.3644e-05+
			phi*(-3.4265e-07+phi*(1.6893e-09+phi*(-3.0334e-12))))))
		return -0.613 + dm + pf
	case Venus:
		// Equations #3 and #4.
		var pf float64
		if phi < 163.7 {
			pf = phi * (-1.044e-03 + phi*(3.687e-04+phi*(-2.814e-06+phi*8.938e-09)))
		} else {
			pf = (236.05828 + 4.384) + phi*(-2.81914e+00+phi*8.39034e-03)
		}
		return -4.384 + dm + pf
	case Mars:
		// Equations #6 and #7.
		if phi <= 50.0 {
			return -1.601 + dm + phi*(2.267e-02+phi*(-1.302e-04))
		}
		return -0.367 + dm + phi*(-0.02573+phi*3.445e-04)
	case Jupiter:
		// Equations #8 and #9.
		if phi <= 12.0 {
			return -9.395 + dm + phi*(6.16e-04*phi-3.7e-04)
		}
		pp := phi / 180.0
		poly := ((((-1.876*pp+2.809)*pp-0.062)*pp-0.363)*pp-1.507)*pp + 1.0
		return -9.428 + dm - 2.5*math.Log10(poly)
	case Saturn:
		// Equation #12, globe only (no rings).
		return -8.95 + dm + phi*(-3.7e-04+phi*6.16e-04)
	case Uranus:
		// Equation #15 with the sub-latitude term dropped (the disc
		// term is under 0.05 mag and needs pole geometry).
		mag := -7.110 + dm
		if phi > 3.1 {
			mag += phi * (1.045e-4*phi + 6.587e-3)
		}
		return mag
	case Neptune:
		// Equations #16 and #17.
		base := -6.89 - 0.0054*(year-1980.0)
		base = math.Max(-7.00, math.Min(-6.89, base))
		mag := base + dm
		if phi > 1.9 {
			mag += phi * (7.944e-3 + phi*9.617e-5)
		}
		return mag
	}
	return math.NaN()
}
