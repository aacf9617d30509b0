package units

// AUToKm is the IAU 2012 nominal astronomical unit in kilometers.
const AUToKm = 149597870.7

// Distance represents a distance measurement stored in kilometers.
type Distance struct {
	km float64
}

// DistanceFromKm creates a Distance from kilometers.
func DistanceFromKm(km float64) Distance { return Distance{km: km} }

// DistanceFromAU creates a Distance from astronomical units.
func DistanceFromAU(au float64) Distance { return Distance{km: au * AUToKm} }

// DistanceFromMeters creates a Distance from meters.
func DistanceFromMeters(m float64) Distance { return Distance{km: m / 1000.0} }

// Km returns the distance in kilometers.
func (d Distance) Km() float64 { return d.km }

// AU returns the distance in astronomical units.
func (d Distance) AU() float64 { return d.km / AUToKm }

// M returns the distance in meters.
func (d Distance) M() float64 { return d.km * 1000.0 }

// LightSeconds returns the distance in light-seconds.
func (d Distance) LightSeconds() float64 { return d.km / 299792.458 }
