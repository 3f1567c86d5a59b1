// Package utm implements the WGS84 transverse-Mercator projection for
// standard 6-degree UTM zones, using the closed-form series expansions.
// Accuracy is sub-meter near a zone's central meridian and degrades with
// distance from it; zone selection is the caller's responsibility.
package utm

import "math"

// WGS84 ellipsoid and UTM projection constants.
const (
	a            = 6378137.0         // semi-major axis, meters
	f            = 1 / 298.257223563 // flattening
	k0           = 0.9996            // central meridian scale factor
	falseEasting = 500000.0
)

// CentralMeridian returns the central meridian of a 6-degree UTM zone in
// degrees. Zone 1 is centered at -177.
func CentralMeridian(zone int) float64 {
	return float64((zone-1)*6 - 180 + 3)
}

// Forward projects geodetic coordinates in degrees to easting/northing in
// meters within the given zone.
func Forward(lat, lon float64, zone int) (x, y float64) {
	e2 := 2*f - f*f
	ep2 := e2 / (1 - e2)

	latRad := radians(lat)
	lonRad := radians(lon)
	lon0Rad := radians(CentralMeridian(zone))

	sinLat, cosLat := math.Sincos(latRad)
	tanLat := math.Tan(latRad)

	n := a / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	aa := (lonRad - lon0Rad) * cosLat

	m := a * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*latRad -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*latRad) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*latRad) -
		(35*e2*e2*e2/3072)*math.Sin(6*latRad))

	x = k0*n*(aa+(1-t+c)*aa*aa*aa/6+
		(5-18*t+t*t+72*c-58*ep2)*aa*aa*aa*aa*aa/120) + falseEasting
	y = k0 * (m + n*tanLat*(aa*aa/2+(5-t+9*c+4*c*c)*aa*aa*aa*aa/24+
		(61-58*t+t*t+600*c-330*ep2)*aa*aa*aa*aa*aa*aa/720))
	return x, y
}

// Inverse recovers geodetic coordinates in degrees from easting/northing in
// meters within the given zone.
func Inverse(x, y float64, zone int) (lat, lon float64) {
	e2 := 2*f - f*f
	ep2 := e2 / (1 - e2)
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

	x -= falseEasting
	m := y / k0
	mu := m / (a * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	phi1 := mu + (3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu)

	sinPhi1, cosPhi1 := math.Sincos(phi1)
	tanPhi1 := math.Tan(phi1)

	n1 := a / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	t1 := tanPhi1 * tanPhi1
	c1 := ep2 * cosPhi1 * cosPhi1
	r1 := a * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	d := x / (n1 * k0)

	latRad := phi1 - (n1*tanPhi1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d*d*d*d/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d*d*d*d*d*d/720)
	lonRad := radians(CentralMeridian(zone)) + (d-(1+2*t1+c1)*d*d*d/6+
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d*d*d*d*d/120)/cosPhi1

	return degrees(latRad), degrees(lonRad)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
