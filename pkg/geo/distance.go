package geo

import "math"

const (
	// metersPerDegreeLat approximates one degree of latitude.
	metersPerDegreeLat = 111000.0

	// lonCorrection compensates for meridian convergence at the
	// simulated latitude band. Kept as a fixed factor rather than
	// cos(latitude) so published distances stay stable.
	lonCorrection = 0.88
)

// Distance estimates the separation in meters between two coordinate
// pairs using an equirectangular flat-earth projection, rounded to 2
// decimal places. The approximation only holds for separations of tens
// of meters, which is all the jittered samples ever produce.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	latDiff := math.Abs(lat1-lat2) * metersPerDegreeLat
	lonDiff := math.Abs(lon1-lon2) * metersPerDegreeLat * lonCorrection
	return roundTo(math.Sqrt(latDiff*latDiff+lonDiff*lonDiff), 2)
}
