package geo

// Fence status values reported in telemetry.
const (
	StatusInsideFence  = "inside_fence"
	StatusOutsideFence = "outside_fence"
)

// Fence is a circular geofence defined by a center coordinate and a
// radius in meters.
type Fence struct {
	ID        string
	CenterLat float64
	CenterLon float64
	RadiusM   float64
}

// Evaluation is the result of classifying a point against a fence.
type Evaluation struct {
	Status    string
	DistanceM float64
}

// Evaluate classifies p against the fence. A point exactly on the
// radius counts as outside.
func (f Fence) Evaluate(p Point) Evaluation {
	distance := Distance(p.Latitude, p.Longitude, f.CenterLat, f.CenterLon)

	status := StatusOutsideFence
	if distance < f.RadiusM {
		status = StatusInsideFence
	}

	return Evaluation{
		Status:    status,
		DistanceM: distance,
	}
}
