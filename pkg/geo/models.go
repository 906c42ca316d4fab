package geo

// Point represents a geographical position of a device
type Point struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}
