package domain

import "fmt"

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Key returns a stable string form of the coordinates for cache keys.
// Six decimal places (~0.1 m) is enough to treat two points as the same place.
func (c Coordinates) Key() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}
