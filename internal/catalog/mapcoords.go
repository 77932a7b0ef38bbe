package catalog

import "prestige-backend/internal/models"

// Admin fleet map canvas. The client scales from this fixed frame.
const (
	MapWidth  = 400
	MapHeight = 450
)

// locationHash is a 31x rolling hash over the string with 32-bit wraparound.
// Deterministic so a location always plots to the same spot.
func locationHash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	return h
}

// locationHashReverse walks the string back to front, spreading y away from x
// for strings that would otherwise collide.
func locationHashReverse(s string) int32 {
	var h int32
	for i := len(s) - 1; i >= 0; i-- {
		h = h*31 + int32(s[i])
	}
	return h
}

func abs32(v int32) int {
	n := int64(v)
	if n < 0 {
		n = -n
	}
	return int(n)
}

// LocationCoords maps a free-text location to a stable (x, y) inside the map
// canvas, keeping a 10px margin on every edge.
func LocationCoords(location string, mapWidth, mapHeight int) (x, y int) {
	x = abs32(locationHash(location))%(mapWidth-20) + 10
	y = abs32(locationHashReverse(location))%(mapHeight-20) + 10
	return x, y
}

// MapPoints plots every car in the fleet onto the admin map.
func (f *FleetStore) MapPoints() []models.MapPoint {
	cars := f.Cars()
	points := make([]models.MapPoint, 0, len(cars))
	for _, c := range cars {
		x, y := LocationCoords(c.Location, MapWidth, MapHeight)
		points = append(points, models.MapPoint{
			CarID:    c.ID,
			Name:     c.Name,
			Location: c.Location,
			Status:   c.Status,
			X:        x,
			Y:        y,
		})
	}
	return points
}
