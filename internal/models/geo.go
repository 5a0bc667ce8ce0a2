package models

// GeoPoint is a GeoJSON point as stored in MongoDB. Coordinates are
// [longitude, latitude] per the GeoJSON spec, which is what the 2dsphere
// index expects.
type GeoPoint struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

func (p GeoPoint) Lat() float64 { return p.Coordinates[1] }

func (p GeoPoint) Lng() float64 { return p.Coordinates[0] }

func (p GeoPoint) IsZero() bool { return p.Type == "" }
