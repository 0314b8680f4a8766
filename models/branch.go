package models

// GeoPoint holds a position in decimal degrees. A point at exactly (0,0)
// means the branch location has not been surveyed yet and must be excluded
// from distance ranking and map pins.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// IsUnknown reports whether the point is the "location unknown" sentinel.
func (p GeoPoint) IsUnknown() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

type Pastor struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

type Testimonial struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

type Branch struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Address      string        `json:"address" yaml:"address"`
	City         string        `json:"city" yaml:"city"`
	Phone        string        `json:"phone" yaml:"phone"`
	Email        string        `json:"email" yaml:"email"`
	Location     GeoPoint      `json:"location" yaml:"location"`
	Pastors      []Pastor      `json:"pastors,omitempty" yaml:"pastors,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty" yaml:"testimonials,omitempty"`
	Images       []string      `json:"images,omitempty" yaml:"images,omitempty"`
	ServiceTimes string        `json:"service_times,omitempty" yaml:"service_times,omitempty"`
}
