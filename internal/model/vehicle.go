package model

const (
	VehicleCar   = "car"
	VehiclePlane = "plane"
)

// Vehicle is either a car or a plane. Only planes carry a size.
type Vehicle struct {
	Description *string  `json:"description,omitempty" yaml:"description"`
	Type        string   `json:"type" yaml:"type"`
	Size        *float64 `json:"size,omitempty" yaml:"size"`
}

// DefaultPlaneSize is used for planes stored without one.
const DefaultPlaneSize = 10.5

// Normalize applies the plane default and strips size from cars.
func (v Vehicle) Normalize() Vehicle {
	switch v.Type {
	case VehiclePlane:
		if v.Size == nil {
			size := DefaultPlaneSize
			v.Size = &size
		}
	default:
		v.Size = nil
	}
	return v
}
