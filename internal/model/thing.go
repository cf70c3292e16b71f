package model

// Thing is the record kept by the body-updates lesson.
type Thing struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Description *string  `json:"description,omitempty" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Tax         *float64 `json:"tax,omitempty" yaml:"tax"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Normalize returns t with nil Tags replaced by an empty list, so every
// stored thing renders "tags" as an array.
func (t Thing) Normalize() Thing {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}

// ThingInput is a full replacement body. Price must be sent; zero is a price.
type ThingInput struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Tax         *float64 `json:"tax" validate:"omitempty,gte=0"`
	Tags        []string `json:"tags"`
}

// Thing converts a validated input into the stored record.
func (in ThingInput) Thing() Thing {
	t := Thing{
		Name:        in.Name,
		Description: in.Description,
		Tax:         in.Tax,
		Tags:        in.Tags,
	}
	if in.Price != nil {
		t.Price = *in.Price
	}
	return t.Normalize()
}

// ThingPatch carries only the fields a client sent. Nil means "leave as is".
type ThingPatch struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Tax         *float64  `json:"tax" validate:"omitempty,gte=0"`
	Tags        *[]string `json:"tags"`
}

// Apply returns a copy of t with the patch's sent fields written over it.
func (p ThingPatch) Apply(t Thing) Thing {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Tax != nil {
		t.Tax = p.Tax
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	return t
}
