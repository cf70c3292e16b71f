package handler

import (
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// PathOperationConfigurationHandler shows per-route metadata: status codes,
// tags, summaries, descriptions and deprecation. The metadata lives next to
// each route in Operations and is served back by ListOperations.
type PathOperationConfigurationHandler struct {
	Handler
	operations []Operation
}

// Operation is one route plus the documentation attached to it.
type Operation struct {
	Method              string   `json:"method"`
	Path                string   `json:"path"`
	Status              int      `json:"status"`
	Tags                []string `json:"tags,omitempty"`
	Summary             string   `json:"summary,omitempty"`
	Description         string   `json:"description,omitempty"`
	ResponseDescription string   `json:"response_description,omitempty"`
	Deprecated          bool     `json:"deprecated"`

	Handler echo.HandlerFunc `json:"-"`
}

// Tag groups operations in the docs.
type Tag string

const (
	TagItems     Tag = "items"
	TagCurtains  Tag = "curtains"
	TagUsers     Tag = "Users"
	TagStores    Tag = "shops"
	TagBuildings Tag = "construction"
	TagArmy      Tag = "guns"
	TagPotatoes  Tag = "potatoes"
	TagAnimal    Tag = "animal"
)

func tags(t ...Tag) []string {
	out := make([]string, len(t))
	for i, tag := range t {
		out[i] = string(tag)
	}
	return out
}

const teachersDescription = `Create an item with all the information:

- **name**: each item must have a name
- **description**: a long description
- **price**: required
- **tax**: if the item doesn't have tax, you can omit this
- **tags**: a set of unique tag strings for this item`

func NewPathOperationConfigurationHandler(h Handler) *PathOperationConfigurationHandler {
	p := &PathOperationConfigurationHandler{Handler: h}

	p.operations = []Operation{
		{
			Method:  http.MethodPost,
			Path:    "/items",
			Status:  http.StatusCreated,
			Handler: Handle(p.EchoItem, http.StatusCreated),
		},
		{
			Method:  http.MethodPost,
			Path:    "/tagitems",
			Tags:    tags(TagItems),
			Handler: Handle(p.EchoItem, http.StatusOK),
		},
		{
			Method:  http.MethodGet,
			Path:    "/readitems",
			Tags:    tags(TagCurtains),
			Handler: staticJSON([]map[string]string{{"chairs": "Foo", "details": "Name of a person"}}),
		},
		{
			Method:  http.MethodGet,
			Path:    "/users",
			Tags:    tags(TagUsers),
			Handler: staticJSON(map[string]string{"username": "Senthil Andavar", "details": "God of war"}),
		},
		{
			Method: http.MethodGet,
			Path:   "/store",
			Tags:   tags(TagStores),
			Handler: staticJSON(map[string]string{
				"cosmetics":   "clenser",
				"stationary":  "pencils",
				"automobiles": "engine cover",
			}),
		},
		{
			Method:  http.MethodGet,
			Path:    "/building",
			Tags:    tags(TagBuildings),
			Handler: staticJSON(map[string]string{"construction": "Contemporary", "architecture": "conventional"}),
		},
		{
			Method:  http.MethodGet,
			Path:    "/armies",
			Tags:    tags(TagArmy),
			Handler: staticJSON(map[string]string{"gun": "AK47", "grenade": "US M67"}),
		},
		{
			Method:      http.MethodPost,
			Path:        "/customers",
			Summary:     "This is a summary portion",
			Description: "The details are described here",
			Handler:     staticJSON(map[string]string{"network": "airtel", "paints": "asian"}),
		},
		{
			Method:      http.MethodPost,
			Path:        "/teachers",
			Summary:     "Details about Teachers",
			Description: teachersDescription,
			Handler:     Handle(p.EchoItem, http.StatusOK),
		},
		{
			Method:              http.MethodPost,
			Path:                "/responses",
			Summary:             "Response Description",
			ResponseDescription: "This is the description for response model",
			Handler:             Handle(p.EchoItem, http.StatusOK),
		},
		{
			Method:  http.MethodGet,
			Path:    "/plants",
			Tags:    tags(TagPotatoes),
			Handler: staticJSON([]map[string]string{{"item1": "Potato", "item2": "Onion"}}),
		},
		{
			Method:  http.MethodGet,
			Path:    "/animals",
			Tags:    tags(TagAnimal),
			Handler: staticJSON([]map[string]string{{"item1": "Tiger", "item2": "Lion", "item3": "Hippo"}}),
		},
		{
			Method:     http.MethodGet,
			Path:       "/veggies",
			Tags:       tags(TagPotatoes),
			Deprecated: true,
			Handler:    staticJSON([]map[string]string{{"leaf1": "curry", "leaf2": "coriander", "leaf3": "spinach"}}),
		},
	}

	for i := range p.operations {
		if p.operations[i].Status == 0 {
			p.operations[i].Status = http.StatusOK
		}
	}

	return p
}

// Operations returns the documented routes, for the router to mount.
func (h *PathOperationConfigurationHandler) Operations() []Operation {
	return h.operations
}

// ListOperations serves the metadata of every documented route.
func (h *PathOperationConfigurationHandler) ListOperations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.operations)
}

// ItemDetails is the body the POST operations accept and return.
type ItemDetails struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price" validate:"required"`
	Tax         *float64        `json:"tax"`
	Tags        model.StringSet `json:"tags"`
}

func (r *ItemDetails) SetDefaults() { r.Tags = model.StringSet{} }
func (r *ItemDetails) Validate() error { return validation.Struct(r) }

func (h *PathOperationConfigurationHandler) EchoItem(c echo.Context, req *ItemDetails) (ItemDetails, error) {
	return *req, nil
}

// Deprecation marks responses of deprecated routes.
func Deprecation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Deprecation", "true")
		return next(c)
	}
}

func staticJSON(body any) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, body)
	}
}
