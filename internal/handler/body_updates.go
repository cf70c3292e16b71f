package handler

import (
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// BodyUpdatesHandler reads, replaces and partially updates stored things.
type BodyUpdatesHandler struct {
	Handler
}

func NewBodyUpdatesHandler(h Handler) *BodyUpdatesHandler {
	return &BodyUpdatesHandler{Handler: h}
}

type ThingIDRequest struct {
	ID string `param:"id"`
}

func (r *ThingIDRequest) Validate() error { return nil }

func (h *BodyUpdatesHandler) GetThing(c echo.Context, req *ThingIDRequest) (model.Thing, error) {
	return h.services.Things.Get(c.Request().Context(), req.ID)
}

type ReplaceThingRequest struct {
	ID string `param:"id" json:"-"`
	model.ThingInput
}

func (r *ReplaceThingRequest) SetDefaults() { r.Tags = []string{} }
func (r *ReplaceThingRequest) Validate() error { return validation.Struct(r) }

// ReplaceThing overwrites (or creates) the thing and returns the whole catalog.
func (h *BodyUpdatesHandler) ReplaceThing(c echo.Context, req *ReplaceThingRequest) (map[string]model.Thing, error) {
	return h.services.Things.Replace(c.Request().Context(), req.ID, req.ThingInput.Thing())
}

type PatchThingRequest struct {
	ID string `param:"id" json:"-"`
	model.ThingPatch
}

func (r *PatchThingRequest) Validate() error { return validation.Struct(r) }

// PatchThing changes only the fields present in the body.
func (h *BodyUpdatesHandler) PatchThing(c echo.Context, req *PatchThingRequest) (model.Thing, error) {
	return h.services.Things.Patch(c.Request().Context(), req.ID, req.ThingPatch)
}

func (h *BodyUpdatesHandler) DeleteThing(c echo.Context, req *ThingIDRequest) error {
	return h.services.Things.Delete(c.Request().Context(), req.ID)
}
