package router

import (
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/handler"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/labstack/echo/v4"
)

// lesson is one tutorial mounted under /<slug>.
type lesson struct {
	slug  string
	title string

	// global lessons run the guards before every route of the group.
	global bool

	register func(g *echo.Group, h *handler.Handlers, guards []handler.Runner)
}

func (l lesson) Prefix() string {
	return "/" + l.slug
}

// Lessons returns the catalog served at GET /.
func Lessons() []model.Lesson {
	out := make([]model.Lesson, len(lessonTable))
	for i, l := range lessonTable {
		out[i] = model.Lesson{Slug: l.slug, Title: l.title, Prefix: l.Prefix()}
	}
	return out
}

const (
	statusOK       = http.StatusOK
	statusCreated  = http.StatusCreated
	statusRedirect = http.StatusTemporaryRedirect
)

var lessonTable = []lesson{
	{
		slug:     "basics",
		title:    "Basics Tutorials",
		register: func(*echo.Group, *handler.Handlers, []handler.Runner) {},
	},
	{
		slug:  "path-params",
		title: "Path Parameters",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			p := h.PathParams
			g.GET("/items/:item_id", handler.Handle(p.GetItem, statusOK))
			g.GET("/users/me", handler.Handle(p.GetMe, statusOK))
			g.GET("/users/:user_id", handler.Handle(p.GetUser, statusOK))
			g.GET("/users", handler.Handle(p.ListUsers, statusOK))
			g.GET("/models/:model_name", handler.Handle(p.GetModel, statusOK))
			g.GET("/files/*", handler.Handle(p.GetFile, statusOK))
		},
	},
	{
		slug:  "query-params",
		title: "Query Parameters",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			q := h.QueryParams
			g.GET("/items", handler.Handle(q.ListItems, statusOK))
			g.GET("/numbers/:num_id", handler.Handle(q.GetNumber, statusOK))
			g.GET("/students/:stud_id", handler.Handle(q.GetStudent, statusOK))
			g.GET("/schools/:school_id/area/:area_id", handler.Handle(q.GetSchool, statusOK))
		},
	},
	{
		slug:  "path-numeric-validations",
		title: "Path Parameters Numeric Validations",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			p := h.PathNumericValidations
			g.GET("/pathparams/:item_id", handler.Handle(p.GetPathParam, statusOK))
			g.GET("/numbers/:item_id", handler.Handle(p.GetNumber, statusOK))
		},
	},
	{
		slug:  "string-validations",
		title: "String Validations",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			s := h.StringValidations
			g.GET("/maxlength", handler.Handle(s.MaxLength, statusOK))
			g.GET("/minlength", handler.Handle(s.MinLength, statusOK))
			g.GET("/regexpressions", handler.Handle(s.RegularExpression, statusOK))
			g.GET("/required", handler.Handle(s.Required, statusOK))
			g.GET("/nonerequired", handler.Handle(s.NoneRequired, statusOK))
			g.GET("/mulvalues", handler.Handle(s.MultipleValues, statusOK))
			g.GET("/defvalues", handler.Handle(s.DefaultValues, statusOK))
			g.GET("/metadata", handler.Handle(s.Metadata, statusOK))
			g.GET("/alias", handler.Handle(s.Alias, statusOK))
			g.GET("/deprecated", handler.Handle(s.Alias, statusOK), handler.Deprecation)
			g.GET("/exparams", handler.Handle(s.HiddenParams, statusOK))
			g.GET("/custvalidator", handler.Handle(s.CustomValidator, statusOK))
		},
	},
	{
		slug:  "query-param-models",
		title: "Query Parameter Models",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			q := h.QueryParamModels
			g.GET("/items", handler.Handle(q.ListItems, statusOK))
			g.GET("/forbidextra", handler.Handle(q.ForbidExtra, statusOK))
		},
	},
	{
		slug:  "request-body",
		title: "Request Body",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			r := h.RequestBody
			g.POST("/items", handler.Handle(r.CreateItem, statusOK))
			g.POST("/benefits", handler.Handle(r.FileBenefit, statusOK))
			g.PUT("/benefits/:benefit_id", handler.Handle(r.UpdateBenefit, statusOK))
			g.GET("/benefits/:benefit_id", handler.Handle(r.GetBenefit, statusOK))
			g.GET("/shops/:shop_id", handler.Handle(r.GetShop, statusOK))
		},
	},
	{
		slug:  "body-multiple-params",
		title: "Body Multiple Parameters",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			b := h.BodyMultipleParams
			g.PUT("/multiparams/:params_id", handler.Handle(b.PutMultiParams, statusOK))
			g.PUT("/users/:user_id", handler.Handle(b.PutUser, statusOK))
			g.PUT("/albums/:album_id", handler.Handle(b.PutAlbum, statusOK))
		},
	},
	{
		slug:  "body-fields",
		title: "Body Fields",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.PUT("/books/:book_id", handler.Handle(h.BodyFields.PutBook, statusOK))
		},
	},
	{
		slug:  "body-nested-models",
		title: "Body Nested Models",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			b := h.BodyNestedModels
			g.PUT("/chairs/:chair_id", handler.Handle(b.PutChair, statusOK))
			g.PUT("/fmodtables/:chair_id", handler.Handle(b.PutTypedTable, statusOK))
			g.PUT("/smodtables/:chair_id", handler.Handle(b.PutSetTable, statusOK))
			g.PUT("/items/:item_id", handler.Handle(b.PutItem, statusOK))
			g.POST("/images/multiple", handler.Handle(b.CreateImages, statusOK))
			g.POST("/index-weights", handler.Handle(b.CreateIndexWeights, statusOK))
		},
	},
	{
		slug:  "body-updates",
		title: "Body Updates",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			b := h.BodyUpdates
			g.GET("/details/:id", handler.Handle(b.GetThing, statusOK))
			g.PUT("/conversions/:id", handler.Handle(b.ReplaceThing, statusOK))
			g.PATCH("/details/:id", handler.Handle(b.PatchThing, statusOK))
			g.DELETE("/details/:id", handler.HandleNoContent(b.DeleteThing, http.StatusNoContent))
		},
	},
	{
		slug:  "extra-models",
		title: "Extra Models",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			e := h.ExtraModels
			g.POST("/userdetails", handler.Handle(e.SaveUserDetails, statusOK))
			g.POST("/users", handler.Handle(e.CreateUser, statusOK))
			g.POST("/login", handler.Handle(e.Login, statusOK))
			g.POST("/vehicles/:vehicle_id", handler.Handle(e.GetVehicle, statusOK))
			g.GET("/items", handler.Handle(e.ListItems, statusOK))
			g.GET("/keyword-weights", handler.Handle(e.KeywordWeights, statusOK))
		},
	},
	{
		slug:  "dependency-injection",
		title: "Dependency Injection",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			d := h.DependencyInjection
			g.GET("/items", d.GetItems)
			g.GET("/total", d.GetTotal)
			g.GET("/stores", d.GetStores)
		},
	},
	{
		slug:  "classes-as-dependencies",
		title: "Classes as Dependencies",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.GET("/items", h.ClassesAsDependencies.ListItems)
		},
	},
	{
		slug:  "sub-dependencies",
		title: "Sub-Dependencies",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.GET("/items", h.SubDependencies.ListItems)
		},
	},
	{
		slug:  "dependencies-in-decorators",
		title: "Dependencies in Path Operation Decorators",
		register: func(g *echo.Group, h *handler.Handlers, guards []handler.Runner) {
			g.GET("/items", h.Guarded.ListItems, handler.Depends(guards...))
			g.GET("/users", h.Guarded.ListUsers, handler.Depends(guards...))
		},
	},
	{
		slug:   "global-dependencies",
		title:  "Global Dependencies",
		global: true,
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.GET("/items", h.Guarded.ListItems)
			g.GET("/users", h.Guarded.ListUsers)
		},
	},
	{
		slug:  "cookie-params",
		title: "Cookie Parameters",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.GET("/cookiedata", handler.Handle(h.CookieParams.GetCookieData, statusOK))
		},
	},
	{
		slug:  "cookie-param-models",
		title: "Cookie Parameter Models",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.GET("/items", handler.Handle(h.CookieParams.GetItems, statusOK))
			g.GET("/forbiddata", handler.Handle(h.CookieParams.GetForbidData, statusOK))
		},
	},
	{
		slug:  "header-params",
		title: "Header Parameters",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			p := h.HeaderParams
			g.GET("/headerparam", handler.Handle(p.GetUserAgent, statusOK))
			g.GET("/items", handler.Handle(p.GetStrangeHeader, statusOK))
			g.GET("/dupheader", handler.Handle(p.GetDuplicateHeaders, statusOK))
		},
	},
	{
		slug:  "header-param-models",
		title: "Header Parameter Models",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			p := h.HeaderParams
			g.GET("/createheaders", handler.Handle(p.CreateHeaders, statusOK))
			g.GET("/forbid", handler.Handle(p.ForbidHeaders, statusOK))
			g.GET("/underscore", handler.Handle(p.Underscore, statusOK))
		},
	},
	{
		slug:  "extra-data-types",
		title: "Extra Data Types",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.PUT("/timecalc/:item_id", handler.Handle(h.ExtraDataTypes.TimeCalc, statusOK))
		},
	},
	{
		slug:  "json-compatible-encoder",
		title: "JSON Compatible Encoder",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.PUT("/users/:id", handler.Handle(h.JSONCompatibleEncoder.PutUser, statusOK))
			g.GET("/users/:id", handler.Handle(h.JSONCompatibleEncoder.GetUser, statusOK))
		},
	},
	{
		slug:  "path-operation-configuration",
		title: "Path Operation Configuration",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			p := h.PathOperationConfiguration
			for _, op := range p.Operations() {
				var mw []echo.MiddlewareFunc
				if op.Deprecated {
					mw = append(mw, handler.Deprecation)
				}
				g.Add(op.Method, op.Path, op.Handler, mw...)
			}
			g.GET("/operations", p.ListOperations)
		},
	},
	{
		slug:  "response-status-code",
		title: "Response Status Code",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			r := h.ResponseStatusCode
			g.POST("/status", handler.Handle(r.CreateStatus, statusCreated))
			g.POST("/information", handler.Handle(r.CreateInformation, statusCreated))
		},
	},
	{
		slug:  "response-model",
		title: "Response Model Return Types",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			r := h.ResponseModel
			g.POST("/response-type", handler.Handle(r.ResponseType, statusOK))
			g.POST("/electricity", handler.Handle(r.Electricity, statusOK))
			g.POST("/sockets", handler.Handle(r.Sockets, statusOK))
			g.POST("/floors", handler.Handle(r.Floors, statusOK))
			g.POST("/emails", handler.Handle(r.Emails, statusOK))
			g.POST("/different-models", handler.Handle(r.DifferentModels, statusOK))
			g.POST("/users", handler.Handle(r.CreateUser, statusOK))
			g.GET("/laptops", handler.HandleRedirect(r.Laptops, statusRedirect))
			g.GET("/nature", handler.HandleRedirect(r.Nature, statusRedirect))
			g.GET("/matches", handler.HandleRedirect(r.Matches, statusRedirect))
		},
	},
	{
		slug:  "request-files",
		title: "Request Files",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			r := h.RequestFiles
			g.POST("/files", handler.Handle(r.CreateFile, statusOK))
			g.POST("/documents", handler.Handle(r.UploadDocument, statusOK))
			g.POST("/data", handler.Handle(r.OptionalData, statusOK))
			g.POST("/uploads", handler.Handle(r.OptionalUpload, statusOK))
			g.POST("/addition", handler.Handle(r.Addition, statusOK))
			g.POST("/addition-upload", handler.Handle(r.AdditionUpload, statusOK))
			g.POST("/multiples", handler.Handle(r.Multiples, statusOK))
			g.POST("/multiple-files", handler.Handle(r.MultipleFiles, statusOK))
			g.POST("/multipledata", handler.Handle(r.MultipleData, statusOK))
			g.POST("/multipleuploads", handler.Handle(r.MultipleUploads, statusOK))
			g.GET("/form", r.Form)
		},
	},
	{
		slug:  "request-files-and-forms",
		title: "Request Files and Forms",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.POST("/filesandforms", handler.Handle(h.FilesAndForms.CreateFile, statusOK))
		},
	},
	{
		slug:  "form-models",
		title: "Form Models",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			g.POST("/cycles", handler.Handle(h.FormModels.CreateCycle, statusOK))
			g.POST("/channels", handler.Handle(h.FormModels.CreateChannel, statusOK))
		},
	},
	{
		slug:  "request-example-data",
		title: "Declare Request Example Data",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			r := h.RequestExampleData
			g.GET("/extras/example", handler.Handle(r.Example, statusOK))
			g.PUT("/extras/:extra_id", handler.Handle(r.PutExtra, statusOK))
		},
	},
	{
		slug:  "handling-errors",
		title: "Handling Errors",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			e := h.HandlingErrors
			g.GET("/users/:user_id", handler.Handle(e.GetUser, statusOK))
			g.GET("/items-header/:item_id", handler.Handle(e.GetItemHeader, statusOK))
			g.GET("/unicorns/:name", handler.Handle(e.GetUnicorn, statusOK))
		},
	},
	{
		slug:  "python-types",
		title: "Python Types",
		register: func(g *echo.Group, h *handler.Handlers, _ []handler.Runner) {
			t := h.Types
			g.GET("/full-name", handler.Handle(t.FullName, statusOK))
			g.GET("/greeting", handler.Handle(t.Greeting, statusOK))
			g.POST("/describe", handler.Handle(t.Describe, statusOK))
		},
	},
}
