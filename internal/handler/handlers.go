package handler

import (
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/deppfellow/echo-lessons/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of forty.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Lessons *LessonsHandler

	PathParams                 *PathParamsHandler
	QueryParams                *QueryParamsHandler
	PathNumericValidations     *PathNumericValidationsHandler
	StringValidations          *StringValidationsHandler
	QueryParamModels           *QueryParamModelsHandler
	RequestBody                *RequestBodyHandler
	BodyMultipleParams         *BodyMultipleParamsHandler
	BodyFields                 *BodyFieldsHandler
	BodyNestedModels           *BodyNestedModelsHandler
	BodyUpdates                *BodyUpdatesHandler
	ExtraModels                *ExtraModelsHandler
	DependencyInjection        *DependencyInjectionHandler
	ClassesAsDependencies      *ClassesAsDependenciesHandler
	SubDependencies            *SubDependenciesHandler
	Guarded                    *GuardedHandler
	CookieParams               *CookieParamsHandler
	HeaderParams               *HeaderParamsHandler
	ExtraDataTypes             *ExtraDataTypesHandler
	JSONCompatibleEncoder      *JSONCompatibleEncoderHandler
	PathOperationConfiguration *PathOperationConfigurationHandler
	ResponseStatusCode         *ResponseStatusCodeHandler
	ResponseModel              *ResponseModelHandler
	RequestFiles               *RequestFilesHandler
	FilesAndForms              *FilesAndFormsHandler
	FormModels                 *FormModelsHandler
	RequestExampleData         *RequestExampleDataHandler
	HandlingErrors             *HandlingErrorsHandler
	Types                      *TypesHandler
}

// NewHandlers constructs the handler container. Every handler shares one
// base Handler, so they all see the same server and services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	h := NewHandler(s, services)

	return &Handlers{
		Health:  NewHealthHandler(h),
		OpenAPI: NewOpenAPIHandler(h),
		Lessons: NewLessonsHandler(h),

		PathParams:                 NewPathParamsHandler(h),
		QueryParams:                NewQueryParamsHandler(h),
		PathNumericValidations:     NewPathNumericValidationsHandler(h),
		StringValidations:          NewStringValidationsHandler(h),
		QueryParamModels:           NewQueryParamModelsHandler(h),
		RequestBody:                NewRequestBodyHandler(h),
		BodyMultipleParams:         NewBodyMultipleParamsHandler(h),
		BodyFields:                 NewBodyFieldsHandler(h),
		BodyNestedModels:           NewBodyNestedModelsHandler(h),
		BodyUpdates:                NewBodyUpdatesHandler(h),
		ExtraModels:                NewExtraModelsHandler(h),
		DependencyInjection:        NewDependencyInjectionHandler(h),
		ClassesAsDependencies:      NewClassesAsDependenciesHandler(h),
		SubDependencies:            NewSubDependenciesHandler(h),
		Guarded:                    NewGuardedHandler(h),
		CookieParams:               NewCookieParamsHandler(h),
		HeaderParams:               NewHeaderParamsHandler(h),
		ExtraDataTypes:             NewExtraDataTypesHandler(h),
		JSONCompatibleEncoder:      NewJSONCompatibleEncoderHandler(h),
		PathOperationConfiguration: NewPathOperationConfigurationHandler(h),
		ResponseStatusCode:         NewResponseStatusCodeHandler(h),
		ResponseModel:              NewResponseModelHandler(h),
		RequestFiles:               NewRequestFilesHandler(h),
		FilesAndForms:              NewFilesAndFormsHandler(h),
		FormModels:                 NewFormModelsHandler(h),
		RequestExampleData:         NewRequestExampleDataHandler(h),
		HandlingErrors:             NewHandlingErrorsHandler(h),
		Types:                      NewTypesHandler(h),
	}
}
