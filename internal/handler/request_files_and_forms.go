package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// FilesAndFormsHandler reads plain form fields and files from one multipart body.
type FilesAndFormsHandler struct {
	Handler
}

func NewFilesAndFormsHandler(h Handler) *FilesAndFormsHandler {
	return &FilesAndFormsHandler{Handler: h}
}

type FilesAndFormsRequest struct {
	ParamForms *string `form:"param_forms" validate:"required"`
}

func (r *FilesAndFormsRequest) Validate() error { return validation.Struct(r) }

type FilesAndFormsResponse struct {
	FormDetails    string `json:"form_details"`
	FileSize       int64  `json:"file_size"`
	FileFormat     string `json:"file_format"`
	DetectedFormat string `json:"detected_format"`
}

// CreateFile reports the declared type of the upload next to the sniffed one.
func (h *FilesAndFormsHandler) CreateFile(c echo.Context, req *FilesAndFormsRequest) (FilesAndFormsResponse, error) {
	file, err := requiredFile(c, "param_files")
	if err != nil {
		return FilesAndFormsResponse{}, err
	}

	upload, err := requiredFile(c, "param_upload_files")
	if err != nil {
		return FilesAndFormsResponse{}, err
	}

	return FilesAndFormsResponse{
		FormDetails:    *req.ParamForms,
		FileSize:       file.Size,
		FileFormat:     upload.ContentType,
		DetectedFormat: upload.Detected,
	}, nil
}
