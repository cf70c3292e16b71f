package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequestFilesHandler reads multipart uploads: single, optional and multiple
// files, answered with their sizes or names.
type RequestFilesHandler struct {
	Handler
}

func NewRequestFilesHandler(h Handler) *RequestFilesHandler {
	return &RequestFilesHandler{Handler: h}
}

type FileSizeResponse struct {
	FileSize int64 `json:"file_size"`
}

type FileNameResponse struct {
	FileName string `json:"file_name"`
}

type FileSizesResponse struct {
	FileSizes []int64 `json:"file_sizes"`
}

type FileNamesResponse struct {
	FileNames []string `json:"file_names"`
}

func (h *RequestFilesHandler) size(field string) HandlerFunc[*NoParams, FileSizeResponse] {
	return func(c echo.Context, _ *NoParams) (FileSizeResponse, error) {
		file, err := requiredFile(c, field)
		if err != nil {
			return FileSizeResponse{}, err
		}
		return FileSizeResponse{FileSize: file.Size}, nil
	}
}

func (h *RequestFilesHandler) name(field string) HandlerFunc[*NoParams, FileNameResponse] {
	return func(c echo.Context, _ *NoParams) (FileNameResponse, error) {
		file, err := requiredFile(c, field)
		if err != nil {
			return FileNameResponse{}, err
		}
		return FileNameResponse{FileName: file.Filename}, nil
	}
}

// CreateFile reads the whole upload into memory.
func (h *RequestFilesHandler) CreateFile(c echo.Context, req *NoParams) (FileSizeResponse, error) {
	return h.size("param_file")(c, req)
}

// UploadDocument only looks at the upload's metadata.
func (h *RequestFilesHandler) UploadDocument(c echo.Context, req *NoParams) (FileNameResponse, error) {
	return h.name("param_data")(c, req)
}

func (h *RequestFilesHandler) Addition(c echo.Context, req *NoParams) (FileSizeResponse, error) {
	return h.size("add_data")(c, req)
}

func (h *RequestFilesHandler) AdditionUpload(c echo.Context, req *NoParams) (FileNameResponse, error) {
	return h.name("param_file")(c, req)
}

// OptionalData answers "No file sent" when the part is missing.
func (h *RequestFilesHandler) OptionalData(c echo.Context, _ *NoParams) (any, error) {
	file, err := optionalFile(c, "param_file")
	if err != nil {
		return nil, err
	}
	if file == nil {
		return Message{Message: "No file sent"}, nil
	}
	return FileSizeResponse{FileSize: file.Size}, nil
}

func (h *RequestFilesHandler) OptionalUpload(c echo.Context, _ *NoParams) (any, error) {
	file, err := optionalFile(c, "param_uploads")
	if err != nil {
		return nil, err
	}
	if file == nil {
		return Message{Message: "No file sent"}, nil
	}
	return FileNameResponse{FileName: file.Filename}, nil
}

func (h *RequestFilesHandler) Multiples(c echo.Context, _ *NoParams) (FileSizesResponse, error) {
	files, err := requiredFiles(c, "param_multiples")
	if err != nil {
		return FileSizesResponse{}, err
	}
	return FileSizesResponse{FileSizes: fileSizes(files)}, nil
}

func (h *RequestFilesHandler) MultipleFiles(c echo.Context, _ *NoParams) (FileNamesResponse, error) {
	files, err := requiredFiles(c, "multiple_file")
	if err != nil {
		return FileNamesResponse{}, err
	}
	return FileNamesResponse{FileNames: fileNames(files)}, nil
}

type FilesSizesResponse struct {
	FilesSizes []int64 `json:"files_sizes"`
}

// MultipleData accepts no files at all.
func (h *RequestFilesHandler) MultipleData(c echo.Context, _ *NoParams) (any, error) {
	files, err := optionalFiles(c, "param_mul_data")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return Message{Message: "No files sent"}, nil
	}
	return FilesSizesResponse{FilesSizes: fileSizes(files)}, nil
}

func (h *RequestFilesHandler) MultipleUploads(c echo.Context, _ *NoParams) (any, error) {
	files, err := optionalFiles(c, "param_multiple_uploads")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return Message{Message: "No files sent"}, nil
	}
	return FileNamesResponse{FileNames: fileNames(files)}, nil
}

// uploadForm posts to the multiple-file routes of the group it is served from.
const uploadForm = `<!doctype html>
<html>
<body>
<form action="multipledata" enctype="multipart/form-data" method="post">
<input name="param_mul_data" type="file" multiple>
<input type="submit">
</form>
<form action="multipleuploads" enctype="multipart/form-data" method="post">
<input name="param_multiple_uploads" type="file" multiple>
<input type="submit">
</form>
</body>
</html>
`

func (h *RequestFilesHandler) Form(c echo.Context) error {
	return c.HTML(http.StatusOK, uploadForm)
}
