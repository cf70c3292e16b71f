package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

// UploadedFile is one file read from a multipart form.
type UploadedFile struct {
	Filename string
	Size     int64

	// ContentType is what the client declared for the part.
	ContentType string

	// Detected is sniffed from the first bytes of the content.
	Detected string

	Data []byte
}

// formFiles returns the parts sent under field. A request that is not
// multipart has no files.
func formFiles(c echo.Context, field string) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, nil
		}
		return nil, errs.NewBadRequestError("Invalid multipart form: "+err.Error(), true, nil, nil)
	}
	return form.File[field], nil
}

func readUpload(fh *multipart.FileHeader) (UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return UploadedFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return UploadedFile{}, err
	}

	return UploadedFile{
		Filename:    fh.Filename,
		Size:        int64(len(data)),
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Detected:    mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}

func missingFile(field string) error {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
		Field: field,
		Error: "is required",
	}})
}

// requiredFiles reads every file under field; at least one must be sent.
func requiredFiles(c echo.Context, field string) ([]UploadedFile, error) {
	files, err := optionalFiles(c, field)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, missingFile(field)
	}
	return files, nil
}

// optionalFiles reads every file under field.
func optionalFiles(c echo.Context, field string) ([]UploadedFile, error) {
	headers, err := formFiles(c, field)
	if err != nil {
		return nil, err
	}

	files := make([]UploadedFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// requiredFile reads the first file under field.
func requiredFile(c echo.Context, field string) (UploadedFile, error) {
	files, err := requiredFiles(c, field)
	if err != nil {
		return UploadedFile{}, err
	}
	return files[0], nil
}

// optionalFile reads the first file under field, or returns nil.
func optionalFile(c echo.Context, field string) (*UploadedFile, error) {
	files, err := optionalFiles(c, field)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return &files[0], nil
}

func fileSizes(files []UploadedFile) []int64 {
	sizes := make([]int64, len(files))
	for i, f := range files {
		sizes[i] = f.Size
	}
	return sizes
}

func fileNames(files []UploadedFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Filename
	}
	return names
}
