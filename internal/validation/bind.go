package validation

import (
	"encoding"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/labstack/echo/v4"
)

// Source names a request part a Strict payload guards against extra keys.
type Source string

const (
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
	SourceCookie Source = "cookie"
	SourceForm   Source = "form"
)

// Strict is implemented by payloads that reject keys they do not declare.
// Each undeclared key becomes one field error.
type Strict interface {
	ForbidExtra() Source
}

const extraForbidden = "extra inputs are not permitted"

// transportHeaders are sent by every client and proxy; Strict header
// payloads tolerate them.
var transportHeaders = map[string]struct{}{
	"accept":            {},
	"accept-encoding":   {},
	"accept-language":   {},
	"cache-control":     {},
	"connection":        {},
	"content-length":    {},
	"content-type":      {},
	"host":              {},
	"pragma":            {},
	"user-agent":        {},
	"x-forwarded-for":   {},
	"x-forwarded-proto": {},
	"x-real-ip":         {},
	"x-request-id":      {},
	"newrelic":          {},
	"tracestate":        {},
}

// bind runs echo's binder for every source, in the order path, query,
// header, cookie, body. echo's Bind only reads the query string for
// GET/DELETE/HEAD, so each source is bound explicitly.
func bind(c echo.Context, payload any) error {
	b := &echo.DefaultBinder{}

	if err := b.BindPathParams(c, payload); err != nil {
		return bindError("path parameter", err)
	}

	if err := b.BindQueryParams(c, payload); err != nil {
		return bindError("query parameter", err)
	}

	// net/http moves Host out of the header map.
	req := c.Request()
	if req.Host != "" && req.Header.Get("Host") == "" {
		req.Header.Set("Host", req.Host)
	}

	if err := b.BindHeaders(c, payload); err != nil {
		return bindError("header", err)
	}

	if err := bindCookies(c, payload); err != nil {
		return bindError("cookie", err)
	}

	if err := b.BindBody(c, payload); err != nil {
		return bindError("body", err)
	}

	return nil
}

// fieldBindError is a conversion failure for one named input.
type fieldBindError struct {
	field string
	err   error
}

func (e *fieldBindError) Error() string {
	return fmt.Sprintf("%s: %v", e.field, e.err)
}

func bindError(source string, err error) error {
	var fieldErr *fieldBindError
	if errors.As(err, &fieldErr) {
		return errs.NewBadRequestError("Invalid "+source, true, nil, []errs.FieldError{{
			Field: fieldErr.field,
			Error: fieldErr.err.Error(),
		}})
	}

	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError("Invalid "+source, true, nil, []errs.FieldError{{
			Field: bindingErr.Field,
			Error: fmt.Sprint(bindingErr.Message),
		}})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg := fmt.Sprint(echoErr.Message)
		if echoErr.Code != http.StatusBadRequest {
			return errs.New(echoErr.Code, msg)
		}
		return errs.NewBadRequestError(fmt.Sprintf("Invalid %s: %s", source, msg), true, nil, nil)
	}

	return errs.NewBadRequestError(fmt.Sprintf("Invalid %s: %s", source, err.Error()), true, nil, nil)
}

// bindCookies fills `cookie`-tagged fields. echo has no cookie binder; this
// follows its conventions: untagged structs are walked, pointers allocated,
// BindUnmarshaler and TextUnmarshaler honored. The first cookie of a name wins.
func bindCookies(c echo.Context, payload any) error {
	cookies := c.Cookies()
	if len(cookies) == 0 {
		return nil
	}

	data := make(map[string]string, len(cookies))
	for _, ck := range cookies {
		if _, seen := data[ck.Name]; !seen {
			data[ck.Name] = ck.Value
		}
	}

	val := reflect.ValueOf(payload)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return nil
	}

	return bindCookieFields(val.Elem(), data)
}

func bindCookieFields(val reflect.Value, data map[string]string) error {
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		typeField := typ.Field(i)
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}

		name := strings.SplitN(typeField.Tag.Get("cookie"), ",", 2)[0]
		if name == "" {
			if field.Kind() == reflect.Struct {
				if err := bindCookieFields(field, data); err != nil {
					return err
				}
			}
			continue
		}

		raw, ok := data[name]
		if !ok {
			continue
		}

		if err := setField(field, raw); err != nil {
			return &fieldBindError{field: name, err: err}
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	switch u := field.Addr().Interface().(type) {
	case echo.BindUnmarshaler:
		return u.UnmarshalParam(raw)
	case encoding.TextUnmarshaler:
		return u.UnmarshalText([]byte(raw))
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("must be a non-negative integer")
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("must be a boolean")
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}

	return nil
}

// extraInputs lists keys present in the request source that payload does not declare.
func extraInputs(c echo.Context, payload any, src Source) []errs.FieldError {
	tag := string(src)
	declared := make(map[string]struct{})
	declaredNames(reflect.TypeOf(payload), tag, src == SourceHeader, declared)

	var extra []string
	for _, key := range requestKeys(c, src) {
		lookup := key
		if src == SourceHeader {
			lookup = strings.ToLower(key)
			if _, ok := transportHeaders[lookup]; ok {
				continue
			}
		}
		if _, ok := declared[lookup]; !ok {
			extra = append(extra, lookup)
		}
	}

	sort.Strings(extra)

	fieldErrors := make([]errs.FieldError, 0, len(extra))
	for _, key := range extra {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: key, Error: extraForbidden})
	}

	return fieldErrors
}

func declaredNames(typ reflect.Type, tag string, fold bool, into map[string]struct{}) {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "" || name == "-" {
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				declaredNames(ft, tag, fold, into)
			}
			continue
		}
		if fold {
			name = strings.ToLower(name)
		}
		into[name] = struct{}{}
	}
}

func requestKeys(c echo.Context, src Source) []string {
	var keys []string
	req := c.Request()

	switch src {
	case SourceQuery:
		for k := range c.QueryParams() {
			keys = append(keys, k)
		}
	case SourceHeader:
		for k := range req.Header {
			keys = append(keys, k)
		}
	case SourceCookie:
		seen := make(map[string]struct{})
		for _, ck := range c.Cookies() {
			if _, ok := seen[ck.Name]; ok {
				continue
			}
			seen[ck.Name] = struct{}{}
			keys = append(keys, ck.Name)
		}
	case SourceForm:
		// FormParams parses the body; PostForm then holds body fields only,
		// without the query string.
		if _, err := c.FormParams(); err != nil {
			return nil
		}
		for k := range req.PostForm {
			keys = append(keys, k)
		}
		if req.MultipartForm != nil {
			for k := range req.MultipartForm.File {
				keys = append(keys, k)
			}
		}
	}

	return keys
}
