package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// embeddedName marks anonymous struct fields in validator namespaces so
// they can be dropped from the reported field path.
const embeddedName = "~"

var (
	validate     *validator.Validate
	validateOnce sync.Once

	patternCache sync.Map // string -> *regexp.Regexp
)

// wireTags are checked in order; the first one naming the field wins.
// Input tags come before json so a header field is reported as
// "save-data", not by the key it is written back under.
var wireTags = []string{"param", "query", "header", "cookie", "form", "json"}

// Validator returns the shared validator. It reports fields by their wire
// name and knows the `pattern=<regexp>` tag.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(wireName)

		if err := v.RegisterValidation("pattern", matchPattern); err != nil {
			panic(err)
		}

		validate = v
	})

	return validate
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return Validator().Struct(s)
}

func wireName(fld reflect.StructField) string {
	if fld.Anonymous {
		return embeddedName
	}

	for _, tag := range wireTags {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	// Off the wire but still validated (a whole-body payload): no path segment.
	if fld.Tag.Get("json") == "-" {
		return embeddedName
	}

	return ""
}

func matchPattern(fl validator.FieldLevel) bool {
	expr := fl.Param()

	re, ok := patternCache.Load(expr)
	if !ok {
		compiled, err := regexp.Compile(expr)
		if err != nil {
			return false
		}
		re, _ = patternCache.LoadOrStore(expr, compiled)
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return re.(*regexp.Regexp).MatchString(field.String())
}

// fieldPath turns "ItemRequest.~.image.url" into "image.url".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	kept := parts[:0]
	for _, p := range parts {
		if p == embeddedName || strings.HasPrefix(p, embeddedName+"[") {
			continue
		}
		kept = append(kept, p)
	}

	if len(kept) == 0 {
		return fe.Field()
	}

	return strings.Join(kept, ".")
}
