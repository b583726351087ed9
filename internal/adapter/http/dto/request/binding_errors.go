package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterJSONFieldNames makes gin's validator report JSON paths such as
// "materials[0].type" instead of Go field names.
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// FieldError describes why a body could not be bound.
type FieldError struct {
	Field   string
	Message string
}

// DescribeBindError turns a gin binding error into a field and a message.
// Field is empty when the body as a whole is malformed.
func DescribeBindError(err error) FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		field := fieldPath(fe.Namespace())
		return FieldError{Field: field, Message: fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())}
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return FieldError{Field: ute.Field, Message: fmt.Sprintf("%s must be a %s", ute.Field, ute.Type.String())}
	}

	if errors.Is(err, io.EOF) {
		return FieldError{Message: "request body is empty"}
	}
	return FieldError{Message: "request body is not valid json"}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
