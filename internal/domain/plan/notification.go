package plan

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

const (
	DefaultContentType = "product"
	DefaultLocale      = "en-US"
)

// ProductChange is the part of a content-change notification that is synced.
type ProductChange struct {
	EntryID string `json:"sys.id" validate:"required"`
	Name    string `json:"productName" validate:"required"`
	Price   string `json:"price" validate:"required,leading_int"`
}

// Decision is the result of decoding a notification: either the entry is
// skipped because of its content type, or Change holds the typed fields.
type Decision struct {
	Skip        bool
	ContentType string
	Change      ProductChange
}

// Decoder turns raw notification bodies into validated product changes.
type Decoder struct {
	contentType string
	locale      string
	validate    *validator.Validate
}

func NewDecoder(contentType, locale string) *Decoder {
	if contentType == "" {
		contentType = DefaultContentType
	}
	if locale == "" {
		locale = DefaultLocale
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("leading_int", validateLeadingInt)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("json")
	})

	return &Decoder{
		contentType: contentType,
		locale:      locale,
		validate:    v,
	}
}

func validateLeadingInt(fl validator.FieldLevel) bool {
	_, ok := leadingInt(fl.Field().String())
	return ok
}

// Decode parses body. A body that is not a JSON object yields ErrMalformedInput.
// A content type other than the configured one yields a skip decision, checked
// before any field is inspected. Missing or unusable fields yield *ValidationError.
func (d *Decoder) Decode(body []byte) (Decision, error) {
	if !gjson.ValidBytes(body) {
		return Decision{}, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Decision{}, fmt.Errorf("%w: expected a JSON object", ErrMalformedInput)
	}

	contentType := root.Get("sys.contentType.sys.id").String()
	if contentType != d.contentType {
		return Decision{Skip: true, ContentType: contentType}, nil
	}

	locale := gjson.Escape(d.locale)
	change := ProductChange{
		EntryID: scalar(root.Get("sys.id")),
		Name:    scalar(root.Get("fields.productName." + locale)),
		Price:   scalar(root.Get("fields.price." + locale)),
	}

	if err := d.validate.Struct(change); err != nil {
		return Decision{}, toValidationError(err)
	}

	return Decision{ContentType: contentType, Change: change}, nil
}

// scalar keeps strings and numbers; objects, arrays and null count as missing.
func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.String, gjson.Number:
		return r.String()
	default:
		return ""
	}
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "notification", Reason: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Reason: "is required"}
	case "leading_int":
		return &ValidationError{Field: fe.Field(), Reason: fmt.Sprintf("%q does not start with an integer amount", fe.Value())}
	default:
		return &ValidationError{Field: fe.Field(), Reason: fmt.Sprintf("failed on the '%s' tag", fe.Tag())}
	}
}
