// Package validation configures gin's validator: JSON field names in errors,
// Portuguese messages and the cpf/cnpj tags.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/pkg/document"
)

const (
	cpfTag  = "cpf"
	cpfText = "{0} deve ser um CPF válido"

	cnpjTag  = "cnpj"
	cnpjText = "{0} deve ser um CNPJ válido"
)

var (
	once       sync.Once
	translator ut.Translator
)

// Setup registers the custom tags on gin's default validator. Safe to call repeatedly.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		register(v)
	})
}

func register(v *validator.Validate) {
	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	translator, _ = uni.GetTranslator("pt_BR")
	_ = pt_translations.RegisterDefaultTranslations(v, translator)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation(cpfTag, func(fl validator.FieldLevel) bool {
		return document.IsValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation(cnpjTag, func(fl validator.FieldLevel) bool {
		return document.IsValidCNPJ(fl.Field().String())
	})
	registerTranslation(v, cpfTag, cpfText)
	registerTranslation(v, cnpjTag, cnpjText)
}

func registerTranslation(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// FieldErrors converts binding errors into per-field messages. Errors that are
// not validation failures (malformed JSON) yield a single "body" entry.
func FieldErrors(err error) []pkg.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []pkg.FieldError{{Field: "body", Error: "corpo da requisição inválido"}}
	}
	out := make([]pkg.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if translator != nil {
			msg = fe.Translate(translator)
		}
		out = append(out, pkg.FieldError{Field: fe.Field(), Error: msg})
	}
	return out
}

// BindError is the AppError written for a failed ShouldBind call.
func BindError(err error) *pkg.AppError {
	appErr := pkg.NewValidationError(FieldErrors(err)...)
	appErr.Err = err
	return appErr
}
