package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
)

// SetupValidator registers custom binding tags. Call once at startup,
// before the engine serves requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report field names from json tags instead of Go identifiers
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// taxid accepts a valid CPF or CNPJ, punctuated or digits only
	_ = v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		_, err := valueobject.NewTaxID(fl.Field().String())
		return err == nil
	})
}
