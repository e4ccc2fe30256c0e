package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// rangeFields campos cuyo error se informa como INVALID_RANGE.
var rangeFields = map[string]bool{"From": true, "To": true}

// validateQuery valida el DTO. badRange indica que alguno de los campos inválidos es from/to.
func validateQuery(req any) (badRange bool, err error) {
	err = validate.Struct(req)
	if err == nil {
		return false, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if rangeFields[fe.Field()] {
			badRange = true
		}
		parts = append(parts, describe(fe))
	}
	return badRange, fmt.Errorf("parámetros inválidos: %s", strings.Join(parts, "; "))
}

func describe(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " es obligatorio"
	case "datetime":
		return name + " debe tener formato YYYY-MM-DD"
	default:
		return fmt.Sprintf("%s no cumple %s", name, fe.Tag())
	}
}
