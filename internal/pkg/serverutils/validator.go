package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds the failures into a
// single ValidationError the error handler can map to a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("invalid request payload")
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return apperror.Validation("missing or invalid fields: " + strings.Join(fields, ", "))
}
