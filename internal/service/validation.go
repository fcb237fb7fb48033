package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// validateStruct 校验结构体，失败时返回包装 ErrInvalidInput 的错误
func validateStruct(target interface{}) error {
	if err := validate.Struct(target); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	details := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		details = append(details, fmt.Sprintf("%s %s", fieldErr.Field(), validationMessage(fieldErr)))
	}
	sort.Strings(details)
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(details, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min", "gte":
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "email":
		return "debe ser un email válido"
	}
	return "no es válido"
}
