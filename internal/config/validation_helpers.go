package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

// convertValidationError normalizes validator errors into definition
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return tealerterrors.NewValidationError(field, msg, err)
	}

	return tealerterrors.NewValidationError("definition", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the YAML path of the field.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func fieldForButton(index int, field string) string {
	return fmt.Sprintf("buttons[%d].%s", index, field)
}

func fieldForInput(index int, field string) string {
	return fmt.Sprintf("inputs[%d].%s", index, field)
}
