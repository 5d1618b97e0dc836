package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	"github.com/alexisbeaulieu97/tealert/internal/ui/components"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("dialog_style", func(fl validator.FieldLevel) bool {
			_, err := dialog.ParseStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("button_style", func(fl validator.FieldLevel) bool {
			_, err := dialog.ParseButtonStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hue", func(fl validator.FieldLevel) bool {
			_, err := components.ParseHue(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDefinition performs schema and cross-field validation on a
// definition.
func ValidateDefinition(def *Definition) error {
	if def == nil {
		return tealerterrors.NewValidationError("definition", "definition is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(def); err != nil {
		return convertValidationError(err)
	}

	style, _ := dialog.ParseStyle(def.Style)
	if style != dialog.StyleAlert && len(def.Inputs) > 0 {
		return tealerterrors.NewValidationError("inputs", "input fields are only supported by alerts", dialog.ErrInputUnsupported)
	}

	cancel := -1
	for i, b := range def.Buttons {
		bs, _ := dialog.ParseButtonStyle(b.Style)
		if bs != dialog.ButtonCancel {
			continue
		}
		if cancel >= 0 {
			return tealerterrors.NewValidationError(fieldForButton(i, "style"),
				fmt.Sprintf("only one cancel button is allowed, buttons[%d] is already cancel", cancel), dialog.ErrDuplicateCancel)
		}
		cancel = i
	}

	tags := make(map[int]int, len(def.Inputs))
	for i, in := range def.Inputs {
		if in.Tag == 0 {
			continue
		}
		if prev, exists := tags[in.Tag]; exists {
			return tealerterrors.NewValidationError(fieldForInput(i, "tag"),
				fmt.Sprintf("duplicate input tag %d, also used by inputs[%d]", in.Tag, prev), nil)
		}
		tags[in.Tag] = i
	}

	if len(def.Buttons) == 0 && !def.DismissesOnBackgroundTap() {
		return tealerterrors.NewValidationError("buttons", "a dialog without buttons must dismiss on background tap", nil)
	}

	return nil
}
