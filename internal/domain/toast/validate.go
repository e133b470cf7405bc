package toast

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used by the domain.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("position", enumTag(Position.Valid))
		_ = v.RegisterValidation("toast_size", enumTag(Size.Valid))
		_ = v.RegisterValidation("loader_position", enumTag(LoaderPosition.Valid))
		_ = v.RegisterValidation("loader_variant", enumTag(LoaderVariant.Valid))
		_ = v.RegisterValidation("icon_mode", enumTag(IconMode.Valid))
		_ = v.RegisterValidation("sound_preset", enumTag(SoundPreset.Valid))
		_ = v.RegisterValidation("preview_mode", enumTag(PreviewMode.Valid))

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})

		// Every kind must have exactly one icon entry and nothing else may.
		_ = v.RegisterValidation("icon_kinds", func(fl validator.FieldLevel) bool {
			icons, ok := fl.Field().Interface().(map[Kind]StateIconConfig)
			if !ok || len(icons) != len(Kinds()) {
				return false
			}
			for _, kind := range Kinds() {
				if _, ok := icons[kind]; !ok {
					return false
				}
			}
			return true
		})

		validateInst = v
	})

	return validateInst
}

func enumTag[T ~string](valid func(T) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(T(fl.Field().String()))
	}
}

// Validate checks every field of cfg except the theme.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateTheme checks a theme's identity and stylesheet presence.
func ValidateTheme(theme Theme) error {
	if err := validatorInstance().Struct(theme); err != nil {
		return convertValidationError(err)
	}
	if theme.Defaults != nil {
		// Overrides must produce a valid configuration on top of the base.
		if err := Validate(theme.Defaults.Apply(Base())); err != nil {
			return err
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into toastlab validation errors.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tlerrors.NewValidationError(field, msg, err)
	}

	return tlerrors.NewValidationError("config", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		// Drop the root struct name.
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
