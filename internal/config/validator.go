package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	themeIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	cssVarPattern  = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			return toast.Kind(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("css_var", func(fl validator.FieldLevel) bool {
			return cssVarPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d > 0
		})

		validateInst = v
	})

	return validateInst
}

// ValidateProfile performs schema validation and checks that the settings
// produce a valid configuration when applied to the base configuration.
func ValidateProfile(p *Profile) error {
	if p == nil {
		return tlerrors.NewValidationError("profile", "profile is nil", nil)
	}

	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	cfg := p.Settings.Apply(toast.Base())
	if p.PreviewMode != "" {
		cfg.PreviewMode = toast.PreviewMode(p.PreviewMode)
	}
	for _, kind := range toast.Kinds() {
		if setting, ok := p.Icons[kind]; ok {
			cfg.IconConfigs[kind] = setting.Patch().Apply(cfg.IconConfigs[kind])
		}
	}
	if err := toast.Validate(cfg); err != nil {
		var ve *tlerrors.ValidationError
		if errors.As(err, &ve) {
			return tlerrors.NewValidationError("settings."+ve.Field, ve.Message, err)
		}
		return err
	}

	for name, value := range p.Variables {
		if strings.ContainsAny(value, "{};") {
			return tlerrors.NewValidationError("variables."+name, fmt.Sprintf("value %q would break the stylesheet", value), nil)
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

	return tlerrors.NewValidationError("profile", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
