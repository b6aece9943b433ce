package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	legendscaleerrors "github.com/mbeaudin/legendscale/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	paletteNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,49}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("palette_name", func(fl validator.FieldLevel) bool {
			return paletteNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and per-kind validation on the
// preferences document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return legendscaleerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Palettes))
	for i, pal := range cfg.Palettes {
		key := strings.ToLower(pal.Name)
		if _, exists := seen[key]; exists {
			return legendscaleerrors.NewValidationError(fieldForPalette(i, "name"), fmt.Sprintf("duplicate palette name %q", pal.Name), nil)
		}
		seen[key] = i

		if err := validatePalette(pal, i); err != nil {
			return err
		}
	}

	return nil
}

// validatePalette enforces the stop shape each palette kind needs.
func validatePalette(pal Palette, index int) error {
	switch pal.Kind {
	case "sequential":
		if len(pal.Stops) != 2 {
			return legendscaleerrors.NewValidationError(fieldForPalette(index, "stops"), fmt.Sprintf("sequential palettes need exactly 2 stops, got %d", len(pal.Stops)), nil)
		}
		if pal.Pivot != "" {
			return legendscaleerrors.NewValidationError(fieldForPalette(index, "pivot"), "pivot is only valid for diverging palettes", nil)
		}
	case "diverging":
		if len(pal.Stops) != 4 {
			return legendscaleerrors.NewValidationError(fieldForPalette(index, "stops"), fmt.Sprintf("diverging palettes need exactly 4 stops, got %d", len(pal.Stops)), nil)
		}
		if pal.Pivot == "" {
			return legendscaleerrors.NewValidationError(fieldForPalette(index, "pivot"), "diverging palettes need a pivot color", nil)
		}
	default:
		return legendscaleerrors.NewValidationError(fieldForPalette(index, "kind"), fmt.Sprintf("unknown palette kind %q", pal.Kind), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return legendscaleerrors.NewValidationError(field, msg, err)
	}

	return legendscaleerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPalette(index int, field string) string {
	return fmt.Sprintf("palettes[%d].%s", index, field)
}
