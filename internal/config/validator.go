package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/slider/internal/transition"
	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	classNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("class_name", func(fl validator.FieldLevel) bool {
			return classNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("transition", func(fl validator.FieldLevel) bool {
			_, err := transition.Lookup(fl.Field().String())
			return err == nil
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			slide := sl.Current().Interface().(Slide)
			if strings.TrimSpace(slide.Title) == "" && strings.TrimSpace(slide.Body) == "" {
				sl.ReportError(slide.Title, "title", "Title", "title_or_body", "")
			}
		}, Slide{})

		validateInst = v
	})

	return validateInst
}

// ValidateDeck performs structural and cross-field validation on a deck.
func ValidateDeck(deck *Deck) error {
	if deck == nil {
		return slidererrors.NewValidationError("deck", "deck is nil", nil)
	}

	if err := validatorInstance().Struct(deck); err != nil {
		return convertValidationError(err)
	}

	if deck.Slider.InitialSlide >= len(deck.Slides) {
		return slidererrors.NewValidationError("slider.initial_slide",
			fmt.Sprintf("initial_slide %d is out of range for %d slides", deck.Slider.InitialSlide, len(deck.Slides)), nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into slider validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "title_or_body" {
			msg = fmt.Sprintf("%s: a slide needs a title or a body", strings.TrimSuffix(field, ".title"))
		}
		return slidererrors.NewValidationError(field, msg, err)
	}

	return slidererrors.NewValidationError("deck", err.Error(), err)
}

// fieldName drops the root struct from the namespace: "Deck.slider.dot" becomes "slider.dot".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return strings.ToLower(ns)
}
