package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"droscher.com/MovieCatalog/configs"
	"droscher.com/MovieCatalog/pkg/model"
	"droscher.com/MovieCatalog/pkg/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator checks component input against the catalog limits.
type Validator struct {
	validate *validator.Validate
	limits   configs.Catalog
	now      func() time.Time
}

func NewValidator(limits configs.Catalog) (*Validator, error) {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		limits:   limits,
		now:      time.Now,
	}

	err := multierr.Combine(
		v.validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		}),
		v.validate.RegisterValidation("score", func(fl validator.FieldLevel) bool {
			score := fl.Field().Float()

			return score >= limits.MinScore && score <= limits.MaxScore
		}),
		v.validate.RegisterValidation("release_year", func(fl validator.FieldLevel) bool {
			year := int(fl.Field().Int())

			return year >= limits.MinYear && year <= v.maxYear()
		}),
		v.validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("error registering catalog validations: %w", err)
	}

	return v, nil
}

func (v *Validator) maxYear() int {
	return v.now().Year() + v.limits.MaxYearsAhead
}

// Page clamps an offset/limit request to the configured page sizes.
func (v *Validator) Page(page model.Page) model.Page {
	if page.Skip < 0 {
		page.Skip = 0
	}

	switch {
	case page.Limit <= 0:
		page.Limit = v.limits.DefaultPageSize
	case page.Limit > v.limits.MaxPageSize:
		page.Limit = v.limits.MaxPageSize
	}

	return page
}

// Struct validates s and folds every failure into one ErrValidation.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %s", repository.ErrValidation, err.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, v.message(fieldError))
	}

	return fmt.Errorf("%w: %s", repository.ErrValidation, strings.Join(messages, "; "))
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "score":
		return fmt.Sprintf("%s must be between %v and %v", fe.Field(), v.limits.MinScore, v.limits.MaxScore)
	case "release_year":
		return fmt.Sprintf("%s must be between %d and %d", fe.Field(), v.limits.MinYear, v.maxYear())
	case "slug":
		return fmt.Sprintf("%s %q must be lowercase letters and digits separated by single hyphens", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", repository.ErrValidation, fmt.Sprintf(format, args...))
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}

	trimmedValue := strings.TrimSpace(*value)

	return &trimmedValue
}
