package inventory

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// ItemInput is the raw create/update payload before validation. Quantity,
// price and is_active are pointers so that an absent field can be told apart
// from an explicit zero/false.
type ItemInput struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description"`
	SKU         string           `json:"sku" validate:"required,max=255"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category" validate:"omitempty,max=255"`
	Location    string           `json:"location" validate:"omitempty,max=255"`
	IsActive    *bool            `json:"is_active"`
}

// validate is the shared rules engine. Field names in error output come from
// json tags so callers see "sku", not "SKU".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks the payload against the item schema and collects every
// failure into a field-keyed error set. excludeID scopes the SKU uniqueness
// check so an item may keep its own SKU on update; pass 0 when creating.
// A nil return means the payload is valid.
func (s *service) validateInput(ctx context.Context, input ItemInput, excludeID int64) (domain.FieldErrors, error) {
	fieldErrors := make(domain.FieldErrors)

	if err := validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("failed to validate input: %w", err)
		}
		for _, e := range validationErrors {
			fieldErrors.Add(e.Field(), messageFor(e))
		}
	}

	// price is checked by hand: decimal.Decimal is opaque to tag rules
	if input.Price == nil {
		fieldErrors.Add("price", "This field is required")
	} else if input.Price.IsNegative() {
		fieldErrors.Add("price", "Must be 0 or greater")
	}

	// Uniqueness is only checked when the sku passed its shape rules; the
	// database unique index remains the final arbiter under concurrency.
	if _, taken := fieldErrors["sku"]; !taken && input.SKU != "" {
		exists, err := s.repo.SKUExists(ctx, input.SKU, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check sku uniqueness: %w", err)
		}
		if exists {
			fieldErrors.Add("sku", "This SKU is already taken")
		}
	}

	if fieldErrors.HasErrors() {
		return fieldErrors, nil
	}
	return nil, nil
}

// messageFor maps a failed rule to a user-facing message without leaking
// internal struct details.
func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case "gte":
		return fmt.Sprintf("Must be %s or greater", e.Param())
	default:
		return "Invalid value"
	}
}

// toItem applies the validated payload to an item. The is_active default is
// asymmetric on purpose: absent means true on create and false on update,
// matching the form semantics of an unchecked checkbox.
func (in ItemInput) toItem(id int64, creating bool) domain.Item {
	isActive := creating // absent: true on create, false on update
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	return domain.Item{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Quantity:    *in.Quantity,
		Price:       in.Price.Round(2),
		Category:    in.Category,
		Location:    in.Location,
		IsActive:    isActive,
	}
}
