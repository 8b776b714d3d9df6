package dispatch

import (
	"context"
	"fmt"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

// Validator performs pre-dispatch input checks. Both checks are pure with
// respect to the audit log: nothing is written when validation fails.
type Validator struct {
	Catalog repository.CatalogRepository
}

// ValidateCategory checks that name refers to a known active category.
// Returns a ValidationError for unknown or inactive categories; catalog
// lookup failures are wrapped and returned as-is.
func (v *Validator) ValidateCategory(ctx context.Context, name string) error {
	if name == "" {
		return &entity.ValidationError{Field: "category", Message: "is required"}
	}
	category, err := v.Catalog.GetCategoryByName(ctx, name)
	if err != nil {
		return fmt.Errorf("validate category: %w", err)
	}
	if category == nil {
		return &entity.ValidationError{Field: "category", Message: "unknown or inactive category"}
	}
	return nil
}

// ValidateContent checks that content is non-empty and not whitespace-only.
func (v *Validator) ValidateContent(content string) error {
	return entity.ValidateContent(content)
}
