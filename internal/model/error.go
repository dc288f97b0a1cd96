package model

// Standard error codes for domain errors.
const (
	ErrCodeSchemaInit         = "SCHEMA_INIT_FAILED"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeStoreNotFound      = "STORE_NOT_FOUND"
	ErrCodeCategoryNotFound   = "CATEGORY_NOT_FOUND"
	ErrCodeFavoriteNotFound   = "FAVORITE_NOT_FOUND"
	ErrCodeDuplicateProduct   = "DUPLICATE_PRODUCT"
	ErrCodeDuplicateStore     = "DUPLICATE_STORE"
	ErrCodeDuplicateCategory  = "DUPLICATE_CATEGORY"
	ErrCodeReferenceViolation = "REFERENCE_VIOLATION"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrSchemaInit         = NewDomainError(ErrCodeSchemaInit, "schema initialization failed")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrStoreNotFound      = NewDomainError(ErrCodeStoreNotFound, "store not found")
	ErrCategoryNotFound   = NewDomainError(ErrCodeCategoryNotFound, "category not found")
	ErrFavoriteNotFound   = NewDomainError(ErrCodeFavoriteNotFound, "favorite not found")
	ErrDuplicateProduct   = NewDomainError(ErrCodeDuplicateProduct, "a product with this id already exists")
	ErrDuplicateStore     = NewDomainError(ErrCodeDuplicateStore, "a store with this name already exists")
	ErrDuplicateCategory  = NewDomainError(ErrCodeDuplicateCategory, "a category with this name already exists")
	ErrReferenceViolation = NewDomainError(ErrCodeReferenceViolation, "row is referenced by or references a missing row")
)
