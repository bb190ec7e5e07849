package catalog

import "fmt"

// DataErrorKind classifies fatal dataset problems.
type DataErrorKind string

const (
	DanglingReference DataErrorKind = "dangling-reference"
	DuplicateID       DataErrorKind = "duplicate-id"
	MissingField      DataErrorKind = "missing-field"
)

// DataError is a fatal, load-time dataset error. The application cannot
// render without a valid catalog, so these halt initialization.
type DataError struct {
	Kind   DataErrorKind
	Entity string // "item", "category", "subcategory", "group"
	ID     string
	Detail string
}

func (e *DataError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s %q: %s", e.Kind, e.Entity, e.ID, e.Detail)
	}
	return fmt.Sprintf("%s: %s %q", e.Kind, e.Entity, e.ID)
}

func danglingRef(entity, id, detail string) *DataError {
	return &DataError{Kind: DanglingReference, Entity: entity, ID: id, Detail: detail}
}

func duplicateID(entity, id string) *DataError {
	return &DataError{Kind: DuplicateID, Entity: entity, ID: id}
}

func missingField(entity, id, field string) *DataError {
	return &DataError{Kind: MissingField, Entity: entity, ID: id, Detail: "missing required field " + field}
}
