// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g. sqlstore) inside this directory.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pointboard/internal/model"
)

var (
	// ErrNotFound is returned when no record matches the requested id or query.
	ErrNotFound = errors.New("record not found")
	// ErrMultipleResults is returned by single-result queries that matched more than one record.
	ErrMultipleResults = errors.New("multiple records found")
)

// Repository is the uniform create/read/update/delete contract over an entity type.
// No business logic here, only persistence.
type Repository[T model.Entity] interface {
	// GetAll returns every record. Order is unspecified.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Create persists entity and returns its id. A nil id is replaced with a
	// freshly generated one, which is also written back into entity.
	Create(ctx context.Context, entity *T) (uuid.UUID, error)

	// CreateMany inserts all entities in one transaction, assigning ids like Create.
	CreateMany(ctx context.Context, entities []T) error

	// Update overwrites every mutable field of the record identified by entity's id
	// and returns the stored result. When no record has that id nothing is written
	// and ErrNotFound is returned.
	Update(ctx context.Context, entity *T) (*T, error)

	// Delete removes the record identified by entity's id. Deleting a missing id is a no-op.
	Delete(ctx context.Context, entity *T) error
}
