package model

import "github.com/google/uuid"

// Entity is the identity capability shared by every persisted record.
type Entity interface {
	EntityID() uuid.UUID
}
