package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization owns events and carries its own materialization window.
type Organization struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
