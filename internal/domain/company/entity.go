package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is an employer account. Its ID doubles as the owning user's
// id, mirroring how student profiles are keyed.
type Company struct {
	ID          uuid.UUID
	Name        string
	Industry    string
	Location    string
	Description string
	CreatedAt   time.Time
}
