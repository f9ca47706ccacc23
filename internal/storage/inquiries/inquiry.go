// Package inquiries stores locally submitted admission applications and
// information requests. They never leave the machine; an administrator
// reviews them from the inquiries screen.
package inquiries

import (
	"context"
	"time"
)

// Kind separates the two request flavors sharing one table.
type Kind string

const (
	KindAdmission   Kind = "admission"
	KindInformation Kind = "info"
)

// Status lifecycle for an inquiry. New inquiries start as StatusPending.
const (
	StatusPending   = "pendiente"
	StatusContacted = "contactado"
	StatusAccepted  = "aceptado"
	StatusRejected  = "rechazado"
)

// Inquiry is one stored request. Payload is the JSON-serialized form as the
// applicant submitted it.
type Inquiry struct {
	ID        string
	Kind      Kind
	Status    string
	Payload   []byte
	CreatedAt time.Time
}

type Repository interface {
	Add(ctx context.Context, kind Kind, payload []byte) (*Inquiry, error)
	List(ctx context.Context, kind Kind) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}
