package app

import (
	"context"

	"github.com/fernandojoseee/garageonline/internal/invoice/domain"
)

// Sink is the document collaborator: it persists or delivers a
// generated invoice and reports where it ended up. The generator never
// cares how (filesystem, download, mail).
type Sink interface {
	Save(ctx context.Context, doc domain.Document) (string, error)
}
