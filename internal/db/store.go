package db

import (
	"context"
	"errors"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// ErrNotFound is returned by Get for an unknown transcript id.
var ErrNotFound = errors.New("transcript not found")

// Store is the durable, append-only collection of saved sessions. Append
// assigns the id and is the only mutation; there is no update or delete.
type Store interface {
	Append(ctx context.Context, t pkg.Transcript) (string, error)
	List(ctx context.Context) ([]pkg.TranscriptSummary, error)
	Get(ctx context.Context, id string) (pkg.Transcript, error)
}
