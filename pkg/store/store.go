// Package store keeps a history of analyses.
//
// Every analysis saved through a [Store] gets a random UUID and a creation
// time. Records carry a small summary (length, node and edge counts, peak
// ratio) next to the full [pipeline.Result], so listings can stay cheap:
// [Store.List] returns summaries only, newest first.
//
// # Backends
//
//   - [MemoryStore]: process-local, for tests and one-shot servers
//   - [FileStore]: one BSON file per analysis, for the CLI history
//   - [MongoStore]: a MongoDB collection, for shared server deployments
//
// Missing records are reported with [errors.ErrCodeNotFound] and malformed
// ids with [errors.ErrCodeInvalidInput], so callers can map them without
// knowing the backend.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/pipeline"
)

// DefaultListLimit is used by List when the limit is not positive.
const DefaultListLimit = 20

// Analysis is one stored analysis run.
type Analysis struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	Length    int     `json:"length" bson:"length"`
	NodeCount int     `json:"node_count" bson:"node_count"`
	EdgeCount int     `json:"edge_count" bson:"edge_count"`
	MaxRatio  float64 `json:"max_ratio" bson:"max_ratio"`

	// Result is nil in listings.
	Result *pipeline.Result `json:"result,omitempty" bson:"result,omitempty"`
}

// New creates a record for res with a fresh id.
func New(res *pipeline.Result) *Analysis {
	return &Analysis{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Length:    len(res.Text),
		NodeCount: res.Graph.NodeCount,
		EdgeCount: res.Graph.EdgeCount,
		MaxRatio:  res.Stats.Summary.MaxRatio,
		Result:    res,
	}
}

// Summary returns a copy of a without the full result.
func (a *Analysis) Summary() *Analysis {
	s := *a
	s.Result = nil
	return &s
}

// Store is the interface for analysis history backends.
type Store interface {
	// Save stores a. The id must already be set (see [New]).
	Save(ctx context.Context, a *Analysis) error

	// Get retrieves a full analysis by id.
	Get(ctx context.Context, id string) (*Analysis, error)

	// List returns up to limit summaries, newest first.
	List(ctx context.Context, limit int) ([]*Analysis, error)

	// Delete removes an analysis.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// ValidateID checks that id is a UUID. File names and Mongo keys are built
// from ids, so everything else is rejected.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid analysis id %q", id)
	}
	return nil
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "analysis %s not found", id)
}
