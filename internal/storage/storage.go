package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"wedding-site/internal/models"
)

// ErrNotFound is returned when no guest record matches an invitation code.
var ErrNotFound = errors.New("guest not found")

// Store is the persistence layer for guest records, keyed by invitation
// code. Exactly one implementation is chosen at startup and used for the
// whole process lifetime.
type Store interface {
	// GetByCode looks up a guest. Codes match case-insensitively.
	GetByCode(ctx context.Context, code string) (*models.Guest, error)
	// Update merge-updates the stored record and returns the result.
	Update(ctx context.Context, code string, upd models.GuestUpdate) (*models.Guest, error)
	Close() error
}

// Options selects and configures the storage engine.
type Options struct {
	// DataDir holds the local guests.json used by the file engine.
	DataDir string
	// CredentialsFile is a service-account key path; when set, the
	// Firestore engine is preferred.
	CredentialsFile string
	ProjectID       string
	Collection      string
}

// Open picks the storage engine once for the process lifetime: Firestore
// when credentials are configured and the connection succeeds, the local
// file otherwise. Requests never fall back across engines.
func Open(ctx context.Context, opts Options, log zerolog.Logger) (Store, error) {
	if opts.CredentialsFile != "" {
		fs, err := NewFirestoreStore(ctx, opts.ProjectID, opts.Collection, opts.CredentialsFile)
		if err == nil {
			log.Info().Str("engine", "firestore").Str("collection", opts.Collection).Msg("guest storage ready")
			return fs, nil
		}
		log.Warn().Err(err).Msg("firestore unavailable, using local file storage")
	}
	path := filepath.Join(opts.DataDir, "guests.json")
	store, err := NewFileStore(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("engine", "file").Str("path", path).Msg("guest storage ready")
	return store, nil
}

// NormalizeCode maps an invitation code to its canonical lookup key.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
