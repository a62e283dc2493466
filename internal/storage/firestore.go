package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wedding-site/internal/models"
)

// FirestoreStore keeps one document per guest in a single collection, with
// the uppercased invitation code as the document ID. A denormalized code
// field on each document backs a fallback query in case an imported record's
// ID and code drifted apart.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore connects to Firestore with a service-account key file
// and seeds the collection if it is empty. The seeding read doubles as the
// connectivity check for engine selection.
func NewFirestoreStore(ctx context.Context, projectID, collection, credentialsFile string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}
	s := &FirestoreStore{client: client, collection: collection}
	if err := s.seed(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to seed firestore: %w", err)
	}
	return s, nil
}

func (s *FirestoreStore) GetByCode(ctx context.Context, code string) (*models.Guest, error) {
	snap, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	var guest models.Guest
	if err := snap.DataTo(&guest); err != nil {
		return nil, fmt.Errorf("failed to decode guest %s: %w", snap.Ref.ID, err)
	}
	return &guest, nil
}

func (s *FirestoreStore) Update(ctx context.Context, code string, upd models.GuestUpdate) (*models.Guest, error) {
	snap, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	var guest models.Guest
	if err := snap.DataTo(&guest); err != nil {
		return nil, fmt.Errorf("failed to decode guest %s: %w", snap.Ref.ID, err)
	}
	upd.Apply(&guest)

	// Write only the changed fields so the merge stays a single
	// per-document operation.
	fields := make(map[string]interface{}, 2)
	if upd.Members != nil {
		fields["members"] = guest.Members
	}
	if upd.RSVP != nil {
		fields["rsvp"] = guest.RSVP
	}
	if len(fields) > 0 {
		if _, err := snap.Ref.Set(ctx, fields, firestore.MergeAll); err != nil {
			return nil, fmt.Errorf("failed to update guest %s: %w", snap.Ref.ID, err)
		}
	}
	return &guest, nil
}

func (s *FirestoreStore) Close() error { return s.client.Close() }

// lookup resolves a code to its document: a point read on the document ID
// first, then one query on the denormalized code field before giving up.
func (s *FirestoreStore) lookup(ctx context.Context, code string) (*firestore.DocumentSnapshot, error) {
	key := NormalizeCode(code)
	snap, err := s.col().Doc(key).Get(ctx)
	if err == nil {
		return snap, nil
	}
	if status.Code(err) != codes.NotFound {
		return nil, fmt.Errorf("failed to look up guest %s: %w", key, err)
	}
	docs, err := s.col().Where("code", "==", key).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query guest %s: %w", key, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

// seed writes the initial guest list in one batch when the collection has no
// documents yet.
func (s *FirestoreStore) seed(ctx context.Context) error {
	docs, err := s.col().Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(docs) > 0 {
		return nil
	}
	batch := s.client.Batch()
	for _, g := range models.SeedGuests() {
		batch.Set(s.col().Doc(NormalizeCode(g.Code)), g)
	}
	_, err = batch.Commit(ctx)
	return err
}

func (s *FirestoreStore) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}
