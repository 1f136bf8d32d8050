package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MemoCollection is the collection holding dated memos. The name is shared with the
// Mongo backend so both stores lay data out the same way.
const MemoCollection = "dated"

// ErrIndexMissing means the composite index on kind and date has not been created; run
// the migrate command.
var ErrIndexMissing = goerr.New("firestore index for memo list is missing")

type Firestore struct {
	client *firestore.Client
	memo   *memoRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes the memo collection name, e.g. to isolate test runs
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.memo.collectionPrefix = prefix
	}
}

// New creates a Firestore repository and checks that the database is reachable. An
// empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client: client,
		memo:   newMemoRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := f.ping(ctx); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "firestore is not reachable",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	return f, nil
}

// ping runs the memo list query with a limit of one. The client connects lazily, and
// the query fails with FailedPrecondition until the index from `migrate` exists.
func (f *Firestore) ping(ctx context.Context) error {
	iter := f.memo.listQuery().Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		code := status.Code(err)
		if code == codes.FailedPrecondition {
			return goerr.Wrap(ErrIndexMissing, err.Error(), goerr.V("code", code.String()))
		}
		return goerr.Wrap(err, "failed to query memo collection", goerr.V("code", code.String()))
	}
	return nil
}

func (f *Firestore) Memo() interfaces.MemoRepository {
	return f.memo
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
