package mongo

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MemoCollection is the collection holding dated memos
const MemoCollection = "dated"

const disconnectTimeout = 10 * time.Second

type Mongo struct {
	client *mongo.Client
	memo   *memoRepository
}

var _ interfaces.Repository = &Mongo{}

// New connects to the MongoDB deployment at uri and pings it. Authentication failures
// surface here, so a returned error means the store cannot serve.
func New(ctx context.Context, uri, database string) (*Mongo, error) {
	if database == "" {
		return nil, goerr.New("mongo database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create mongo client", goerr.V("database", database))
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, goerr.Wrap(err, "mongo is not reachable", goerr.V("database", database))
	}

	return &Mongo{
		client: client,
		memo:   newMemoRepository(client.Database(database).Collection(MemoCollection)),
	}, nil
}

func (m *Mongo) Memo() interfaces.MemoRepository {
	return m.memo
}

func (m *Mongo) Close() error {
	if m.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := m.client.Disconnect(ctx); err != nil {
		return goerr.Wrap(err, "failed to disconnect mongo client")
	}
	return nil
}
