package mongo

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoDoc is the MongoDB document representation of model.Memo. The server assigns _id.
type memoDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Kind string             `bson:"kind"`
	Date string             `bson:"date"`
	Text string             `bson:"text"`
}

func toMemoDoc(m *model.Memo) *memoDoc {
	return &memoDoc{
		Kind: m.Kind.String(),
		Date: m.Date.String(),
		Text: m.Text,
	}
}

func fromMemoDoc(d *memoDoc) *model.Memo {
	return &model.Memo{
		ID:   model.MemoID(d.ID.Hex()),
		Kind: types.RecordKind(d.Kind),
		Date: types.Timestamp(d.Date).Canonical(),
		Text: d.Text,
	}
}

type memoRepository struct {
	collection *mongo.Collection
}

func newMemoRepository(collection *mongo.Collection) *memoRepository {
	return &memoRepository{
		collection: collection,
	}
}

func (r *memoRepository) Create(ctx context.Context, memo *model.Memo) (*model.Memo, error) {
	if err := memo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid memo")
	}

	created := memo.Copy()
	created.Date = created.Date.Canonical()

	result, err := r.collection.InsertOne(ctx, toMemoDoc(created))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert memo")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, goerr.New("unexpected inserted ID type", goerr.V("insertedID", result.InsertedID))
	}
	created.ID = model.MemoID(oid.Hex())

	return created, nil
}

func (r *memoRepository) List(ctx context.Context) ([]*model.Memo, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"kind": types.RecordKindDatedMemo.String()})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find memos")
	}

	var docs []memoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode memos")
	}

	memos := make([]*model.Memo, 0, len(docs))
	for i := range docs {
		memos = append(memos, fromMemoDoc(&docs[i]))
	}
	return memos, nil
}

func (r *memoRepository) Delete(ctx context.Context, id model.MemoID) error {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		// not an ID this store could have assigned, so nothing can match
		return nil
	}

	filter := bson.M{
		"_id":  oid,
		"kind": types.RecordKindDatedMemo.String(),
	}
	if _, err := r.collection.DeleteOne(ctx, filter); err != nil {
		return goerr.Wrap(err, "failed to delete memo", goerr.V("memoID", id))
	}
	return nil
}
