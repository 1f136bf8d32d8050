package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// memoDoc is the Firestore document representation of model.Memo
type memoDoc struct {
	ID   string `firestore:"id"`
	Kind string `firestore:"kind"`
	Date string `firestore:"date"`
	Text string `firestore:"text"`
}

func toMemoDoc(m *model.Memo) *memoDoc {
	return &memoDoc{
		ID:   m.ID.String(),
		Kind: m.Kind.String(),
		Date: m.Date.String(),
		Text: m.Text,
	}
}

func fromMemoDoc(d *memoDoc) *model.Memo {
	return &model.Memo{
		ID:   model.MemoID(d.ID),
		Kind: types.RecordKind(d.Kind),
		Date: types.Timestamp(d.Date).Canonical(),
		Text: d.Text,
	}
}

type memoRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMemoRepository(client *firestore.Client) *memoRepository {
	return &memoRepository{
		client: client,
	}
}

func (r *memoRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + MemoCollection)
}

// listQuery selects memos by kind ordered by date, then by document ID for equal dates.
// It needs the composite index on kind and date.
func (r *memoRepository) listQuery() firestore.Query {
	return r.collection().
		Where("kind", "==", types.RecordKindDatedMemo.String()).
		OrderBy("date", firestore.Asc)
}

func (r *memoRepository) Create(ctx context.Context, memo *model.Memo) (*model.Memo, error) {
	if err := memo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid memo")
	}

	created := memo.Copy()
	created.ID = model.NewMemoID()
	created.Date = created.Date.Canonical()

	docRef := r.collection().Doc(created.ID.String())
	if _, err := docRef.Create(ctx, toMemoDoc(created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create memo", goerr.V("memoID", created.ID))
	}

	return created, nil
}

func (r *memoRepository) List(ctx context.Context) ([]*model.Memo, error) {
	iter := r.listQuery().Documents(ctx)
	defer iter.Stop()

	memos := make([]*model.Memo, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate memos")
		}

		var d memoDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal memo", goerr.V("docID", doc.Ref.ID))
		}
		if d.ID == "" {
			d.ID = doc.Ref.ID
		}

		memos = append(memos, fromMemoDoc(&d))
	}

	return memos, nil
}

func (r *memoRepository) Delete(ctx context.Context, id model.MemoID) error {
	if id == "" {
		return nil
	}
	docRef := r.collection().Doc(id.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to get memo", goerr.V("memoID", id))
	}

	var d memoDoc
	if err := doc.DataTo(&d); err != nil {
		return goerr.Wrap(err, "failed to unmarshal memo", goerr.V("memoID", id))
	}
	if types.RecordKind(d.Kind) != types.RecordKindDatedMemo {
		return nil
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete memo", goerr.V("memoID", id))
	}

	return nil
}
