package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
)

type memoRepository struct {
	mu      sync.RWMutex
	entries map[model.MemoID]*model.Memo
	order   []model.MemoID // insertion order
}

func newMemoRepository() *memoRepository {
	return &memoRepository{
		entries: make(map[model.MemoID]*model.Memo),
	}
}

func (r *memoRepository) Create(ctx context.Context, memo *model.Memo) (*model.Memo, error) {
	if err := memo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid memo")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := memo.Copy()
	created.ID = model.NewMemoID()
	created.Date = created.Date.Canonical()

	r.entries[created.ID] = created
	r.order = append(r.order, created.ID)
	return created.Copy(), nil
}

func (r *memoRepository) List(ctx context.Context) ([]*model.Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Memo, 0, len(r.order))
	for _, id := range r.order {
		m := r.entries[id]
		if m.Kind != types.RecordKindDatedMemo {
			continue
		}
		result = append(result, m.Copy())
	}

	return result, nil
}

func (r *memoRepository) Delete(ctx context.Context, id model.MemoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.entries[id]; ok && m.Kind == types.RecordKindDatedMemo {
		delete(r.entries, id)
		r.order = slices.DeleteFunc(r.order, func(x model.MemoID) bool { return x == id })
	}
	return nil
}
