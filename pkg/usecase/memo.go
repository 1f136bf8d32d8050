package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/service/datetime"
	"github.com/secmon-lab/datedmemo/pkg/utils/logging"
)

type MemoUseCase struct {
	repo       interfaces.Repository
	normalizer *datetime.Normalizer
}

func NewMemoUseCase(repo interfaces.Repository, normalizer *datetime.Normalizer) *MemoUseCase {
	return &MemoUseCase{
		repo:       repo,
		normalizer: normalizer,
	}
}

// Create stores a memo dated by dateInput (MM/DD/YYYY, or blank for now)
func (uc *MemoUseCase) Create(ctx context.Context, text, dateInput string) (*model.Memo, error) {
	date, err := uc.normalizer.Normalize(dateInput)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(ErrInvalidDate, err), "failed to normalize memo date",
			goerr.V("input", dateInput))
	}

	created, err := uc.repo.Memo().Create(ctx, model.NewMemo(date, text))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create memo")
	}

	logging.From(ctx).Debug("memo created", "id", created.ID, "date", created.Date)
	return created, nil
}

// List returns every memo with its humanized label, sorted by date ascending. Memos with
// equal dates keep the store's order, which every backend keeps stable between calls. This ordering is what positions passed to
// DeleteByPositions refer to.
func (uc *MemoUseCase) List(ctx context.Context) ([]*model.MemoView, error) {
	memos, err := uc.repo.Memo().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list memos")
	}

	views := make([]*model.MemoView, len(memos))
	for i, m := range memos {
		views[i] = &model.MemoView{
			Memo:  m,
			Label: uc.normalizer.Humanize(m.Date.String()),
		}
	}

	sortMemoViews(views)
	return views, nil
}

// DeleteByPositions deletes the memos at the given positions of a freshly computed List.
// Positions outside the list are ignored. A failed delete does not stop the others;
// all failures are returned together.
//
// The list is recomputed here, so a memo created or deleted between the client's render
// and this call shifts positions and the wrong memo may be deleted.
func (uc *MemoUseCase) DeleteByPositions(ctx context.Context, positions []int) error {
	if len(positions) == 0 {
		return nil
	}

	views, err := uc.List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list memos for deletion")
	}

	selected := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		selected[p] = struct{}{}
	}

	var errs []error
	for i, v := range views {
		if _, ok := selected[i]; !ok {
			continue
		}

		if err := uc.repo.Memo().Delete(ctx, v.ID); err != nil {
			errs = append(errs, goerr.Wrap(errors.Join(ErrDeleteFailed, err), "failed to delete memo",
				goerr.V(PositionKey, i),
				goerr.V(MemoIDKey, v.ID)))
			continue
		}
		logging.From(ctx).Debug("memo deleted", "position", i, "id", v.ID)
	}

	return errors.Join(errs...)
}

// sortMemoViews orders by the instant each date denotes. Dates that do not parse go
// last, ordered by their raw text.
func sortMemoViews(views []*model.MemoView) {
	type key struct {
		t  time.Time
		ok bool
	}
	keys := make(map[*model.MemoView]key, len(views))
	for _, v := range views {
		t, err := v.Date.Time()
		keys[v] = key{t: t, ok: err == nil}
	}

	slices.SortStableFunc(views, func(a, b *model.MemoView) int {
		ka, kb := keys[a], keys[b]
		switch {
		case ka.ok && kb.ok:
			return ka.t.Compare(kb.t)
		case ka.ok:
			return -1
		case kb.ok:
			return 1
		default:
			return strings.Compare(a.Date.String(), b.Date.String())
		}
	})
}
