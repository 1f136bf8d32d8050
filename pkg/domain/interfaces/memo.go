package interfaces

import (
	"context"

	"github.com/secmon-lab/datedmemo/pkg/domain/model"
)

// MemoRepository defines the interface for Memo data persistence
type MemoRepository interface {
	// Create validates the memo, assigns a fresh ID and stores it
	Create(ctx context.Context, memo *model.Memo) (*model.Memo, error)

	// List returns every memo of the dated-memo kind. Order is unspecified.
	List(ctx context.Context) ([]*model.Memo, error)

	// Delete removes the memo with the given ID. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id model.MemoID) error
}
