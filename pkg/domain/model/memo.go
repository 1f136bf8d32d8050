package model

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
)

// MemoID is an opaque identifier assigned by the store when a memo is created
type MemoID string

// NewMemoID generates a new UUID v4 MemoID for stores that do not assign their own
func NewMemoID() MemoID {
	return MemoID(uuid.New().String())
}

// String returns the string representation of MemoID
func (x MemoID) String() string {
	return string(x)
}

// Memo is a dated note. Kind is always types.RecordKindDatedMemo; it lets memos share a
// collection with other document types.
type Memo struct {
	ID   MemoID
	Kind types.RecordKind
	Date types.Timestamp
	Text string
}

// NewMemo builds a memo of the dated-memo kind. The ID is left for the store.
func NewMemo(date types.Timestamp, text string) *Memo {
	return &Memo{
		Kind: types.RecordKindDatedMemo,
		Date: date,
		Text: text,
	}
}

// Validate checks the document shape before it is written to a store
func (x *Memo) Validate() error {
	if x.Kind != types.RecordKindDatedMemo {
		return goerr.New("unexpected memo kind", goerr.V("kind", x.Kind))
	}
	if err := x.Date.Validate(); err != nil {
		return goerr.Wrap(err, "invalid memo date", goerr.V("date", x.Date))
	}
	return nil
}

// Copy returns a shallow copy of the memo
func (x *Memo) Copy() *Memo {
	copied := *x
	return &copied
}

// MemoView is a memo prepared for display, with its date humanized relative to now
type MemoView struct {
	*Memo
	Label string
}
