package memory

import (
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
)

// Memory is the in-memory repository for development and tests
type Memory struct {
	memo *memoRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		memo: newMemoRepository(),
	}
}

func (m *Memory) Memo() interfaces.MemoRepository {
	return m.memo
}

func (m *Memory) Close() error {
	return nil
}
