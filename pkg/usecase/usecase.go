package usecase

import (
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
	"github.com/secmon-lab/datedmemo/pkg/service/datetime"
)

type UseCases struct {
	normalizer *datetime.Normalizer
	Memo       *MemoUseCase
}

type Option func(*UseCases)

func WithNormalizer(normalizer *datetime.Normalizer) Option {
	return func(uc *UseCases) {
		uc.normalizer = normalizer
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.normalizer == nil {
		uc.normalizer = datetime.New()
	}

	uc.Memo = NewMemoUseCase(repo, uc.normalizer)

	return uc
}
