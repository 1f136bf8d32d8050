package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
	"github.com/secmon-lab/datedmemo/pkg/domain/model"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
	"github.com/secmon-lab/datedmemo/pkg/repository/firestore"
	"github.com/secmon-lab/datedmemo/pkg/repository/memory"
	"github.com/secmon-lab/datedmemo/pkg/repository/mongo"
)

func findMemo(memos []*model.Memo, id model.MemoID) *model.Memo {
	for _, m := range memos {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func runMemoRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns an ID and keeps the document shape", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Memo().Create(ctx, model.NewMemo("1995-03-23T00:00:00-08:00", "These are some words."))
		gt.NoError(t, err).Required()

		gt.String(t, created.ID.String()).NotEqual("")
		gt.Value(t, created.Kind).Equal(types.RecordKindDatedMemo)
		gt.Value(t, created.Date).Equal(types.Timestamp("1995-03-23T00:00:00-08:00"))
		gt.Value(t, created.Text).Equal("These are some words.")
	})

	t.Run("Create assigns distinct IDs to identical content", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m1, err := repo.Memo().Create(ctx, model.NewMemo("2026-10-15T00:00:00+09:00", "same"))
		gt.NoError(t, err).Required()
		m2, err := repo.Memo().Create(ctx, model.NewMemo("2026-10-15T00:00:00+09:00", "same"))
		gt.NoError(t, err).Required()

		gt.Value(t, m1.ID).NotEqual(m2.ID)
	})

	t.Run("Create rejects an unparseable date", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Memo().Create(ctx, model.NewMemo("tomorrow-ish", "bad"))
		gt.Error(t, err)
	})

	t.Run("Create does not modify the input memo", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		input := model.NewMemo("2026-10-15T00:00:00+09:00", "input")
		_, err := repo.Memo().Create(ctx, input)
		gt.NoError(t, err).Required()
		gt.Value(t, input.ID).Equal(model.MemoID(""))
	})

	t.Run("List increases by exactly one after Create", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		before, err := repo.Memo().List(ctx)
		gt.NoError(t, err).Required()

		created, err := repo.Memo().Create(ctx, model.NewMemo("2026-10-15T00:00:00+09:00", fmt.Sprintf("memo %d", time.Now().UnixNano())))
		gt.NoError(t, err).Required()

		after, err := repo.Memo().List(ctx)
		gt.NoError(t, err).Required()

		gt.Array(t, after).Length(len(before) + 1)
		found := findMemo(after, created.ID)
		gt.Value(t, found).NotNil().Required()
		gt.Value(t, found.Text).Equal(created.Text)
		gt.Value(t, found.Date).Equal(created.Date)
	})

	t.Run("Delete restores the previous count", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		before, err := repo.Memo().List(ctx)
		gt.NoError(t, err).Required()

		created, err := repo.Memo().Create(ctx, model.NewMemo("2026-10-16T00:00:00+09:00", "temporary"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Memo().Delete(ctx, created.ID)).Required()

		after, err := repo.Memo().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, after).Length(len(before))
		gt.Value(t, findMemo(after, created.ID)).Nil()
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Memo().Create(ctx, model.NewMemo("2026-10-16T00:00:00+09:00", "twice"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Memo().Delete(ctx, created.ID)).Required()
		gt.NoError(t, repo.Memo().Delete(ctx, created.ID)).Required()
	})

	t.Run("Delete of an unknown ID is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		before, err := repo.Memo().List(ctx)
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Memo().Delete(ctx, "non-existent-id")).Required()

		after, err := repo.Memo().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, after).Length(len(before))
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d_", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newMongoRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URL")
	if uri == "" {
		t.Skip("TEST_MONGO_URL not set")
	}

	ctx := context.Background()
	repo, err := mongo.New(ctx, uri, fmt.Sprintf("test_%d", time.Now().UnixNano()))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestMemoryMemoRepository(t *testing.T) {
	runMemoRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreMemoRepository(t *testing.T) {
	runMemoRepositoryTest(t, newFirestoreRepository)
}

func TestMongoMemoRepository(t *testing.T) {
	runMemoRepositoryTest(t, newMongoRepository)
}
