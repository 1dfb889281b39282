package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"social_backend/internal/domain/post/model"
	"social_backend/internal/pkg/bizerr"
	"social_backend/internal/pkg/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postColumns = []string{"id", "user_id", "content", "media_url", "comments_enabled", "created_at", "updated_at", "username", "full_name"}

func TestFeedSingleQuery(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT following_id FROM follows WHERE follower_id = $2")).
		WithArgs(1, 1, 10, 0).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(9, 2, "from bob", nil, true, now, now, "bob", "Bob B").
			AddRow(8, 1, "mine", "https://cdn.example.com/a.png", false, now.Add(-time.Minute), now, "alice", "Alice A"))

	posts, err := repo.Feed(context.Background(), 1, 10, 0)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(9), posts[0].ID)
	assert.Nil(t, posts[0].MediaURL)
	require.NotNil(t, posts[1].MediaURL)
	assert.Equal(t, "alice", posts[1].Username)
	assert.False(t, posts[1].CommentsEnabled)
}

func TestGetWithAuthorNotFound(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1 AND p.is_deleted = FALSE")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.GetWithAuthor(context.Background(), 4)

	assert.True(t, bizerr.IsRecordNotFound(err))
}

func TestSoftDeleteOwned(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "is_deleted"=$1,"updated_at"=$2 WHERE id = $3 AND user_id = $4 AND is_deleted = FALSE`)).
		WithArgs(true, sqlmock.AnyArg(), 10, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.SoftDeleteOwned(context.Background(), 10, 2)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreate(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	post := &model.Post{UserID: 1, Content: "hi", CommentsEnabled: true}
	require.NoError(t, repo.Create(context.Background(), post))
	assert.Equal(t, uint(21), post.ID)
}
