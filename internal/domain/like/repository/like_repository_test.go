package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"social_backend/internal/domain/like/model"
	"social_backend/internal/pkg/bizerr"
	"social_backend/internal/pkg/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDuplicate(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &model.Like{UserID: 1, PostID: 10})
	assert.True(t, bizerr.IsUniqueViolation(err))
}

func TestDelete(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM likes WHERE user_id = $1 AND post_id = $2 RETURNING *")).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "post_id", "created_at"}).
			AddRow(4, 1, 10, time.Now()))

	like, err := repo.Delete(context.Background(), 1, 10)

	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, uint(4), like.ID)
}

func TestPostActive(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "posts" WHERE id = $1 AND is_deleted = FALSE`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	active, err := repo.PostActive(context.Background(), 10)

	require.NoError(t, err)
	assert.True(t, active)
}

func TestCountIgnoresPostDeletion(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCountByPostIDs(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT post_id, COUNT(*) AS count FROM "likes" WHERE post_id IN ($1,$2,$3) GROUP BY`)).
		WithArgs(10, 11, 12).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "count"}).
			AddRow(10, 2).
			AddRow(12, 5))

	counts, err := repo.CountByPostIDs(context.Background(), []uint{10, 11, 12})

	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{10: 2, 12: 5}, counts)
}

func TestBatchWithNoIDsSkipsQuery(t *testing.T) {
	db, _ := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	counts, err := repo.CountByPostIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)

	liked, err := repo.LikedPostIDs(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestLikedPostIDs(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "post_id" FROM "likes" WHERE user_id = $1 AND post_id IN ($2,$3)`)).
		WithArgs(1, 10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(11))

	liked, err := repo.LikedPostIDs(context.Background(), 1, []uint{10, 11})

	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{11: true}, liked)
}

func TestListPostLikers(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewLikeRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE l.post_id = $1 AND u.is_deleted = FALSE")).
		WithArgs(10, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "liked_at"}).
			AddRow(2, "bob", "Bob B", now))

	likers, err := repo.ListPostLikers(context.Background(), 10, 20, 0)

	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, "bob", likers[0].Username)
}
