package entries

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var cols = []string{"id", "user_id", "timestamp_ms", "content", "type", "emotions", "is_silent", "is_pinned", "is_favorite", "audio_id", "created_at", "updated_at"}

func row(id string, ts int64, pinned bool) []driver.Value {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	return []driver.Value{id, "u1", ts, "1,2,3,4,5,6,7,8,9,10,11,12:AAAA", "vent", []byte(`["Sad","Numb"]`), false, pinned, false, "", now, now}
}

func TestCreateOrUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^INSERT\s+INTO\s+entries\s*\(id,\s*user_id,\s*timestamp_ms.*ON\s+CONFLICT\s+\(user_id,\s*id\).*RETURNING\s+id,`
	mock.ExpectQuery(q).
		WithArgs("e1", "u1", int64(1760700000000), "env", "vent", `["Sad","Numb"]`, false, true, "").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row("e1", 1760700000000, false)...))

	in := &models.Entry{UserID: "u1", Entry: diary.Entry{
		ID: "e1", Timestamp: 1760700000000, Content: "env", Type: diary.TypeVent,
		Emotions: []diary.Emotion{diary.Sad, diary.Numb}, IsFavorite: true,
	}}
	got, err := repo.CreateOrUpdate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, diary.TypeVent, got.Type)
	assert.Equal(t, []diary.Emotion{diary.Sad, diary.Numb}, got.Emotions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrUpdate_NilEmotionsStoredAsEmptyArray(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+entries`).
		WithArgs("e1", "u1", int64(1), "", "letter", `[]`, false, false, "").
		WillReturnError(errors.New("db down"))

	_, err := repo.CreateOrUpdate(context.Background(), &models.Entry{UserID: "u1", Entry: diary.Entry{ID: "e1", Timestamp: 1, Type: diary.TypeLetter}})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+id,.*FROM\s+entries\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+timestamp_ms\s*>=\s*\$2\s+ORDER\s+BY\s+timestamp_ms\s+DESC$`
	mock.ExpectQuery(q).
		WithArgs("u1", int64(0)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(row("new", 300, false)...).
			AddRow(row("old", 100, true)...))

	got, err := repo.ListByUser(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.True(t, got[1].IsPinned)
}

func TestListByUser_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+entries`).WithArgs("u1", int64(5)).WillReturnError(errors.New("boom"))
	_, err := repo.ListByUser(context.Background(), "u1", 5)
	assert.ErrorContains(t, err, "db error")

	bad := row("x", 1, false)
	bad[5] = []byte(`not json`)
	mock.ExpectQuery(`FROM\s+entries`).WithArgs("u1", int64(0)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(bad...))
	_, err = repo.ListByUser(context.Background(), "u1", 0)
	assert.ErrorContains(t, err, "decode emotions")
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `FROM\s+entries\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2$`
	mock.ExpectQuery(q).WithArgs("u1", "e1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row("e1", 1, false)...))
	got, err := repo.GetByID(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	mock.ExpectQuery(q).WithArgs("u1", "nope").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateFlags(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^UPDATE\s+entries\s+SET\s+is_favorite\s*=\s*COALESCE\(\$3,\s*is_favorite\),\s*audio_id\s*=\s*COALESCE\(\$4,\s*audio_id\)`
	fav := true
	mock.ExpectQuery(q).WithArgs("u1", "e1", true, nil).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row("e1", 1, false)...))

	_, err := repo.UpdateFlags(context.Background(), "u1", "e1", models.EntryFlags{IsFavorite: &fav})
	require.NoError(t, err)

	audio := "a-1"
	mock.ExpectQuery(q).WithArgs("u1", "gone", nil, "a-1").WillReturnError(sql.ErrNoRows)
	_, err = repo.UpdateFlags(context.Background(), "u1", "gone", models.EntryFlags{AudioID: &audio})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPinning(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^UPDATE\s+entries\s+SET\s+is_pinned\s*=\s*false.*WHERE\s+user_id\s*=\s*\$1\s+AND\s+is_pinned$`).
		WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UnpinAll(context.Background(), "u1"))

	set := `^UPDATE\s+entries\s+SET\s+is_pinned\s*=\s*\$3`
	mock.ExpectExec(set).WithArgs("u1", "e1", true).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetPinned(context.Background(), "u1", "e1", true))

	mock.ExpectExec(set).WithArgs("u1", "nope", true).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetPinned(context.Background(), "u1", "nope", true), common.ErrorNotFound)

	mock.ExpectExec(`^UPDATE\s+entries\s+SET\s+is_pinned\s*=\s*false`).
		WithArgs("u1").WillReturnError(errors.New("boom"))
	assert.ErrorContains(t, repo.UnpinAll(context.Background(), "u1"), "db error")
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `^DELETE\s+FROM\s+entries\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2\s+RETURNING\s+audio_id$`
	mock.ExpectQuery(q).WithArgs("u1", "e1").
		WillReturnRows(sqlmock.NewRows([]string{"audio_id"}).AddRow("a-9"))
	audio, err := repo.Delete(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, "a-9", audio)

	mock.ExpectQuery(q).WithArgs("u1", "e2").WillReturnError(sql.ErrNoRows)
	_, err = repo.Delete(context.Background(), "u1", "e2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
