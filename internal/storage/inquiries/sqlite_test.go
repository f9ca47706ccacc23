package inquiries

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/campus-suite/campusctl/internal/common"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:inquiries_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS inquiries (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			status TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		DELETE FROM inquiries;
	`)
	require.NoError(t, err)
	return NewSQLiteRepository(db)
}

func TestAdd_Defaults(t *testing.T) {
	repo := setupRepo(t)

	inq, err := repo.Add(context.Background(), KindAdmission, []byte(`{"nombre":"Ana"}`))
	require.NoError(t, err)
	require.NoError(t, uuid.Validate(inq.ID))
	require.Equal(t, KindAdmission, inq.Kind)
	require.Equal(t, StatusPending, inq.Status)
	require.False(t, inq.CreatedAt.IsZero())
}

func TestList_FiltersByKind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, KindAdmission, []byte(`{"nombre":"Ana"}`))
	require.NoError(t, err)
	_, err = repo.Add(ctx, KindInformation, []byte(`{"nombre":"Beto"}`))
	require.NoError(t, err)

	admissions, err := repo.List(ctx, KindAdmission)
	require.NoError(t, err)
	require.Len(t, admissions, 1)
	require.JSONEq(t, `{"nombre":"Ana"}`, string(admissions[0].Payload))

	infos, err := repo.List(ctx, KindInformation)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, KindInformation, infos[0].Kind)
}

func TestUpdateStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	inq, err := repo.Add(ctx, KindAdmission, []byte(`{}`))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, inq.ID, StatusAccepted))

	list, err := repo.List(ctx, KindAdmission)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, StatusAccepted, list[0].Status)
}

func TestUpdateStatus_MissingID(t *testing.T) {
	repo := setupRepo(t)
	err := repo.UpdateStatus(context.Background(), uuid.NewString(), StatusContacted)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	inq, err := repo.Add(ctx, KindInformation, []byte(`{}`))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, inq.ID))

	list, err := repo.List(ctx, KindInformation)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDelete_MissingID(t *testing.T) {
	repo := setupRepo(t)
	err := repo.Delete(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, common.ErrorNotFound)
}
