package store

import (
	"testing"

	"github.com/dojo-secrets/dojosecrets/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListSecrets(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	created, err := secrets.Create("42", "my first secret")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	all, err := secrets.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "my first secret", all[0].Content)
	assert.Equal(t, "42", all[0].AuthorID)
	assert.Empty(t, all[0].Comments)
}

func TestCreateSecretTooShort(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	_, err := secrets.Create("42", "hi")

	var validation ValidationErrors
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation, "Comment must include atleast 3 characters!")

	all, err := secrets.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByIDMissing(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	_, err := secrets.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendCommentKeepsOrder(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	created, err := secrets.Create("42", "my first secret")
	require.NoError(t, err)

	_, err = secrets.AppendComment(created.ID, "nice one")
	require.NoError(t, err)

	updated, err := secrets.AppendComment(created.ID, "me too")
	require.NoError(t, err)

	// The returned snapshot is the full row read in the same transaction
	// as the append, comments included.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "my first secret", updated.Content)
	assert.Equal(t, "42", updated.AuthorID)
	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "nice one", updated.Comments[0].Content)
	assert.Equal(t, "me too", updated.Comments[1].Content)
	assert.Equal(t, created.ID, updated.Comments[0].SecretID)
}

func TestAppendCommentTooShortLeavesSequenceUnchanged(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	created, err := secrets.Create("42", "my first secret")
	require.NoError(t, err)

	_, err = secrets.AppendComment(created.ID, "nice one")
	require.NoError(t, err)

	_, err = secrets.AppendComment(created.ID, "hi")

	var validation ValidationErrors
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation, "Comment must include atleast 3 characters!")

	current, err := secrets.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, current.Comments, 1)
	assert.Equal(t, "nice one", current.Comments[0].Content)
}

func TestAppendCommentMissingSecret(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	_, err := secrets.AppendComment(999, "nice one")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	secrets := NewSecretStore(db)

	created, err := secrets.Create("42", "my first secret")
	require.NoError(t, err)

	_, err = secrets.AppendComment(created.ID, "nice one")
	require.NoError(t, err)

	require.NoError(t, secrets.DeleteByID(created.ID))

	_, err = secrets.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("secret_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingSecret(t *testing.T) {
	secrets := NewSecretStore(newTestDB(t))

	err := secrets.DeleteByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
