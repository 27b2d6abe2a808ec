package service

import (
	"bytes"
	"context"
	"os"
	"testing"

	"CampusVault/internal/dto"
	"CampusVault/internal/storage"
	"CampusVault/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testExtensions = []string{"pdf", "docx", "pptx", "txt", "jpg", "png"}

func newResourceFixture(t *testing.T) (*ResourceService, *gorm.DB, string) {
	t.Helper()
	db := newTestDB(t)
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir)
	require.NoError(t, err)
	return NewResourceService(db, store, nil, testExtensions), db, dir
}

func seedUser(t *testing.T, db *gorm.DB, email, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		UserName:     username,
		FullName:     "Test User",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func ingest(t *testing.T, svc *ResourceService, userID uint64, name string, content []byte) (*model.Resource, error) {
	t.Helper()
	return svc.Ingest(context.Background(), &IngestInput{
		FileName: name,
		Size:     int64(len(content)),
		Reader:   bytes.NewReader(content),
		Title:    "Lecture Notes",
		Category: "Notes",
		UserID:   userID,
	})
}

func TestIngestStoresOnce(t *testing.T) {
	svc, db, _ := newResourceFixture(t)
	user := seedUser(t, db, "a@x.edu", "a")

	resource, err := ingest(t, svc, user.ID, "notes.pdf", []byte("lecture one"))
	require.NoError(t, err)
	assert.NotZero(t, resource.ID)
	assert.Len(t, resource.FileHash, 64)
	assert.Equal(t, int64(len("lecture one")), resource.FileSize)
}

func TestIngestRejectsDuplicateContent(t *testing.T) {
	svc, db, dir := newResourceFixture(t)
	user := seedUser(t, db, "a@x.edu", "a")

	first, err := ingest(t, svc, user.ID, "notes.pdf", []byte("same bytes"))
	require.NoError(t, err)

	// Same content under a different name is still a duplicate.
	_, err = ingest(t, svc, user.ID, "copy.pdf", []byte("same bytes"))
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, first.ID, cerr.ResourceID)
	assert.Equal(t, first.Title, cerr.ResourceTitle)

	var count int64
	require.NoError(t, db.Model(&model.Resource{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The duplicate's bytes were discarded.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIngestRejectsDisallowedExtensionBeforeWrite(t *testing.T) {
	svc, db, dir := newResourceFixture(t)
	user := seedUser(t, db, "a@x.edu", "a")

	_, err := ingest(t, svc, user.ID, "malware.exe", []byte("nope"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "File type not allowed", verr.Fields["file"])

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "nothing may be written for a rejected extension")
}

func TestIngestExtensionCheckIsCaseInsensitive(t *testing.T) {
	svc, db, _ := newResourceFixture(t)
	user := seedUser(t, db, "a@x.edu", "a")

	_, err := ingest(t, svc, user.ID, "REPORT.PDF", []byte("upper case extension"))
	assert.NoError(t, err)
}

func TestGetIncrementsDownloadCount(t *testing.T) {
	svc, db, _ := newResourceFixture(t)
	user := seedUser(t, db, "a@x.edu", "a")

	created, err := ingest(t, svc, user.ID, "notes.pdf", []byte("counted"))
	require.NoError(t, err)

	first, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.DownloadCount)

	second, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.DownloadCount)

	_, err = svc.Get(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOwnerOnly(t *testing.T) {
	svc, db, _ := newResourceFixture(t)
	owner := seedUser(t, db, "a@x.edu", "a")
	other := seedUser(t, db, "b@x.edu", "b")

	created, err := ingest(t, svc, owner.ID, "notes.pdf", []byte("owned"))
	require.NoError(t, err)

	title := "Renamed Notes"
	_, err = svc.Update(context.Background(), created.ID, other.ID, &dto.UpdateResourceRequest{Title: &title})
	assert.ErrorIs(t, err, ErrUnauthorized)

	var unchanged model.Resource
	require.NoError(t, db.First(&unchanged, created.ID).Error)
	assert.Equal(t, "Lecture Notes", unchanged.Title)

	short := "ab"
	_, err = svc.Update(context.Background(), created.ID, owner.ID, &dto.UpdateResourceRequest{Title: &short})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	updated, err := svc.Update(context.Background(), created.ID, owner.ID, &dto.UpdateResourceRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestDeleteOwnerOnly(t *testing.T) {
	svc, db, dir := newResourceFixture(t)
	owner := seedUser(t, db, "a@x.edu", "a")
	other := seedUser(t, db, "b@x.edu", "b")

	created, err := ingest(t, svc, owner.ID, "notes.pdf", []byte("to delete"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, other.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.Delete(context.Background(), created.ID, owner.ID))

	var count int64
	require.NoError(t, db.Model(&model.Resource{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)

	// Re-uploading the deleted content works again.
	_, err = ingest(t, svc, owner.ID, "notes.pdf", []byte("to delete"))
	assert.NoError(t, err)
}

func TestOpenStored(t *testing.T) {
	svc, db, _ := newResourceFixture(t)
	user := seedUser(t, db, "a@x.edu", "a")

	created, err := ingest(t, svc, user.ID, "notes.pdf", []byte("stream me"))
	require.NoError(t, err)

	reader, fileName, size, err := svc.OpenStored(context.Background(), created.FilePath)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "notes.pdf", fileName)
	assert.Equal(t, int64(len("stream me")), size)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(reader)
	require.NoError(t, err)
	assert.Equal(t, "stream me", buf.String())

	_, _, _, err = svc.OpenStored(context.Background(), "missing_name.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}
