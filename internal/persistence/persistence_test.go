package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	bolt "go.etcd.io/bbolt"
)

func createPersistence(t *testing.T) (Persistence, string) {
	dbPath := filepath.Join(t.TempDir(), "nested", "board2go.db")
	p := NewPersistence(dbPath)
	assert.NoError(t, p.Init())
	return p, dbPath
}

func TestPersistence_InitCreatesDirectory(t *testing.T) {
	// GIVEN
	_, dbPath := createPersistence(t)

	// THEN
	info, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPersistence_LastTemperatureMissing(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)

	// WHEN
	record, err := p.LoadLastTemperature()

	// THEN
	assert.Nil(t, record)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_SaveAndLoadLastTemperature(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// WHEN
	err := p.SaveLastTemperature(48.5, now)
	assert.NoError(t, err)
	record, err := p.LoadLastTemperature()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 48.5, record.Value)
	assert.True(t, now.Equal(record.Time))
}

func TestPersistence_Shutdown(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	now := time.Now()

	// WHEN
	assert.NoError(t, p.SaveShutdown(false, now))
	assert.NoError(t, p.SaveShutdown(true, now))
	record, err := p.LoadShutdown()

	// THEN
	assert.NoError(t, err)
	assert.True(t, record.Clean)
}

func TestPersistence_Delete(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	assert.NoError(t, p.SaveLastTemperature(50, time.Now()))

	// WHEN
	err := p.Delete(KeyLastTemperature)

	// THEN
	assert.NoError(t, err)
	_, err = p.LoadLastTemperature()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_CorruptEntryIsDropped(t *testing.T) {
	// GIVEN
	p, dbPath := createPersistence(t)
	db, err := bolt.Open(dbPath, 0600, nil)
	assert.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketDaemon))
		if err != nil {
			return err
		}
		return b.Put([]byte(KeyShutdown), []byte("{not json"))
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	// WHEN
	record, err := p.LoadShutdown()

	// THEN
	assert.Nil(t, record)
	assert.ErrorIs(t, err, os.ErrNotExist)

	db, err = bolt.Open(dbPath, 0600, nil)
	assert.NoError(t, err)
	defer db.Close()
	_ = db.View(func(tx *bolt.Tx) error {
		assert.Nil(t, tx.Bucket([]byte(BucketDaemon)).Get([]byte(KeyShutdown)))
		return nil
	})
}
