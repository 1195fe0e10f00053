package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/board2go/board2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketDaemon = "daemon"

	KeyLastTemperature = "lastTemperature"
	KeyShutdown        = "shutdown"
)

// TemperatureRecord is the last successfully read temperature.
type TemperatureRecord struct {
	Value float64   `json:"value"`
	Time  time.Time `json:"time"`
}

// ShutdownRecord marks whether the previous run left the board in its safe state.
type ShutdownRecord struct {
	Clean bool      `json:"clean"`
	Time  time.Time `json:"time"`
}

type Persistence interface {
	Init() error

	LoadLastTemperature() (*TemperatureRecord, error)
	SaveLastTemperature(value float64, now time.Time) error

	LoadShutdown() (*ShutdownRecord, error)
	SaveShutdown(clean bool, now time.Time) error

	Delete(key string) error
}

type persistence struct {
	dbPath  string
	timeout time.Duration
}

func NewPersistence(dbPath string) Persistence {
	return &persistence{
		dbPath:  dbPath,
		timeout: 5 * time.Second,
	}
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: p.timeout})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", p.dbPath, err)
	}
	return db, nil
}

func (p persistence) LoadLastTemperature() (*TemperatureRecord, error) {
	var record TemperatureRecord
	if err := p.load(KeyLastTemperature, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (p persistence) SaveLastTemperature(value float64, now time.Time) error {
	return p.save(KeyLastTemperature, TemperatureRecord{Value: value, Time: now})
}

func (p persistence) LoadShutdown() (*ShutdownRecord, error) {
	var record ShutdownRecord
	if err := p.load(KeyShutdown, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (p persistence) SaveShutdown(clean bool, now time.Time) error {
	return p.save(KeyShutdown, ShutdownRecord{Clean: clean, Time: now})
}

func (p persistence) save(key string, value any) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketDaemon))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		return b.Put([]byte(key), data)
	})
}

// load returns os.ErrNotExist if nothing is stored for key. Corrupt entries
// are deleted and reported as missing.
func (p persistence) load(key string, target any) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	corrupt := false
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketDaemon))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(key))
		if v == nil {
			return os.ErrNotExist
		}

		if err := json.Unmarshal(v, target); err != nil {
			ui.Warning("Unable to unmarshal saved data for %s: %v", key, err)
			corrupt = true
			if err := b.Delete([]byte(key)); err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", key, err)
			}
		}
		return nil
	})
	if err == nil && corrupt {
		return os.ErrNotExist
	}
	return err
}

func (p persistence) Delete(key string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketDaemon))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}
