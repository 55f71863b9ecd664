package db

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/orbisfs/pkg-extractor/settings"
	"go.uber.org/zap"
)

const (
	DB_FILENAME           = "extractions.db"
	DB_INTERNAL_TABLENAME = "internal-metadata"
	DB_EXTRACTIONS_TABLE  = "extractions"
)

// ExtractionRecord is the history entry stored per content id after a
// successful extraction.
type ExtractionRecord struct {
	ContentID  string
	TitleID    string
	PkgSize    int64
	FileCount  int
	OutputPath string
	When       time.Time
}

type ExtractionsDB struct {
	db *bolt.DB
}

func NewExtractionsDB(baseFolder string) (*ExtractionsDB, error) {
	db, err := bolt.Open(filepath.Join(baseFolder, DB_FILENAME), 0600, &bolt.Options{Timeout: 1 * 60})
	if err != nil {
		return nil, err
	}

	//set DB version
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(DB_INTERNAL_TABLENAME))
		if b == nil {
			b, err := tx.CreateBucket([]byte(DB_INTERNAL_TABLENAME))
			if b == nil || err != nil {
				return fmt.Errorf("create bucket: %s", err)
			}
			err = b.Put([]byte("app_version"), []byte(settings.APP_VERSION))
			if err != nil {
				zap.S().Warnf("failed to save app_version - %v", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ExtractionsDB{db: db}, nil
}

func (ed *ExtractionsDB) Close() {
	ed.db.Close()
}

// Record stores the history entry for one extracted package.
func (ed *ExtractionsDB) Record(record ExtractionRecord) error {
	return ed.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(DB_EXTRACTIONS_TABLE))
		if b == nil {
			var err error
			b, err = tx.CreateBucket([]byte(DB_EXTRACTIONS_TABLE))
			if b == nil || err != nil {
				return fmt.Errorf("create bucket: %s", err)
			}
		}
		var bytesBuff bytes.Buffer
		if err := gob.NewEncoder(&bytesBuff).Encode(record); err != nil {
			return err
		}
		return b.Put([]byte(record.ContentID), bytesBuff.Bytes())
	})
}

// Lookup returns the prior extraction of a content id, or nil.
func (ed *ExtractionsDB) Lookup(contentID string) (*ExtractionRecord, error) {
	var record *ExtractionRecord
	err := ed.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(DB_EXTRACTIONS_TABLE))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(contentID))
		if v == nil {
			return nil
		}
		record = &ExtractionRecord{}
		return gob.NewDecoder(bytes.NewReader(v)).Decode(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
