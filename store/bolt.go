// Package store connects to the data store and manages the check-in
// record collection
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	recordBucket = "records"
	recordSetKey = "records"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient opens (or creates) the database at the given path and
// prepares the record bucket.
func NewClient(dbFilePath string) (*Client, error) {
	var fileMode fs.FileMode = 0o600

	if err := os.MkdirAll(filepath.Dir(dbFilePath), 0o755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		dbFilePath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyOpen
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

func (c *Client) LoadRecords() ([]byte, error) {
	var data []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(recordBucket)).Get([]byte(recordSetKey))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (c *Client) SaveRecords(data []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordBucket)).Put([]byte(recordSetKey), data)
	})
}
