// Package store persists the workout collection in a BoltDB file
package store

import (
	"context"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"
)

const (
	workoutBucket = "workouts"
	collectionKey = "collection"
)

var (
	// ErrNoData is returned by Load when nothing has been saved yet.
	ErrNoData = errors.New("no saved workouts")

	errMaptyRunning = errors.New(
		"is mapty already running? Only one instance can be active at a time",
	)
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Save overwrites the stored collection with data.
func (c *Client) Save(_ context.Context, data []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(workoutBucket))
		if err != nil {
			return err
		}

		return b.Put([]byte(collectionKey), data)
	})
}

// Load returns the stored collection or ErrNoData.
func (c *Client) Load(_ context.Context) ([]byte, error) {
	var data []byte

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(workoutBucket))
		if b == nil {
			return ErrNoData
		}

		v := b.Get([]byte(collectionKey))
		if v == nil {
			return ErrNoData
		}

		// v is only valid for the lifetime of the transaction
		data = make([]byte, len(v))
		copy(data, v)

		return nil
	})

	return data, err
}

// Clear removes the stored collection.
func (c *Client) Clear(_ context.Context) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(workoutBucket))
		if b == nil {
			return nil
		}

		return b.Delete([]byte(collectionKey))
	})
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrDatabaseOpen) ||
			errors.Is(err, berrors.ErrTimeout) {
			return nil, errMaptyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(workoutBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
