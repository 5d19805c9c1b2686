// Package boltstore keeps idempotency records in an embedded bolt file for
// single-node deployments that run without Postgres.
package boltstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	bolt "github.com/boltdb/bolt"
)

var (
	recordsBucket = []byte("idempotency_records")
	keysBucket    = []byte("idempotency_keys")
)

type IdempotencyStore struct {
	db *bolt.DB
}

func New(path string) (*IdempotencyStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(recordsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(keysBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &IdempotencyStore{db: db}, nil
}

func (s *IdempotencyStore) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func readRecord(tx *bolt.Tx, id []byte) (*domain.IdempotencyRecord, error) {
	v := tx.Bucket(recordsBucket).Get(id)
	if v == nil {
		return nil, domain.ErrDataNotFound
	}
	var r domain.IdempotencyRecord
	if err := json.Unmarshal(v, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func writeRecord(tx *bolt.Tx, r *domain.IdempotencyRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return tx.Bucket(recordsBucket).Put(itob(r.ID), data)
}

func (s *IdempotencyStore) ReadIdempotencyRecord(_ context.Context,
	key domain.IdempotencyKey) (*domain.IdempotencyRecord, error) {
	var record *domain.IdempotencyRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(keysBucket).Get([]byte(key.String()))
		if id == nil {
			return domain.ErrDataNotFound
		}
		var err error
		record, err = readRecord(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CreateIdempotencyRecord inserts only if the key is free. Bolt serializes
// write transactions, so of two concurrent creates exactly one wins.
func (s *IdempotencyStore) CreateIdempotencyRecord(_ context.Context,
	record *domain.IdempotencyRecord) (*domain.IdempotencyRecord, error) {
	created := record.Clone()

	err := s.db.Update(func(tx *bolt.Tx) error {
		keys := tx.Bucket(keysBucket)
		k := []byte(created.IdempotencyKey.String())
		if keys.Get(k) != nil {
			return domain.ErrConflictingData
		}

		seq, err := tx.Bucket(recordsBucket).NextSequence()
		if err != nil {
			return err
		}
		created.ID = seq

		if err := writeRecord(tx, created); err != nil {
			return err
		}
		return keys.Put(k, itob(seq))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *IdempotencyStore) UpdateIdempotencyRecord(_ context.Context,
	recordID uint64, updateFn port.UpdateIdempotencyFn) (*domain.IdempotencyRecord, error) {
	var record *domain.IdempotencyRecord

	err := s.db.Update(func(tx *bolt.Tx) error {
		current, err := readRecord(tx, itob(recordID))
		if err != nil {
			return err
		}

		updated := current.Clone()
		if err := updateFn(updated); err != nil {
			return err
		}
		updated.ID = current.ID
		updated.IdempotencyKey = current.IdempotencyKey

		if err := writeRecord(tx, updated); err != nil {
			return err
		}
		record = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func deleteRecord(tx *bolt.Tx, r *domain.IdempotencyRecord) error {
	if err := tx.Bucket(keysBucket).Delete([]byte(r.IdempotencyKey.String())); err != nil {
		return err
	}
	return tx.Bucket(recordsBucket).Delete(itob(r.ID))
}

func (s *IdempotencyStore) DeleteIdempotencyRecord(_ context.Context, recordID uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		current, err := readRecord(tx, itob(recordID))
		if err != nil {
			return err
		}
		return deleteRecord(tx, current)
	})
}

func (s *IdempotencyStore) DeleteExpiredIdempotencyRecords(_ context.Context, now time.Time) (int64, error) {
	var deleted int64

	err := s.db.Update(func(tx *bolt.Tx) error {
		expired := make([]*domain.IdempotencyRecord, 0)
		err := tx.Bucket(recordsBucket).ForEach(func(_, v []byte) error {
			var r domain.IdempotencyRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			if r.IsExpired(now) {
				expired = append(expired, &r)
			}
			return nil
		})
		if err != nil {
			return err
		}

		// bolt forbids mutating a bucket while iterating it.
		for _, r := range expired {
			if err := deleteRecord(tx, r); err != nil {
				return err
			}
		}
		deleted = int64(len(expired))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

var _ port.IdempotencyRepository = (*IdempotencyStore)(nil)
