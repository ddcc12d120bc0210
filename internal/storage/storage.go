package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesscore/internal/analysis"
)

// Keys are a one-byte namespace followed by the big-endian position hash.
const reportPrefix byte = 'r'

// Storage wraps BadgerDB as a report cache keyed by Zobrist hash. It
// implements analysis.Cache.
type Storage struct {
	db *badger.DB
}

var _ analysis.Cache = (*Storage)(nil)

// Open opens (creating if needed) a cache in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenDefault opens the cache in DefaultDir.
func OpenDefault() (*Storage, error) {
	dbDir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// OpenInMemory opens a cache that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open report cache: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func reportKey(hash uint64) []byte {
	key := make([]byte, 9)
	key[0] = reportPrefix
	binary.BigEndian.PutUint64(key[1:], hash)
	return key
}

// Put stores a report under its hash, replacing any earlier one.
func (s *Storage) Put(r *analysis.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reportKey(r.Hash), data)
	})
}

// Get loads the report stored for hash. A missing key is a miss, not an error.
func (s *Storage) Get(hash uint64) (*analysis.Report, bool, error) {
	var r *analysis.Report

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(reportKey(hash))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			r = new(analysis.Report)
			return json.Unmarshal(val, r)
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("load report %016x: %w", hash, err)
	}

	return r, r != nil, nil
}

// Delete removes the report for hash, if any.
func (s *Storage) Delete(hash uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(reportKey(hash))
	})
}

// Count returns how many reports are stored.
func (s *Storage) Count() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte{reportPrefix}

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
