// Package scorestore keeps evaluation scores in a badger database, keyed by the params
// fingerprint and the FEN, so repeated runs over the same positions skip evaluation.
package scorestore

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var ErrLengthMismatch = errors.New("fens and scores differ in length")

type Store struct {
	db *badger.DB
}

// Open opens or creates the store in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open score store %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(fingerprint uint64, fen string) []byte {
	k := make([]byte, 8, 8+len(fen))
	binary.BigEndian.PutUint64(k, fingerprint)
	return append(k, fen...)
}

// Get returns the stored score for fen under the given params fingerprint.
func (s *Store) Get(fingerprint uint64, fen string) (score int, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(fingerprint, fen))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 4 {
				return fmt.Errorf("score for %q: bad value length %d", fen, len(val))
			}
			score = int(int32(binary.LittleEndian.Uint32(val)))
			ok = true
			return nil
		})
	})
	return score, ok, err
}

// PutBatch writes all scores in one batch.
func (s *Store) PutBatch(fingerprint uint64, fens []string, scores []int) error {
	if len(fens) != len(scores) {
		return fmt.Errorf("%w: %d fens, %d scores", ErrLengthMismatch, len(fens), len(scores))
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for i, fen := range fens {
		var val [4]byte
		binary.LittleEndian.PutUint32(val[:], uint32(int32(scores[i])))
		if err := wb.Set(key(fingerprint, fen), val[:]); err != nil {
			return err
		}
	}
	return wb.Flush()
}
