package storage

import (
	"bytes"
	"encoding/gob"
	stderrors "errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/apptremind/internal/errors"
	"github.com/manav03panchal/apptremind/internal/model"
)

// Records are gob-encoded: strings round-trip byte for byte, including input
// that is not valid UTF-8.

// translate maps Badger errors onto the store's own errors.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, badger.ErrDBClosed):
		return errors.NewSystemErrorWithOp(op, "appointment store unavailable", errors.ErrStoreClosed)
	default:
		return errors.NewSystemErrorWithOp(op, "appointment store failure", err)
	}
}

func encode(v model.Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v model.Model) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Set stores a model in the database.
func (d *DB) Set(v model.Model) error {
	data, err := encode(v)
	if err != nil {
		return errors.NewSystemErrorWithOp("set", "cannot encode record", err)
	}

	err = d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(v.GetKey()), data)
	})
	return translate("set", err)
}

// CountByPrefix counts the keys with the given prefix.
func (d *DB) CountByPrefix(prefix string) (int, error) {
	count := 0
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			count++
		}
		return nil
	})
	return count, translate("count", err)
}

// GetAllByPrefix retrieves all values with the given prefix in key order.
func GetAllByPrefix[T model.Model](d *DB, prefix string, newFunc func() T) ([]T, error) {
	var results []T
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				v := newFunc()
				if err := decode(val, v); err != nil {
					return err
				}
				v.SetKey(string(item.KeyCopy(nil)))
				results = append(results, v)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return results, translate("list", err)
}
