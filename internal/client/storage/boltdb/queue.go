package boltdb

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// appendRecord добавляет payload в очередь bucket, ключ назначает хранилище
func (s *Storage) appendRecord(bucket []byte, payload json.RawMessage) (uint64, error) {
	if !json.Valid(payload) {
		return 0, fmt.Errorf("payload is not valid JSON")
	}

	var key uint64
	err := s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}

		// Ключ назначается хранилищем и растет монотонно
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate key: %w", err)
		}

		value := make([]byte, len(payload))
		copy(value, payload)
		if err := b.Put(encodeKey(seq), value); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		key = seq
		return nil
	})
	if err != nil {
		return 0, err
	}

	return key, nil
}

// readRecords обходит очередь в порядке ключей в одной read-транзакции
func (s *Storage) readRecords(bucket []byte, fn func(key uint64, payload json.RawMessage)) error {
	return s.view(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}

		return b.ForEach(func(k, v []byte) error {
			if len(k) != 8 {
				return fmt.Errorf("malformed key %x in %s", k, bucket)
			}
			// Память BoltDB валидна только внутри транзакции - копируем
			payload := make([]byte, len(v))
			copy(payload, v)
			fn(decodeKey(k), payload)
			return nil
		})
	})
}

// deleteRecord удаляет запись; отсутствующий ключ не ошибка
func (s *Storage) deleteRecord(bucket []byte, key uint64) error {
	return s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}
		return b.Delete(encodeKey(key))
	})
}

func (s *Storage) countRecords(bucket []byte) (int, error) {
	var count int
	err := s.view(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}
		count = b.Stats().KeyN
		return nil
	})
	return count, err
}
