package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/dogbrowser/internal/client/storage"
)

var _ storage.TokenStorage = (*Storage)(nil)

// GetToken retrieves the token stored under key
func (s *Storage) GetToken(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrTokenNotFound
		}

		// Get возвращает срез, валидный только внутри транзакции
		value = string(data)
		return nil
	})
	if err != nil {
		return "", mapError(err)
	}

	return value, nil
}

// SetToken stores value under key
func (s *Storage) SetToken(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save token %s: %w", key, err)
		}
		return nil
	})
	return mapError(err)
}

// DeleteToken removes the token stored under key
// Удаление отсутствующего ключа не является ошибкой
func (s *Storage) DeleteToken(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete token %s: %w", key, err)
		}
		return nil
	})
	return mapError(err)
}
