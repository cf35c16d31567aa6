package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.view(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketMeta, bucketPending, bucketAssets, bucketSession} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// На некоторых системах путь с нулевым символом даст ошибку
	invalidPath := string([]byte{0})
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_WritesSchemaVersion(t *testing.T) {
	store := createTestStorage(t)

	err := store.view(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		require.NotNil(t, raw)
		assert.Equal(t, SchemaVersion, decodeKey(raw))
		return nil
	})
	require.NoError(t, err)
}

func TestNew_SchemaVersionMismatch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// Создаем БД с другой версией схемы
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bbolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		return meta.Put(keySchemaVersion, encodeKey(2))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := New(context.Background(), dbPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrSchemaVersion)
	assert.Nil(t, store)
}

func TestReopen_KeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	_, err = store.AddPending(ctx, []byte(`{"sku":"A","qty":3}`))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Закрываем БД
	err = store.Close()
	assert.NoError(t, err)

	// Второй вызов Close не должен падать и должен просто ничего не делать
	err = store.Close()
	assert.NoError(t, err)

	// Операции после закрытия возвращают ErrStorageClosed
	_, err = store.GetAllPending(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestLazy_OpensOnFirstUse(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lazy.db")

	store := Lazy(dbPath)
	defer store.Close()

	// Файл еще не создан
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	count, err := store.CountPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestLazy_ConcurrentOperations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lazy.db")
	store := Lazy(dbPath)
	defer store.Close()

	ctx := context.Background()
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddPending(ctx, []byte(`{"sku":"A","qty":1}`))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	count, err := store.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}

// Агент и команды CLI работают с одним файлом одновременно
func TestStorage_TwoOpenersShareFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shared.db")
	ctx := context.Background()

	agentStore, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer agentStore.Close()

	// Агент уже пользуется базой
	_, err = agentStore.AddPending(ctx, []byte(`{"sku":"A","qty":1}`))
	require.NoError(t, err)

	cliStore := Lazy(dbPath)
	defer cliStore.Close()

	start := time.Now()
	_, err = cliStore.AddPending(ctx, []byte(`{"sku":"B","qty":2}`))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), openTimeout)

	require.NoError(t, cliStore.SaveSession(ctx, &storage.Session{Token: "tok"}))

	records, err := agentStore.GetAllPending(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"sku":"B","qty":2}`, string(records[1].Payload))

	session, err := agentStore.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	err = initBuckets(db)
	assert.NoError(t, err)

	// Повторная инициализация не должна падать
	err = initBuckets(db)
	assert.NoError(t, err)

	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketMeta, bucketPending, bucketAssets, bucketSession} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	assert.NoError(t, err)
}
