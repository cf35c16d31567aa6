package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
)

var (
	_ storage.PendingStorage  = (*Storage)(nil)
	_ storage.ShipmentStorage = (*Storage)(nil)
	_ storage.AssetStorage    = (*Storage)(nil)
	_ storage.SessionStorage  = (*Storage)(nil)
)

// SchemaVersion is the only local database layout this client understands
const SchemaVersion uint64 = 1

var (
	// BoltDB bucket names
	bucketMeta    = []byte("meta")
	bucketPending = []byte("pending-adjustments")
	bucketAssets  = []byte("assets")
	bucketSession = []byte("session")

	bucketShipments = []byte("pending-shipments")

	keySchemaVersion = []byte("schema_version")
)

// openTimeout ограничивает ожидание файловой блокировки BoltDB
const openTimeout = 5 * time.Second

// Storage represents BoltDB storage implementation for client.
// The file is opened for a single transaction and closed right after it,
// so the agent and CLI commands can use the same database concurrently.
type Storage struct {
	path        string
	mu          sync.Mutex
	closed      bool
	initialized bool
}

// New creates a new BoltDB storage instance and checks the file immediately.
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	s := Lazy(dbPath)
	if err := s.withDB(func(*bbolt.DB) error { return nil }); err != nil {
		return nil, err
	}
	return s, nil
}

// Lazy creates a storage whose database file is opened on first use
func Lazy(dbPath string) *Storage {
	return &Storage{path: dbPath}
}

// Close marks the storage closed.
// After Close every operation returns ErrStorageClosed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// view выполняет read-only транзакцию
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	return s.withDB(func(db *bbolt.DB) error {
		return db.View(fn)
	})
}

// update выполняет read-write транзакцию
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	return s.withDB(func(db *bbolt.DB) error {
		return db.Update(fn)
	})
}

// withDB открывает файл, выполняет fn и сразу закрывает файл.
// Блокировка файла держится только на время одной операции.
// Вызовы одного Storage выполняются по очереди.
func (s *Storage) withDB(fn func(db *bbolt.DB) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	db, err := bbolt.Open(s.path, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return fmt.Errorf("failed to open boltdb: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close boltdb: %w", cerr)
		}
	}()

	// Инициализируем buckets и проверяем версию схемы при первом открытии
	if !s.initialized {
		if err := initBuckets(db); err != nil {
			return fmt.Errorf("failed to initialize buckets: %w", err)
		}
		s.initialized = true
	}

	return fn(db)
}

// initBuckets создает необходимые buckets если они не существуют
func initBuckets(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketMeta, bucketPending, bucketAssets, bucketSession, bucketShipments} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMeta)
		raw := meta.Get(keySchemaVersion)
		if raw == nil {
			// Новая БД - записываем версию схемы
			return meta.Put(keySchemaVersion, encodeKey(SchemaVersion))
		}

		if len(raw) != 8 {
			return fmt.Errorf("%w: malformed version record", storage.ErrSchemaVersion)
		}
		if version := binary.BigEndian.Uint64(raw); version != SchemaVersion {
			return fmt.Errorf("%w: got %d, want %d", storage.ErrSchemaVersion, version, SchemaVersion)
		}
		return nil
	})
}

// encodeKey кодирует uint64 в big-endian, чтобы порядок байтов совпадал с порядком чисел
func encodeKey(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeKey(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
