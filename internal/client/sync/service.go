package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	gosync "sync"

	"golang.org/x/sync/errgroup"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/models"
)

// SyncTag is the event tag that triggers a drain of the offline queue
const SyncTag = "sync-adjustments"

// DefaultConcurrency limits parallel submissions during one drain
const DefaultConcurrency = 8

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// HandleEvent drains the queue when tag is SyncTag and ignores other tags
	HandleEvent(ctx context.Context, tag string) error

	// Drain submits every queued adjustment once
	Drain(ctx context.Context) (*DrainResult, error)

	// PendingCount возвращает количество записей, ожидающих синхронизации
	PendingCount(ctx context.Context) (int, error)
}

//go:generate moq -out api_mock.go . APIClient

// APIClient is the part of the HTTP client used by the drain
type APIClient interface {
	UpdateStock(ctx context.Context, token string, payload json.RawMessage) (*httpClient.UpdateResult, error)
}

//go:generate moq -out shipment_api_mock.go . ShipmentAPI

// ShipmentAPI is the part of the HTTP client used to deliver queued shipments
type ShipmentAPI interface {
	LaunchShipment(ctx context.Context, token string, kind models.ShipmentKind, payload json.RawMessage) (*httpClient.ShipmentResult, error)
}

// TokenSource returns the bearer token for submissions, "" when logged out
type TokenSource func(ctx context.Context) (string, error)

// DrainResult contains drain operation results
type DrainResult struct {
	Total        int // записей в очереди на момент чтения
	Delivered    int // получен любой HTTP-ответ, запись удалена
	Rejected     int // из них ответ не 2xx
	Unauthorized int // из них 401: сессия отсутствует или истекла
	Failed       int // сетевая ошибка или ошибка удаления, запись осталась

	ShipmentsTotal     int // отгрузок в очереди
	ShipmentsDelivered int // отгрузок доставлено и удалено
	ShipmentsRejected  int // из них отклонено сервером или нечитаемо
	ShipmentsFailed    int // отгрузок осталось в очереди
}

// Remaining returns how many records are still queued after the drain
func (r *DrainResult) Remaining() int {
	return r.Failed + r.ShipmentsFailed
}

type service struct {
	apiClient   APIClient
	shipmentAPI ShipmentAPI
	pending     storage.PendingStorage
	shipments   storage.ShipmentStorage
	notifier    Notifier
	token       TokenSource
	logger      *slog.Logger
	concurrency int
}

// Option configures the sync service
type Option func(*service)

// WithConcurrency sets the maximum number of parallel submissions
func WithConcurrency(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithTokenSource sets where the bearer token comes from
func WithTokenSource(ts TokenSource) Option {
	return func(s *service) {
		s.token = ts
	}
}

// WithShipments enables delivery of the offline shipment queue
func WithShipments(store storage.ShipmentStorage, api ShipmentAPI) Option {
	return func(s *service) {
		s.shipments = store
		s.shipmentAPI = api
	}
}

// NewService creates a new sync service
func NewService(apiClient APIClient, pending storage.PendingStorage, notifier Notifier, logger *slog.Logger, opts ...Option) Service {
	s := &service{
		apiClient:   apiClient,
		pending:     pending,
		notifier:    notifier,
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleEvent runs a drain for SyncTag. Events with other tags are ignored.
// The returned error is non-nil only when the queue could not be read.
func (s *service) HandleEvent(ctx context.Context, tag string) error {
	if tag != SyncTag {
		s.logger.Debug("Ignoring sync event", "tag", tag)
		return nil
	}

	_, err := s.Drain(ctx)
	return err
}

// Drain submits every queued adjustment and shipment concurrently.
// Any HTTP response removes the record from its queue, including non-2xx
// ones; a transport failure keeps it for the next drain. A single
// notification is sent when at least one adjustment was delivered.
// A shipment queue read error is returned together with the result.
func (s *service) Drain(ctx context.Context) (*DrainResult, error) {
	records, err := s.pending.GetAllPending(ctx)
	if err != nil {
		s.logger.Error("Failed to read pending adjustments", "error", err)
		return nil, fmt.Errorf("failed to read pending adjustments: %w", err)
	}

	var (
		shipments []models.PendingShipment
		shipErr   error
	)
	if s.shipments != nil {
		shipments, err = s.shipments.GetAllPendingShipments(ctx)
		if err != nil {
			s.logger.Error("Failed to read pending shipments", "error", err)
			shipErr = fmt.Errorf("failed to read pending shipments: %w", err)
		}
	}

	result := &DrainResult{Total: len(records), ShipmentsTotal: len(shipments)}
	if len(records) == 0 && len(shipments) == 0 {
		s.logger.Debug("No pending adjustments to sync")
		return result, shipErr
	}

	s.logger.Info("Starting synchronization", "pending", len(records), "shipments", len(shipments))

	token := s.bearer(ctx)

	var mu gosync.Mutex
	// errgroup без WithContext: сбой одной записи не отменяет остальные
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, record := range records {
		g.Go(func() error {
			outcome := s.submit(ctx, token, record)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeDelivered:
				result.Delivered++
			case outcomeRejected:
				result.Delivered++
				result.Rejected++
			case outcomeUnauthorized:
				result.Delivered++
				result.Rejected++
				result.Unauthorized++
			case outcomeFailed:
				result.Failed++
			}
			return nil
		})
	}

	for _, record := range shipments {
		g.Go(func() error {
			outcome := s.submitShipment(ctx, token, record)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeDelivered:
				result.ShipmentsDelivered++
			case outcomeRejected, outcomeUnauthorized:
				result.ShipmentsDelivered++
				result.ShipmentsRejected++
			case outcomeFailed:
				result.ShipmentsFailed++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Synchronization completed",
		"total", result.Total,
		"delivered", result.Delivered,
		"rejected", result.Rejected,
		"unauthorized", result.Unauthorized,
		"failed", result.Failed,
		"shipments_delivered", result.ShipmentsDelivered,
		"shipments_failed", result.ShipmentsFailed,
	)

	if result.Delivered > 0 {
		s.notify(ctx, result.Delivered)
	}

	return result, shipErr
}

// PendingCount returns the number of queued adjustments and shipments
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.pending.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending adjustments: %w", err)
	}
	if s.shipments != nil {
		n, err := s.shipments.CountPendingShipments(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count pending shipments: %w", err)
		}
		count += n
	}
	return count, nil
}

type outcome int

const (
	outcomeDelivered outcome = iota
	outcomeRejected
	outcomeUnauthorized
	outcomeFailed
)

// submit отправляет одну запись и удаляет её при любом HTTP-ответе
func (s *service) submit(ctx context.Context, token string, record models.PendingAdjustment) outcome {
	res, err := s.apiClient.UpdateStock(ctx, token, record.Payload)
	if err != nil {
		s.logger.Warn("Failed to submit adjustment, keeping it queued", "key", record.Key, "error", err)
		return outcomeFailed
	}

	result := s.classify("adjustment", record.Key, res.StatusCode, res.Message)

	if err := s.pending.DeletePending(ctx, record.Key); err != nil {
		s.logger.Error("Failed to delete delivered adjustment", "key", record.Key, "error", err)
		return outcomeFailed
	}

	s.logger.Debug("Adjustment synchronized", "key", record.Key, "status", res.StatusCode)
	return result
}

// submitShipment отправляет одну отгрузку по тем же правилам, что и корректировки.
// Нечитаемая запись никогда не будет доставлена и удаляется сразу.
func (s *service) submitShipment(ctx context.Context, token string, record models.PendingShipment) outcome {
	var result outcome

	shipment, err := models.DecodeShipment(record.Payload)
	if err == nil {
		if _, ok := models.ParseShipmentKind(string(shipment.Kind)); !ok {
			err = fmt.Errorf("unknown shipment type %q", shipment.Kind)
		}
	}

	if err != nil {
		s.logger.Error("Discarding unreadable queued shipment", "key", record.Key, "error", err)
		result = outcomeRejected
	} else {
		res, err := s.shipmentAPI.LaunchShipment(ctx, token, shipment.Kind, record.Payload)
		if err != nil {
			s.logger.Warn("Failed to submit shipment, keeping it queued", "key", record.Key, "error", err)
			return outcomeFailed
		}
		result = s.classify("shipment", record.Key, res.StatusCode, res.Message)
	}

	if err := s.shipments.DeletePendingShipment(ctx, record.Key); err != nil {
		s.logger.Error("Failed to delete delivered shipment", "key", record.Key, "error", err)
		return outcomeFailed
	}

	s.logger.Debug("Shipment synchronized", "key", record.Key)
	return result
}

// classify определяет исход по HTTP статусу; запись удаляется в любом случае
func (s *service) classify(kind string, key uint64, status int, message string) outcome {
	switch {
	case status == http.StatusUnauthorized:
		// сессия отсутствует или истекла, сервер не применил запись
		s.logger.Warn("Queued "+kind+" discarded: session expired, server answered 401",
			"key", key,
			"message", message,
		)
		return outcomeUnauthorized
	case status < 200 || status >= 300:
		s.logger.Error("Stock API rejected "+kind,
			"key", key,
			"status", status,
			"message", message,
		)
		return outcomeRejected
	default:
		return outcomeDelivered
	}
}

func (s *service) bearer(ctx context.Context) string {
	if s.token == nil {
		return ""
	}
	token, err := s.token(ctx)
	if err != nil {
		s.logger.Warn("Session expired or missing, submitting without authorization", "error", err)
		return ""
	}
	if token == "" {
		s.logger.Warn("Session expired or missing, submitting without authorization")
	}
	return token
}

func (s *service) notify(ctx context.Context, delivered int) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, CompletionNotification(delivered)); err != nil {
		s.logger.Warn("Failed to show sync notification", "error", err)
	}
}
