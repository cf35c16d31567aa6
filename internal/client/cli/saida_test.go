package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

// shipmentAPI отвечает списком товаров и принимает заявку, назначая номер
func shipmentAPI() *httpClient.ClientAPIMock {
	mock := productsAPI()
	mock.LaunchShipmentFunc = func(ctx context.Context, token string, kind models.ShipmentKind, payload json.RawMessage) (*httpClient.ShipmentResult, error) {
		shipment, err := models.DecodeShipment(payload)
		if err != nil {
			return nil, err
		}
		shipment.Requisition = "100325-1"
		for i := range shipment.Items {
			shipment.Items[i].Description = "Porca"
			shipment.Items[i].Location = "R1-A"
			shipment.Items[i].Status = models.ShipmentStatusPending
		}
		return &httpClient.ShipmentResult{
			StatusCode: http.StatusCreated,
			Response:   &api.ShipmentResponse{Status: api.StatusSuccess, Data: shipment},
		}, nil
	}
	return mock
}

func TestCli_runSaida_Online(t *testing.T) {
	store := createTestStore(t)
	io, out := newTestIO()
	apiMock := shipmentAPI()
	c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, store, nil)

	require.NoError(t, c.Run(context.Background(), "saida", []string{"--responsavel", "Carlos", "Fabrica", "B2=3"}))

	calls := apiMock.LaunchShipmentCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "jwt-token", calls[0].Token)
	assert.Equal(t, models.ShipmentFactory, calls[0].Kind)

	shipment, err := models.DecodeShipment(calls[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "adj-1", shipment.ID)
	assert.Equal(t, models.ShipmentFactory, shipment.Kind)
	assert.Equal(t, "Carlos", shipment.Responsible)
	assert.Equal(t, "42", shipment.User)
	assert.Equal(t, []models.ShipmentItem{{Code: "B2", Quantity: 3}}, shipment.Items)
	assert.True(t, shipment.CreatedAt.Equal(testNow))

	output := out.String()
	assert.Contains(t, output, "Shipment 100325-1 launched (fabrica, 1 item(s))")
	assert.Contains(t, output, "R1-A")
	assert.Contains(t, output, "Pendente")
	assert.NotContains(t, output, "Insufficient stock")

	count, err := store.CountPendingShipments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCli_runSaida_DefaultResponsible(t *testing.T) {
	io, _ := newTestIO()
	apiMock := shipmentAPI()
	c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, createTestStore(t), nil)

	require.NoError(t, c.Run(context.Background(), "saida", []string{"garantia", "B2=1"}))

	calls := apiMock.LaunchShipmentCalls()
	require.Len(t, calls, 1)
	shipment, err := models.DecodeShipment(calls[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "Maria", shipment.Responsible)
	assert.Equal(t, models.ShipmentWarranty, calls[0].Kind)
}

func TestCli_runSaida_InsufficientStock(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		wantCalls int
		contains  string
	}{
		{name: "confirmed", answer: "s", wantCalls: 1, contains: "Shipment 100325-1 launched"},
		{name: "declined", answer: "n", wantCalls: 0, contains: "Shipment cancelled"},
		{name: "empty answer", answer: "", wantCalls: 0, contains: "Shipment cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io, out := newTestIO(tt.answer)
			apiMock := shipmentAPI()
			c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, createTestStore(t), nil)

			// A1: в наличии 2
			require.NoError(t, c.Run(context.Background(), "saida", []string{"fabrica", "A1=5"}))
			assert.Contains(t, out.String(), "A1: requested 5, in stock 2")
			assert.Contains(t, out.String(), tt.contains)
			assert.Len(t, apiMock.LaunchShipmentCalls(), tt.wantCalls)
		})
	}
}

func TestCli_runSaida_NetworkFailureQueues(t *testing.T) {
	store := createTestStore(t)
	io, out := newTestIO()
	apiMock := &httpClient.ClientAPIMock{
		GetProductsFunc: func(ctx context.Context, token string) ([]models.Product, error) {
			return nil, fmt.Errorf("%w: dial tcp: connection refused", httpClient.ErrNetwork)
		},
		LaunchShipmentFunc: func(ctx context.Context, token string, kind models.ShipmentKind, payload json.RawMessage) (*httpClient.ShipmentResult, error) {
			return nil, fmt.Errorf("%w: dial tcp: connection refused", httpClient.ErrNetwork)
		},
	}
	c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, store, nil)

	require.NoError(t, c.Run(context.Background(), "saida", []string{"garantia", "A1=1", "C3=2"}))
	assert.Contains(t, out.String(), "Offline: garantia shipment with 2 item(s) saved (#1)")

	records, err := store.GetAllPendingShipments(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	shipment, err := models.DecodeShipment(records[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, models.ShipmentWarranty, shipment.Kind)
	assert.Len(t, shipment.Items, 2)

	// очередь корректировок не затронута
	count, err := store.CountPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCli_runSaida_OfflineFlag(t *testing.T) {
	store := createTestStore(t)
	io, _ := newTestIO()
	apiMock := &httpClient.ClientAPIMock{}
	c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, store, nil)

	require.NoError(t, c.Run(context.Background(), "saida", []string{"--offline", "fabrica", "A1=1"}))
	assert.Empty(t, apiMock.GetProductsCalls())
	assert.Empty(t, apiMock.LaunchShipmentCalls())

	count, err := store.CountPendingShipments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCli_runSaida_Rejected(t *testing.T) {
	store := createTestStore(t)
	io, _ := newTestIO()
	apiMock := productsAPI()
	apiMock.LaunchShipmentFunc = func(ctx context.Context, token string, kind models.ShipmentKind, payload json.RawMessage) (*httpClient.ShipmentResult, error) {
		return &httpClient.ShipmentResult{StatusCode: http.StatusConflict, Message: "server error (409): id já usado"}, nil
	}
	c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, store, nil)

	err := c.Run(context.Background(), "saida", []string{"fabrica", "B2=1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id já usado")

	count, err := store.CountPendingShipments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCli_runSaida_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		readOnly bool
		noLogin  bool
		errMsg   string
	}{
		{name: "missing items", args: []string{"fabrica"}, errMsg: "missing arguments"},
		{name: "unknown type", args: []string{"devolucao", "A1=1"}, errMsg: "unknown shipment type"},
		{name: "no equals sign", args: []string{"fabrica", "A1"}, errMsg: "expected SKU=QTY"},
		{name: "bad quantity", args: []string{"fabrica", "A1=um"}, errMsg: "invalid quantity"},
		{name: "zero quantity", args: []string{"fabrica", "A1=0"}, errMsg: "invalid shipment"},
		{name: "duplicate item", args: []string{"fabrica", "A1=1", "A1=2"}, errMsg: "more than once"},
		{name: "unknown product", args: []string{"fabrica", "ZZ=1"}, errMsg: "product ZZ not found"},
		{name: "read-only user", args: []string{"fabrica", "A1=1"}, readOnly: true, errMsg: "read-only access"},
		{name: "not logged in", args: []string{"fabrica", "A1=1"}, noLogin: true, errMsg: "not authenticated"},
		{name: "unknown flag", args: []string{"--force", "fabrica", "A1=1"}, errMsg: "invalid arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io, _ := newTestIO()
			session := testSession(tt.readOnly)
			if tt.noLogin {
				session = nil
			}
			apiMock := shipmentAPI()
			c := newTestCli(io, apiMock, sessionAuth(session), nil, createTestStore(t), nil)

			err := c.Run(context.Background(), "saida", tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, apiMock.LaunchShipmentCalls())
		})
	}
}

func TestCli_runSaida_ReadAnswerFails(t *testing.T) {
	io, _ := newTestIO()
	apiMock := shipmentAPI()
	c := newTestCli(io, apiMock, sessionAuth(testSession(false)), nil, createTestStore(t), nil)

	err := c.Run(context.Background(), "saida", []string{"fabrica", "A1=9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read answer")
	assert.Empty(t, apiMock.LaunchShipmentCalls())
}

func TestCli_runPending_Shipments(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	io, out := newTestIO()
	c := newTestCli(io, nil, nil, nil, store, nil)

	payload, err := json.Marshal(models.Shipment{
		ID:          "s-1",
		Kind:        models.ShipmentWarranty,
		Responsible: "Carlos",
		Items:       []models.ShipmentItem{{Code: "A1", Quantity: 1}, {Code: "B2", Quantity: 4}},
	})
	require.NoError(t, err)
	_, err = store.AddPendingShipment(ctx, payload)
	require.NoError(t, err)

	require.NoError(t, c.Run(ctx, "pending", nil))

	output := out.String()
	assert.Contains(t, output, "No adjustments waiting")
	assert.Contains(t, output, "=== Pending Shipments ===")
	assert.Contains(t, output, "garantia")
	assert.Contains(t, output, "Carlos")
	assert.Contains(t, output, "Total: 1")
}
