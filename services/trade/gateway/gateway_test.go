package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tradepost/internal/pkg/circuitbreaker"
	"github.com/piresc/tradepost/internal/pkg/constants"
	"github.com/piresc/tradepost/internal/pkg/models"
	natspkg "github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/services/trade/mocks"
)

const testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	server := natsserver.RunServer(&opts)
	code := m.Run()
	server.Shutdown()
	os.Exit(code)
}

func sampleDispatch() models.RailDispatch {
	return models.RailDispatch{
		AttemptID:    "a1",
		ListingID:    "l1",
		PayerContact: "buyer@example.com",
		Amount:       decimal.NewFromInt(35),
		AmountRaw:    "$35",
		DispatchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNATSRailGateway_Dispatch(t *testing.T) {
	// Arrange
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	received := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe(constants.SubjectRailDispatch, func(msg *nats.Msg) {
		received <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	gw := NewNATSRailGateway(client)

	// Act
	err = gw.Dispatch(context.Background(), sampleDispatch())

	// Assert
	require.NoError(t, err)
	select {
	case msg := <-received:
		var got models.RailDispatch
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "a1", got.AttemptID)
		assert.True(t, decimal.NewFromInt(35).Equal(got.Amount))
		assert.Equal(t, "$35", got.AmountRaw)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch was not published")
	}
}

func TestNATSRailGateway_DispatchOnClosedConnection(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	client.Close()

	err = NewNATSRailGateway(client).Dispatch(context.Background(), sampleDispatch())

	assert.Error(t, err)
}

func TestHTTPRailGateway_Dispatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dispatch", r.URL.Path)
		assert.Equal(t, "rail-key", r.Header.Get("X-API-Key"))

		var got models.RailDispatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "a1", got.AttemptID)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	gw := NewHTTPRailGateway(models.RailConfig{HTTPURL: server.URL, HTTPAPIKey: "rail-key", HTTPTimeout: time.Second})

	assert.NoError(t, gw.Dispatch(context.Background(), sampleDispatch()))
}

func TestHTTPRailGateway_DispatchRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := NewHTTPRailGateway(models.RailConfig{HTTPURL: server.URL, HTTPTimeout: time.Second})

	err := gw.Dispatch(context.Background(), sampleDispatch())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to post rail dispatch")
}

func TestHTTPRailGateway_Retries(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantErr   bool
		wantCalls int32
	}{
		{"recovers after server errors", []int{http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusAccepted}, false, 3},
		{"gives up after budget", []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable}, true, 3},
		{"client error is final", []int{http.StatusBadRequest, http.StatusAccepted}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.statuses[n-1])
			}))
			defer server.Close()

			gw := NewHTTPRailGateway(models.RailConfig{
				HTTPURL:       server.URL,
				HTTPTimeout:   time.Second,
				HTTPRetries:   2,
				HTTPRetryWait: time.Millisecond,
			})

			// Act
			err := gw.Dispatch(context.Background(), sampleDispatch())

			// Assert
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestRailGW_BreakerOpensAfterFailures(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mocks.NewMockRailGW(ctrl)
	transport.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(errors.New("rail unreachable")).
		Times(3)

	gw := NewRailGWWithTransport(transport, models.BreakerConfig{
		MinRequests:  3,
		FailureRatio: 0.5,
		Timeout:      time.Minute,
	})

	// Act
	for i := 0; i < 3; i++ {
		assert.Error(t, gw.Dispatch(context.Background(), sampleDispatch()))
	}
	err := gw.Dispatch(context.Background(), sampleDispatch())

	// Assert
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, "open", gw.BreakerState())
}

func TestNewRailGW_TransportSelection(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	tests := []struct {
		name      string
		rail      models.RailConfig
		nats      *natspkg.Client
		expectErr bool
	}{
		{name: "nats default", rail: models.RailConfig{}, nats: client},
		{name: "nats without connection", rail: models.RailConfig{Transport: TransportNATS}, expectErr: true},
		{name: "http", rail: models.RailConfig{Transport: TransportHTTP, HTTPURL: "http://rail.local"}},
		{name: "http without url", rail: models.RailConfig{Transport: TransportHTTP}, expectErr: true},
		{name: "unknown", rail: models.RailConfig{Transport: "carrier-pigeon"}, nats: client, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, err := NewRailGW(&models.Config{Rail: tt.rail}, tt.nats)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, gw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "closed", gw.BreakerState())
		})
	}
}
