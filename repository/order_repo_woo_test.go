package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
	"id": 42,
	"number": "1001",
	"date_created": "2024-02-05T10:11:12",
	"total": "1050.00",
	"total_tax": "50.00",
	"billing": {
		"first_name": "Asha",
		"last_name": "Verma",
		"company": "Verma Traders",
		"address_1": "12 MG Road",
		"address_2": "",
		"city": "Pune",
		"state": "Maharashtra",
		"postcode": "411001",
		"country": "IN"
	},
	"shipping": {
		"first_name": "Asha",
		"last_name": "Verma",
		"address_1": "12 MG Road",
		"city": "Pune",
		"state": "Maharashtra",
		"postcode": "411001",
		"country": "IN"
	},
	"line_items": [
		{"name": "Widget", "quantity": 2, "price": 500, "subtotal": "1000.00"}
	]
}`

func TestGetOrderSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wc/v3/orders/42", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "expected basic auth header")
		assert.Equal(t, "ck_test", user)
		assert.Equal(t, "cs_test", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(orderJSON))
	}))
	defer ts.Close()

	repo := NewWooOrderRepo(ts.URL, "ck_test", "cs_test")
	order, err := repo.GetOrder(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "1001", order.Number)
	assert.Equal(t, "1050.00", order.Total)
	assert.Equal(t, "50.00", order.TotalTax)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, "Widget", order.LineItems[0].Name)
	assert.Equal(t, 2, order.LineItems[0].Quantity)
	assert.Equal(t, "500", order.LineItems[0].Price.String())
	assert.Equal(t, "1000.00", order.LineItems[0].Subtotal)
}

func TestGetOrderNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	repo := NewWooOrderRepo(ts.URL, "ck_test", "cs_test")
	_, err := repo.GetOrder(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	repo := NewWooOrderRepo(ts.URL, "ck_test", "cs_test")
	_, err := repo.GetOrder(context.Background(), "42")
	require.Error(t, err)
	// upstream failures must stay distinguishable from not-found
	assert.False(t, errors.Is(err, ErrOrderNotFound))
}

func TestGetOrderMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	repo := NewWooOrderRepo(ts.URL, "ck_test", "cs_test")
	_, err := repo.GetOrder(context.Background(), "42")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrOrderNotFound))
}

func TestGetOrderConnectionRefused(t *testing.T) {
	repo := NewWooOrderRepo("http://127.0.0.1:1", "ck_test", "cs_test")
	_, err := repo.GetOrder(context.Background(), "42")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrOrderNotFound))
}
