package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"twiginvoice/models"

	"github.com/rs/zerolog/log"
)

// WooOrderRepo fetches orders from the WooCommerce REST API:
// GET {base}/wp-json/wc/v3/orders/{id} with consumer key/secret basic auth.
type WooOrderRepo struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Client         *http.Client
}

func NewWooOrderRepo(baseURL, consumerKey, consumerSecret string) *WooOrderRepo {
	return &WooOrderRepo{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Client:         &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *WooOrderRepo) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	endpoint := fmt.Sprintf("%s/wp-json/wc/v3/orders/%s", r.BaseURL, url.PathEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(r.ConsumerKey, r.ConsumerSecret)

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("woocommerce request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrOrderNotFound
	case resp.StatusCode != http.StatusOK:
		log.Warn().Int("status", resp.StatusCode).Str("order_id", orderID).Msg("woocommerce returned non-OK status")
		return nil, fmt.Errorf("woocommerce returned status %d", resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode woocommerce order: %w", err)
	}
	return &order, nil
}
