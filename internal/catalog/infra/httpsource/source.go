package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/fernandojoseee/garageonline/internal/catalog/app"
	"github.com/fernandojoseee/garageonline/internal/catalog/domain"
)

// Source fetches the catalog as a JSON array over HTTP.
type Source struct {
	url    string
	client *http.Client
}

func New(url string, client *http.Client) *Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &Source{
		url:    url,
		client: client,
	}
}

type productRecord struct {
	Code      int             `json:"code"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Category  string          `json:"category"`
	Type      string          `json:"type"`
	ImageRef  string          `json:"imageRef"`
	SalePrice decimal.Decimal `json:"salePrice"`
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", app.ErrFetch, resp.StatusCode)
	}

	var records []productRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrParse, err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		if r.SalePrice.IsNegative() {
			return nil, fmt.Errorf("%w: negative salePrice on code %d", app.ErrParse, r.Code)
		}
		products = append(products, domain.Product{
			Code:      r.Code,
			Brand:     r.Brand,
			Model:     r.Model,
			Category:  r.Category,
			Type:      r.Type,
			ImageRef:  r.ImageRef,
			SalePrice: r.SalePrice,
		})
	}
	return products, nil
}
