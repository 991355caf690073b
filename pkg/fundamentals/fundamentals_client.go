package fundamentals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrSymbolNotFound reports a symbol the upstream service has no coverage
// for, as opposed to a transport failure.
var ErrSymbolNotFound = errors.New("symbol not found")

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

// Metrics are the fundamental ratios the service reports per symbol. Nil
// fields were not reported; callers must treat them as absent, not zero.
type Metrics struct {
	RevenueGrowthYoY *float64 `json:"revenue_growth_yoy"`
	EpsGrowthYoY     *float64 `json:"eps_growth_yoy"`
	FcfGrowthYoY     *float64 `json:"fcf_growth_yoy"`
	Roe              *float64 `json:"roe"`
	NetMargin        *float64 `json:"net_margin"`
	OperatingMargin  *float64 `json:"operating_margin"`
	DebtToEquity     *float64 `json:"debt_to_equity"`
	CurrentRatio     *float64 `json:"current_ratio"`
	PriceToSales     *float64 `json:"price_to_sales"`
}

type metricsResponse struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	Metrics     Metrics `json:"metrics"`
}

func (c Client) GetMetrics(ctx context.Context, symbol string) (*Metrics, error) {
	url := fmt.Sprintf("%s/v1/company/metrics?apikey=%s&ticker=%s", c.BaseUrl, c.ApiKey, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	responseJson := metricsResponse{}
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse metrics response: %w", err)
	}

	return &responseJson.Metrics, nil
}
