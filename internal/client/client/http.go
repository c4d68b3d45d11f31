package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of an error answer is read for its message.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://127.0.0.1:8080". timeout bounds every request; zero means none.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, common.APIPrefix+"/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	var out models.Category
	if err := c.get(ctx, common.APIPrefix+"/categories/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListMeals(ctx context.Context) ([]models.Meal, error) {
	var out []models.Meal
	if err := c.get(ctx, common.APIPrefix+"/meals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListMealsByCategory(ctx context.Context, category string) ([]models.Meal, error) {
	var out []models.Meal
	if err := c.get(ctx, common.APIPrefix+"/meals/"+url.PathEscape(category), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetMeal(ctx context.Context, id int64) (*models.Meal, error) {
	var out models.Meal
	if err := c.get(ctx, common.APIPrefix+"/meal/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks the server's /healthz endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/healthz", &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(b, &body) != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", common.ErrorNotFound, body.Message)
	}
	return fmt.Errorf("%w: %d %s", common.ErrorUnexpectedStatus, resp.StatusCode, body.Message)
}
