package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"web-larek/internal/app"
	"web-larek/internal/config"
	"web-larek/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticAPI struct {
	items []domain.Product
}

func (s staticAPI) FetchCatalog(context.Context) ([]domain.Product, error) {
	return s.items, nil
}

func (s staticAPI) SubmitOrder(context.Context, domain.Order) (domain.OrderResult, error) {
	return domain.OrderResult{ID: "order-1", Total: 4800}, nil
}

func newUITestServer(t *testing.T) (*httptest.Server, *app.App) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "development"},
		API:    config.APIConfig{CDNURL: "https://cdn.example"},
	}
	shopAPI := staticAPI{items: domain.FallbackCatalog()}
	application := app.New(cfg, shopAPI, zap.NewNop())
	application.LoadCatalog(context.Background())

	srv := NewServer(cfg, application, zap.NewNop())
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts, application
}

// uiClient does not follow redirects so tests can assert on them.
func uiClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func getPage(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func postForm(t *testing.T, ts *httptest.Server, path string, form url.Values) {
	t.Helper()
	resp, err := uiClient().PostForm(ts.URL+path, form)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestIndexRendersCatalog(t *testing.T) {
	ts, _ := newUITestServer(t)

	page := getPage(t, ts)
	assert.Contains(t, page, "+1 час в сутках")
	assert.Contains(t, page, `<span class="header__basket-counter">0</span>`)
}

func TestCardSelectOpensPreview(t *testing.T) {
	ts, _ := newUITestServer(t)

	postForm(t, ts, "/card/854cef69-976d-4c2a-a18c-2aa45046c390/select", nil)

	page := getPage(t, ts)
	assert.Contains(t, page, "modal_active")
	assert.Contains(t, page, "Купить")
}

func TestBuyFromPreviewUpdatesCounter(t *testing.T) {
	ts, application := newUITestServer(t)

	postForm(t, ts, "/card/854cef69-976d-4c2a-a18c-2aa45046c390/select", nil)
	postForm(t, ts, "/preview/action", nil)

	assert.Equal(t, 1, application.State.CartCount())
	page := getPage(t, ts)
	assert.Contains(t, page, `<span class="header__basket-counter">1</span>`)
	// The same click also closed the preview modal.
	assert.NotContains(t, page, "modal_active")
}

func TestFullCheckoutFlowOverHTTP(t *testing.T) {
	ts, application := newUITestServer(t)

	postForm(t, ts, "/card/854cef69-976d-4c2a-a18c-2aa45046c390/select", nil)
	postForm(t, ts, "/preview/action", nil)
	postForm(t, ts, "/basket/open", nil)
	postForm(t, ts, "/basket/checkout", nil)
	postForm(t, ts, "/order/payment", url.Values{"payment": {"card"}})
	postForm(t, ts, "/order/address", url.Values{"address": {"Город, улица, дом"}})
	postForm(t, ts, "/order/submit", nil)
	postForm(t, ts, "/contacts/email", url.Values{"email": {"a@b.com"}})
	postForm(t, ts, "/contacts/phone", url.Values{"phone": {"+79990001122"}})
	postForm(t, ts, "/contacts/submit", nil)

	page := getPage(t, ts)
	assert.Contains(t, page, "Списано 4800 синапсов")
	assert.Equal(t, 0, application.State.CartCount())

	postForm(t, ts, "/success/close", nil)
	page = getPage(t, ts)
	assert.NotContains(t, page, "modal_active")
}

func TestCheckoutWithEmptyCartStaysOnPage(t *testing.T) {
	ts, _ := newUITestServer(t)

	postForm(t, ts, "/basket/open", nil)
	postForm(t, ts, "/basket/checkout", nil)

	// The guard refuses the transition: still the basket, not a form.
	page := getPage(t, ts)
	assert.Contains(t, page, "basket__button")
	assert.NotContains(t, page, `name="order"`)
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newUITestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "ok"))
}
