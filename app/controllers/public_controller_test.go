package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altofibra/catalog/internal/pkg/pricing"
)

func newQuoteApp() *fiber.App {
	app := fiber.New()
	pc := &PublicController{}
	app.Post("/api/v1/quote", pc.HandleQuote)
	return app
}

func postQuote(t *testing.T, app *fiber.App, sel pricing.Selection) quoteResponse {
	t.Helper()

	body, err := json.Marshal(sel)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/quote", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out quoteResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHandleQuoteComputesTotals(t *testing.T) {
	app := newQuoteApp()

	out := postQuote(t, app, pricing.Selection{
		ServicePrice:        20000,
		ServiceRegularPrice: 25000,
		DiscountPercent:     10,
		Duration:            12,
		Addons:              []pricing.AddonChoice{{Name: "Router Wifi", Price: 2000}},
	})

	assert.Equal(t, 18000.0, out.DiscountedServicePrice)
	assert.Equal(t, 20000.0, out.TotalNow)
	assert.Equal(t, 27000.0, out.TotalAfter)
	assert.Equal(t, "$20.000", out.TotalNowDisplay)
	assert.Equal(t, "$27.000", out.TotalAfterDisplay)
	assert.Contains(t, out.Summary, "Hola, me gustaría contratar:")
	assert.Contains(t, out.Summary, "Después del mes 12, el precio será $27.000")
}

func TestHandleQuoteEmptySelectionDegradesToZero(t *testing.T) {
	app := newQuoteApp()

	out := postQuote(t, app, pricing.Selection{})

	assert.Equal(t, 0.0, out.TotalNow)
	assert.Equal(t, "$0", out.TotalNowDisplay)
}

func TestHandleQuoteRejectsMalformedBody(t *testing.T) {
	app := newQuoteApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/quote", bytes.NewReader([]byte("{not json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleContactRedirectsToWhatsApp(t *testing.T) {
	app := fiber.New()
	pc := &PublicController{}
	app.Get("/contactar", pc.HandleContact)

	req := httptest.NewRequest(fiber.MethodGet, "/contactar?number=56912345678&text=Hola", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://wa.me/56912345678?text=Hola", resp.Header.Get(fiber.HeaderLocation))
}

func TestHandleContactRequiresText(t *testing.T) {
	app := fiber.New()
	pc := &PublicController{}
	app.Get("/contactar", pc.HandleContact)

	req := httptest.NewRequest(fiber.MethodGet, "/contactar", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
