package invoices

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/mvqn/ucrm-plugin-xero/feature/invoices/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Map(context.Background(), []models.Invoice{first, second}, []models.XeroInvoice{firstXero})
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "pending",
			path:       "/invoices/pending",
			wantStatus: fiber.StatusOK,
			wantBody:   `{"pending":["INV-0002"],"count":1}`,
		},
		{
			name:       "lookup",
			path:       "/invoices/lookup/11",
			wantStatus: fiber.StatusOK,
			wantBody:   `{"number":"INV-0002","ucrmId":11}`,
		},
		{
			name:       "lookup not found",
			path:       "/invoices/lookup/unknown",
			wantStatus: fiber.StatusNotFound,
			wantBody:   `{"error":"invoice correlation not found"}`,
		},
		{
			name:       "runs without history",
			path:       "/invoices/runs?limit=3",
			wantStatus: fiber.StatusOK,
			wantBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}
