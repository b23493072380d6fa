package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"halachick.backend/internal/domain/entities"
	"halachick.backend/internal/usecases"
)

func TestInvestmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	investorID := uuid.New()

	var created *entities.Investment
	var contribution *entities.FundContribution
	investmentRepo := &investmentRepoStub{
		createFn: func(_ context.Context, investment *entities.Investment) error {
			created = investment
			return nil
		},
	}
	fundRepo := &fundRepoStub{
		addFn: func(_ context.Context, c *entities.FundContribution) error {
			contribution = c
			return nil
		},
	}
	h := NewInvestmentHandler(usecases.NewInvestmentUsecase(investmentRepo, fundRepo))

	r := gin.New()
	r.POST("/investments", fakeAuth(investorID, "investor"), h.Create)

	t.Run("valid BaidCash investment", func(t *testing.T) {
		body := `{"type":"BaidCash","duration":90,"quantity":10,"unitPrice":50000,"totalAmount":500000,"profitPercentage":12,"insuranceFee":25000}`
		req := httptest.NewRequest(http.MethodPost, "/investments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, created)
		require.Equal(t, investorID, created.InvestorID)
		require.Equal(t, entities.InvestmentPendingPayment, created.Status)
		require.NotNil(t, contribution)
		require.Equal(t, 25000.0, contribution.Amount)
		require.Equal(t, entities.ContributionInvestmentBased, contribution.ContributionType)
	})

	t.Run("total amount mismatch", func(t *testing.T) {
		body := `{"type":"BaidCash","duration":90,"quantity":10,"unitPrice":50000,"totalAmount":400000,"profitPercentage":12,"insuranceFee":25000}`
		req := httptest.NewRequest(http.MethodPost, "/investments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("KtiCash without age package", func(t *testing.T) {
		body := `{"type":"KtiCash","quantity":10,"unitPrice":50000,"totalAmount":500000,"profitPercentage":12,"insuranceFee":25000}`
		req := httptest.NewRequest(http.MethodPost, "/investments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInvestmentHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()
	investmentID := uuid.New()

	investmentRepo := &investmentRepoStub{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*entities.Investment, error) {
			require.Equal(t, investmentID, id)
			return &entities.Investment{ID: investmentID, Status: entities.InvestmentPendingPayment}, nil
		},
	}
	h := NewInvestmentHandler(usecases.NewInvestmentUsecase(investmentRepo, &fundRepoStub{}))

	r := gin.New()
	r.PATCH("/admin/investments/:id/status", fakeAuth(adminID, "admin"), h.SetStatus)

	t.Run("activate", func(t *testing.T) {
		body := `{"status":"active"}`
		req := httptest.NewRequest(http.MethodPatch, "/admin/investments/"+investmentID.String()+"/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"status":"active"`)
	})

	t.Run("unknown status", func(t *testing.T) {
		body := `{"status":"paused"}`
		req := httptest.NewRequest(http.MethodPatch, "/admin/investments/"+investmentID.String()+"/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		body := `{"status":"active"}`
		req := httptest.NewRequest(http.MethodPatch, "/admin/investments/nope/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
