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
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/usecases"
)

func newAdminTestHandler(userRepo *userRepoStub, settingRepo *settingRepoStub) *AdminHandler {
	return NewAdminHandler(usecases.NewAdminUsecase(
		userRepo,
		&investmentRepoStub{},
		&fundRepoStub{},
		&claimRepoStub{},
		settingRepo,
		mailerStub{},
	))
}

func TestAdminHandler_ListUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userRepo := &userRepoStub{
		listFn: func(_ context.Context, search string) ([]*entities.User, error) {
			require.Equal(t, "dina", search)
			return []*entities.User{{ID: uuid.New(), Email: "dina@halachick.io"}}, nil
		},
	}
	h := newAdminTestHandler(userRepo, &settingRepoStub{})

	r := gin.New()
	r.GET("/admin/users", h.ListUsers)

	req := httptest.NewRequest(http.MethodGet, "/admin/users?search=dina", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "dina@halachick.io")
}

func TestAdminHandler_GetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			if id == userID {
				return &entities.User{ID: userID, Email: "rudi@halachick.io", Role: entities.UserRoleFarmer}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	h := newAdminTestHandler(userRepo, &settingRepoStub{})

	r := gin.New()
	r.GET("/admin/users/:id", h.GetUser)

	t.Run("returns the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users/"+userID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "rudi@halachick.io")
	})

	t.Run("unknown user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_UpdateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	adminID := uuid.New()

	userRepo := &userRepoStub{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			switch id {
			case userID:
				return &entities.User{ID: userID, Role: entities.UserRoleVisitor, IsActive: true}, nil
			case adminID:
				return &entities.User{ID: adminID, Role: entities.UserRoleAdmin, IsActive: true}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	h := newAdminTestHandler(userRepo, &settingRepoStub{})

	r := gin.New()
	r.PATCH("/admin/users/:id", h.UpdateUser)
	r.DELETE("/admin/users/:id", h.DeleteUser)

	t.Run("promotes visitor to farmer", func(t *testing.T) {
		body := `{"role":"farmer"}`
		req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+userID.String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"role":"farmer"`)
	})

	t.Run("cannot modify admin account", func(t *testing.T) {
		body := `{"isActive":false}`
		req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+adminID.String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("cannot promote to admin", func(t *testing.T) {
		body := `{"role":"admin"}`
		req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+userID.String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cannot delete admin account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/"+adminID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminHandler_NotifyUser_InvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAdminTestHandler(&userRepoStub{}, &settingRepoStub{})

	r := gin.New()
	r.POST("/admin/users/:id/notify", h.NotifyUser)

	req := httptest.NewRequest(http.MethodPost, "/admin/users/"+uuid.New().String()+"/notify", strings.NewReader(`{"subject":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_Settings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	saved := map[string]interface{}{}
	settingRepo := &settingRepoStub{
		getAllFn: func(context.Context) (map[string]interface{}, error) {
			return map[string]interface{}{"platformFeePercent": 2.5}, nil
		},
		saveFn: func(_ context.Context, key string, value interface{}) error {
			saved[key] = value
			return nil
		},
	}
	h := newAdminTestHandler(&userRepoStub{}, settingRepo)

	r := gin.New()
	r.GET("/admin/settings", h.GetSettings)
	r.PUT("/admin/settings", h.SaveSetting)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "platformFeePercent")

	body := `{"key":"maintenanceMode","value":true}`
	req = httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, saved["maintenanceMode"])
}

func TestAdminHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAdminTestHandler(&userRepoStub{}, &settingRepoStub{})

	r := gin.New()
	r.GET("/admin/stats", h.Stats)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "totalInvestors")
	require.Contains(t, w.Body.String(), "insuranceFund")
}
