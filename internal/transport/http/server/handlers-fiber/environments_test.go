package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"environment-deployments/internal/api"
	"environment-deployments/internal/entities"
	"environment-deployments/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) GetEnvironments(ctx context.Context, key entities.RepoKey) ([]entities.EnvironmentSnapshot, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.EnvironmentSnapshot), args.Error(1)
}

func newTestApp(uc usecase.InterfaceUsecase) *fiber.App {
	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func TestGetRepoEnvironments(t *testing.T) {
	uc := &ucMock{}
	key := entities.RepoKey{Owner: "acme", Name: "widgets"}
	url := "https://prod.example.com"
	uc.On("GetEnvironments", mock.Anything, key).Return([]entities.EnvironmentSnapshot{
		{Name: "production", Deployment: &entities.Deployment{
			ID:          "DEP_1",
			CommitRef:   "aaa111",
			BranchOrTag: "main",
			Environment: "production",
			CreatedAt:   time.Date(2024, 5, 1, 0, 0, 10, 0, time.UTC),
			LatestStatus: &entities.DeploymentStatus{
				State:          entities.StateSuccess,
				CreatedAt:      time.Date(2024, 5, 1, 0, 0, 11, 0, time.UTC),
				EnvironmentURL: &url,
			},
		}},
		{Name: "staging"},
	}, nil)

	app := newTestApp(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/repos/acme/widgets/environments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.EnvironmentsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Environments, 2)
	require.Equal(t, "production", body.Environments[0].Name)
	require.Equal(t, "success", body.Environments[0].Deployment.LatestStatus.State)
	require.Nil(t, body.Environments[1].Deployment)

	uc.AssertExpectations(t)
}

func TestGetRepoEnvironmentsEmptyList(t *testing.T) {
	uc := &ucMock{}
	uc.On("GetEnvironments", mock.Anything, mock.Anything).
		Return([]entities.EnvironmentSnapshot{}, nil)

	app := newTestApp(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/repos/acme/ghost/environments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.EnvironmentsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Empty(t, body.Environments)
}

func TestGetRepoEnvironmentsInvalidKey(t *testing.T) {
	uc := &ucMock{}
	uc.On("GetEnvironments", mock.Anything, mock.Anything).
		Return(nil, entities.ErrInvalidArgument)

	app := newTestApp(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/repos/%20/widgets/environments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INVALIDARGUMENT, body.Error.Code)
}
