package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukex/contractflow/pkg/client"
	"github.com/dukex/contractflow/pkg/dashboard"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/dukex/contractflow/pkg/services"
	"github.com/dukex/contractflow/pkg/store"
	"github.com/dukex/contractflow/pkg/testutil"
	"github.com/dukex/contractflow/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *client.Client {
	t.Helper()

	session := services.NewSession(
		services.WithContractStoreOptions(
			store.WithContractIDs(testutil.SequentialIDs("ct")),
			store.WithClock(testutil.FixedClock),
		),
	)
	t.Cleanup(session.Close)

	app := fiber.New()
	web.NewAPIHandlers(session, validator.New(validator.WithRequiredStructEnabled())).Register(app)

	server := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(server.Close)

	return client.New(server.URL + "/")
}

func TestClient_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := t.Context()

	bp, err := c.CreateBlueprint(ctx, "NDA")
	require.NoError(t, err)

	blueprints, err := c.ListBlueprints(ctx)
	require.NoError(t, err)
	require.Len(t, blueprints, 1)
	assert.Equal(t, bp.ID, blueprints[0].ID)

	first, err := c.GenerateContract(ctx, bp.ID)
	require.NoError(t, err)
	assert.Equal(t, "ct-1", first.ID)
	assert.Equal(t, dashboard.Untitled, first.DisplayName)

	second, err := c.GenerateContract(ctx, bp.ID)
	require.NoError(t, err)

	advanced, err := c.AdvanceContract(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusApproved, advanced.Status)

	revoked, err := c.RevokeContract(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusRevoked, revoked.Status)

	all, err := c.ListContracts(ctx, models.StatusFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := c.ListContracts(ctx, models.StatusFilter(models.ContractStatusApproved))
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "ct-1", approved[0].ID)
	assert.Equal(t, "2026-03-14", approved[0].CreatedDate)
}

func TestClient_ProblemDocuments(t *testing.T) {
	t.Parallel()

	c := newTestServer(t)
	ctx := t.Context()

	_, err := c.GenerateContract(ctx, "missing")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "blueprint_not_found", apiErr.Type)

	_, err = c.ListContracts(ctx, "Pending")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "validation_error")
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := client.New(url).ListContracts(t.Context(), models.StatusFilterAll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /contracts")
}
