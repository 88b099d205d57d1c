package routes

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/entities"
	"Food-Share-Backend/internal/api/handlers"
	"Food-Share-Backend/internal/api/presenters"
	"Food-Share-Backend/internal/middleware"
	"Food-Share-Backend/internal/testutil"
	"Food-Share-Backend/internal/utils"
	"Food-Share-Backend/pkg/dashboard"
	"Food-Share-Backend/pkg/donation"
	"Food-Share-Backend/pkg/jwt"
	"Food-Share-Backend/pkg/listing"
	"Food-Share-Backend/pkg/request"
	"Food-Share-Backend/pkg/user"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-secret"

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type testServer struct {
	app       *fiber.App
	donations *testutil.DonationRepository
}

func newTestServer(t *testing.T, donations ...entities.FoodDonation) *testServer {
	t.Helper()
	utils.InitValidator()

	app := fiber.New(fiber.Config{ErrorHandler: presenters.ErrorHandler})
	jwtService := jwt.NewJWTServiceWithSecret(testSecret, time.Hour)

	userRepository := testutil.NewUserRepository()
	listingRepository := testutil.NewListingRepository()
	requestRepository := testutil.NewRequestRepository()
	donationRepository := testutil.NewDonationRepository(donations...)

	userService := user.NewUserService(userRepository, jwtService)
	listingService := listing.NewListingService(listingRepository, nil, nil)
	requestService := request.NewRequestService(requestRepository, listingRepository)
	donationService := donation.NewDonationService(donationRepository)
	dashboardService := dashboard.NewDashboardService(listingRepository, requestRepository)

	cfg := Config{
		App:              app,
		AuthHandler:      handlers.NewAuthHandler(userService, utils.Validate),
		ListingHandler:   handlers.NewListingHandler(listingService, utils.Validate),
		RequestHandler:   handlers.NewRequestHandler(requestService),
		DonationHandler:  handlers.NewDonationHandler(donationService),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService),
		HealthHandler:    handlers.NewHealthHandler(okPinger{}),
		Middleware:       middleware.NewMiddleware(),
		JWTService:       jwtService,
	}
	cfg.Setup()

	return &testServer{app: app, donations: donationRepository}
}

func (s *testServer) call(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func (s *testServer) register(t *testing.T, name, email, role string) domain.AuthResponse {
	t.Helper()
	status, raw := s.call(t, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "secret1", "role": role,
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	return decode[domain.AuthResponse](t, raw)
}

func breadListing() fiber.Map {
	return fiber.Map{
		"title":       "Bread",
		"description": "day-old",
		"category":    "Bakery",
		"quantity":    10,
		"location":    "Shop A",
		"expiry":      "Today 8PM",
	}
}

func TestBreadScenario(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Rita", "rita@x.io", domain.RoleBeneficiary)

	status, raw := s.call(t, fiber.MethodPost, "/api/auth/login", "", fiber.Map{"email": "rita@x.io", "password": "secret1"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	token := decode[domain.AuthResponse](t, raw).Token

	status, raw = s.call(t, fiber.MethodPost, "/api/food/listings", "", breadListing())
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[domain.ListingResponse](t, raw)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UserID)

	status, raw = s.call(t, fiber.MethodPost, "/api/food/requests", token, fiber.Map{"foodItemId": created.ID})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	reqRes := decode[domain.CreateFoodRequestResponse](t, raw)
	assert.Equal(t, domain.MessageSuccessCreateRequest, reqRes.Message)
	assert.Equal(t, domain.RequestStatusPending, reqRes.Request.Status)
	assert.Equal(t, 1.0, reqRes.Request.Quantity)

	status, raw = s.call(t, fiber.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	summary := decode[domain.DashboardResponse](t, raw)
	require.Len(t, summary.MyRequests, 1)
	assert.Equal(t, created.ID, summary.MyRequests[0].FoodItemID)
	assert.Empty(t, summary.MyDonations)
	assert.Equal(t, domain.DashboardStats{TotalDonations: 0, TotalRequests: 1}, summary.Stats)
}

func TestRegisterAndLoginFailures(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Dana", "dana@x.io", domain.RoleDonor)

	status, raw := s.call(t, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Dana", "email": "dana@x.io", "password": "secret1", "role": domain.RoleDonor,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.MessageEmailAlreadyRegistered, decode[presenters.ErrorBody](t, raw).Message)

	status, raw = s.call(t, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "X", "email": "x@x.io", "password": "secret1", "role": "admin",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[presenters.ErrorBody](t, raw).Error, "role")

	status, raw = s.call(t, fiber.MethodPost, "/api/auth/login", "", fiber.Map{"email": "dana@x.io", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", decode[presenters.ErrorBody](t, raw).Message)

	status, raw = s.call(t, fiber.MethodPost, "/api/auth/login", "", fiber.Map{"email": "ghost@x.io", "password": "secret1"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", decode[presenters.ErrorBody](t, raw).Message)
}

func TestCreateListingValidation(t *testing.T) {
	s := newTestServer(t)

	missing := breadListing()
	delete(missing, "location")
	status, raw := s.call(t, fiber.MethodPost, "/api/food/listings", "", missing)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "All fields are required.", decode[presenters.ErrorBody](t, raw).Message)

	for _, quantity := range []any{"abc", 0, -3} {
		body := breadListing()
		body["quantity"] = quantity
		status, raw = s.call(t, fiber.MethodPost, "/api/food/listings", "", body)
		assert.Equal(t, fiber.StatusBadRequest, status, quantity)
		assert.Equal(t, "Quantity must be a valid positive number.", decode[presenters.ErrorBody](t, raw).Message)
	}

	status, raw = s.call(t, fiber.MethodGet, "/api/food/listings", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestListingOwnershipAndMine(t *testing.T) {
	s := newTestServer(t)
	donor := s.register(t, "Dana", "dana@x.io", domain.RoleDonor)

	status, raw := s.call(t, fiber.MethodPost, "/api/food/listings", donor.Token, breadListing())
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[domain.ListingResponse](t, raw)
	require.NotNil(t, created.UserID)
	assert.Equal(t, donor.User.ID, *created.UserID)

	status, _ = s.call(t, fiber.MethodPost, "/api/food/listings", "", breadListing())
	require.Equal(t, fiber.StatusCreated, status)

	status, raw = s.call(t, fiber.MethodGet, "/api/food/listings/mine", donor.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]domain.ListingResponse](t, raw), 1)

	status, _ = s.call(t, fiber.MethodGet, "/api/food/listings/mine", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, raw = s.call(t, fiber.MethodGet, "/api/food/listings", "not-a-token", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]domain.ListingResponse](t, raw), 2)

	status, raw = s.call(t, fiber.MethodGet, "/api/food/listings/"+created.ID, "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, created.ID, decode[domain.ListingResponse](t, raw).ID)
}

func TestUpdateAndDeleteListing(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.call(t, fiber.MethodPost, "/api/food/listings", "", breadListing())
	require.Equal(t, fiber.StatusCreated, status)
	created := decode[domain.ListingResponse](t, raw)
	path := "/api/food/listings/" + created.ID

	status, raw = s.call(t, fiber.MethodPut, path, "", fiber.Map{"quantity": 4})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	updated := decode[domain.ListingResponse](t, raw)
	assert.Equal(t, 4.0, updated.Quantity)
	assert.Equal(t, "Bread", updated.Title)

	status, _ = s.call(t, fiber.MethodPut, path, "", fiber.Map{"quantity": -1})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw = s.call(t, fiber.MethodPut, "/api/food/listings/"+uuid.NewString(), "", fiber.Map{"title": "x"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Food listing not found", decode[presenters.ErrorBody](t, raw).Message)

	status, raw = s.call(t, fiber.MethodDelete, path, "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Food listing deleted successfully"}`, string(raw))

	status, _ = s.call(t, fiber.MethodDelete, path, "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = s.call(t, fiber.MethodGet, path, "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = s.call(t, fiber.MethodDelete, "/api/food/listings/garbage", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRequestFailures(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.call(t, fiber.MethodPost, "/api/food/requests", "", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Food item ID is required", decode[presenters.ErrorBody](t, raw).Message)

	status, raw = s.call(t, fiber.MethodPost, "/api/food/requests", "", fiber.Map{"foodItemId": uuid.NewString()})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Food item not found", decode[presenters.ErrorBody](t, raw).Message)

	status, _ = s.call(t, fiber.MethodGet, "/api/food/requests", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRequestAfterListingDeletedIsNotFound(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.call(t, fiber.MethodPost, "/api/food/listings", "", breadListing())
	require.Equal(t, fiber.StatusCreated, status)
	created := decode[domain.ListingResponse](t, raw)

	status, _ = s.call(t, fiber.MethodPost, "/api/food/requests", "", fiber.Map{"foodItemId": created.ID})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = s.call(t, fiber.MethodDelete, "/api/food/listings/"+created.ID, "", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = s.call(t, fiber.MethodPost, "/api/food/requests", "", fiber.Map{"foodItemId": created.ID})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMyRequestsAndDonations(t *testing.T) {
	s := newTestServer(t)
	rita := s.register(t, "Rita", "rita@x.io", domain.RoleBeneficiary)

	status, raw := s.call(t, fiber.MethodGet, "/api/food/requests", rita.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, raw = s.call(t, fiber.MethodGet, "/api/food/donations", rita.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, _ = s.call(t, fiber.MethodGet, "/api/food/donations", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestDonationsAreScopedToCaller(t *testing.T) {
	owner := uuid.New()
	s := newTestServer(t, entities.FoodDonation{
		ID:         uuid.New(),
		UserID:     owner,
		FoodItemID: uuid.New(),
		Status:     domain.DonationStatusAvailable,
		Timestamp:  entities.Timestamp{CreatedAt: time.Now()},
	})
	token, err := jwt.NewJWTServiceWithSecret(testSecret, time.Hour).GenerateTokenUser(owner.String(), "")
	require.NoError(t, err)

	status, raw := s.call(t, fiber.MethodGet, "/api/food/donations", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	donations := decode[[]domain.FoodDonationResponse](t, raw)
	require.Len(t, donations, 1)
	assert.Equal(t, domain.DonationStatusAvailable, donations[0].Status)
}

func TestDashboardRejectsExpiredToken(t *testing.T) {
	s := newTestServer(t)
	expired, err := jwt.NewJWTServiceWithSecret(testSecret, -time.Minute).GenerateTokenUser(uuid.NewString(), "")
	require.NoError(t, err)

	status, _ := s.call(t, fiber.MethodGet, "/api/dashboard", expired, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = s.call(t, fiber.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestImageUploadWithoutStorage(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.call(t, fiber.MethodPost, "/api/food/listings", "", breadListing())
	require.Equal(t, fiber.StatusCreated, status)
	created := decode[domain.ListingResponse](t, raw)

	body, contentType := testutil.MultipartBody(t, "image", "bread.png", testutil.PNGBytes)
	req := httptest.NewRequest(fiber.MethodPost, "/api/food/listings/"+created.ID+"/image", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	status, _ = s.call(t, fiber.MethodPost, "/api/food/listings/"+created.ID+"/image", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestOperationalRoutes(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.call(t, fiber.MethodGet, "/api/test", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Backend is connected!"}`, string(raw))

	status, raw = s.call(t, fiber.MethodGet, "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", decode[handlers.HealthResponse](t, raw).DB)

	status, raw = s.call(t, fiber.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), `food_share_http_requests_total{method="GET",path="/api/test",status="200"} 1`)
}

func TestCreateWithMalformedCallerIDIsAnonymous(t *testing.T) {
	s := newTestServer(t)
	token, err := jwt.NewJWTServiceWithSecret(testSecret, time.Hour).GenerateTokenUser("not-a-uuid", "")
	require.NoError(t, err)

	status, raw := s.call(t, fiber.MethodPost, "/api/food/listings", token, breadListing())
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[domain.ListingResponse](t, raw)
	assert.Nil(t, created.UserID)

	status, raw = s.call(t, fiber.MethodPost, "/api/food/requests", token, fiber.Map{"foodItemId": created.ID})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	assert.Nil(t, decode[domain.CreateFoodRequestResponse](t, raw).Request.UserID)

	status, _ = s.call(t, fiber.MethodGet, "/api/food/requests", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMetricsLabelUnknownPathsUnderGroups(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.call(t, fiber.MethodGet, "/api/auth/nope", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = s.call(t, fiber.MethodGet, "/api/food/listings/"+uuid.NewString(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	_, raw := s.call(t, fiber.MethodGet, "/metrics", "", nil)
	assert.Contains(t, string(raw), `food_share_http_requests_total{method="GET",path="unmatched",status="404"} 1`)
	assert.Contains(t, string(raw), `food_share_http_requests_total{method="GET",path="/api/food/listings/:id",status="404"} 1`)
	assert.NotContains(t, string(raw), `path="/api/auth"`)
}
