package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/auth"
	"github.com/henryjobel/evi-learnig-server-site/internal/config"
	"github.com/henryjobel/evi-learnig-server-site/internal/routes"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	// The driver connects lazily, so no Mongo deployment is needed as long
	// as a test never reaches a collection operation.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)

	cfg := config.Config{
		Port:         "5000",
		DatabaseName: "evoLearn_test",
		TokenSecret:  "test-secret",
	}
	return routes.SetupRouter(client, cfg, zap.NewNop().Sugar())
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := testRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/users"},
		{"PUT", "/users/update/someone%40example.com"},
		{"POST", "/courses"},
		{"POST", "/create-payment-intent"},
		{"POST", "/payments"},
		{"GET", "/payments?email=someone%40example.com"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestProtectedRoutesRejectInvalidToken(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/users", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIssueAndLogoutFlow(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"student@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.TokenCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// The issued cookie satisfies the guard on a protected route that does
	// not touch the store.
	req = httptest.NewRequest("GET", "/payments", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	req = httptest.NewRequest("GET", "/logout", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCourseByID_BadHex(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/courses/not-a-hex-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
