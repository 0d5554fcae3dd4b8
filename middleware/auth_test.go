package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zestyflow/models"
	"zestyflow/utils"
)

type mockUserResolver struct {
	FindByIDFunc func(ctx context.Context, id int) (*models.User, error)
}

func (m *mockUserResolver) FindByID(ctx context.Context, id int) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.User{ID: id, Email: "alice@x.com"}, nil
}

func newAuthRouter(tokens *utils.TokenManager, users UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt(ContextUserID),
			"email":   c.GetString(ContextUserEmail),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", 24*time.Hour)
	otherTokens := utils.NewTokenManager("wrong-secret", 24*time.Hour)
	expiredTokens := utils.NewTokenManager("test-secret", -time.Minute)

	valid, err := tokens.Issue(1, "alice@x.com")
	require.NoError(t, err)
	badSignature, err := otherTokens.Issue(1, "alice@x.com")
	require.NoError(t, err)
	expired, err := expiredTokens.Issue(1, "alice@x.com")
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		users        UserResolver
		wantStatus   int
		wantErrField string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + valid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "expired token",
			header:       "Bearer " + expired,
			wantStatus:   http.StatusUnauthorized,
			wantErrField: "token_expired",
		},
		{
			name:         "bad signature",
			header:       "Bearer " + badSignature,
			wantStatus:   http.StatusUnauthorized,
			wantErrField: "invalid_token",
		},
		{
			name:         "garbage token",
			header:       "Bearer not.a.token",
			wantStatus:   http.StatusUnauthorized,
			wantErrField: "invalid_token",
		},
		{
			name:   "user deleted after issuance",
			header: "Bearer " + valid,
			users: &mockUserResolver{
				FindByIDFunc: func(ctx context.Context, id int) (*models.User, error) {
					return nil, assert.AnError
				},
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer " + valid,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := tt.users
			if users == nil {
				users = &mockUserResolver{}
			}
			router := newAuthRouter(tokens, users)

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantErrField != "" {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantErrField, body.Error)
			}
		})
	}
}

func TestAuthMiddleware_AttachesIdentity(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", 24*time.Hour)
	token, err := tokens.Issue(42, "bob@x.com")
	require.NoError(t, err)

	router := newAuthRouter(tokens, &mockUserResolver{
		FindByIDFunc: func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Email: "bob@x.com"}, nil
		},
	})

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "bob@x.com", body["email"])
}
