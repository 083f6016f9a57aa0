package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcherng/ledgerkit/internal/auth"
)

func TestService_Exchange(t *testing.T) {
	svc := auth.NewService("hunter2", time.Hour)

	t.Run("Success", func(t *testing.T) {
		token, expiresAt, err := svc.Exchange("hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

		assert.NoError(t, svc.Verify(token))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		_, _, err := svc.Exchange("guess")
		assert.ErrorIs(t, err, auth.ErrBadSecret)
	})
}

func TestService_Verify(t *testing.T) {
	svc := auth.NewService("hunter2", time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		assert.ErrorIs(t, svc.Verify("not.a.token"), auth.ErrInvalidToken)
	})

	t.Run("WrongKey", func(t *testing.T) {
		other := auth.NewService("different", time.Hour)
		token, _, err := other.Exchange("different")
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Verify(token), auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		shortLived := auth.NewService("hunter2", -time.Minute)
		token, _, err := shortLived.Exchange("hunter2")
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Verify(token), auth.ErrInvalidToken)
	})
}

func TestService_Middleware(t *testing.T) {
	svc := auth.NewService("hunter2", time.Hour)

	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Authorized", func(t *testing.T) {
		token, _, err := svc.Exchange("hunter2")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
