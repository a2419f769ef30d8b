package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coffee-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCartCookie = "cart_id"

func resolveCartKey(t *testing.T, r *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var key string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		key, ok = utils.GetCartKeyFromContext(r.Context())
		require.True(t, ok)
	})

	rec := httptest.NewRecorder()
	CartKey(testCartCookie)(next).ServeHTTP(rec, r)
	return key, rec
}

func TestCartKeyAuthenticatedUser(t *testing.T) {
	userID := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r = r.WithContext(utils.SetUserContext(r.Context(), userID, "user"))

	key, rec := resolveCartKey(t, r)

	assert.Equal(t, "user:"+userID.String(), key)
	assert.Empty(t, rec.Result().Cookies())
}

func TestCartKeyForgedUserIDCookie(t *testing.T) {
	victimID := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.AddCookie(&http.Cookie{Name: testCartCookie, Value: victimID.String()})

	key, _ := resolveCartKey(t, r)

	assert.Equal(t, "anon:"+victimID.String(), key)
	assert.NotEqual(t, "user:"+victimID.String(), key)
}

func TestCartKeyMintsCookieOnFirstVisit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)

	key, rec := resolveCartKey(t, r)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCartCookie, cookies[0].Name)

	id, err := uuid.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "anon:"+id.String(), key)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCartKeyRejectsTamperedCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.AddCookie(&http.Cookie{Name: testCartCookie, Value: "not-a-server-minted-value"})

	key, rec := resolveCartKey(t, r)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	id, err := uuid.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "anon:"+id.String(), key)
}

func TestCartKeyReusesValidCookie(t *testing.T) {
	id := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.AddCookie(&http.Cookie{Name: testCartCookie, Value: id.String()})

	key, rec := resolveCartKey(t, r)

	assert.Equal(t, "anon:"+id.String(), key)
	assert.Empty(t, rec.Result().Cookies())
}
