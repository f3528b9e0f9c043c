package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMX(req))
	req.Header.Set("Hx-Request", "TRUE")
	assert.True(t, IsHTMX(req))
	assert.True(t, WantsPartial(req))
}

func TestHTMXResponse_ToastAndPush(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Toast("Müşteri silindi", toastSuccess).PushURL(PathCustomers)

	var payload map[string]toast
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("Hx-Trigger")), &payload))
	assert.Equal(t, toast{Message: "Müşteri silindi", Type: "success"}, payload["showToast"])
	assert.Equal(t, PathCustomers, rec.Header().Get("Hx-Push-Url"))
}

func TestHTMXResponse_Redirect(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Redirect(PathLogin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, PathLogin, rec.Header().Get("Hx-Redirect"))
}

func TestSetHXTrigger_NoPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	SetHXTrigger(rec, "refresh", nil)
	assert.JSONEq(t, `{"refresh":true}`, rec.Header().Get("Hx-Trigger"))
}
