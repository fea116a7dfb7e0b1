package navigate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/MrJamesThe3rd/ledgervoice/internal/http/navigate"
	"github.com/MrJamesThe3rd/ledgervoice/internal/navigate"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	handler.NewHandler(navigate.NewService()).Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func TestHandler_Feature(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/feature", "application/json", strings.NewReader(`{"feature":"냉장고"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Success  bool   `json:"success"`
		DeepLink string `json:"deepLink"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.True(t, got.Success)
	assert.Equal(t, "smartledger://nav/open?route=%2Ffood%2Fexpiry", got.DeepLink)
	assert.Equal(t, "유통기한을(를) 엽니다", got.Message)
}

func TestHandler_Dashboard(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/dashboard", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		DeepLink string `json:"deepLink"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "smartledger://dashboard", got.DeepLink)
}

func TestHandler_ReceiptScan(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/receipt-scan", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		DeepLink string `json:"deepLink"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "smartledger://nav/open?route=%2Ftransaction%2Fadd", got.DeepLink)
	assert.Contains(t, got.Message, "영수증 아이콘")
}
