package food_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgervoice/internal/food"
	handler "github.com/MrJamesThe3rd/ledgervoice/internal/http/food"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	// 2026-09-02 is a Wednesday.
	ref := time.Date(2026, 9, 2, 10, 30, 0, 0, time.Local)
	svc := food.NewServiceAt(func() time.Time { return ref })

	r := chi.NewRouter()
	handler.NewHandler(svc).Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func TestHandler_Preview(t *testing.T) {
	srv := newServer(t)

	body := `{"name":"우유","quantity":"2","unit":"팩","location":"냉장고","expiryText":"모레"}`

	resp, err := http.Post(srv.URL+"/preview", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Record struct {
			Name            string `json:"name"`
			Location        string `json:"location"`
			ExpiryDayOffset *int   `json:"expiryDayOffset"`
		} `json:"record"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "우유", got.Record.Name)
	assert.Equal(t, "냉장", got.Record.Location)
	require.NotNil(t, got.Record.ExpiryDayOffset)
	assert.Equal(t, 2, *got.Record.ExpiryDayOffset)
	assert.Equal(t, "우유 2팩 냉장 2일 후 등록 맞나요? 등록할까요?", got.Message)
}

func TestHandler_Confirm(t *testing.T) {
	srv := newServer(t)

	body := `{"name":"두부","expiryDays":"3"}`

	resp, err := http.Post(srv.URL+"/confirm", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Success  bool   `json:"success"`
		DeepLink string `json:"deepLink"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.True(t, got.Success)
	assert.Contains(t, got.DeepLink, "route=%2Ffood%2Fexpiry")
	assert.Contains(t, got.DeepLink, "intent=upsert")
	assert.Contains(t, got.DeepLink, "expiryDays=3")
	assert.Contains(t, got.DeepLink, "autoSubmit=true&confirmed=true")
}

func TestHandler_UpsertNeverAutoSubmits(t *testing.T) {
	srv := newServer(t)

	body := `{"name":"세제","location":"상온"}`

	resp, err := http.Post(srv.URL+"/upsert", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		DeepLink string `json:"deepLink"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.NotContains(t, got.DeepLink, "autoSubmit")
	assert.Equal(t, "식재료/생활용품 등록 화면을 엽니다", got.Message)
}
