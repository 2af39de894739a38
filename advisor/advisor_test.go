package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adviceServer(t *testing.T, status int, inner string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		require.NotEmpty(t, req.Contents)

		w.WriteHeader(status)
		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: inner}}}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestProjectAdvice(t *testing.T) {
	inner := `{"summary":"Use a Cortex-M4 MCU.","recommendedTools":["STM32F4","MPU-6050"],"proTips":["Decouple every supply pin."]}`
	srv := adviceServer(t, http.StatusOK, inner)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	advice, err := client.ProjectAdvice(context.Background(), "Self-balancing robot controller")
	require.NoError(t, err)

	assert.Equal(t, "Use a Cortex-M4 MCU.", advice.Summary)
	assert.Equal(t, []string{"STM32F4", "MPU-6050"}, advice.RecommendedTools)
	assert.Equal(t, []string{"Decouple every supply pin."}, advice.ProTips)
}

func TestProjectAdviceEmptyDescription(t *testing.T) {
	client := NewClient("test-key")
	_, err := client.ProjectAdvice(context.Background(), "")
	assert.Error(t, err)
}

func TestProjectAdviceServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.ProjectAdvice(context.Background(), "LED driver")
	assert.Error(t, err)
}

func TestProjectAdviceMalformedInnerJSON(t *testing.T) {
	srv := adviceServer(t, http.StatusOK, "not json at all")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.ProjectAdvice(context.Background(), "LED driver")
	assert.Error(t, err)
}
