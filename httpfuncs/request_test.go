package httpfuncs

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCallRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if apiKey := req.Header.Get("X-API-Key"); apiKey != "test-key" {
			t.Errorf("Expected header %q, got %q", "test-key", apiKey)
		}
		if userAgent := req.Header.Get("User-Agent"); !strings.HasPrefix(userAgent, "Mozilla/5.0") {
			t.Errorf("Expected a browser user agent, got %q", userAgent)
		}
		if page := req.URL.Query().Get("page"); page != "2" {
			t.Errorf("Expected page param %q, got %q", "2", page)
		}
		fmt.Fprint(res, "ok")
	}))
	defer server.Close()

	res, err := CallRequest(
		&RequestArgs{
			Url:     server.URL,
			Method:  "GET",
			Headers: map[string]string{"X-API-Key": "test-key"},
			Params:  map[string]string{"page": "2"},
			Http2:   true,
		},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	body, err := ReadResBody(res)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("Expected body %q, got %q", "ok", string(body))
	}
}

func TestCallRequestCheckStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	// without CheckStatus, the response is returned regardless of the status code
	res, err := CallRequest(
		&RequestArgs{
			Url:    server.URL,
			Method: "GET",
			Http2:  true,
		},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusTeapot {
		t.Errorf("Expected status code 418, got %d", res.StatusCode)
	}

	// with CheckStatus, an error is returned instead
	_, err = CallRequest(
		&RequestArgs{
			Url:         server.URL,
			Method:      "GET",
			Http2:       true,
			CheckStatus: true,
		},
	)
	if err == nil {
		t.Error("Expected an error, got nil")
	}
}

func TestLoadJsonFromResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		fmt.Fprint(res, `{"data": {"id": "r25peq"}}`)
	}))
	defer server.Close()

	res, err := CallRequest(
		&RequestArgs{
			Url:    server.URL,
			Method: "GET",
			Http2:  true,
		},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var decoded struct {
		Data struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	if err := LoadJsonFromResponse(res, &decoded); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if decoded.Data.Id != "r25peq" {
		t.Errorf("Expected ID %q, got %q", "r25peq", decoded.Data.Id)
	}
}

func TestLoadJsonFromBytesInvalid(t *testing.T) {
	var decoded map[string]any
	if err := LoadJsonFromBytes("https://example.com", []byte("<html>"), &decoded); err == nil {
		t.Error("Expected an error for invalid JSON, got nil")
	}
}

func TestGetRandomTime(t *testing.T) {
	for i := 0; i < 20; i++ {
		delay := GetRandomTime(0.5, 1.0)
		if delay < 500*time.Millisecond || delay > time.Second {
			t.Errorf("Expected a delay between 0.5s and 1s, got %v", delay)
		}
	}
}

func TestParamsToString(t *testing.T) {
	if paramsStr := ParamsToString(nil); paramsStr != "" {
		t.Errorf("Expected an empty string, got %q", paramsStr)
	}

	paramsStr := ParamsToString(map[string]string{"q": "+guitar -car"})
	if paramsStr != "q=%2Bguitar+-car" {
		t.Errorf("Expected the query to be escaped, got %q", paramsStr)
	}
}
