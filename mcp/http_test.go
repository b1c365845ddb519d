package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeHTTPResponse(t *testing.T, resp *http.Response) testResponse {
	t.Helper()
	var out testResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServeHTTP_Stateless(t *testing.T) {
	srv := httptest.NewServer(NewServer(testService(t)).Handler())
	defer srv.Close()

	// tools/call works without a prior initialize.
	resp := postJSON(t, srv.URL+EndpointPath,
		`{"jsonrpc":"2.0","id":"a","method":"tools/call","params":{"name":"get_headlines","arguments":{"limit":1}}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	out := decodeHTTPResponse(t, resp)
	assert.Equal(t, json.RawMessage(`"a"`), out.ID)
	require.Nil(t, out.Error)

	var result toolsCallResult
	require.NoError(t, json.Unmarshal(out.Result, &result))
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, `"sources": [`)
	assert.Contains(t, result.Content[0].Text, `"Bitcoin rallies"`)
}

func TestServeHTTP_Initialize(t *testing.T) {
	srv := httptest.NewServer(NewServer(testService(t)).Handler())
	defer srv.Close()

	data, err := json.Marshal(initMessages()[0])
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+EndpointPath, string(data))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result initializeResult
	require.NoError(t, json.Unmarshal(decodeHTTPResponse(t, resp).Result, &result))
	assert.Equal(t, protocolVersion, result.ProtocolVersion)
}

func TestServeHTTP_Notification(t *testing.T) {
	srv := httptest.NewServer(NewServer(testService(t)).Handler())
	defer srv.Close()

	resp := postJSON(t, srv.URL+EndpointPath, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestServeHTTP_ParseError(t *testing.T) {
	srv := httptest.NewServer(NewServer(testService(t)).Handler())
	defer srv.Close()

	resp := postJSON(t, srv.URL+EndpointPath, `{"jsonrpc":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeHTTPResponse(t, resp)
	require.NotNil(t, out.Error)
	assert.Equal(t, codeParseError, out.Error.Code)
}

func TestServeHTTP_MethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(NewServer(testService(t)).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + EndpointPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.MethodPost, resp.Header.Get("Allow"))
}

func TestServeHTTP_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	body := bytes.Repeat([]byte("a"), maxMessageSize+1)
	req := httptest.NewRequest(http.MethodPost, EndpointPath, bytes.NewReader(body))

	NewServer(testService(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServeHTTP_BrokenBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, EndpointPath, iotest.ErrReader(errors.New("connection reset")))

	NewServer(testService(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp testResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidRequest, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "connection reset")
}

func TestHandler_Healthz(t *testing.T) {
	srv := httptest.NewServer(NewServer(testService(t)).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewHTTPServer_Validation(t *testing.T) {
	_, err := NewHTTPServer(HTTPServerConfig{Handler: http.NotFoundHandler()})
	assert.ErrorIs(t, err, ErrAddressRequired)

	_, err = NewHTTPServer(HTTPServerConfig{Address: "127.0.0.1:0"})
	assert.ErrorIs(t, err, ErrHandlerRequired)
}

func TestHTTPServer_Serve(t *testing.T) {
	server, err := NewHTTPServer(HTTPServerConfig{
		Address:         "127.0.0.1:0",
		Handler:         NewServer(testService(t)).Handler(),
		ShutdownTimeout: time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()

	select {
	case <-server.Ready():
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not become ready")
	}

	resp := postJSON(t, "http://"+server.Addr().String()+EndpointPath, `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
