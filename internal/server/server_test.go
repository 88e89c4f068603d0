package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/internal/client"
	"github.com/GGmuzem/web-calculator/internal/config"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localAddr заменяет адрес "все интерфейсы" на loopback
func localAddr(t *testing.T, addr string) string {
	t.Helper()
	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	return net.JoinHostPort("127.0.0.1", port)
}

func TestServer_StartAndShutdown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>calc</html>"), 0644))

	cfg := &config.Config{
		Port:            "0",
		GRPCPort:        "0",
		StaticDir:       dir,
		IndexFile:       "index.html",
		ShutdownTimeout: 5 * time.Second,
	}

	srv := New(cfg)
	require.NoError(t, srv.Start())

	httpBase := "http://" + localAddr(t, srv.HTTPAddr())

	// Статика
	resp, err := http.Get(httpBase + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "calc")

	// HTTP API
	resp, err = http.Post(httpBase+"/api/calculate", "application/json", bytes.NewBufferString(`{"num1": 6, "num2": 7, "operator": "*"}`))
	require.NoError(t, err)
	var calcResp models.CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&calcResp))
	resp.Body.Close()
	require.NotNil(t, calcResp.Result)
	assert.Equal(t, 42.0, *calcResp.Result)

	// gRPC API
	grpcClient, err := client.NewGRPCClient(localAddr(t, srv.GRPCAddr()))
	require.NoError(t, err)
	defer grpcClient.Close()

	result, err := grpcClient.Calculate(context.Background(), models.CalculateRequest{Num1: 10, Num2: 4, Operator: "-"})
	require.NoError(t, err)
	assert.Equal(t, 6.0, result)

	_, err = grpcClient.Calculate(context.Background(), models.CalculateRequest{Num1: 1, Num2: 0, Operator: "/"})
	assert.ErrorIs(t, err, calculate.ErrDivisionByZero)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, err = http.Get(httpBase + "/")
	assert.Error(t, err, "после остановки сервер не должен принимать соединения")
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	lis, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer lis.Close()

	_, port, err := net.SplitHostPort(lis.Addr().String())
	require.NoError(t, err)

	srv := New(&config.Config{Port: "0", GRPCPort: port, StaticDir: ".", IndexFile: "index.html"})
	err = srv.Start()
	assert.ErrorContains(t, err, "gRPC")
}
