package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-manager/internal/config"
)

func TestReportKey(t *testing.T) {
	assert.Equal(t, "reports/7/finance-report-10-2026.csv", ReportKey(7, "finance-report-10-2026.csv"))
	assert.Equal(t, "reports/7/evil.csv", ReportKey(7, "../../evil.csv"))
}

func TestNew_DisabledIsNop(t *testing.T) {
	a := New(config.S3Config{})
	_, ok := a.(NopArchiver)
	assert.True(t, ok)
	assert.NoError(t, a.Put(context.Background(), "k", "text/csv", []byte("x")))
}

func TestS3Archiver_PutsObject(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		body   []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method = r.Method
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := New(config.S3Config{
		Bucket:    "studio",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
	})

	err := a.Put(context.Background(), "reports/1/r.csv", "text/csv", []byte("a,b\n"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/studio/reports/1/r.csv", path)
	assert.Contains(t, string(body), "a,b")
}
