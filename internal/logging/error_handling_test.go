package logging

import (
	"bytes"
	"database/sql"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeClose(t *testing.T) {
	t.Run("closes response body without logging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Country_Name,Type,Data_Description,Value\n"))
		}))
		defer server.Close()

		resp, err := http.Get(server.URL)
		require.NoError(t, err)

		SafeCloseWithLogging(resp.Body, logger, "download_dataset")

		assert.Empty(t, buf.String())
	})

	t.Run("logs error when close fails", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{err: assert.AnError}, logger, "close_store")

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to close resource"`)
		assert.Contains(t, output, `"operation":"close_store"`)
	})

	t.Run("nil closer is a no-op", func(t *testing.T) {
		SafeCloseWithLogging(nil, nil, "nothing")
	})
}

func TestSafeRollback(t *testing.T) {
	t.Run("logs rollback errors", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeRollbackWithLogging(&mockTransaction{rollbackErr: assert.AnError}, logger, "import_records")

		output := buf.String()
		assert.Contains(t, output, `"msg":"failed to rollback transaction"`)
		assert.Contains(t, output, `"operation":"import_records"`)
		assert.Contains(t, output, `"component":"record_store"`)
	})

	t.Run("ignores already committed transactions", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeRollbackWithLogging(&mockTransaction{rollbackErr: sql.ErrTxDone}, logger, "import_records")

		assert.Empty(t, buf.String())
	})

	t.Run("successful rollback is silent", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeRollbackWithLogging(&mockTransaction{}, logger, "import_records")

		assert.Empty(t, buf.String())
	})
}

func TestHandleDeferredError(t *testing.T) {
	t.Run("surfaces deferred failure when function succeeded", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		testFunc := func() (err error) {
			defer HandleDeferredError(&err, func() error {
				return assert.AnError
			}, logger, "close_snapshot")

			return nil
		}

		err := testFunc()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "close_snapshot")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, buf.String(), `"msg":"deferred operation failed"`)
	})

	t.Run("keeps original error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)
		originalErr := sql.ErrNoRows

		testFunc := func() (err error) {
			defer HandleDeferredError(&err, func() error {
				return assert.AnError
			}, logger, "close_snapshot")

			return originalErr
		}

		err := testFunc()
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}

type errorCloser struct {
	err error
}

func (e *errorCloser) Close() error {
	return e.err
}

type mockTransaction struct {
	rollbackErr error
}

func (m *mockTransaction) Rollback() error {
	return m.rollbackErr
}
