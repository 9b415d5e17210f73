package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nameapi/internal/model"
	"nameapi/internal/repository/memory"
	"nameapi/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newApp keeps fiber's zero-copy defaults (Immutable off) so request values
// reach the services backed by pooled buffers.
func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		Views:        NewViews(),
		ErrorHandler: ErrorHandler(),
	})
}

// newTestApp wires every route on top of a fresh in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *memory.NameMemory) {
	t.Helper()
	repo, err := memory.NewNameMemory()
	require.NoError(t, err)

	app := newApp()
	RegisterRoutes(app, Deps{
		Names:     service.NewNameService(repo),
		Snapshots: service.NewSnapshotService(nil, repo),
	})
	return app, repo
}

func seed(t *testing.T, repo *memory.NameMemory, name, lastName string) *model.Name {
	t.Helper()
	n, err := repo.Create(context.Background(), &model.Name{Name: name, LastName: lastName})
	require.NoError(t, err)
	return n
}

func count(t *testing.T, repo *memory.NameMemory) int {
	t.Helper()
	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	return total
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func doRaw(t *testing.T, app *fiber.App, method, target, contentType, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func doForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()
	return doRaw(t, app, http.MethodPost, target, fiber.MIMEApplicationForm, form.Encode())
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
