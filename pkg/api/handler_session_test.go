package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiseki-io/kaiseki/ent/menusession"
	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/imagestore"
	"github.com/kaiseki-io/kaiseki/pkg/pipeline"
	"github.com/kaiseki-io/kaiseki/pkg/services"
	testdb "github.com/kaiseki-io/kaiseki/test/database"
)

type apiFixture struct {
	server   *Server
	sessions *services.SessionService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	sessions := services.NewSessionService(client.Client, client.DB(), publisher, 0)
	items := services.NewItemService(client.DB(), publisher)
	tasks := services.NewTaskService(client.Client)
	eventsSvc := services.NewEventService(client.Client)

	store, err := imagestore.NewFSStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{
		Session:   config.DefaultSessionConfig(),
		Stages:    config.DefaultStagesConfig(),
		Queue:     config.DefaultQueueConfig(),
		Stream:    config.DefaultStreamConfig(),
		Retention: config.DefaultRetentionConfig(),
	}
	orch := pipeline.New(sessions, items, tasks, publisher, cfg)

	srv := NewServer(cfg, nil, sessions, eventsSvc, nil, publisher, orch, nil, store, "pod-1")
	return &apiFixture{server: srv, sessions: sessions}
}

func (f *apiFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestCreateSessionValidation(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("accepts a png upload", func(t *testing.T) {
		body, contentType := multipartUpload(t, "image", "menu.png", pngBytes)
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", body)
		req.Header.Set(echo.HeaderContentType, contentType)

		rec := f.do(req)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp CreateSessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, "/v1/sessions/"+resp.SessionID+"/events", resp.StreamURL)
	})

	t.Run("non-image payload is a bad request", func(t *testing.T) {
		body, contentType := multipartUpload(t, "image", "menu.txt", []byte("definitely not an image"))
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", body)
		req.Header.Set(echo.HeaderContentType, contentType)

		assert.Equal(t, http.StatusBadRequest, f.do(req).Code)
	})

	t.Run("missing image part is a bad request", func(t *testing.T) {
		body, contentType := multipartUpload(t, "photo", "menu.png", pngBytes)
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", body)
		req.Header.Set(echo.HeaderContentType, contentType)

		assert.Equal(t, http.StatusBadRequest, f.do(req).Code)
	})
}

func TestCancelSessionIdempotent(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := f.sessions.CreateSession(ctx, id, "ref.jpg", "pod-1")
	require.NoError(t, err)

	rec := f.do(httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+id, nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	session, err := f.sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, menusession.StatusFailed, session.Status)

	t.Run("repeat delete stays accepted", func(t *testing.T) {
		rec := f.do(httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+id, nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		rec := f.do(httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+uuid.New().String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
