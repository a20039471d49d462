package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// allowedUploadTypes are the accepted menu photo content types, keyed by
// the sniffed type of the uploaded bytes. The client-declared type is
// ignored.
var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// createSessionHandler handles POST /v1/sessions.
// Accepts a multipart upload with an "image" part, stores the photo,
// creates the session, and starts the pipeline. Returns 202: processing
// continues on the event stream.
func (s *Server) createSessionHandler(c *echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'image' is required")
	}
	if fh.Size > s.cfg.Session.MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image exceeds %d bytes", s.cfg.Session.MaxUploadBytes))
	}

	file, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded image")
	}
	defer func() { _ = file.Close() }()

	// +1 so an upload lying about its size still trips the cap.
	data, err := io.ReadAll(io.LimitReader(file, s.cfg.Session.MaxUploadBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded image")
	}
	if int64(len(data)) > s.cfg.Session.MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image exceeds %d bytes", s.cfg.Session.MaxUploadBytes))
	}

	contentType := http.DetectContentType(data)
	if !allowedUploadTypes[contentType] {
		return echo.NewHTTPError(http.StatusBadRequest,
			"image must be JPEG, PNG, or WebP")
	}

	ctx := c.Request().Context()
	sessionID := uuid.New().String()

	uploadRef, err := s.images.Put(ctx, "sessions/"+sessionID+"/upload", data, contentType)
	if err != nil {
		return mapServiceError(err)
	}

	session, err := s.sessions.CreateSession(ctx, sessionID, uploadRef, s.podID)
	if err != nil {
		return mapServiceError(err)
	}

	if _, err := s.publisher.Publish(ctx, session.ID, events.KindSessionCreated, nil); err != nil {
		return mapServiceError(err)
	}
	if err := s.orchestrator.StartSession(ctx, session.ID); err != nil {
		s.orchestrator.FailSession(ctx, session.ID, "failed to start pipeline")
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &CreateSessionResponse{
		SessionID: session.ID,
		Status:    string(session.Status),
		StreamURL: "/v1/sessions/" + session.ID + "/events",
	})
}

// getSessionHandler handles GET /v1/sessions/:id.
// Returns the full session snapshot with last_seq, so a client can
// resume the event stream from a consistent cursor.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	snap, err := s.sessions.Snapshot(c.Request().Context(), sessionID)
	if err != nil {
		// Soft-deleted sessions are 410 only on the stream endpoint;
		// the snapshot surface treats them as gone entirely.
		if errors.Is(err, services.ErrGone) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// cancelSessionHandler handles DELETE /v1/sessions/:id.
// Sets the cancel flag and resolves the session; in-flight stage work
// notices the flag at its next checkpoint. Cancelling a session that
// already finished (or was already flagged) is an idempotent no-op.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	ctx := c.Request().Context()

	applied, err := s.sessions.RequestCancel(ctx, sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	if applied {
		s.orchestrator.Cancel(ctx, sessionID)
	}

	return c.JSON(http.StatusAccepted, &CancelResponse{
		SessionID: sessionID,
		Message:   "cancellation requested",
	})
}

// getUploadHandler handles GET /v1/sessions/:id/image, serving the
// original uploaded menu photo.
func (s *Server) getUploadHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	ctx := c.Request().Context()

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	data, contentType, err := s.images.Get(ctx, session.UploadRef)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "upload not found")
	}
	return c.Blob(http.StatusOK, contentType, data)
}

// getItemImageHandler handles GET /v1/items/image/*, serving stored
// item image blobs by reference.
func (s *Server) getItemImageHandler(c *echo.Context) error {
	ref := c.Param("*")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image ref is required")
	}

	data, contentType, err := s.images.Get(c.Request().Context(), ref)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "image not found")
	}
	return c.Blob(http.StatusOK, contentType, data)
}
