package stages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kaiseki-io/kaiseki/ent"
	"github.com/kaiseki-io/kaiseki/pkg/models"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// Image path values recorded in image_path and the event payload.
const (
	ImagePathSearch    = "search"
	ImagePathSynthesis = "synthesis"
)

// ImageExecutor finds or generates a dish image. Search is tried
// first; any search failure falls through to synthesis. Synthesized
// binaries are uploaded to the image store and referenced by key.
type ImageExecutor struct {
	*Deps
}

// Execute runs one image attempt.
func (e *ImageExecutor) Execute(ctx context.Context, task *ent.Task, attempt int) error {
	return runItemStage(ctx, e.Deps, task, attempt, models.StageImage,
		func(ctx context.Context, item *services.ItemState) (map[string]any, map[string]any, bool, error) {
			return e.findOrSynthesize(ctx, task, item)
		})
}

func (e *ImageExecutor) findOrSynthesize(ctx context.Context, task *ent.Task, item *services.ItemState) (map[string]any, map[string]any, bool, error) {
	name := itemName(item)

	var (
		res       *providers.ImageResult
		path      string
		searchErr error
	)
	if e.Caps.ImageSearch != nil {
		res, searchErr = e.Caps.ImageSearch.FindImage(ctx, name, item.Category, item.Description)
		if searchErr == nil {
			path = ImagePathSearch
		} else if !errors.Is(searchErr, providers.ErrNoImageFound) {
			slog.Debug("Image search failed, trying synthesis", "error", searchErr)
		}
	}

	if res == nil && e.Caps.ImageSynth != nil {
		synth, err := e.Caps.ImageSynth.SynthesizeImage(ctx, name, item.Category, item.Description)
		if err != nil {
			// Prefer surfacing the synthesis error; it ran last.
			return nil, nil, false, err
		}
		res = synth
		path = ImagePathSynthesis
	}

	if res == nil {
		if searchErr != nil {
			return nil, nil, false, searchErr
		}
		return nil, nil, false, providers.NewError("image", providers.KindPermanent,
			errors.New("no image provider enabled"))
	}

	ref := res.URL
	if ref == "" {
		key := fmt.Sprintf("sessions/%s/items/%d", task.SessionID, *task.ItemIndex)
		stored, err := e.Images.Put(ctx, key, res.Bytes, res.ContentType)
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to store synthesized image: %w", err)
		}
		ref = stored
	}

	return map[string]any{"image_ref": ref, "image_path": path},
		map[string]any{"image_ref": ref, "path": path}, path == ImagePathSynthesis, nil
}

// Abandon records the terminal stage failure.
func (e *ImageExecutor) Abandon(ctx context.Context, task *ent.Task, attempt int, cause error) {
	abandonItemStage(ctx, e.Deps, task, attempt, models.StageImage, cause)
}
