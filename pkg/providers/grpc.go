package providers

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kaiseki-io/kaiseki/pkg/config"
	menuv1 "github.com/kaiseki-io/kaiseki/proto"
)

// MenuIntelClient fronts the vision/LLM sidecar over gRPC. It backs
// the extract, categorize, describe, allergens, ingredients, and image
// synthesis capabilities with one shared connection and one rate bucket.
type MenuIntelClient struct {
	conn   *grpc.ClientConn
	client menuv1.MenuIntelServiceClient
	guard  *callGuard
}

// Compile-time interface checks.
var (
	_ TextExtractor      = (*MenuIntelClient)(nil)
	_ MenuCategorizer    = (*MenuIntelClient)(nil)
	_ Describer          = (*MenuIntelClient)(nil)
	_ AllergenDetector   = (*MenuIntelClient)(nil)
	_ IngredientDetector = (*MenuIntelClient)(nil)
	_ ImageSynthesizer   = (*MenuIntelClient)(nil)
)

// NewMenuIntelClient creates the sidecar client.
// grpc.NewClient dials lazily; the first RPC establishes the connection.
func NewMenuIntelClient(cfg config.ProviderConfig) (*MenuIntelClient, error) {
	addr := cfg.Endpoint
	if v := os.Getenv("MENU_INTEL_ADDR"); v != "" {
		addr = v
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to menu intel service at %s: %w", addr, err)
	}
	return &MenuIntelClient{
		conn:   conn,
		client: menuv1.NewMenuIntelServiceClient(conn),
		guard:  newCallGuard("menu_intel", cfg),
	}, nil
}

// Close tears down the underlying connection.
func (c *MenuIntelClient) Close() error {
	return c.conn.Close()
}

// ExtractText recognizes text and bounding boxes in a menu photo.
func (c *MenuIntelClient) ExtractText(ctx context.Context, image []byte) (*ExtractResult, error) {
	var resp *menuv1.ExtractTextResponse
	err := c.guard.do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.client.ExtractText(ctx, &menuv1.ExtractTextRequest{Image: image})
		return callErr
	})
	if err != nil {
		return nil, NewError("menu_intel", classifyGRPC(err), fmt.Errorf("ExtractText: %w", err))
	}

	result := &ExtractResult{
		FullText: resp.GetFullText(),
		Tokens:   make([]Token, 0, len(resp.GetTokens())),
	}
	for _, t := range resp.GetTokens() {
		result.Tokens = append(result.Tokens, tokenFromProto(t))
	}
	return result, nil
}

// CategorizeMenu groups extracted text into ordered categories.
func (c *MenuIntelClient) CategorizeMenu(ctx context.Context, fullText string, tokens []Token) ([]Category, error) {
	req := &menuv1.CategorizeMenuRequest{FullText: fullText}
	for _, t := range tokens {
		req.Tokens = append(req.Tokens, tokenToProto(t))
	}

	var resp *menuv1.CategorizeMenuResponse
	err := c.guard.do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.client.CategorizeMenu(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, NewError("menu_intel", classifyGRPC(err), fmt.Errorf("CategorizeMenu: %w", err))
	}

	categories := make([]Category, 0, len(resp.GetCategories()))
	for _, pc := range resp.GetCategories() {
		cat := Category{Name: pc.GetName()}
		for _, pi := range pc.GetItems() {
			cat.Items = append(cat.Items, CategorizedItem{Name: pi.GetName(), Price: pi.GetPrice()})
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// Describe produces a short dish description.
func (c *MenuIntelClient) Describe(ctx context.Context, name, category string) (*DescribeResult, error) {
	var resp *menuv1.DescribeResponse
	err := c.guard.do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.client.Describe(ctx, &menuv1.DescribeRequest{Name: name, Category: category})
		return callErr
	})
	if err != nil {
		return nil, NewError("menu_intel", classifyGRPC(err), fmt.Errorf("Describe: %w", err))
	}
	return &DescribeResult{Description: resp.GetDescription()}, nil
}

// DetectAllergens extracts likely allergens for a dish.
func (c *MenuIntelClient) DetectAllergens(ctx context.Context, name, category string) (*AllergenResult, error) {
	var resp *menuv1.DetectAllergensResponse
	err := c.guard.do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.client.DetectAllergens(ctx, &menuv1.DetectRequest{Name: name, Category: category})
		return callErr
	})
	if err != nil {
		return nil, NewError("menu_intel", classifyGRPC(err), fmt.Errorf("DetectAllergens: %w", err))
	}

	result := &AllergenResult{Confidence: resp.GetConfidence()}
	for _, e := range resp.GetEntries() {
		result.Entries = append(result.Entries, AllergenEntry{
			Name:       e.GetName(),
			Severity:   e.GetSeverity(),
			Likelihood: e.GetLikelihood(),
			Source:     e.GetSource(),
		})
	}
	return result, nil
}

// DetectIngredients extracts likely ingredients for a dish.
func (c *MenuIntelClient) DetectIngredients(ctx context.Context, name, category string) (*IngredientResult, error) {
	var resp *menuv1.DetectIngredientsResponse
	err := c.guard.do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.client.DetectIngredients(ctx, &menuv1.DetectRequest{Name: name, Category: category})
		return callErr
	})
	if err != nil {
		return nil, NewError("menu_intel", classifyGRPC(err), fmt.Errorf("DetectIngredients: %w", err))
	}

	result := &IngredientResult{Confidence: resp.GetConfidence()}
	for _, e := range resp.GetIngredients() {
		result.Ingredients = append(result.Ingredients, IngredientEntry{Name: e.GetName(), Role: e.GetRole()})
	}
	return result, nil
}

// SynthesizeImage generates a dish image.
func (c *MenuIntelClient) SynthesizeImage(ctx context.Context, name, category, description string) (*ImageResult, error) {
	var resp *menuv1.SynthesizeImageResponse
	err := c.guard.do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.client.SynthesizeImage(ctx, &menuv1.SynthesizeImageRequest{
			Name:        name,
			Category:    category,
			Description: description,
		})
		return callErr
	})
	if err != nil {
		return nil, NewError("menu_intel", classifyGRPC(err), fmt.Errorf("SynthesizeImage: %w", err))
	}
	return &ImageResult{Bytes: resp.GetImage(), ContentType: resp.GetContentType()}, nil
}

func tokenFromProto(t *menuv1.Token) Token {
	token := Token{Text: t.GetText()}
	for i, p := range t.GetBox().GetCorners() {
		if i >= len(token.Box) {
			break
		}
		token.Box[i] = Point{X: int(p.GetX()), Y: int(p.GetY())}
	}
	return token
}

func tokenToProto(t Token) *menuv1.Token {
	box := &menuv1.BoundingBox{}
	for _, p := range t.Box {
		box.Corners = append(box.Corners, &menuv1.Point{X: int32(p.X), Y: int32(p.Y)})
	}
	return &menuv1.Token{Text: t.Text, Box: box}
}
