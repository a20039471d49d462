// Package providers defines the capability contracts over external
// AI and search services, plus the adapters implementing them.
//
// Adapters are stateless aside from their rate buckets. Every adapter
// enforces a hard per-call timeout and classifies failures; see
// errors.go for the taxonomy the queue runtime retries on.
package providers

import "context"

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Box is a bounding region: four corners, clockwise from top-left.
type Box [4]Point

// Token is one recognized text fragment with its location.
type Token struct {
	Text string `json:"text"`
	Box  Box    `json:"box"`
}

// ExtractResult is the output of text extraction over a menu photo.
type ExtractResult struct {
	Tokens   []Token `json:"tokens"`
	FullText string  `json:"full_text"`
}

// CategorizedItem is one menu entry as grouped by the categorizer.
type CategorizedItem struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// Category is an ordered group of menu entries.
type Category struct {
	Name  string            `json:"name"`
	Items []CategorizedItem `json:"items"`
}

// TranslateResult is a single translation.
type TranslateResult struct {
	Text         string `json:"text"`
	DetectedLang string `json:"detected_lang,omitempty"`
}

// DescribeResult is a natural-language dish description.
type DescribeResult struct {
	Description string `json:"description"`
}

// AllergenEntry is one detected allergen.
type AllergenEntry struct {
	Name       string `json:"name"`
	Severity   string `json:"severity,omitempty"`
	Likelihood string `json:"likelihood,omitempty"`
	Source     string `json:"source,omitempty"`
}

// AllergenResult is the allergen detection output.
type AllergenResult struct {
	Entries    []AllergenEntry `json:"entries"`
	Confidence float64         `json:"confidence"`
}

// IngredientEntry is one detected ingredient.
type IngredientEntry struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// IngredientResult is the ingredient detection output.
type IngredientResult struct {
	Ingredients []IngredientEntry `json:"ingredients"`
	Confidence  float64           `json:"confidence"`
}

// ImageResult is a found or synthesized dish image. Exactly one of URL
// and Bytes is set; the image executor uploads Bytes to the image store.
type ImageResult struct {
	URL         string `json:"url,omitempty"`
	Bytes       []byte `json:"-"`
	ContentType string `json:"content_type,omitempty"`
	Attribution string `json:"attribution,omitempty"`
}

// TextExtractor recognizes text in a menu photograph.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (*ExtractResult, error)
}

// MenuCategorizer groups extracted text into categories and items.
type MenuCategorizer interface {
	CategorizeMenu(ctx context.Context, fullText string, tokens []Token) ([]Category, error)
}

// Translator translates a single text.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*TranslateResult, error)
}

// Describer produces a description for a dish.
type Describer interface {
	Describe(ctx context.Context, name, category string) (*DescribeResult, error)
}

// AllergenDetector extracts likely allergens for a dish.
type AllergenDetector interface {
	DetectAllergens(ctx context.Context, name, category string) (*AllergenResult, error)
}

// IngredientDetector extracts likely ingredients for a dish.
type IngredientDetector interface {
	DetectIngredients(ctx context.Context, name, category string) (*IngredientResult, error)
}

// ImageFinder searches for a representative dish image.
type ImageFinder interface {
	FindImage(ctx context.Context, name, category, description string) (*ImageResult, error)
}

// ImageSynthesizer generates a dish image when search comes up empty.
type ImageSynthesizer interface {
	SynthesizeImage(ctx context.Context, name, category, description string) (*ImageResult, error)
}

// Capabilities is the explicitly-injected bundle of provider handles
// the executors receive at construction. Nil fields mean the provider
// is disabled; the consuming stage takes its fallback path.
type Capabilities struct {
	Extractor          TextExtractor
	Categorizer        MenuCategorizer
	PrimaryTranslator  Translator
	FallbackTranslator Translator
	Describer          Describer
	Allergens          AllergenDetector
	Ingredients        IngredientDetector
	ImageSearch        ImageFinder
	ImageSynth         ImageSynthesizer
}
