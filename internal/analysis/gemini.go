package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kaagyebi/lumea-api/internal/models"
)

var ErrEmptyResponse = errors.New("analysis: empty model response")

const prompt = `You are a dermatology assistant. Analyze the face in this image and
answer with a single JSON object using exactly these keys:
"tone" (string), "skinType" (string), "conditions" (array of strings),
"skinAge" (number), "skinHealth" (string), "poreVisibility" (string),
"texture" (string), "oilLevel" (string), "precautions" (array of strings),
"overallScore" (number 0-100), "skinSummary" (string),
"quantitativeAnalysis" (object of numeric metrics).
Do not include any text outside the JSON object.`

type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	return genai.NewClient(ctx, option.WithAPIKey(apiKey))
}

func NewGeminiAnalyzer(client *genai.Client, model string) *GeminiAnalyzer {
	return &GeminiAnalyzer{client: client, model: model}
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, img Image) (models.SkinAnalysis, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)

	format := strings.TrimPrefix(img.ContentType, "image/")
	if format == "" {
		format = "jpeg"
	}

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, img.Data),
		genai.Text(prompt),
	)
	if err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("gemini generate: %w", err)
	}

	return Parse(responseText(resp))
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		break
	}
	return sb.String()
}

// Parse decodes a model reply. Markdown code fences around the JSON are
// tolerated, and so are keys of the wrong type: those come back zero.
// Only a reply that is not a JSON object is an error.
func Parse(raw string) (models.SkinAnalysis, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return models.SkinAnalysis{}, ErrEmptyResponse
	}

	var r reply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("analysis: decode reply: %w", err)
	}
	return r.analysis(), nil
}

var _ Analyzer = (*GeminiAnalyzer)(nil)
