// Package gateway is the HTTP client for the analysis backend: document OCR
// extraction, full analysis, checklist generation, summary translation,
// speech synthesis and question answering. Every call is a single
// request/response exchange; failures come back as *Error with a Kind.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hbeckett/clausewise/internal/logging"
	"github.com/hbeckett/clausewise/internal/model"
)

// Client talks to one backend instance. Safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a gateway client for the given base URL. Requests are
// paced because the backend fronts metered cloud APIs.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 120 * time.Second},
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 2),
	}
}

// mimeTypes maps accepted upload extensions to the mime type the OCR
// processor expects. Anything else is rejected before any network call.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
}

// Extraction is the OCR result for an uploaded file.
type Extraction struct {
	Text     string
	Entities []model.Entity
}

type wireEntity struct {
	Name        string  `json:"name"`
	MentionText string  `json:"mention_text"`
	Type        string  `json:"type"`
	Salience    float64 `json:"salience"`
}

func (w wireEntity) toModel() model.Entity {
	mention := w.MentionText
	if mention == "" {
		mention = w.Name
	}
	return model.Entity{MentionText: mention, Type: w.Type, Salience: w.Salience}
}

// ExtractDocument uploads a file to the OCR endpoint and returns the
// extracted text. A file with no extractable text is MissingData.
func (c *Client) ExtractDocument(ctx context.Context, path string) (Extraction, error) {
	const op = "analyze_with_docai"

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := mimeTypes[ext]; !ok {
		return Extraction{}, &Error{Kind: UserInputError, Op: op,
			Detail: fmt.Sprintf("unsupported file type %q", ext)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Extraction{}, &Error{Kind: UserInputError, Op: op, Err: err}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return Extraction{}, &Error{Kind: NetworkFailure, Op: op, Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return Extraction{}, &Error{Kind: NetworkFailure, Op: op, Err: err}
	}
	mw.Close()

	var out struct {
		ExtractedText string       `json:"extracted_text"`
		Entities      []wireEntity `json:"document_ai_entities"`
	}
	if err := c.do(ctx, op, "/analyze_with_docai", buf.Bytes(), mw.FormDataContentType(), &out); err != nil {
		return Extraction{}, err
	}

	if strings.TrimSpace(out.ExtractedText) == "" {
		return Extraction{}, &Error{Kind: MissingData, Op: op,
			Detail: "no text could be extracted from the document"}
	}

	ex := Extraction{Text: out.ExtractedText}
	for _, e := range out.Entities {
		ex.Entities = append(ex.Entities, e.toModel())
	}
	return ex, nil
}

type wireHighlight struct {
	Text        string `json:"text"`
	Category    string `json:"category"`
	Explanation string `json:"explanation"`
}

type wireInsights struct {
	Sentiment *struct {
		Score          float64 `json:"score"`
		Magnitude      float64 `json:"magnitude"`
		Interpretation string  `json:"interpretation"`
	} `json:"sentiment"`
	Entities         []wireEntity `json:"entities"`
	ReadabilityScore *struct {
		Score float64 `json:"score"`
		Level string  `json:"level"`
	} `json:"readability_score"`
	Error string `json:"error"`
}

// Analyze sends document text to the full-analysis endpoint. An insights
// block carrying an error key is treated as absent; the summary/highlight
// core is required.
func (c *Client) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	const op = "enhanced_analysis"

	if strings.TrimSpace(text) == "" {
		return nil, &Error{Kind: UserInputError, Op: op, Detail: "document text is empty"}
	}

	var out struct {
		Summary    string          `json:"summary"`
		Highlights []wireHighlight `json:"highlights"`
		Insights   *wireInsights   `json:"google_cloud_insights"`
	}
	if err := c.postJSON(ctx, op, "/enhanced_analysis", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}

	if strings.TrimSpace(out.Summary) == "" && len(out.Highlights) == 0 {
		return nil, &Error{Kind: MissingData, Op: op, Detail: "response carried neither summary nor highlights"}
	}

	result := &model.AnalysisResult{Summary: out.Summary}
	for _, h := range out.Highlights {
		result.Highlights = append(result.Highlights, model.Highlight{
			Text:        h.Text,
			Category:    model.ParseCategory(h.Category),
			Explanation: h.Explanation,
		})
	}

	if in := out.Insights; in != nil && in.Error == "" {
		if s := in.Sentiment; s != nil {
			interp := s.Interpretation
			if interp == "" {
				interp = model.InterpretSentiment(s.Score)
			}
			result.Sentiment = &model.Sentiment{Score: s.Score, Magnitude: s.Magnitude, Interpretation: interp}
		}
		if r := in.ReadabilityScore; r != nil {
			result.Readability = &model.Readability{Score: r.Score, Level: r.Level}
		}
		for _, e := range in.Entities {
			result.Entities = append(result.Entities, e.toModel())
		}
	}
	return result, nil
}

// GenerateChecklist asks the backend for the document's obligation checklist.
func (c *Client) GenerateChecklist(ctx context.Context, text string) ([]string, error) {
	const op = "generate_checklist"
	var out struct {
		Checklist []string `json:"checklist"`
	}
	if err := c.postJSON(ctx, op, "/generate_checklist", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return out.Checklist, nil
}

// TranslateSummary translates a summary into the named target language.
func (c *Client) TranslateSummary(ctx context.Context, summary, targetLanguage string) (string, error) {
	const op = "translate_summary"

	if !model.TranslationSupported(targetLanguage) {
		return "", &Error{Kind: UnsupportedLanguage, Op: op,
			Detail: fmt.Sprintf("%q is not a supported translation target", targetLanguage)}
	}

	var out struct {
		TranslatedSummary string `json:"translated_summary"`
	}
	body := map[string]string{"summary": summary, "target_language": targetLanguage}
	if err := c.postJSON(ctx, op, "/translate_summary", body, &out); err != nil {
		return "", err
	}
	if out.TranslatedSummary == "" {
		return "", &Error{Kind: MissingData, Op: op, Detail: "response carried no translated summary"}
	}
	return out.TranslatedSummary, nil
}

// Synthesize requests speech audio for text using the given voice, returning
// the decoded audio bytes.
func (c *Client) Synthesize(ctx context.Context, text, voiceName, languageCode string) ([]byte, error) {
	const op = "text-to-speech"

	var out struct {
		AudioBase64 string `json:"audio_base64"`
	}
	body := map[string]string{
		"text":          text,
		"voice_name":    voiceName,
		"language_code": languageCode,
	}
	if err := c.postJSON(ctx, op, "/text-to-speech", body, &out); err != nil {
		return nil, err
	}
	if out.AudioBase64 == "" {
		return nil, &Error{Kind: MissingData, Op: op, Detail: "response carried no audio payload"}
	}

	audio, err := base64.StdEncoding.DecodeString(out.AudioBase64)
	if err != nil {
		return nil, &Error{Kind: MissingData, Op: op, Err: fmt.Errorf("decode audio: %w", err)}
	}
	return audio, nil
}

// Ask answers a question against the document text.
func (c *Client) Ask(ctx context.Context, documentText, question string) (string, error) {
	const op = "ask"

	if strings.TrimSpace(question) == "" {
		return "", &Error{Kind: UserInputError, Op: op, Detail: "question is empty"}
	}

	var out struct {
		Answer string `json:"answer"`
	}
	body := map[string]string{"document_text": documentText, "question": question}
	if err := c.postJSON(ctx, op, "/ask", body, &out); err != nil {
		return "", err
	}
	if out.Answer == "" {
		return "", &Error{Kind: MissingData, Op: op, Detail: "response carried no answer"}
	}
	return out.Answer, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: NetworkFailure, Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}
	return c.do(ctx, op, path, payload, "application/json", out)
}

func (c *Client) do(ctx context.Context, op, path string, payload []byte, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Kind: NetworkFailure, Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Kind: NetworkFailure, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	logging.Debug("backend request", "op", op, "bytes", len(payload))

	resp, err := c.client.Do(req)
	if err != nil {
		logging.Error("backend request failed", "op", op, "error", err)
		return &Error{Kind: NetworkFailure, Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: NetworkFailure, Op: op, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		logging.Error("backend error", "op", op, "status", resp.StatusCode)
		return &Error{Kind: ServerError, Op: op, Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(respBody))}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: MissingData, Op: op, Err: fmt.Errorf("parse response: %w", err)}
	}
	return nil
}
