package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbeckett/clausewise/internal/model"
)

func TestAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/enhanced_analysis" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["text"] != "some contract" {
			t.Errorf("text = %q", req["text"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"summary": "A contract.",
			"highlights": []map[string]string{
				{"text": "shall not disclose", "category": "High-Risk", "explanation": "strict"},
				{"text": "may assign", "category": "Severe", "explanation": "unknown category"},
			},
			"google_cloud_insights": map[string]any{
				"sentiment":         map[string]any{"score": -0.3, "magnitude": 1.1},
				"readability_score": map[string]any{"score": 27.4, "level": "Complex legal language"},
				"entities":          []map[string]any{{"name": "Acme", "type": "ORGANIZATION", "salience": 0.9}},
			},
		})
	}))
	defer server.Close()

	result, err := NewClient(server.URL).Analyze(context.Background(), "some contract")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Summary != "A contract." {
		t.Errorf("summary = %q", result.Summary)
	}
	if len(result.Highlights) != 2 {
		t.Fatalf("highlights = %d", len(result.Highlights))
	}
	if result.Highlights[0].Category != model.CategoryHighRisk {
		t.Errorf("category = %v", result.Highlights[0].Category)
	}
	if result.Highlights[1].Category != model.CategoryUnknown {
		t.Errorf("unknown category parsed as %v", result.Highlights[1].Category)
	}
	if result.Sentiment == nil || result.Sentiment.Interpretation != "Negative" {
		t.Errorf("sentiment = %+v", result.Sentiment)
	}
	if result.Readability == nil || result.Readability.Level != "Complex legal language" {
		t.Errorf("readability = %+v", result.Readability)
	}
	if len(result.Entities) != 1 || result.Entities[0].MentionText != "Acme" {
		t.Errorf("entities = %+v", result.Entities)
	}
}

func TestAnalyzeInsightsErrorIgnored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"summary":    "A contract.",
			"highlights": []map[string]string{},
			"google_cloud_insights": map[string]any{
				"error":     "Natural Language API failed",
				"sentiment": map[string]any{"score": 0.5, "magnitude": 1.0},
			},
		})
	}))
	defer server.Close()

	result, err := NewClient(server.URL).Analyze(context.Background(), "text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Sentiment != nil {
		t.Error("insights with an error key must be treated as absent")
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Analyze(context.Background(), "   ")
	if KindOf(err) != UserInputError {
		t.Errorf("kind = %v, want UserInputError", KindOf(err))
	}
	if calls != 0 {
		t.Error("empty submission must not reach the network")
	}
}

func TestAnalyzeMissingCore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"summary": ""})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Analyze(context.Background(), "text")
	if KindOf(err) != MissingData {
		t.Errorf("kind = %v, want MissingData", KindOf(err))
	}
}

func TestServerErrorClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "processor exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Analyze(context.Background(), "text")
	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("error type = %T", err)
	}
	if ge.Kind != ServerError || ge.Status != http.StatusInternalServerError {
		t.Errorf("kind=%v status=%d", ge.Kind, ge.Status)
	}
}

func TestNetworkFailureClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := NewClient(server.URL).Analyze(context.Background(), "text")
	if KindOf(err) != NetworkFailure {
		t.Errorf("kind = %v, want NetworkFailure", KindOf(err))
	}
}

func TestExtractDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		f.Close()
		if hdr.Filename != "lease.pdf" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"extracted_text":       "LEASE AGREEMENT ...",
			"document_ai_entities": []map[string]any{{"name": "Landlord", "type": "PERSON"}},
		})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "lease.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	ex, err := NewClient(server.URL).ExtractDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}
	if ex.Text != "LEASE AGREEMENT ..." {
		t.Errorf("text = %q", ex.Text)
	}
	if len(ex.Entities) != 1 || ex.Entities[0].MentionText != "Landlord" {
		t.Errorf("entities = %+v", ex.Entities)
	}
}

func TestExtractDocumentUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.docx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewClient("http://unused").ExtractDocument(context.Background(), path)
	if KindOf(err) != UserInputError {
		t.Errorf("kind = %v, want UserInputError", KindOf(err))
	}
}

func TestExtractDocumentNoText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"extracted_text": "  "})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "blank.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewClient(server.URL).ExtractDocument(context.Background(), path)
	if KindOf(err) != MissingData {
		t.Errorf("kind = %v, want MissingData", KindOf(err))
	}
}

func TestTranslateSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["target_language"] != "Spanish" {
			t.Errorf("target_language = %q", req["target_language"])
		}
		json.NewEncoder(w).Encode(map[string]string{"translated_summary": "Un contrato."})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).TranslateSummary(context.Background(), "A contract.", "Spanish")
	if err != nil {
		t.Fatalf("TranslateSummary: %v", err)
	}
	if got != "Un contrato." {
		t.Errorf("translated = %q", got)
	}
}

func TestTranslateSummaryUnsupportedTarget(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := NewClient(server.URL).TranslateSummary(context.Background(), "s", "Klingon")
	if KindOf(err) != UnsupportedLanguage {
		t.Errorf("kind = %v, want UnsupportedLanguage", KindOf(err))
	}
	if calls != 0 {
		t.Error("unsupported target must fail before any network call")
	}
}

func TestSynthesize(t *testing.T) {
	audio := []byte("mp3 bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["voice_name"] != "en-US-Standard-A" || req["language_code"] != "en-US" {
			t.Errorf("voice fields = %q/%q", req["voice_name"], req["language_code"])
		}
		json.NewEncoder(w).Encode(map[string]string{
			"audio_base64": base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).Synthesize(context.Background(), "read this", "en-US-Standard-A", "en-US")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(got) != string(audio) {
		t.Errorf("audio = %q", got)
	}
}

func TestGenerateChecklistAndAsk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate_checklist":
			json.NewEncoder(w).Encode(map[string]any{"checklist": []string{"Return materials"}})
		case "/ask":
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["question"] == "" || req["document_text"] == "" {
				t.Errorf("request = %+v", req)
			}
			json.NewEncoder(w).Encode(map[string]string{"answer": "Two years."})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := NewClient(server.URL)
	items, err := c.GenerateChecklist(context.Background(), "text")
	if err != nil || len(items) != 1 {
		t.Errorf("checklist = %v, %v", items, err)
	}
	answer, err := c.Ask(context.Background(), "text", "How long is the term?")
	if err != nil || answer != "Two years." {
		t.Errorf("answer = %q, %v", answer, err)
	}

	if _, err := c.Ask(context.Background(), "text", "  "); KindOf(err) != UserInputError {
		t.Errorf("empty question kind = %v, want UserInputError", KindOf(err))
	}
}
