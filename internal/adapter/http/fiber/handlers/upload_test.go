package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/mocks"
	"github.com/seu-repo/pos-insight/internal/ports"
	"github.com/seu-repo/pos-insight/internal/service/ingest"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func uploadApp(service ports.IngestService, maxBytes int64) *fiber.App {
	app := fiber.New()
	handler := NewUploadHandler(service, maxBytes, newTestLogger())
	app.Post("/api/v1/uploads", handler.Upload)
	return app
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadHandler_Success(t *testing.T) {
	// Arrange
	var captured *ports.UploadRequest
	mockService := &mocks.MockIngestService{
		UploadFunc: func(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
			captured = req
			return &ports.UploadResult{
				TransactionCount: 42,
				LastUploaded:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	app := uploadApp(mockService, 0)

	body, contentType := multipartBody(t,
		map[string]string{
			"store_id":   "store-1",
			"store_name": "High Street",
			"platform":   "takemypayments",
			"outlet_id":  "OUT-1",
		},
		map[string]string{"export.csv": "Invoice No,Total\nINV-1,4.20\n"},
	)

	req := httptest.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	// Act
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	// Assert
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["success"] != true {
		t.Error("expected success true")
	}
	if result["transactionCount"].(float64) != 42 {
		t.Errorf("expected transactionCount 42, got %v", result["transactionCount"])
	}

	if captured == nil {
		t.Fatal("expected service call")
	}
	if captured.StoreID != "store-1" || captured.OutletID != "OUT-1" {
		t.Errorf("unexpected request: %+v", captured)
	}
	if len(captured.Files) != 1 || captured.Files[0].Name != "export.csv" {
		t.Errorf("unexpected files: %+v", captured.Files)
	}
}

func TestUploadHandler_ParseError(t *testing.T) {
	mockService := &mocks.MockIngestService{
		UploadFunc: func(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
			return nil, &ingest.ParseError{
				Platform:     "takemypayments",
				FoundColumns: []string{"Foo"},
				SampleRow:    map[string]string{"Foo": "1"},
			}
		},
	}
	app := uploadApp(mockService, 0)

	body, contentType := multipartBody(t,
		map[string]string{"store_id": "store-1", "platform": "takemypayments"},
		map[string]string{"export.csv": "Foo\n1\n"},
	)

	req := httptest.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["success"] != false {
		t.Error("expected success false")
	}
	if result["foundColumns"] == nil || result["sampleRow"] == nil {
		t.Error("expected column diagnostics in response")
	}
}

func TestUploadHandler_ValidationError(t *testing.T) {
	mockService := &mocks.MockIngestService{
		UploadFunc: func(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
			return nil, &ingest.ValidationError{Reason: "store_id is required"}
		},
	}
	app := uploadApp(mockService, 0)

	body, contentType := multipartBody(t,
		map[string]string{"platform": "takemypayments"},
		map[string]string{"export.csv": "Invoice No,Total\nINV-1,4.20\n"},
	)

	req := httptest.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUploadHandler_DecodeError(t *testing.T) {
	mockService := &mocks.MockIngestService{
		UploadFunc: func(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
			return nil, &ingest.DecodeError{Name: "export.csv", Err: errors.New("empty file")}
		},
	}
	app := uploadApp(mockService, 0)

	body, contentType := multipartBody(t,
		map[string]string{"store_id": "store-1", "store_name": "High Street", "platform": "takemypayments"},
		map[string]string{"export.csv": ""},
	)

	req := httptest.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	// Unreadable files are a caller problem, not a server failure.
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["error"] != "file is empty or invalid" {
		t.Errorf("unexpected error message: %v", result["error"])
	}
}

func TestUploadHandler_SizeLimit(t *testing.T) {
	mockService := &mocks.MockIngestService{
		UploadFunc: func(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
			t.Error("service must not be called when the upload is too large")
			return nil, nil
		},
	}
	app := uploadApp(mockService, 16)

	body, contentType := multipartBody(t,
		map[string]string{"store_id": "store-1", "platform": "takemypayments"},
		map[string]string{"export.csv": "Invoice No,Total\nINV-1,4.20\nINV-2,5.00\n"},
	)

	req := httptest.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.StatusCode)
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	app := uploadApp(&mocks.MockIngestService{}, 0)

	req := httptest.NewRequest("POST", "/api/v1/uploads", bytes.NewBufferString(`{"store_id":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
