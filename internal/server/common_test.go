package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/documents"
	"github.com/multimeric/flapison/internal/config"
	"github.com/multimeric/flapison/internal/fixtures"
	"github.com/multimeric/flapison/internal/server"
)

var _testConfig *config.Config
var _testServer *server.FiberServer

var testEnv = map[string]string{
	"PORT":                 "5000",
	"ENV":                  "development",
	"DEBUG":                "false",
	"SERVICE_NAME":         "flapison-tests",
	"MAX_INCLUDE_DEPTH":    "3",
	"DEFAULT_PAGE_SIZE":    "10",
	"MAX_PAGE_SIZE":        "50",
	"RATE_LIMITER_MAX":     "4000",
	"RATE_LIMITER_EXP_SEC": "60",
}

func initTestServer(t *testing.T) {
	for key, value := range testEnv {
		t.Setenv(key, value)
	}

	logger := server.DefaultLogger()
	cfg := config.NewConfig(logger, "../../.env")
	_testConfig = &cfg
	ctx := context.Background()

	logger.InfoContext(ctx, "Building test server...")
	_testServer = server.New(ctx, logger, cfg)
	logger.InfoContext(ctx, "Finished building test server")
}

func GetTestConfig(t *testing.T) *config.Config {
	if _testConfig == nil {
		initTestServer(t)
	}

	return _testConfig
}

func GetTestServer(t *testing.T) *server.FiberServer {
	if _testServer == nil {
		initTestServer(t)
		_testServer.RegisterFiberRoutes()
	}

	return _testServer
}

func GetTestDataset(t *testing.T) *fixtures.Dataset {
	return GetTestServer(t).Dataset()
}

func PerformTestRequest(t *testing.T, app *fiber.App, method, path, accept, contentType string) *http.Response {
	req := httptest.NewRequest(method, path, nil)
	if accept == "" {
		accept = documents.MediaType
	}
	req.Header.Set("Accept", accept)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := app.Test(req, 2000)
	if err != nil {
		t.Fatal("Failed to perform request", err)
	}

	return resp
}

func AssertTestStatusCode(t *testing.T, resp *http.Response, expectedStatusCode int) {
	if resp.StatusCode != expectedStatusCode {
		t.Logf("Status Code: %d", resp.StatusCode)
		t.Fatal("Failed to assert status code")
	}
}

func AssertTestResponseBody[V interface{}](t *testing.T, resp *http.Response, expectedBody V) V {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal("Failed to read response body", err)
	}

	if err := json.Unmarshal(body, &expectedBody); err != nil {
		t.Logf("Body: %s", body)
		t.Fatal("Failed to unmarshal response body")
	}
	return expectedBody
}

func AssertEqual[V comparable](t *testing.T, actual, expected V) {
	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}

func AssertNotEmpty[V comparable](t *testing.T, actual V) {
	var empty V
	if actual == empty {
		t.Fatal("Value is empty")
	}
}

// AssertDocumentResource returns the document's primary data as a single
// resource object.
func AssertDocumentResource(t *testing.T, doc *documents.Document) map[string]any {
	resource, ok := doc.Data.(map[string]any)
	if !ok {
		t.Fatalf("Expected a single resource but got %T", doc.Data)
	}
	return resource
}

// AssertDocumentResources returns the document's primary data as a resource
// list.
func AssertDocumentResources(t *testing.T, doc *documents.Document) []map[string]any {
	list, ok := doc.Data.([]any)
	if !ok {
		t.Fatalf("Expected a resource list but got %T", doc.Data)
	}

	resources := make([]map[string]any, len(list))
	for i, item := range list {
		resource, ok := item.(map[string]any)
		if !ok {
			t.Fatalf("Expected a resource object but got %T", item)
		}
		resources[i] = resource
	}
	return resources
}

func AssertResourceString(t *testing.T, resource map[string]any, member string) string {
	value, ok := resource[member].(string)
	if !ok {
		t.Fatalf("Resource member %s is not a string: %v", member, resource[member])
	}
	return value
}

func AssertResourceMap(t *testing.T, resource map[string]any, member string) map[string]any {
	value, ok := resource[member].(map[string]any)
	if !ok {
		t.Fatalf("Resource member %s is not an object: %v", member, resource[member])
	}
	return value
}

func AssertMetaCount(t *testing.T, doc *documents.Document, expected int) {
	count, ok := doc.Meta["count"].(float64)
	if !ok {
		t.Fatalf("Document meta has no count: %v", doc.Meta)
	}
	AssertEqual(t, int(count), expected)
}

// FindIncluded returns the included resource with the given type and id,
// failing the test when it is missing.
func FindIncluded(t *testing.T, doc *documents.Document, resourceType, id string) *documents.Resource {
	for _, res := range doc.Included {
		if res.Type == resourceType && res.ID == id {
			return res
		}
	}
	t.Fatalf("Included has no %s resource with id %s", resourceType, id)
	return nil
}

type TestRequestCase struct {
	Name      string
	Path      string
	PathFn    func(t *testing.T) string
	ExpStatus int
	AssertFn  func(t *testing.T, res *http.Response)
}

func PerformTestRequestCase(t *testing.T, method string, tc TestRequestCase) {
	// Arrange
	path := tc.Path
	if tc.PathFn != nil {
		path = tc.PathFn(t)
	}
	fiberApp := GetTestServer(t).App

	// Act
	resp := PerformTestRequest(t, fiberApp, method, path, "", "")
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	// Assert
	AssertTestStatusCode(t, resp, tc.ExpStatus)
	if tc.AssertFn != nil {
		tc.AssertFn(t, resp)
	}
}
