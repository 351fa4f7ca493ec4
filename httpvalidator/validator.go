package httpvalidator

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oascase/oaserrors"
	"github.com/erraggy/oascase/openapi"
	"github.com/erraggy/oascase/validator"
)

// methods are the operation keys recognized on a path item, in sweep order.
var methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Validator pairs HTTP responses with their documented schemas and case-checks
// both. Construct one per test run with New; the case configuration is read
// once at construction and applies to every validation call.
type Validator struct {
	doc      map[string]any
	logger   openapi.Logger
	caseOpts []validator.Option
}

// New creates a Validator over a loaded OpenAPI document.
func New(doc map[string]any, opts ...Option) (*Validator, error) {
	if doc == nil {
		return nil, &oaserrors.ConfigError{
			Option:  "document",
			Message: "schema document must not be nil",
		}
	}
	v := &Validator{
		doc:    doc,
		logger: openapi.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ResponseSchema locates the response schema documented for a route, method,
// and status code. The method is matched case-insensitively; when the exact
// status code is not documented, the `default` response is used. Both OAS 2
// (`schema`) and OAS 3 (`content/<media-type>/schema`) response shapes are
// recognized.
//
// Returns a *oaserrors.DocumentError naming the missing key when the document
// does not describe the combination.
func (v *Validator) ResponseSchema(route, method string, status int) (map[string]any, error) {
	method = strings.ToLower(method)
	context := fmt.Sprintf("route: %s, method: %s, status: %d", route, method, status)

	paths, err := v.indexMap(v.doc, "paths", context)
	if err != nil {
		return nil, err
	}
	pathItem, err := v.indexMap(paths, route, context)
	if err != nil {
		return nil, err
	}
	operation, err := v.indexMap(pathItem, method, context)
	if err != nil {
		return nil, err
	}
	responses, err := v.indexMap(operation, "responses", context)
	if err != nil {
		return nil, err
	}

	statusKey := strconv.Itoa(status)
	if _, ok := responses[statusKey]; !ok {
		if _, ok := responses["default"]; !ok {
			return nil, &oaserrors.DocumentError{Key: statusKey, Context: context}
		}
		v.logger.Debug("status code not documented, using default response", "status", statusKey)
		statusKey = "default"
	}
	response, err := v.indexMap(responses, statusKey, context)
	if err != nil {
		return nil, err
	}

	return v.responseSchemaNode(response, context)
}

// responseSchemaNode extracts the schema from a response definition.
// OAS 2 documents carry `schema` directly; OAS 3 documents nest it under
// `content/<media-type>/schema`.
func (v *Validator) responseSchemaNode(response map[string]any, context string) (map[string]any, error) {
	if _, ok := response["schema"]; ok {
		return v.indexMap(response, "schema", context)
	}

	content, err := v.indexMap(response, "content", context)
	if err != nil {
		return nil, &oaserrors.DocumentError{Key: "schema", Context: context}
	}
	mediaType := "application/json"
	if _, ok := content[mediaType]; !ok {
		// Fall back to the first media type, in sorted order for determinism.
		keys := slices.Sorted(maps.Keys(content))
		if len(keys) == 0 {
			return nil, &oaserrors.DocumentError{Key: "content", Context: context}
		}
		mediaType = keys[0]
	}
	media, err := v.indexMap(content, mediaType, context)
	if err != nil {
		return nil, err
	}
	return v.indexMap(media, "schema", context)
}

// ValidateResponseData validates a captured response without requiring an
// *http.Response. This is the recorder-friendly entry point:
//
//	rec := httptest.NewRecorder()
//	handler.ServeHTTP(rec, req)
//	err := v.ValidateResponseData("/api/v1/cars", "get", rec.Code, rec.Body.Bytes())
//
// The response body's keys and the documented schema's property names are both
// checked against the configured convention. The first error encountered is
// returned: a *oaserrors.DocumentError when the route/method/status is not
// documented, a *oaserrors.CaseError on a casing violation, or a
// *oaserrors.SchemaError when the documented schema is malformed.
func (v *Validator) ValidateResponseData(route, method string, status int, body []byte) error {
	schema, err := v.ResponseSchema(route, method, status)
	if err != nil {
		return err
	}

	var data any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &data); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}

	if err := validator.ValidateResponseCase(data, v.caseOpts...); err != nil {
		return err
	}
	return validator.ValidateSchemaCase(schema, v.caseOpts...)
}

// ValidateResponse validates an *http.Response against the documented schema
// for route. The method comes from the response's originating request and the
// body is read in full (the caller keeps responsibility for closing it).
func (v *Validator) ValidateResponse(resp *http.Response, route string) error {
	if resp == nil {
		return &oaserrors.ConfigError{
			Option:  "response",
			Message: "response must not be nil",
		}
	}
	if resp.Request == nil {
		return &oaserrors.ConfigError{
			Option:  "response",
			Message: "response has no originating request, use ValidateResponseData instead",
		}
	}

	var body []byte
	if resp.Body != nil {
		var err error
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}
	}

	return v.ValidateResponseData(route, resp.Request.Method, resp.StatusCode, body)
}

// ValidateDocumentCase sweeps every response schema in the document and
// case-checks its property names. Responses without a schema are skipped, as
// are bodyless operations. Returns the number of schemas checked and the
// first error encountered.
func (v *Validator) ValidateDocumentCase() (int, error) {
	rawPaths, ok := v.doc["paths"]
	if !ok {
		return 0, &oaserrors.DocumentError{Key: "paths"}
	}
	paths, ok := rawPaths.(map[string]any)
	if !ok {
		return 0, &oaserrors.DocumentError{Key: "paths", Context: "`paths` is not a mapping"}
	}

	checked := 0
	for _, route := range slices.Sorted(maps.Keys(paths)) {
		pathItem, ok := paths[route].(map[string]any)
		if !ok {
			continue
		}
		for _, method := range methods {
			operation, ok := pathItem[method].(map[string]any)
			if !ok {
				continue
			}
			responses, ok := operation["responses"].(map[string]any)
			if !ok {
				continue
			}
			for _, status := range slices.Sorted(maps.Keys(responses)) {
				response, ok := responses[status].(map[string]any)
				if !ok {
					continue
				}
				context := fmt.Sprintf("route: %s, method: %s, status: %s", route, method, status)
				schema, err := v.responseSchemaNode(response, context)
				if err != nil {
					// No schema documented for this response; nothing to check.
					v.logger.Debug("skipping response without schema", "route", route, "method", method, "status", status)
					continue
				}
				if err := validator.ValidateSchemaCase(schema, v.caseOpts...); err != nil {
					return checked, fmt.Errorf("%s: %w", context, err)
				}
				checked++
			}
		}
	}
	return checked, nil
}

// indexMap looks up key and requires the value to be a mapping.
func (v *Validator) indexMap(node map[string]any, key, context string) (map[string]any, error) {
	v.logger.Debug("indexing schema", "key", key)
	value, err := openapi.IndexSchema(node, key, context)
	if err != nil {
		return nil, err
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, &oaserrors.DocumentError{
			Key:     key,
			Context: fmt.Sprintf("`%s` is not a mapping. %s", key, context),
		}
	}
	return m, nil
}
