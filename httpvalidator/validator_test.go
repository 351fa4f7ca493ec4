package httpvalidator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oascase/casing"
	"github.com/erraggy/oascase/oaserrors"
)

func loadTestDocument(t *testing.T) map[string]any {
	t.Helper()
	doc, err := LoadDocument(filepath.Join("testdata", "cars.yaml"))
	require.NoError(t, err)
	return doc
}

func TestLoadDocument(t *testing.T) {
	doc := loadTestDocument(t)

	assert.Equal(t, "2.0", doc["swagger"])

	// Integer status keys from YAML are normalized to strings.
	paths := doc["paths"].(map[string]any)
	cars := paths["/api/v1/cars"].(map[string]any)
	responses := cars["get"].(map[string]any)["responses"].(map[string]any)
	assert.Contains(t, responses, "200")
	assert.Contains(t, responses, "default")
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join("testdata", "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestParseDocumentErrors(t *testing.T) {
	_, err := ParseDocument([]byte("- just\n- a\n- sequence\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root is not a mapping")

	_, err = ParseDocument([]byte("{invalid: yaml: here"))
	require.Error(t, err)
}

func TestResponseSchema(t *testing.T) {
	v, err := New(loadTestDocument(t))
	require.NoError(t, err)

	t.Run("documented status", func(t *testing.T) {
		schema, err := v.ResponseSchema("/api/v1/cars", "GET", 200)
		require.NoError(t, err)
		assert.Equal(t, "array", schema["type"])
	})

	t.Run("undocumented status falls back to default", func(t *testing.T) {
		schema, err := v.ResponseSchema("/api/v1/cars", "get", 418)
		require.NoError(t, err)
		props := schema["properties"].(map[string]any)
		assert.Contains(t, props, "errorMessage")
	})

	t.Run("unknown route", func(t *testing.T) {
		_, err := v.ResponseSchema("/api/v1/boats", "get", 200)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrDocument))
		assert.Contains(t, err.Error(), "failed indexing schema by `/api/v1/boats`")
		assert.Contains(t, err.Error(), "route: /api/v1/boats")
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := v.ResponseSchema("/api/v1/cars", "delete", 200)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrDocument))
	})

	t.Run("unknown status without default", func(t *testing.T) {
		_, err := v.ResponseSchema("/api/v1/trucks", "get", 404)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrDocument))
		assert.Contains(t, err.Error(), "failed indexing schema by `404`")
	})
}

func TestResponseSchemaOAS3Content(t *testing.T) {
	doc, err := ParseDocument([]byte(`
openapi: "3.0.3"
info:
  title: Pets API
  version: "1.0.0"
paths:
  /pets:
    get:
      responses:
        200:
          description: OK
          content:
            application/json:
              schema:
                type: object
                properties:
                  petName:
                    type: string
`))
	require.NoError(t, err)

	v, err := New(doc)
	require.NoError(t, err)

	schema, err := v.ResponseSchema("/pets", "get", 200)
	require.NoError(t, err)
	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "petName")
}

func TestValidateResponseData(t *testing.T) {
	v, err := New(loadTestDocument(t))
	require.NoError(t, err)

	t.Run("conforming body and schema", func(t *testing.T) {
		body := []byte(`[{"modelName": "M3", "ownerName": null, "wheelCount": 4}]`)
		assert.NoError(t, v.ValidateResponseData("/api/v1/cars", "get", 200, body))
	})

	t.Run("miscased body key", func(t *testing.T) {
		body := []byte(`[{"model_name": "M3"}]`)
		err := v.ValidateResponseData("/api/v1/cars", "get", 200, body)
		require.Error(t, err)

		var caseErr *oaserrors.CaseError
		require.True(t, errors.As(err, &caseErr))
		assert.Equal(t, "model_name", caseErr.Key)
	})

	t.Run("miscased schema property", func(t *testing.T) {
		// The body conforms but the documented schema does not.
		body := []byte(`{"loadCapacity": 12.5}`)
		err := v.ValidateResponseData("/api/v1/trucks", "get", 200, body)
		require.Error(t, err)

		var caseErr *oaserrors.CaseError
		require.True(t, errors.As(err, &caseErr))
		assert.Equal(t, "date_created", caseErr.Key)
	})

	t.Run("invalid body json", func(t *testing.T) {
		err := v.ValidateResponseData("/api/v1/cars", "get", 200, []byte(`{not json`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding response body")
	})

	t.Run("empty body skips body validation", func(t *testing.T) {
		// The schema side is still checked.
		err := v.ValidateResponseData("/api/v1/trucks", "get", 200, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrCase))
	})
}

func TestValidateResponseDataIgnoredKeys(t *testing.T) {
	v, err := New(loadTestDocument(t), WithIgnoredKeys("date_created"))
	require.NoError(t, err)

	body := []byte(`{"loadCapacity": 12.5}`)
	assert.NoError(t, v.ValidateResponseData("/api/v1/trucks", "get", 200, body))
}

func TestValidateResponseDataConvention(t *testing.T) {
	v, err := New(loadTestDocument(t), WithConvention(casing.SnakeCase))
	require.NoError(t, err)

	// Under snake_case the cars schema's camelCased properties now fail.
	body := []byte(`[{"model_name": "M3"}]`)
	err = v.ValidateResponseData("/api/v1/cars", "get", 200, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not properly snake_cased")
}

func TestValidateResponse(t *testing.T) {
	v, err := New(loadTestDocument(t))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"modelName": "M3", "wheelCount": 4}]`))
	}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/cars")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.NoError(t, v.ValidateResponse(resp, "/api/v1/cars"))
}

func TestValidateResponseNilArguments(t *testing.T) {
	v, err := New(loadTestDocument(t))
	require.NoError(t, err)

	err = v.ValidateResponse(nil, "/api/v1/cars")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	err = v.ValidateResponse(&http.Response{StatusCode: 200}, "/api/v1/cars")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no originating request")
}

func TestValidateDocumentCase(t *testing.T) {
	t.Run("first violation aborts the sweep", func(t *testing.T) {
		v, err := New(loadTestDocument(t))
		require.NoError(t, err)

		_, err = v.ValidateDocumentCase()
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrCase))
		assert.Contains(t, err.Error(), "date_created")
		assert.Contains(t, err.Error(), "route: /api/v1/trucks")
	})

	t.Run("clean sweep with ignored keys", func(t *testing.T) {
		v, err := New(loadTestDocument(t), WithIgnoredKeys("date_created"))
		require.NoError(t, err)

		checked, err := v.ValidateDocumentCase()
		require.NoError(t, err)
		// cars get 200, cars get default, cars post 201, trucks get 200
		assert.Equal(t, 4, checked)
	})

	t.Run("document without paths", func(t *testing.T) {
		v, err := New(map[string]any{"swagger": "2.0"})
		require.NoError(t, err)

		_, err = v.ValidateDocumentCase()
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrDocument))
	})
}

func TestNewValidatorErrors(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	_, err = New(map[string]any{}, WithConvention(casing.Convention(9)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	_, err = New(map[string]any{}, WithLogger(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

// Sweep over an OAS3 document exercises the content/media-type shape.
func TestValidateDocumentCaseOAS3(t *testing.T) {
	doc, err := ParseDocument([]byte(strings.TrimSpace(`
openapi: "3.0.3"
info:
  title: Pets API
  version: "1.0.0"
paths:
  /pets:
    get:
      responses:
        200:
          description: OK
          content:
            application/json:
              schema:
                type: array
                items:
                  type: object
                  properties:
                    petName:
                      type: string
        204:
          description: No Content
`)))
	require.NoError(t, err)

	v, err := New(doc)
	require.NoError(t, err)

	checked, err := v.ValidateDocumentCase()
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
}
