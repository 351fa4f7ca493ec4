// Package httpvalidator pairs HTTP responses with the OpenAPI schemas that
// document them and runs case validation on both sides.
//
// Import path: github.com/erraggy/oascase/httpvalidator
//
// A Validator is constructed once per test run from a loaded schema document
// and the active case configuration. Each validation call locates the response
// schema for a route, method, and status code (reporting a
// *oaserrors.DocumentError when the document does not describe that
// combination), decodes the JSON response body, and applies the case walkers
// of the validator package to the body and the schema.
//
// # Usage
//
//	doc, err := httpvalidator.LoadDocument("openapi.yaml")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	v, err := httpvalidator.New(doc, httpvalidator.WithConvention(casing.CamelCase))
//	if err != nil {
//	    t.Fatal(err)
//	}
//
//	rec := httptest.NewRecorder()
//	handler.ServeHTTP(rec, req)
//	if err := v.ValidateResponseData("/api/v1/cars", "get", rec.Code, rec.Body.Bytes()); err != nil {
//	    t.Fatal(err)
//	}
//
// The package performs no value validation against schema constraints; it
// checks key casing and the structural pairing only.
package httpvalidator
