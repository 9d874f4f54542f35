package servers

import (
	_ "embed"
	"fmt"
	"net/url"
	"path"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPISpec is the OpenAPI document describing ServerInterface.
//
//go:embed openapi.json
var OpenAPISpec []byte

// GetSwagger parses OpenAPISpec. External references are rejected because
// the document is self-contained.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
		pathToFile := url.String()
		pathToFile = path.Clean(pathToFile)
		return nil, fmt.Errorf("external reference %s is not embedded", pathToFile)
	}
	swagger, err = loader.LoadFromData(OpenAPISpec)
	if err != nil {
		return
	}
	return
}
