package httpapi

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"net/http"
	"strings"
)

const (
	openAPIPath  = "/openapi.yaml"
	docsTitle    = "Tournament Console API Docs"
	swaggerAsset = "https://unpkg.com/swagger-ui-dist@5"
)

//go:embed openapi.yaml
var openAPISpec []byte

var openAPIETag = func() string {
	sum := sha256.Sum256(openAPISpec)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

var docsPage = strings.NewReplacer(
	"{{title}}", docsTitle,
	"{{assets}}", swaggerAsset,
	"{{spec}}", openAPIPath,
).Replace(docsTemplate)

// OpenAPI serves the embedded document and answers revalidation with 304.
func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("ETag", openAPIETag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == openAPIETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(openAPISpec)
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}

const docsTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{title}}</title>
<link rel="stylesheet" href="{{assets}}/swagger-ui.css">
</head>
<body>
<div id="docs"></div>
<script src="{{assets}}/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: '{{spec}}', dom_id: '#docs', deepLinking: true});
</script>
</body>
</html>`
