package docs

import (
	"encoding/json"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(doc)))

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "/api/v1", parsed.BasePath)
	for _, path := range []string{
		"/currencies", "/prices/{code}", "/prices/{code}/history", "/prices/{code}/history.csv",
		"/ticker", "/calculator", "/convert", "/rates/{from}/{to}", "/preferences/language", "/messages",
	} {
		require.Contains(t, parsed.Paths, path)
	}
	require.Contains(t, parsed.Paths["/preferences/language"], "put")
}

// The document is maintained alongside the handler annotations, so it must
// not claim to be tool output.
func TestDocsFileHasNoGeneratedMarker(t *testing.T) {
	src, err := os.ReadFile("docs.go")
	require.NoError(t, err)
	require.False(t, regexp.MustCompile(`Code generated .*DO NOT EDIT`).Match(src))
}
