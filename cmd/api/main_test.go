package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger hace panic al arrancar si el archivo del
// documento no existe, así que el documento va versionado en el repo.
func TestDocumentoSwagger_ExisteYEsValido(t *testing.T) {
	raw, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json debe estar versionado; sin él la API no arranca")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    map[string]interface{}     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.NotEmpty(t, doc.Info["title"])

	// Las rutas que registra el router deben estar documentadas.
	for _, ruta := range []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/users/me",
		"/api/users",
		"/api/categories",
		"/api/categories/{id}",
		"/api/products",
		"/api/products/{id}",
		"/api/products/category/{categoryId}",
		"/api/products/search/{name}",
		"/health",
	} {
		assert.Contains(t, doc.Paths, ruta)
	}
}
