// Package api holds the HTTP contract: the OpenAPI document and the chi
// server, strict handlers and models generated from it.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=config.yaml openapi.yaml
