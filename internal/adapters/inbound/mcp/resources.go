package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/prodcat/prodcat/internal/domain"
)

const (
	productsURI   = "catalog://products"
	categoriesURI = "catalog://categories"
)

// registerResources registers all catalog MCP resources on the given server.
func registerResources(s *server.MCPServer, c *catalog) {
	s.AddResource(
		mcplib.NewResource(
			productsURI,
			"Products",
			mcplib.WithResourceDescription("Every product in the catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		c.handleProductsResource,
	)

	s.AddResource(
		mcplib.NewResource(
			categoriesURI,
			"Product types",
			mcplib.WithResourceDescription("Known product type codes and their names"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCategoriesResource,
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"catalog://products/{id}",
			"Product",
			mcplib.WithTemplateDescription("A single product by id"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		c.handleProductResource,
	)
}

func (c *catalog) handleProductsResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return jsonContents(productsURI, viewsOf(c.svc.Products()))
}

func handleCategoriesResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	return jsonContents(categoriesURI, domain.Categories())
}

func (c *catalog) handleProductResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	raw := templateArg(request.Params.Arguments, "id")
	if raw == "" {
		return nil, fmt.Errorf("product id is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q", raw)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.svc.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	return jsonContents(request.Params.URI, viewOf(p))
}

// templateArg reads a URI template variable. Matching may store it as a
// string or as a list of strings.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
