package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/prodcat/prodcat/internal/domain"
)

// registerTools registers all catalog MCP tools on the given server.
func registerTools(s *server.MCPServer, c *catalog) {
	s.AddTool(
		mcplib.NewTool("catalog_list",
			mcplib.WithDescription("Returns every product in the catalog, in insertion order, as JSON"),
		),
		c.handleList,
	)

	s.AddTool(
		mcplib.NewTool("catalog_find",
			mcplib.WithDescription("Returns the product with the given 5-digit id"),
			mcplib.WithNumber("id", mcplib.Required(), mcplib.Description("Product id")),
		),
		c.handleFind,
	)

	s.AddTool(
		mcplib.NewTool("catalog_search",
			mcplib.WithDescription("Returns the products matching every given filter"),
			mcplib.WithString("name", mcplib.Description("Case-insensitive substring of the product name")),
			mcplib.WithString("type", mcplib.Description("Product type code (AL, DL, FRL)")),
			mcplib.WithNumber("min_qty", mcplib.Description("Minimum quantity")),
			mcplib.WithNumber("max_qty", mcplib.Description("Maximum quantity")),
			mcplib.WithString("min_price", mcplib.Description("Minimum price, decimal text")),
			mcplib.WithString("max_price", mcplib.Description("Maximum price, decimal text")),
		),
		c.handleSearch,
	)

	s.AddTool(
		mcplib.NewTool("catalog_add",
			mcplib.WithDescription("Adds a product to the in-memory catalog. Call catalog_save to persist it."),
			mcplib.WithNumber("id", mcplib.Required(), mcplib.Description("5-digit product id")),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name, without commas")),
			mcplib.WithString("type", mcplib.Required(), mcplib.Description("Product type code (AL, DL, FRL)")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("Units in stock")),
			mcplib.WithString("price", mcplib.Required(), mcplib.Description("Unit price, decimal text such as 1.50")),
		),
		c.handleAdd,
	)

	s.AddTool(
		mcplib.NewTool("catalog_delete",
			mcplib.WithDescription("Removes a product from the in-memory catalog. Call catalog_save to persist it."),
			mcplib.WithNumber("id", mcplib.Required(), mcplib.Description("Product id")),
		),
		c.handleDelete,
	)

	s.AddTool(
		mcplib.NewTool("catalog_save",
			mcplib.WithDescription("Writes the catalog back to its file"),
		),
		c.handleSave,
	)
}

func (c *catalog) handleList(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return jsonResult(viewsOf(c.svc.Products()))
}

func (c *catalog) handleFind(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := requireWholeInt(request, "id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.svc.Find(id)
	if !ok {
		return errorResult(fmt.Sprintf("%v: id %d", domain.ErrProductNotFound, id)), nil
	}
	return jsonResult(viewOf(p))
}

func (c *catalog) handleSearch(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	pred, err := searchPredicate(request)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return jsonResult(viewsOf(c.svc.Search(pred).All()))
}

func (c *catalog) handleAdd(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := requireWholeInt(request, "id")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	typeCode, err := request.RequireString("type")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	qty, err := requireWholeInt(request, "quantity")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	price, err := request.RequireString("price")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.svc.AddFields(strconv.Itoa(id), name, typeCode, strconv.Itoa(qty), price)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(viewOf(p))
}

func (c *catalog) handleDelete(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := requireWholeInt(request, "id")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.Delete(id); err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(fmt.Sprintf("deleted product %d", id)), nil
}

func (c *catalog) handleSave(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.Save(); err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(fmt.Sprintf("saved %d products to %s", c.svc.Len(), c.svc.Location())), nil
}

// requireWholeInt is RequireInt without its silent truncation of
// fractional JSON numbers.
func requireWholeInt(request mcplib.CallToolRequest, key string) (int, error) {
	if f, ok := request.GetArguments()[key].(float64); ok && f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %q must be a whole number, got %v", key, f)
	}
	return request.RequireInt(key)
}

func searchPredicate(request mcplib.CallToolRequest) (domain.Predicate, error) {
	args := request.GetArguments()
	var preds []domain.Predicate

	if name := request.GetString("name", ""); name != "" {
		preds = append(preds, domain.NameContains(name))
	}
	if typeCode := request.GetString("type", ""); typeCode != "" {
		preds = append(preds, domain.OfType(typeCode))
	}
	if _, ok := args["min_qty"]; ok {
		n, err := requireWholeInt(request, "min_qty")
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.MinQuantity(n))
	}
	if _, ok := args["max_qty"]; ok {
		n, err := requireWholeInt(request, "max_qty")
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.MaxQuantity(n))
	}
	if s := request.GetString("min_price", ""); s != "" {
		d, err := parsePrice("min_price", s)
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.MinPrice(d))
	}
	if s := request.GetString("max_price", ""); s != "" {
		d, err := parsePrice("max_price", s)
		if err != nil {
			return nil, err
		}
		preds = append(preds, domain.MaxPrice(d))
	}
	return domain.MatchAll(preds...), nil
}

func parsePrice(arg, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(domain.NormalizeDecimalInput(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q", arg, s)
	}
	return d, nil
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
