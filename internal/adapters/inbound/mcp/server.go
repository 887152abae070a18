package mcp

import (
	"iter"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prodcat/prodcat/internal/application"
	"github.com/prodcat/prodcat/internal/domain"
)

// catalog serializes every request against the single session.
type catalog struct {
	mu  sync.Mutex
	svc *application.CatalogService
}

// NewCatalogMCPServer creates an MCP server with all catalog tools and
// resources registered over svc. Changes stay in memory until catalog_save.
func NewCatalogMCPServer(svc *application.CatalogService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"prodcat",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	c := &catalog{svc: svc}
	registerTools(s, c)
	registerResources(s, c)

	return s
}

// productView is the JSON shape of a product. Price stays text so no
// precision is lost.
type productView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

func viewOf(p domain.Product) productView {
	return productView{
		ID:       p.ID(),
		Name:     p.Name(),
		Type:     string(p.TypeCode()),
		Category: p.CategoryName(),
		Quantity: p.Quantity(),
		Price:    p.PriceText(),
	}
}

func viewsOf(products iter.Seq[domain.Product]) []productView {
	views := []productView{}
	for p := range products {
		views = append(views, viewOf(p))
	}
	return views
}
