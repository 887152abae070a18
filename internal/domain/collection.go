package domain

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ProductCollection holds products keyed by id in insertion order.
// The zero value is not usable; call NewProductCollection.
type ProductCollection struct {
	byID  map[int]Product
	order []int
}

func NewProductCollection() *ProductCollection {
	return &ProductCollection{byID: make(map[int]Product)}
}

// Add inserts p. An existing product with the same id is kept and
// ErrDuplicateProduct is returned.
func (c *ProductCollection) Add(p Product) error {
	if _, exists := c.byID[p.id]; exists {
		return fmt.Errorf("%w: id %d", ErrDuplicateProduct, p.id)
	}
	c.byID[p.id] = p
	c.order = append(c.order, p.id)
	return nil
}

// FindByID looks a product up. A missing id is not an error.
func (c *ProductCollection) FindByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Search returns a new collection with the members matching pred, in the
// same order. The receiver is not modified.
func (c *ProductCollection) Search(pred Predicate) *ProductCollection {
	found := NewProductCollection()
	for p := range c.All() {
		if pred(p) {
			found.byID[p.id] = p
			found.order = append(found.order, p.id)
		}
	}
	return found
}

// Delete removes the product keyed by id.
func (c *ProductCollection) Delete(id int) error {
	if _, exists := c.byID[id]; !exists {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	delete(c.byID, id)
	c.order = slices.DeleteFunc(c.order, func(k int) bool { return k == id })
	return nil
}

// All yields every product once in insertion order. Each call starts a new
// pass; products are values, so callers cannot reach the stored members.
func (c *ProductCollection) All() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, id := range c.order {
			if !yield(c.byID[id]) {
				return
			}
		}
	}
}

func (c *ProductCollection) Len() int { return len(c.order) }

// SerializeAll renders the collection in catalog file format, one record
// per line, each terminated by a line break.
func (c *ProductCollection) SerializeAll() string {
	var b strings.Builder
	for p := range c.All() {
		b.WriteString(p.Record())
		b.WriteString("\n")
	}
	return b.String()
}

func (c *ProductCollection) String() string {
	return fmt.Sprintf("ProductCollection[#products=%d]", c.Len())
}

// LoadCollection builds a collection from catalog lines, consuming them one
// at a time. The first bad record aborts the load and is reported with its
// position among the relevant lines.
func LoadCollection(lines iter.Seq2[string, error]) (*ProductCollection, error) {
	c := NewProductCollection()
	n := 0
	for line, err := range lines {
		if err != nil {
			return nil, fmt.Errorf("reading records: %w", err)
		}
		n++
		p, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		if err := c.Add(p); err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
	}
	return c, nil
}
