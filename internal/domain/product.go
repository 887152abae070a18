package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldDelimiter separates the fields of a catalog record. Records have no
// escaping, so names must not contain it.
const FieldDelimiter = ","

const (
	idDigits    = 5
	recordWidth = 5
)

// Product is one catalog item. It is only built through NewProduct or the
// record parsers and exposes no way to change it afterwards.
type Product struct {
	id       int
	name     string
	typeCode TypeCode
	quantity int
	price    decimal.Decimal
}

// NewProduct validates the attributes in order (id, name, type, quantity,
// price) and reports the first one that fails.
func NewProduct(id int, name, typeCode string, quantity int, price decimal.Decimal) (Product, error) {
	if id < 0 || len(strconv.Itoa(id)) != idDigits {
		return Product{}, &ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("%d must be non-negative and have exactly %d digits", id, idDigits),
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.ContainsAny(name, "\r\n") {
		return Product{}, &ValidationError{Field: "name", Reason: "must be a single line"}
	}

	code, ok := ParseTypeCode(typeCode)
	if !ok {
		return Product{}, &ValidationError{
			Field:  "type",
			Reason: fmt.Sprintf("unknown product type %q (valid: %s)", typeCode, categoryCodes()),
		}
	}

	if quantity < 0 {
		return Product{}, &ValidationError{Field: "quantity", Reason: "must be >= 0"}
	}

	if price.IsNegative() {
		return Product{}, &ValidationError{Field: "price", Reason: "must be >= 0"}
	}

	return Product{
		id:       id,
		name:     name,
		typeCode: code,
		quantity: quantity,
		price:    price,
	}, nil
}

// ParseRecord decodes one "id,name,type,quantity,price" line.
func ParseRecord(text string) (Product, error) {
	line := strings.TrimRight(text, "\r\n")
	fields := strings.Split(line, FieldDelimiter)
	if len(fields) != recordWidth {
		return Product{}, &ParseError{
			Input: line,
			Err:   fmt.Errorf("expected %d fields, got %d", recordWidth, len(fields)),
		}
	}
	return ParseFields(fields[0], fields[1], fields[2], fields[3], fields[4])
}

// ParseFields converts the five textual attributes of a product and
// validates them. Surrounding whitespace is ignored on every field.
func ParseFields(id, name, typeCode, quantity, price string) (Product, error) {
	idVal, err := parseInt("id", id)
	if err != nil {
		return Product{}, err
	}

	qtyVal, err := parseInt("quantity", quantity)
	if err != nil {
		return Product{}, err
	}

	priceText := strings.TrimSpace(price)
	priceVal, err := decimal.NewFromString(priceText)
	if err != nil {
		return Product{}, &ParseError{Field: "price", Input: priceText, Err: err}
	}

	return NewProduct(idVal, name, typeCode, qtyVal, priceVal)
}

func parseInt(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Field: field, Input: s, Err: err}
	}
	return n, nil
}

// NormalizeDecimalInput accepts a comma as decimal separator in typed
// prices. Only a single comma is rewritten; anything else is left for the
// decimal parser to reject.
func NormalizeDecimalInput(s string) string {
	if strings.Count(s, ",") != 1 {
		return s
	}
	return strings.Replace(s, ",", ".", 1)
}

func (p Product) ID() int                { return p.id }
func (p Product) Name() string           { return p.name }
func (p Product) TypeCode() TypeCode     { return p.typeCode }
func (p Product) Quantity() int          { return p.quantity }
func (p Product) Price() decimal.Decimal { return p.price }

// CategoryName is the display name of the product's type.
func (p Product) CategoryName() string { return CategoryName(p.typeCode) }

// PriceText renders the price in fixed-point notation, keeping the
// fractional digits it was parsed with.
func (p Product) PriceText() string {
	if exp := p.price.Exponent(); exp < 0 {
		return p.price.StringFixed(-exp)
	}
	return p.price.String()
}

// Record encodes the product as one catalog line, without a line break.
func (p Product) Record() string {
	return strings.Join([]string{
		strconv.Itoa(p.id),
		p.name,
		string(p.typeCode),
		strconv.Itoa(p.quantity),
		p.PriceText(),
	}, FieldDelimiter)
}

// Equal reports whether both products carry the same attributes.
// Prices compare by value.
func (p Product) Equal(o Product) bool {
	return p.id == o.id &&
		p.name == o.name &&
		p.typeCode == o.typeCode &&
		p.quantity == o.quantity &&
		p.price.Equal(o.price)
}

func (p Product) String() string {
	return fmt.Sprintf("Product[id=%d name=%q type=%q]", p.id, p.name, p.typeCode)
}

func (p Product) GoString() string {
	return fmt.Sprintf("Product(%d, %q, %q, %d, %s)", p.id, p.name, p.typeCode, p.quantity, p.PriceText())
}
