package domain

import (
	"sort"
	"strings"
)

// TypeCode is a short product category code such as "FRL".
type TypeCode string

// Category pairs a type code with its display name.
type Category struct {
	Code TypeCode `json:"code"`
	Name string   `json:"name"`
}

// categoryNames is fixed at build time; the catalog cannot extend it.
var categoryNames = map[TypeCode]string{
	"AL":  "Alimentação",
	"DL":  "Detergente p/ Loiça",
	"FRL": "Frutas e Legumes",
}

// ParseTypeCode folds s to upper case and checks it against the category table.
func ParseTypeCode(s string) (TypeCode, bool) {
	code := TypeCode(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := categoryNames[code]
	return code, ok
}

// CategoryName returns the display name for code, or "" if unknown.
func CategoryName(code TypeCode) string {
	return categoryNames[code]
}

// Categories lists the category table ordered by code.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for code, name := range categoryNames {
		out = append(out, Category{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func categoryCodes() string {
	cats := Categories()
	codes := make([]string, len(cats))
	for i, c := range cats {
		codes[i] = string(c.Code)
	}
	return strings.Join(codes, ", ")
}
