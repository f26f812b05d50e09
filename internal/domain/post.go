package domain

import (
	"strings"

	"github.com/lib/pq"
)

// Category is the closed set of forum sections. Unknown strings are
// rejected at creation, never coerced.
type Category string

const (
	CategoryRh             Category = "Rh"
	CategorySuporte        Category = "Suporte"
	CategoryFinanceiro     Category = "Financeiro"
	CategoryMarketing      Category = "Marketing"
	CategoryFiquePorDentro Category = "FiquePorDentro"
	CategoryQualidade      Category = "Qualidade"
)

var categories = []Category{
	CategoryRh,
	CategorySuporte,
	CategoryFinanceiro,
	CategoryMarketing,
	CategoryFiquePorDentro,
	CategoryQualidade,
}

// ParseCategory matches a string against the category set,
// case-insensitively, returning the canonical form.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type Post struct {
	ID        int64          `db:"id"`
	Title     string         `db:"title"`
	Body      string         `db:"body"`
	Author    string         `db:"author"`
	Category  string         `db:"category"`
	Tags      pq.StringArray `db:"tags"`
	Active    bool           `db:"active"`
	CreatedAt int64          `db:"created_at"`
	EditedAt  *int64         `db:"edited_at"`
}
