package controllers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type filterKind int

const (
	filterString filterKind = iota
	filterInt
	filterBool
)

type bikeFilterDef struct {
	param  string
	column string
	kind   filterKind
}

// bikeFilterDefs is the closed set of query parameters the catalog accepts.
// Unknown parameters are ignored; they are never reflected onto the model.
var bikeFilterDefs = []bikeFilterDef{
	{"brand", "brand", filterString},
	{"category", "category", filterString},
	{"year", "year", filterInt},
	{"fuel_type", "fuel_type", filterString},
	{"color", "color", filterString},
	{"is_booked", "is_booked", filterBool},
	{"refurbished", "refurbished", filterBool},
	{"registration_certificate", "registration_certificate", filterBool},
	{"finance", "finance", filterBool},
	{"insurance", "insurance", filterBool},
	{"warranty", "warranty", filterBool},
	{"owners", "owners", filterString},
	{"transmission", "transmission", filterString},
	{"location", "location_id", filterString},
}

// orderingColumns maps the ordering parameter to sortable columns.
var orderingColumns = map[string]string{
	"created_at": "buy_bikes.created_at",
	"price":      "buy_bikes.price",
	"kilometers": "buy_bikes.kilometers",
	"year":       "buy_bikes.year",
}

// searchColumns are matched with case-insensitive substring semantics; a hit
// on any one of them counts as a match.
var searchColumns = []string{
	"buy_bikes.title",
	"buy_bikes.brand",
	"buy_bikes.category",
	"buy_bikes.description",
	"locations.name",
}

// ApplyBikeFilters narrows q by the supplied query parameters. Filters combine
// with AND across dimensions. A value that cannot be coerced to the declared
// type of its filter key is rejected so the caller can answer 400; this is the
// documented, consistent choice for malformed filter input. The caller is
// expected to have left-joined locations.
func ApplyBikeFilters(query url.Values, q *gorm.DB) (*gorm.DB, error) {
	for _, def := range bikeFilterDefs {
		raw := query.Get(def.param)
		if raw == "" {
			continue
		}

		column := "buy_bikes." + def.column
		switch def.kind {
		case filterString:
			q = q.Where(column+" = ?", raw)
		case filterInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %q", def.param, raw)
			}
			q = q.Where(column+" = ?", n)
		case filterBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %q", def.param, raw)
			}
			q = q.Where(column+" = ?", b)
		}
	}

	if search := strings.TrimSpace(query.Get("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		clauses := make([]string, 0, len(searchColumns))
		args := make([]interface{}, 0, len(searchColumns))
		for _, col := range searchColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, like)
		}
		q = q.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	ordering := query.Get("ordering")
	if ordering == "" {
		ordering = "-created_at"
	}
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(ordering, "-")
	}
	column, ok := orderingColumns[field]
	if !ok {
		return nil, fmt.Errorf("invalid ordering: %q", ordering)
	}
	q = q.Order(column + " " + direction)

	return q, nil
}
