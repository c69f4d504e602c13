package querygen

import "strings"

// Preview builds a bounded row preview over one table. Limit and offset
// are bound as variables so the backend type-checks them; an offset of
// zero is omitted entirely.
func Preview(table string, fields []string, limit, offset int) (Query, error) {
	b := NewBuilder()
	b.WriteSyntax("{\n  ")
	if err := b.WriteIdent(table); err != nil {
		return Query{}, err
	}
	b.WriteSyntax("(limit: " + b.Bind("limit", "Int!", limit))
	if offset > 0 {
		b.WriteSyntax(", offset: " + b.Bind("offset", "Int!", offset))
	}
	b.WriteSyntax(") {\n")
	for _, field := range fields {
		b.WriteSyntax("    ")
		if err := b.WriteIdent(field); err != nil {
			return Query{}, err
		}
		b.WriteSyntax("\n")
	}
	b.WriteSyntax("  }\n}")

	return b.Build("query PreviewTable"), nil
}

// AggregateFunctions are the supported aggregate selections. All but
// count operate on a single column and require a field.
var AggregateFunctions = []string{"count", "sum", "avg", "min", "max"}

func supportedAggregate(function string) bool {
	for _, name := range AggregateFunctions {
		if name == function {
			return true
		}
	}

	return false
}

// Aggregate builds `<table>_aggregate` with an optional where filter bound
// as a `<table>_bool_exp!` variable. The field is mandatory for every
// function except count; that is checked here, before any network call.
func Aggregate(table, function, field string, filter map[string]any) (Query, error) {
	if !supportedAggregate(function) {
		return Query{}, validationErrorf("unsupported aggregate function %q, expected one of %s",
			function, strings.Join(AggregateFunctions, ", "))
	}
	if function != "count" && field == "" {
		return Query{}, validationErrorf("aggregate function %q requires a field", function)
	}

	b := NewBuilder()
	b.WriteSyntax("{\n  ")
	if err := b.WriteIdent(table); err != nil {
		return Query{}, err
	}
	b.WriteSyntax("_aggregate")
	if filter != nil {
		b.WriteSyntax("(where: " + b.Bind("filter", table+"_bool_exp!", filter) + ")")
	}
	b.WriteSyntax(" {\n    aggregate { ")
	// function comes from the fixed allow-list above, never caller text
	b.WriteSyntax(function)
	if function != "count" {
		b.WriteSyntax(" { ")
		if err := b.WriteIdent(field); err != nil {
			return Query{}, err
		}
		b.WriteSyntax(" }")
	}
	b.WriteSyntax(" }\n  }\n}")

	return b.Build("query AggregateData"), nil
}
