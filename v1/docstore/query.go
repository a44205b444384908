package docstore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// queryKind identifies which of the supported statement shapes a query
// string matched.
type queryKind int

const (
	// queryCount is SELECT VALUE COUNT(1) FROM c [WHERE ...]
	queryCount queryKind = iota
	// queryIDProjection is SELECT c.id FROM c [WHERE ...]
	queryIDProjection
	// queryFullProjection is SELECT [TOP n] * FROM c [WHERE ...]
	queryFullProjection
)

// parsedQuery is the result of recognizing a query string against the
// supported grammar.
type parsedQuery struct {
	kind queryKind

	// top limits a full projection to the first n filtered results.
	// -1 when the query carries no TOP clause.
	top int

	// conditions are the AND-conjoined WHERE fragments, each evaluated
	// independently by evalCondition. Empty when the query has no WHERE.
	conditions []string
}

// The supported statement shapes, tried in this order. This is deliberately
// a narrow grammar, not a SQL parser: anything that does not match one of
// these shapes is rejected rather than best-effort parsed.
var (
	countQueryRe = regexp.MustCompile(`(?i)^SELECT\s+VALUE\s+COUNT\(1\)\s+FROM\s+c(?:\s+WHERE\s+(.+))?$`)
	idQueryRe    = regexp.MustCompile(`(?i)^SELECT\s+c\.id\s+FROM\s+c(?:\s+WHERE\s+(.+))?$`)
	fullQueryRe  = regexp.MustCompile(`(?i)^SELECT\s+(?:TOP\s+(\d+)\s+)?\*\s+FROM\s+c(?:\s+WHERE\s+(.+))?$`)

	andSplitRe = regexp.MustCompile(`(?i) AND `)
)

// parseQuery recognizes a query string against the supported grammar.
func parseQuery(query string) (parsedQuery, error) {
	trimmed := strings.TrimSpace(query)

	if m := countQueryRe.FindStringSubmatch(trimmed); m != nil {
		return parsedQuery{kind: queryCount, top: -1, conditions: splitConjunction(m[1])}, nil
	}
	if m := idQueryRe.FindStringSubmatch(trimmed); m != nil {
		return parsedQuery{kind: queryIDProjection, top: -1, conditions: splitConjunction(m[1])}, nil
	}
	if m := fullQueryRe.FindStringSubmatch(trimmed); m != nil {
		top := -1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return parsedQuery{}, fmt.Errorf("%w: bad TOP value in %q", ErrUnsupportedQuery, query)
			}
			top = n
		}
		return parsedQuery{kind: queryFullProjection, top: top, conditions: splitConjunction(m[2])}, nil
	}

	return parsedQuery{}, fmt.Errorf("%w: %q", ErrUnsupportedQuery, query)
}

// splitConjunction splits a WHERE clause into its AND-conjoined fragments.
// Clauses written in the grouped style are split on the literal ") AND ("
// sequence; otherwise the clause is split on " AND " case-insensitively.
// Each fragment then has at most one leading "(" and one trailing ")"
// stripped before trimming.
func splitConjunction(clause string) []string {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return nil
	}

	var parts []string
	if strings.Contains(clause, ") AND (") {
		parts = strings.Split(clause, ") AND (")
	} else {
		parts = andSplitRe.Split(clause, -1)
	}

	fragments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimPrefix(part, "(")
		part = strings.TrimSuffix(part, ")")
		fragments = append(fragments, strings.TrimSpace(part))
	}
	return fragments
}

// matchesConditions reports whether doc satisfies every fragment of the
// conjunction. Evaluation fails fast on the first unsupported fragment or
// missing parameter.
func matchesConditions(doc Document, conditions []string, params map[string]any) (bool, error) {
	for _, condition := range conditions {
		ok, err := evalCondition(doc, condition, params)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
