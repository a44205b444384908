package docstore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The supported condition shapes, tried in this order.
var (
	// CONTAINS(c.<path>, <operand>, true) - case-insensitive substring test
	containsConditionRe = regexp.MustCompile(`(?i)^CONTAINS\(\s*c\.([\w.]+)\s*,\s*(.+?)\s*,\s*true\s*\)$`)

	// c.<path> <op> <operand> with <op> in {=, <, <=, >, >=}
	comparisonConditionRe = regexp.MustCompile(`^c\.([\w.]+)\s*(<=|>=|=|<|>)\s*(.+)$`)

	numericLiteralRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// evalCondition evaluates one WHERE fragment against a document. A fragment
// matching neither supported shape fails the whole query rather than
// silently evaluating to true or false.
func evalCondition(doc Document, fragment string, params map[string]any) (bool, error) {
	if m := containsConditionRe.FindStringSubmatch(fragment); m != nil {
		operand, err := resolveOperand(m[2], params)
		if err != nil {
			return false, err
		}
		value, _ := resolvePath(doc, m[1])

		field, fieldIsString := value.(string)
		needle, operandIsString := operand.(string)
		if !fieldIsString || !operandIsString {
			return false, nil
		}
		return strings.Contains(strings.ToLower(field), strings.ToLower(needle)), nil
	}

	if m := comparisonConditionRe.FindStringSubmatch(fragment); m != nil {
		operand, err := resolveOperand(m[3], params)
		if err != nil {
			return false, err
		}
		value, found := resolvePath(doc, m[1])

		switch m[2] {
		case "=":
			// An unset field equals nothing, not even null.
			return found && deepEqual(value, operand), nil
		default:
			// Ordering comparisons require both sides numeric; anything
			// else evaluates to false rather than erroring.
			fieldNum, fieldOK := value.(float64)
			operandNum, operandOK := operand.(float64)
			if !fieldOK || !operandOK {
				return false, nil
			}
			switch m[2] {
			case "<":
				return fieldNum < operandNum, nil
			case "<=":
				return fieldNum <= operandNum, nil
			case ">":
				return fieldNum > operandNum, nil
			case ">=":
				return fieldNum >= operandNum, nil
			}
		}
	}

	return false, fmt.Errorf("%w: %q", ErrUnsupportedCondition, fragment)
}

// resolveOperand resolves the right-hand side of a condition: a named
// parameter, a quoted string literal, the keywords true/false/null, or a
// numeric literal. Parameter values are canonicalized so they compare like
// with like against stored documents.
func resolveOperand(token string, params map[string]any) (any, error) {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, "@") {
		value, ok := params[token]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingParameter, token)
		}
		canonical, err := canonicalValue(value)
		if err != nil {
			return nil, fmt.Errorf("docstore: parameter %s: %w", token, err)
		}
		return canonical, nil
	}

	if len(token) >= 2 {
		if (token[0] == '\'' && token[len(token)-1] == '\'') ||
			(token[0] == '"' && token[len(token)-1] == '"') {
			return token[1 : len(token)-1], nil
		}
	}

	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}

	if numericLiteralRe.MatchString(token) {
		number, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: operand %q", ErrUnsupportedCondition, token)
		}
		return number, nil
	}

	return nil, fmt.Errorf("%w: operand %q", ErrUnsupportedCondition, token)
}
