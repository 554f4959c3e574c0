package douceuradapter

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cascade/cssom"
)

// ParseValue converts the text of a declaration value into terms. Terms
// following a comma or a slash carry the respective operator.
func ParseValue(text string) ([]cssom.Term, error) {
	ts, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	terms, err := parseTerms(ts, false)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, syntaxError("empty value")
	}
	return terms, nil
}

// parseTerms reads terms up to the end of the stream or, within function
// arguments, up to the closing parenthesis, which is consumed.
func parseTerms(ts *tokens, inFunction bool) ([]cssom.Term, error) {
	var terms []cssom.Term
	op := cssom.OpNone
	sign := ""
	for t := ts.next(); t != nil; t = ts.next() {
		if sign != "" && !isNumeric(t) {
			return nil, syntaxError("dangling sign %q", sign)
		}
		var term cssom.Term
		var err error
		switch t.Type {
		case scanner.TokenS:
			continue
		case scanner.TokenChar:
			switch t.Value {
			case ",":
				op = cssom.OpComma
			case "/":
				op = cssom.OpSlash
			case "-", "+":
				sign = t.Value
			case ")":
				if inFunction {
					return terms, nil
				}
				return nil, syntaxError("unbalanced parenthesis")
			default:
				return nil, syntaxError("unexpected %q", t.Value)
			}
			continue
		case scanner.TokenIdent:
			term = cssom.NewIdent(t.Value)
		case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
			term, err = numeric(sign, t)
			sign = ""
		case scanner.TokenString:
			term = cssom.NewString(unquote(t.Value))
		case scanner.TokenHash:
			c, ok := cssom.ParseHexColor(t.Value)
			if !ok {
				return nil, syntaxError("invalid color %s", t.Value)
			}
			term = cssom.NewColor(c)
		case scanner.TokenURI:
			loc := strings.TrimSpace(t.Value[len("url(") : len(t.Value)-1])
			term = cssom.NewURI(unquote(loc))
		case scanner.TokenFunction:
			name := strings.ToLower(strings.TrimSuffix(t.Value, "("))
			args, ferr := parseTerms(ts, true)
			if ferr != nil {
				return nil, ferr
			}
			term = cssom.NewFunction(name, args...)
		default:
			return nil, syntaxError("unexpected %s", t.Value)
		}
		if err != nil {
			return nil, err
		}
		terms = append(terms, term.WithOperator(op))
		op = cssom.OpNone
	}
	if inFunction {
		return nil, syntaxError("missing closing parenthesis")
	}
	if sign != "" {
		return nil, syntaxError("dangling sign %q", sign)
	}
	return terms, nil
}

func isNumeric(t *scanner.Token) bool {
	switch t.Type {
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
		return true
	}
	return false
}

// numeric converts number, percentage and dimension tokens. Numbers without
// a fraction become integers.
func numeric(sign string, t *scanner.Token) (cssom.Term, error) {
	s := sign + t.Value
	switch t.Type {
	case scanner.TokenPercentage:
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return nil, syntaxError("invalid percentage %s", s)
		}
		return cssom.NewPercent(f), nil
	case scanner.TokenDimension:
		i := strings.IndexFunc(s, func(r rune) bool {
			return r != '+' && r != '-' && r != '.' && (r < '0' || r > '9')
		})
		f, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return nil, syntaxError("invalid number %s", s)
		}
		unit, ok := cssom.ParseUnit(s[i:])
		if !ok {
			return nil, syntaxError("unknown unit in %s", s)
		}
		return cssom.NewLength(f, unit), nil
	}
	if !strings.Contains(s, ".") {
		if n, err := strconv.Atoi(s); err == nil {
			return cssom.NewInteger(n), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, syntaxError("invalid number %s", s)
	}
	return cssom.NewNumber(f), nil
}
