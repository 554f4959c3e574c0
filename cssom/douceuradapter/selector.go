package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cascade/cssom"
)

// ParseSelector converts a single (not comma-separated) selector, e.g.
// "ul > li.item:nth-child(2n+1)::before".
//
// The selector has to be accepted by cascadia first. Functional
// pseudo-classes other than the nth-family (e.g. :not(…)) are kept with their
// raw argument.
func ParseSelector(text string) (*cssom.CombinedSelector, error) {
	if _, err := cascadia.ParseWithPseudoElement(text); err != nil {
		return nil, fmt.Errorf("%w: selector %q: %v", ErrSyntax, text, err)
	}
	ts, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	var steps []*cssom.Selector
	comb := cssom.CombinatorNone
	ts.skipSpace()
	for !ts.atEnd() {
		step, err := compound(ts)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", text, err)
		}
		step.Combinator = comb
		steps = append(steps, step)
		space := ts.skipSpace()
		t := ts.peek()
		switch {
		case t == nil:
			continue
		case isChar(t, ">"):
			comb = cssom.Child
		case isChar(t, "+"):
			comb = cssom.Adjacent
		case isChar(t, "~"):
			comb = cssom.Preceding
		case space:
			comb = cssom.Descendant
			continue
		default:
			return nil, syntaxError("selector %q: unexpected %q", text, t.Value)
		}
		ts.next()
		ts.skipSpace()
	}
	if len(steps) == 0 {
		return nil, syntaxError("empty selector")
	}
	return cssom.NewCombinedSelector(steps...), nil
}

// legacyPseudoElements may be written with a single colon.
var legacyPseudoElements = map[string]bool{
	"before": true, "after": true, "first-line": true, "first-letter": true,
}

var nthPseudoClasses = map[string]bool{
	"nth-child": true, "nth-last-child": true, "nth-of-type": true, "nth-last-of-type": true,
}

// compound reads the simple selectors of one step.
func compound(ts *tokens) (*cssom.Selector, error) {
	step := cssom.NewSelector(cssom.CombinatorNone)
	for t := ts.peek(); t != nil; t = ts.peek() {
		var part cssom.SelectorPart
		switch {
		case t.Type == scanner.TokenIdent && len(step.Parts) == 0:
			part = cssom.ElementName{Name: strings.ToLower(t.Value)}
			ts.next()
		case isChar(t, "*") && len(step.Parts) == 0:
			part = cssom.ElementName{Name: cssom.Wildcard}
			ts.next()
		case t.Type == scanner.TokenHash:
			part = cssom.ElementID{ID: t.Value[1:]}
			ts.next()
		case isChar(t, "."):
			ts.next()
			class := ts.next()
			if class == nil || class.Type != scanner.TokenIdent {
				return nil, syntaxError("class name expected")
			}
			part = cssom.ElementClass{Class: class.Value}
		case isChar(t, "["):
			attr, err := attribute(ts)
			if err != nil {
				return nil, err
			}
			part = attr
		case isChar(t, ":"):
			pseudo, err := pseudo(ts)
			if err != nil {
				return nil, err
			}
			part = pseudo
		default:
			if len(step.Parts) == 0 {
				return nil, syntaxError("unexpected %q", t.Value)
			}
			return step, nil
		}
		step.Parts = append(step.Parts, part)
	}
	return step, nil
}

var attributeOps = map[string]cssom.AttributeOp{
	"=":  cssom.AttrEquals,
	"~=": cssom.AttrIncludes,
	"|=": cssom.AttrDash,
	"^=": cssom.AttrPrefix,
	"$=": cssom.AttrSuffix,
	"*=": cssom.AttrSubstring,
}

func attribute(ts *tokens) (cssom.ElementAttribute, error) {
	var attr cssom.ElementAttribute
	ts.next() // [
	ts.skipSpace()
	name := ts.next()
	if name == nil || name.Type != scanner.TokenIdent {
		return attr, syntaxError("attribute name expected")
	}
	attr.Name = strings.ToLower(name.Value)
	ts.skipSpace()
	t := ts.next()
	if isChar(t, "]") {
		attr.Op = cssom.AttrExists
		return attr, nil
	}
	op, ok := attributeOps[tokenText(t)]
	if !ok {
		return attr, syntaxError("attribute operator expected")
	}
	attr.Op = op
	ts.skipSpace()
	v := ts.next()
	switch {
	case v == nil:
		return attr, syntaxError("attribute value expected")
	case v.Type == scanner.TokenString:
		attr.Value = unquote(v.Value)
	case v.Type == scanner.TokenIdent || v.Type == scanner.TokenNumber:
		attr.Value = v.Value
	default:
		return attr, syntaxError("unexpected attribute value %q", v.Value)
	}
	ts.skipSpace()
	if !isChar(ts.next(), "]") {
		return attr, syntaxError("missing ]")
	}
	return attr, nil
}

func tokenText(t *scanner.Token) string {
	if t == nil {
		return ""
	}
	return t.Value
}

// pseudo reads a pseudo-class or pseudo-element.
func pseudo(ts *tokens) (cssom.SelectorPart, error) {
	ts.next() // :
	element := false
	if isChar(ts.peek(), ":") {
		ts.next()
		element = true
	}
	t := ts.next()
	switch {
	case t == nil:
		return nil, syntaxError("pseudo-class expected")
	case t.Type == scanner.TokenIdent:
		name := strings.ToLower(t.Value)
		if element || legacyPseudoElements[name] {
			return cssom.PseudoElement(name), nil
		}
		return cssom.PseudoClass{Name: name}, nil
	case t.Type == scanner.TokenFunction && !element:
		pc := cssom.PseudoClass{Name: strings.ToLower(strings.TrimSuffix(t.Value, "("))}
		var arg strings.Builder
		for a := ts.next(); !isChar(a, ")"); a = ts.next() {
			if a == nil {
				return nil, syntaxError("missing closing parenthesis")
			}
			if a.Type != scanner.TokenS {
				arg.WriteString(a.Value)
			}
		}
		pc.Arg = arg.String()
		if nthPseudoClasses[pc.Name] {
			var ok bool
			if pc.A, pc.B, ok = cssom.ParseNth(pc.Arg); !ok {
				return nil, syntaxError("invalid argument for :%s", pc.Name)
			}
		}
		return pc, nil
	}
	return nil, syntaxError("unexpected %q", t.Value)
}
