package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ArgKind tells how an argument was written.
type ArgKind uint8

const (
	ArgNumber  ArgKind = iota // 10, -4.5, 10px
	ArgPercent                // 50%
	ArgIdent                  // header, left, widthFlexible
	ArgMember                 // header.bottom
)

// Arg is one directive argument. Key is set for named arguments such as
// "aligned: left".
type Arg struct {
	Key    string
	Kind   ArgKind
	Num    float64
	Ident  string
	Member string
}

func (a Arg) String() string {
	var s string
	switch a.Kind {
	case ArgNumber:
		s = strconv.FormatFloat(a.Num, 'g', -1, 64)
	case ArgPercent:
		s = strconv.FormatFloat(a.Num, 'g', -1, 64) + "%"
	case ArgMember:
		s = a.Ident + "." + a.Member
	default:
		s = a.Ident
	}
	if a.Key != "" {
		return a.Key + ": " + s
	}
	return s
}

// Call is one directive of a chain.
type Call struct {
	Name string
	Args []Arg
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ErrSyntax is wrapped by every chain parse error.
var ErrSyntax = errors.New("syntax error")

type token struct {
	tt   css.TokenType
	data string
}

// tokens lexes src with the CSS tokenizer, dropping whitespace and
// comments.
func tokens(src string) ([]token, error) {
	l := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(src))))
	var out []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			return out, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		out = append(out, token{tt: tt, data: string(data)})
	}
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// Parse parses a directive chain such as
//
//	top(10) horizontally(5%) below(header, aligned: left) sizeToFit(width)
//
// Calls may be separated by whitespace or dots.
func Parse(src string) ([]Call, error) {
	toks, err := tokens(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var calls []Call
	for {
		t, ok := p.next()
		if !ok {
			return calls, nil
		}
		if t.tt == css.DelimToken && t.data == "." && len(calls) > 0 {
			continue
		}
		if t.tt != css.FunctionToken {
			return nil, fmt.Errorf("%w: expected a directive, got %q", ErrSyntax, t.data)
		}
		call := Call{Name: strings.TrimSuffix(t.data, "(")}
		if call.Args, err = p.args(call.Name); err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
}

func (p *parser) args(name string) ([]Arg, error) {
	var args []Arg
	if t, ok := p.peek(); ok && t.tt == css.RightParenthesisToken {
		p.pos++
		return nil, nil
	}
	for {
		arg, err := p.arg(name)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		t, ok := p.next()
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %s( is not closed", ErrSyntax, name)
		case t.tt == css.RightParenthesisToken:
			return args, nil
		case t.tt != css.CommaToken:
			return nil, fmt.Errorf("%w: unexpected %q in %s()", ErrSyntax, t.data, name)
		}
	}
}

func (p *parser) arg(name string) (Arg, error) {
	var arg Arg
	t, ok := p.next()
	if !ok {
		return arg, fmt.Errorf("%w: %s( is not closed", ErrSyntax, name)
	}
	if t.tt == css.IdentToken {
		if c, ok := p.peek(); ok && c.tt == css.ColonToken {
			arg.Key = t.data
			p.pos++
			if t, ok = p.next(); !ok {
				return arg, fmt.Errorf("%w: missing value for %s in %s()", ErrSyntax, arg.Key, name)
			}
		}
	}

	switch t.tt {
	case css.NumberToken:
		arg.Kind = ArgNumber
		return arg, parseNum(&arg.Num, t.data, name)
	case css.PercentageToken:
		arg.Kind = ArgPercent
		return arg, parseNum(&arg.Num, strings.TrimSuffix(t.data, "%"), name)
	case css.DimensionToken:
		num, unit := splitDimension(t.data)
		if !strings.EqualFold(unit, "px") {
			return arg, fmt.Errorf("%w: unsupported unit %q in %s()", ErrSyntax, unit, name)
		}
		arg.Kind = ArgNumber
		return arg, parseNum(&arg.Num, num, name)
	case css.IdentToken:
		arg.Kind = ArgIdent
		arg.Ident = t.data
		if d, ok := p.peek(); ok && d.tt == css.DelimToken && d.data == "." {
			p.pos++
			m, ok := p.next()
			if !ok || m.tt != css.IdentToken {
				return arg, fmt.Errorf("%w: expected a member after %s. in %s()", ErrSyntax, arg.Ident, name)
			}
			arg.Kind = ArgMember
			arg.Member = m.data
		}
		return arg, nil
	}
	return arg, fmt.Errorf("%w: unexpected %q in %s()", ErrSyntax, t.data, name)
}

func parseNum(dst *float64, s, name string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: bad number %q in %s()", ErrSyntax, s, name)
	}
	*dst = v
	return nil
}

// splitDimension splits "10px" into "10" and "px".
func splitDimension(s string) (string, string) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
