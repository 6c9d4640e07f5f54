package scene

import (
	"errors"
	"strings"
	"testing"
)

func render(calls []Call) string {
	parts := make([]string, len(calls))
	for i, c := range calls {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func TestParse(t *testing.T) {
	type tc struct {
		src  string
		want string
	}

	tests := map[string]tc{
		"empty":            {src: "", want: ""},
		"whitespace only":  {src: "  \n\t", want: ""},
		"single":           {src: "top(10)", want: "top(10)"},
		"no arguments":     {src: "pinEdges()", want: "pinEdges()"},
		"chain":            {src: "top(10) horizontally(5%)", want: "top(10) horizontally(5%)"},
		"dot separated":    {src: "top(10).left(4px)", want: "top(10) left(4)"},
		"negative":         {src: "marginTop(-4.5)", want: "marginTop(-4.5)"},
		"negative percent": {src: "vCenter(-10%)", want: "vCenter(-10%)"},
		"member":           {src: "top(header.bottom)", want: "top(header.bottom)"},
		"named":            {src: "below(header, aligned: left)", want: "below(header, aligned: left)"},
		"many args":        {src: "margin(1, 2, 3, 4)", want: "margin(1, 2, 3, 4)"},
		"comments":         {src: "top(1) /* note */ left(2)", want: "top(1) left(2)"},
		"multiline": {
			src:  "below(a, b)\n  sizeToFit(widthFlexible)\n",
			want: "below(a, b) sizeToFit(widthFlexible)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			calls, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if got := render(calls); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParse_Args(t *testing.T) {
	calls, err := Parse("below(header.bottom, aligned: 50%)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(calls) != 1 || len(calls[0].Args) != 2 {
		t.Fatalf("Parse() = %v, want one call with 2 args", calls)
	}
	m, p := calls[0].Args[0], calls[0].Args[1]
	if m.Kind != ArgMember || m.Ident != "header" || m.Member != "bottom" {
		t.Errorf("member arg = %+v, want header.bottom", m)
	}
	if p.Kind != ArgPercent || p.Num != 50 || p.Key != "aligned" {
		t.Errorf("named arg = %+v, want aligned: 50%%", p)
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		src string
	}

	tests := map[string]tc{
		"bare number":   {src: "10"},
		"not closed":    {src: "top(10"},
		"empty arg":     {src: "top(,)"},
		"unit":          {src: "top(2em)"},
		"leading dot":   {src: ".top(1)"},
		"missing value": {src: "below(aligned:"},
		"bad member":    {src: "top(header.10)"},
		"no separator":  {src: "top(1 2)"},
		"bare ident":    {src: "top"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.src, err, ErrSyntax)
			}
		})
	}
}
