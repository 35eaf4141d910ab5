// Package literal parses the Python-style list and map literals embedded in
// Notus metadata files. It accepts only bracketed sequences and flat maps of
// quoted strings, never arbitrary expressions, so untrusted file content is
// never evaluated.
package literal

import (
	"strings"
	"unicode"

	"golang.org/x/xerrors"
)

// ParseStringList parses a literal such as `['a', "b"]` into its elements.
// Anything other than a (possibly empty) list of quoted strings is an error.
func ParseStringList(s string) ([]string, error) {
	p := &parser{input: strings.TrimSpace(s)}
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, xerrors.Errorf("trailing data after list: %q", p.rest())
	}
	return list, nil
}

// ParseStringMap parses a literal such as `{'FAMILY': '1.2.3'}` into a map.
// Keys and values must both be quoted strings.
func ParseStringMap(s string) (map[string]string, error) {
	p := &parser{input: strings.TrimSpace(s)}
	m, err := p.parseMap()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, xerrors.Errorf("trailing data after map: %q", p.rest())
	}
	return m, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseList() ([]string, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	list := []string{}
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return list, nil
	}
	for {
		elem, err := p.parseString()
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipSpace()
			// Tolerate a trailing comma before the closing bracket.
			if p.peek() == ']' {
				p.pos++
				return list, nil
			}
		case ']':
			p.pos++
			return list, nil
		default:
			return nil, xerrors.Errorf("expected ',' or ']' at offset %d", p.pos)
		}
	}
}

func (p *parser) parseMap() (map[string]string, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	m := map[string]string{}
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return m, nil
	}
	for {
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.parseString()
		if err != nil {
			return nil, err
		}
		m[key] = value
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipSpace()
			if p.peek() == '}' {
				p.pos++
				return m, nil
			}
		case '}':
			p.pos++
			return m, nil
		default:
			return nil, xerrors.Errorf("expected ',' or '}' at offset %d", p.pos)
		}
	}
}

func (p *parser) parseString() (string, error) {
	p.skipSpace()
	quote := p.peek()
	if quote != '\'' && quote != '"' {
		return "", xerrors.Errorf("expected quoted string at offset %d", p.pos)
	}
	p.pos++
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", xerrors.New("unterminated escape sequence")
			}
			next := p.input[p.pos+1]
			switch next {
			case '\\', '\'', '"':
				b.WriteByte(next)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				return "", xerrors.Errorf("unsupported escape sequence %q", string(next))
			}
			p.pos += 2
		case quote:
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", xerrors.New("unterminated string literal")
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return xerrors.Errorf("expected %q at offset %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) rest() string {
	return p.input[p.pos:]
}
