package compiler

import (
	"fmt"

	"github.com/CTrabant/vibrex/internal/bitset"
)

// parser holds recursive-descent state for one compile. It is created and
// discarded within ParsePattern; nothing about it is retained by the
// resulting Program.
type parser struct {
	pat         []byte
	pos         int
	arena       *Arena
	limits      Limits
	branchCount int
}

// ParsePattern compiles pattern into a Program under the given limits. It
// implements the grammar from the pattern-syntax specification:
//
//	alt   -> cat ('|' cat)*
//	cat   -> piece+
//	piece -> atom quant?
//	atom  -> '.' | '^' | '$' | literal | '\' esc | '[' class ']' | '(' alt ')'
//	quant -> '*' | '+' | '?'
//
// Groups are always non-capturing; "(?:...)" is accepted as an alias for
// "(...)". Alternation is legal inside groups.
func ParsePattern(pattern string, limits Limits) (*Program, error) {
	if len(pattern) > limits.MaxPatternLen {
		return nil, resourceError(fmt.Sprintf("pattern too long (exceeds security limit of %d bytes)", limits.MaxPatternLen))
	}

	arena := NewArena(limits)
	p := &parser{pat: []byte(pattern), arena: arena, limits: limits}

	top, err := p.parseAlt(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.pat) {
		return nil, syntaxError(fmt.Sprintf("unexpected trailing bytes at offset %d", p.pos))
	}

	acceptID, aerr := arena.Alloc(State{Kind: KindAccept, Out: InvalidState, Out2: InvalidState})
	if aerr != nil {
		return nil, aerr
	}
	arena.patchAll(top.outs, acceptID)

	return newProgram(arena.States(), top.start), nil
}

func (p *parser) eof() bool { return p.pos >= len(p.pat) }
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.pat[p.pos]
}

func (p *parser) parseAlt(depth int) (frag, error) {
	first, err := p.parseCat(depth)
	if err != nil {
		return frag{}, err
	}
	branches := []frag{first}
	for !p.eof() && p.peek() == '|' {
		p.pos++
		p.branchCount++
		if p.branchCount > p.limits.MaxAlternation {
			return frag{}, resourceError(fmt.Sprintf("too many alternation branches (limit %d)", p.limits.MaxAlternation))
		}
		next, err := p.parseCat(depth)
		if err != nil {
			return frag{}, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return alt(p.arena, branches)
}

func (p *parser) parseCat(depth int) (frag, error) {
	var pieces []frag
	for !p.eof() && p.peek() != '|' && p.peek() != ')' {
		piece, err := p.parsePiece(depth)
		if err != nil {
			return frag{}, err
		}
		pieces = append(pieces, piece)
	}
	if len(pieces) == 0 {
		return emptyFrag(p.arena)
	}
	result := pieces[0]
	for _, next := range pieces[1:] {
		result = cat(p.arena, result, next)
	}
	return result, nil
}

func (p *parser) parsePiece(depth int) (frag, error) {
	atomFrag, err := p.parseAtom(depth)
	if err != nil {
		return frag{}, err
	}
	if p.eof() {
		return atomFrag, nil
	}
	switch p.peek() {
	case '*':
		p.pos++
		return star(p.arena, atomFrag)
	case '+':
		p.pos++
		return plus(p.arena, atomFrag)
	case '?':
		p.pos++
		return optional(p.arena, atomFrag)
	default:
		return atomFrag, nil
	}
}

func (p *parser) parseAtom(depth int) (frag, error) {
	if p.eof() {
		return frag{}, syntaxError("unexpected end of pattern")
	}
	c := p.pat[p.pos]
	switch c {
	case '*', '+', '?':
		return frag{}, syntaxError(fmt.Sprintf("quantifier %q with no preceding atom", c))
	case '.':
		p.pos++
		id, err := p.arena.Alloc(State{Kind: KindAny, Out: InvalidState})
		if err != nil {
			return frag{}, err
		}
		return frag{start: id, outs: []patch{{id, 0}}}, nil
	case '^':
		p.pos++
		id, err := p.arena.Alloc(State{Kind: KindStartAnchor, Out: InvalidState})
		if err != nil {
			return frag{}, err
		}
		return frag{start: id, outs: []patch{{id, 0}}}, nil
	case '$':
		p.pos++
		id, err := p.arena.Alloc(State{Kind: KindEndAnchor, Out: InvalidState})
		if err != nil {
			return frag{}, err
		}
		return frag{start: id, outs: []patch{{id, 0}}}, nil
	case '\\':
		p.pos++
		if p.eof() {
			return frag{}, syntaxError("trailing backslash")
		}
		b := p.pat[p.pos]
		p.pos++
		return p.literal(b)
	case '[':
		p.pos++
		cls, err := p.parseClass()
		if err != nil {
			return frag{}, err
		}
		id, aerr := p.arena.Alloc(State{Kind: KindClass, Class: cls, Out: InvalidState})
		if aerr != nil {
			return frag{}, aerr
		}
		return frag{start: id, outs: []patch{{id, 0}}}, nil
	case '(':
		p.pos++
		if p.pos+1 < len(p.pat) && p.pat[p.pos] == '?' && p.pat[p.pos+1] == ':' {
			p.pos += 2
		}
		depth++
		if depth > p.limits.MaxRecursion {
			return frag{}, resourceError(fmt.Sprintf("parser recursion depth exceeds limit %d", p.limits.MaxRecursion))
		}
		inner, err := p.parseAlt(depth)
		if err != nil {
			return frag{}, err
		}
		if p.eof() || p.peek() != ')' {
			return frag{}, syntaxError("unbalanced parenthesis")
		}
		p.pos++
		return inner, nil
	default:
		p.pos++
		return p.literal(c)
	}
}

func (p *parser) literal(b byte) (frag, error) {
	id, err := p.arena.Alloc(State{Kind: KindLiteral, Byte: b, Out: InvalidState})
	if err != nil {
		return frag{}, err
	}
	return frag{start: id, outs: []patch{{id, 0}}}, nil
}

// parseClass parses the body of a "[...]" atom, up to and including the
// closing bracket. A leading '^' negates the class. A '-' at the first or
// last position of the class body is literal rather than a range operator.
// An empty class, or a range whose high endpoint is less than its low
// endpoint, is a syntax error.
func (p *parser) parseClass() (*bitset.ByteClass, error) {
	cls := &bitset.ByteClass{}
	negated := false
	if !p.eof() && p.peek() == '^' {
		negated = true
		p.pos++
	}

	sawAny := false
	for {
		if p.eof() {
			return nil, syntaxError("unterminated character class")
		}
		if p.peek() == ']' {
			if !sawAny {
				return nil, syntaxError("empty character class")
			}
			p.pos++
			break
		}
		lo := p.pat[p.pos]
		p.pos++
		hi := lo
		sawAny = true

		if !p.eof() && p.peek() == '-' && p.pos+1 < len(p.pat) && p.pat[p.pos+1] != ']' {
			p.pos++ // consume '-'
			hi = p.pat[p.pos]
			p.pos++
			if hi < lo {
				return nil, syntaxError(fmt.Sprintf("invalid class range %q-%q", lo, hi))
			}
		}
		cls.SetRange(lo, hi)
	}

	if negated {
		cls.Negate()
	}
	return cls, nil
}
