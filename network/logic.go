package network

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"
)

// rawEdge is an edge as read by the scanner, before arena placement.
type rawEdge struct {
	source     int
	activating bool
	positive   bool
	ptm        bool
	decay      bool
}

// unit is a single edge or a PTM pair kept in parser order.
type unit []rawEdge

type rawTerm struct {
	kind     TermKind
	positive bool
	units    []unit
}

func (t rawTerm) sources() []int {
	var out []int
	for _, u := range t.units {
		for _, e := range u {
			out = append(out, e.source)
		}
	}
	return out
}

// parsedLogic is the canonical result for one node.
type parsedLogic struct {
	terms     []rawTerm
	decaySign bool
}

// logicParser scans one logic string. Parentheses and whitespace only
// delimit names; every other delimiter drives a state transition.
type logicParser struct {
	g      grammar
	target int
	node   string
	line   int
	src    string
	names  []string
	lookup map[string]int

	token    strings.Builder
	tokenPos int

	negate    bool
	negatePos int
	positive  bool
	units     []unit
	terms     []rawTerm

	significant bool // a non-blank rune has been read

	inDecay    bool
	decayPos   int
	decayEdges int
	afterDecay bool // a decay scope just closed; only a separator may follow

	inPTM     bool
	ptmPos    int
	ptm       unit
	ptmCommas int
	inActive  bool // inside the [a] active marker
	active    bool
	activeLen int
}

// parseLogic canonicalizes the logic of node target.
func parseLogic(g grammar, target, line int, names []string, lookup map[string]int, logic string) (parsedLogic, error) {
	p := &logicParser{
		g:        g,
		target:   target,
		node:     names[target],
		line:     line,
		src:      logic,
		names:    names,
		lookup:   lookup,
		positive: true,
	}
	for i, r := range logic {
		if err := p.step(i, r); err != nil {
			return parsedLogic{}, err
		}
	}
	if err := p.finish(); err != nil {
		return parsedLogic{}, err
	}

	out := parsedLogic{terms: p.terms}
	// decay terms sort first and negatives lead, so the leading term
	// carries the decay sign
	if len(p.terms) > 0 && p.terms[0].kind == TermDecay {
		out.decaySign = p.terms[0].positive
	}

	return out, nil
}

func (p *logicParser) fail(pos int, err error) error {
	return &ParseError{Node: p.node, Line: p.line, Logic: p.src, Pos: pos, Err: err}
}

func (p *logicParser) step(i int, r rune) error {
	blank := unicode.IsSpace(r)
	defer func() {
		if !blank {
			p.significant = true
		}
	}()

	switch r {
	case '(', ')':
		return p.flushToken()
	case '~':
		return p.negation(i)
	case '+', '-':
		return p.separator(i, r == '+')
	case '<':
		return p.openDecay(i)
	case '>':
		return p.closeDecay(i)
	case '[':
		return p.openPTM(i)
	case ']':
		return p.closePTM(i)
	case ',':
		return p.comma(i)
	}
	if blank {
		return p.flushToken()
	}
	if p.token.Len() == 0 {
		if p.afterDecay {
			return p.fail(i, ErrMissingPlus)
		}
		p.tokenPos = i
	}
	p.token.WriteRune(r)

	return nil
}

// flushToken resolves the pending name into an edge.
func (p *logicParser) flushToken() error {
	if p.token.Len() == 0 {
		return nil
	}
	name, pos := p.token.String(), p.tokenPos
	p.token.Reset()

	source, ok := p.lookup[name]
	if !ok {
		return p.fail(pos, fmt.Errorf("%w %q", ErrUnknownNode, name))
	}
	e := rawEdge{
		source:     source,
		activating: !p.negate,
		positive:   p.positive,
		ptm:        p.inPTM,
		decay:      p.inDecay,
	}
	p.negate = false

	if p.inPTM {
		if p.inActive {
			p.activeLen++
		}
		p.ptm = append(p.ptm, e)
		return nil
	}
	p.units = append(p.units, unit{e})

	return nil
}

func (p *logicParser) negation(i int) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if p.afterDecay {
		return p.fail(i, ErrMissingPlus)
	}
	if p.negate {
		return p.fail(p.negatePos, ErrDanglingNegation)
	}
	p.negate, p.negatePos = true, i

	return nil
}

func (p *logicParser) pendingNegation() error {
	if p.negate {
		return p.fail(p.negatePos, ErrDanglingNegation)
	}
	return nil
}

func (p *logicParser) separator(i int, plus bool) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if err := p.pendingNegation(); err != nil {
		return err
	}
	if p.inPTM {
		return p.fail(i, ErrUnbalancedPTM)
	}
	if !plus && !p.inDecay && !p.g.negativeTerms {
		return p.fail(i, ErrNegativeTerm)
	}
	if err := p.flushTerm(i); err != nil {
		return err
	}
	p.afterDecay = false
	p.positive = plus

	return nil
}

func (p *logicParser) openDecay(i int) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if p.inDecay {
		return p.fail(i, ErrUnbalancedDecay)
	}
	if p.significant {
		return p.fail(i, ErrDecayNotAtStart)
	}
	p.inDecay, p.decayPos, p.decayEdges = true, i, 0
	p.positive = true

	return nil
}

func (p *logicParser) closeDecay(i int) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if !p.inDecay {
		return p.fail(i, ErrUnbalancedDecay)
	}
	if p.inPTM {
		return p.fail(p.ptmPos, ErrUnbalancedPTM)
	}
	if err := p.pendingNegation(); err != nil {
		return err
	}
	if err := p.flushTerm(i); err != nil {
		return err
	}
	if p.decayEdges == 0 {
		return p.fail(p.decayPos, ErrEmptyDecayTerm)
	}
	p.inDecay = false
	p.afterDecay = true
	p.positive = true

	return nil
}

func (p *logicParser) openPTM(i int) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if p.afterDecay {
		return p.fail(i, ErrMissingPlus)
	}
	if err := p.pendingNegation(); err != nil {
		return err
	}
	if p.inPTM {
		// [[a], b] marks the pair active; only the first input may carry it
		if p.inActive || p.active || len(p.ptm) > 0 {
			return p.fail(i, ErrActiveMarker)
		}
		p.inActive = true
		return nil
	}
	p.inPTM, p.ptmPos, p.ptm, p.ptmCommas = true, i, nil, 0

	return nil
}

func (p *logicParser) closePTM(i int) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if err := p.pendingNegation(); err != nil {
		return err
	}
	if p.inActive {
		if p.activeLen != 1 {
			return p.fail(i, ErrActiveMarker)
		}
		p.inActive, p.active = false, true
		return nil
	}
	if !p.inPTM {
		return p.fail(i, ErrUnbalancedPTM)
	}
	if len(p.ptm) != 2 {
		return p.fail(p.ptmPos, ErrPTMSize)
	}
	if p.ptmCommas != 1 {
		return p.fail(p.ptmPos, ErrInvalidComma)
	}
	pair := p.ptm
	if p.active {
		pair[1].activating = !pair[1].activating
	}
	p.units = append(p.units, pair)
	p.inPTM, p.ptm, p.ptmCommas = false, nil, 0
	p.active, p.activeLen = false, 0

	return nil
}

func (p *logicParser) comma(i int) error {
	if err := p.flushToken(); err != nil {
		return err
	}
	if !p.inPTM {
		return p.fail(i, ErrInvalidComma)
	}
	if p.inActive {
		return p.fail(i, ErrActiveMarker)
	}
	if err := p.pendingNegation(); err != nil {
		return err
	}
	if p.ptmCommas > 0 || len(p.ptm) != 1 {
		return p.fail(i, ErrInvalidComma)
	}
	p.ptmCommas++

	return nil
}

// flushTerm closes the units read so far into a canonically sorted term.
func (p *logicParser) flushTerm(pos int) error {
	if len(p.units) == 0 {
		return nil
	}
	units := p.units
	p.units = nil

	kind := TermRegular
	if p.inDecay {
		kind = TermDecay
	} else {
		for _, u := range units {
			if len(u) == 2 {
				kind = TermPTM
				break
			}
		}
	}

	seen := make(map[int]bool)
	count := 0
	for _, u := range units {
		for _, e := range u {
			if seen[e.source] {
				return p.fail(pos, fmt.Errorf("%w %q in one term", ErrRepeatedInput, p.names[e.source]))
			}
			seen[e.source] = true
			count++
		}
	}

	// pairs sort as units by their first element
	sort.SliceStable(units, func(a, b int) bool {
		return slices.Compare(unitSources(units[a]), unitSources(units[b])) < 0
	})

	if kind == TermDecay {
		p.decayEdges += count
	}
	p.terms = append(p.terms, rawTerm{kind: kind, positive: p.positive, units: units})

	return nil
}

func unitSources(u unit) []int {
	out := make([]int, len(u))
	for i, e := range u {
		out[i] = e.source
	}
	return out
}

func (p *logicParser) finish() error {
	end := len(p.src)
	if err := p.flushToken(); err != nil {
		return err
	}
	if p.inPTM {
		return p.fail(p.ptmPos, ErrUnbalancedPTM)
	}
	if p.inDecay {
		return p.fail(p.decayPos, ErrUnbalancedDecay)
	}
	if err := p.pendingNegation(); err != nil {
		return err
	}
	if err := p.flushTerm(end); err != nil {
		return err
	}
	if err := p.checkRepeats(); err != nil {
		return err
	}

	sort.SliceStable(p.terms, func(a, b int) bool {
		return termLess(p.terms[a], p.terms[b])
	})
	return nil
}

// checkRepeats enforces the cross-term rule: a source feeds the target at
// most once outside PTM pairs, and each ordered PTM pair appears once.
func (p *logicParser) checkRepeats() error {
	type tally struct{ single, positive, negative int }
	counts := make(map[int]*tally)
	for _, t := range p.terms {
		for _, u := range t.units {
			if len(u) == 2 {
				continue
			}
			c := counts[u[0].source]
			if c == nil {
				c = &tally{}
				counts[u[0].source] = c
			}
			c.single++
			if u[0].positive {
				c.positive++
			} else {
				c.negative++
			}
		}
	}

	pairs := make(map[[2]int]bool)
	for _, t := range p.terms {
		for _, u := range t.units {
			if len(u) == 2 {
				key := [2]int{u[0].source, u[1].source}
				if pairs[key] {
					return p.fail(-1, fmt.Errorf("%w [%s, %s]", ErrRepeatedInput, p.names[key[0]], p.names[key[1]]))
				}
				pairs[key] = true
				continue
			}
			src := u[0].source
			c := counts[src]
			if c.single <= 1 {
				continue
			}
			if p.g.signedSelfEdge && src == p.target && c.single == 2 && c.positive == 1 && c.negative == 1 {
				continue
			}
			return p.fail(-1, fmt.Errorf("%w %q", ErrRepeatedInput, p.names[src]))
		}
	}

	return nil
}

// termLess orders by kind priority, size, largest source, then sources.
// Within the decay scope negative terms precede positive ones.
func termLess(x, y rawTerm) bool {
	if x.kind != y.kind {
		return x.kind < y.kind
	}
	if x.kind == TermDecay && x.positive != y.positive {
		return !x.positive
	}
	xs, ys := x.sources(), y.sources()
	if len(xs) != len(ys) {
		return len(xs) < len(ys)
	}
	if mx, my := slices.Max(xs), slices.Max(ys); mx != my {
		return mx < my
	}

	return slices.Compare(xs, ys) < 0
}
