package paramset

import "strings"

// defaultIndentUnit is pushed onto the indent stack for every nesting
// level. The optional-parameter marker modify_top(" ( ") (see
// [Printer.BeforeAction]) assumes this is exactly three characters wide;
// spec.md's own open questions flag this coupling rather than hide it.
const defaultIndentUnit = "   "

// Printer is the allowed-configuration printer (spec §4.9): a [Visitor]
// specialization that renders a schema tree in the source document's
// syntax, with comments, defaults, optional markers, and ellipses for
// unbounded sequences.
type Printer struct {
	buf strings.Builder

	indent []string

	keysWithCommas   map[string]bool
	keysWithEllipses map[string]bool

	frames []printerFrame

	firstParam bool
}

// printerFrame is the parent-display frame pushed in BeforeAction and
// popped in AfterAction, one per visited node. Only the very first node
// visited in a print pass carries non-empty closers (see
// [Printer.pushParentFrame]); every other frame is a structural no-op
// that exists purely to keep the push/pop stack in lockstep with the
// visitor's recursion.
type printerFrame struct {
	closers []string
}

// printerToken is one segment of a key split into its name and index
// parts, e.g. "outer.inner[2]" becomes [{"outer", false}, {"inner",
// false}, {"2", true}].
type printerToken struct {
	text    string
	isIndex bool
}

// NewPrinter returns a Printer ready to render a schema tree. prefix
// seeds the root indent level, letting a subtree be re-indented to fit
// inside a larger surrounding document.
func NewPrinter(prefix string) *Printer {
	return &Printer{
		indent:           []string{prefix},
		keysWithCommas:   make(map[string]bool),
		keysWithEllipses: make(map[string]bool),
		firstParam:       true,
	}
}

// String returns everything rendered so far.
func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) curIndent() string { return strings.Join(p.indent, "") }

func (p *Printer) pushIndent() { p.indent = append(p.indent, defaultIndentUnit) }

func (p *Printer) popIndent() { p.indent = p.indent[:len(p.indent)-1] }

func (p *Printer) modifyTop(s string) { p.indent[len(p.indent)-1] = s }

// BeforeAction implements [Visitor]. It never vetoes a subtree.
func (p *Printer) BeforeAction(n Param) bool {
	if c := n.ParamComment(); c != "" {
		for _, line := range strings.Split(c, "\n") {
			p.buf.WriteString(p.curIndent())
			p.buf.WriteString("# ")
			p.buf.WriteString(line)
			p.buf.WriteString("\n")
		}
	}

	if !IsSequenceElement(n.ParamKey()) {
		p.buf.WriteString("\n")
	}

	if n.IsOptional() {
		p.modifyTop(" ( ")
	}

	p.frames = append(p.frames, p.pushParentFrame(n))

	return true
}

// pushParentFrame computes and emits the ancestor-opener chain ahead of
// n, but only on the first node visited in this print pass: every other
// node is reached via the visitor's own recursive descent through its
// ancestors' EnterTable/EnterSequence calls, so there is nothing left to
// redisplay.
func (p *Printer) pushParentFrame(n Param) printerFrame {
	if !p.firstParam {
		return printerFrame{}
	}

	p.firstParam = false

	tokens := ancestorTokens(n.ParamKey())
	if len(tokens) <= 1 {
		return printerFrame{}
	}

	ancestors := tokens[:len(tokens)-1]

	var closers []string

	for i, cur := range ancestors {
		next := tokens[i+1]

		switch {
		case !cur.isIndex && !next.isIndex:
			p.buf.WriteString(p.curIndent())
			p.buf.WriteString(cur.text)
			p.buf.WriteString(": {\n")
			closers = append(closers, "}")

		case !cur.isIndex && next.isIndex:
			p.buf.WriteString(p.curIndent())
			p.buf.WriteString(cur.text)
			p.buf.WriteString(": [  # index: ")
			p.buf.WriteString(next.text)
			p.buf.WriteString("\n")
			closers = append(closers, "]")

		case cur.isIndex && !next.isIndex:
			p.buf.WriteString(p.curIndent())
			p.buf.WriteString("{\n")
			closers = append(closers, "}")

		default: // cur.isIndex && next.isIndex
			p.buf.WriteString(p.curIndent())
			p.buf.WriteString("[  # index: ")
			p.buf.WriteString(cur.text)
			p.buf.WriteString("\n")
			closers = append(closers, "]")
		}

		p.pushIndent()
	}

	reverseStrings(closers)

	return printerFrame{closers: closers}
}

// ancestorTokens splits key into its dotted-and-bracketed segments,
// e.g. "outer.inner[2][3]" yields the tokens outer, inner, 2, 3 in
// order, with the bracket contents flagged isIndex.
func ancestorTokens(key string) []printerToken {
	var tokens []printerToken

	for _, seg := range strings.Split(key, ".") {
		name, indices := splitIndices(seg)
		if name != "" {
			tokens = append(tokens, printerToken{text: name})
		}

		for _, ix := range indices {
			tokens = append(tokens, printerToken{text: ix, isIndex: true})
		}
	}

	return tokens
}

// splitIndices splits one dotted key segment like "foo[2][3]" into its
// bare name ("foo") and its ordered bracket contents ("2", "3").
func splitIndices(seg string) (name string, indices []string) {
	i := strings.IndexByte(seg, '[')
	if i < 0 {
		return seg, nil
	}

	name = seg[:i]
	rest := seg[i:]

	for len(rest) > 0 && rest[0] == '[' {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}

		indices = append(indices, rest[1:end])
		rest = rest[end+1:]
	}

	return name, indices
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// EnterTable implements [Visitor].
func (p *Printer) EnterTable(t TableParam) {
	p.buf.WriteString(p.curIndent())

	if !IsSequenceElement(t.ParamKey()) {
		p.buf.WriteString(t.ParamName())
		p.buf.WriteString(": ")
	}

	p.buf.WriteString("{\n")
	p.pushIndent()
}

// ExitTable implements [Visitor].
func (p *Printer) ExitTable(TableParam) {
	p.popIndent()
	p.buf.WriteString(p.curIndent())
	p.buf.WriteString("}")
}

// EnterSequence implements [Visitor]. It also populates the comma/ellipsis
// key sets consumed by [Printer.AfterAction] for this sequence's direct
// elements.
func (p *Printer) EnterSequence(s ElementsParam) {
	p.buf.WriteString(p.curIndent())

	if !IsSequenceElement(s.ParamKey()) {
		p.buf.WriteString(s.ParamName())
		p.buf.WriteString(": ")
	}

	p.buf.WriteString("[\n")
	p.pushIndent()

	elems := s.Elements()
	if len(elems) == 0 {
		return
	}

	isVector := false
	if v, ok := s.(interface{ IsVector() bool }); ok {
		isVector = v.IsVector()
	}

	if !isVector || s.HasDefault() {
		for _, e := range elems[:len(elems)-1] {
			p.keysWithCommas[e.ParamKey()] = true
		}

		return
	}

	if len(elems) != 1 {
		panic(fieldErr(s.ParamKey(), ErrLogic))
	}

	p.keysWithCommas[elems[0].ParamKey()] = true
	p.keysWithEllipses[elems[0].ParamKey()] = true
}

// ExitSequence implements [Visitor].
func (p *Printer) ExitSequence(ElementsParam) {
	p.popIndent()
	p.buf.WriteString(p.curIndent())
	p.buf.WriteString("]")
}

// Atom implements [Visitor].
func (p *Printer) Atom(a AtomParam) {
	p.buf.WriteString(p.curIndent())

	if !IsSequenceElement(a.ParamKey()) {
		p.buf.WriteString(a.ParamName())
		p.buf.WriteString(": ")
	}

	p.buf.WriteString(a.Stringify())
}

// AfterAction implements [Visitor].
func (p *Printer) AfterAction(n Param) {
	key := n.ParamKey()

	hadComma := p.keysWithCommas[key]
	if hadComma {
		p.buf.WriteString(",")
		delete(p.keysWithCommas, key)
	}

	if p.keysWithEllipses[key] {
		p.buf.WriteString("\n")
		p.buf.WriteString(p.curIndent())
		p.buf.WriteString("...")
		delete(p.keysWithEllipses, key)
	}

	if n.ParamKind() == KindAtom && n.HasDefault() {
		if hadComma {
			p.buf.WriteString("  # default")
		} else {
			p.buf.WriteString("   # default")
		}
	}

	if n.IsOptional() {
		p.modifyTop(defaultIndentUnit)
	}

	p.buf.WriteString("\n")

	frame := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]

	for _, c := range frame.closers {
		p.popIndent()
		p.buf.WriteString(p.curIndent())
		p.buf.WriteString(c)
		p.buf.WriteString("\n")
	}
}
