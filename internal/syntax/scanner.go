package syntax

// tokenizerState is the state of a Tokenizer.
type tokenizerState uint8

const (
	stateReady    tokenizerState = iota // no buffered tokens; next pull reads a line
	stateBuffered                       // tokens of the current line are pending
	stateErrored                        // a lexical error was recorded; terminal
)

// Tokenizer turns source lines into located tokens, one line at a time.
// Lines are read only when the buffered tokens of the previous line have
// been consumed. The first lexical error stops the tokenizer for good; it is
// reported by Err.
type Tokenizer struct {
	src   LineSource
	state tokenizerState

	// Tokens of the current line
	buf  []Token
	next int

	line uint32   // number of lines consumed
	loc  Location // location of the most recently emitted token

	err *LocalizedError
}

// NewTokenizer creates a Tokenizer reading lines from src.
func NewTokenizer(src LineSource) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next token. It returns false at the end of the input
// and after a lexical error.
func (t *Tokenizer) Next() (Token, bool) {
	for {
		switch t.state {
		case stateErrored:
			return Token{}, false

		case stateBuffered:
			tok := t.buf[t.next]
			t.next++
			if t.next == len(t.buf) {
				t.state = stateReady
			}
			t.loc = tok.Loc
			return tok, true

		case stateReady:
			line, ok := t.src.NextLine()
			if !ok {
				return Token{}, false
			}
			t.scanLine(line)
		}
	}
}

// scanLine tokenizes one line into the buffer and selects the next state.
func (t *Tokenizer) scanLine(line string) {
	t.line++
	t.buf = t.buf[:0]
	t.next = 0

	seg := NewSegmenter(line)
	for seg.Next() {
		loc := NewLocation(t.line, uint32(len(t.buf)))
		op, lit, err := classify(seg.Snippet().Text)
		if err != nil {
			t.fail(err, loc)
			return
		}
		t.buf = append(t.buf, Token{Op: op, Lit: lit, Loc: loc})
	}
	if err := seg.Err(); err != nil {
		t.fail(&TokenError{Message: err.Error()}, NewLocation(t.line, uint32(len(t.buf))))
		return
	}

	if len(t.buf) > 0 {
		t.state = stateBuffered
	}
}

// fail records the lexical error and makes the tokenizer terminal.
func (t *Tokenizer) fail(err error, loc Location) {
	t.err = WithLocation(err, loc)
	t.buf = t.buf[:0]
	t.state = stateErrored
}

// Err returns the lexical error that stopped the tokenizer, or nil.
func (t *Tokenizer) Err() *LocalizedError {
	return t.err
}

// Location returns the location of the most recently emitted token.
func (t *Tokenizer) Location() Location {
	return t.loc
}

// Lines returns the number of lines consumed so far.
func (t *Tokenizer) Lines() uint32 {
	return t.line
}
