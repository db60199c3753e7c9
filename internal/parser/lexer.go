package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Lexer turns a sequential character stream into tokens, one NextToken
// call at a time. The only state carried between calls is the single
// buffered look-ahead character, so a Lexer is not reentrant: use one
// instance per input stream.
type Lexer struct {
	r      *bufio.Reader
	last   byte // look-ahead: next unconsumed character
	eof    bool
	line   int
	column int
	offset int
	errors []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func NewLexer(r io.Reader) *Lexer {
	// The synthetic leading blank primes the look-ahead; it is skipped
	// as whitespace on the first NextToken call.
	return &Lexer{
		r:      bufio.NewReader(r),
		last:   ' ',
		line:   1,
		column: 0,
		offset: -1,
	}
}

func NewLexerFromString(source string) *Lexer {
	return NewLexer(strings.NewReader(source))
}

// Errors returns the scan notes recorded so far. Lexing never stops on
// a note; malformed numeric text in particular stays in the stream.
func (l *Lexer) Errors() []ScanError {
	return l.errors
}

// NextToken returns the next token. Once the stream is exhausted it
// returns EOF on every subsequent call.
func (l *Lexer) NextToken() Token {
	for !l.eof && isSpace(l.last) {
		l.readChar()
	}

	if l.eof {
		return Token{Type: EOF, Position: l.pos()}
	}

	start := l.pos()

	// identifier: [a-zA-Z][a-zA-Z0-9]*
	if isAlpha(l.last) {
		var sb strings.Builder
		for !l.eof && isAlnum(l.last) {
			sb.WriteByte(l.last)
			l.readChar()
		}
		text := sb.String()

		switch text {
		case "def":
			return Token{Type: DEF, Lexeme: text, Position: start}
		case "extern":
			return Token{Type: EXTERN, Lexeme: text, Position: start}
		}
		return Token{Type: IDENTIFIER, Lexeme: text, Position: start}
	}

	// number: [0-9.]+
	if isDigit(l.last) || l.last == '.' {
		return l.scanNumber(start)
	}

	// '#' starts a comment until end of line
	if l.last == '#' {
		for !l.eof && l.last != '\n' && l.last != '\r' {
			l.readChar()
		}
		return l.NextToken()
	}

	tok := Token{Type: SYMBOL, Lexeme: string(l.last), Position: start}
	l.readChar()
	return tok
}

func (l *Lexer) scanNumber(start Position) Token {
	var sb strings.Builder
	for !l.eof && (isDigit(l.last) || l.last == '.') {
		sb.WriteByte(l.last)
		l.readChar()
	}
	text := sb.String()

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Multiple dots and friends are accepted by the grammar, so the
		// token survives with a best-effort value; the note lets tooling
		// surface what happened.
		l.errors = append(l.errors, ScanError{
			Message:  fmt.Sprintf("malformed number literal %q", text),
			Position: start,
			Length:   len(text),
		})
	}

	return Token{Type: NUMBER, Lexeme: text, Value: value, Position: start}
}

func (l *Lexer) readChar() {
	if l.eof {
		return
	}

	b, err := l.r.ReadByte()
	if err != nil {
		l.eof = true
		l.last = 0
		return
	}

	if l.last == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.offset++
	l.last = b
}

// pos is the position of the look-ahead character.
func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.offset}
}

// Helper functions.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c))
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
