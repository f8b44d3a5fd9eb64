package conformance

import (
	"bufio"
	"io"
	"strconv"

	"bidi/internal/bidi"
	"bidi/internal/bidierr"
	"bidi/internal/typetoken"
)

// ParseFile reads one BidiTest.txt/BidiCharacterTest.txt-shaped corpus file
// and returns every test case it declares, in file order. @Levels/@Reorder
// directives carry forward to every case line that follows until the next
// directive of that kind replaces them, per the corpus format.
func ParseFile(name string, r io.Reader) ([]Case, error) {
	var cases []Case
	var levels []bidi.Level
	var order []int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		tokens := typetoken.NewScanner(line).ScanTokens()
		if len(tokens) <= 1 {
			continue // blank line: only the trailing EOF token
		}

		switch {
		case tokens[0].Type == typetoken.TokenDirective && tokens[0].Lexeme == "@Levels":
			parsed, err := parseLevels(tokens[1:])
			if err != nil {
				return nil, annotateLine(err, name, lineNo)
			}
			levels = parsed
		case tokens[0].Type == typetoken.TokenDirective && tokens[0].Lexeme == "@Reorder":
			parsed, err := parseOrder(tokens[1:])
			if err != nil {
				return nil, annotateLine(err, name, lineNo)
			}
			order = parsed
		case tokens[0].Type == typetoken.TokenIdent:
			c, err := parseCaseLine(tokens)
			if err != nil {
				return nil, annotateLine(err, name, lineNo)
			}
			c.File = name
			c.Line = lineNo
			c.WantLevels = levels
			c.WantOrder = order
			cases = append(cases, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func annotateLine(err error, file string, line int) error {
	return bidierr.NewConformanceAt(file, line, err.Error())
}

// parseLevels turns the tokens after "@Levels:" into a Level slice, mapping
// the corpus's 'x' removed-position sentinel to bidi.LevelRemoved.
func parseLevels(tokens []typetoken.Token) ([]bidi.Level, error) {
	var out []bidi.Level
	for _, tok := range tokens {
		if tok.Type == typetoken.TokenColon {
			continue
		}
		if tok.Type == typetoken.TokenIdent && tok.Lexeme == "x" {
			out = append(out, bidi.LevelRemoved)
			continue
		}
		if tok.Type != typetoken.TokenNumber {
			continue
		}
		n, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, err
		}
		out = append(out, bidi.Level(n))
	}
	return out, nil
}

func parseOrder(tokens []typetoken.Token) ([]int, error) {
	var out []int
	for _, tok := range tokens {
		if tok.Type != typetoken.TokenNumber {
			continue
		}
		n, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// parseCaseLine reads a "<types>;<flags>" line: a run of TokenIdent type
// codes, a semicolon, and a single integer flags bitmask.
func parseCaseLine(tokens []typetoken.Token) (Case, error) {
	var c Case
	i := 0
	for ; i < len(tokens) && tokens[i].Type == typetoken.TokenIdent; i++ {
		c.Types = append(c.Types, bidi.Type(tokens[i].Lexeme))
	}
	if err := bidi.Validate(c.Types); err != nil {
		return Case{}, err
	}
	if i >= len(tokens) || tokens[i].Type != typetoken.TokenSemicolon {
		return Case{}, bidierr.NewConformance("expected ';' after type list")
	}
	i++
	if i >= len(tokens) || tokens[i].Type != typetoken.TokenNumber {
		return Case{}, bidierr.NewConformance("expected flags bitmask after ';'")
	}
	flags, err := strconv.Atoi(tokens[i].Lexeme)
	if err != nil {
		return Case{}, err
	}
	c.Flags = flags
	return c, nil
}
