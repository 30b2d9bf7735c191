// entry.go contains the ParseSQL entry points and statement dispatch logic.
package sqlscope

import (
	"strings"

	"vitess.io/vitess/go/vt/sqlparser"
)

// ParseSQL parses only the first SQL statement in the input string.
// Additional statements are ignored. Use ParseSQLStrict to enforce exactly
// one.
func ParseSQL(sql string) (*ParsedQuery, error) {
	return ParseSQLWithOptions(sql, ParseOptions{})
}

// ParseSQLWithOptions parses only the first SQL statement while applying
// explicit parser options.
func ParseSQLWithOptions(sql string, opts ParseOptions) (*ParsedQuery, error) {
	state, err := prepareParseState(sql, opts)
	if err != nil {
		return nil, err
	}
	return parseStatement(state.parser, state.stmts[0])
}

// ParseSQLStrict parses input only when it contains exactly one SQL
// statement. It returns ErrMultipleStatements when more than one statement
// is present.
func ParseSQLStrict(sql string) (*ParsedQuery, error) {
	return ParseSQLStrictWithOptions(sql, ParseOptions{})
}

// ParseSQLStrictWithOptions parses input only when it contains exactly one
// SQL statement while applying explicit parser options.
func ParseSQLStrictWithOptions(sql string, opts ParseOptions) (*ParsedQuery, error) {
	state, err := prepareParseState(sql, opts)
	if err != nil {
		return nil, err
	}
	if len(state.stmts) != 1 {
		return nil, &MultipleStatementsError{StatementCount: len(state.stmts)}
	}
	return parseStatement(state.parser, state.stmts[0])
}

type parseState struct {
	parser *sqlparser.Parser
	stmts  []string
}

// prepareParseState preprocesses SQL, constructs the parser once, and
// splits the input into the statement pieces the entry points consume.
func prepareParseState(sql string, opts ParseOptions) (*parseState, error) {
	cleanSQL := preprocessSQLInput(sql)
	parser, err := sqlparser.New(sqlparser.Options{
		MySQLServerVersion: opts.MySQLServerVersion,
	})
	if err != nil {
		return nil, err
	}

	pieces, err := parser.SplitStatementToPieces(cleanSQL)
	if err != nil {
		return nil, &ParseError{SQL: cleanSQL, Err: err}
	}

	stmts := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			stmts = append(stmts, piece)
		}
	}
	if len(stmts) == 0 {
		return nil, ErrNoStatements
	}

	return &parseState{parser: parser, stmts: stmts}, nil
}

// parseStatement parses a single statement and materializes its node IR.
func parseStatement(parser *sqlparser.Parser, stmtSQL string) (*ParsedQuery, error) {
	ast, err := parser.Parse(stmtSQL)
	if err != nil {
		return nil, &ParseError{SQL: stmtSQL, Err: err}
	}

	res := &ParsedQuery{RawSQL: stmtSQL}
	collectNodes(res, ast)
	return res, nil
}
