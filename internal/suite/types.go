package suite

// TestSuite is a YAML-defined set of expression regression cases.
type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case pins one expression: either its postfix form and numeric result,
// or the error kind it must fail with.
type Case struct {
	Name       string   `yaml:"name"`
	Expression string   `yaml:"expression"`
	Postfix    string   `yaml:"postfix,omitempty"`
	Want       *float64 `yaml:"want,omitempty"`
	WantInf    bool     `yaml:"want_inf,omitempty"`
	WantNaN    bool     `yaml:"want_nan,omitempty"`
	WantError  string   `yaml:"want_error,omitempty"`
}

// Succeeds reports whether the case expects a numeric outcome rather
// than an error.
func (c *Case) Succeeds() bool {
	return c.WantError == ""
}

// Error kinds a case may declare in want_error.
const (
	ErrInvalidToken          = "invalid_token"
	ErrMismatchedParentheses = "mismatched_parentheses"
	ErrMalformedExpression   = "malformed_expression"
)
