package rules

import "fmt"

// Default returns the built-in catalog: every rule this linter ships,
// across the eslint, react, typescript, unicorn, and jest plugins.
func Default() *Catalog {
	return NewCatalog(
		Descriptor{Plugin: "eslint", Name: "no-console", Build: build[NoConsole]},
		Descriptor{Plugin: "eslint", Name: "no-debugger", Build: build[NoDebugger]},
		Descriptor{Plugin: "eslint", Name: "no-unused-vars", Build: newNoUnusedVars},
		Descriptor{Plugin: "eslint", Name: "no-empty", Build: build[NoEmpty]},
		Descriptor{Plugin: "eslint", Name: "no-eval", Build: build[NoEval]},
		Descriptor{Plugin: "eslint", Name: "eqeqeq", Build: newEqeqeq},
		Descriptor{Plugin: "react", Name: "jsx-key", Build: build[JSXKey]},
		Descriptor{Plugin: "react", Name: "no-danger", Build: build[NoDanger]},
		Descriptor{Plugin: "typescript", Name: "no-explicit-any", Build: build[NoExplicitAny]},
		Descriptor{Plugin: "typescript", Name: "no-non-null-assertion", Build: build[NoNonNullAssertion]},
		Descriptor{Plugin: "unicorn", Name: "filename-case", Build: newFilenameCase},
		Descriptor{Plugin: "jest", Name: "no-focused-tests", Build: build[NoFocusedTests]},
		Descriptor{Plugin: "jest", Name: "no-disabled-tests", Build: build[NoDisabledTests]},
	)
}

// rulePtr constrains build to pointer rule types whose options decode from JSON.
type rulePtr[T any] interface {
	*T
	Rule
}

func build[T any, P rulePtr[T]](options any) (Rule, error) {
	rule := P(new(T))
	if err := decodeOptions(options, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// NoConsole flags console method calls. Members listed in Allow are exempt.
type NoConsole struct {
	Allow []string `json:"allow"`
}

func (NoConsole) Plugin() string { return "eslint" }
func (NoConsole) Name() string   { return "no-console" }

// NoDebugger flags debugger statements.
type NoDebugger struct{}

func (NoDebugger) Plugin() string { return "eslint" }
func (NoDebugger) Name() string   { return "no-debugger" }

// NoUnusedVars flags variables that are declared but never read.
type NoUnusedVars struct {
	Args              string `json:"args"`
	VarsIgnorePattern string `json:"varsIgnorePattern"`
}

func (NoUnusedVars) Plugin() string { return "eslint" }
func (NoUnusedVars) Name() string   { return "no-unused-vars" }

func newNoUnusedVars(options any) (Rule, error) {
	rule := &NoUnusedVars{Args: "after-used"}
	if err := decodeOptions(options, rule); err != nil {
		return nil, err
	}
	switch rule.Args {
	case "all", "after-used", "none":
	default:
		return nil, fmt.Errorf("unknown args mode %q", rule.Args)
	}
	return rule, nil
}

// NoEmpty flags empty block statements.
type NoEmpty struct {
	AllowEmptyCatch bool `json:"allowEmptyCatch"`
}

func (NoEmpty) Plugin() string { return "eslint" }
func (NoEmpty) Name() string   { return "no-empty" }

// NoEval flags uses of eval().
type NoEval struct {
	AllowIndirect bool `json:"allowIndirect"`
}

func (NoEval) Plugin() string { return "eslint" }
func (NoEval) Name() string   { return "no-eval" }

// Eqeqeq requires === and !==. Its single option is a bare mode string
// rather than an options object.
type Eqeqeq struct {
	Mode string
}

func (Eqeqeq) Plugin() string { return "eslint" }
func (Eqeqeq) Name() string   { return "eqeqeq" }

func newEqeqeq(options any) (Rule, error) {
	rule := &Eqeqeq{Mode: "always"}
	switch v := options.(type) {
	case nil:
	case string:
		switch v {
		case "always", "smart", "allow-null":
			rule.Mode = v
		default:
			return nil, fmt.Errorf("unknown mode %q", v)
		}
	default:
		return nil, fmt.Errorf("expected a mode string, got %T", options)
	}
	return rule, nil
}

// JSXKey requires key props on elements rendered from iterators.
type JSXKey struct {
	CheckFragmentShorthand bool `json:"checkFragmentShorthand"`
}

func (JSXKey) Plugin() string { return "react" }
func (JSXKey) Name() string   { return "jsx-key" }

// NoDanger flags uses of dangerouslySetInnerHTML.
type NoDanger struct{}

func (NoDanger) Plugin() string { return "react" }
func (NoDanger) Name() string   { return "no-danger" }

// NoExplicitAny flags explicit any type annotations.
type NoExplicitAny struct {
	FixToUnknown   bool `json:"fixToUnknown"`
	IgnoreRestArgs bool `json:"ignoreRestArgs"`
}

func (NoExplicitAny) Plugin() string { return "typescript" }
func (NoExplicitAny) Name() string   { return "no-explicit-any" }

// NoNonNullAssertion flags postfix ! non-null assertions.
type NoNonNullAssertion struct{}

func (NoNonNullAssertion) Plugin() string { return "typescript" }
func (NoNonNullAssertion) Name() string   { return "no-non-null-assertion" }

// FilenameCase enforces a naming convention for source filenames.
type FilenameCase struct {
	Case string `json:"case"`
}

func (FilenameCase) Plugin() string { return "unicorn" }
func (FilenameCase) Name() string   { return "filename-case" }

func newFilenameCase(options any) (Rule, error) {
	rule := &FilenameCase{Case: "kebabCase"}
	if err := decodeOptions(options, rule); err != nil {
		return nil, err
	}
	switch rule.Case {
	case "kebabCase", "camelCase", "snakeCase", "pascalCase":
	default:
		return nil, fmt.Errorf("unknown filename case %q", rule.Case)
	}
	return rule, nil
}

// NoFocusedTests flags fit/fdescribe/test.only in test files.
type NoFocusedTests struct{}

func (NoFocusedTests) Plugin() string { return "jest" }
func (NoFocusedTests) Name() string   { return "no-focused-tests" }

// NoDisabledTests flags xit/xdescribe/test.skip in test files.
type NoDisabledTests struct{}

func (NoDisabledTests) Plugin() string { return "jest" }
func (NoDisabledTests) Name() string   { return "no-disabled-tests" }
