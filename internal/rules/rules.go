// Package rules defines the rewrite rules applied by logfixer.
//
// A rule is a compiled regular expression paired with a replacement template.
// Rules operate on whole-file text; they know nothing about files or
// configuration, which keeps them trivially testable.
package rules

import (
	"fmt"
	"regexp"
)

// Rule names used as keys in the config Rules map.
const (
	RuleErrorMetadata = "error-metadata"
)

// Rule is a single pattern/replacement pair. Replacement may reference
// capture groups with $1, $2, ... per regexp.ReplaceAllString semantics.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply substitutes every non-overlapping match of the rule's pattern in src
// and returns the result together with the number of matches replaced.
func (r Rule) Apply(src string) (string, int) {
	n := len(r.Pattern.FindAllStringIndex(src, -1))
	if n == 0 {
		return src, 0
	}
	return r.Pattern.ReplaceAllString(src, r.Replacement), n
}

// errorMetadataPattern matches logger.warn / logger.info calls that pass the
// error identifier as a standalone second argument followed by a metadata
// object whose only key is component:
//
//	logger.warn('msg', error, { component: 'x' })
//
// The message capture stops at the first comma and the component value admits
// neither a closing brace nor a comma, so objects carrying additional keys,
// nested braces or multi-line formatting are left alone. The value capture is
// non-greedy so trailing whitespace inside the braces stays out of it.
var errorMetadataPattern = regexp.MustCompile(
	`logger\.(warn|info)\(([^,]+),\s*error,\s*\{\s*component:\s*([^,}]+?)\s*\}\)`,
)

// ErrorMetadata returns the built-in rule that moves a standalone error
// argument into the metadata object as a shorthand property:
//
//	logger.info('msg', error, { component: 'x' })
//	  -> logger.info('msg', { component: 'x', error })
//
// The rewritten form no longer matches the pattern, so the rule is
// idempotent.
func ErrorMetadata() Rule {
	return Rule{
		Name:        RuleErrorMetadata,
		Pattern:     errorMetadataPattern,
		Replacement: `logger.$1($2, { component: $3, error })`,
	}
}

// BuiltIn returns all built-in rules in application order.
func BuiltIn() []Rule {
	return []Rule{
		ErrorMetadata(),
	}
}

// Compile builds a Rule from user-supplied pattern and replacement strings,
// as found in the extra_rules section of the config file.
func Compile(name, pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("logfixer: compiling rule %q: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Replacement: replacement}, nil
}
