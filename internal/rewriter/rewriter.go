// Package rewriter applies the configured rewrite rules to a single source
// file in place.
//
// The file is treated as one opaque string: everything outside matched
// regions is preserved byte-for-byte. A run with zero matches still writes
// the file back unchanged; only dry-run mode skips the write.
package rewriter

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/Wladim1r/logfixer/internal/config"
	"github.com/Wladim1r/logfixer/internal/rules"
)

// Change records how often a single rule fired in one file.
type Change struct {
	Rule  string
	Count int
}

// Result describes one rewrite run over one file.
type Result struct {
	// Path is the file that was processed.
	Path string
	// Changes holds one entry per applied rule, in application order.
	// Rules that did not fire are omitted.
	Changes []Change
	// Written reports whether the file was written back (false in dry-run).
	Written bool
}

// Total returns the total number of substitutions across all rules.
func (r *Result) Total() int {
	n := 0
	for _, c := range r.Changes {
		n += c.Count
	}
	return n
}

// Rewriter applies a rule set built from a Config.
type Rewriter struct {
	rules  []rules.Rule
	dryRun bool
}

// New builds a Rewriter from cfg. Passing nil uses DefaultConfig().
// Built-in rules run first (those disabled in cfg are excluded), followed by
// the extra rules from the config file in declaration order.
func New(cfg *config.Config) (*Rewriter, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var rs []rules.Rule
	for _, r := range rules.BuiltIn() {
		if cfg.IsRuleEnabled(r.Name) {
			rs = append(rs, r)
		}
	}
	for _, spec := range cfg.ExtraRules {
		r, err := rules.Compile(spec.Name, spec.Pattern, spec.Replacement)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}

	return &Rewriter{rules: rs}, nil
}

// SetDryRun toggles dry-run mode: rules are applied and counted but the file
// is never written back.
func (rw *Rewriter) SetDryRun(dry bool) {
	rw.dryRun = dry
}

// Apply runs every rule over src in order and returns the transformed text
// together with the per-rule change counts.
func (rw *Rewriter) Apply(src string) (string, []Change) {
	var changes []Change
	for _, r := range rw.rules {
		out, n := r.Apply(src)
		if n > 0 {
			changes = append(changes, Change{Rule: r.Name, Count: n})
		}
		src = out
	}
	return src, changes
}

// FixFile reads the file at path, applies the rule set and writes the result
// back in place, preserving the file's permission bits. The write happens
// even when nothing matched, so the unit of work either fully succeeds or
// fails with an error; there is no partial state.
func (rw *Rewriter) FixFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("logfixer: reading %q: %w", path, err)
	}

	out, changes := rw.Apply(string(data))

	res := &Result{Path: path, Changes: changes}
	if rw.dryRun {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(out), fileMode(path)); err != nil {
		return nil, fmt.Errorf("logfixer: writing %q: %w", path, err)
	}
	res.Written = true
	return res, nil
}

// fileMode returns the file's current permission bits, falling back to 0644
// when the file cannot be stat'ed (WriteFile only uses the mode for files it
// creates, so the fallback is inert for the overwrite path).
func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}
