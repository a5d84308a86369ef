// Package ignore implements gitignore-style exclude rules for the collector.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Rule is one compiled exclude pattern and where it came from.
type Rule struct {
	Pattern *regexp.Regexp // Compiled expression; group 1 holds the part below the matched path.
	Negate  bool           // Line started with '!'.
	DirOnly bool           // Line ended with '/'.
	Line    string         // Original pattern line.
	LineNo  int            // Line number in the source (1-based).
	Source  string         // File the rule was read from, or "flag".
}

// Rules is an ordered list of exclude rules. The last matching rule wins.
type Rules struct {
	rules  []*Rule
	logger *zap.Logger
}

// New returns an empty rule set.
func New(logger *zap.Logger) *Rules {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rules{logger: logger}
}

// Len reports how many rules were compiled.
func (r *Rules) Len() int {
	return len(r.rules)
}

// CompileLines adds rules given directly, e.g. from repeated --exclude flags.
func (r *Rules) CompileLines(lines ...string) {
	r.compile("flag", lines)
}

// CompileFile reads an ignore file and adds its rules.
func (r *Rules) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	r.compile(path, lines)
	r.logger.Debug("Compiled ignore file",
		zap.String("filePath", path),
		zap.Int("lineCount", len(lines)),
		zap.Int("totalRules", len(r.rules)))
	return nil
}

func (r *Rules) compile(source string, lines []string) {
	for i, line := range lines {
		rule, err := parseRuleLine(line)
		if err != nil {
			r.logger.Warn("Skipping invalid exclude pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if rule == nil {
			continue
		}
		rule.LineNo = i + 1
		rule.Source = source
		r.rules = append(r.rules, rule)
		r.logger.Debug("Compiled exclude rule",
			zap.String("source", source),
			zap.Int("lineNo", rule.LineNo),
			zap.String("pattern", rule.Line),
			zap.Bool("negate", rule.Negate))
	}
}

// MatchesPath reports whether the path, relative to the source root, is excluded.
func (r *Rules) MatchesPath(path string, isDir bool) bool {
	matched, _ := r.MatchesPathWithRule(path, isDir)
	return matched
}

// MatchesPathWithRule is MatchesPath that also returns the deciding rule.
func (r *Rules) MatchesPathWithRule(path string, isDir bool) (bool, *Rule) {
	normalized := normalizePath(path)

	matched := false
	var decided *Rule
	for _, rule := range r.rules {
		if !rule.matches(normalized, isDir) {
			continue
		}
		matched = !rule.Negate
		decided = rule
	}

	if decided != nil {
		r.logger.Debug("Path matched exclude rule",
			zap.String("path", normalized),
			zap.String("pattern", decided.Line),
			zap.Bool("excluded", matched))
	}
	return matched, decided
}

func (rule *Rule) matches(path string, isDir bool) bool {
	m := rule.Pattern.FindStringSubmatch(path)
	if m == nil {
		return false
	}
	// A directory-only rule matching the path itself needs a directory.
	if rule.DirOnly && m[1] == "" && !isDir {
		return false
	}
	return true
}

// parseRuleLine turns one line into a rule. Blank lines and comments yield nil.
func parseRuleLine(line string) (*Rule, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimRight(trimmed, "/")
	if trimmed == "" {
		return nil, nil
	}

	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	re, err := regexp.Compile(anchorPattern(globToRegex(trimmed), anchored))
	if err != nil {
		return nil, err
	}
	return &Rule{
		Pattern: re,
		Negate:  negate,
		DirOnly: dirOnly,
		Line:    line,
	}, nil
}

// normalizePath converts separators to '/' and drops a leading "./".
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimSuffix(path, "/")
}
