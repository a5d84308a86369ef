// File: pkg/consolidate/config.go
package consolidate

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	// DefaultOutput is the output name used when -o is not given.
	DefaultOutput = "consolidated_source.txt"
	// DefaultExtensions is the extension filter used when -e is not given.
	DefaultExtensions = ".c,.h,.cpp,.hpp,.md"

	lineNumberSuffix = "_n"
)

// ExtensionSet is a set of normalized extensions: a leading dot, lower case.
type ExtensionSet struct {
	exts map[string]struct{}
}

// NewExtensionSet normalizes tokens into a set. A token without a leading dot
// gets one, so an empty token becomes "." and only matches names ending in a dot.
func NewExtensionSet(tokens []string) ExtensionSet {
	set := ExtensionSet{exts: make(map[string]struct{}, len(tokens))}
	for _, token := range tokens {
		set.exts[NormalizeExtension(token)] = struct{}{}
	}
	return set
}

// NormalizeExtension ensures a leading dot and lower-cases the token.
func NormalizeExtension(token string) string {
	if !strings.HasPrefix(token, ".") {
		token = "." + token
	}
	return strings.ToLower(token)
}

// Contains reports whether ext is in the set, ignoring case.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s.exts[strings.ToLower(ext)]
	return ok
}

// Len returns the number of distinct extensions.
func (s ExtensionSet) Len() int {
	return len(s.exts)
}

// Sorted returns the extensions in lexical order.
func (s ExtensionSet) Sorted() []string {
	out := make([]string, 0, len(s.exts))
	for ext := range s.exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ParseExtensions splits a comma-separated list and trims each token.
// Empty tokens are kept.
func ParseExtensions(csv string) []string {
	tokens := strings.Split(csv, ",")
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}
	return tokens
}

// ResolveOutputPath applies the naming rule for the output file. Any value
// other than DefaultOutput is used verbatim; the default gains an "_n" stem
// suffix when line numbers are on.
func ResolveOutputPath(output string, lineNumbers bool) string {
	if output != DefaultOutput {
		return output
	}
	if lineNumbers {
		ext := filepath.Ext(output)
		return strings.TrimSuffix(output, ext) + lineNumberSuffix + ext
	}
	return output
}

// Resolve turns raw arguments into the run configuration.
func Resolve(args Arguments) Config {
	return Config{
		SourceDirectory:    args.Directory,
		OutputPath:         ResolveOutputPath(args.Output, args.LineNumbers),
		IncludeLineNumbers: args.LineNumbers,
		Extensions:         NewExtensionSet(ParseExtensions(args.Extensions)),
		ExcludePatterns:    append([]string(nil), args.Exclude...),
		IgnoreFile:         args.IgnoreFile,
		TreePath:           args.Tree,
	}
}

// extensionOf returns the extension of a file name. Leading dots belong to
// the name, so ".bashrc" has none and "..x.c" has ".c".
func extensionOf(name string) string {
	return filepath.Ext(strings.TrimLeft(filepath.Base(name), "."))
}
