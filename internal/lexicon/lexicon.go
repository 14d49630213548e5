// Package lexicon holds the word lists, name bounds and reply templates that
// drive name capture. A default lexicon is embedded; deployments can replace
// it with their own YAML file.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// MaxYAMLSize bounds lexicon files read from disk.
const MaxYAMLSize = 1 << 20

// Name bound defaults, applied when a lexicon omits them.
const (
	DefaultMinLength      = 2
	DefaultMaxLength      = 40
	DefaultMaxTokens      = 3
	DefaultSentenceTokens = 5
)

// Lexicon is the full, validated configuration of the capture pipeline.
//
// Immutable after Load; safe to share between goroutines.
type Lexicon struct {
	// Product is substituted for {{.Product}} in reply templates.
	Product string `yaml:"product"`

	Greetings []string `yaml:"greetings"`
	Refusals  Refusals `yaml:"refusals"`

	// IntroPhrases introduce a name, e.g. "my name is".
	IntroPhrases []string `yaml:"intro_phrases"`

	// Interrogatives reject a candidate when they open it.
	Interrogatives []string `yaml:"interrogatives"`

	// Titles are honorifics rendered as "<Title>." by the normalizer and whose
	// trailing period does not end an extracted name.
	Titles []string `yaml:"titles"`

	// Blocklist words may not appear anywhere in an accepted name.
	Blocklist []string `yaml:"blocklist"`

	Name    NameBounds `yaml:"name"`
	Replies Replies    `yaml:"replies"`
}

// Refusals groups opt-out cues. Both groups classify as a refusal.
type Refusals struct {
	Decline []string `yaml:"decline"`
	Inquiry []string `yaml:"inquiry"`
}

// All returns decline and inquiry cues together.
func (r Refusals) All() []string {
	out := make([]string, 0, len(r.Decline)+len(r.Inquiry))
	out = append(out, r.Decline...)
	return append(out, r.Inquiry...)
}

// NameBounds are the structural limits on a name candidate.
type NameBounds struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`

	// MaxTokens is the most words a name may have.
	MaxTokens int `yaml:"max_tokens"`

	// SentenceTokens is the word count at which a candidate is treated as a
	// sentence rather than a name.
	SentenceTokens int `yaml:"sentence_tokens"`
}

// Replies are Markdown text/template sources, one per outcome.
type Replies struct {
	Greeting  string `yaml:"greeting"`
	Refusal   string `yaml:"refusal"`
	ValidName string `yaml:"valid_name"`
	Invalid   string `yaml:"invalid"`
}

// Default returns the embedded lexicon.
func Default() (*Lexicon, error) {
	return Load(defaultYAML)
}

// Resolve loads the lexicon at path, or the embedded default when path is empty.
func Resolve(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and validates a lexicon YAML file.
func LoadFile(path string) (*Lexicon, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon file: %w", err)
	}
	if info.Size() > MaxYAMLSize {
		return nil, fmt.Errorf("lexicon file %s exceeds maximum size (%d > %d)", path, info.Size(), MaxYAMLSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	lex, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// Load parses YAML bytes, lowercases every word list, applies name bound
// defaults and validates the result.
func Load(data []byte) (*Lexicon, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("load lexicon: empty YAML data")
	}
	if len(data) > MaxYAMLSize {
		return nil, fmt.Errorf("load lexicon: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLSize)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("load lexicon: parsing YAML: %w", err)
	}

	lex.Product = strings.TrimSpace(lex.Product)
	lists := []*[]string{
		&lex.Greetings,
		&lex.Refusals.Decline,
		&lex.Refusals.Inquiry,
		&lex.IntroPhrases,
		&lex.Interrogatives,
		&lex.Titles,
		&lex.Blocklist,
	}
	for _, l := range lists {
		*l = normalizeList(*l)
	}
	for i, t := range lex.Titles {
		lex.Titles[i] = strings.TrimSuffix(t, ".")
	}

	if lex.Name.MinLength <= 0 {
		lex.Name.MinLength = DefaultMinLength
	}
	if lex.Name.MaxLength <= 0 {
		lex.Name.MaxLength = DefaultMaxLength
	}
	if lex.Name.MaxTokens <= 0 {
		lex.Name.MaxTokens = DefaultMaxTokens
	}
	if lex.Name.SentenceTokens <= 0 {
		lex.Name.SentenceTokens = DefaultSentenceTokens
	}

	if err := lex.validate(); err != nil {
		return nil, fmt.Errorf("load lexicon: validation: %w", err)
	}
	return &lex, nil
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		out = append(out, strings.Join(strings.Fields(strings.ToLower(w)), " "))
	}
	return out
}

func (l *Lexicon) validate() error {
	named := []struct {
		key   string
		words []string
	}{
		{"greetings", l.Greetings},
		{"refusals.decline", l.Refusals.Decline},
		{"refusals.inquiry", l.Refusals.Inquiry},
		{"intro_phrases", l.IntroPhrases},
		{"interrogatives", l.Interrogatives},
		{"titles", l.Titles},
		{"blocklist", l.Blocklist},
	}
	for _, n := range named {
		for i, w := range n.words {
			if w == "" {
				return fmt.Errorf("%s[%d]: must not be empty", n.key, i)
			}
		}
	}
	for i, t := range l.Titles {
		if strings.ContainsAny(t, " \t") {
			return fmt.Errorf("titles[%d] (%s): must be a single word", i, t)
		}
	}

	if len(l.Greetings) == 0 {
		return fmt.Errorf("greetings must not be empty")
	}
	if len(l.Refusals.All()) == 0 {
		return fmt.Errorf("refusals must list at least one decline or inquiry cue")
	}
	if len(l.IntroPhrases) == 0 {
		return fmt.Errorf("intro_phrases must not be empty")
	}

	if l.Name.MinLength > l.Name.MaxLength {
		return fmt.Errorf("name.min_length (%d) exceeds name.max_length (%d)", l.Name.MinLength, l.Name.MaxLength)
	}
	if l.Name.MaxTokens >= l.Name.SentenceTokens {
		return fmt.Errorf("name.max_tokens (%d) must be below name.sentence_tokens (%d)", l.Name.MaxTokens, l.Name.SentenceTokens)
	}

	replies := []struct{ key, src string }{
		{"replies.greeting", l.Replies.Greeting},
		{"replies.refusal", l.Replies.Refusal},
		{"replies.valid_name", l.Replies.ValidName},
		{"replies.invalid", l.Replies.Invalid},
	}
	for _, r := range replies {
		if strings.TrimSpace(r.src) == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}
	return nil
}
