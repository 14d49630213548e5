// Package capture decides whether a user's reply to "what is your name?" is a
// greeting, a refusal, a usable name or noise, and builds the parameter update
// and reply message for the agent platform.
//
// The pipeline runs in a fixed order and stops at the first decision:
//
//	Classify -> Extract -> Validate -> Normalize -> Respond
//
// An Engine is compiled once from a lexicon and is safe for concurrent use.
package capture

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hritik3345/LIPA-Name/internal/lexicon"
	"github.com/hritik3345/LIPA-Name/internal/reply"
)

// Unicode-aware word edges. Go's \b only knows ASCII word characters, which
// would let "no" match inside "Noé".
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

// Engine is the compiled, immutable name-capture pipeline.
type Engine struct {
	greeting *regexp.Regexp
	refusal  *regexp.Regexp
	intro    *regexp.Regexp
	name     *regexp.Regexp

	interrogatives map[string]bool
	titles         map[string]bool
	blocklist      map[string]bool

	minLength      int
	maxLength      int
	maxTokens      int
	sentenceTokens int

	product string
	replies *reply.Set
}

// New compiles lex into an Engine.
func New(lex *lexicon.Lexicon) (*Engine, error) {
	if lex == nil {
		return nil, fmt.Errorf("capture: nil lexicon")
	}

	e := &Engine{
		interrogatives: wordSet(lex.Interrogatives),
		titles:         wordSet(lex.Titles),
		blocklist:      wordSet(lex.Blocklist),
		minLength:      lex.Name.MinLength,
		maxLength:      lex.Name.MaxLength,
		maxTokens:      lex.Name.MaxTokens,
		sentenceTokens: lex.Name.SentenceTokens,
		product:        lex.Product,
	}

	var err error
	if e.greeting, err = compilePhrases(lex.Greetings, wordEnd); err != nil {
		return nil, fmt.Errorf("capture: greetings: %w", err)
	}
	if e.refusal, err = compilePhrases(lex.Refusals.All(), wordEnd); err != nil {
		return nil, fmt.Errorf("capture: refusals: %w", err)
	}
	// The intro phrase must end on a word edge; the edge and everything after
	// it are captured.
	if e.intro, err = compilePhrases(lex.IntroPhrases, `(?:$|([^\p{L}\p{N}_].*))`); err != nil {
		return nil, fmt.Errorf("capture: intro_phrases: %w", err)
	}
	if e.name, err = regexp.Compile(namePattern(e.maxTokens)); err != nil {
		return nil, fmt.Errorf("capture: name pattern: %w", err)
	}

	e.replies, err = reply.Compile(map[reply.Kind]string{
		reply.Greeting:  lex.Replies.Greeting,
		reply.Refusal:   lex.Replies.Refusal,
		reply.ValidName: lex.Replies.ValidName,
		reply.Invalid:   lex.Replies.Invalid,
	})
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	return e, nil
}

// compilePhrases builds a case-insensitive alternation of phrases anchored on
// word edges. Words inside a phrase match across any whitespace run and an
// ASCII apostrophe also matches its typographic forms.
func compilePhrases(phrases []string, end string) (*regexp.Regexp, error) {
	alts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		words := strings.Fields(p)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = strings.ReplaceAll(regexp.QuoteMeta(w), "'", `['\x{2019}\x{02BC}]`)
		}
		alts = append(alts, strings.Join(words, `\s+`))
	}
	if len(alts) == 0 {
		return nil, fmt.Errorf("no phrases")
	}
	return regexp.Compile(`(?is)` + wordStart + `(?:` + strings.Join(alts, "|") + `)` + end)
}

// letter covers ASCII, Latin-1 Supplement and Latin Extended-A letters.
const letter = `[A-Za-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}\x{0100}-\x{017F}]`

// namePattern matches 1..maxTokens single-space separated tokens, each made of
// letters with at most one internal hyphen or apostrophe.
func namePattern(maxTokens int) string {
	token := letter + `+(?:[-']` + letter + `+)?`
	return fmt.Sprintf(`^%s(?: %s){0,%d}$`, token, token, maxTokens-1)
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}
