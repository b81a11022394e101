package verify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// tokenizerOnce ensures the Punkt model is loaded once per process.
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

func sentenceTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			tokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			tokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		tokenizer = sentences.NewSentenceTokenizer(training)
	})
	if tokenizerErr != nil {
		return nil, tokenizerErr
	}
	return tokenizer, nil
}

// SplitClaims splits an analysis text into discrete factual claims, one
// per sentence. Whitespace-only sentences are dropped. An empty analysis
// yields zero claims, not an error.
func SplitClaims(analysis string) ([]string, error) {
	tok, err := sentenceTokenizer()
	if err != nil {
		return nil, err
	}
	raw := tok.Tokenize(analysis)
	claims := make([]string, 0, len(raw))
	for _, sentence := range raw {
		claim := strings.TrimSpace(sentence.Text)
		if claim == "" {
			continue
		}
		claims = append(claims, claim)
	}
	return claims, nil
}
