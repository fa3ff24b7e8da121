package newsapi

import "strings"

// stopwords filtered out during keyword extraction
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {},
}

const maxKeywords = 5

// ExtractKeywords pulls up to five keywords from the text: lowercased,
// basic punctuation stripped, stopwords and short tokens dropped
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.NewReplacer(",", "", ".", "", "'", "").Replace(strings.ToLower(text))

	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
