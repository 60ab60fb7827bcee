package locale

import "golang.org/x/text/language"

// Match selects the best valid language for an Accept-Language header. The
// header is matched against every valid record whose name parses as a
// BCP 47 tag; names that do not parse (catalog directories are arbitrary
// file names) are skipped. An empty or malformed header, or one matching
// nothing, yields the builtin DefaultLanguage record.
func (r *Registry) Match(acceptLanguage string) *Language {
	fallback, _ := r.Find(DefaultLanguage)

	candidates := make([]*Language, 0, len(r.languages))
	tags := make([]language.Tag, 0, len(r.languages))
	for _, lang := range r.languages {
		if !lang.valid {
			continue
		}
		tag, err := language.Parse(lang.name)
		if err != nil {
			continue
		}
		candidates = append(candidates, lang)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	preferred, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(preferred) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(preferred...)
	if confidence == language.No {
		return fallback
	}
	return candidates[index]
}
