// ABOUTME: Reserved words recognised during manual and random point entry
// ABOUTME: Matching is case-insensitive; bot-style slash commands are accepted too
package automaton

import "strings"

var (
	doneTokens    = tokenSet("stop", "done", "/done", "стоп", "готово")
	cancelTokens  = tokenSet("cancel", "/cancel", "отмена")
	clearTokens   = tokenSet("clear", "/clear", "очистить")
	defaultTokens = tokenSet("default", "/default", "по умолчанию")
)

func tokenSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func matches(set map[string]struct{}, line string) bool {
	_, ok := set[strings.ToLower(line)]
	return ok
}
