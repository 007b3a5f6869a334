package usecase

import (
	"strings"
	"unicode"
)

// Emoji markers used inside submenu text.
const (
	keycapTen    = "\U0001F51F"       // 🔟
	keycapSuffix = "️⃣"     // variation selector + combining enclosing keycap
	keycapBare   = "⃣"           // combining enclosing keycap without the selector
	keycapEleven = "1️⃣1️⃣" // 1️⃣1️⃣
	keycapTwelve = "1️⃣2️⃣" // 1️⃣2️⃣
)

// labelRule is one (predicate, matcher) pair. Rules are evaluated in a fixed
// priority order per menu; the first line a matching rule accepts wins.
type labelRule struct {
	name    string
	applies func(option string) bool
	matches func(option, line string) bool
}

var labelRules = []labelRule{
	{
		name:    "digit-10",
		applies: func(o string) bool { return o == "10" },
		matches: func(_, line string) bool { return strings.Contains(line, keycapTen) },
	},
	{
		name:    "digit-11",
		applies: func(o string) bool { return o == "11" },
		matches: func(_, line string) bool { return strings.Contains(line, keycapEleven) },
	},
	{
		name:    "digit-12",
		applies: func(o string) bool { return o == "12" },
		matches: func(_, line string) bool { return strings.Contains(line, keycapTwelve) },
	},
	{
		name:    "digit-keycap",
		applies: isDigits,
		matches: func(option, line string) bool {
			trimmed := strings.TrimSpace(line)
			return strings.HasPrefix(trimmed, option+keycapSuffix) ||
				strings.HasPrefix(trimmed, option+keycapBare)
		},
	},
	{
		name:    "alpha",
		applies: isAlpha,
		matches: func(option, line string) bool {
			return strings.Contains(line, " "+strings.ToUpper(option)+" - ") ||
				strings.Contains(line, " "+strings.ToLower(option)+" - ")
		},
	},
}

// resolveLabel finds the human-readable label for a selected option by
// scanning menu definitions in index order. Menus without sub-options are
// skipped. Returns ("", false) when nothing matches.
func resolveLabel(option string, idx *MenuIndex) (string, bool) {
	for _, menu := range idx.Menus() {
		if !menu.HasOptions() {
			continue
		}
		for _, rule := range labelRules {
			if !rule.applies(option) {
				continue
			}
			for _, line := range strings.Split(menu.Submenu, "\n") {
				if rule.matches(option, line) {
					return strings.TrimSpace(line), true
				}
			}
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
