package matcher

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-matcher/internal/registry"
)

// Theme selects the content alphabet of a board.
type Theme string

const (
	ThemeNumbers     Theme = "numbers"
	ThemeAlphabet    Theme = "alphabet"
	ThemeSymbols     Theme = "symbols"
	ThemeCombination Theme = "combination"
)

const specialCharacters = "!@#$%^&*()_+-=[]{}|;:,.<>?"

func init() {
	letters := runeRange('A', 'Z')
	digits := runeRange('0', '9')
	special := strings.Split(specialCharacters, "")

	numbers := make([]string, 0, 100)
	for i := 1; i <= 100; i++ {
		numbers = append(numbers, strconv.Itoa(i))
	}

	combination := make([]string, 0, len(letters)+len(digits)+len(special))
	combination = append(combination, letters...)
	combination = append(combination, digits...)
	combination = append(combination, special...)

	registry.Register(registry.Theme{ID: string(ThemeNumbers), Title: "Numbers", Order: 0, Symbols: numbers})
	registry.Register(registry.Theme{ID: string(ThemeAlphabet), Title: "Alphabet", Order: 1, Symbols: letters})
	registry.Register(registry.Theme{ID: string(ThemeSymbols), Title: "Special Characters", Order: 2, Symbols: special})
	registry.Register(registry.Theme{ID: string(ThemeCombination), Title: "Combination", Order: 3, Symbols: combination})
}

func runeRange(from, to rune) []string {
	out := make([]string, 0, to-from+1)
	for r := from; r <= to; r++ {
		out = append(out, string(r))
	}
	return out
}

// Valid reports whether the theme is registered.
func (t Theme) Valid() bool {
	return registry.Exists(string(t))
}

// Title returns the display name, or the raw id for unknown themes.
func (t Theme) Title() string {
	th, err := registry.Lookup(string(t))
	if err != nil {
		return string(t)
	}
	return th.Title
}

// symbols returns the theme alphabet. Unknown themes are a precondition violation.
func (t Theme) symbols() []string {
	th, err := registry.Lookup(string(t))
	if err != nil {
		panic("matcher: " + err.Error())
	}
	return th.Symbols
}
