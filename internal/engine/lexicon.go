package engine

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeddedLexicons holds one YAML word list per supported language.
//
//go:embed lexicons/*.yaml
var embeddedLexicons embed.FS

// lexicon is the language-specific vocabulary the grammar rules consult.
type lexicon struct {
	Lang             string            `yaml:"lang"`
	DecimalSeparator string            `yaml:"decimal_separator"`
	Connectors       []string          `yaml:"connectors"`
	Numbers          map[string]int    `yaml:"numbers"`
	Tens             map[string]int    `yaml:"tens"`
	Multipliers      map[string]int    `yaml:"multipliers"`
	Ordinals         map[string]int    `yaml:"ordinals"`
	OrdinalSuffixes  []string          `yaml:"ordinal_suffixes"`
	Currencies       map[string]string `yaml:"currencies"`
	Degrees          []string          `yaml:"degrees"`
	TemperatureUnits map[string]string `yaml:"temperature_units"`
	Grains           map[string]Grain  `yaml:"grains"`
	RelativeDays     map[string]int    `yaml:"relative_days"`
	Now              []string          `yaml:"now"`
	Weekdays         map[string]int    `yaml:"weekdays"`
	Percent          []string          `yaml:"percent"`
	In               []string          `yaml:"in"`
}

func loadLexicon(lang Lang) (*lexicon, error) {
	data, err := embeddedLexicons.ReadFile(path.Join("lexicons", string(lang)+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLang, lang)
		}
		return nil, fmt.Errorf("failed to read lexicon for %s: %w", lang, err)
	}

	var lex lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon for %s: %w", lang, err)
	}
	if lex.Lang != string(lang) {
		return nil, fmt.Errorf("lexicon %s.yaml declares language %q", lang, lex.Lang)
	}
	if lex.DecimalSeparator == "" {
		lex.DecimalSeparator = "."
	}
	for word, g := range lex.Grains {
		if !validGrain(g) {
			return nil, fmt.Errorf("lexicon %s: unknown grain %q for %q", lang, g, word)
		}
	}
	for word, d := range lex.Weekdays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("lexicon %s: weekday %q out of range: %d", lang, word, d)
		}
	}
	return &lex, nil
}

func lexiconLangs() []Lang {
	entries, err := embeddedLexicons.ReadDir("lexicons")
	if err != nil {
		return nil
	}
	var langs []Lang
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}
		langs = append(langs, Lang(strings.TrimSuffix(name, ".yaml")))
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

func validGrain(g Grain) bool {
	switch g {
	case GrainSecond, GrainMinute, GrainHour, GrainDay, GrainWeek, GrainMonth, GrainYear:
		return true
	}
	return false
}

func contains(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}
