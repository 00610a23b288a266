package language

import (
	"sort"

	"github.com/samber/lo"
)

const DefaultCode = "en"

// Profile pairs the language name used in prompts with the code the TTS
// backend expects.
type Profile struct {
	Code        string `json:"code"`
	DisplayName string `json:"name"`
	TTSCode     string `json:"-"`
}

// Table is a read-only lookup of supported languages. The zero value is not
// usable; build one with NewTable or Default.
type Table struct {
	profiles map[string]Profile
	fallback Profile
}

// NewTable copies profiles into a new table. fallbackCode must name one of
// the profiles.
func NewTable(fallbackCode string, profiles ...Profile) Table {
	m := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		m[p.Code] = p
	}
	return Table{profiles: m, fallback: m[fallbackCode]}
}

// Default returns the languages served by the advisory endpoint.
func Default() Table {
	return NewTable(DefaultCode,
		Profile{Code: "en", DisplayName: "English", TTSCode: "en"},
		Profile{Code: "hi", DisplayName: "Hindi", TTSCode: "hi"},
		Profile{Code: "te", DisplayName: "Telugu", TTSCode: "te"},
		Profile{Code: "kn", DisplayName: "Kannada", TTSCode: "kn"},
	)
}

// Resolve returns the profile for code, or the fallback profile when the
// code is unknown.
func (t Table) Resolve(code string) Profile {
	if p, ok := t.profiles[code]; ok {
		return p
	}
	return t.fallback
}

func (t Table) Supports(code string) bool {
	_, ok := t.profiles[code]
	return ok
}

// Profiles lists every profile ordered by code.
func (t Table) Profiles() []Profile {
	out := lo.Values(t.profiles)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
