package snapshot

import (
	"maps"
	"slices"
	"time"

	"github.com/arloliu/xcxsave/record"
)

// Tokens maps backup name fields to their values. Values are strings,
// integers or time.Time, which decides the format specs they accept.
type Tokens map[string]any

// TokenInfo documents one token for help output.
type TokenInfo struct {
	Name        string
	Description string
}

// TokenHelp lists the tokens produced by NewTokens in display order.
var TokenHelp = []TokenInfo{
	{"name", "Name of the player character (string)"},
	{"player_name", "Alias of name (string)"},
	{"level", "Inner level of the player character (int)"},
	{"exp", "Total inner experience points (int)"},
	{"class", "Combat class (string)"},
	{"class_rank", "Class rank (int)"},
	{"class_exp", "Total class experience (int)"},
	{"division", "BLADE division (string)"},
	{"blade_level", "BLADE level (int)"},
	{"play_time", "Play timer as shown in the main menu, HHH-MM-SS (string)"},
	{"save_date", "Date of the last in-game save, YYYYMMDD (string)"},
	{"save_time", "Time of the last in-game save, HH-MM-SS (string)"},
	{"save_datetime", "Last in-game save (datetime)"},
	{"date", "Current date, YYYYMMDD (string)"},
	{"time", "Current time, HH-MM-SS (string)"},
	{"datetime", "Current date and time (datetime)"},
}

// NewTokens builds the token set from decoded records and the current time.
func NewTokens(c record.Character, timer record.GameTimer, saved record.SavedTime, now time.Time) Tokens {
	savedAt := saved.Time()

	return Tokens{
		"name":          c.Name,
		"player_name":   c.Name,
		"level":         c.Level,
		"exp":           c.Exp,
		"class":         c.Class,
		"class_rank":    c.ClassRank,
		"class_exp":     c.ClassExp,
		"division":      c.Division,
		"blade_level":   c.BladeLevel,
		"play_time":     timer.String(),
		"save_date":     savedAt.Format("20060102"),
		"save_time":     savedAt.Format("15-04-05"),
		"save_datetime": savedAt,
		"date":          now.Format("20060102"),
		"time":          now.Format("15-04-05"),
		"datetime":      now,
	}
}

// ReadTokens decodes the records the tokens are built from.
func ReadTokens(decoded []byte, now time.Time) (Tokens, error) {
	c, err := record.ReadCharacter(decoded)
	if err != nil {
		return nil, err
	}

	timer, err := record.ReadGameTimer(decoded)
	if err != nil {
		return nil, err
	}

	saved, err := record.ReadSavedTime(decoded)
	if err != nil {
		return nil, err
	}

	return NewTokens(c, timer, saved, now), nil
}

// Names returns the token names in sorted order.
func (t Tokens) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// With returns a copy of t with extra values added or replaced.
func (t Tokens) With(extra map[string]any) Tokens {
	out := maps.Clone(t)
	if out == nil {
		out = Tokens{}
	}
	maps.Copy(out, extra)

	return out
}
