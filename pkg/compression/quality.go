package compression

import "fmt"

// Quality - compression effort setting, independent of the codec.
// Adapters translate it into their native level.
type Quality uint8

const (
	Default Quality = iota
	Level1
	Level2
	Level3
	Level4
	Level5
	Level6
	Level7
	Level8
	Level9
	Maximum
)

var qualityTokens = [...]string{
	Default: "default",
	Level1:  "level1",
	Level2:  "level2",
	Level3:  "level3",
	Level4:  "level4",
	Level5:  "level5",
	Level6:  "level6",
	Level7:  "level7",
	Level8:  "level8",
	Level9:  "level9",
	Maximum: "maximum",
}

// Qualities - returns all quality levels in ascending order.
func Qualities() []Quality {
	qs := make([]Quality, 0, len(qualityTokens))
	for q := range qualityTokens {
		qs = append(qs, Quality(q))
	}
	return qs
}

// ParseQuality - converts a canonical token into a Quality.
// Unlike encodings there is no open case, so unknown tokens are an error.
func ParseQuality(s string) (Quality, error) {
	for q, token := range qualityTokens {
		if token == s {
			return Quality(q), nil
		}
	}

	return Default, &InvalidQualityError{Token: s}
}

// Valid - reports whether q is one of the declared levels.
func (q Quality) Valid() bool {
	return int(q) < len(qualityTokens)
}

// Level - returns 0 for Default, 1..9 for LevelN and 10 for Maximum.
// Undeclared values are reported as Default.
func (q Quality) Level() int {
	if !q.Valid() {
		return 0
	}
	return int(q)
}

// String - returns the canonical token.
func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("quality(%d)", uint8(q))
	}
	return qualityTokens[q]
}

// MarshalText - implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, &InvalidQualityError{Token: q.String()}
	}
	return []byte(q.String()), nil
}

// UnmarshalText - implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	parsed, err := ParseQuality(string(text))
	if err != nil {
		return err
	}

	*q = parsed
	return nil
}

// levelTable - maps a quality onto a native scale: def for Default,
// LevelN for N (capped to top) and top for Maximum.
func levelTable(q Quality, def, top int) int {
	switch l := q.Level(); {
	case l == 0:
		return def
	case l > 9, l > top:
		return top
	default:
		return l
	}
}
