package power

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/mutker/powerhal/internal/errors"
)

func (h Hint) String() string {
	if name, ok := hintNames[h]; ok {
		return name
	}
	return fmt.Sprintf("hint(%#x)", int32(h))
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("feature(%#x)", int32(f))
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseHint accepts a hint name or a numeric id (decimal or 0x-prefixed).
func ParseHint(s string) (Hint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for h, name := range hintNames {
		if name == s {
			return h, nil
		}
	}

	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.New().WithData(errors.ErrInvalidArgument, "unknown hint "+strconv.Quote(s))
	}

	return Hint(n), nil
}

// ParseFeature accepts a feature name or a numeric id (decimal or 0x-prefixed).
func ParseFeature(s string) (Feature, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range featureNames {
		if name == s {
			return f, nil
		}
	}

	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.New().WithData(errors.ErrInvalidArgument, "unknown feature "+strconv.Quote(s))
	}

	return Feature(n), nil
}
