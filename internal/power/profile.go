package power

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/powerhal/internal/errors"
)

// Profile selects the CPU cluster operating mode.
type Profile int32

const (
	ProfileUnset           Profile = -1
	ProfilePowerSave       Profile = 0
	ProfileBalanced        Profile = 1
	ProfileHighPerformance Profile = 2

	// ProfileCount is the number of selectable profiles.
	ProfileCount = 3
)

// Cluster operator commands:
//
//	00 switch disabled
//	01 LITTLE only
//	10 big only
//	11 big.LITTLE
var operatorCommands = [ProfileCount]string{
	ProfilePowerSave:       "01",
	ProfileBalanced:        "11",
	ProfileHighPerformance: "10",
}

var profileNames = [ProfileCount]string{
	ProfilePowerSave:       "power_save",
	ProfileBalanced:        "balanced",
	ProfileHighPerformance: "high_performance",
}

func (p Profile) Valid() bool {
	return p >= 0 && p < ProfileCount
}

// Command returns the cluster operator token for p, or "" if p is not valid.
func (p Profile) Command() string {
	if !p.Valid() {
		return ""
	}
	return operatorCommands[p]
}

func (p Profile) String() string {
	if p == ProfileUnset {
		return "unset"
	}
	if !p.Valid() {
		return "profile(" + strconv.Itoa(int(p)) + ")"
	}
	return profileNames[p]
}

// ParseProfile accepts a profile name or its numeric value.
func ParseProfile(s string) (Profile, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range profileNames {
		if s == name || s == strings.ReplaceAll(name, "_", "-") {
			return Profile(i), nil
		}
	}

	n, err := strconv.Atoi(s)
	if err == nil && Profile(n).Valid() {
		return Profile(n), nil
	}

	return ProfileUnset, errors.New().WithData(errors.ErrInvalidProfile, s)
}
