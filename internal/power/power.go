// Package power implements the I9500 power module: input device power
// toggling on interactive transitions and big.LITTLE cluster profile
// selection through the cluster operator node.
package power

import (
	"codeberg.org/mutker/powerhal/internal/errors"
	"codeberg.org/mutker/powerhal/internal/logger"
	"codeberg.org/mutker/powerhal/internal/sysfs"
)

var moduleInfo = Info{
	ID:               "power",
	Name:             "I9500 Power HAL",
	Author:           "The LineageOS Project",
	ModuleAPIVersion: Version{Major: 0, Minor: 3},
	HALAPIVersion:    Version{Major: 1, Minor: 0},
}

// Shim is the Module implementation. It is not safe for concurrent use;
// the host serialises calls.
type Shim struct {
	writer  sysfs.Writer
	logger  logger.Logger
	profile Profile
}

var _ Module = (*Shim)(nil)

func New(writer sysfs.Writer, log logger.Logger) *Shim {
	return &Shim{
		writer:  writer,
		logger:  log,
		profile: ProfileUnset,
	}
}

func (s *Shim) Info() Info {
	return moduleInfo
}

// Profile returns the last selected profile.
func (s *Shim) Profile() Profile {
	return s.profile
}

func (s *Shim) Init() {}

func (s *Shim) SetInteractive(on bool) {
	state, verb := "0", "Disabling"
	if on {
		state, verb = "1", "Enabling"
	}

	s.logger.Debug().Msgf("SetInteractive: %s input devices", verb)
	s.write(PathTouchscreen, state)
	s.write(PathTouchkey, state)
	s.write(PathGPIOKeys, state)

	if s.profile == ProfilePowerSave {
		return
	}

	target := ProfilePowerSave
	if on {
		target = s.profile
	}
	// Nothing to restore before the first profile selection.
	if !target.Valid() {
		return
	}

	s.logger.Debug().Msgf("SetInteractive: %s big cluster", verb)
	s.write(PathBLOperator, target.Command())
}

// SetProfile switches the cluster operator to p. Selecting the active
// profile again does nothing.
func (s *Shim) SetProfile(p Profile) {
	if p == s.profile {
		return
	}
	if !p.Valid() {
		s.logger.Warn().Int32("profile", int32(p)).Msg("Ignoring unknown power profile")
		return
	}

	s.logger.Debug().Str("from", s.profile.String()).Str("to", p.String()).Msg("Setting power profile")
	s.write(PathBLOperator, p.Command())
	s.profile = p
}

func (s *Shim) PowerHint(hint Hint, data int32) {
	if hint != HintSetProfile {
		s.logger.Debug().Stringer("hint", hint).Int32("data", data).Msg("Ignoring power hint")
		return
	}
	s.SetProfile(Profile(data))
}

func (s *Shim) SetFeature(Feature, int) {}

func (s *Shim) GetFeature(feature Feature) int {
	if feature == FeatureSupportedProfiles {
		return ProfileCount
	}
	return -1
}

// write is best effort: failures are logged and dropped.
func (s *Shim) write(path, value string) {
	err := s.writer.Write(path, value)
	if err == nil {
		return
	}

	var appErr errors.Error
	if errors.As(err, &appErr) {
		s.logger.ErrorWithCode(appErr).Str("path", path).Str("value", value).Msg("Control write failed")
		return
	}
	s.logger.Error().Err(err).Str("path", path).Str("value", value).Msg("Control write failed")
}
