package power

// Module is the set of entry points the host power daemon calls.
type Module interface {
	Init()
	SetInteractive(on bool)
	PowerHint(hint Hint, data int32)
	SetFeature(feature Feature, state int)
	GetFeature(feature Feature) int
}

// Info is the static identity published for module discovery.
type Info struct {
	ID               string
	Name             string
	Author           string
	ModuleAPIVersion Version
	HALAPIVersion    Version
}

type Version struct {
	Major, Minor uint8
}

type (
	Hint    int32
	Feature int32
)

const (
	HintVsync                Hint = 0x00000001
	HintInteraction          Hint = 0x00000002
	HintVideoEncode          Hint = 0x00000003
	HintVideoDecode          Hint = 0x00000004
	HintLowPower             Hint = 0x00000005
	HintSustainedPerformance Hint = 0x00000006
	HintVRMode               Hint = 0x00000007
	HintLaunch               Hint = 0x00000008
	HintDisableTouch         Hint = 0x00000009
	HintCPUBoost             Hint = 0x00000110
	HintSetProfile           Hint = 0x00000111
)

const (
	FeatureDoubleTapToWake   Feature = 0x00000001
	FeatureSupportedProfiles Feature = 0x00001000
)

// Control paths.
const (
	PathTouchscreen = "/sys/class/input/input1/enabled"
	PathTouchkey    = "/sys/class/input/input15/enabled"
	PathGPIOKeys    = "/sys/class/input/input14/enabled"
	PathBLOperator  = "/dev/b.L_operator"
)

var hintNames = map[Hint]string{
	HintVsync:                "vsync",
	HintInteraction:          "interaction",
	HintVideoEncode:          "video_encode",
	HintVideoDecode:          "video_decode",
	HintLowPower:             "low_power",
	HintSustainedPerformance: "sustained_performance",
	HintVRMode:               "vr_mode",
	HintLaunch:               "launch",
	HintDisableTouch:         "disable_touch",
	HintCPUBoost:             "cpu_boost",
	HintSetProfile:           "set_profile",
}

var featureNames = map[Feature]string{
	FeatureDoubleTapToWake:   "double_tap_to_wake",
	FeatureSupportedProfiles: "supported_profiles",
}
