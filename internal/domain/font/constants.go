package font

// Name table name IDs used by the checks.
const (
	NameIDCopyright             = 0
	NameIDFontFamilyName        = 1
	NameIDFontSubfamilyName     = 2
	NameIDFullFontName          = 4
	NameIDVersionString         = 5
	NameIDPostscriptName        = 6
	NameIDManufacturerName      = 8
	NameIDDescription           = 10
	NameIDLicenseDescription    = 13
	NameIDLicenseInfoURL        = 14
	NameIDTypographicFamilyName = 16
	NameIDTypographicSubfamily  = 17
)

// OS/2 fsSelection bits.
const (
	FsSelItalic  = 1 << 0
	FsSelBold    = 1 << 5
	FsSelRegular = 1 << 6
)

// head macStyle bits.
const (
	MacStyleBold   = 1 << 0
	MacStyleItalic = 1 << 1
)

// StyleNames is the canonical style-name set. Filenames use these with
// spaces removed.
var StyleNames = []string{
	"Thin", "Thin Italic",
	"ExtraLight", "ExtraLight Italic",
	"Light", "Light Italic",
	"Regular", "Italic",
	"Medium", "Medium Italic",
	"SemiBold", "SemiBold Italic",
	"Bold", "Bold Italic",
	"ExtraBold", "ExtraBold Italic",
	"Black", "Black Italic",
}

// RIBBIStyleNames are the four standard styles exempted from certain
// style-flag rules.
var RIBBIStyleNames = []string{"Regular", "Italic", "Bold", "Bold Italic"}

// WeightValueToName maps a canonical usWeightClass value to its style suffix.
var WeightValueToName = map[int]string{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "", // Regular carries no weight suffix
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

// StyleWeights maps every canonical style suffix, italic variants included,
// to its weight value.
var StyleWeights = map[string]int{
	"Thin": 100, "ThinItalic": 100,
	"ExtraLight": 200, "ExtraLightItalic": 200,
	"Light": 300, "LightItalic": 300,
	"Regular": 400, "Italic": 400,
	"Medium": 500, "MediumItalic": 500,
	"SemiBold": 600, "SemiBoldItalic": 600,
	"Bold": 700, "BoldItalic": 700,
	"ExtraBold": 800, "ExtraBoldItalic": 800,
	"Black": 900, "BlackItalic": 900,
}
