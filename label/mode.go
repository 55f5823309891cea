package label

import "github.com/vcrobe/nojs-uidl/uidl"

// Mode selects how a label's payload is interpreted.
type Mode int

const (
	// ModeText shows the first child as literal text.
	ModeText Mode = iota
	// ModePre shows a nested string inside a <pre> block.
	ModePre
	// ModeUIDL injects all children serialized as markup.
	ModeUIDL
	// ModeXHTML injects a doubly nested markup string and watches its images.
	ModeXHTML
	// ModeXML injects a nested markup string.
	ModeXML
	// ModeRaw injects a nested markup string and watches its images.
	ModeRaw
	// ModeUnknown is any unrecognized mode value. The label shows nothing.
	ModeUnknown
)

// ModeAttribute is the record attribute carrying the mode.
const ModeAttribute = "mode"

var modeNames = [...]string{
	ModeText:    "text",
	ModePre:     "pre",
	ModeUIDL:    "uidl",
	ModeXHTML:   "xhtml",
	ModeXML:     "xml",
	ModeRaw:     "raw",
	ModeUnknown: "unknown",
}

func (m Mode) String() string {
	if m < ModeText || m > ModeUnknown {
		return "unknown"
	}
	return modeNames[m]
}

// SinksImages reports whether content rendered in this mode gets its
// images watched for load completion.
func (m Mode) SinksImages() bool {
	return m == ModeXHTML || m == ModeRaw
}

// Modes returns the recognized modes, without ModeUnknown.
func Modes() []Mode {
	return []Mode{ModeText, ModePre, ModeUIDL, ModeXHTML, ModeXML, ModeRaw}
}

// ParseMode maps a mode attribute to a Mode. An absent attribute means
// ModeText. The literal "unknown" is not a recognized value either, so it
// maps to ModeUnknown like every other unrecognized string.
func ParseMode(value string, present bool) Mode {
	if !present {
		return ModeText
	}
	switch value {
	case "text":
		return ModeText
	case "pre":
		return ModePre
	case "uidl":
		return ModeUIDL
	case "xhtml":
		return ModeXHTML
	case "xml":
		return ModeXML
	case "raw":
		return ModeRaw
	default:
		return ModeUnknown
	}
}

// ModeOf reads the mode of an update record.
func ModeOf(u *uidl.Node) Mode {
	return ParseMode(u.StringAttribute(ModeAttribute))
}
