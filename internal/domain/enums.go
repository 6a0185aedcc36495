package domain

type Format string

const (
	FormatPlain   Format = "plain"
	FormatSlack   Format = "slack"
	FormatTwitter Format = "twitter"
)

// ValidFormats is the canonical set of accepted format names.
var ValidFormats = map[string]bool{
	"plain": true, "slack": true, "twitter": true,
}

// ParseFormat maps a format name to a Format, falling back to FormatPlain
// for unrecognized values.
func ParseFormat(name string) Format {
	if ValidFormats[name] {
		return Format(name)
	}
	return FormatPlain
}
