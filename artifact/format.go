package artifact

import "fmt"

type Format int // Format selects the syntax of generated artifacts

const (
	FormatJS   Format = iota // JS statements: a correctionMap object literal and a validWords Set
	FormatJSON               // plain JSON object / array
	FormatGo                 // generated Go source declaring Corrections and ValidWords
)

func (f Format) String() string {
	switch f {
	case FormatJS:
		return "js"
	case FormatJSON:
		return "json"
	case FormatGo:
		return "go"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "js", "":
		return FormatJS, nil
	case "json":
		return FormatJSON, nil
	case "go":
		return FormatGo, nil
	}
	return 0, fmt.Errorf("unknown artifact format %q", s)
}
