package pathline

import "github.com/rustyoz/svg"

// Parse unmarshals SVG data and wraps it in an Importer.
func Parse(data []byte) (result *Importer, err error) {
	// 0.0: initialize
	result = NewImporter()

	// 1.0: unmarshal xml
	if result.svg, err = svg.ParseSvg(string(data), "", 1); err != nil {
		return nil, err
	}

	// N.N: return
	return result, nil
}
