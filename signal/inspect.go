package signal

import (
	"seehuhn.de/go/pdf"
)

// InspectResources counts declared content objects in a page's resource
// dictionary without touching the content stream.
//
// XObject entries with subtype Image add to the image count and entries
// with subtype Form (a reusable vector/graphics group) add to the vector
// count. Every entry under the Pattern and Shading categories adds one
// vector object, regardless of how often it is referenced.
//
// Lookups are speculative: any failure on an individual entry is
// swallowed and that entry contributes zero, so partial dictionary
// corruption never aborts the page. The number of skipped entries is
// returned so callers can surface a warning.
func InspectResources(r pdf.Getter, resources pdf.Dict) (PageSignal, int) {
	var sig PageSignal
	skipped := 0

	if resources == nil {
		return sig, 0
	}

	if xobjects, err := pdf.GetDict(r, resources["XObject"]); err == nil {
		for _, entry := range xobjects {
			stm, err := pdf.GetStream(r, entry)
			if err != nil || stm == nil {
				skipped++
				continue
			}
			subtype, err := pdf.GetName(r, stm.Dict["Subtype"])
			if err != nil {
				skipped++
				continue
			}
			switch subtype {
			case "Image":
				sig.Images++
			case "Form":
				sig.Vectors++
			}
		}
	} else {
		skipped++
	}

	// Each pattern or shading definition is one vector object; only the
	// category dictionaries themselves need to resolve.
	for _, category := range []pdf.Name{"Pattern", "Shading"} {
		dict, err := pdf.GetDict(r, resources[category])
		if err != nil {
			skipped++
			continue
		}
		sig.Vectors += len(dict)
	}

	return sig, skipped
}
