package signal

import (
	"testing"

	"seehuhn.de/go/pdf"
)

// staticGetter serves objects from a map, standing in for a parsed file.
type staticGetter struct {
	objects map[pdf.Reference]pdf.Object
}

func (g *staticGetter) GetMeta() *pdf.MetaInfo { return &pdf.MetaInfo{} }

func (g *staticGetter) Get(ref pdf.Reference, _ bool) (pdf.Native, error) {
	obj, ok := g.objects[ref]
	if !ok || obj == nil {
		return nil, nil
	}
	return obj.AsPDF(0), nil
}

func imageStream(w, h int) *pdf.Stream {
	return &pdf.Stream{Dict: pdf.Dict{
		"Subtype": pdf.Name("Image"),
		"Width":   pdf.Integer(w),
		"Height":  pdf.Integer(h),
	}}
}

func formStream() *pdf.Stream {
	return &pdf.Stream{Dict: pdf.Dict{"Subtype": pdf.Name("Form")}}
}

// TestInspectCountsDeclaredResources tests that XObjects are classified
// by subtype and that every pattern and shading entry counts one vector.
func TestInspectCountsDeclaredResources(t *testing.T) {
	resources := pdf.Dict{
		"XObject": pdf.Dict{
			"Im1": imageStream(100, 100),
			"Im2": imageStream(2000, 2000),
			"Fm1": formStream(),
		},
		"Pattern": pdf.Dict{
			"P1": pdf.Dict{"PatternType": pdf.Integer(2)},
			"P2": pdf.Dict{"PatternType": pdf.Integer(1)},
		},
		"Shading": pdf.Dict{
			"Sh1": pdf.Dict{"ShadingType": pdf.Integer(2)},
		},
	}

	sig, skipped := InspectResources(&staticGetter{}, resources)
	if sig.Images != 2 {
		t.Errorf("expected 2 images, got %d", sig.Images)
	}
	if sig.Vectors != 4 {
		t.Errorf("expected 4 vectors (1 form + 2 patterns + 1 shading), got %d", sig.Vectors)
	}
	if skipped != 0 {
		t.Errorf("expected no skipped entries, got %d", skipped)
	}
}

// TestInspectIndirectEntries tests that XObject entries stored as
// references are resolved through the getter before classification.
func TestInspectIndirectEntries(t *testing.T) {
	imgRef := pdf.NewReference(7, 0)
	formRef := pdf.NewReference(8, 0)
	g := &staticGetter{objects: map[pdf.Reference]pdf.Object{
		imgRef:  imageStream(20, 20),
		formRef: formStream(),
	}}
	resources := pdf.Dict{
		"XObject": pdf.Dict{
			"Im1": imgRef,
			"Fm1": formRef,
		},
	}

	sig, skipped := InspectResources(g, resources)
	if sig.Images != 1 {
		t.Errorf("expected 1 image, got %d", sig.Images)
	}
	if sig.Vectors != 1 {
		t.Errorf("expected 1 vector, got %d", sig.Vectors)
	}
	if skipped != 0 {
		t.Errorf("expected no skipped entries, got %d", skipped)
	}
}

// TestInspectSwallowsEntryFailures tests that a malformed entry
// contributes zero without aborting the rest of the dictionary.
func TestInspectSwallowsEntryFailures(t *testing.T) {
	resources := pdf.Dict{
		"XObject": pdf.Dict{
			"Good": imageStream(10, 10),
			"Bad":  pdf.Integer(7), // not a stream
		},
	}

	sig, skipped := InspectResources(&staticGetter{}, resources)
	if sig.Images != 1 {
		t.Errorf("expected 1 image, got %d", sig.Images)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped entry, got %d", skipped)
	}
}

// TestInspectMissingCategories tests that absent categories count as
// zero rather than as failures.
func TestInspectMissingCategories(t *testing.T) {
	sig, skipped := InspectResources(&staticGetter{}, pdf.Dict{})
	if sig != (PageSignal{}) {
		t.Errorf("expected zero signal, got %+v", sig)
	}
	if skipped != 0 {
		t.Errorf("expected no skipped entries, got %d", skipped)
	}

	sig, skipped = InspectResources(&staticGetter{}, nil)
	if sig != (PageSignal{}) || skipped != 0 {
		t.Errorf("nil resources: expected zeros, got %+v, %d", sig, skipped)
	}
}
