package drawhelper

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()
	if c.mode != SourceOver {
		t.Errorf("mode = %v, want SourceOver", c.mode)
	}
	if c.constAlpha != 256 {
		t.Errorf("constAlpha = %d, want 256", c.constAlpha)
	}
	if !c.transform.IsIdentity() {
		t.Errorf("transform = %+v, want identity", c.transform)
	}
	if c.bilinear || c.tiled || c.tables != nil {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestOptions(t *testing.T) {
	c := defaultConfig()
	for _, o := range []Option{
		WithMode(Multiply),
		WithTransform(Translate(3, 4)),
		WithBilinear(true),
		WithTiled(true),
		WithConstAlpha(77),
		WithTables(scalarTables),
	} {
		o(&c)
	}
	if c.mode != Multiply || !c.bilinear || !c.tiled || c.constAlpha != 77 || c.tables != scalarTables {
		t.Errorf("options not applied: %+v", c)
	}
	if c.transform.DX != 3 || c.transform.DY != 4 {
		t.Errorf("transform = %+v, want Translate(3, 4)", c.transform)
	}
}

func TestWithTablesUsed(t *testing.T) {
	dst := newSurface(t, 1, 1, FormatARGB32Premultiplied)
	sd := newSpanData(t, dst, Solid(0xff000000), WithTables(wideTables))
	if sd.tables != wideTables {
		t.Error("SpanData ignored WithTables")
	}
	sd = newSpanData(t, dst, Solid(0xff000000))
	if sd.tables != DefaultTables() {
		t.Error("SpanData did not default to DefaultTables()")
	}
}
