package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
)

const furnaceDoc = `{
  "ccl_marker": "1",
  "block_variants": "facing,lit",
  "inventory_variants": "",
  "texture_domain": "mymod",
  "defaults": { "model": "mymod:furnace" },
  "variants": {
    "facing": {
      "north": { "y": 0 },
      "east": { "y": 90 }
    },
    "lit": {
      "false": {},
      "true": { "textures": { "front": "blocks/furnace_on", "side": "minecraft:blocks/stone", "particle": "#front" } }
    }
  }
}`

const vanillaDoc = `{
  "variants": {
    "snowy=false": [ { "model": "grass_block" }, { "model": "grass_block", "y": 90, "weight": 3 } ],
    "snowy=true": { "model": "grass_block_snow", "uvlock": true }
  }
}`

func TestLoad_CCL(t *testing.T) {
	def, err := Load([]byte(furnaceDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.Format != FormatCCL {
		t.Errorf("format = %q", def.Format)
	}

	wantKeys := []string{
		"facing=north,lit=false",
		"facing=north,lit=true",
		"facing=east,lit=false",
		"facing=east,lit=true",
		"",
	}
	if !reflect.DeepEqual(def.Keys(), wantKeys) {
		t.Fatalf("Keys() = %v, want %v", def.Keys(), wantKeys)
	}

	e, _ := def.Get("facing=east,lit=false")
	v := e.Variants[0]
	if v.Kind != KindSimple || v.Model != "mymod:furnace" || v.Rotation == nil || v.Rotation.Y != 90 {
		t.Errorf("facing=east,lit=false = %+v, want simple y=90", v)
	}
	if v.Transform != nil || v.UVLock || !v.Smooth || !v.GUI3D || v.Weight != 1 {
		t.Errorf("facing=east,lit=false flags = %+v", v)
	}

	e, _ = def.Lookup(map[string]string{"lit": "true", "facing": "east"})
	v = e.Variants[0]
	if v.Kind != KindCustom || v.Transform == nil {
		t.Fatalf("lit=true should be a custom variant, got %+v", v)
	}
	wantTex := map[string]string{
		"front":    "mymod:blocks/furnace_on",
		"side":     "minecraft:blocks/stone",
		"particle": "#front",
	}
	if !reflect.DeepEqual(v.Textures, wantTex) {
		t.Errorf("textures = %v, want %v", v.Textures, wantTex)
	}
	wantM := blockstate.Rotation{Y: 90}.Matrix()
	if !v.Transform.ApproxEqualThreshold(wantM, 1e-6) {
		t.Errorf("transform = %v, want y=90 rotation", *v.Transform)
	}

	// the inventory key has no rotation, so it falls back to an identity transform
	e, _ = def.Lookup(nil)
	v = e.Variants[0]
	if v.Kind != KindCustom || !v.Transform.ApproxEqualThreshold(mgl32.Ident4(), 1e-6) {
		t.Errorf("inventory variant = %+v", v)
	}
}

func TestLoad_DefaultTextureDomain(t *testing.T) {
	src := `{"ccl_marker": "1", "block_variants": "", "inventory_variants": "",
  "defaults": {"textures": {"all": "blocks/ore"}}, "variants": {}}`

	def, err := Load([]byte(src), WithDefaultTextureDomain("othermod"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	e, _ := def.Get("")
	if got := e.Variants[0].Textures["all"]; got != "othermod:blocks/ore" {
		t.Errorf("texture = %q, want othermod:blocks/ore", got)
	}
}

func TestLoad_VanillaFallback(t *testing.T) {
	def, err := Load([]byte(vanillaDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.Format != FormatVanilla {
		t.Errorf("format = %q", def.Format)
	}
	if want := []string{"snowy=false", "snowy=true"}; !reflect.DeepEqual(def.Keys(), want) {
		t.Fatalf("Keys() = %v, want %v", def.Keys(), want)
	}

	e, _ := def.Lookup(map[string]string{"snowy": "false"})
	if len(e.Variants) != 2 {
		t.Fatalf("snowy=false has %d variants, want 2", len(e.Variants))
	}
	if v := e.Variants[1]; v.Kind != KindSimple || v.Rotation.Y != 90 || v.Weight != 3 {
		t.Errorf("second variant = %+v", v)
	}
	e, _ = def.Lookup(map[string]string{"snowy": "true"})
	if v := e.Variants[0]; !v.UVLock || v.Weight != 1 || v.Model != "grass_block_snow" {
		t.Errorf("snowy=true = %+v", v)
	}
}

func TestLoad_VanillaNormalKey(t *testing.T) {
	def, err := Load([]byte(`{"variants": {"normal": {"model": "stone"}}}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	e, ok := def.Lookup(map[string]string{})
	if !ok || e.Variants[0].Model != "stone" {
		t.Errorf("Lookup(no props) = %+v, %v", e, ok)
	}
}

func TestLoad_JSONEscapes(t *testing.T) {
	def, err := Load([]byte(`{"variants": {"normal": {"model": "block\/stone"}}}`))
	if err != nil {
		t.Fatalf("Load vanilla: %v", err)
	}
	if def.Format != FormatVanilla {
		t.Errorf("format = %q, want vanilla", def.Format)
	}
	if e, _ := def.Lookup(nil); e.Variants[0].Model != "block/stone" {
		t.Errorf("vanilla model = %q", e.Variants[0].Model)
	}

	src := `{"ccl_marker": "1", "block_variants": "", "inventory_variants": "", "texture_domain": "mymod",
  "defaults": {"model": "mymod:block\/ore", "textures": {"all": "blocks\/ore"}}, "variants": {}}`
	def, err = Load([]byte(src))
	if err != nil {
		t.Fatalf("Load ccl: %v", err)
	}
	if def.Format != FormatCCL {
		t.Errorf("format = %q, want ccl", def.Format)
	}
	e, _ := def.Get("")
	if v := e.Variants[0]; v.Model != "mymod:block/ore" || v.Textures["all"] != "mymod:blocks/ore" {
		t.Errorf("ccl variant = %+v", v)
	}
}

func TestLoad_CustomFallback(t *testing.T) {
	called := false
	fb := FallbackFunc(func(data []byte) (*Definition, error) {
		called = true
		return newDefinition(FormatVanilla, nil), nil
	})

	if _, err := Load([]byte(vanillaDoc), WithFallback(fb)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !called {
		t.Errorf("fallback not used for a document without ccl_marker")
	}

	called = false
	if _, err := Load([]byte(furnaceDoc), WithFallback(fb)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if called {
		t.Errorf("fallback used for a ccl document")
	}
}

func TestLoad_CCLErrorsDoNotFallBack(t *testing.T) {
	src := `{"ccl_marker": "1", "inventory_variants": "", "variants": {}}`
	_, err := Load([]byte(src), WithFallback(FallbackFunc(func([]byte) (*Definition, error) {
		t.Error("fallback called for a broken ccl document")
		return nil, nil
	})))
	if !errors.Is(err, blockstate.ErrConfigFormat) {
		t.Fatalf("err = %v, want ErrConfigFormat", err)
	}
}

func TestLoad_UnknownFields(t *testing.T) {
	src := `{"ccl_marker": "1", "block_variants": "", "inventory_variants": "",
  "defaults": {"model": "stone", "note": "x"}, "variants": {}}`

	if _, err := Load([]byte(src)); !errors.Is(err, blockstate.ErrDeserialization) {
		t.Fatalf("err = %v, want ErrDeserialization", err)
	}
	if _, err := Load([]byte(src), WithParser(blockstate.NewParser(blockstate.AllowUnknownFields()))); err != nil {
		t.Fatalf("Load with AllowUnknownFields: %v", err)
	}
}

func TestLoadVanilla_Errors(t *testing.T) {
	cases := map[string]string{
		"multipart":    `{"multipart": []}`,
		"bad rotation": `{"variants": {"normal": {"model": "stone", "x": 45}}}`,
		"bad json":     `{"variants": `,
	}
	for name, src := range cases {
		if _, err := LoadVanilla([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "mymod", "furnace.json"), furnaceDoc)
	writeTestFile(t, filepath.Join(root, "minecraft", "grass_block.json"), vanillaDoc)
	writeTestFile(t, filepath.Join(root, "stone.json"), `{"variants": {"normal": {"model": "stone"}}}`)
	writeTestFile(t, filepath.Join(root, "mymod", "README.txt"), "not a blockstate")

	defs, err := LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	wantIDs := []string{"mymod:furnace", "minecraft:grass_block", "minecraft:stone"}
	if len(defs) != len(wantIDs) {
		t.Fatalf("got %d definitions, want %d", len(defs), len(wantIDs))
	}
	for _, id := range wantIDs {
		if _, ok := defs[id]; !ok {
			t.Fatalf("missing key: %s", id)
		}
	}
	if defs["mymod:furnace"].Format != FormatCCL {
		t.Errorf("furnace format = %q", defs["mymod:furnace"].Format)
	}
}

func TestLoadDir_AbortsOnBadFile(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "mymod", "ok.json"), furnaceDoc)
	writeTestFile(t, filepath.Join(root, "mymod", "broken.json"), `{"ccl_marker": "1"}`)

	defs, err := LoadDir(root)
	if err == nil {
		t.Fatal("expected error")
	}
	if defs != nil {
		t.Errorf("got partial result on error")
	}
}

func TestBlockID(t *testing.T) {
	cases := map[string]string{
		"stone.json":                        "minecraft:stone",
		filepath.Join("mymod", "pipe.json"): "mymod:pipe",
		filepath.Join("mymod", "pipes", "copper.yaml"): "mymod:pipes/copper",
	}
	for in, want := range cases {
		if got := BlockID(in); got != want {
			t.Errorf("BlockID(%q) = %q, want %q", in, got, want)
		}
	}
}
