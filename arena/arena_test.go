package arena

import (
	"os"
	"testing"
)

func TestAllocReturnsDistinctSlices(t *testing.T) {
	var a ByteArena
	first := a.Alloc(16)
	second := a.Alloc(16)

	first[0] = 1
	second[0] = 2
	if first[0] != 1 || second[0] != 2 {
		t.Fatalf("allocations alias each other")
	}
}

func TestAllocLargerThanRegionGetsDedicatedRegion(t *testing.T) {
	var a ByteArena
	big := a.Alloc(DefaultRegionSize * 2)
	if len(big) != DefaultRegionSize*2 {
		t.Fatalf("len = %d, want %d", len(big), DefaultRegionSize*2)
	}

	// A later small allocation must still succeed even though the current
	// region is exactly full.
	small := a.Alloc(8)
	if len(small) != 8 {
		t.Fatalf("len = %d, want 8", len(small))
	}
}

func TestResetReusesRegions(t *testing.T) {
	var a ByteArena
	a.Alloc(100)
	a.Reset()

	b := a.Alloc(100)
	if len(b) != 100 {
		t.Fatalf("len after Reset = %d, want 100", len(b))
	}
}

func TestBufferAppendGrowsThroughArena(t *testing.T) {
	var a ByteArena
	var b Buffer

	for i := 0; i < 100; i++ {
		b.Append(&a, []byte("hotaru "))
	}
	if got := len(b.Bytes()); got != 700 {
		t.Fatalf("len = %d, want 700", got)
	}
	if got := string(b.Slice(0, 6)); got != "hotaru" {
		t.Fatalf("Slice(0,6) = %q, want %q", got, "hotaru")
	}
}

func TestBufferSaveAndLoadFileIntoArena(t *testing.T) {
	var a ByteArena
	var b Buffer
	b.Append(&a, []byte("var x = 1;"))

	path := t.TempDir() + "/source.ht"
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile error = %v", err)
	}

	loaded, err := LoadFileIntoArena(path, &a)
	if err != nil {
		t.Fatalf("LoadFileIntoArena error = %v", err)
	}
	if string(loaded) != "var x = 1;" {
		t.Fatalf("loaded = %q, want %q", loaded, "var x = 1;")
	}
}

func TestLoadFileIntoArenaMissingFile(t *testing.T) {
	var a ByteArena
	if _, err := LoadFileIntoArena(t.TempDir()+"/missing.ht", &a); !os.IsNotExist(err) {
		t.Fatalf("error = %v, want a not-exist error", err)
	}
}

func TestPoolPointersSurviveGrowth(t *testing.T) {
	var p Pool[int]
	ptrs := make([]*int, 600)
	for i := range ptrs {
		ptrs[i] = p.New()
		*ptrs[i] = i
	}
	for i, ptr := range ptrs {
		if *ptr != i {
			t.Fatalf("pool slot %d = %d, want %d", i, *ptr, i)
		}
	}
}
