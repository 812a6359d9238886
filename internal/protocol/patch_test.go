package protocol

import (
	"testing"
)

// diffIndexes returns the positions of frames that differ between a and b.
func diffIndexes(a, b Sequence) []int {
	var diffs []int
	for i := range a {
		if a[i] != b[i] {
			diffs = append(diffs, i)
		}
	}
	return diffs
}

// TestApplySingleByte tests that a one-byte patch touches exactly its target
func TestApplySingleByte(t *testing.T) {
	seq := Template()
	patched := Apply(seq, Patch{Setting: "repeat", Index: 43, Offset: 4, Data: []byte{0x05}})

	diffs := diffIndexes(seq, patched)
	if len(diffs) != 1 || diffs[0] != 43 {
		t.Fatalf("Expected only frame 43 to change, got diffs at %v", diffs)
	}
	if patched[43][4] != 0x05 {
		t.Errorf("Expected byte 0x05 at offset 4, got 0x%02x", patched[43][4])
	}
	for i, b := range patched[43] {
		if i != 4 && b != seq[43][i] {
			t.Errorf("Byte %d of frame 43 changed unexpectedly", i)
		}
	}
}

// TestApplyDoesNotMutateInput tests the pure-function contract
func TestApplyDoesNotMutateInput(t *testing.T) {
	seq := Template()
	Apply(seq, Patch{Setting: "test", Index: 0, Offset: 0, Data: []byte{0xff, 0xff}})

	if !seq.Equal(Template()) {
		t.Error("Apply mutated its input sequence")
	}
}

// TestApplyIdempotence tests that re-applying a patch is a no-op
func TestApplyIdempotence(t *testing.T) {
	p := Patch{Setting: "led-brightness", Index: 3, Offset: 0, Data: mustFrame("040745f80630ff00").Bytes()}

	once := Apply(Template(), p)
	twice := Apply(once, p)

	if !once.Equal(twice) {
		t.Error("Applying the same patch twice must equal applying it once")
	}
}

// TestApplyZeroPatches tests that an empty patch list reproduces the input
func TestApplyZeroPatches(t *testing.T) {
	seq := Template()
	out := Apply(seq)

	if !out.Equal(seq) {
		t.Error("Apply with no patches must reproduce the input exactly")
	}
}

// TestApplyOutOfRange tests the no-op behavior for absent frames
func TestApplyOutOfRange(t *testing.T) {
	short := Template()[:10]

	t.Run("index beyond sequence", func(t *testing.T) {
		out := Apply(short, Patch{Setting: "repeat", Index: 43, Offset: 4, Data: []byte{0x05}})
		if !out.Equal(short) {
			t.Error("Patch beyond the sequence must be a no-op")
		}
	})

	t.Run("negative index", func(t *testing.T) {
		out := Apply(short, Patch{Setting: "x", Index: -1, Data: []byte{0x05}})
		if !out.Equal(short) {
			t.Error("Negative index must be a no-op")
		}
	})

	t.Run("data overruns frame", func(t *testing.T) {
		out := Apply(short, Patch{Setting: "x", Index: 0, Offset: 6, Data: []byte{1, 2, 3}})
		if !out.Equal(short) {
			t.Error("Patch overrunning the frame must be a no-op")
		}
	})
}

// TestApplyOrder tests that later patches win on overlapping targets
func TestApplyOrder(t *testing.T) {
	out := Apply(Template(),
		Patch{Setting: "a", Index: 11, Data: mustFrame("040701fe827d807f").Bytes()},
		Patch{Setting: "b", Index: 11, Data: mustFrame("040701fe8778807f").Bytes()},
	)

	if out[11].String() != "040701fe8778807f" {
		t.Errorf("Expected the later patch to win, got %s", out[11])
	}
}
