package protocol

import "fmt"

// Patch is a frame-indexed replacement descriptor: write Data into the frame
// at Index starting at Offset. Earlier revisions of this protocol tooling
// located placeholders by byte-pattern search across the whole transaction;
// indexing the target frame directly removes the risk of a pattern
// accidentally matching an unrelated frame.
type Patch struct {
	// Setting names the logical setting the patch belongs to, for logs and
	// error messages.
	Setting string

	// Index is the target frame's position in the sequence.
	Index int

	// Offset is the first byte within the frame to replace.
	Offset int

	// Data replaces len(Data) bytes at Offset. Replacements never change
	// the frame length.
	Data []byte
}

// String returns a debug representation of the patch.
func (p Patch) String() string {
	return fmt.Sprintf("Patch{%s frame=%d off=%d data=%x}", p.Setting, p.Index, p.Offset, p.Data)
}

// Apply returns a new sequence with the given patches applied in order. The
// input sequence is never mutated.
//
// A patch whose frame index falls outside the sequence is a no-op: shorter
// single-command sequences are valid inputs and simply lack some frames.
// A patch whose data would not fit inside a frame is likewise ignored; the
// frame-length invariant always holds on the output. Applying the same patch
// twice is equivalent to applying it once.
func Apply(seq Sequence, patches ...Patch) Sequence {
	out := seq.Clone()
	for _, p := range patches {
		if p.Index < 0 || p.Index >= len(out) {
			continue
		}
		if p.Offset < 0 || p.Offset+len(p.Data) > FrameSize {
			continue
		}
		copy(out[p.Index][p.Offset:], p.Data)
	}
	return out
}
