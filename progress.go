package huffzip

// Phase names the coarse milestones reported during compression and
// decompression.
type Phase string

const (
	PhaseFrequencyTable Phase = "building_frequency_table"
	PhaseBuildingTree   Phase = "building_tree"
	PhaseGenerating     Phase = "generating_codes"
	PhaseEncoding       Phase = "encoding"
	PhaseReadingHeader  Phase = "reading_header"
	PhaseRebuildingTree Phase = "rebuilding_tree"
	PhaseDecoding       Phase = "decoding"
	PhaseFinalizing     Phase = "finalizing"
)

// ProgressFunc receives phase/percent updates during a long operation.
// Percent is in [0, 100] and non-decreasing within one operation. Updates
// are delivered synchronously on the calling goroutine and are purely
// advisory.
type ProgressFunc func(phase Phase, percent int)

// reporter shields the codec from the observer: a nil observer is a no-op
// and a panicking observer is ignored.
type reporter struct {
	fn ProgressFunc
}

func (r reporter) report(phase Phase, percent int) {
	if r.fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	r.fn(phase, percent)
}
