package canal

import "github.com/rs/zerolog"

// diagnosticLogger wraps an optional *zerolog.Logger so Channel's internals
// never need a nil check before logging. A zero-value diagnosticLogger is
// silent.
type diagnosticLogger struct {
	log *zerolog.Logger
}

func (d diagnosticLogger) segmentCreated(index, capacity int) {
	if d.log == nil {
		return
	}
	d.log.Debug().
		Int("segment_index", index).
		Int("segment_capacity", capacity).
		Msg("canal: grew channel by one segment")
}
