package smf

import "errors"

var (
	errTruncated   = errors.New("smf: unexpected end of data")
	errChunkTag    = errors.New("smf: chunk tag mismatch")
	errVarLenEnd   = errors.New("smf: unterminated variable-length quantity")
	errVarLenWide  = errors.New("smf: variable-length quantity exceeds 4 bytes")
	errDivision    = errors.New("smf: ticks per beat must be positive")
	errSMPTE       = errors.New("smf: SMPTE time division is not supported")
	errHeaderSize  = errors.New("smf: header chunk shorter than 6 bytes")
	errRunning     = errors.New("smf: running status is not supported")
	errTempoBytes  = errors.New("smf: tempo payload must be 3 bytes")
	errTrackExtent = errors.New("smf: event overruns track chunk")
)
