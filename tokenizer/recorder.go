package tokenizer

// recordTo binds target as the active recording destination: every
// byte the cursor consumes from this point on is appended to it once
// stopRecording (or a buffer refill) flushes it. At most one target is
// active at a time; recordTo must be paired with exactly one
// stopRecording.
func (t *Tokenizer) recordTo(target *[]byte) {
	t.recordTarget = target
	t.recordStart = t.bufPos
}

// stopRecording flushes the bytes consumed since recordTo (or the last
// refill) to the bound target and unbinds it.
func (t *Tokenizer) stopRecording() {
	if t.recordTarget == nil {
		return
	}
	if t.bufPos > t.recordStart {
		*t.recordTarget = append(*t.recordTarget, t.buf[t.recordStart:t.bufPos]...)
	}
	t.recordTarget = nil
}
