package tracks

// Script is the accumulated text of a generation run. The zero value is an
// empty script without a header; use NewScript.
//
// Append returns a new Script and leaves the receiver untouched, so a Script
// can be threaded through the pipeline as a plain value.
type Script struct {
	text   string
	blocks int
}

// NewScript returns a script holding only the header.
func NewScript() Script {
	return Script{text: Header}
}

// Append returns a copy of s with t's block added at the end.
func (s Script) Append(t Track) Script {
	return Script{text: s.text + t.Block(), blocks: s.blocks + 1}
}

// Len reports the number of track blocks.
func (s Script) Len() int {
	return s.blocks
}

func (s Script) String() string {
	return s.text
}

// Bytes returns the script as UTF-8 bytes ready to be written.
func (s Script) Bytes() []byte {
	return []byte(s.text)
}
