package model

// ConversionRequest is one user action: an operation over raw input text.
type ConversionRequest struct {
	Kind  Kind     `json:"kind"`
	Input string   `json:"input"`
	Aux   string   `json:"aux,omitempty"`
	Args  []string `json:"args,omitempty"`
}

// LogEntry is one appended result line.
type LogEntry struct {
	SessionID string `json:"session_id"`
	Seq       int    `json:"seq"`
	Line      string `json:"line"`
	Failed    bool   `json:"failed"`
	At        string `json:"at"`
}
