package collect

// Package collect turns pasted free text into the ordered list of video URLs a
// batch will process. Lines are trimmed, empty lines ignored, and only lines
// starting with an accepted prefix are kept. Nothing is deduplicated.
