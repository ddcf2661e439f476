package obj

import "strings"

// RecordKind is the type of one OBJ line, taken from its first token.
type RecordKind int

const (
	KindOther RecordKind = iota
	KindObject
	KindVertex
	KindTexCoord
	KindNormal
	KindFace
)

var kindNames = [...]string{
	KindOther:    "other",
	KindObject:   "o",
	KindVertex:   "v",
	KindTexCoord: "vt",
	KindNormal:   "vn",
	KindFace:     "f",
}

func (k RecordKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// Tokenize lowercases and trims line and splits it on whitespace.
// Blank lines give an empty slice.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(line))
}

// Classify decodes the record kind from the first token.
func Classify(tokens []string) RecordKind {
	if len(tokens) == 0 {
		return KindOther
	}
	switch tokens[0] {
	case "o":
		return KindObject
	case "v":
		return KindVertex
	case "vt":
		return KindTexCoord
	case "vn":
		return KindNormal
	case "f":
		return KindFace
	}
	return KindOther
}
