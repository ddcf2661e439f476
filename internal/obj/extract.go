package obj

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseFloats reads exactly n float fields following the discriminator.
func parseFloats(tokens []string, n int) ([3]float32, error) {
	var out [3]float32
	fields := tokens[1:]
	if len(fields) != n {
		return out, fmt.Errorf("%w: %s expects %d values, got %d", ErrMalformedRecord, tokens[0], n, len(fields))
	}
	for i, f := range fields {
		// ParseFloat also takes Go literal forms (1_0) and nan/inf spellings.
		v, err := strconv.ParseFloat(f, 32)
		if err != nil || strings.Contains(f, "_") || math.IsNaN(v) || math.IsInf(v, 0) {
			return out, fmt.Errorf("%w: %s value %q is not a number", ErrMalformedRecord, tokens[0], f)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// ExtractVertex converts a tokenized "v x y z" line.
func ExtractVertex(tokens []string) (Vertex, error) {
	f, err := parseFloats(tokens, 3)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{f[0], f[1], f[2]}, nil
}

// ExtractTexCoord converts a tokenized "vt u v" line.
func ExtractTexCoord(tokens []string) (TexCoord, error) {
	f, err := parseFloats(tokens, 2)
	if err != nil {
		return TexCoord{}, err
	}
	return TexCoord{f[0], f[1]}, nil
}

// ExtractNormal converts a tokenized "vn x y z" line.
func ExtractNormal(tokens []string) (Normal, error) {
	f, err := parseFloats(tokens, 3)
	if err != nil {
		return Normal{}, err
	}
	return Normal{f[0], f[1], f[2]}, nil
}
