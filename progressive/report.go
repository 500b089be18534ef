package progressive

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"
)

// Report is the JSON-serializable record of one search run, consumed
// by the plotting tool and by regression comparisons of the
// deterministic output.
type Report struct {
	Bound      uint64           `json:"Bound"`
	Modulus    uint64           `json:"Modulus"`
	Roots      []uint64         `json:"Roots"`
	Values     []uint64         `json:"Values"`
	Sum        uint64           `json:"Sum"`
	Pairs      uint64           `json:"Pairs"`
	Candidates uint64           `json:"Candidates"`
	TimingsUS  map[string]int64 `json:"TimingsUS,omitempty"`
}

// NewReport captures the result of a run. Roots and Values are sorted
// ascending so two reports of the same search compare equal.
func NewReport(res *Result, modulus uint64) *Report {
	return &Report{
		Bound:      res.Bound,
		Modulus:    modulus,
		Roots:      res.Roots(),
		Values:     res.Values(),
		Sum:        res.Sum(),
		Pairs:      res.Pairs,
		Candidates: res.Candidates,
	}
}

// Digest returns a 16-byte SHAKE-256 fingerprint of the semantic
// output: bound, sorted solution values and sum. Counters and timings
// are excluded so the digest is stable across performance-only
// changes such as the coprime skip.
func (r *Report) Digest() [16]byte {
	h := sha3.NewShake256()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(r.Bound)
	put(uint64(len(r.Values)))
	for _, v := range r.Values {
		put(v)
	}
	put(r.Sum)
	var out [16]byte
	_, _ = h.Read(out[:])
	return out
}

// WriteFile writes the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadReport loads a report written by WriteFile.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}
