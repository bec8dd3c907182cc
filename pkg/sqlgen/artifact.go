package sqlgen

import (
	"bufio"
	"io"

	"github.com/gnames/taxseed/pkg/sighting"
	"github.com/gnames/taxseed/pkg/taxon"
)

// Header is the provenance comment block at the top of an artifact.
type Header struct {
	// Description is the first line, for example
	// "North American Birds - Full Dataset (All 2,220 species)".
	Description string
	// Source describes where the data came from.
	Source string
	// Notes are optional additional comment lines.
	Notes []string
	// Command is how to regenerate the artifact.
	Command string
}

// WriteTaxa writes a taxonomy artifact: the header followed by one
// commented section per rank in ancestor-first order. Sections are
// separated by a blank line.
func (e Emitter) WriteTaxa(w io.Writer, h Header, g taxon.Groups) error {
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}
	writeHeader(ew, h)

	for i, sec := range g.Sections() {
		if i > 0 {
			ew.line("")
		}
		ew.line("-- " + sec.Title)
		for _, t := range sec.Taxa {
			ew.line(e.Taxon(t))
		}
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// WriteSightings writes the sightings artifact with two sections:
// sightings that belong to trips and casual sightings.
func (e Emitter) WriteSightings(
	w io.Writer,
	h Header,
	b sighting.Blocks,
) error {
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}
	writeHeader(ew, h)

	ew.line("-- Sightings with trips")
	for _, s := range b.Trips {
		ew.line(e.Sighting(s))
	}
	ew.line("")
	ew.line("-- Casual sightings (no trip)")
	for _, s := range b.Casual {
		ew.line(e.Sighting(s))
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

func writeHeader(ew *errWriter, h Header) {
	ew.line("-- " + h.Description)
	if h.Source != "" {
		ew.line("-- Generated from " + h.Source)
	}
	for _, v := range h.Notes {
		ew.line("-- " + v)
	}
	cmd := h.Command
	if cmd == "" {
		cmd = "taxseed generate"
	}
	ew.line("-- DO NOT EDIT MANUALLY - regenerate using " + cmd)
	ew.line("")
}

// errWriter remembers the first write error and ignores the rest of the
// writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}
