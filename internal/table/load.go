package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the encoding the experiment writers produce.
const DefaultEncoding = "ISO-8859-1"

// Load reads the comma-separated file at path, decoding it with enc.
// The first record is the header.
func Load(path, enc string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	defer f.Close()

	return LoadReader(f, path, enc)
}

// LoadReader is Load for an already open stream. name labels errors.
func LoadReader(r io.Reader, name, enc string) (*Table, error) {
	e, err := Encoding(enc)
	if err != nil {
		return nil, err
	}
	if e != nil {
		r = e.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		pe := &ParseError{Path: name, Err: err}
		var ce *csv.ParseError
		if errors.As(err, &ce) {
			pe.Line = ce.Line
			pe.Err = ce.Err
		}
		return nil, pe
	}
	if len(records) == 0 {
		return nil, &ParseError{Path: name, Err: ErrEmpty}
	}

	return New(name, records[0], records[1:])
}

// Encoding resolves an encoding name. UTF-8 (and the empty name) yield a
// nil Encoding, meaning the bytes are used as is.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "iso-8859-1", "iso8859-1", "iso_8859-1", "latin1", "latin-1", "l1":
		// WHATWG indexes alias latin1 to windows-1252; the files are true latin1.
		return charmap.ISO8859_1, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("table: encoding %q: %w", name, err)
	}
	if e == nil {
		return nil, fmt.Errorf("table: encoding %q is not supported", name)
	}
	return e, nil
}

func errFieldCount(want, got int) error {
	return fmt.Errorf("%w: want %d fields, got %d", csv.ErrFieldCount, want, got)
}
