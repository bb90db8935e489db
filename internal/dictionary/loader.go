package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/edsrzf/mmap-go"
	"github.com/projectdiscovery/gologger"
)

// maxLineSize bounds a single line of a reader-based source.
const maxLineSize = 16 * 1024 * 1024

// ErrNotRegularFile is returned when the dictionary path is a directory or device.
var ErrNotRegularFile = errors.New("dictionary: source is not a regular file")

// WordSource supplies extra known words at load time.
type WordSource interface {
	All(ctx context.Context) ([]string, error)
}

// Load reads the text file at path and extracts every letter run as a word.
// Words from sources are merged in afterwards; a failing source is only
// logged. A missing or unreadable file is returned as an error and must be
// treated as fatal by the caller.
func Load(ctx context.Context, path string, sources ...WordSource) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("dictionary: stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	d := &Dictionary{words: mapset.NewSet[string]()}
	// zero-length files cannot be mapped
	if fi.Size() > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("dictionary: mmap %s: %w", path, err)
		}
		err = d.scan(bytes.NewReader(m), int(fi.Size())+1)
		if uerr := m.Unmap(); err == nil && uerr != nil {
			err = uerr
		}
		if err != nil {
			return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
		}
	}

	for _, src := range sources {
		d.merge(ctx, src)
	}

	gologger.Info().Msgf("Dictionary loaded: %d words.", d.Len())
	return d, nil
}

// FromReader builds a dictionary from r using the same extraction rule as Load.
func FromReader(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{words: mapset.NewSet[string]()}
	if err := d.scan(r, maxLineSize); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) scan(r io.Reader, maxLine int) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for s.Scan() {
		d.addLine(s.Text())
	}
	return s.Err()
}

func (d *Dictionary) merge(ctx context.Context, src WordSource) {
	words, err := src.All(ctx)
	if err != nil {
		gologger.Warning().Msgf("could not load extra dictionary words: %v", err)
		return
	}
	added := 0
	for _, w := range words {
		added += d.addLine(w)
	}
	gologger.Verbose().Msgf("merged %d extra dictionary words", added)
}
