// Common package contains the input helpers shared by every command:
// FASTA reading with transparent gzip support.
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FastaHandler receives one record. Returning ErrStop ends the stream early
// without an error.
type FastaHandler func(id string, seq string) error

// ErrStop is returned by a FastaHandler to stop reading.
var ErrStop = errors.New("stop reading")

// OpenInput opens file, transparently decompressing it when it starts with
// the gzip magic bytes. The returned closer releases both layers.
func OpenInput(file string) (io.Reader, func() error, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gr, func() error {
			gr.Close()
			return f.Close()
		}, nil
	}
	return br, f.Close, nil
}

// StreamFasta calls handler for each record of r. Lines before the first
// header are treated as an unnamed record, so plain sequence text works too.
// Sequence lines are uppercased and joined.
func StreamFasta(r io.Reader, handler FastaHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var currentID string
	var buffer []byte
	seen := false

	flush := func() error {
		if !seen && len(buffer) == 0 {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return ignoreStop(err)
			}
			currentID = strings.TrimPrefix(line, ">")
			buffer = buffer[:0] // reset buffer
			seen = true
			continue
		}
		buffer = append(buffer, strings.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return ignoreStop(flush())
}

func ignoreStop(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

// ReadSequence returns the ID and sequence of the first record in file
// (FASTA, gzipped FASTA or bare sequence text).
func ReadSequence(file string) (string, string, error) {
	r, closeFn, err := OpenInput(file)
	if err != nil {
		return "", "", err
	}
	defer closeFn()

	var id, seq string
	found := false
	err = StreamFasta(r, func(recID, recSeq string) error {
		id, seq, found = recID, recSeq, true
		return ErrStop
	})
	if err != nil {
		return "", "", err
	}
	if !found {
		return "", "", fmt.Errorf("%s contains no sequence", file)
	}
	return id, seq, nil
}
