package zone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const filePerm = 0o644

// ioError keeps both ErrIO and the os error matchable with errors.Is.
func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// Read loads all lines of r. Only a read failure is returned as error, a
// line of any length is handed to Load.
func (s *Store) Read(r io.Reader) (LoadReport, error) {
	var (
		lines []string
		br    = bufio.NewReader(r)
	)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return LoadReport{}, ioError(err)
		}
	}

	return s.Load(lines), nil
}

// LoadFile reads the whole file at path before loading it.
func (s *Store) LoadFile(path string) (LoadReport, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return LoadReport{}, ioError(err)
	}

	defer func() {
		_ = f.Close()
	}()

	return s.Read(f)
}

// WriteTo writes the output of Save to w, one line each.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		bw    = bufio.NewWriter(w)
	)

	for _, line := range s.Save() {
		n, err := bw.WriteString(line + "\n")
		total += int64(n)

		if err != nil {
			return total, ioError(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return total, ioError(err)
	}

	return total, nil
}

// SaveFile creates or truncates path and writes the records to it.
func (s *Store) SaveFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm) //nolint:gosec // operator path
	if err != nil {
		return ioError(err)
	}

	if _, err = s.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}

	if err = f.Close(); err != nil {
		return ioError(err)
	}

	s.metrics.Saved(len(s.records))

	return nil
}
