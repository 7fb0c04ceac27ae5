package kit

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// defaultLinesPerFile sizes the line vector of ReadLines up front.
const defaultLinesPerFile = 10

// ReadFile returns the whole contents of the file at p.
func ReadFile(p Path) (Str, error) {
	data, err := os.ReadFile(p.String())
	if err != nil {
		return "", errors.Wrapf(err, "read %s", p)
	}
	return Str(data), nil
}

// ReadLines returns every line of the file at p without line terminators.
func ReadLines(p Path) (*Vector[Str], error) {
	return ReadNLines(p, -1)
}

// ReadNLines returns at most n lines of the file at p. A negative n reads
// every line; zero returns an empty vector without opening the file.
func ReadNLines(p Path, n int) (*Vector[Str], error) {
	if n == 0 {
		return NewVector[Str](0, Identity[Str], NoDestroy[Str]), nil
	}
	f, err := os.Open(p.String())
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	defer f.Close()

	lines, err := readLines(bufio.NewReader(f), n)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return lines, nil
}

func readLines(r *bufio.Reader, n int) (*Vector[Str], error) {
	lines := NewVector[Str](defaultLinesPerFile, Identity[Str], NoDestroy[Str])
	for n < 0 || lines.Len() < n {
		line, more, err := ReadLine(r)
		if err != nil {
			return nil, err
		}
		if more || line != "" {
			lines.Add(line)
		}
		if !more {
			break
		}
	}
	return lines, nil
}

// ReadLine reads up to the next newline or NUL byte. It returns false once
// the end of input has been reached; the returned line then holds whatever
// trailing text preceded it. Read failures other than io.EOF are returned
// along with the partial line.
func ReadLine(r *bufio.Reader) (Str, bool, error) {
	b := NewStrBuilder()
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return b.Build(), false, nil
		}
		if err != nil {
			return b.Build(), false, err
		}
		if c == '\n' || c == 0 {
			return b.Build(), true, nil
		}
		b.AppendByte(c)
	}
}
