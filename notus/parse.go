package notus

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/xerrors"

	"github.com/greenbone-community/notus-metadata-loader/literal"
)

const linkLinePrefix = "link = "

// ParseFamilyDriverLink extracts the single `{family: driver-OID}` mapping
// from a metadata file. It rewinds the handle first, so repeated calls on
// the same open file are safe. A file without a link line yields a nil map
// and no error: such a file simply cannot take part in family discovery.
func ParseFamilyDriverLink(f io.ReadSeeker) (map[string]string, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, xerrors.Errorf("failed to rewind metadata file: %w", err)
	}
	return scanFamilyDriverLink(bufio.NewReader(f))
}

// scanFamilyDriverLink consumes lines up to and including the first
// `link = ` line and parses its mapping. The reader is left positioned on
// the following line.
func scanFamilyDriverLink(br *bufio.Reader) (map[string]string, error) {
	for {
		line, err := readLine(br)
		if err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		if !strings.HasPrefix(line, linkLinePrefix) {
			continue
		}
		link, parseErr := literal.ParseStringMap(strings.TrimPrefix(line, linkLinePrefix))
		if parseErr != nil {
			return nil, xerrors.Errorf("malformed link line: %w", parseErr)
		}
		return link, nil
	}
}

// scanGeneralMetadata consumes lines until the first one opening with `{`
// and parses it as the shared per-file metadata. Scanning stops at the
// first match, leaving the reader positioned on the CSV header line.
func scanGeneralMetadata(br *bufio.Reader) (GeneralMetadata, error) {
	for {
		line, err := readLine(br)
		if err != nil {
			if err == io.EOF {
				return GeneralMetadata{}, xerrors.New("no general metadata line found")
			}
			return GeneralMetadata{}, err
		}
		if !strings.HasPrefix(line, "{") {
			continue
		}
		m, parseErr := literal.ParseStringMap(line)
		if parseErr != nil {
			return GeneralMetadata{}, xerrors.Errorf("malformed general metadata line: %w", parseErr)
		}
		return generalMetadataFromMap(m), nil
	}
}

// readLine returns the next line without its trailing newline. io.EOF is
// returned only when no data was read at all.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
