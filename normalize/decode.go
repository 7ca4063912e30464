package normalize

import (
	"bytes"
	"fmt"
	"io"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// Decode converts data to UTF-8, resolving the character set in three
// steps: the caller's hint, statistical detection, and finally assuming the
// bytes are already UTF-8. It returns the decoded text together with the
// charset actually used.
//
// An unknown or empty hint is not an error; it just moves resolution to the
// detection step.
func Decode(data []byte, charsetHint string) (string, string, error) {
	reader, used := utf8Reader(data, charsetHint)

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", "", fmt.Errorf("decoding %s: %w", used, err)
	}

	return string(decoded), used, nil
}

// utf8Reader wraps data in a reader producing UTF-8. It tries the hinted
// charset first, then chardet detection, and falls back to passing the
// bytes through unchanged.
func utf8Reader(data []byte, charsetHint string) (io.Reader, string) {
	decodedReader, err := charset.NewReaderLabel(charsetHint, bytes.NewReader(data))
	if err == nil {
		return decodedReader, charsetHint
	}

	detector := chardet.NewTextDetector()

	best, err := detector.DetectBest(data)
	if err != nil {
		return bytes.NewReader(data), "utf-8"
	}

	decodedReader, err = charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return bytes.NewReader(data), "utf-8"
	}

	return decodedReader, best.Charset
}
