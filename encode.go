package gir

import (
	"bytes"
	"io"

	"github.com/jacoelho/gir/internal/xml"
)

// Encode writes repo as an indented GIR document. Decoding the output yields a
// repository equal to repo.
func Encode(w io.Writer, repo *Repository) error {
	return xml.Write(w, repositorySpec.Encode(repo), "  ")
}

// Marshal returns the GIR document for repo.
func Marshal(repo *Repository) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, repo); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
