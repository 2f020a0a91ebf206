package site

import "bytes"

// minifyHTML compacts a rendered page. The minifier is deterministic, so
// repeated builds of unchanged input stay byte-identical.
func (s *Service) minifyHTML(raw []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := s.minifier.Minify("text/html", &out, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
