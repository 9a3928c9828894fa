// Package images reads and writes IntCode program images: base-10 signed
// integers separated by commas, optionally followed by a newline.
package images

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/minimav/intcode/intcode"
	"golang.org/x/crypto/blake2b"
)

var ErrEmptyImage = errors.New("empty image")

type image struct {
	Words []string `parser:"@Int ( \",\" @Int )*"`
}

var imageLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Punct", Pattern: `,`},
})

var parser = participle.MustBuild[image](
	participle.Lexer(imageLexer),
	participle.Elide("Whitespace"),
)

func Parse(src string) ([]intcode.Word, error) {
	return parse("", src)
}

func Load(path string) ([]intcode.Word, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(path, string(content))
}

func parse(name string, src string) ([]intcode.Word, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmptyImage
	}
	// a single trailing separator is tolerated
	src = strings.TrimSuffix(src, ",")
	ast, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse image: %w", err)
	}
	words := make([]intcode.Word, 0, len(ast.Words))
	for i, str := range ast.Words {
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse image: word %d: %w", i, err)
		}
		words = append(words, v)
	}
	return words, nil
}

func Format(words []intcode.Word) string {
	buf := new(strings.Builder)
	for i, w := range words {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(w, 10))
	}
	return buf.String()
}

// Digest is a short fingerprint of the image, for log lines.
func Digest(words []intcode.Word) string {
	buf := make([]byte, 0, len(words)*8)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(w))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:8])
}
