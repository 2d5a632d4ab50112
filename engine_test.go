package hufftext

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestEncode_Fab(t *testing.T) {
	result, err := Encode([]byte("fab"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expectArtifact := []byte("0'f10'a1'b\n3\n\x58")
	if !bytes.Equal(expectArtifact, result.Artifact) {
		t.Errorf("wrong artifact:\n\texpect: %q\n\tactual: %q", expectArtifact, result.Artifact)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tEncode('a') = \"10\"\n",
		"\tEncode('b') = \"11\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, _ = result.Codes.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if expect := 0.21; result.Ratio != expect {
		t.Errorf("wrong ratio:\n\texpect: %v\n\tactual: %v", expect, result.Ratio)
	}
	if expect, actual := "Compression Ratio: 0.21:1", result.Report(); expect != actual {
		t.Errorf("wrong report:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestEncode_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		result, err := Encode(data)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
		if result != nil {
			t.Errorf("expected nil result, got %#v", result)
		}
	}
}

func TestEncode_SingleSymbol(t *testing.T) {
	result, err := Encode([]byte("aaaa"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expectArtifact := []byte("0'a1\n4\n\x00")
	if !bytes.Equal(expectArtifact, result.Artifact) {
		t.Errorf("wrong artifact:\n\texpect: %q\n\tactual: %q", expectArtifact, result.Artifact)
	}

	decoded, err := Decode(result.Artifact)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := "aaaa"; expect != string(decoded.Data) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, decoded.Data)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	allBytes := make([]byte, NumSymbols)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{"one-byte", []byte("z")},
		{"one-newline", []byte("\n")},
		{"repeated", bytes.Repeat([]byte{'q'}, 1000)},
		{"two-symbols", []byte("abababbbba")},
		{"hello", []byte("hello, world")},
		{"abracadabra", []byte("abracadabra")},
		{"lines", []byte("one\ntwo\nthree\n\n\n")},
		{"tokens", []byte("'0'1''\n01\n'")},
		{"utf-8", []byte("héllo wörld ☃ ✓")},
		{"all-bytes", allBytes},
		{"textbook", []byte(strings.Repeat("a", 5) + strings.Repeat("b", 9) + strings.Repeat("c", 12) +
			strings.Repeat("d", 13) + strings.Repeat("e", 16) + strings.Repeat("f", 45))},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			result, err := Encode(row.data)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !result.Codes.IsPrefixFree() {
				t.Error("codes are not prefix-free")
			}
			decoded, err := Decode(result.Artifact)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(row.data, decoded.Data) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.data, decoded.Data)
			}
			if !Equal(result.Tree, decoded.Tree) {
				t.Errorf("trees differ:\n\texpect: %s\n\tactual: %s", Render(result.Tree), Render(decoded.Tree))
			}
		})
	}
}

func TestEncode_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var sawPayloadSep bool
	for iter := 0; iter < 50; iter++ {
		data := make([]byte, 1+rng.Intn(10*1024))
		_, _ = rng.Read(data)

		result, err := Encode(data)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		a, err := ParseArtifact(result.Artifact)
		if err != nil {
			t.Fatalf("ParseArtifact failed: %v", err)
		}
		if bytes.IndexByte(a.Payload.Bytes, '\n') >= 0 {
			sawPayloadSep = true
		}

		decoded, err := Decode(result.Artifact)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(data, decoded.Data) {
			t.Fatalf("iteration %d: roundtrip mismatch: got %d bytes, want %d", iter, len(decoded.Data), len(data))
		}
	}
	if !sawPayloadSep {
		t.Error("no payload contained a line break; framing was not exercised")
	}
}

func TestEncode_LineBreakLeaf(t *testing.T) {
	data := []byte("a\nb\na\nb\n")
	result, err := Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tree := SerializeTree(result.Tree)
	if bytes.IndexByte(tree, '\n') < 0 {
		t.Fatalf("expected a line break inside the tree field %q", tree)
	}
	if !bytes.HasPrefix(result.Artifact, tree) {
		t.Fatalf("artifact %q does not start with tree %q", result.Artifact, tree)
	}

	decoded, err := Decode(result.Artifact)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(data, decoded.Data) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", data, decoded.Data)
	}
}

func TestDecode_Errors(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect error
	}

	testData := [...]testRow{
		{"empty", "", ErrMalformedArtifact},
		{"one-line", "only-one-line", ErrMalformedArtifact},
		{"two-lines", "0'a1'b\n3", ErrMalformedArtifact},
		{"separator-in-tree-only", "0'\n1'a\n3", ErrMalformedArtifact},
		{"bad-padding", "tree\n9\npayload", ErrInvalidPadding},
		{"empty-padding", "0'a1'b\n\n\x00", ErrInvalidPadding},
		{"long-padding", "0'a1'b\n03\n\x00", ErrInvalidPadding},
		{"padding-exceeds-payload", "0'a1'b\n3\n", ErrInvalidPadding},
		{"bad-tree", "tree\n3\npayload", ErrMalformedTree},
		{"bad-tree-read-as-padding", "a\nb\n3\nx", ErrInvalidPadding},
		{"tree-trailing-bytes", "0'a1'bX\n3\n\x00", ErrMalformedTree},
		{"leaf-root", "'a\n0\n\x00", ErrMalformedTree},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			decoded, err := Decode([]byte(row.input))
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
			if decoded != nil {
				t.Errorf("expected nil result, got %#v", decoded)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	type testRow struct {
		original   int
		compressed int
		expect     float64
	}

	testData := [...]testRow{
		{10, 4, 2.5},
		{1, 3, 0.33},
		{2, 3, 0.67},
		{1000, 1000, 1},
		{5, 0, 0},
	}
	for _, row := range testData {
		if actual := Ratio(row.original, row.compressed); row.expect != actual {
			t.Errorf("Ratio(%d, %d): expected %v, got %v", row.original, row.compressed, row.expect, actual)
		}
	}
}
