package snapshot

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// CompressedExt marks scene files stored zstd-compressed. Anything else is
// written as plain, diffable JSON.
const CompressedExt = ".vxz"

// FileHeader precedes the payload in compressed scene files, one JSON line.
type FileHeader struct {
	Version int    `json:"version"`
	SceneID string `json:"scene_id"`
	Saved   string `json:"saved"`
}

// WriteFile stores a document at path, compressed when the extension is
// CompressedExt.
func WriteFile(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), CompressedExt) {
		return writeCompressed(f, data)
	}
	_, err = f.Write(data)
	return err
}

func writeCompressed(f *os.File, payload []byte) error {
	enc, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}

	header, err := json.Marshal(FileHeader{
		Version: Version,
		SceneID: uuid.NewString(),
		Saved:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 256*1024)
	if _, err := bw.Write(header); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := bw.Write(payload); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return enc.Close()
}

// ReadFile loads and validates a scene document. Compressed files are
// detected by extension; the header line is read and discarded apart from
// its version check.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []byte
	if strings.EqualFold(filepath.Ext(path), CompressedExt) {
		data, err = readCompressed(f)
	} else {
		data, err = io.ReadAll(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return &doc, nil
}

func readCompressed(f *os.File) ([]byte, error) {
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)
	headerLine, err := br.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	var header FileHeader
	if err := json.Unmarshal(bytes.TrimSpace(headerLine), &header); err != nil {
		return nil, fmt.Errorf("scene file header: %w", err)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("scene file header version %d: %w", header.Version, ErrUnsupportedVersion)
	}
	return io.ReadAll(br)
}
