package helpers

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// FileType represents the detected format of a downloaded executable
type FileType string

const (
	FileTypeELF     FileType = "elf"
	FileTypeMachO   FileType = "mach-o"
	FileTypePE      FileType = "pe"
	FileTypeScript  FileType = "script"
	FileTypeGzip    FileType = "gzip"
	FileTypeZip     FileType = "zip"
	FileTypeUnknown FileType = "unknown"
)

// NativeOS returns the GOOS that runs this format natively, or "" when
// the format is not tied to one operating system
func (t FileType) NativeOS() string {
	switch t {
	case FileTypeELF:
		return "linux"
	case FileTypeMachO:
		return "darwin"
	case FileTypePE:
		return "windows"
	default:
		return ""
	}
}

// IsArchive reports whether the format is a compressed container rather
// than something that can be exec'd directly
func (t FileType) IsArchive() bool {
	return t == FileTypeGzip || t == FileTypeZip
}

var (
	magicELF    = []byte{0x7f, 'E', 'L', 'F'}
	magicPE     = []byte{'M', 'Z'}
	magicScript = []byte{'#', '!'}
	magicGzip   = []byte{0x1f, 0x8b}
	magicZip    = []byte{'P', 'K', 0x03, 0x04}
	magicMachO  = [][]byte{
		{0xfe, 0xed, 0xfa, 0xce}, // 32-bit
		{0xfe, 0xed, 0xfa, 0xcf}, // 64-bit
		{0xce, 0xfa, 0xed, 0xfe}, // 32-bit little-endian
		{0xcf, 0xfa, 0xed, 0xfe}, // 64-bit little-endian
		{0xca, 0xfe, 0xba, 0xbe}, // universal
	}
)

// DetectHeader identifies an executable format from its leading bytes
func DetectHeader(header []byte) FileType {
	switch {
	case bytes.HasPrefix(header, magicELF):
		return FileTypeELF
	case bytes.HasPrefix(header, magicScript):
		return FileTypeScript
	case bytes.HasPrefix(header, magicZip):
		return FileTypeZip
	case bytes.HasPrefix(header, magicGzip):
		return FileTypeGzip
	case bytes.HasPrefix(header, magicPE):
		return FileTypePE
	}
	for _, m := range magicMachO {
		if bytes.HasPrefix(header, m) {
			return FileTypeMachO
		}
	}
	return FileTypeUnknown
}

// DetectFileType reads the first bytes of path and identifies its format
func DetectFileType(fs afero.Fs, path string) (FileType, error) {
	f, err := fs.Open(path)
	if err != nil {
		return FileTypeUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileTypeUnknown, fmt.Errorf("failed to read file header: %w", err)
	}

	return DetectHeader(header[:n]), nil
}
