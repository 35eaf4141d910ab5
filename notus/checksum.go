package notus

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
)

// checksumChunkSize bounds memory use while hashing: feed files can be
// large and are never read into memory whole.
const checksumChunkSize = 4096

// checksumOK verifies a file against the digest recorded in the KB. With
// signature checking disabled in the scanner configuration it always
// passes. A missing recorded digest is a verification failure, not an
// error: the file is untrusted either way.
func (h *Handler) checksumOK(path string) bool {
	if h.settings.Bool("nasl_no_signature_check") {
		return true
	}

	f, err := h.appFs.Open(path)
	if err != nil {
		log.Printf("Failed to open %s for checksum check: %s\n", path, err)
		return false
	}
	defer f.Close()

	hash := sha256.New()
	buf := make([]byte, checksumChunkSize)
	if _, err := io.CopyBuffer(hash, f, buf); err != nil {
		log.Printf("Failed to hash %s: %s\n", path, err)
		return false
	}
	calculated := hex.EncodeToString(hash.Sum(nil))

	expected, err := h.store.FileChecksum(path)
	if err != nil {
		log.Printf("Failed to fetch recorded checksum for %s: %s\n", path, err)
		return false
	}
	return expected != "" && calculated == expected
}
