package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainSnapshot prefixes snapshot digests. The version suffix leaves room
// for a different encoding later.
const DomainSnapshot = "pns/snapshot/v1"

// Digest returns the content address of snap: SHA-256 over the domain, a
// 0x00 separator and the snapshot's JSON encoding. Equal stores have equal
// digests.
func (snap Snapshot) Digest() (string, error) {
	data, err := MarshalSnapshot(snap)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(DomainSnapshot))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
