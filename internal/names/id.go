package names

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainName prefixes name ids.
const DomainName = "pns/name/v1"

// ID returns the content address of n: the hex SHA-256 of the domain, a
// 0x00 separator and the name. The separator keeps domain and name apart.
//
// Callers canonicalize first; permutations of a compound have different
// ids.
func (n Name) ID() string {
	h := sha256.New()
	h.Write([]byte(DomainName))
	h.Write([]byte{0x00})
	h.Write([]byte(n))
	return hex.EncodeToString(h.Sum(nil))
}
