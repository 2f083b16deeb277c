package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Analysis keys hash the raw text
// bytes, so two texts share an entry only if they are byte-identical.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// deriveKey builds "<kind>:<contentHash>:<optsHash>". The content hash stays
// readable so all entries for one text can be found with a prefix scan.
func deriveKey(kind, contentHash string, opts any) string {
	data, _ := json.Marshal(opts)
	return kind + ":" + contentHash + ":" + Hash(data)[:16]
}
