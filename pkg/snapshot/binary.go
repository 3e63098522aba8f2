package snapshot

import "unicode/utf8"

// isTextPayload reports whether the raw bytes form valid UTF-8 and can be
// embedded in the document as-is.
func isTextPayload(data []byte) bool {
	return utf8.Valid(data)
}

// encodeBinary widens each byte into the rune with the same value (the
// Latin-1 mapping), producing a text payload in which every byte value
// 0x00-0xFF survives and can be recovered exactly with decodeBinary.
func encodeBinary(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// decodeBinary reverses encodeBinary. It assumes every rune fits in a byte,
// which holds for any string produced by encodeBinary.
func decodeBinary(payload string) []byte {
	data := make([]byte, 0, len(payload))
	for _, r := range payload {
		data = append(data, byte(r))
	}
	return data
}
