package id3

// removeUnsynchronization reverses ID3v2 byte stuffing in place:
// every 0x00 that follows a 0xFF inside buf[start:start+length] is
// deleted by shifting the remaining bytes left one position. Returns
// the shortened length.
//
// After a removal the scan continues at the same index, so a byte
// shifted into place can itself complete another FF 00 pair.
func removeUnsynchronization(buf []byte, start, length int) int {
	if start+length > len(buf) {
		length = len(buf) - start
	}
	for i := start; i+1 < start+length; i++ {
		if buf[i] == 0xFF && buf[i+1] == 0x00 {
			copy(buf[i+1:start+length-1], buf[i+2:start+length])
			length--
		}
	}
	return length
}
