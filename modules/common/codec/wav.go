package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// Default output format of the Gemini TTS models: 24 kHz mono 16-bit
// linear PCM.
const (
	DefaultSampleRate    = 24000
	DefaultChannels      = 1
	DefaultBitsPerSample = 16
)

// WAVHeaderSize is the size of the classic RIFF/WAVE header this
// package synthesizes.
const WAVHeaderSize = 44

// Decode decodes a standard base64 payload into raw bytes.
func Decode(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return raw, nil
}

// PCMToWAV wraps raw linear PCM samples in a minimal RIFF/WAVE
// container so they are playable as-is. All chunk-size fields are
// computed from the actual payload length; a zero-length payload yields
// a valid (degenerate) container.
func PCMToWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	dataLen := uint32(len(pcm))
	byteRate := uint32(sampleRate * channels * bitsPerSample / 8)
	blockAlign := uint16(channels * bitsPerSample / 8)

	buf := bytes.NewBuffer(make([]byte, 0, WAVHeaderSize+len(pcm)))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36)+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM format tag
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)

	return buf.Bytes()
}

// DataURL builds an embeddable data URL for a raw payload.
func DataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
