package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func TestPCMToWAVHeaderFields(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"one sample", 2},
		{"odd length", 333},
		{"typical", 48000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pcm := make([]byte, tc.n)
			for i := range pcm {
				pcm[i] = byte(i)
			}

			wav := PCMToWAV(pcm, DefaultSampleRate, DefaultChannels, DefaultBitsPerSample)

			if len(wav) != WAVHeaderSize+tc.n {
				t.Fatalf("container length = %d, want %d", len(wav), WAVHeaderSize+tc.n)
			}
			if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
				t.Fatalf("bad RIFF/WAVE magic: %q %q", wav[0:4], wav[8:12])
			}

			riffSize := binary.LittleEndian.Uint32(wav[4:8])
			if riffSize != uint32(36+tc.n) {
				t.Errorf("RIFF chunk size = %d, want %d", riffSize, 36+tc.n)
			}

			dataSize := binary.LittleEndian.Uint32(wav[40:44])
			if dataSize != uint32(tc.n) {
				t.Errorf("data chunk size = %d, want %d", dataSize, tc.n)
			}

			if !bytes.Equal(wav[WAVHeaderSize:], pcm) {
				t.Error("payload bytes differ from input PCM")
			}
		})
	}
}

func TestPCMToWAVFormatFields(t *testing.T) {
	wav := PCMToWAV([]byte{0, 0}, 24000, 1, 16)

	if tag := binary.LittleEndian.Uint16(wav[20:22]); tag != 1 {
		t.Errorf("format tag = %d, want 1 (PCM)", tag)
	}
	if ch := binary.LittleEndian.Uint16(wav[22:24]); ch != 1 {
		t.Errorf("channels = %d, want 1", ch)
	}
	if sr := binary.LittleEndian.Uint32(wav[24:28]); sr != 24000 {
		t.Errorf("sample rate = %d, want 24000", sr)
	}
	if br := binary.LittleEndian.Uint32(wav[28:32]); br != 48000 {
		t.Errorf("byte rate = %d, want 48000", br)
	}
	if ba := binary.LittleEndian.Uint16(wav[32:34]); ba != 2 {
		t.Errorf("block align = %d, want 2", ba)
	}
	if bits := binary.LittleEndian.Uint16(wav[34:36]); bits != 16 {
		t.Errorf("bits per sample = %d, want 16", bits)
	}
}

func TestDecode(t *testing.T) {
	raw := []byte{0x01, 0x02, 0xFF}
	encoded := base64.StdEncoding.EncodeToString(raw)

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Errorf("Decode = %v, want %v", decoded, raw)
	}

	if _, err := Decode("not base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL("image/png", []byte{1, 2, 3})
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	if url != want {
		t.Errorf("DataURL = %q, want %q", url, want)
	}
}
