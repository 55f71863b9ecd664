package pkgfs

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXtsMultCarry(t *testing.T) {
	var tweak [16]byte
	tweak[15] = 0x80
	xtsMult(&tweak)

	var want [16]byte
	want[0] = 0x87
	assert.Equal(t, want, tweak)
}

func TestXtsMultShift(t *testing.T) {
	var tweak [16]byte
	tweak[0] = 0x80
	xtsMult(&tweak)

	var want [16]byte
	want[1] = 0x01
	assert.Equal(t, want, tweak)
}

func TestDecryptPFSZeroKeyVector(t *testing.T) {
	// With all-zero keys, sector 0 and all-zero ciphertext the first block
	// decrypts to AES-128(0-key, 0-block), the classic zero vector.
	want := []byte{
		0x66, 0xe9, 0x4b, 0xd4, 0xef, 0x8a, 0x2c, 0x3b,
		0x88, 0x4c, 0xfa, 0x59, 0xca, 0x34, 0x2b, 0x2e,
	}

	var dataKey, tweakKey [16]byte
	src := make([]byte, xtsSectorSize)
	dst := make([]byte, xtsSectorSize)
	err := decryptPFS(dataKey, tweakKey, src, dst, 0)
	assert.NoError(t, err)
	assert.Equal(t, want, dst[:16])
}

func TestDecryptPFSRejectsUnalignedBuffer(t *testing.T) {
	var dataKey, tweakKey [16]byte
	src := make([]byte, xtsSectorSize-16)
	dst := make([]byte, xtsSectorSize)
	err := decryptPFS(dataKey, tweakKey, src, dst, 0)
	assert.ErrorIs(t, err, ErrCryptoFail)
}

// xtsEncryptSectors is the test-side inverse of decryptPFS.
func xtsEncryptSectors(t *testing.T, dataKey, tweakKey [16]byte, buf []byte, firstSector uint64) {
	t.Helper()
	dataCipher, err := aes.NewCipher(dataKey[:])
	assert.NoError(t, err)
	tweakCipher, err := aes.NewCipher(tweakKey[:])
	assert.NoError(t, err)

	var plainTweak, tweak, x [16]byte
	for off := 0; off < len(buf); off += xtsSectorSize {
		for i := range plainTweak {
			plainTweak[i] = 0
		}
		binary.LittleEndian.PutUint64(plainTweak[0:8], firstSector)
		tweakCipher.Encrypt(tweak[:], plainTweak[:])
		for b := 0; b < xtsSectorSize; b += 16 {
			blk := buf[off+b : off+b+16]
			for i := 0; i < 16; i++ {
				x[i] = blk[i] ^ tweak[i]
			}
			dataCipher.Encrypt(x[:], x[:])
			for i := 0; i < 16; i++ {
				blk[i] = x[i] ^ tweak[i]
			}
			xtsMult(&tweak)
		}
		firstSector++
	}
}

func TestDecryptPFSRoundTrip(t *testing.T) {
	var dataKey, tweakKey [16]byte
	rand.Read(dataKey[:])
	rand.Read(tweakKey[:])

	plain := make([]byte, 3*xtsSectorSize)
	rand.Read(plain)

	enc := make([]byte, len(plain))
	copy(enc, plain)
	xtsEncryptSectors(t, dataKey, tweakKey, enc, 7)

	dec := make([]byte, len(plain))
	err := decryptPFS(dataKey, tweakKey, enc, dec, 7)
	assert.NoError(t, err)
	assert.Equal(t, plain, dec)
}

func TestPfsGenCryptoKey(t *testing.T) {
	var ekpfs [32]byte
	var seed [16]byte
	rand.Read(ekpfs[:])
	rand.Read(seed[:])

	mac := hmac.New(sha256.New, ekpfs[:])
	mac.Write([]byte{1, 0, 0, 0})
	mac.Write(seed[:])
	want := mac.Sum(nil)

	tweakKey, dataKey := pfsGenCryptoKey(ekpfs, seed)
	assert.Equal(t, want[:16], tweakKey[:])
	assert.Equal(t, want[16:], dataKey[:])
}

func TestIvKeyHash256(t *testing.T) {
	var entry [pkgEntrySize]byte
	var dk3 [32]byte
	rand.Read(entry[:])
	rand.Read(dk3[:])

	h := sha256.New()
	h.Write(entry[:])
	h.Write(dk3[:])
	want := h.Sum(nil)

	got := ivKeyHash256(entry, dk3)
	assert.Equal(t, want, got[:])
}

func cbcEncrypt(t *testing.T, ivKey [32]byte, plain []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(ivKey[16:32])
	assert.NoError(t, err)
	enc := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, ivKey[0:16]).CryptBlocks(enc, plain)
	return enc
}

func TestAesCbcDecrypt(t *testing.T) {
	var ivKey [32]byte
	rand.Read(ivKey[:])

	plain := make([]byte, 64)
	rand.Read(plain)
	enc := cbcEncrypt(t, ivKey, plain)

	dec, err := aesCbcDecrypt(ivKey, enc)
	assert.NoError(t, err)
	assert.Equal(t, plain, dec)

	_, err = aesCbcDecrypt(ivKey, enc[:30])
	assert.ErrorIs(t, err, ErrCryptoFail)
}

func TestRsa2048DecryptRoundTrip(t *testing.T) {
	var key [32]byte
	rand.Read(key[:])

	for _, useDK3 := range []bool{true, false} {
		pub := &rsaKeyFakeKeyset.PublicKey
		if useDK3 {
			pub = &rsaKeyPkgDerivedKey3.PublicKey
		}
		ct, err := rsa.EncryptPKCS1v15(rand.Reader, pub, key[:])
		assert.NoError(t, err)
		assert.Len(t, ct, 256)

		got, err := rsa2048Decrypt(ct, useDK3)
		assert.NoError(t, err)
		assert.Equal(t, key[:], got[:])
	}
}

func TestRsa2048DecryptBadPadding(t *testing.T) {
	garbage := make([]byte, 256)
	rand.Read(garbage)
	_, err := rsa2048Decrypt(garbage, false)
	assert.ErrorIs(t, err, ErrCryptoFail)
}

func TestDecompressPFSC(t *testing.T) {
	plain := make([]byte, pfsBlockSize)
	for i := range plain {
		plain[i] = byte(i % 251)
	}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(plain)
	zw.Close()

	dst := make([]byte, pfsBlockSize)
	err := decompressPFSC(buf.Bytes(), dst)
	assert.NoError(t, err)
	assert.Equal(t, plain, dst)
}

func TestDecompressPFSCShortStream(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write([]byte("short"))
	zw.Close()

	dst := make([]byte, pfsBlockSize)
	err := decompressPFSC(buf.Bytes(), dst)
	assert.ErrorIs(t, err, ErrCompressFail)
}
