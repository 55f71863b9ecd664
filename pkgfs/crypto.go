package pkgfs

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
)

const xtsSectorSize = 0x1000

// rsa2048Decrypt recovers a 32-byte key from a 256-byte PKCS#1 v1.5 ciphertext.
// useDK3 selects the pkgDerivedKey3 keyset, otherwise fakeKeyset is used.
func rsa2048Decrypt(src []byte, useDK3 bool) ([32]byte, error) {
	var out [32]byte
	key := rsaKeyFakeKeyset
	if useDK3 {
		key = rsaKeyPkgDerivedKey3
	}
	msg, err := rsa.DecryptPKCS1v15(nil, key, src)
	if err != nil {
		return out, fmt.Errorf("%w: RSA decrypt: %v", ErrCryptoFail, err)
	}
	if len(msg) != 32 {
		return out, fmt.Errorf("%w: RSA decrypt yielded %d bytes, want 32", ErrCryptoFail, len(msg))
	}
	copy(out[:], msg)
	return out, nil
}

// ivKeyHash256 derives the per-entry ivKey: SHA-256 over the 32-byte entry
// record concatenated with dk3.
func ivKeyHash256(entry [pkgEntrySize]byte, dk3 [32]byte) [32]byte {
	h := sha256.New()
	h.Write(entry[:])
	h.Write(dk3[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// aesCbcDecrypt decrypts src into a new buffer with AES-128-CBC where the
// first half of ivKey is the IV and the second half the key.
func aesCbcDecrypt(ivKey [32]byte, src []byte) ([]byte, error) {
	if len(src)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: CBC input length 0x%x not block aligned", ErrCryptoFail, len(src))
	}
	block, err := aes.NewCipher(ivKey[16:32])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoFail, err)
	}
	dst := make([]byte, len(src))
	cipher.NewCBCDecrypter(block, ivKey[0:16]).CryptBlocks(dst, src)
	return dst, nil
}

// pfsGenCryptoKey derives the XTS sub-keys from ekpfs and the PFS seed:
// HMAC-SHA-256 over u32le(1) || seed, keyed with ekpfs. First half is the
// tweak key, second half the data key.
func pfsGenCryptoKey(ekpfs [32]byte, seed [16]byte) (tweakKey, dataKey [16]byte) {
	mac := hmac.New(sha256.New, ekpfs[:])
	var index [4]byte
	binary.LittleEndian.PutUint32(index[:], 1)
	mac.Write(index[:])
	mac.Write(seed[:])
	d := mac.Sum(nil)
	copy(tweakKey[:], d[0:16])
	copy(dataKey[:], d[16:32])
	return
}

// xtsMult advances an XTS tweak by one position: GF(2^128) multiplication by
// alpha with the reduction polynomial x^128 + x^7 + x^2 + x + 1, byte 0 least
// significant.
func xtsMult(tweak *[16]byte) {
	carry := byte(0)
	for i := 0; i < 16; i++ {
		c := tweak[i] >> 7
		tweak[i] = tweak[i]<<1 | carry
		carry = c
	}
	if carry != 0 {
		tweak[0] ^= 0x87
	}
}

// decryptPFS decrypts whole 0x1000-byte PFS sectors from src into dst.
// firstSector is the logical index of the first sector in src; the per-sector
// tweak is the AES-ECB encryption of the little-endian sector index under the
// tweak key.
func decryptPFS(dataKey, tweakKey [16]byte, src, dst []byte, firstSector uint64) error {
	if len(src)%xtsSectorSize != 0 || len(dst) < len(src) {
		return fmt.Errorf("%w: XTS buffer length 0x%x not sector aligned", ErrCryptoFail, len(src))
	}
	dataCipher, err := aes.NewCipher(dataKey[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCryptoFail, err)
	}
	tweakCipher, err := aes.NewCipher(tweakKey[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCryptoFail, err)
	}

	var plainTweak, tweak, x [16]byte
	for off := 0; off < len(src); off += xtsSectorSize {
		binary.LittleEndian.PutUint64(plainTweak[0:8], firstSector)
		for i := 8; i < 16; i++ {
			plainTweak[i] = 0
		}
		tweakCipher.Encrypt(tweak[:], plainTweak[:])

		for b := 0; b < xtsSectorSize; b += aes.BlockSize {
			in := src[off+b : off+b+aes.BlockSize]
			out := dst[off+b : off+b+aes.BlockSize]
			for i := 0; i < aes.BlockSize; i++ {
				x[i] = in[i] ^ tweak[i]
			}
			dataCipher.Decrypt(x[:], x[:])
			for i := 0; i < aes.BlockSize; i++ {
				out[i] = x[i] ^ tweak[i]
			}
			xtsMult(&tweak)
		}
		firstSector++
	}
	return nil
}

// decompressPFSC inflates one stored PFSC block into dst. dst must be the
// full logical block; a clean inflate of exactly len(dst) bytes is required.
func decompressPFSC(src, dst []byte) error {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCompressFail, err)
	}
	defer zr.Close()
	n, err := io.ReadFull(zr, dst)
	if err != nil {
		return fmt.Errorf("%w: inflated 0x%x of 0x%x bytes: %v", ErrCompressFail, n, len(dst), err)
	}
	// The stream must end here; reaching EOF also verifies the checksum.
	var extra [1]byte
	if m, err := zr.Read(extra[:]); m != 0 || err != io.EOF {
		return fmt.Errorf("%w: stream does not end cleanly after 0x%x bytes: %v", ErrCompressFail, len(dst), err)
	}
	return nil
}
