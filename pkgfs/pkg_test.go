package pkgfs

import (
	"bytes"
	"compress/zlib"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testTableOffset = 0x2000
	testImageOffset = 0x100000
	testHeadLength  = 0x90000
	testPfscOffset  = 0x20000
	testNdinode     = 4
	testFileSize    = 0x13000
	testContentID   = "UP0000-CUSA12345_00-TESTPKG000000000"
)

// testPKG is one fully synthesised package on disk plus the plaintexts the
// extraction is expected to reproduce.
type testPKG struct {
	path        string
	sfo         []byte
	npdrm       []byte
	unknown     []byte
	fileContent []byte
}

func putBEHeader(buf []byte, entryCount uint32, pkgSize uint64) {
	be := binary.BigEndian
	be.PutUint32(buf[0x00:], pkgMagic)
	be.PutUint32(buf[0x10:], entryCount)
	be.PutUint32(buf[0x18:], testTableOffset)
	be.PutUint64(buf[0x30:], testTableOffset)
	be.PutUint64(buf[0x38:], testImageOffset-testTableOffset)
	copy(buf[0x40:], testContentID)
	be.PutUint64(buf[0x410:], testImageOffset)
	be.PutUint64(buf[0x418:], testHeadLength)
	be.PutUint64(buf[0x430:], pkgSize)
	be.PutUint32(buf[0x43C:], testHeadLength/2)
}

func putTestEntry(buf []byte, index int, e PKGEntry) {
	rec := e.entryBytes()
	copy(buf[testTableOffset+index*pkgEntrySize:], rec[:])
}

func deflateBlock(t *testing.T, plain []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	zw := zlib.NewWriter(&out)
	_, err := zw.Write(plain)
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())
	return out.Bytes()
}

// buildPFSHead lays out the plaintext PFS head: filler up to the PFSC blob,
// then header, sector map and the six logical blocks (superblock, inode
// table, uroot block, directory block, two file blocks).
func buildPFSHead(t *testing.T, fileContent []byte) []byte {
	t.Helper()
	le := binary.LittleEndian

	blockA := deflateBlock(t, fileContent[:pfsBlockSize])
	assert.Less(t, len(blockA), 0x8000)
	blockB := make([]byte, pfsBlockSize)
	copy(blockB, fileContent[pfsBlockSize:])

	sectorMap := []uint64{
		0x10000, 0x20000, 0x30000, 0x40000, 0x50000,
		0x50000 + uint64(len(blockA)),
		0x60000 + uint64(len(blockA)),
	}

	head := make([]byte, testHeadLength)
	pfsc := head[testPfscOffset:]

	// PFSC header.
	le.PutUint32(pfsc[0x00:], pfscMagic)
	le.PutUint32(pfsc[0x0C:], pfsBlockSize)
	le.PutUint64(pfsc[0x10:], pfsBlockSize)
	le.PutUint64(pfsc[0x18:], 0x40)
	le.PutUint64(pfsc[0x20:], 0x10000)
	le.PutUint64(pfsc[0x28:], 0x68000) // six logical blocks
	for i, off := range sectorMap {
		le.PutUint64(pfsc[0x40+i*8:], off)
	}

	// Block 0: superblock.
	le.PutUint32(pfsc[sectorMap[0]+0x30:], testNdinode)

	// Block 1: inode table. Entries 0 and 1 belong to the image roots,
	// 2 is the file, 3 the subdirectory.
	inodes := pfsc[sectorMap[1]:]
	for i := 0; i < testNdinode; i++ {
		le.PutUint16(inodes[i*inodeSize:], 0x81B4)
	}
	le.PutUint64(inodes[2*inodeSize+0x08:], testFileSize)
	le.PutUint32(inodes[2*inodeSize+0x60:], 2) // blocks
	le.PutUint32(inodes[2*inodeSize+0x64:], 4) // loc

	// Block 2: uroot block with the flat path table record.
	uroot := pfsc[sectorMap[2]:]
	putDirent(uroot, 1, PFSDir, "flat_path_table", 0x28)

	// Block 3: directory block.
	dir := pfsc[sectorMap[3]:]
	putDirent(dir[0x00:], 1, PFSCurrentDir, ".", 0x18)
	putDirent(dir[0x18:], 1, PFSParentDir, "..", 0x18)
	putDirent(dir[0x30:], 2, PFSFile, "a.bin", 0x18)
	putDirent(dir[0x48:], 3, PFSDir, "sub", 0x18)

	// Blocks 4 and 5: file content, one deflated, one raw.
	copy(pfsc[sectorMap[4]:], blockA)
	copy(pfsc[sectorMap[5]:], blockB)

	return head
}

// buildTestPKG synthesises a complete package: entry table with the key
// chain, NPDRM and sce_sys payloads, and an XTS-encrypted PFS image holding
// one file and one directory.
func buildTestPKG(t *testing.T, dir string) *testPKG {
	t.Helper()

	pkgSize := uint64(testImageOffset + testHeadLength)
	buf := make([]byte, pkgSize)
	putBEHeader(buf, 5, pkgSize)

	var dk3 [32]byte
	var ekpfs [32]byte
	var seed [16]byte
	rand.Read(dk3[:])
	rand.Read(ekpfs[:])
	rand.Read(seed[:])

	tp := &testPKG{
		sfo:         randomBytes(37),
		npdrm:       randomBytes(64),
		unknown:     randomBytes(17),
		fileContent: patternBytes(testFileSize),
	}

	// Entry 0x10: key slot 3 recovers dk3.
	entryKeys := make([]byte, 32+7*32+7*256)
	key3, err := rsa.EncryptPKCS1v15(rand.Reader, &rsaKeyPkgDerivedKey3.PublicKey, dk3[:])
	assert.NoError(t, err)
	copy(entryKeys[32+7*32+3*256:], key3)
	e10 := PKGEntry{ID: entryIDEntryKeys, Offset: 0x3000, Size: uint32(len(entryKeys))}
	putTestEntry(buf, 0, e10)
	copy(buf[e10.Offset:], entryKeys)

	// Entry 0x20: ekpfs wrapped in fakeKeyset RSA, CBC-encrypted under the
	// entry ivKey.
	imgKeyPlain, err := rsa.EncryptPKCS1v15(rand.Reader, &rsaKeyFakeKeyset.PublicKey, ekpfs[:])
	assert.NoError(t, err)
	e20 := PKGEntry{ID: entryIDImageKey, Offset: 0x3800, Size: 256}
	putTestEntry(buf, 1, e20)
	copy(buf[e20.Offset:], cbcEncrypt(t, entryIvKey(e20, dk3), imgKeyPlain))

	// Entry 0x400: NPDRM payload, written decrypted by the extractor.
	e400 := PKGEntry{ID: entryIDLicenseDat, Offset: 0x3900, Size: uint32(len(tp.npdrm))}
	putTestEntry(buf, 2, e400)
	copy(buf[e400.Offset:], cbcEncrypt(t, entryIvKey(e400, dk3), tp.npdrm))

	// Entry 0x1000: param.sfo, stored raw.
	e1000 := PKGEntry{ID: 0x1000, Offset: 0x3A00, Size: uint32(len(tp.sfo))}
	putTestEntry(buf, 3, e1000)
	copy(buf[e1000.Offset:], tp.sfo)

	// An entry with no known name.
	eUnknown := PKGEntry{ID: 0xDEADBEEF, Offset: 0x3B00, Size: uint32(len(tp.unknown))}
	putTestEntry(buf, 4, eUnknown)
	copy(buf[eUnknown.Offset:], tp.unknown)

	// PFS image: encrypt the head, then place the plaintext seed the key
	// derivation reads before any decryption happens.
	mac := hmac.New(sha256.New, ekpfs[:])
	mac.Write([]byte{1, 0, 0, 0})
	mac.Write(seed[:])
	d := mac.Sum(nil)
	var tweakKey, dataKey [16]byte
	copy(tweakKey[:], d[:16])
	copy(dataKey[:], d[16:])

	head := buildPFSHead(t, tp.fileContent)
	xtsEncryptSectors(t, dataKey, tweakKey, head, 0)
	copy(buf[testImageOffset:], head)
	copy(buf[testImageOffset+0x370:], seed[:])

	tp.path = filepath.Join(dir, "test.pkg")
	assert.NoError(t, os.WriteFile(tp.path, buf, 0644))
	return tp
}

func entryIvKey(e PKGEntry, dk3 [32]byte) [32]byte {
	rec := e.entryBytes()
	h := sha256.New()
	h.Write(rec[:])
	h.Write(dk3[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func patternBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func TestOpenRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zeros.pkg")
	assert.NoError(t, os.WriteFile(path, make([]byte, 0x1000), 0644))

	p := NewPKG()
	err := p.Open(path)
	assert.ErrorIs(t, err, ErrBadFormat)
	assert.Contains(t, err.Error(), "magic")
}

func TestExtractRejectsOversizedHeader(t *testing.T) {
	dir := t.TempDir()
	buf := make([]byte, 0x2000)
	putBEHeader(buf, 0, uint64(len(buf))+1)
	path := filepath.Join(dir, "oversize.pkg")
	assert.NoError(t, os.WriteFile(path, buf, 0644))

	p := NewPKG()
	assert.NoError(t, p.Open(path))
	err := p.Extract(filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrBadFormat)
	assert.Contains(t, err.Error(), "PKG file size is different")
}

func TestExtractRejectsOversizedContent(t *testing.T) {
	dir := t.TempDir()
	buf := make([]byte, 0x2000)
	be := binary.BigEndian
	be.PutUint32(buf[0x00:], pkgMagic)
	be.PutUint64(buf[0x30:], 0x1000) // content offset
	be.PutUint64(buf[0x38:], 0x1001) // content size, one byte past pkg size
	be.PutUint64(buf[0x430:], 0x2000)
	path := filepath.Join(dir, "content.pkg")
	assert.NoError(t, os.WriteFile(path, buf, 0644))

	p := NewPKG()
	assert.NoError(t, p.Open(path))
	err := p.Extract(filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrBadFormat)
	assert.Contains(t, err.Error(), "Content size is bigger than pkg size")
}

func TestExtractSceSysOnly(t *testing.T) {
	// pfs_cache_size == 0 skips the whole PFS pipeline, only sce_sys is
	// produced and no key entries are required.
	dir := t.TempDir()
	sfo := randomBytes(37)

	buf := make([]byte, 0x5000)
	be := binary.BigEndian
	be.PutUint32(buf[0x00:], pkgMagic)
	be.PutUint32(buf[0x10:], 1)
	be.PutUint32(buf[0x18:], testTableOffset)
	copy(buf[0x40:], testContentID)
	be.PutUint64(buf[0x430:], uint64(len(buf)))
	putTestEntry(buf, 0, PKGEntry{ID: 0x1000, Offset: 0x3000, Size: uint32(len(sfo))})
	copy(buf[0x3000:], sfo)

	path := filepath.Join(dir, "meta.pkg")
	assert.NoError(t, os.WriteFile(path, buf, 0644))
	out := filepath.Join(dir, "out")

	p := NewPKG()
	assert.NoError(t, p.Open(path))
	assert.NoError(t, p.Extract(out))
	assert.Equal(t, 0, p.GetNumberOfFiles())

	got, err := os.ReadFile(filepath.Join(out, "sce_sys", "param.sfo"))
	assert.NoError(t, err)
	assert.Equal(t, sfo, got)
}

func TestExtractFullImage(t *testing.T) {
	dir := t.TempDir()
	tp := buildTestPKG(t, dir)
	out := filepath.Join(dir, "game")

	p := NewPKG()
	assert.NoError(t, p.Open(tp.path))
	assert.Equal(t, "CUSA12345", p.GetTitleID())
	assert.Equal(t, testContentID, p.GetContentID())
	assert.Equal(t, tp.sfo, p.GetSfo())

	assert.NoError(t, p.Extract(out))
	assert.NoError(t, p.ExtractAllFilesWithProgress(nil))

	// sce_sys payloads, NPDRM decrypted, unknown id under its decimal name.
	got, err := os.ReadFile(filepath.Join(out, "sce_sys", "param.sfo"))
	assert.NoError(t, err)
	assert.Equal(t, tp.sfo, got)

	got, err = os.ReadFile(filepath.Join(out, "sce_sys", "license.dat"))
	assert.NoError(t, err)
	assert.Equal(t, tp.npdrm, got)

	got, err = os.ReadFile(filepath.Join(out, "sce_sys", "3735928559"))
	assert.NoError(t, err)
	assert.Equal(t, tp.unknown, got)

	// The PFS tree roots at parent/titleID for a base package.
	root := filepath.Join(dir, "CUSA12345")
	got, err = os.ReadFile(filepath.Join(root, "a.bin"))
	assert.NoError(t, err)
	assert.Equal(t, tp.fileContent, got)

	st, err := os.Stat(filepath.Join(root, "sub"))
	assert.NoError(t, err)
	assert.True(t, st.IsDir())

	assert.Equal(t, []string{"a.bin"}, p.GetFileList())
}

func TestExtractUpdateSuffixKeepsOutDir(t *testing.T) {
	dir := t.TempDir()
	tp := buildTestPKG(t, dir)
	out := filepath.Join(dir, "patch-UPDATE")

	p := NewPKG()
	assert.NoError(t, p.Open(tp.path))
	assert.NoError(t, p.Extract(out))
	assert.NoError(t, p.ExtractAllFilesWithProgress(nil))

	got, err := os.ReadFile(filepath.Join(out, "a.bin"))
	assert.NoError(t, err)
	assert.Equal(t, tp.fileContent, got)
}

func TestExtractInPlaceLayout(t *testing.T) {
	dir := t.TempDir()
	tp := buildTestPKG(t, dir)
	out := filepath.Join(dir, "dlc")

	p := NewPKG()
	p.Layout = LayoutInPlace
	assert.NoError(t, p.Open(tp.path))
	assert.NoError(t, p.Extract(out))
	assert.NoError(t, p.ExtractAllFilesWithProgress(nil))

	got, err := os.ReadFile(filepath.Join(out, "a.bin"))
	assert.NoError(t, err)
	assert.Equal(t, tp.fileContent, got)
}

func TestExtractTwiceIsIdentical(t *testing.T) {
	dir := t.TempDir()
	tp := buildTestPKG(t, dir)

	read := func(out string) []byte {
		p := NewPKG()
		assert.NoError(t, p.Open(tp.path))
		p.Layout = LayoutInPlace
		assert.NoError(t, p.Extract(out))
		assert.NoError(t, p.ExtractAllFilesWithProgress(nil))
		data, err := os.ReadFile(filepath.Join(out, "a.bin"))
		assert.NoError(t, err)
		return data
	}

	first := read(filepath.Join(dir, "one"))
	second := read(filepath.Join(dir, "two"))
	assert.Equal(t, first, second)
}

func TestExtractRejectsImageKeyBeforeEntryKeys(t *testing.T) {
	dir := t.TempDir()
	tp := buildTestPKG(t, dir)

	// Swap the first two entry records so 0x20 precedes 0x10.
	buf, err := os.ReadFile(tp.path)
	assert.NoError(t, err)
	var rec [pkgEntrySize]byte
	copy(rec[:], buf[testTableOffset:])
	copy(buf[testTableOffset:], buf[testTableOffset+pkgEntrySize:testTableOffset+2*pkgEntrySize])
	copy(buf[testTableOffset+pkgEntrySize:], rec[:])
	assert.NoError(t, os.WriteFile(tp.path, buf, 0644))

	p := NewPKG()
	assert.NoError(t, p.Open(tp.path))
	err = p.Extract(filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestExtractMissingKeysWithImage(t *testing.T) {
	dir := t.TempDir()
	buf := make([]byte, 0x5000)
	be := binary.BigEndian
	be.PutUint32(buf[0x00:], pkgMagic)
	copy(buf[0x40:], testContentID)
	be.PutUint64(buf[0x430:], uint64(len(buf)))
	be.PutUint32(buf[0x43C:], 0x1000) // non-empty PFS image, no key entries
	path := filepath.Join(dir, "nokeys.pkg")
	assert.NoError(t, os.WriteFile(path, buf, 0644))

	p := NewPKG()
	assert.NoError(t, p.Open(path))
	err := p.Extract(filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrBadFormat)
}
