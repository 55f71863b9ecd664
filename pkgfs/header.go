package pkgfs

import (
	"encoding/binary"
	"fmt"
)

const pkgMagic = 0x7F434E54 // "\x7FCNT"

const pkgHeaderSize = 0x1000

// PKGHeader is the fixed 4 KiB header at the start of a PKG. All multi-byte
// fields are big-endian.
type PKGHeader struct {
	Magic               uint32
	PkgType             uint32
	PkgFileCount        uint32
	PkgTableEntryCount  uint32
	PkgScEntryCount     uint16
	PkgTableEntryCount2 uint16
	PkgTableEntryOffset uint32
	PkgScEntryDataSize  uint32
	PkgBodyOffset       uint64
	PkgBodySize         uint64
	PkgContentOffset    uint64
	PkgContentSize      uint64
	PkgContentID        [0x24]byte
	PkgDrmType          uint32
	PkgContentType      uint32
	PkgContentFlags     uint32
	PkgPromoteSize      uint32
	PkgVersionDate      uint32
	PkgVersionHash      uint32
	PkgIroTag           uint32
	PkgDrmTypeVersion   uint32

	DigestEntries1    [0x20]byte
	DigestEntries2    [0x20]byte
	DigestTableDigest [0x20]byte
	DigestBodyDigest  [0x20]byte

	PfsImageCount    uint32
	PfsImageFlags    uint64
	PfsImageOffset   uint64
	PfsImageSize     uint64
	MountImageOffset uint64
	MountImageSize   uint64
	PkgSize          uint64
	PfsSignedSize    uint32
	PfsCacheSize     uint32
	PfsImageDigest   [0x20]byte
	PfsSignedDigest  [0x20]byte
	PfsSplitSizeNth0 uint64
	PfsSplitSizeNth1 uint64
}

// PKGEntry is one 32-byte record of the PKG entry table (big-endian). The
// last 8 bytes of the record are reserved and kept zero.
type PKGEntry struct {
	ID             uint32
	FilenameOffset uint32
	Flags1         uint32
	Flags2         uint32
	Offset         uint32
	Size           uint32
}

const pkgEntrySize = 0x20

// entryBytes renders the entry record back in its on-disk big-endian form.
// The key chain hashes these 32 bytes together with dk3.
func (e *PKGEntry) entryBytes() [pkgEntrySize]byte {
	var b [pkgEntrySize]byte
	binary.BigEndian.PutUint32(b[0:4], e.ID)
	binary.BigEndian.PutUint32(b[4:8], e.FilenameOffset)
	binary.BigEndian.PutUint32(b[8:12], e.Flags1)
	binary.BigEndian.PutUint32(b[12:16], e.Flags2)
	binary.BigEndian.PutUint32(b[16:20], e.Offset)
	binary.BigEndian.PutUint32(b[20:24], e.Size)
	return b
}

func readPKGHeader(br *binaryReader) (PKGHeader, error) {
	var h PKGHeader
	if err := br.Seek(0); err != nil {
		return h, err
	}
	buf, err := br.ReadBytes(pkgHeaderSize)
	if err != nil {
		return h, fmt.Errorf("%w: PKG header", ErrIO)
	}
	be := binary.BigEndian

	h.Magic = be.Uint32(buf[0x00:])
	h.PkgType = be.Uint32(buf[0x04:])
	h.PkgFileCount = be.Uint32(buf[0x0C:])
	h.PkgTableEntryCount = be.Uint32(buf[0x10:])
	h.PkgScEntryCount = be.Uint16(buf[0x14:])
	h.PkgTableEntryCount2 = be.Uint16(buf[0x16:])
	h.PkgTableEntryOffset = be.Uint32(buf[0x18:])
	h.PkgScEntryDataSize = be.Uint32(buf[0x1C:])
	h.PkgBodyOffset = be.Uint64(buf[0x20:])
	h.PkgBodySize = be.Uint64(buf[0x28:])
	h.PkgContentOffset = be.Uint64(buf[0x30:])
	h.PkgContentSize = be.Uint64(buf[0x38:])
	copy(h.PkgContentID[:], buf[0x40:0x64])
	h.PkgDrmType = be.Uint32(buf[0x70:])
	h.PkgContentType = be.Uint32(buf[0x74:])
	h.PkgContentFlags = be.Uint32(buf[0x78:])
	h.PkgPromoteSize = be.Uint32(buf[0x7C:])
	h.PkgVersionDate = be.Uint32(buf[0x80:])
	h.PkgVersionHash = be.Uint32(buf[0x84:])
	h.PkgIroTag = be.Uint32(buf[0x98:])
	h.PkgDrmTypeVersion = be.Uint32(buf[0x9C:])

	copy(h.DigestEntries1[:], buf[0x100:0x120])
	copy(h.DigestEntries2[:], buf[0x120:0x140])
	copy(h.DigestTableDigest[:], buf[0x140:0x160])
	copy(h.DigestBodyDigest[:], buf[0x160:0x180])

	h.PfsImageCount = be.Uint32(buf[0x404:])
	h.PfsImageFlags = be.Uint64(buf[0x408:])
	h.PfsImageOffset = be.Uint64(buf[0x410:])
	h.PfsImageSize = be.Uint64(buf[0x418:])
	h.MountImageOffset = be.Uint64(buf[0x420:])
	h.MountImageSize = be.Uint64(buf[0x428:])
	h.PkgSize = be.Uint64(buf[0x430:])
	h.PfsSignedSize = be.Uint32(buf[0x438:])
	h.PfsCacheSize = be.Uint32(buf[0x43C:])
	copy(h.PfsImageDigest[:], buf[0x440:0x460])
	copy(h.PfsSignedDigest[:], buf[0x460:0x480])
	h.PfsSplitSizeNth0 = be.Uint64(buf[0x480:])
	h.PfsSplitSizeNth1 = be.Uint64(buf[0x488:])

	return h, nil
}

func readPKGEntry(br *binaryReader) (PKGEntry, error) {
	var e PKGEntry
	buf, err := br.ReadBytes(pkgEntrySize)
	if err != nil {
		return e, err
	}
	be := binary.BigEndian
	e.ID = be.Uint32(buf[0:])
	e.FilenameOffset = be.Uint32(buf[4:])
	e.Flags1 = be.Uint32(buf[8:])
	e.Flags2 = be.Uint32(buf[12:])
	e.Offset = be.Uint32(buf[16:])
	e.Size = be.Uint32(buf[20:])
	return e, nil
}

// PKG content flag names, display only.
var contentFlagNames = []struct {
	flag uint32
	name string
}{
	{0x00100000, "FIRST_PATCH"},
	{0x00200000, "PATCHGO"},
	{0x00400000, "REMASTER"},
	{0x01000000, "NON_GAME"},
	{0x02000000, "PS_CART"},
	{0x04000000, "DIRECT_DOWNLOAD"},
	{0x08000000, "UNKNOWN_0x8000000"},
	{0x40000000, "SUBSEQUENT_PATCH"},
	{0x41000000, "DELTA_PATCH"},
	{0x60000000, "CUMULATIVE_PATCH"},
}

func contentFlagsString(flags uint32) string {
	out := ""
	for _, f := range contentFlagNames {
		if flags&f.flag == f.flag {
			if out != "" {
				out += ", "
			}
			out += f.name
		}
	}
	return out
}

// Entry ids of the digest tables, the key-derivation chain (0x10, 0x20) and
// the bounds of the NPDRM range (0x400..0x403).
const (
	entryIDDigests        = 0x0001
	entryIDEntryKeys      = 0x0010
	entryIDImageKey       = 0x0020
	entryIDGeneralDigests = 0x0080

	entryIDLicenseDat = 0x0400
	entryIDNpbindDat  = 0x0403
)

var entryNames = map[uint32]string{
	0x0001: "digests",
	0x0010: "entry_keys",
	0x0020: "image_key",
	0x0080: "general_digests",
	0x0100: "metas",
	0x0200: "entry_names",
	0x0400: "license.dat",
	0x0401: "license.info",
	0x0402: "nptitle.dat",
	0x0403: "npbind.dat",
	0x0404: "selfinfo.dat",
	0x0406: "imageinfo.dat",
	0x0407: "target-deltainfo.dat",
	0x0408: "origin-deltainfo.dat",
	0x0409: "psreserved.dat",
	0x1000: "param.sfo",
	0x1001: "playgo-chunk.dat",
	0x1002: "playgo-chunk.sha",
	0x1003: "playgo-manifest.xml",
	0x1004: "pronunciation.xml",
	0x1005: "pronunciation.sig",
	0x1006: "pic1.png",
	0x1007: "pubtoolinfo.dat",
	0x1008: "app/playgo-chunk.dat",
	0x1009: "app/playgo-chunk.sha",
	0x100A: "app/playgo-manifest.xml",
	0x100B: "shareparam.json",
	0x100C: "shareoverlayimage.png",
	0x100D: "save_data.png",
	0x100E: "shareprivacyguardimage.png",
	0x1200: "icon0.png",
	0x1220: "pic0.png",
	0x1240: "snd0.at9",
	0x1260: "changeinfo/changeinfo.xml",
	0x1280: "icon0.dds",
	0x12A0: "pic0.dds",
	0x12C0: "pic1.dds",
}

// entryNameByID maps an entry table id to its canonical sce_sys filename.
// Returns "" for ids with no known name.
func entryNameByID(id uint32) string {
	if name, ok := entryNames[id]; ok {
		return name
	}
	switch {
	case id >= 0x1201 && id <= 0x121F:
		return fmt.Sprintf("icon0_%02d.png", id-0x1201)
	case id >= 0x1241 && id <= 0x125F:
		return fmt.Sprintf("pic1_%02d.png", id-0x1241)
	case id >= 0x1261 && id <= 0x127F:
		return fmt.Sprintf("changeinfo/changeinfo_%02d.xml", id-0x1261)
	case id >= 0x1281 && id <= 0x129F:
		return fmt.Sprintf("icon0_%02d.dds", id-0x1281)
	case id >= 0x12C1 && id <= 0x12DF:
		return fmt.Sprintf("pic1_%02d.dds", id-0x12C1)
	case id >= 0x1400 && id <= 0x1463:
		return fmt.Sprintf("trophy/trophy%02d.trp", id-0x1400)
	case id >= 0x1600 && id <= 0x1609:
		return fmt.Sprintf("keymap_rp/%03d.png", id-0x1600)
	case id >= 0x1610 && id <= 0x17F9:
		return fmt.Sprintf("keymap_rp/%02d/%03d.png", (id-0x1610)>>4, id&0xF)
	}
	return ""
}
