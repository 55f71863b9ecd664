package pkgfs

import (
	"encoding/binary"
	"fmt"
)

// PFS constants. The PFSC container splits the filesystem image into 64 KiB
// logical blocks, each stored raw or zlib-deflated, indexed by a sector map.
const (
	pfscMagic        = 0x43534650 // "PFSC"
	pfsBlockSize     = 0x10000
	pfscScanStart    = 0x20000
	inodeSize        = 0xA8
	direntHeaderSize = 0x10
	direntMinSize    = 0x18
)

// Dirent type values.
const (
	PFSCurrentDir = 1
	PFSParentDir  = 2
	PFSFile       = 3
	PFSDir        = 4
)

func leUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func leUint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// PFSCHdr sits at pfsc_offset inside the decrypted PFS head. Little-endian.
type PFSCHdr struct {
	Magic        uint32
	Unk04        uint32
	Unk08        uint32
	BlockSz      uint32
	BlockSz2     uint64
	BlockOffsets uint64
	DataStart    uint64
	DataLength   uint64
}

const pfscHdrSize = 0x30

func parsePFSCHdr(buf []byte) (PFSCHdr, error) {
	var h PFSCHdr
	if len(buf) < pfscHdrSize {
		return h, fmt.Errorf("%w: PFSC header truncated", ErrBadFormat)
	}
	le := binary.LittleEndian
	h.Magic = le.Uint32(buf[0x00:])
	h.Unk04 = le.Uint32(buf[0x04:])
	h.Unk08 = le.Uint32(buf[0x08:])
	h.BlockSz = le.Uint32(buf[0x0C:])
	h.BlockSz2 = le.Uint64(buf[0x10:])
	h.BlockOffsets = le.Uint64(buf[0x18:])
	h.DataStart = le.Uint64(buf[0x20:])
	h.DataLength = le.Uint64(buf[0x28:])
	if h.Magic != pfscMagic {
		return h, fmt.Errorf("%w: PFSC magic 0x%08x", ErrBadFormat, h.Magic)
	}
	if h.BlockSz2 == 0 {
		return h, fmt.Errorf("%w: PFSC block size is zero", ErrBadFormat)
	}
	return h, nil
}

// findPFSCOffset scans the decrypted PFS head for the PFSC magic at stride
// 0x10000 starting from 0x20000.
func findPFSCOffset(pfsHead []byte) (uint64, error) {
	for i := pfscScanStart; i+4 <= len(pfsHead); i += pfsBlockSize {
		if binary.LittleEndian.Uint32(pfsHead[i:]) == pfscMagic {
			return uint64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: PFSC magic not found in PFS image", ErrBadFormat)
}

// Inode is one 0xA8-byte record of the PFS inode table. Little-endian.
// Mode == 0 terminates the table within a block.
type Inode struct {
	Mode           uint16
	Nlink          uint16
	Flags          uint32
	Size           int64
	SizeCompressed int64
	Time1Sec       int64
	Time2Sec       int64
	Time3Sec       int64
	Time4Sec       int64
	Time1Nsec      uint32
	Time2Nsec      uint32
	Time3Nsec      uint32
	Time4Nsec      uint32
	UID            uint32
	GID            uint32
	Unk1           uint64
	Unk2           uint64
	Blocks         uint32
	Loc            uint32
}

func parseInode(buf []byte) Inode {
	le := binary.LittleEndian
	return Inode{
		Mode:           le.Uint16(buf[0x00:]),
		Nlink:          le.Uint16(buf[0x02:]),
		Flags:          le.Uint32(buf[0x04:]),
		Size:           int64(le.Uint64(buf[0x08:])),
		SizeCompressed: int64(le.Uint64(buf[0x10:])),
		Time1Sec:       int64(le.Uint64(buf[0x18:])),
		Time2Sec:       int64(le.Uint64(buf[0x20:])),
		Time3Sec:       int64(le.Uint64(buf[0x28:])),
		Time4Sec:       int64(le.Uint64(buf[0x30:])),
		Time1Nsec:      le.Uint32(buf[0x38:]),
		Time2Nsec:      le.Uint32(buf[0x3C:]),
		Time3Nsec:      le.Uint32(buf[0x40:]),
		Time4Nsec:      le.Uint32(buf[0x44:]),
		UID:            le.Uint32(buf[0x48:]),
		GID:            le.Uint32(buf[0x4C:]),
		Unk1:           le.Uint64(buf[0x50:]),
		Unk2:           le.Uint64(buf[0x58:]),
		Blocks:         le.Uint32(buf[0x60:]),
		Loc:            le.Uint32(buf[0x64:]),
	}
}

// Dirent is a variable-size directory record. Little-endian. ino == 0
// terminates a dirent block; EntSize is the stride to the next record.
type Dirent struct {
	Ino     int32
	Type    int32
	Namelen int32
	EntSize int32
	Name    string
}

func parseDirent(buf []byte) (Dirent, error) {
	var d Dirent
	if len(buf) < direntHeaderSize {
		return d, fmt.Errorf("%w: dirent truncated", ErrBadFormat)
	}
	le := binary.LittleEndian
	d.Ino = int32(le.Uint32(buf[0x00:]))
	d.Type = int32(le.Uint32(buf[0x04:]))
	d.Namelen = int32(le.Uint32(buf[0x08:]))
	d.EntSize = int32(le.Uint32(buf[0x0C:]))
	if d.Ino == 0 {
		return d, nil
	}
	if d.EntSize < direntMinSize {
		return d, fmt.Errorf("%w: dirent stride 0x%x below minimum", ErrBadFormat, d.EntSize)
	}
	if d.Namelen < 0 || direntHeaderSize+int(d.Namelen) > len(buf) {
		return d, fmt.Errorf("%w: dirent name length 0x%x out of block", ErrBadFormat, d.Namelen)
	}
	d.Name = string(buf[direntHeaderSize : direntHeaderSize+int(d.Namelen)])
	return d, nil
}
