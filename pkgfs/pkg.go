package pkgfs

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// RootLayout selects where the PFS tree is rooted. LayoutAuto keeps the
// historical heuristic (parent-dir name and "-UPDATE" suffix); LayoutInPlace
// (updates, DLC) roots the tree at the output directory itself.
type RootLayout int

const (
	LayoutAuto RootLayout = iota
	LayoutInPlace
)

// FSEntry is one published dirent of the PFS tree.
type FSEntry struct {
	Name string
	Ino  int32
	Type int32
}

// DerivedKeys exposes the key chain for display. Hex-encoded.
type DerivedKeys struct {
	DK3      string
	IvKey    string
	ImgKey   string
	EkpfsKey string
	DataKey  string
	TweakKey string
}

// PKG drives the extraction of one PS4 package: header and entry table,
// key derivation, PFS decryption and the file tree walk.
type PKG struct {
	path        string
	extractPath string
	pkgSize     int64
	header      PKGHeader
	titleID     string
	flags       string
	sfo         []byte
	entries     []PKGEntry

	dk3      [32]byte
	ivKey    [32]byte
	imgKey   []byte
	ekpfsKey [32]byte
	dataKey  [16]byte
	tweakKey [16]byte

	ekpfsOverride []byte

	pfscOffset   uint64
	sectorMap    []uint64
	inodes       []Inode
	fsTable      []FSEntry
	extractPaths map[int32]string

	Layout  RootLayout
	Workers int
}

func NewPKG() *PKG {
	return &PKG{extractPaths: map[int32]string{}}
}

// SetEkpfsOverride pre-seeds the ekpfs key, bypassing the fakeKeyset RSA step
// for packages whose image key the embedded keyset cannot recover.
func (p *PKG) SetEkpfsOverride(key []byte) {
	p.ekpfsOverride = key
}

func (p *PKG) GetTitleID() string { return p.titleID }

func (p *PKG) GetContentID() string {
	return strings.TrimRight(string(p.header.PkgContentID[:]), "\x00")
}

func (p *PKG) GetPkgFlags() string { return p.flags }

func (p *PKG) GetPkgHeader() PKGHeader { return p.header }

func (p *PKG) GetPkgSize() int64 { return p.pkgSize }

func (p *PKG) GetSfo() []byte { return p.sfo }

func (p *PKG) GetNumberOfFiles() int { return len(p.fsTable) }

func (p *PKG) GetAllEntries() []FSEntry { return p.fsTable }

func (p *PKG) GetFileList() []string {
	var files []string
	for _, entry := range p.fsTable {
		if entry.Type == PFSFile {
			files = append(files, entry.Name)
		}
	}
	return files
}

func (p *PKG) GetDerivedKeys() DerivedKeys {
	return DerivedKeys{
		DK3:      hex.EncodeToString(p.dk3[:]),
		IvKey:    hex.EncodeToString(p.ivKey[:]),
		ImgKey:   hex.EncodeToString(p.imgKey),
		EkpfsKey: hex.EncodeToString(p.ekpfsKey[:]),
		DataKey:  hex.EncodeToString(p.dataKey[:]),
		TweakKey: hex.EncodeToString(p.tweakKey[:]),
	}
}

// Close zeroises the key material of this session.
func (p *PKG) Close() {
	for i := range p.dk3 {
		p.dk3[i] = 0
		p.ivKey[i] = 0
		p.ekpfsKey[i] = 0
	}
	for i := range p.dataKey {
		p.dataKey[i] = 0
		p.tweakKey[i] = 0
	}
	for i := range p.imgKey {
		p.imgKey[i] = 0
	}
}

// Open reads the header and the entry table without touching any key
// material. The raw param.sfo bytes are cached for callers.
func (p *PKG) Open(path string) error {
	p.path = path
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %v: %v", ErrIO, path, err)
	}
	defer file.Close()

	st, err := file.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %v: %v", ErrIO, path, err)
	}
	p.pkgSize = st.Size()

	br := newBinaryReader(file, p.pkgSize)
	p.header, err = readPKGHeader(br)
	if err != nil {
		return err
	}
	if p.header.Magic != pkgMagic {
		return fmt.Errorf("%w: bad PKG magic 0x%08x", ErrBadFormat, p.header.Magic)
	}

	p.flags = contentFlagsString(p.header.PkgContentFlags)
	// The 9-char title id lives at content-id byte 7.
	p.titleID = string(p.header.PkgContentID[7:16])

	if err := br.Seek(int64(p.header.PkgTableEntryOffset)); err != nil {
		return fmt.Errorf("%w: seek to PKG table entry offset", ErrIO)
	}
	p.entries = p.entries[:0]
	for i := uint32(0); i < p.header.PkgTableEntryCount; i++ {
		entry, err := readPKGEntry(br)
		if err != nil {
			return err
		}
		p.entries = append(p.entries, entry)

		if entryNameByID(entry.ID) == "param.sfo" {
			pos := br.Tell()
			if err := br.Seek(int64(entry.Offset)); err != nil {
				return fmt.Errorf("%w: seek to param.sfo offset", ErrIO)
			}
			p.sfo, err = br.ReadBytes(int(entry.Size))
			if err != nil {
				return err
			}
			if err := br.Seek(pos); err != nil {
				return err
			}
		}
	}
	zap.S().Debugf("opened %v: title=%v entries=%d", path, p.titleID, len(p.entries))
	return nil
}

// Extract runs the pre-extraction pipeline: it writes the sce_sys entries,
// derives the key chain while walking the entry table, decrypts the PFS head
// and walks the inode/dirent tree, publishing the inode → path map. File
// contents are then materialised by ExtractAllFilesWithProgress.
func (p *PKG) Extract(outDir string) error {
	p.extractPath = outDir

	file, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("%w: open %v: %v", ErrIO, p.path, err)
	}
	defer file.Close()

	st, err := file.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %v: %v", ErrIO, p.path, err)
	}
	p.pkgSize = st.Size()

	br := newBinaryReader(file, p.pkgSize)
	p.header, err = readPKGHeader(br)
	if err != nil {
		return err
	}
	if p.header.Magic != pkgMagic {
		return fmt.Errorf("%w: bad PKG magic 0x%08x", ErrBadFormat, p.header.Magic)
	}
	if p.header.PkgSize > uint64(p.pkgSize) {
		return fmt.Errorf("%w: PKG file size is different", ErrBadFormat)
	}
	if p.header.PkgContentOffset+p.header.PkgContentSize > p.header.PkgSize {
		return fmt.Errorf("%w: Content size is bigger than pkg size", ErrBadFormat)
	}

	if err := p.walkEntries(br); err != nil {
		return err
	}

	length := uint64(p.header.PfsCacheSize) * 2
	if length == 0 {
		// No PFS image, only sce_sys metadata.
		zap.S().Infof("pfs cache size is zero, nothing to extract beyond sce_sys")
		return nil
	}

	// The XTS seed sits at 0x370 inside the (still encrypted) PFS image.
	if err := br.Seek(int64(p.header.PfsImageOffset) + 0x370); err != nil {
		return fmt.Errorf("%w: seek to PFS image offset", ErrIO)
	}
	var seed [16]byte
	if err := br.ReadInto(seed[:]); err != nil {
		return err
	}
	p.tweakKey, p.dataKey = pfsGenCryptoKey(p.ekpfsKey, seed)

	if err := br.Seek(int64(p.header.PfsImageOffset)); err != nil {
		return fmt.Errorf("%w: seek to PFS image offset", ErrIO)
	}
	pfsEncrypted, err := br.ReadBytes(int(length))
	if err != nil {
		return err
	}
	pfsDecrypted := make([]byte, length)
	if err := decryptPFS(p.dataKey, p.tweakKey, pfsEncrypted, pfsDecrypted, 0); err != nil {
		return err
	}

	p.pfscOffset, err = findPFSCOffset(pfsDecrypted)
	if err != nil {
		return err
	}
	pfsc := pfsDecrypted[p.pfscOffset:]

	hdr, err := parsePFSCHdr(pfsc)
	if err != nil {
		return err
	}
	numBlocks := int(hdr.DataLength / hdr.BlockSz2)

	if hdr.BlockOffsets+uint64(numBlocks+1)*8 > uint64(len(pfsc)) {
		return fmt.Errorf("%w: sector map out of PFSC bounds", ErrBadFormat)
	}
	p.sectorMap = make([]uint64, numBlocks+1)
	for i := 0; i <= numBlocks; i++ {
		off, err := parseSectorMapEntry(pfsc, hdr.BlockOffsets, i)
		if err != nil {
			return err
		}
		p.sectorMap[i] = off
		if i > 0 && p.sectorMap[i] < p.sectorMap[i-1] {
			return fmt.Errorf("%w: sector map not monotonic at %d", ErrBadFormat, i)
		}
	}
	if p.sectorMap[numBlocks] > hdr.DataLength {
		return fmt.Errorf("%w: sector map exceeds PFSC data length", ErrBadFormat)
	}

	return p.walkPFS(pfsc, numBlocks)
}

// walkEntries revisits the entry table, writes every entry under sce_sys/ and
// performs the key derivation. Keys must be seen in file order: entry 0x10
// yields dk3 before entry 0x20 can recover ekpfs, and both precede the NPDRM
// entries.
func (p *PKG) walkEntries(br *binaryReader) error {
	if err := br.Seek(int64(p.header.PkgTableEntryOffset)); err != nil {
		return fmt.Errorf("%w: seek to PKG table entry offset", ErrIO)
	}

	seenEntryKeys := false
	seenImageKey := false

	sceSys := filepath.Join(p.extractPath, "sce_sys")

	for i := uint32(0); i < p.header.PkgTableEntryCount; i++ {
		entry, err := readPKGEntry(br)
		if err != nil {
			return err
		}
		pos := br.Tell()

		if uint64(entry.Offset)+uint64(entry.Size) > p.header.PkgSize {
			return fmt.Errorf("%w: entry 0x%x exceeds pkg size", ErrBadFormat, entry.ID)
		}

		name := entryNameByID(entry.ID)
		if name == "" {
			name = strconv.FormatUint(uint64(entry.ID), 10)
		}

		outPath := filepath.Join(sceSys, name)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("%w: create %v: %v", ErrIO, filepath.Dir(outPath), err)
		}

		if err := br.Seek(int64(entry.Offset)); err != nil {
			return fmt.Errorf("%w: seek to PKG entry offset", ErrIO)
		}
		data, err := br.ReadBytes(int(entry.Size))
		if err != nil {
			return err
		}

		switch entry.ID {
		case entryIDEntryKeys:
			// 32-byte seed digest, seven digests, seven encrypted keys.
			// The 4th key slot RSA-decrypts to dk3.
			if len(data) < 32+7*32+7*256 {
				return fmt.Errorf("%w: entry_keys too short", ErrBadFormat)
			}
			key3 := data[32+7*32+3*256 : 32+7*32+4*256]
			p.dk3, err = rsa2048Decrypt(key3, true)
			if err != nil {
				return err
			}
			seenEntryKeys = true
		case entryIDImageKey:
			if !seenEntryKeys {
				return fmt.Errorf("%w: image_key entry precedes entry_keys", ErrBadFormat)
			}
			if len(data) < 256 {
				return fmt.Errorf("%w: image_key too short", ErrBadFormat)
			}
			p.ivKey = ivKeyHash256(entry.entryBytes(), p.dk3)
			p.imgKey, err = aesCbcDecrypt(p.ivKey, data[:256])
			if err != nil {
				return err
			}
			if p.ekpfsOverride != nil {
				copy(p.ekpfsKey[:], p.ekpfsOverride)
			} else {
				p.ekpfsKey, err = rsa2048Decrypt(p.imgKey, false)
				if err != nil {
					return err
				}
			}
			seenImageKey = true
		}

		if entry.ID >= entryIDLicenseDat && entry.ID <= entryIDNpbindDat {
			// NPDRM entries are written decrypted.
			if !seenEntryKeys {
				return fmt.Errorf("%w: NPDRM entry 0x%x precedes entry_keys", ErrBadFormat, entry.ID)
			}
			ivKey := ivKeyHash256(entry.entryBytes(), p.dk3)
			dec, err := aesCbcDecrypt(ivKey, data)
			if err != nil {
				return err
			}
			data = dec
		}

		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("%w: write %v: %v", ErrIO, outPath, err)
		}
		zap.S().Debugf("entry %d: id=0x%x name=%v size=0x%x", i, entry.ID, name, entry.Size)

		if err := br.Seek(pos); err != nil {
			return err
		}
	}

	if uint64(p.header.PfsCacheSize)*2 != 0 && (!seenEntryKeys || !seenImageKey) {
		return fmt.Errorf("%w: key entries missing while PFS image is present", ErrBadFormat)
	}
	return nil
}

func parseSectorMapEntry(pfsc []byte, blockOffsets uint64, i int) (uint64, error) {
	off := blockOffsets + uint64(i)*8
	if off+8 > uint64(len(pfsc)) {
		return 0, fmt.Errorf("%w: sector map entry %d out of bounds", ErrBadFormat, i)
	}
	return leUint64(pfsc[off:]), nil
}

// walkPFS reads logical blocks in order: superblock, inode table, then the
// uroot and directory blocks that publish the inode → path map.
func (p *PKG) walkPFS(pfsc []byte, numBlocks int) error {
	var ndinode uint32
	ndinodeCounter := int32(0)
	dinodeReached := false
	currentDir := ""

	decompressed := make([]byte, pfsBlockSize)

	zap.S().Debugf("walking PFS, %d logical blocks", numBlocks)
	for i := 0; i < numBlocks; i++ {
		sectorOffset := p.sectorMap[i]
		sectorSize := p.sectorMap[i+1] - sectorOffset

		if sectorOffset+sectorSize > uint64(len(pfsc)) {
			return fmt.Errorf("%w: block %d out of PFSC bounds", ErrBadFormat, i)
		}
		if sectorSize > pfsBlockSize {
			return fmt.Errorf("%w: block %d stored size 0x%x exceeds block size", ErrBadFormat, i, sectorSize)
		}
		stored := pfsc[sectorOffset : sectorOffset+sectorSize]

		if sectorSize == pfsBlockSize {
			copy(decompressed, stored)
		} else {
			if err := decompressPFSC(stored, decompressed); err != nil {
				return err
			}
		}

		if i == 0 {
			// Superblock: total inode count at 0x30.
			ndinode = leUint32(decompressed[0x30:])
			zap.S().Debugf("superblock: ndinode=%d", ndinode)
		}

		occupiedBlocks := int(ndinode) * inodeSize / pfsBlockSize
		if int(ndinode)*inodeSize%pfsBlockSize != 0 {
			occupiedBlocks++
		}

		if i >= 1 && i <= occupiedBlocks {
			for off := 0; off+inodeSize <= pfsBlockSize; off += inodeSize {
				node := parseInode(decompressed[off : off+inodeSize])
				if node.Mode == 0 {
					break
				}
				p.inodes = append(p.inodes, node)
			}
		}

		// Root/uroot handling. Some packages carry more than one uroot block.
		urootReached := string(decompressed[0x10:0x1F]) == "flat_path_table"
		if urootReached {
			stride := 0
			for off := 0; off < pfsBlockSize; off += stride {
				dirent, err := parseDirent(decompressed[off:])
				if err != nil {
					return err
				}
				if dirent.Ino != 0 {
					ndinodeCounter++
					stride = int(dirent.EntSize)
					continue
				}
				p.extractPaths[ndinodeCounter] = p.rootPath()
				break
			}
		}

		if decompressed[0x10] == '.' && string(decompressed[0x28:0x2A]) == ".." {
			dinodeReached = true
		}

		endReached := false
		if dinodeReached {
			for off := 0; off < pfsBlockSize; {
				dirent, err := parseDirent(decompressed[off:])
				if err != nil {
					return err
				}
				if dirent.Ino == 0 {
					break
				}
				off += int(dirent.EntSize)

				p.fsTable = append(p.fsTable, FSEntry{Name: dirent.Name, Ino: dirent.Ino, Type: dirent.Type})

				if dirent.Type == PFSCurrentDir {
					currentDir = p.extractPaths[dirent.Ino]
				}
				p.extractPaths[dirent.Ino] = joinUnder(p.extractPath, currentDir, dirent.Name)

				if dirent.Type == PFSFile || dirent.Type == PFSDir {
					if dirent.Type == PFSDir {
						if err := os.MkdirAll(p.extractPaths[dirent.Ino], 0755); err != nil {
							return fmt.Errorf("%w: create %v: %v", ErrIO, p.extractPaths[dirent.Ino], err)
						}
					}
					ndinodeCounter++
					// One inode belongs to the image root itself.
					if ndinodeCounter+1 == int32(ndinode) {
						endReached = true
					}
				}
			}
		}
		if endReached {
			break
		}
	}
	zap.S().Debugf("PFS walk done: %d inodes, %d dirents", len(p.inodes), len(p.fsTable))
	return nil
}

// rootPath decides where the PFS tree is rooted for this package.
func (p *PKG) rootPath() string {
	if p.Layout == LayoutInPlace {
		return p.extractPath
	}
	parent := filepath.Dir(p.extractPath)
	if filepath.Base(parent) != p.titleID && !strings.HasSuffix(p.extractPath, "-UPDATE") {
		return filepath.Join(parent, p.titleID)
	}
	// Updates and DLC keep the caller-supplied directory.
	return p.extractPath
}

// joinUnder mirrors the path composition of the dirent walk: an absolute
// current dir overrides the extraction root.
func joinUnder(extractPath, currentDir, name string) string {
	if filepath.IsAbs(currentDir) {
		return filepath.Join(currentDir, name)
	}
	return filepath.Join(extractPath, currentDir, name)
}
