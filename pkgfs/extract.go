package pkgfs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

const xtsReadSize = 0x11000 // one 64 KiB block plus up to 0x1000 of alignment padding

// ExtractFiles materialises a single file-table entry with its own PKG
// handle. ExtractAllFilesWithProgress is the batch variant.
func (p *PKG) ExtractFiles(index int) error {
	file, err := openWithRetry(p.path)
	if err != nil {
		return fmt.Errorf("%w: open %v: %v", ErrIO, p.path, err)
	}
	defer file.Close()
	return p.extractFileTo(file, index)
}

// ExtractAllFilesWithProgress streams every PFS file to disk with a bounded
// worker pool. The file-table index range is split into contiguous shards and
// each worker owns a private PKG handle and scratch buffers. progress may be
// nil.
func (p *PKG) ExtractAllFilesWithProgress(progress func(done, total int)) error {
	numFiles := len(p.fsTable)
	if numFiles == 0 {
		return nil
	}

	maxWorkers := p.Workers
	if maxWorkers <= 0 {
		maxWorkers = 8
		if n := runtime.NumCPU(); n < maxWorkers {
			maxWorkers = n
		}
	}

	var filesDone int64
	var stop int32
	var progressMu sync.Mutex
	var fatalMu sync.Mutex
	var fatalErr error

	setFatal := func(err error) {
		atomic.StoreInt32(&stop, 1)
		fatalMu.Lock()
		if fatalErr == nil {
			fatalErr = err
		}
		fatalMu.Unlock()
	}

	worker := func(start, end int) {
		file, err := openWithRetry(p.path)
		if err != nil {
			setFatal(fmt.Errorf("%w: open %v: %v", ErrIO, p.path, err))
			return
		}
		defer file.Close()

		for i := start; i < end; i++ {
			if atomic.LoadInt32(&stop) != 0 {
				return
			}
			if err := p.extractFileTo(file, i); err != nil {
				if errors.Is(err, ErrCryptoFail) {
					// The key chain is compromised, stop everything.
					setFatal(err)
					return
				}
				zap.S().Errorf("skipping %v: %v", p.fsTable[i].Name, err)
			}
			done := atomic.AddInt64(&filesDone, 1)
			if progress != nil {
				progressMu.Lock()
				progress(int(done), numFiles)
				progressMu.Unlock()
			}
		}
	}

	var wg sync.WaitGroup
	batch := (numFiles + maxWorkers - 1) / maxWorkers
	for t := 0; t < maxWorkers; t++ {
		start := t * batch
		end := start + batch
		if end > numFiles {
			end = numFiles
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			worker(start, end)
		}(start, end)
	}
	wg.Wait()

	return fatalErr
}

// extractFileTo writes one file-table entry through the given PKG handle.
// Blocks are pulled via the streaming PFSC pass: each read is 0x1000-aligned
// for XTS and spans the stored sector plus alignment padding.
func (p *PKG) extractFileTo(file *os.File, index int) error {
	entry := p.fsTable[index]

	if entry.Type != PFSFile {
		return nil
	}

	if int(entry.Ino) >= len(p.inodes) || entry.Ino < 0 {
		return fmt.Errorf("%w: inode %d out of table (%d)", ErrBadFormat, entry.Ino, len(p.inodes))
	}
	node := p.inodes[entry.Ino]
	outPath := p.extractPaths[entry.Ino]

	if uint64(node.Loc)+uint64(node.Blocks) > uint64(len(p.sectorMap))-1 {
		return fmt.Errorf("%w: inode %d blocks exceed sector map", ErrBadFormat, entry.Ino)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("%w: create %v: %v", ErrIO, filepath.Dir(outPath), err)
	}
	out, err := createWithRetry(outPath)
	if err != nil {
		return fmt.Errorf("%w: create %v: %v", ErrIO, outPath, err)
	}
	defer out.Close()

	encrypted := make([]byte, xtsReadSize)
	decrypted := make([]byte, xtsReadSize)
	decompressed := make([]byte, pfsBlockSize)

	for j := uint32(0); j < node.Blocks; j++ {
		sectorOffset := p.sectorMap[node.Loc+j]
		sectorSize := p.sectorMap[node.Loc+j+1] - sectorOffset

		// Align the read down to an XTS sector boundary.
		mask := (p.pfscOffset + sectorOffset) &^ 0xFFF
		prefix := (p.pfscOffset + sectorOffset) - mask
		currentSector := mask / xtsSectorSize

		// The read may hit EOF inside the alignment padding, the stored
		// sector itself must be complete.
		n, err := file.ReadAt(encrypted, int64(p.header.PfsImageOffset+mask))
		if err != nil && err != io.EOF {
			return fmt.Errorf("%w: read block %d of %v: %v", ErrIO, j, entry.Name, err)
		}
		if uint64(n) < prefix+sectorSize {
			return fmt.Errorf("%w: short read on block %d of %v", ErrIO, j, entry.Name)
		}
		for i := n; i < len(encrypted); i++ {
			encrypted[i] = 0
		}
		if err := decryptPFS(p.dataKey, p.tweakKey, encrypted, decrypted, currentSector); err != nil {
			return err
		}

		if sectorSize > pfsBlockSize {
			return fmt.Errorf("%w: block %d of %v stored size 0x%x exceeds block size", ErrBadFormat, j, entry.Name, sectorSize)
		}
		stored := decrypted[prefix : prefix+sectorSize]
		if sectorSize == pfsBlockSize {
			copy(decompressed, stored)
		} else {
			if err := decompressPFSC(stored, decompressed); err != nil {
				return fmt.Errorf("block %d of %v: %w", j, entry.Name, err)
			}
		}

		if j < node.Blocks-1 {
			if _, err := out.Write(decompressed); err != nil {
				return fmt.Errorf("%w: write %v: %v", ErrIO, outPath, err)
			}
		} else {
			// Trim the zero padding of the final block to the inode size.
			tail := node.Size - int64(j)*pfsBlockSize
			if tail < 0 || tail > pfsBlockSize {
				return fmt.Errorf("%w: inode %d size 0x%x inconsistent with block count", ErrBadFormat, entry.Ino, node.Size)
			}
			if _, err := out.Write(decompressed[:tail]); err != nil {
				return fmt.Errorf("%w: write %v: %v", ErrIO, outPath, err)
			}
		}
	}
	return nil
}

func openWithRetry(path string) (*os.File, error) {
	var file *os.File
	var err error
	err = retry.Do(
		func() error {
			file, err = os.Open(path)
			return err
		},
		retry.Attempts(5),
	)
	return file, err
}

func createWithRetry(path string) (*os.File, error) {
	var file *os.File
	var err error
	err = retry.Do(
		func() error {
			file, err = os.Create(path)
			return err
		},
		retry.Attempts(5),
	)
	return file, err
}
