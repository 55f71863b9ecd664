package pkgfs

import "errors"

// Error kinds surfaced by the extraction pipeline. Wrap with fmt.Errorf("%w: ...")
// so callers can classify with errors.Is.
var (
	ErrBadFormat    = errors.New("bad format")
	ErrIO           = errors.New("io error")
	ErrCryptoFail   = errors.New("crypto failure")
	ErrCompressFail = errors.New("decompress failure")
)
