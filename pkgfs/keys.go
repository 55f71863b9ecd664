package pkgfs

import (
	"crypto/rsa"
	"math/big"
)

// The two RSA-2048 keysets used by the PKG key chain. pkgDerivedKey3 recovers
// dk3 from entry 0x10, fakeKeyset recovers ekpfs from the decrypted image key.
// Component layout is PKCS#1: modulus, public exponent, private exponent,
// the two primes and the CRT values. Byte-for-byte constants.

var pkgDerivedKey3N = []byte{
	0x92, 0x6a, 0xef, 0x43, 0xc3, 0x21, 0x2c, 0x1e, 0x20, 0xd9, 0x95, 0xc7,
	0x54, 0x69, 0x8f, 0xab, 0x4f, 0x7e, 0x6b, 0xf8, 0x6c, 0xe3, 0x0e, 0xc1,
	0xb0, 0xb8, 0xa6, 0x39, 0x7f, 0x56, 0xc4, 0x30, 0x04, 0xce, 0x05, 0x0e,
	0x28, 0x45, 0x40, 0x13, 0x89, 0x2c, 0x36, 0xaa, 0x1b, 0x83, 0xa8, 0x5e,
	0xc4, 0xc6, 0x45, 0x9d, 0x91, 0xef, 0x81, 0x8a, 0x61, 0x2f, 0x5f, 0xbe,
	0x1d, 0x24, 0x79, 0xc6, 0x13, 0xb1, 0x7e, 0xb2, 0x89, 0x6d, 0xfd, 0x46,
	0x1f, 0x3f, 0x67, 0xba, 0x44, 0x65, 0xfa, 0x50, 0x25, 0xfd, 0x74, 0xd9,
	0x65, 0x16, 0xf4, 0x66, 0x99, 0xd3, 0xa0, 0x0f, 0x24, 0xeb, 0x86, 0xc9,
	0x51, 0xa5, 0xaf, 0x60, 0x3c, 0x7e, 0x03, 0x93, 0x11, 0x55, 0x7b, 0x97,
	0x6f, 0xce, 0x58, 0xde, 0x51, 0x74, 0x31, 0x8e, 0x51, 0x02, 0xab, 0x0f,
	0xf1, 0xc0, 0x85, 0xad, 0x1e, 0xb3, 0x07, 0xce, 0x90, 0x0f, 0x05, 0x4f,
	0x5f, 0xde, 0x7d, 0xa8, 0xb7, 0x2d, 0x5e, 0x0b, 0x2e, 0xcc, 0xa8, 0x8a,
	0x68, 0xd4, 0xd8, 0x76, 0x5c, 0xd2, 0x1e, 0x57, 0xbf, 0xf8, 0x50, 0x50,
	0xfe, 0xad, 0x37, 0xb9, 0x1d, 0x2d, 0x34, 0x7c, 0x8a, 0x77, 0xd5, 0xec,
	0x9a, 0x20, 0x72, 0x43, 0x00, 0x6c, 0x6f, 0x35, 0x79, 0xcb, 0xba, 0xc0,
	0x6b, 0xe8, 0xac, 0xfd, 0xf7, 0x4d, 0x83, 0x8c, 0xfb, 0xdc, 0xbb, 0x11,
	0xa2, 0x2b, 0x57, 0xdf, 0xff, 0x77, 0x04, 0x19, 0x1e, 0x60, 0x17, 0x73,
	0x8a, 0x7c, 0xc5, 0x4a, 0x1f, 0x2f, 0x36, 0x41, 0x3f, 0x2c, 0x7c, 0x97,
	0x84, 0x21, 0x21, 0xd4, 0x37, 0x6a, 0x11, 0xb2, 0x77, 0xea, 0x1c, 0x4f,
	0xa6, 0x84, 0xf7, 0x63, 0xf7, 0xd8, 0xf0, 0x84, 0xfb, 0x16, 0x3c, 0x15,
	0xaf, 0x3b, 0xdf, 0x01, 0xb5, 0x70, 0x2c, 0xf1, 0x27, 0xf1, 0x68, 0x62,
	0xf5, 0xe2, 0x77, 0xbf,
}

var pkgDerivedKey3E = []byte{
	0x01, 0x00, 0x01,
}

var pkgDerivedKey3D = []byte{
	0x37, 0xef, 0x8c, 0x5a, 0xb9, 0xd8, 0x19, 0x6f, 0xa5, 0x23, 0x1a, 0xda,
	0x5c, 0xc0, 0x3b, 0x37, 0xba, 0x15, 0xd5, 0x0f, 0xc2, 0x21, 0x78, 0x48,
	0xbc, 0xc7, 0xbe, 0x11, 0x27, 0x39, 0xb1, 0x97, 0x9a, 0xae, 0x4e, 0x36,
	0x1b, 0x62, 0x61, 0x59, 0x55, 0x45, 0x43, 0xd8, 0xf6, 0xcb, 0xf4, 0x6d,
	0xc8, 0x04, 0xeb, 0x21, 0x88, 0x58, 0x14, 0x88, 0x16, 0x1a, 0xb0, 0x1c,
	0x04, 0x2c, 0x24, 0x2d, 0x6c, 0xe6, 0x99, 0x3d, 0x81, 0xcd, 0x38, 0x3e,
	0x2a, 0xbf, 0xe1, 0x53, 0xc2, 0xbf, 0xa6, 0xc2, 0x29, 0xd1, 0x4b, 0x6b,
	0xa5, 0xf8, 0x00, 0x04, 0x96, 0x6d, 0xc7, 0xaf, 0x21, 0x6e, 0xad, 0x3e,
	0x89, 0xe7, 0x9f, 0x39, 0x47, 0xc2, 0xe8, 0x80, 0xad, 0xd5, 0x97, 0x72,
	0xc2, 0x2e, 0xf5, 0xba, 0x71, 0x29, 0xcf, 0xa8, 0xcc, 0x00, 0x15, 0xf3,
	0xf0, 0x6a, 0x99, 0x67, 0x0a, 0xdc, 0x60, 0x75, 0x8c, 0x6a, 0x5b, 0x6c,
	0x09, 0x99, 0x04, 0xa9, 0xb7, 0x81, 0x30, 0xdd, 0x32, 0xda, 0x42, 0x36,
	0xb6, 0x8f, 0x59, 0x73, 0x02, 0x41, 0x08, 0x67, 0x2d, 0x20, 0xbc, 0xff,
	0xd3, 0x56, 0xa5, 0xb6, 0x21, 0x8a, 0x58, 0xb8, 0xb2, 0x42, 0x5a, 0x23,
	0xc8, 0x2d, 0x3d, 0xec, 0x88, 0xca, 0x1b, 0x1e, 0xe7, 0x32, 0x2a, 0xc0,
	0x45, 0xe6, 0x40, 0xae, 0x7b, 0x2e, 0xe2, 0xde, 0x1e, 0x1a, 0xb3, 0x76,
	0xc5, 0xa3, 0x0f, 0xc9, 0x0d, 0x53, 0xbf, 0x98, 0x9e, 0x43, 0xa9, 0x96,
	0x34, 0x94, 0x9c, 0xb9, 0x6c, 0x80, 0x39, 0x64, 0x8b, 0xb2, 0xd4, 0x90,
	0xbf, 0xf5, 0x9d, 0xe2, 0xa7, 0xdb, 0x33, 0xc7, 0xd1, 0xd7, 0x76, 0x74,
	0xc8, 0x92, 0x90, 0xf5, 0xb1, 0xc5, 0x59, 0x80, 0x6f, 0x7c, 0x11, 0xa9,
	0xe6, 0xbd, 0xef, 0xb4, 0x11, 0x2a, 0x8d, 0xbd, 0x69, 0x60, 0x40, 0x6e,
	0xa4, 0xd6, 0x4a, 0xa1,
}

var pkgDerivedKey3P = []byte{
	0xf5, 0x85, 0xc3, 0x0c, 0xa9, 0x93, 0xc0, 0x10, 0xef, 0xd2, 0xd3, 0x3b,
	0x42, 0x45, 0x84, 0x08, 0x9a, 0x4a, 0x20, 0xbd, 0x63, 0xe5, 0x14, 0x8d,
	0x2e, 0x53, 0x80, 0xc1, 0x91, 0x41, 0x52, 0x3c, 0xbd, 0xd2, 0xde, 0xfc,
	0xd2, 0x85, 0x4f, 0x39, 0xf9, 0x17, 0x41, 0x00, 0x34, 0xf4, 0x22, 0xcb,
	0xf7, 0xaa, 0x4e, 0x26, 0x70, 0x35, 0xd3, 0xc1, 0xe1, 0x75, 0x34, 0xc6,
	0xe5, 0x0a, 0x5b, 0xd0, 0xec, 0x5f, 0x8c, 0x9e, 0xfd, 0x4d, 0xf4, 0xb3,
	0x3f, 0xc9, 0xf9, 0x33, 0xd0, 0x74, 0x93, 0xaa, 0xc4, 0xee, 0x28, 0x46,
	0xed, 0x18, 0x4b, 0x28, 0xa2, 0x00, 0xc7, 0x98, 0xb7, 0xcc, 0x07, 0x56,
	0xb9, 0x6f, 0xae, 0xec, 0x84, 0x71, 0x6f, 0x8f, 0x26, 0x2e, 0xa5, 0x73,
	0x3a, 0x43, 0x7f, 0x02, 0x5d, 0x0c, 0x13, 0x77, 0x89, 0xfd, 0xc4, 0x05,
	0x01, 0xea, 0x11, 0xfb, 0xbf, 0xc9, 0xbf, 0xf1,
}

var pkgDerivedKey3Q = []byte{
	0x98, 0xaa, 0x7d, 0xc6, 0x87, 0xe6, 0xb2, 0xa5, 0x0f, 0x22, 0x18, 0xe1,
	0xfb, 0xe4, 0x25, 0xb6, 0xc0, 0xe4, 0x1a, 0x75, 0xde, 0x9d, 0xee, 0x94,
	0xad, 0xae, 0x66, 0x81, 0x14, 0x17, 0x9a, 0x24, 0x1b, 0xdd, 0x25, 0xf3,
	0xec, 0xa2, 0xb7, 0x8d, 0x02, 0x2e, 0x9f, 0xe8, 0x0f, 0xf0, 0x76, 0x48,
	0x6a, 0xdb, 0xa9, 0x16, 0x5a, 0x11, 0x9b, 0x50, 0xcd, 0x63, 0x45, 0xfa,
	0xf8, 0xf2, 0x51, 0xa8, 0xba, 0x07, 0xe6, 0xd1, 0xab, 0x30, 0x90, 0xe4,
	0x62, 0x18, 0x84, 0x75, 0x43, 0x2b, 0x77, 0x6d, 0x61, 0x9e, 0x9f, 0x9a,
	0x4c, 0x47, 0x0c, 0x83, 0xf3, 0x8e, 0x57, 0xcb, 0xce, 0x00, 0xac, 0x59,
	0xc8, 0xe4, 0xfc, 0xe1, 0x68, 0xf0, 0xf7, 0x10, 0xa3, 0x21, 0xa2, 0x96,
	0x10, 0x29, 0xba, 0xf0, 0x53, 0xd0, 0x69, 0xb7, 0xe8, 0x29, 0x33, 0x65,
	0x48, 0x07, 0xa0, 0x32, 0x75, 0x5e, 0x62, 0xaf,
}

var pkgDerivedKey3Dp = []byte{
	0x3c, 0x1b, 0x1f, 0x00, 0xfe, 0x92, 0xb9, 0x36, 0x6c, 0x3f, 0xc4, 0x8e,
	0x81, 0x4e, 0xdb, 0x5f, 0xef, 0xc5, 0xad, 0xf6, 0x2f, 0x7a, 0x69, 0x69,
	0x96, 0xa9, 0xc2, 0x9f, 0xa0, 0x9b, 0xc9, 0x32, 0x2d, 0x96, 0x6e, 0x18,
	0x9e, 0xc1, 0x1c, 0x00, 0x29, 0x46, 0xd4, 0x16, 0xe4, 0xdf, 0xcf, 0x94,
	0xf7, 0x70, 0xad, 0xe9, 0x23, 0x17, 0x4a, 0x5b, 0xf0, 0x81, 0xed, 0x05,
	0xb4, 0x14, 0xb1, 0x1d, 0x98, 0x80, 0x5b, 0xc0, 0xa0, 0x6a, 0x71, 0x39,
	0x60, 0xa8, 0x65, 0x65, 0x95, 0xe6, 0xb4, 0x2f, 0xde, 0x3e, 0x1f, 0x86,
	0x1d, 0x8d, 0x10, 0xf9, 0x45, 0x8f, 0xc3, 0x4d, 0x53, 0xd1, 0x93, 0x0a,
	0x5c, 0x23, 0x47, 0x43, 0x87, 0xb8, 0xed, 0x82, 0xb1, 0xea, 0x41, 0x7e,
	0xd0, 0x08, 0xae, 0x13, 0x3a, 0x0c, 0x36, 0xc7, 0xd0, 0xf4, 0x5b, 0x04,
	0x8e, 0xcf, 0x6a, 0xcf, 0xa2, 0xc8, 0x15, 0x41,
}

var pkgDerivedKey3Dq = []byte{
	0x4f, 0x5d, 0x62, 0xa1, 0x91, 0x08, 0xf7, 0x9a, 0x23, 0x71, 0xe0, 0x69,
	0xaa, 0xdf, 0x82, 0x53, 0xad, 0x97, 0x67, 0xc2, 0x1b, 0x07, 0x13, 0x7e,
	0xab, 0x83, 0xdc, 0xba, 0x01, 0xcd, 0xfb, 0x4e, 0x06, 0x46, 0x43, 0x72,
	0xb9, 0x74, 0x25, 0xe3, 0xe2, 0x5c, 0x86, 0xb8, 0xc7, 0x80, 0x84, 0x9d,
	0x45, 0x20, 0x08, 0x99, 0x1c, 0x1d, 0xc7, 0x16, 0x8c, 0x8f, 0xad, 0x53,
	0xb9, 0x93, 0x8f, 0xac, 0x1d, 0x79, 0xfa, 0x1e, 0xc9, 0xd6, 0x27, 0x9c,
	0xf2, 0xfa, 0x37, 0xf2, 0x16, 0x07, 0x44, 0xc0, 0xd2, 0x5c, 0xfa, 0x2f,
	0xe6, 0xb3, 0x90, 0xe8, 0x0f, 0xf7, 0xd1, 0xe0, 0x9b, 0xa9, 0x71, 0xf0,
	0x03, 0x26, 0x37, 0xe8, 0x9e, 0xfb, 0x96, 0x15, 0x4a, 0x19, 0x34, 0x42,
	0xbb, 0x08, 0x56, 0xac, 0x95, 0x85, 0xe5, 0x4f, 0xbc, 0x1b, 0x9f, 0x22,
	0x69, 0xfd, 0xbc, 0xe4, 0x3e, 0x6b, 0xe0, 0xf5,
}

var pkgDerivedKey3Qinv = []byte{
	0x49, 0x0f, 0x4a, 0xc4, 0xbf, 0x4e, 0x0f, 0xd5, 0xb0, 0xee, 0x4b, 0x49,
	0xc3, 0x27, 0x87, 0xf1, 0x23, 0x8c, 0xf6, 0xdf, 0xe2, 0x4d, 0x4b, 0x6b,
	0x2a, 0x30, 0x7c, 0x2e, 0x34, 0x52, 0x90, 0x9d, 0x6c, 0x83, 0xbc, 0x10,
	0xf8, 0x3b, 0x42, 0xa9, 0xba, 0x53, 0x8f, 0xf0, 0xe7, 0x8d, 0x13, 0x66,
	0x52, 0x12, 0x7f, 0x76, 0x9c, 0x41, 0xc7, 0xe0, 0x2e, 0x4a, 0x7b, 0x7b,
	0xa3, 0x0e, 0x82, 0x64, 0xfe, 0x9f, 0x5b, 0xef, 0x58, 0xf1, 0x18, 0x20,
	0xa9, 0x1a, 0x2a, 0xaa, 0x05, 0x6f, 0x09, 0x3b, 0x59, 0x04, 0x9d, 0x5a,
	0x46, 0xf5, 0x9a, 0x49, 0x12, 0xf4, 0x82, 0xe3, 0xb3, 0xf6, 0xa6, 0x2a,
	0x1e, 0xa5, 0x6d, 0x60, 0xf1, 0x02, 0x50, 0x5e, 0x2d, 0x8a, 0xba, 0xc6,
	0xad, 0x0b, 0x8e, 0x13, 0x40, 0x49, 0x7f, 0x13, 0xda, 0x11, 0xf5, 0x76,
	0x63, 0x2f, 0x67, 0x10, 0xf0, 0x71, 0x30, 0xa7,
}

var fakeKeysetN = []byte{
	0x92, 0x03, 0xaf, 0x46, 0x3e, 0x67, 0x37, 0xeb, 0x24, 0x8f, 0x0a, 0x95,
	0x82, 0xa4, 0xec, 0xc4, 0x47, 0xe6, 0x06, 0xb5, 0x67, 0x16, 0xd6, 0xbc,
	0x24, 0x05, 0x2e, 0x48, 0x0b, 0x63, 0x4e, 0x9a, 0x19, 0x4c, 0xf8, 0x6f,
	0x33, 0x0f, 0x47, 0x92, 0x6a, 0x80, 0x54, 0xcd, 0x6d, 0x84, 0xfa, 0x3f,
	0x0e, 0x63, 0xb1, 0xb6, 0x51, 0x0a, 0xef, 0xe7, 0x5e, 0xcc, 0x58, 0x97,
	0x34, 0x81, 0x37, 0xbe, 0x45, 0xc5, 0xde, 0xe7, 0x96, 0x11, 0x9c, 0x6a,
	0xa9, 0x5d, 0x0e, 0x37, 0x80, 0x4c, 0x56, 0x41, 0x4a, 0x9e, 0x24, 0xb6,
	0x6e, 0x5e, 0xc4, 0xab, 0x62, 0x12, 0xc5, 0x1f, 0x60, 0x38, 0x93, 0xb1,
	0xf6, 0x25, 0x01, 0x19, 0x5b, 0xe7, 0x70, 0xff, 0x7a, 0xde, 0x3a, 0x6f,
	0xd9, 0x0a, 0x4c, 0xe5, 0xca, 0x27, 0x26, 0x62, 0x30, 0xb2, 0x7e, 0x49,
	0xd8, 0xd2, 0x0f, 0xda, 0x48, 0xfc, 0xfc, 0x60, 0x60, 0x0e, 0x27, 0x43,
	0x59, 0x8b, 0xab, 0xb1, 0x54, 0xe4, 0x9a, 0x1a, 0xe4, 0x63, 0x69, 0x58,
	0x54, 0xab, 0x1c, 0x80, 0x9f, 0xcc, 0x27, 0x5e, 0xe6, 0x16, 0x6a, 0xcb,
	0x27, 0x9d, 0x3b, 0x6f, 0xe0, 0x8f, 0x96, 0xab, 0x0d, 0x74, 0xa1, 0xd8,
	0x14, 0x9e, 0x4b, 0x4a, 0x6a, 0x42, 0xd9, 0xfe, 0xa5, 0x48, 0xb9, 0xde,
	0x42, 0xd2, 0xf9, 0x37, 0x42, 0x81, 0x6d, 0x2f, 0x2f, 0x00, 0xea, 0x19,
	0xf4, 0x2b, 0xc8, 0x30, 0x25, 0xd4, 0xd3, 0xdc, 0x3f, 0x71, 0x3f, 0x62,
	0xbb, 0x4f, 0xa2, 0xf6, 0x5d, 0xe5, 0x84, 0x1a, 0x89, 0x1e, 0xb9, 0x2c,
	0x82, 0x16, 0x4a, 0xa3, 0x03, 0x49, 0xa9, 0xfc, 0xbe, 0x21, 0x6b, 0xcf,
	0x33, 0x69, 0x7c, 0x12, 0x84, 0xa3, 0x7f, 0x0d, 0x5e, 0x28, 0x52, 0xf9,
	0x68, 0xec, 0x84, 0x17, 0x53, 0xf0, 0x90, 0x4f, 0x0a, 0x7c, 0x52, 0xed,
	0xca, 0x76, 0xf5, 0xd3,
}

var fakeKeysetE = []byte{
	0x01, 0x00, 0x01,
}

var fakeKeysetD = []byte{
	0x6b, 0xe4, 0x41, 0x1d, 0x5c, 0x7b, 0x14, 0xbc, 0xb1, 0xd4, 0xe8, 0x73,
	0x35, 0x87, 0xfc, 0x53, 0xc4, 0xf4, 0xd9, 0xbc, 0x2d, 0x22, 0x99, 0x25,
	0x88, 0x50, 0x33, 0xb4, 0x94, 0x85, 0x9a, 0xcd, 0x0f, 0x28, 0xea, 0xe1,
	0xf0, 0x0e, 0xb8, 0x4a, 0x1e, 0x5c, 0x19, 0x4d, 0x7a, 0x41, 0xaa, 0x4f,
	0xf1, 0xa8, 0x04, 0xe6, 0xbc, 0xd7, 0xa2, 0x11, 0x8a, 0xe0, 0xe0, 0x0d,
	0x4a, 0x84, 0xb8, 0xd5, 0xe5, 0xe4, 0xa2, 0x22, 0xe9, 0xa6, 0xb5, 0xb7,
	0xb2, 0xd1, 0xc9, 0xf1, 0x84, 0xe1, 0xe3, 0x52, 0x77, 0x7a, 0x87, 0x92,
	0x2d, 0xd7, 0xe4, 0xe6, 0xe6, 0x9f, 0x0b, 0xfd, 0x75, 0x32, 0x19, 0x20,
	0x84, 0xcb, 0x2f, 0x16, 0xb7, 0xec, 0x3a, 0x78, 0xed, 0x27, 0x4c, 0x72,
	0xdd, 0x23, 0x59, 0x52, 0xea, 0x9f, 0x27, 0x23, 0xa2, 0xec, 0x21, 0x99,
	0x1b, 0x97, 0x8c, 0x93, 0x35, 0x1f, 0x8a, 0xb3, 0xe5, 0xe6, 0x71, 0xe3,
	0x7c, 0x15, 0xb9, 0xbe, 0x13, 0x0f, 0x33, 0x6c, 0x02, 0x2f, 0x38, 0xb0,
	0x02, 0x6b, 0x0e, 0x80, 0xc0, 0x35, 0x48, 0x4d, 0xef, 0xa5, 0x50, 0x23,
	0xda, 0x77, 0x91, 0x06, 0x46, 0x01, 0x80, 0x52, 0xb4, 0xe1, 0xeb, 0xaf,
	0xce, 0x74, 0x17, 0x98, 0xe5, 0x9b, 0x11, 0x44, 0x20, 0x31, 0x32, 0x31,
	0x74, 0xf2, 0x5a, 0xaa, 0x3e, 0x89, 0xe6, 0xff, 0x44, 0x3d, 0x3a, 0xf9,
	0x28, 0xf4, 0x60, 0x45, 0x33, 0x2b, 0x7c, 0x27, 0x68, 0x9b, 0x4e, 0xa9,
	0x87, 0x1c, 0x1f, 0x4f, 0x99, 0xec, 0xac, 0xc8, 0xe0, 0x75, 0x55, 0x9e,
	0x6d, 0x09, 0x28, 0xd0, 0x67, 0x18, 0x85, 0xd2, 0x33, 0x2e, 0x91, 0x94,
	0x52, 0x06, 0x20, 0xab, 0x94, 0xc9, 0xd3, 0xcc, 0x3a, 0x07, 0x30, 0x71,
	0xd6, 0x3b, 0x4b, 0xb6, 0x49, 0x36, 0xbe, 0xbb, 0x8d, 0x09, 0xc3, 0x8c,
	0x28, 0x7f, 0xd6, 0x11,
}

var fakeKeysetP = []byte{
	0xb7, 0x5e, 0x0a, 0x8a, 0x94, 0xde, 0x21, 0x72, 0x7f, 0x91, 0x36, 0xe3,
	0x47, 0x20, 0x78, 0x8b, 0xd1, 0xb3, 0x8d, 0xad, 0x53, 0x62, 0x66, 0xcc,
	0x16, 0xee, 0x35, 0xf0, 0xfc, 0x3e, 0x5d, 0xbd, 0xec, 0x0a, 0x33, 0x58,
	0xd9, 0x1d, 0x47, 0x03, 0x7a, 0x29, 0x26, 0x4e, 0x39, 0xc4, 0x2b, 0x19,
	0x37, 0xd4, 0x51, 0x1e, 0x48, 0x69, 0xd8, 0x11, 0x90, 0x32, 0xb3, 0x66,
	0x1f, 0xab, 0x03, 0x86, 0x59, 0xc6, 0xdb, 0xae, 0x1f, 0x81, 0xe8, 0xc0,
	0x6d, 0x13, 0xdb, 0x98, 0x08, 0x5d, 0x08, 0xe3, 0x7f, 0xd4, 0xf9, 0x18,
	0xb2, 0x35, 0xea, 0x26, 0x67, 0x44, 0x32, 0x4b, 0x37, 0x7c, 0x87, 0x9e,
	0x7c, 0xf9, 0xbb, 0xfe, 0xc1, 0xe3, 0x77, 0xc6, 0x05, 0x4a, 0xea, 0x6d,
	0x17, 0x64, 0xac, 0xe2, 0xe2, 0x21, 0xa1, 0x63, 0x64, 0x87, 0x13, 0x69,
	0x01, 0xb0, 0x21, 0x61, 0x20, 0x61, 0x03, 0x4d,
}

var fakeKeysetQ = []byte{
	0xcb, 0xd9, 0xf3, 0x33, 0xde, 0x2f, 0x09, 0x78, 0x2a, 0x60, 0x9f, 0x49,
	0x22, 0xb4, 0x8d, 0x3a, 0x5e, 0x38, 0x85, 0xe9, 0xdb, 0x6e, 0x7f, 0x29,
	0xda, 0x5b, 0x8f, 0x51, 0x5a, 0x8f, 0x68, 0x97, 0x5e, 0x9e, 0xe0, 0x98,
	0xf6, 0x49, 0x34, 0x91, 0x9f, 0xab, 0xa8, 0x61, 0x09, 0x8e, 0x28, 0x3e,
	0xaf, 0xaf, 0xc0, 0xa0, 0xba, 0xbb, 0x42, 0xe4, 0x7f, 0x81, 0x18, 0xdf,
	0x0b, 0x7c, 0x02, 0x64, 0x42, 0x22, 0x7a, 0x4a, 0xb5, 0xe9, 0xf4, 0x73,
	0x49, 0x69, 0x3e, 0xee, 0x34, 0x2b, 0xb1, 0x63, 0x64, 0xe8, 0xb8, 0xd2,
	0x56, 0xfa, 0x1d, 0xb2, 0x93, 0x70, 0x10, 0x88, 0x2d, 0x88, 0x1c, 0x25,
	0xc4, 0xe6, 0x26, 0xff, 0x40, 0x60, 0xec, 0x72, 0xb3, 0x30, 0x0f, 0xf7,
	0xed, 0x16, 0xac, 0xbb, 0x9e, 0x24, 0x54, 0xff, 0x55, 0xf3, 0xd8, 0x21,
	0x46, 0x70, 0xdc, 0xc1, 0x79, 0xb7, 0x0d, 0x9f,
}

var fakeKeysetDp = []byte{
	0xb0, 0xcf, 0xd3, 0x66, 0x51, 0xa9, 0xe7, 0xa2, 0x9a, 0x73, 0x91, 0xf3,
	0x91, 0xf0, 0x33, 0x8c, 0xcf, 0x06, 0x4e, 0x04, 0xe5, 0xb4, 0xaa, 0xde,
	0xfc, 0xf5, 0x71, 0xba, 0x0f, 0xe0, 0xab, 0x4f, 0xa9, 0x3d, 0x24, 0xc9,
	0xf5, 0x81, 0x0f, 0xaa, 0xc0, 0xae, 0xd1, 0x2a, 0xf8, 0xf4, 0xb9, 0x82,
	0x35, 0x9d, 0x5b, 0x22, 0xd2, 0x3c, 0x8d, 0x86, 0x51, 0xff, 0x31, 0x91,
	0xb5, 0xd3, 0x97, 0x30, 0x83, 0x7d, 0x06, 0xf3, 0x5d, 0x9a, 0x4c, 0xae,
	0xcf, 0xff, 0x27, 0xed, 0xef, 0x92, 0x96, 0x31, 0x98, 0x5f, 0xea, 0x59,
	0xef, 0xed, 0xa0, 0xfc, 0xaa, 0xf2, 0xcd, 0x74, 0x4d, 0xea, 0x9c, 0x73,
	0x2c, 0x9b, 0x3a, 0xb5, 0xaa, 0x8c, 0x06, 0x40, 0x41, 0x76, 0x3d, 0x9a,
	0x37, 0xc6, 0x72, 0x16, 0xcc, 0x6a, 0x15, 0x4e, 0xdb, 0xee, 0x8b, 0xbe,
	0xe3, 0x4b, 0xcc, 0xc3, 0xf5, 0x0e, 0xd6, 0xb9,
}

var fakeKeysetDq = []byte{
	0x8e, 0x0e, 0x35, 0xe2, 0xc1, 0x44, 0x7a, 0x0e, 0xd9, 0x49, 0x37, 0xf7,
	0x19, 0x4e, 0x44, 0xd4, 0x95, 0xf0, 0x41, 0xb1, 0xb4, 0x0e, 0x8e, 0x63,
	0x36, 0x1d, 0x74, 0x04, 0x37, 0x5d, 0x94, 0x7f, 0x57, 0x9a, 0xd3, 0xdd,
	0x04, 0x54, 0x03, 0x64, 0x2f, 0xa6, 0xc9, 0xd1, 0xc5, 0x7c, 0xe1, 0x22,
	0xbd, 0xff, 0x75, 0xf7, 0x0b, 0xe9, 0x8f, 0x35, 0xf8, 0x7c, 0x98, 0x3e,
	0x66, 0x9c, 0x66, 0x76, 0x43, 0x78, 0x0f, 0x4c, 0x9c, 0xf4, 0x8a, 0x3b,
	0x04, 0xbf, 0x68, 0xf1, 0x4a, 0x3d, 0xe0, 0x81, 0xe9, 0x42, 0x1b, 0xf9,
	0xc8, 0x4e, 0xc7, 0xff, 0x37, 0xab, 0x72, 0x79, 0xd3, 0x70, 0xf4, 0x5c,
	0x85, 0x97, 0xf5, 0x39, 0x0f, 0x3d, 0xfb, 0xc7, 0xfa, 0x82, 0xd5, 0xbd,
	0xe9, 0xe4, 0x51, 0x3e, 0xf5, 0x77, 0x50, 0x1c, 0x17, 0x63, 0xb4, 0x0b,
	0x8c, 0x30, 0xfe, 0x45, 0x7d, 0x72, 0x48, 0xf5,
}

var fakeKeysetQinv = []byte{
	0x85, 0xac, 0x59, 0xf3, 0x92, 0xe5, 0xbc, 0x0b, 0x39, 0x37, 0x38, 0x17,
	0x55, 0x2b, 0x13, 0x6f, 0x5b, 0xa6, 0x82, 0x7e, 0x16, 0x03, 0x81, 0x98,
	0x79, 0xfb, 0x29, 0x59, 0x06, 0x4b, 0x60, 0x96, 0x01, 0xfb, 0x17, 0xa9,
	0x35, 0x15, 0x10, 0xfd, 0xc6, 0x0f, 0xfd, 0xbe, 0xc3, 0xe9, 0x69, 0x65,
	0x84, 0xb1, 0xc3, 0x85, 0xa9, 0x86, 0x06, 0x57, 0x29, 0x5d, 0xdd, 0x88,
	0x67, 0x49, 0xab, 0x05, 0x32, 0xda, 0xc7, 0x5f, 0xf3, 0xe5, 0x8b, 0x9d,
	0x91, 0x75, 0x54, 0xea, 0xd9, 0x8f, 0x91, 0xec, 0x25, 0xd8, 0x8a, 0x89,
	0xd1, 0xf5, 0x3d, 0x43, 0xcf, 0xbd, 0xb8, 0xe5, 0x1d, 0x07, 0xea, 0x87,
	0x73, 0x24, 0xdb, 0x16, 0xa4, 0x95, 0x3d, 0x12, 0xd3, 0x66, 0x25, 0xf5,
	0x1d, 0xa4, 0xdb, 0xed, 0x14, 0x8a, 0xd6, 0xa4, 0x4e, 0xbd, 0x0f, 0x4d,
	0xa3, 0xc1, 0xbd, 0xf7, 0xb7, 0x02, 0x0e, 0x48,
}

func newRSAPrivateKey(n, e, d, p, q, dp, dq, qinv []byte) *rsa.PrivateKey {
	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).SetBytes(n),
			E: int(new(big.Int).SetBytes(e).Int64()),
		},
		D:      new(big.Int).SetBytes(d),
		Primes: []*big.Int{new(big.Int).SetBytes(p), new(big.Int).SetBytes(q)},
	}
	key.Precomputed = rsa.PrecomputedValues{
		Dp:        new(big.Int).SetBytes(dp),
		Dq:        new(big.Int).SetBytes(dq),
		Qinv:      new(big.Int).SetBytes(qinv),
		CRTValues: []rsa.CRTValue{},
	}
	return key
}

var (
	rsaKeyPkgDerivedKey3 = newRSAPrivateKey(pkgDerivedKey3N, pkgDerivedKey3E, pkgDerivedKey3D,
		pkgDerivedKey3P, pkgDerivedKey3Q, pkgDerivedKey3Dp, pkgDerivedKey3Dq, pkgDerivedKey3Qinv)
	rsaKeyFakeKeyset = newRSAPrivateKey(fakeKeysetN, fakeKeysetE, fakeKeysetD,
		fakeKeysetP, fakeKeysetQ, fakeKeysetDp, fakeKeysetDq, fakeKeysetQinv)
)
