package incb

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: DerivedCoreProperties.txt, Unicode 15.1.0

import "unicode"

var Consonant = &unicode.RangeTable{ // 26 entries
	R16: []unicode.Range16{
		{0x0915, 0x0939, 1},
		{0x0958, 0x095f, 1},
		{0x0978, 0x097f, 1},
		{0x0995, 0x09a8, 1},
		{0x09aa, 0x09b0, 1},
		{0x09b2, 0x09b2, 1},
		{0x09b6, 0x09b9, 1},
		{0x09dc, 0x09dd, 1},
		{0x09df, 0x09df, 1},
		{0x09f0, 0x09f1, 1},
		{0x0a95, 0x0aa8, 1},
		{0x0aaa, 0x0ab0, 1},
		{0x0ab2, 0x0ab3, 1},
		{0x0ab5, 0x0ab9, 1},
		{0x0af9, 0x0af9, 1},
		{0x0b15, 0x0b28, 1},
		{0x0b2a, 0x0b30, 1},
		{0x0b32, 0x0b33, 1},
		{0x0b35, 0x0b39, 1},
		{0x0b5c, 0x0b5d, 1},
		{0x0b5f, 0x0b5f, 1},
		{0x0b71, 0x0b71, 1},
		{0x0c15, 0x0c28, 1},
		{0x0c2a, 0x0c39, 1},
		{0x0c58, 0x0c5a, 1},
		{0x0d15, 0x0d3a, 1},
	},
}

var Linker = &unicode.RangeTable{ // 6 entries
	R16: []unicode.Range16{
		{0x094d, 0x094d, 1},
		{0x09cd, 0x09cd, 1},
		{0x0acd, 0x0acd, 1},
		{0x0b4d, 0x0b4d, 1},
		{0x0c4d, 0x0c4d, 1},
		{0x0d4d, 0x0d4d, 1},
	},
}

var Extend = &unicode.RangeTable{ // 180 entries
	R16: []unicode.Range16{
		{0x0300, 0x034e, 1},
		{0x0350, 0x036f, 1},
		{0x0483, 0x0487, 1},
		{0x0591, 0x05bd, 1},
		{0x05bf, 0x05bf, 1},
		{0x05c1, 0x05c2, 1},
		{0x05c4, 0x05c5, 1},
		{0x05c7, 0x05c7, 1},
		{0x0610, 0x061a, 1},
		{0x064b, 0x065f, 1},
		{0x0670, 0x0670, 1},
		{0x06d6, 0x06dc, 1},
		{0x06df, 0x06e4, 1},
		{0x06e7, 0x06e8, 1},
		{0x06ea, 0x06ed, 1},
		{0x0711, 0x0711, 1},
		{0x0730, 0x074a, 1},
		{0x07eb, 0x07f3, 1},
		{0x07fd, 0x07fd, 1},
		{0x0816, 0x0819, 1},
		{0x081b, 0x0823, 1},
		{0x0825, 0x0827, 1},
		{0x0829, 0x082d, 1},
		{0x0859, 0x085b, 1},
		{0x0898, 0x089f, 1},
		{0x08ca, 0x08e1, 1},
		{0x08e3, 0x08ff, 1},
		{0x093c, 0x093c, 1},
		{0x0951, 0x0954, 1},
		{0x09bc, 0x09bc, 1},
		{0x09fe, 0x09fe, 1},
		{0x0a3c, 0x0a3c, 1},
		{0x0a4d, 0x0a4d, 1},
		{0x0abc, 0x0abc, 1},
		{0x0b3c, 0x0b3c, 1},
		{0x0bcd, 0x0bcd, 1},
		{0x0c3c, 0x0c3c, 1},
		{0x0c55, 0x0c56, 1},
		{0x0cbc, 0x0cbc, 1},
		{0x0ccd, 0x0ccd, 1},
		{0x0d3b, 0x0d3c, 1},
		{0x0dca, 0x0dca, 1},
		{0x0e38, 0x0e3a, 1},
		{0x0e48, 0x0e4b, 1},
		{0x0eb8, 0x0eba, 1},
		{0x0ec8, 0x0ecb, 1},
		{0x0f18, 0x0f19, 1},
		{0x0f35, 0x0f35, 1},
		{0x0f37, 0x0f37, 1},
		{0x0f39, 0x0f39, 1},
		{0x0f71, 0x0f72, 1},
		{0x0f74, 0x0f74, 1},
		{0x0f7a, 0x0f7d, 1},
		{0x0f80, 0x0f80, 1},
		{0x0f82, 0x0f84, 1},
		{0x0f86, 0x0f87, 1},
		{0x0fc6, 0x0fc6, 1},
		{0x1037, 0x1037, 1},
		{0x1039, 0x103a, 1},
		{0x108d, 0x108d, 1},
		{0x135d, 0x135f, 1},
		{0x1714, 0x1714, 1},
		{0x17d2, 0x17d2, 1},
		{0x17dd, 0x17dd, 1},
		{0x18a9, 0x18a9, 1},
		{0x1939, 0x193b, 1},
		{0x1a17, 0x1a18, 1},
		{0x1a60, 0x1a60, 1},
		{0x1a75, 0x1a7c, 1},
		{0x1a7f, 0x1a7f, 1},
		{0x1ab0, 0x1abd, 1},
		{0x1abf, 0x1ace, 1},
		{0x1b34, 0x1b34, 1},
		{0x1b6b, 0x1b73, 1},
		{0x1bab, 0x1bab, 1},
		{0x1be6, 0x1be6, 1},
		{0x1c37, 0x1c37, 1},
		{0x1cd0, 0x1cd2, 1},
		{0x1cd4, 0x1ce0, 1},
		{0x1ce2, 0x1ce8, 1},
		{0x1ced, 0x1ced, 1},
		{0x1cf4, 0x1cf4, 1},
		{0x1cf8, 0x1cf9, 1},
		{0x1dc0, 0x1dff, 1},
		{0x200d, 0x200d, 1},
		{0x20d0, 0x20dc, 1},
		{0x20e1, 0x20e1, 1},
		{0x20e5, 0x20f0, 1},
		{0x2cef, 0x2cf1, 1},
		{0x2d7f, 0x2d7f, 1},
		{0x2de0, 0x2dff, 1},
		{0x302a, 0x302f, 1},
		{0x3099, 0x309a, 1},
		{0xa66f, 0xa66f, 1},
		{0xa674, 0xa67d, 1},
		{0xa69e, 0xa69f, 1},
		{0xa6f0, 0xa6f1, 1},
		{0xa806, 0xa806, 1},
		{0xa82c, 0xa82c, 1},
		{0xa8c4, 0xa8c4, 1},
		{0xa8e0, 0xa8f1, 1},
		{0xa92b, 0xa92d, 1},
		{0xa9b3, 0xa9b3, 1},
		{0xaab0, 0xaab0, 1},
		{0xaab2, 0xaab4, 1},
		{0xaab7, 0xaab8, 1},
		{0xaabe, 0xaabf, 1},
		{0xaac1, 0xaac1, 1},
		{0xaaf6, 0xaaf6, 1},
		{0xabed, 0xabed, 1},
		{0xfb1e, 0xfb1e, 1},
		{0xfe20, 0xfe2f, 1},
	},
	R32: []unicode.Range32{
		{0x101fd, 0x101fd, 1},
		{0x102e0, 0x102e0, 1},
		{0x10376, 0x1037a, 1},
		{0x10a0d, 0x10a0d, 1},
		{0x10a0f, 0x10a0f, 1},
		{0x10a38, 0x10a3a, 1},
		{0x10a3f, 0x10a3f, 1},
		{0x10ae5, 0x10ae6, 1},
		{0x10d24, 0x10d27, 1},
		{0x10eab, 0x10eac, 1},
		{0x10efd, 0x10eff, 1},
		{0x10f46, 0x10f50, 1},
		{0x10f82, 0x10f85, 1},
		{0x11046, 0x11046, 1},
		{0x11070, 0x11070, 1},
		{0x1107f, 0x1107f, 1},
		{0x110b9, 0x110ba, 1},
		{0x11100, 0x11102, 1},
		{0x11133, 0x11134, 1},
		{0x11173, 0x11173, 1},
		{0x111ca, 0x111ca, 1},
		{0x11236, 0x11236, 1},
		{0x112e9, 0x112ea, 1},
		{0x1133b, 0x1133c, 1},
		{0x11366, 0x1136c, 1},
		{0x11370, 0x11374, 1},
		{0x11442, 0x11442, 1},
		{0x11446, 0x11446, 1},
		{0x1145e, 0x1145e, 1},
		{0x114c2, 0x114c3, 1},
		{0x115bf, 0x115c0, 1},
		{0x1163f, 0x1163f, 1},
		{0x116b7, 0x116b7, 1},
		{0x1172b, 0x1172b, 1},
		{0x11839, 0x1183a, 1},
		{0x1193e, 0x1193e, 1},
		{0x11943, 0x11943, 1},
		{0x119e0, 0x119e0, 1},
		{0x11a34, 0x11a34, 1},
		{0x11a47, 0x11a47, 1},
		{0x11a99, 0x11a99, 1},
		{0x11c3f, 0x11c3f, 1},
		{0x11d42, 0x11d42, 1},
		{0x11d44, 0x11d45, 1},
		{0x11d97, 0x11d97, 1},
		{0x11f42, 0x11f42, 1},
		{0x16af0, 0x16af4, 1},
		{0x16b30, 0x16b36, 1},
		{0x1bc9e, 0x1bc9e, 1},
		{0x1d165, 0x1d165, 1},
		{0x1d167, 0x1d169, 1},
		{0x1d16e, 0x1d172, 1},
		{0x1d17b, 0x1d182, 1},
		{0x1d185, 0x1d18b, 1},
		{0x1d1aa, 0x1d1ad, 1},
		{0x1d242, 0x1d244, 1},
		{0x1e000, 0x1e006, 1},
		{0x1e008, 0x1e018, 1},
		{0x1e01b, 0x1e021, 1},
		{0x1e023, 0x1e024, 1},
		{0x1e026, 0x1e02a, 1},
		{0x1e08f, 0x1e08f, 1},
		{0x1e130, 0x1e136, 1},
		{0x1e2ae, 0x1e2ae, 1},
		{0x1e2ec, 0x1e2ef, 1},
		{0x1e4ec, 0x1e4ef, 1},
		{0x1e8d0, 0x1e8d6, 1},
		{0x1e944, 0x1e94a, 1},
	},
}
