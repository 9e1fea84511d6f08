package flydent

import "fmt"

// allocation maps a binary address prefix to an ISO 3166-1 alpha-2 code.
type allocation struct {
	prefix string // 4-14 bit binary prefix, MSB first
	iso2   string
}

// icaoAllocations lists the ICAO 24-bit address blocks by country.
//
// The table order is authoritative: lookup scans it top to bottom and the
// first matching prefix wins, so longer prefixes are listed ahead of the
// shorter prefixes they overlap. The rows are transcribed verbatim from the
// ICAO allocation standard and must not be reordered or regenerated.
// "ZZ" marks ICAO's own reserved blocks.
var icaoAllocations = []allocation{
	// 14-bit prefixes
	{"00001100101000", "AG"},
	{"01010000000100", "AL"},
	{"00001010101000", "BB"},
	{"00001010101100", "BZ"},
	{"00001001010000", "BJ"},
	{"01101000000000", "BT"},
	{"111010010100", "BO"},
	{"01010001001100", "BA"},
	{"00000011000000", "BW"},
	{"10001001010100", "BN"},
	{"000010011100", "BF"},
	{"000000110010", "BI"},
	{"011100001110", "KH"},
	{"000000110100", "CM"},
	{"00001001011000", "CV"},
	{"000001101100", "CF"},
	{"000010000100", "TD"},
	{"111010000000", "CL"},
	{"000010101100", "CO"},
	{"00000011010100", "KM"},
	{"000000110110", "CG"},
	{"10010000000100", "CK"},
	{"000010101110", "CR"},
	{"000000111000", "CI"},
	{"01010000000111", "HR"},
	{"000010110000", "CU"},
	{"01001100100000", "CY"},
	{"011100100", "KP"},
	{"000010001100", "CD"},
	{"00001001100000", "DJ"},
	{"000011000100", "DO"},
	{"111010000100", "EC"},
	{"000010110010", "SV"},
	{"000001000010", "GQ"},
	{"00100000001000", "ER"},
	{"01010001000100", "EE"},
	{"000001000000", "ET"},
	{"110010001000", "FJ"},
	{"000000111110", "GA"},
	{"000010011010", "GM"},
	{"01010001010000", "GE"},
	{"000001000100", "GH"},
	{"00001100110000", "GD"},
	{"000010110100", "GT"},
	{"000001000110", "GN"},
	{"00000100100000", "GW"},
	{"000010110110", "GY"},
	{"000010111000", "HT"},
	{"000010111010", "HN"},
	{"010011001100", "IS"},
	{"011100110", "IR"},
	{"011100101", "IQ"},
	{"010011001010", "IE"},
	{"011100111", "IL"},
	{"000010111110", "JM"},
	{"011101000", "JO"},
	{"01101000001100", "KZ"},
	{"000001001100", "KE"},
	{"11001000111000", "KI"},
	{"011100000110", "KW"},
	{"01100000000100", "KG"},
	{"011100001000", "LA"},
	{"01010000001011", "LV"},
	{"011101001", "LB"},
	{"00000100101000", "LS"},
	{"000001010000", "LR"},
	{"01010000001111", "LT"},
	{"01001101000000", "LU"},
	{"000001010100", "MG"},
	{"000001011000", "MW"},
	{"011101010", "MY"},
	{"00000101101000", "MV"},
	{"000001011100", "ML"},
	{"01001101001000", "MT"},
	{"10010000000000", "MH"},
	{"00000101111000", "MR"},
	{"00000110000000", "MU"},
	{"01101000000100", "FM"},
	{"01001101010000", "MC"},
	{"01101000001000", "MN"},
	{"000000000110", "MZ"},
	{"011100000100", "MM"},
	{"00100000000100", "NA"},
	{"11001000101000", "NR"},
	{"011100001010", "NP"},
	{"000011000000", "NI"},
	{"000001100010", "NE"},
	{"000001100100", "NG"},
	{"01110000110000", "OM"},
	{"011101100", "PK"},
	{"01101000010000", "PW"},
	{"000011000010", "PA"},
	{"100010011000", "PG"},
	{"111010001000", "PY"},
	{"111010001100", "PE"},
	{"011101011", "PH"},
	{"00000110101000", "QA"},
	{"011100011", "KR"},
	{"01010000010011", "MD"},
	{"000001101110", "RW"},
	{"11001000110000", "LC"},
	{"00001011110000", "VC"},
	{"10010000001000", "WS"},
	{"01010000000000", "SM"},
	{"00001001111000", "ST"},
	{"011100010", "SA"},
	{"000001110000", "SN"},
	{"00000111010000", "SC"},
	{"00000111011000", "SL"},
	{"011101101", "SG"},
	{"01010000010111", "SK"},
	{"01010000011011", "SI"},
	{"10001001011100", "SB"},
	{"000001111000", "SO"},
	{"011101110", "LK"},
	{"000001111100", "SD"},
	{"000011001000", "SR"},
	{"00000111101000", "SZ"},
	{"01010001010100", "TJ"},
	{"01010001001000", "MK"},
	{"000010001000", "TG"},
	{"11001000110100", "TO"},
	{"000011000110", "TT"},
	{"01100000000110", "TM"},
	{"000001101000", "UG"},
	{"100010010110", "AE"},
	{"000010000000", "TZ"},
	{"111010010000", "UY"},
	{"01010000011111", "UZ"},
	{"11001001000000", "VU"},
	{"100010010000", "YE"},
	{"000010001010", "ZM"},
	{"00000000010000", "ZW"},
	{"10001001100100", "ZZ"},
	{"11110000100100", "ZZ"},

	// 12-bit prefixes
	{"011100000000", "AF"},
	{"01100000000000", "AM"},
	{"01100000000010", "AZ"},
	{"000010101000", "BS"},
	{"100010010100", "BH"},
	{"011100000010", "BD"},
	{"01010001000000", "BY"},

	// 9-bit prefixes
	{"000010100", "DZ"},
	{"010001000", "AT"},
	{"010001001", "BE"},
	{"010001010", "BG"},
	{"010001011", "DK"},
	{"010001100", "FI"},
	{"010001101", "GR"},
	{"010001110", "HU"},
	{"010001111", "NO"},
	{"100010100", "ID"},
	{"010010000", "NL"},
	{"010010001", "PL"},
	{"010010010", "PT"},
	{"010010011", "CZ"},
	{"010010100", "RO"},
	{"010010101", "SE"},
	{"010010110", "CH"},
	{"010010111", "TR"},
	{"110010000", "NZ"},
	{"010100001", "UA"},
	{"000011010", "MX"},
	{"000011011", "VE"},
	{"100010000", "TH"},
	{"100010001", "VN"},
	{"010011000", "RS"},
	{"111100000", "ZZ"},

	// 6-bit prefixes
	{"111000", "AR"},
	{"011111", "AU"},
	{"110000", "CA"},
	{"111001", "BR"},
	{"001110", "FR"},
	{"001111", "DE"},
	{"100000", "IN"},
	{"001100", "IT"},
	{"100001", "JP"},
	{"001101", "ES"},
	{"010000", "GB"},

	// 4-bit prefixes
	{"1010", "US"},
	{"0001", "RU"},

	// 9-bit prefixes (continued, ordered by value)
	{"000000001", "ZA"},
	{"000000010", "EG"},
	{"000000011", "LY"},
	{"000000100", "MA"},
	{"000000101", "TN"},
	{"000010010000", "AO"},
}

// CountryForAddress resolves a 24-bit ICAO address to the ISO 3166-1
// alpha-2 code of the country it is allocated to.
//
// Returns false when the value exceeds 24 bits or when no allocation
// covers the address (unallocated space is a normal non-match, not an
// error).
//
//	CountryForAddress(0xAB8E4F) // "US", true  (N8437D)
//	CountryForAddress(0x4C0000) // "RS", true
//	CountryForAddress(0x1000000) // "", false  (more than 24 bits)
func CountryForAddress(addr uint32) (string, bool) {
	if addr > 0xFFFFFF {
		return "", false
	}
	return CountryForBytes(addrToBytes(addr))
}

// CountryForBytes resolves a 24-bit ICAO address in its 3-byte big-endian
// form to the allocated country's ISO 3166-1 alpha-2 code.
func CountryForBytes(icao [3]byte) (string, bool) {
	binary := fmt.Sprintf("%08b%08b%08b", icao[0], icao[1], icao[2])
	for _, a := range icaoAllocations {
		if len(binary) >= len(a.prefix) && binary[:len(a.prefix)] == a.prefix {
			return a.iso2, true
		}
	}
	return "", false
}

// addrToBytes renders a 24-bit address big-endian.
func addrToBytes(addr uint32) [3]byte {
	return [3]byte{byte(addr >> 16), byte(addr >> 8), byte(addr)}
}

// bytesToAddr folds a big-endian 3-byte address into a uint32.
func bytesToAddr(icao [3]byte) uint32 {
	return uint32(icao[0])<<16 | uint32(icao[1])<<8 | uint32(icao[2])
}
