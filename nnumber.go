package flydent

import (
	"errors"
	"fmt"
	"strings"
)

// US civil registrations ("N-Numbers") occupy a contiguous ICAO address
// block. "N1" sits at usBase+1 and "N99999" at usMax.
const (
	usBase uint32 = 0xA00000
	usMax  uint32 = 0xADF7C7
)

// suffixCharset excludes 'I' and 'O', which are never issued because they
// read as '1' and '0'.
const suffixCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// nnumberCharset is the full 34-symbol alphabet an N-Number may draw from.
const nnumberCharset = suffixCharset + "0123456789"

// Bucket sizes of the mixed-radix encoding. Each bucket counts how many
// addresses a digit at that position spans; suffixSize counts the 601
// possible letter suffixes (empty, 24 single, 24x24 double).
const (
	suffixSize  uint32 = 1 + 24*(1+24)           // 601
	bucket4Size uint32 = 1 + 24 + 10             // 35
	bucket3Size uint32 = 10*bucket4Size + suffixSize // 951
	bucket2Size uint32 = 10*bucket3Size + suffixSize // 10111
	bucket1Size uint32 = 10*bucket2Size + suffixSize // 101711
)

// Named failures of the N-Number codec. Classification misses are plain
// non-matches, but a conversion request has exactly one right answer, so
// the caller gets told why it has none.
var (
	ErrNoNPrefix         = errors.New("registration must start with N")
	ErrTooLong           = errors.New("registration too long (max 6 characters)")
	ErrInvalidCharacter  = errors.New("invalid character in registration")
	ErrNonTrailingLetter = errors.New("letters may only appear as a trailing suffix")
	ErrOutOfRange        = errors.New("registration outside the allocated US block")
	ErrNotUSBlock        = errors.New("address outside the US allocation block")
)

// suffixFor returns the letter suffix at the given offset.
//
//	0 -> ""
//	1 -> "A"
//	2 -> "AA"
//	...
//	600 -> "ZZ"
func suffixFor(offset uint32) string {
	if offset == 0 {
		return ""
	}
	first := (offset - 1) / 25
	rem := (offset - 1) % 25
	if rem == 0 {
		return string(suffixCharset[first])
	}
	return string(suffixCharset[first]) + string(suffixCharset[rem-1])
}

// suffixOffset is the inverse of suffixFor. Returns false for strings that
// are not a valid 0-2 letter suffix.
func suffixOffset(s string) (uint32, bool) {
	if s == "" {
		return 0, true
	}
	if len(s) > 2 {
		return 0, false
	}
	idx0 := strings.IndexByte(suffixCharset, s[0])
	if idx0 < 0 {
		return 0, false
	}
	count := uint32(25*idx0 + 1)
	if len(s) == 2 {
		idx1 := strings.IndexByte(suffixCharset, s[1])
		if idx1 < 0 {
			return 0, false
		}
		count += uint32(idx1 + 1)
	}
	return count, true
}

// NNumberToAddress converts a US N-Number to its 24-bit ICAO address.
//
// Input is trimmed and upper-cased before validation, so "n8437d" and
// "N8437D" are equivalent. Fails with one of the named codec errors when
// the string is not a syntactically valid N-Number or encodes outside the
// US block.
func NNumberToAddress(nnumber string) (uint32, error) {
	nnumber = strings.ToUpper(strings.TrimSpace(nnumber))

	if !strings.HasPrefix(nnumber, "N") {
		return 0, fmt.Errorf("%q: %w", nnumber, ErrNoNPrefix)
	}
	if len(nnumber) > 6 {
		return 0, fmt.Errorf("%q: %w", nnumber, ErrTooLong)
	}
	for i := 0; i < len(nnumber); i++ {
		if strings.IndexByte(nnumberCharset, nnumber[i]) < 0 {
			return 0, fmt.Errorf("%q at %d: %w", nnumber, i, ErrInvalidCharacter)
		}
	}
	// A letter anywhere but the last two positions can never start a valid
	// 1-2 letter suffix.
	if len(nnumber) > 3 {
		for i := 1; i < len(nnumber)-2; i++ {
			if strings.IndexByte(suffixCharset, nnumber[i]) >= 0 {
				return 0, fmt.Errorf("%q at %d: %w", nnumber, i, ErrNonTrailingLetter)
			}
		}
	}

	count := uint32(1) // offset of "N1", the first issued registration

	rest := nnumber[1:]
	for i := 0; i < len(rest); i++ {
		c := rest[i]

		if i == 4 {
			// Fifth character is structurally last and may be any symbol.
			count += uint32(strings.IndexByte(nnumberCharset, c) + 1)
			break
		}
		if strings.IndexByte(suffixCharset, c) >= 0 {
			// First letter starts the suffix; nothing may follow it.
			off, ok := suffixOffset(rest[i:])
			if !ok {
				return 0, fmt.Errorf("%q at %d: %w", nnumber, i+1, ErrNonTrailingLetter)
			}
			count += off
			break
		}

		digit := uint32(c - '0')
		switch i {
		case 0:
			// Wraps for a leading '0'; the range check below rejects it.
			count += (digit - 1) * bucket1Size
		case 1:
			count += digit*bucket2Size + suffixSize
		case 2:
			count += digit*bucket3Size + suffixSize
		case 3:
			count += digit*bucket4Size + suffixSize
		}
	}

	addr := usBase + count
	if addr > usMax || addr <= usBase {
		return 0, fmt.Errorf("%q: %w", nnumber, ErrOutOfRange)
	}
	return addr, nil
}

// AddressToNNumber converts a 24-bit ICAO address in the US allocation
// block back to its N-Number.
func AddressToNNumber(addr uint32) (string, error) {
	if addr <= usBase || addr > usMax {
		return "", fmt.Errorf("%06X: %w", addr, ErrNotUSBlock)
	}

	i := addr - usBase - 1
	var b strings.Builder
	b.WriteByte('N')

	// First digit is 1-9; the remaining digit positions are 0-9.
	b.WriteByte(byte('1' + i/bucket1Size))
	rem := i % bucket1Size

	for _, bucket := range []uint32{bucket2Size, bucket3Size, bucket4Size} {
		if rem < suffixSize {
			return b.String() + suffixFor(rem), nil
		}
		rem -= suffixSize
		b.WriteByte(byte('0' + rem/bucket))
		rem %= bucket
	}

	if rem == 0 {
		return b.String(), nil
	}
	// Non-zero remainder after four digits is the free-form fifth character.
	b.WriteByte(nnumberCharset[rem-1])
	return b.String(), nil
}

// RegistrationToICAO converts a registration callsign to its 24-bit ICAO
// address in 3-byte big-endian form. Only the US "N" allocation has a
// defined bijection; other prefixes fail with ErrNoNPrefix.
func RegistrationToICAO(reg string) ([3]byte, error) {
	if !strings.HasPrefix(strings.TrimSpace(reg), "N") {
		return [3]byte{}, fmt.Errorf("%q: %w", reg, ErrNoNPrefix)
	}
	addr, err := NNumberToAddress(reg)
	if err != nil {
		return [3]byte{}, err
	}
	return addrToBytes(addr), nil
}

// ICAOToRegistration converts a 3-byte big-endian ICAO address to its
// registration callsign. Only addresses in the US block decode; anything
// else fails with ErrNotUSBlock.
func ICAOToRegistration(icao [3]byte) (string, error) {
	return AddressToNNumber(bytesToAddr(icao))
}
