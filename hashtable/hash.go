package hashtable

import "github.com/zeebo/xxh3"

// A HashFunc maps a key to a bucket index in [0, buckets). buckets is always
// at least 1 when called from a Table.
type HashFunc func(key string, buckets uint64) uint64

// CharSum adds up the UTF-8 bytes of key, as unsigned values, and reduces the
// sum modulo buckets. For non-ASCII keys this is not the code point sum: "é"
// sums to 0xC3+0xA9 = 364, not 233.
//
// Anagrams always collide. This is the default hash, and it fixes both which
// bucket a key lands in and the order buckets are printed in.
func CharSum(key string, buckets uint64) uint64 {
	if buckets == 0 {
		panic("hashtable: hash into zero buckets")
	}
	var sum = uint64(0)
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i])
	}
	return sum % buckets
}

// XXH3 is a stronger alternative to CharSum. Tables built with it spread keys
// differently, so their printed order differs from the default.
func XXH3(key string, buckets uint64) uint64 {
	if buckets == 0 {
		panic("hashtable: hash into zero buckets")
	}
	return xxh3.HashString(key) % buckets
}
