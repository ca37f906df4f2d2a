// Package counter implements the CTR/GCM counter block: a 16 byte block
// whose low 32 bits wrap on increment and whose top 96 bits (the nonce, or
// in GCM the rest of J0) are left untouched. Holding the full block means
// GCM's J0, which for a non-96-bit IV is not a nonce-plus-counter at all,
// fits the same type without a special case.
package counter

import "github.com/kaisiemek/aesgo/src/consts"

type Counter struct {
	block [consts.BLOCK_SIZE]byte
}

// New builds a Counter from a full 16 byte block (a CTR IV, or GCM's J0).
func New(block [consts.BLOCK_SIZE]byte) *Counter {
	c := new(Counter)
	c.block = block
	return c
}

// Block returns the current 16 byte counter block (nonce/prefix unchanged,
// low 32 bits reflecting the increments applied so far).
func (c *Counter) Block() [consts.BLOCK_SIZE]byte {
	return c.block
}

// Increment advances only the low 32 bit counter field, wrapping around on
// overflow (inc32 in NIST SP 800-38D §6.2 terms).
func (c *Counter) Increment() {
	for i := consts.BLOCK_SIZE - 1; i >= consts.NONCE_SIZE; i-- {
		c.block[i]++
		if c.block[i] != 0 {
			break
		}
	}
}
