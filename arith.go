package number

import "math"

// Checked machine arithmetic for the int64 fast path.
// Every operation reports ok = false on overflow, and the caller promotes
// the computation to [math/big.Int].

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// addInt64 calculates x + y and checks overflow.
func addInt64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// subInt64 calculates x - y and checks overflow.
func subInt64(x, y int64) (z int64, ok bool) {
	z = x - y
	if (y < 0 && z < x) || (y > 0 && z > x) {
		return 0, false
	}
	return z, true
}

// mulInt64 calculates x * y and checks overflow.
func mulInt64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if x == math.MinInt64 || y == math.MinInt64 {
		// MinInt64 * -1 and MinInt64 / -1 both trap, so the only safe
		// products involving MinInt64 are the ones with a factor of 1.
		if x == 1 {
			return y, true
		}
		if y == 1 {
			return x, true
		}
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// negInt64 calculates -x and checks overflow.
func negInt64(x int64) (z int64, ok bool) {
	if x == math.MinInt64 {
		return 0, false
	}
	return -x, true
}
