package patterns

import "math"

// stringEntropy returns the Shannon entropy of s in bits per byte.
func stringEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	n := float64(len(s))
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// luhnValid checks the Luhn checksum over the digits of s, ignoring spaces
// and dashes. Shape validation (group lengths) is the regex's job.
func luhnValid(s string) bool {
	sum := 0
	double := false
	digits := 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == ' ' || c == '-' {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
		digits++
	}
	return digits >= 12 && sum%10 == 0
}
