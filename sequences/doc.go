// Package sequences provides named infinite integer streams built on package
// stream, and a registry to look them up by name.
//
//	primes := sequences.Primes()
//	fmt.Println(primes.Take(5).ToSlice()) // [2 3 5 7 11]
//
//	s, err := sequences.Lookup("fibonacci")
package sequences
