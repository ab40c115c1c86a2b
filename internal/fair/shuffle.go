package fair

// BoardSize is the fixed 5x5 index space every round plays on.
const BoardSize = 25

// Shuffle derives a permutation of {0..n-1} from the keystream with a
// Fisher-Yates walk from the end: for i from n-1 down to 1, draw f and
// swap i with floor(f*(i+1)). The loop bound, swap order and floor
// formula are part of the verification contract — an independent replay
// must use the same ones or it will derive a different permutation.
func Shuffle(n int, ks *Keystream) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := n - 1; i >= 1; i-- {
		j := int(ks.Float() * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm
}

// HazardSet returns the mine positions for a round: the first count
// entries of the board permutation derived from the round's seeds.
// Re-deriving with the same triple reproduces an identical set.
func HazardSet(secretSeed, publicSeed string, sequence int64, count int) map[int]bool {
	ks := NewKeystream(secretSeed, publicSeed, sequence)
	perm := Shuffle(BoardSize, ks)

	set := make(map[int]bool, count)
	for _, idx := range perm[:count] {
		set[idx] = true
	}
	return set
}
