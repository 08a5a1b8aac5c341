package main

func abs(i int) int {
	if i < 0 {
		i = -i
	}
	return i
}

// sign returns the coordinate normalized to -1, 0 or 1.
func sign(i int) int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}
