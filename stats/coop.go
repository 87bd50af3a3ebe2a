package stats

// ReachesCoopBonusByMatch reports, per match, whether the team alone summed
// enough of the co-op fields to reach the threshold.
func (s *CalculatedStats) ReachesCoopBonusByMatch(team int) []bool {
	records := s.data.teamRecords(team)
	out := make([]bool, len(records))
	if len(s.game.Coop.Fields) == 0 {
		return out
	}
	for i, r := range records {
		total := 0.0
		for _, f := range s.game.Coop.Fields {
			total += s.count(r, f)
		}
		out[i] = total >= s.game.Coop.Threshold
	}
	return out
}

// CoopBonusChance pairs every match of every team with every match of the
// others and returns the share of combinations where at least one team reached
// the co-op bonus. It is a combinatorial estimate that treats matches as
// independent; 0 when any team has no matches.
func (s *CalculatedStats) CoopBonusChance(teams ...int) float64 {
	if len(teams) == 0 {
		return 0
	}
	seqs := make([][]bool, len(teams))
	for i, team := range teams {
		seqs[i] = s.ReachesCoopBonusByMatch(team)
	}
	combos := CartesianProduct(seqs...)
	hits := 0
	for _, combo := range combos {
		for _, reached := range combo {
			if reached {
				hits++
				break
			}
		}
	}
	return safeDivide(float64(hits), float64(len(combos)))
}

// CartesianProduct returns every tuple taking one element from each sequence.
// The first sequence varies slowest. No sequences yield a single empty tuple;
// any empty sequence yields none.
func CartesianProduct[T any](seqs ...[]T) [][]T {
	total := 1
	for _, seq := range seqs {
		total *= len(seq)
	}
	out := make([][]T, 0, total)
	if total == 0 {
		return out
	}
	idx := make([]int, len(seqs))
	for {
		tuple := make([]T, len(seqs))
		for i, seq := range seqs {
			tuple[i] = seq[idx[i]]
		}
		out = append(out, tuple)

		// Odometer increment, last position fastest.
		pos := len(seqs) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(seqs[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}
