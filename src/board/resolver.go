package board

import (
	"chessboard/src/base"
	"chessboard/src/logx"
	"chessboard/src/rules"
)

// PromotionChooser picks one of several legal moves that share source and
// destination. It is called only with two or more candidates.
type PromotionChooser func(candidates []rules.Move) rules.Move

// QueenFirst prefers a queen promotion, then the engine's first move.
func QueenFirst(candidates []rules.Move) rules.Move {
	for _, m := range candidates {
		if m.Promotion() == base.Queen {
			return m
		}
	}
	return candidates[0]
}

// EngineOrder keeps the first candidate the engine reported.
func EngineOrder(candidates []rules.Move) rules.Move {
	return candidates[0]
}

// PromotionChooserFromString maps "engine" to EngineOrder; any other name
// gets QueenFirst.
func PromotionChooserFromString(name string) PromotionChooser {
	if name == "engine" {
		return EngineOrder
	}
	return QueenFirst
}

type resolver struct {
	choose PromotionChooser
	logger logx.Logger
}

// resolve returns the position after the matching legal move, or ok=false
// when the attempt has no end square or nothing legal matches.
func (r *resolver) resolve(pos rules.Position, a Attempt) (next rules.Position, played rules.Move, ok bool) {
	if !a.HasEnd {
		r.logger.Debugf("release off board, drag from %v cancelled", a.Start)
		return nil, nil, false
	}

	var candidates []rules.Move
	for _, m := range pos.LegalMoves() {
		if m.From() == a.Start && m.To() == a.End {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		r.logger.Debugf("no legal move %v-%v", a.Start, a.End)
		return nil, nil, false
	case 1:
		played = candidates[0]
	default:
		played = r.choose(candidates)
		r.logger.Debugf("%d candidates for %v-%v, chose %v", len(candidates), a.Start, a.End, played)
	}

	next, err := pos.Apply(played)
	if err != nil {
		r.logger.Errorf("apply %v: %v", played, err)
		return nil, nil, false
	}
	return next, played, true
}
