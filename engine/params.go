package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Pair is a midgame/endgame score couple.
type Pair struct {
	MG int `json:"mg"`
	EG int `json:"eg"`
}

// RankTable indexes a midgame/endgame couple by side-relative rank.
type RankTable struct {
	MG [8]int `json:"mg"`
	EG [8]int `json:"eg"`
}

// PSQT is a piece-square table seen from white (a1 = 0). Black looks squares up through FlipView.
type PSQT struct {
	MG [64]int `json:"mg"`
	EG [64]int `json:"eg"`
}

// Params holds every tunable the evaluator reads. A Params value must not be modified once
// an Evaluator has been built from it; evaluators on different goroutines may share one.
type Params struct {
	PawnValue   int `json:"pawn_value"`
	KnightValue int `json:"knight_value"`
	BishopValue int `json:"bishop_value"`
	RookValue   int `json:"rook_value"`
	QueenValue  int `json:"queen_value"`

	Tempo      Pair `json:"tempo"`
	BishopPair Pair `json:"bishop_pair"`
	BadTrade   int  `json:"bad_trade"`
	DrawValue  int  `json:"draw_value"`

	Pawn   PSQT `json:"pawn_psqt"`
	Knight PSQT `json:"knight_psqt"`
	Bishop PSQT `json:"bishop_psqt"`
	Rook   PSQT `json:"rook_psqt"`
	Queen  PSQT `json:"queen_psqt"`

	// Endgame king placement by pawn distribution.
	KingBothWings [64]int `json:"king_both_wings"`
	KingKingside  [64]int `json:"king_kingside"`
	KingQueenside [64]int `json:"king_queenside"`

	PawnIsolated    Pair      `json:"pawn_isolated"`
	PawnWeak        Pair      `json:"pawn_weak"`
	PawnDoubled     Pair      `json:"pawn_doubled"`
	PawnConnected   Pair      `json:"pawn_connected"`
	PassedCandidate RankTable `json:"passed_candidate"`
	PassedHidden    Pair      `json:"passed_hidden"`

	// King shelter defects.
	OpenFile     [8]int    `json:"open_file"`
	HalfOpenFile [8]int    `json:"half_open_file"`
	PawnDefects  [2][8]int `json:"pawn_defects"`

	PassedValue             RankTable `json:"passed_value"`
	PassedConnected         RankTable `json:"passed_connected"`
	RookBehindPasser        RankTable `json:"rook_behind_passer"`
	PassedBlockadedEnemy    RankTable `json:"passed_blockaded_enemy"`
	PassedBlockadedFriendly RankTable `json:"passed_blockaded_friendly"`
	PassedObstructed        [8]int    `json:"passed_obstructed"`
	PassedFarAway           [8]int    `json:"passed_far_away"`
	PassedNotFarAway        [8]int    `json:"passed_not_far_away"`
	PassedKingDistance      [8]int    `json:"passed_king_distance"`
	OutsidePasser           Pair      `json:"outside_passer"`
	PawnCanPromote          int       `json:"pawn_can_promote"`

	KnightOutpost   [64]int `json:"knight_outpost"`
	BishopOutpost   [64]int `json:"bishop_outpost"`
	BishopTrapped   int     `json:"bishop_trapped"`
	BishopWingPawns Pair    `json:"bishop_wing_pawns"`
	BishopBlocked   int     `json:"bishop_blocked"`

	// Mobility counts each reachable square at its centralization weight, minus a base.
	MobilityWeight     [64]int `json:"mobility_weight"`
	KnightMobilityBase int     `json:"knight_mobility_base"`
	BishopMobilityBase int     `json:"bishop_mobility_base"`
	RookMobilityBase   int     `json:"rook_mobility_base"`

	RookOpenFile     Pair `json:"rook_open_file"`
	RookHalfOpenFile Pair `json:"rook_half_open_file"`
	RookOn7th        Pair `json:"rook_on_7th"`
	RookConnected7th Pair `json:"rook_connected_7th"`
	RookTrapped      int  `json:"rook_trapped"`
	RookCornered     int  `json:"rook_cornered"`

	TropismKnight [8]int `json:"tropism_knight"`
	TropismBishop [8]int `json:"tropism_bishop"`
	TropismRook   [8]int `json:"tropism_rook"`
	TropismQueen  [8]int `json:"tropism_queen"`

	KingSafetyDefects [16]int `json:"king_safety_defects"`
	KingSafetyTropism [16]int `json:"king_safety_tropism"`
	KingSafetyScale   int     `json:"king_safety_scale"`

	// MateEdge drives a lone king to the edge. MateKBN drives it to a dark corner; the
	// light-square bishop uses the same table mirrored across the d/e file boundary.
	MateEdge        [64]int `json:"mate_edge"`
	MateKBN         [64]int `json:"mate_kbn"`
	KingKingTropism int     `json:"king_king_tropism"`

	DevelopmentNotCastled   int `json:"development_not_castled"`
	DevelopmentLosingCastle int `json:"development_losing_castle"`

	// PawnTableSize is the number of pawn cache entries; rounded down to a power of two.
	PawnTableSize int `json:"pawn_table_size"`
}

// Validate reports parameter sets the evaluator cannot run with.
func (p *Params) Validate() error {
	if p.PawnTableSize < 1 {
		return fmt.Errorf("pawn_table_size must be positive, got %d", p.PawnTableSize)
	}
	if p.KnightValue <= 0 || p.RookValue <= 0 {
		return fmt.Errorf("knight_value and rook_value must be positive, got %d/%d", p.KnightValue, p.RookValue)
	}
	return nil
}

func (p *Params) Save(path string) error {
	tmp := path + ".tmp"
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Fingerprint identifies the parameter set, so stored scores can be tied to the params that
// produced them.
func (p *Params) Fingerprint() uint64 {
	b, err := json.Marshal(p)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(b)
}

// LoadParams reads a JSON parameter file over the defaults, so a file may name only the
// fields it wants to change.
func LoadParams(path string) (*Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := DefaultParams()
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("decode params %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params %s: %w", path, err)
	}
	return p, nil
}
