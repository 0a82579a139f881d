package engine

// Default tables, seen from white with a1 first.
var (
	basePawnMG = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, -6, -6, 0, 0, 0,
		0, 2, 3, 4, 4, 3, 2, 0,
		0, 3, 6, 12, 12, 6, 3, 0,
		3, 6, 10, 16, 16, 10, 6, 3,
		8, 12, 16, 22, 22, 16, 12, 8,
		16, 20, 24, 28, 28, 24, 20, 16,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	basePawnEG = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		2, 2, 2, 2, 2, 2, 2, 2,
		4, 4, 4, 4, 4, 4, 4, 4,
		8, 8, 8, 8, 8, 8, 8, 8,
		14, 14, 14, 14, 14, 14, 14, 14,
		22, 22, 22, 22, 22, 22, 22, 22,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	baseKnightMG = [64]int{
		-30, -18, -12, -10, -10, -12, -18, -30,
		-18, -8, 0, 4, 4, 0, -8, -18,
		-12, 0, 8, 10, 10, 8, 0, -12,
		-10, 4, 10, 16, 16, 10, 4, -10,
		-10, 6, 14, 20, 20, 14, 6, -10,
		-12, 4, 12, 16, 16, 12, 4, -12,
		-18, -8, 0, 4, 4, 0, -8, -18,
		-30, -18, -12, -10, -10, -12, -18, -30,
	}
	baseKnightEG = [64]int{
		-24, -16, -12, -10, -10, -12, -16, -24,
		-16, -8, -2, 0, 0, -2, -8, -16,
		-12, -2, 4, 6, 6, 4, -2, -12,
		-10, 0, 6, 12, 12, 6, 0, -10,
		-10, 0, 6, 12, 12, 6, 0, -10,
		-12, -2, 4, 6, 6, 4, -2, -12,
		-16, -8, -2, 0, 0, -2, -8, -16,
		-24, -16, -12, -10, -10, -12, -16, -24,
	}
	baseBishopMG = [64]int{
		-8, -6, -10, -6, -6, -10, -6, -8,
		-4, 6, 2, 4, 4, 2, 6, -4,
		-2, 4, 6, 6, 6, 6, 4, -2,
		0, 4, 8, 10, 10, 8, 4, 0,
		0, 6, 8, 10, 10, 8, 6, 0,
		-2, 4, 6, 6, 6, 6, 4, -2,
		-4, 0, 2, 2, 2, 2, 0, -4,
		-8, -6, -4, -4, -4, -4, -6, -8,
	}
	baseBishopEG = [64]int{
		-10, -6, -6, -4, -4, -6, -6, -10,
		-6, -2, 0, 0, 0, 0, -2, -6,
		-6, 0, 4, 4, 4, 4, 0, -6,
		-4, 0, 4, 8, 8, 4, 0, -4,
		-4, 0, 4, 8, 8, 4, 0, -4,
		-6, 0, 4, 4, 4, 4, 0, -6,
		-6, -2, 0, 0, 0, 0, -2, -6,
		-10, -6, -6, -4, -4, -6, -6, -10,
	}
	baseRookMG = [64]int{
		-2, 0, 2, 4, 4, 2, 0, -2,
		-4, 0, 0, 0, 0, 0, 0, -4,
		-4, 0, 0, 0, 0, 0, 0, -4,
		-4, 0, 0, 0, 0, 0, 0, -4,
		-4, 0, 0, 0, 0, 0, 0, -4,
		-4, 0, 0, 0, 0, 0, 0, -4,
		8, 10, 10, 10, 10, 10, 10, 8,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	baseRookEG = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		4, 4, 4, 4, 4, 4, 4, 4,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	baseQueenMG = [64]int{
		-8, -4, -2, 0, 0, -2, -4, -8,
		-4, 0, 2, 2, 2, 2, 0, -4,
		-2, 2, 4, 4, 4, 4, 2, -2,
		0, 2, 4, 6, 6, 4, 2, 0,
		0, 2, 4, 6, 6, 4, 2, 0,
		-2, 2, 4, 4, 4, 4, 2, -2,
		-4, 0, 2, 2, 2, 2, 0, -4,
		-8, -4, -2, 0, 0, -2, -4, -8,
	}
	baseQueenEG = [64]int{
		-16, -10, -8, -6, -6, -8, -10, -16,
		-10, -4, -2, 0, 0, -2, -4, -10,
		-8, -2, 4, 6, 6, 4, -2, -8,
		-6, 0, 6, 12, 12, 6, 0, -6,
		-6, 0, 6, 12, 12, 6, 0, -6,
		-8, -2, 4, 6, 6, 4, -2, -8,
		-10, -4, -2, 0, 0, -2, -4, -10,
		-16, -10, -8, -6, -6, -8, -10, -16,
	}

	baseKingBothWings = [64]int{
		-6, -6, -6, -6, -6, -6, -6, -6,
		-6, 4, 4, 4, 4, 4, 4, -6,
		-6, 4, 14, 14, 14, 14, 4, -6,
		-6, 4, 14, 24, 24, 14, 4, -6,
		-6, 4, 14, 24, 24, 14, 4, -6,
		-6, 4, 14, 14, 14, 14, 4, -6,
		-6, 4, 4, 4, 4, 4, 4, -6,
		-6, -6, -6, -6, -6, -6, -6, -6,
	}
	baseKingKingside = [64]int{
		-25, -19, -13, -7, -1, 5, 5, -1,
		-21, -15, -9, -3, 3, 9, 9, 3,
		-17, -11, -5, 1, 7, 13, 13, 7,
		-13, -7, -1, 5, 11, 17, 17, 11,
		-13, -7, -1, 5, 11, 17, 17, 11,
		-17, -11, -5, 1, 7, 13, 13, 7,
		-21, -15, -9, -3, 3, 9, 9, 3,
		-25, -19, -13, -7, -1, 5, 5, -1,
	}
	baseKingQueenside = [64]int{
		-1, 5, 5, -1, -7, -13, -19, -25,
		3, 9, 9, 3, -3, -9, -15, -21,
		7, 13, 13, 7, 1, -5, -11, -17,
		11, 17, 17, 11, 5, -1, -7, -13,
		11, 17, 17, 11, 5, -1, -7, -13,
		7, 13, 13, 7, 1, -5, -11, -17,
		3, 9, 9, 3, -3, -9, -15, -21,
		-1, 5, 5, -1, -7, -13, -19, -25,
	}

	baseKnightOutpost = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 4, 4, 4, 4, 1, 0,
		0, 2, 6, 8, 8, 6, 2, 0,
		0, 2, 6, 8, 8, 6, 2, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	baseBishopOutpost = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 1, 1, 1, 0, 0,
		0, 1, 3, 3, 3, 3, 1, 0,
		0, 3, 5, 5, 5, 5, 3, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	baseMobilityWeight = [64]int{
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 2, 2, 2, 2, 2, 2, 1,
		1, 2, 3, 3, 3, 3, 2, 1,
		1, 2, 3, 4, 4, 3, 2, 1,
		1, 2, 3, 4, 4, 3, 2, 1,
		1, 2, 3, 3, 3, 3, 2, 1,
		1, 2, 2, 2, 2, 2, 2, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
	}

	baseMateEdge = [64]int{
		180, 150, 120, 90, 90, 120, 150, 180,
		150, 120, 90, 60, 60, 90, 120, 150,
		120, 90, 60, 30, 30, 60, 90, 120,
		90, 60, 30, 0, 0, 30, 60, 90,
		90, 60, 30, 0, 0, 30, 60, 90,
		120, 90, 60, 30, 30, 60, 90, 120,
		150, 120, 90, 60, 60, 90, 120, 150,
		180, 150, 120, 90, 90, 120, 150, 180,
	}
	// Highest in a1 and h8, the corners a dark-square bishop can mate in.
	baseMateKBN = [64]int{
		101, 93, 85, 77, 69, 61, 53, 45,
		93, 78, 70, 62, 54, 46, 38, 53,
		85, 70, 55, 47, 39, 31, 46, 61,
		77, 62, 47, 32, 24, 39, 54, 69,
		69, 54, 39, 24, 32, 47, 62, 77,
		61, 46, 31, 39, 47, 55, 70, 85,
		53, 38, 46, 54, 62, 70, 78, 93,
		45, 53, 61, 69, 77, 85, 93, 101,
	}
)

// DefaultParams returns a fresh copy of the built-in parameter set.
func DefaultParams() *Params {
	return &Params{
		PawnValue:   100,
		KnightValue: 325,
		BishopValue: 325,
		RookValue:   500,
		QueenValue:  975,

		Tempo:      Pair{5, 8},
		BishopPair: Pair{38, 58},
		BadTrade:   90,

		Pawn:   PSQT{basePawnMG, basePawnEG},
		Knight: PSQT{baseKnightMG, baseKnightEG},
		Bishop: PSQT{baseBishopMG, baseBishopEG},
		Rook:   PSQT{baseRookMG, baseRookEG},
		Queen:  PSQT{baseQueenMG, baseQueenEG},

		KingBothWings: baseKingBothWings,
		KingKingside:  baseKingKingside,
		KingQueenside: baseKingQueenside,

		PawnIsolated:  Pair{18, 21},
		PawnWeak:      Pair{12, 18},
		PawnDoubled:   Pair{5, 6},
		PawnConnected: Pair{8, 8},
		PassedCandidate: RankTable{
			MG: [8]int{0, 0, 0, 5, 13, 32, 0, 0},
			EG: [8]int{0, 0, 0, 8, 20, 50, 0, 0},
		},
		PassedHidden: Pair{0, 40},

		OpenFile:     [8]int{6, 5, 4, 4, 4, 4, 5, 6},
		HalfOpenFile: [8]int{4, 4, 3, 3, 3, 3, 4, 4},
		// Indexed by the absolute rank of the most advanced enemy pawn on the file.
		PawnDefects: [2][8]int{
			{0, 0, 3, 2, 1, 0, 0, 0},
			{0, 0, 0, 1, 2, 3, 0, 0},
		},

		PassedValue: RankTable{
			MG: [8]int{0, 5, 10, 20, 35, 60, 100, 0},
			EG: [8]int{0, 10, 18, 32, 55, 90, 140, 0},
		},
		PassedConnected: RankTable{
			MG: [8]int{0, 0, 0, 5, 10, 16, 24, 0},
			EG: [8]int{0, 0, 0, 8, 16, 28, 44, 0},
		},
		RookBehindPasser: RankTable{
			MG: [8]int{0, 3, 4, 6, 9, 12, 16, 0},
			EG: [8]int{0, 6, 8, 12, 18, 24, 32, 0},
		},
		PassedBlockadedEnemy: RankTable{
			MG: [8]int{0, 2, 3, 5, 8, 12, 16, 0},
			EG: [8]int{0, 4, 6, 10, 16, 24, 32, 0},
		},
		PassedBlockadedFriendly: RankTable{
			MG: [8]int{0, 1, 2, 3, 4, 6, 8, 0},
			EG: [8]int{0, 2, 3, 5, 8, 12, 16, 0},
		},
		PassedObstructed:   [8]int{0, 2, 3, 5, 8, 12, 18, 0},
		PassedFarAway:      [8]int{0, 10, 12, 18, 30, 50, 80, 0},
		PassedNotFarAway:   [8]int{0, 4, 5, 7, 12, 20, 32, 0},
		PassedKingDistance: [8]int{0, 0, 0, 2, 4, 6, 8, 0},
		OutsidePasser:      Pair{20, 40},
		PawnCanPromote:     525,

		KnightOutpost:   baseKnightOutpost,
		BishopOutpost:   baseBishopOutpost,
		BishopTrapped:   174,
		BishopWingPawns: Pair{18, 36},
		BishopBlocked:   8,

		MobilityWeight:     baseMobilityWeight,
		KnightMobilityBase: 6,
		BishopMobilityBase: 12,
		RookMobilityBase:   14,

		RookOpenFile:     Pair{35, 20},
		RookHalfOpenFile: Pair{10, 10},
		RookOn7th:        Pair{25, 35},
		RookConnected7th: Pair{10, 20},
		RookTrapped:      25,
		RookCornered:     6,

		TropismKnight: [8]int{0, 3, 3, 2, 1, 0, 0, 0},
		TropismBishop: [8]int{0, 2, 2, 1, 0, 0, 0, 0},
		TropismRook:   [8]int{0, 4, 3, 2, 1, 1, 1, 1},
		TropismQueen:  [8]int{0, 6, 5, 4, 3, 2, 2, 2},

		KingSafetyDefects: [16]int{0, 7, 14, 21, 28, 35, 42, 49, 56, 63, 70, 77, 84, 91, 98, 105},
		KingSafetyTropism: [16]int{0, 1, 2, 3, 4, 5, 11, 20, 32, 47, 65, 86, 110, 137, 167, 200},
		KingSafetyScale:   180,

		MateEdge:        baseMateEdge,
		MateKBN:         baseMateKBN,
		KingKingTropism: 10,

		DevelopmentNotCastled:   10,
		DevelopmentLosingCastle: 20,

		PawnTableSize: 1 << 14,
	}
}
