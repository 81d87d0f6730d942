package config

// searchConfiguration holds the tunable search settings. UseBook, UseTT
// and UseNullMove switch their heuristics off when false, and the book,
// TT, null-move and time fields set their parameters. UseQuiescence,
// UseSEE, UseKillerMoves, UseHistory, KillerSlots and Contempt are decoded
// but not read by the search: quiescence, SEE capture ordering, two
// killer slots and history ordering are always active, and every draw
// scores 0.
type searchConfiguration struct {
	// Opening book
	UseBook    bool
	BookPath   string
	MaxBookPly int

	// Quiescence search
	UseQuiescence bool
	UseSEE        bool

	// Move ordering
	UseKillerMoves  bool
	UseHistory      bool
	KillerSlots     int

	// Transposition table
	UseTT  bool
	TTSizeMB int

	// Pruning
	UseNullMove      bool
	NullMoveMinDepth int
	NullMoveReduction int

	// Draw scoring
	Contempt int16

	// Time control
	MinMoveTimeMs int
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.MaxBookPly = 20

	Settings.Search.UseQuiescence = true
	Settings.Search.UseSEE = true

	Settings.Search.UseKillerMoves = true
	Settings.Search.UseHistory = true
	Settings.Search.KillerSlots = 2

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveMinDepth = 3
	Settings.Search.NullMoveReduction = 2

	// Open Question (spec §9b): contempt is not parameterized in the
	// distilled spec; 0 is the documented default.
	Settings.Search.Contempt = 0

	Settings.Search.MinMoveTimeMs = 100
}

// setupSearch applies any post-load adjustments; none needed currently.
func setupSearch() {}
