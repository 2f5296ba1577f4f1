package object

// Star is a decorative background point. Stars never collide.
type Star struct {
	X, Y       float64
	Speed      int   // Downward pixels per tick
	Brightness uint8 // Gray level
}
