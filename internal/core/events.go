package core

// Event is a symbolic feedback notification emitted by the game logic.
// Events are fire-and-forget: the rules engine never waits on a consumer,
// and dropping them has no effect on gameplay.
type Event string

const (
	EventThrow Event = "throw" // A knife left the launcher
	EventHit   Event = "hit"   // A knife stuck into the board
	EventApple Event = "apple" // One or more apples were sliced
	EventFail  Event = "fail"  // A knife struck an already stuck knife
	EventWin   Event = "win"   // The stage was cleared
	EventCoin  Event = "coin"  // Coins were credited
)
