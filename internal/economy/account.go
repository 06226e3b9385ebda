// Package economy tracks the player's persistent progression: the coin
// balance, the all-time high score, the daily reward streak and cosmetic
// unlocks. State is mirrored into a key-value store so it survives across
// sessions; a nil store degrades gracefully to in-memory play.
package economy

import (
	"strconv"
	"time"
)

// KV is the persistence surface the account needs. The sqlite store
// satisfies it; tests use a map.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

const (
	keyCoins       = "coins"
	keyHighScore   = "high_score"
	keyGamesPlayed = "games_played"
	keyStreak      = "daily_streak"
	keyLastClaim   = "daily_last_claim"
	keyKnifeStyle  = "knife_style"
)

const dayFormat = "2006-01-02"

// Account is the player's persistent economy state.
type Account struct {
	kv  KV
	now func() time.Time

	rewards []int

	coins       int
	coinsDirty  bool
	highScore   int
	gamesPlayed int
	streak      int
	lastClaim   string
	knifeStyle  string
}

// New loads the account from the store. Missing or malformed values fall
// back to zero defaults; a nil store keeps everything in memory.
func New(kv KV, dailyRewards []int) *Account {
	a := &Account{
		kv:      kv,
		now:     time.Now,
		rewards: dailyRewards,
	}
	a.coins = a.loadInt(keyCoins)
	a.highScore = a.loadInt(keyHighScore)
	a.gamesPlayed = a.loadInt(keyGamesPlayed)
	a.streak = a.loadInt(keyStreak)
	a.lastClaim = a.loadString(keyLastClaim)
	a.knifeStyle = a.loadString(keyKnifeStyle)
	return a
}

func (a *Account) loadInt(key string) int {
	if a.kv == nil {
		return 0
	}
	raw, ok := a.kv.Get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (a *Account) loadString(key string) string {
	if a.kv == nil {
		return ""
	}
	raw, _ := a.kv.Get(key)
	return raw
}

// store is best-effort: a write failure never interrupts play.
func (a *Account) store(key, value string) {
	if a.kv == nil {
		return
	}
	_ = a.kv.Set(key, value)
}

func (a *Account) storeInt(key string, n int) {
	a.store(key, strconv.Itoa(n))
}

// Coins returns the current coin balance.
func (a *Account) Coins() int {
	return a.coins
}

// CreditCoins adds to the coin balance. Satisfies the game's Wallet.
// The balance only changes in memory here; credits land mid-tick, so the
// write is deferred to the next Flush.
func (a *Account) CreditCoins(amount int) {
	if amount <= 0 {
		return
	}
	a.coins += amount
	a.coinsDirty = true
}

// SpendCoins deducts from the balance. Returns false when the balance
// cannot cover the amount; the balance is then untouched. Like credits,
// the new balance is persisted on the next Flush.
func (a *Account) SpendCoins(amount int) bool {
	if amount <= 0 || amount > a.coins {
		return false
	}
	a.coins -= amount
	a.coinsDirty = true
	return true
}

// Flush writes the coin balance through to the store if it has changed
// since the last write. Callers flush at quiet moments (game over, quit)
// so gameplay ticks never wait on storage.
func (a *Account) Flush() {
	if !a.coinsDirty {
		return
	}
	a.coinsDirty = false
	a.storeInt(keyCoins, a.coins)
}

// HighScore returns the best score recorded so far.
func (a *Account) HighScore() int {
	return a.highScore
}

// GamesPlayed returns how many runs have ended.
func (a *Account) GamesPlayed() int {
	return a.gamesPlayed
}

// RecordScore registers a finished run. Returns true when the score is a
// new high score. The high score is monotone: lower scores never lower it.
func (a *Account) RecordScore(score int) bool {
	a.gamesPlayed++
	a.storeInt(keyGamesPlayed, a.gamesPlayed)

	if score <= a.highScore {
		return false
	}
	a.highScore = score
	a.storeInt(keyHighScore, a.highScore)
	return true
}

// Streak returns the current daily reward streak, 0 before the first
// claim. The value is the last tier claimed (1-based into the reward
// table), not the tier the next claim will pay.
func (a *Account) Streak() int {
	return a.streak
}

// CanClaimDaily reports whether today's reward is still unclaimed.
func (a *Account) CanClaimDaily() bool {
	return a.lastClaim != a.now().Format(dayFormat)
}

// ClaimDailyReward claims the reward for today. Consecutive-day claims
// advance the streak through the reward table; after the last tier the
// streak wraps back to the first. A missed day resets the streak. Returns
// the coins granted, or false when today's reward was already claimed.
//
// The streak is persisted as the tier just claimed, so a stored streak of
// N pays tier N%len+1 on the next consecutive day. The reward sequence a
// player sees is the same as indexing by a "next tier due" counter; only
// the stored representation differs.
func (a *Account) ClaimDailyReward() (int, bool) {
	if len(a.rewards) == 0 {
		return 0, false
	}

	today := a.now().Format(dayFormat)
	if a.lastClaim == today {
		return 0, false
	}

	yesterday := a.now().AddDate(0, 0, -1).Format(dayFormat)
	if a.lastClaim == yesterday {
		a.streak = a.streak%len(a.rewards) + 1
	} else {
		a.streak = 1
	}
	a.lastClaim = today

	reward := a.rewards[a.streak-1]
	a.coins += reward

	a.storeInt(keyStreak, a.streak)
	a.store(keyLastClaim, a.lastClaim)
	a.storeInt(keyCoins, a.coins)
	a.coinsDirty = false

	return reward, true
}

// KnifeStyle returns the selected cosmetic knife style, empty for default.
func (a *Account) KnifeStyle() string {
	return a.knifeStyle
}

// SetKnifeStyle persists the cosmetic knife selection.
func (a *Account) SetKnifeStyle(style string) {
	a.knifeStyle = style
	a.store(keyKnifeStyle, style)
}
