package game

// Wallet receives coin credits earned during play. The game never debits.
// Implemented by the economy ledger; a no-op wallet is used when no
// durable economy is attached, so gameplay never depends on storage.
type Wallet interface {
	CreditCoins(amount int)
}

// AdGate answers the two ad-gated bonus requests. A request that returns
// false leaves the game state untouched.
type AdGate interface {
	RequestContinue() bool
	RequestDoubleReward() bool
}

type nopWallet struct{}

func (nopWallet) CreditCoins(int) {}

// grantAllAds is the default gate: every request succeeds synchronously.
type grantAllAds struct{}

func (grantAllAds) RequestContinue() bool     { return true }
func (grantAllAds) RequestDoubleReward() bool { return true }
