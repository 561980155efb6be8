package economy

const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Result is the outcome of an intent, classified for presentation. Err is
// nil only on success and always wraps one of the package sentinels.
type Result struct {
	Level       string
	Message     string
	Err         error
	Balance     uint64
	Collectible *Collectible
}

func (r *Result) OK() bool {
	return r.Err == nil
}

func succeed(balance uint64, c *Collectible, msg string) *Result {
	return &Result{Level: LevelSuccess, Message: msg, Balance: balance, Collectible: c}
}

func reject(balance uint64, err error, msg string) *Result {
	return &Result{Level: LevelWarning, Message: msg, Err: err, Balance: balance}
}

func fail(balance uint64, err error, msg string) *Result {
	return &Result{Level: LevelError, Message: msg, Err: err, Balance: balance}
}
