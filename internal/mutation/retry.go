package mutation

// #region constants

const maxRetries = 2 // max 2 retries = 3 total attempts

// #endregion

// #region retry

// MutateWithRetry runs a random edit first, then retries rejected attempts
// with structural kinds not yet tried this call. Returns the result of the
// last attempt. A not-found error stops retries immediately.
func (e *Engine) MutateWithRetry(name string) (Result, error) {
	res, err := e.Mutate(name, KindRandom)
	if err != nil || res.Action == ActionAccept {
		return res, err
	}

	tried := map[Kind]bool{res.Kind: true}
	for attempt := 0; attempt < maxRetries; attempt++ {
		next, ok := nextUntried(tried)
		if !ok {
			break
		}
		res, err = e.Mutate(name, next)
		if err != nil || res.Action == ActionAccept {
			return res, err
		}
		tried[res.Kind] = true
	}
	return res, err
}

// nextUntried picks the first structural kind not yet attempted.
func nextUntried(tried map[Kind]bool) (Kind, bool) {
	for _, k := range structuralKinds {
		if !tried[k] {
			return k, true
		}
	}
	return "", false
}

// #endregion retry
