/*
Package resilience provides a circuit breaker for calls to a remote
formulary service.

# Usage

	breaker := resilience.New("formulary", resilience.Settings{
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, client.ErrRejected)
		},
	})

	result, err := resilience.Do(breaker, func() (*types.Result, error) {
		return call()
	})

# States

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                       [failure]
	                                           v
	                                          Open

Outcomes of calls admitted in an earlier generation are ignored, so a slow
call cannot close a breaker that opened while it was in flight.
*/
package resilience
