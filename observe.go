package tresor

import "io"

// OpenObserved is Open plus optional logging and metrics, for embedders
// who attached a Logger/Metrics to the Store they sealed and want the
// same observability on the way back in. logger and metrics may each be
// nil. It never changes Open's error semantics: Open's error is returned
// unchanged, with AuthFail and BadPayload kept as distinct Kinds.
func OpenObserved(blob []byte, password string, rand io.Reader, clock Clock, logger storeLogger, metrics storeMetrics) (*Store, error) {
	s, err := Open(blob, password, rand, clock)
	if err != nil {
		if metrics != nil {
			if terr, ok := err.(*Error); ok && terr.Kind == KindAuthFail {
				metrics.ObserveAuthFail()
			}
		}
		if logger != nil {
			logger.Warn("open failed", "kind", kindOf(err))
		}
		return nil, err
	}

	s.logger = logger
	s.metrics = metrics
	if metrics != nil {
		metrics.ObserveOpen(len(s.data.Entries))
	}
	if logger != nil {
		logger.Info("opened store", "entries", len(s.data.Entries))
	}
	return s, nil
}

func kindOf(err error) Kind {
	if terr, ok := err.(*Error); ok {
		return terr.Kind
	}
	return ""
}
